// Package store holds the shared in-memory cache of per-locale catalogs.
package store

import (
	"sync"

	"flixapi/internal/catalog"
)

// CatalogStore maps locale codes to their most recently installed catalogs.
// Reads return isolated snapshots, so a catalog mid-replace or mid-enrichment
// is never observed torn by a reader. Each Replace is a whole-category
// overwrite; last write wins when refresh cycles overlap.
type CatalogStore struct {
	mu      sync.RWMutex
	entries map[string]*entry
}

type entry struct {
	trending []catalog.Section
	upcoming []catalog.UpcomingSection
}

// New constructs an empty CatalogStore.
func New() *CatalogStore {
	return &CatalogStore{entries: make(map[string]*entry)}
}

// Trending returns a snapshot of the locale's trending sections.
// The result is never nil; an unpopulated locale yields an empty slice.
func (s *CatalogStore) Trending(code string) []catalog.Section {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.entries[code]
	if !ok {
		return []catalog.Section{}
	}
	return copyTrending(e.trending)
}

// Upcoming returns a snapshot of the locale's coming-soon sections.
// The result is never nil; an unpopulated locale yields an empty slice.
func (s *CatalogStore) Upcoming(code string) []catalog.UpcomingSection {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.entries[code]
	if !ok {
		return []catalog.UpcomingSection{}
	}
	return copyUpcoming(e.upcoming)
}

// ReplaceTrending atomically installs a new trending catalog for the locale.
// The store keeps its own copy, so the caller's slice never shares memory
// with the cache.
func (s *CatalogStore) ReplaceTrending(code string, sections []catalog.Section) {
	installed := copyTrending(sections)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.locked(code).trending = installed
}

// ReplaceUpcoming atomically installs a new coming-soon catalog for the locale.
// The store keeps its own copy, so the caller's slice never shares memory
// with the cache.
func (s *CatalogStore) ReplaceUpcoming(code string, sections []catalog.UpcomingSection) {
	installed := copyUpcoming(sections)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.locked(code).upcoming = installed
}

// SetCrossRef patches the IMDb id of one already-published trending item.
// Indices that no longer resolve (the catalog was replaced underneath the
// enrichment) are ignored; enrichment is best effort.
func (s *CatalogStore) SetCrossRef(code string, sectionIdx, itemIdx int, id string) {
	if id == "" {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[code]
	if !ok || sectionIdx < 0 || sectionIdx >= len(e.trending) {
		return
	}
	items := e.trending[sectionIdx].Items
	if itemIdx < 0 || itemIdx >= len(items) {
		return
	}
	items[itemIdx].IMDbID = id
}

func (s *CatalogStore) locked(code string) *entry {
	e, ok := s.entries[code]
	if !ok {
		e = &entry{}
		s.entries[code] = e
	}
	return e
}

func copyTrending(src []catalog.Section) []catalog.Section {
	out := make([]catalog.Section, len(src))
	for i, sec := range src {
		items := make([]catalog.Item, len(sec.Items))
		copy(items, sec.Items)
		out[i] = catalog.Section{Name: sec.Name, Items: items}
	}
	return out
}

func copyUpcoming(src []catalog.UpcomingSection) []catalog.UpcomingSection {
	out := make([]catalog.UpcomingSection, len(src))
	for i, sec := range src {
		items := make([]catalog.UpcomingItem, len(sec.Items))
		copy(items, sec.Items)
		out[i] = catalog.UpcomingSection{Name: sec.Name, Items: items}
	}
	return out
}
