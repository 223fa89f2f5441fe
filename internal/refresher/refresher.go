// Package refresher orchestrates full scrape cycles across all locales.
package refresher

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"flixapi/internal/catalog"
	"flixapi/internal/enrich"
	"flixapi/internal/metrics"
	"flixapi/internal/parser"
)

// Refresher runs, per supported locale, one trending and one upcoming
// pipeline and installs the results into the shared store.
//
// Pipelines are independent: a failure in one locale or category never
// blocks another, and it leaves the previously cached data for that
// category in place rather than clearing it.
type Refresher struct {
	fetcher  catalog.Fetcher
	store    catalog.Store
	enricher *enrich.Enricher
	clock    catalog.Clock
	locales  []catalog.Locale
	logger   *zap.Logger
}

// New constructs a Refresher.
func New(
	fetcher catalog.Fetcher,
	store catalog.Store,
	enricher *enrich.Enricher,
	clock catalog.Clock,
	locales []catalog.Locale,
	logger *zap.Logger,
) *Refresher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Refresher{
		fetcher:  fetcher,
		store:    store,
		enricher: enricher,
		clock:    clock,
		locales:  locales,
		logger:   logger,
	}
}

// RefreshAll scrapes every locale concurrently and returns once all page
// parses are installed. Cross-reference enrichment keeps running in the
// background after it returns.
func (r *Refresher) RefreshAll(ctx context.Context) {
	metrics.RefreshStarted()
	defer metrics.RefreshFinished()

	started := r.clock.Now()
	r.logger.Info("refresh cycle started", zap.Int("locales", len(r.locales)))

	var wg sync.WaitGroup
	for _, locale := range r.locales {
		wg.Add(2)
		go func(l catalog.Locale) {
			defer wg.Done()
			r.refreshTrending(ctx, l)
		}(locale)
		go func(l catalog.Locale) {
			defer wg.Done()
			r.refreshUpcoming(ctx, l)
		}(locale)
	}
	wg.Wait()

	r.logger.Info("refresh cycle finished",
		zap.Duration("elapsed", r.clock.Now().Sub(started)),
	)
}

func (r *Refresher) refreshTrending(ctx context.Context, locale catalog.Locale) {
	body, ok := r.fetchPage(ctx, locale, catalog.CategoryTrending)
	if !ok {
		return
	}

	sections := parser.ParseTrending(body)
	r.store.ReplaceTrending(locale.Code, sections)

	// Publication never waits on enrichment; ids land in place later.
	r.enricher.EnrichSections(ctx, locale, sections)

	r.logger.Debug("trending catalog installed",
		zap.String("locale", locale.Code),
		zap.Int("sections", len(sections)),
	)
}

func (r *Refresher) refreshUpcoming(ctx context.Context, locale catalog.Locale) {
	body, ok := r.fetchPage(ctx, locale, catalog.CategoryUpcoming)
	if !ok {
		return
	}

	sections := parser.ParseUpcoming(body)
	r.store.ReplaceUpcoming(locale.Code, sections)

	r.logger.Debug("upcoming catalog installed",
		zap.String("locale", locale.Code),
		zap.Int("sections", len(sections)),
	)
}

// fetchPage retrieves one category page. On failure it reports false and the
// caller keeps the locale's previously installed catalog (serve-stale).
func (r *Refresher) fetchPage(ctx context.Context, locale catalog.Locale, category catalog.Category) ([]byte, bool) {
	url := locale.PageURL(string(category))
	start := time.Now()
	resp, err := r.fetcher.Fetch(ctx, catalog.FetchRequest{URL: url, Referer: url})
	if err != nil {
		metrics.ObserveScrape(locale.Code, string(category), "error", time.Since(start))
		r.logger.Warn("catalog page fetch failed, keeping stale data",
			zap.String("locale", locale.Code),
			zap.String("category", string(category)),
			zap.Error(err),
		)
		return nil, false
	}
	metrics.ObserveScrape(locale.Code, string(category), "ok", resp.Duration)
	return resp.Body, true
}
