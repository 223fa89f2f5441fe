package catalog

import (
	"context"
	"time"
)

// Fetcher retrieves one page of raw markup.
type Fetcher interface {
	Fetch(ctx context.Context, request FetchRequest) (FetchResponse, error)
}

// FetchRequest captures everything needed to fetch a page.
type FetchRequest struct {
	URL     string
	Referer string
}

// FetchResponse is the result returned by a Fetcher implementation.
type FetchResponse struct {
	URL        string
	StatusCode int
	Body       []byte
	Duration   time.Duration
}

// Store is the shared read-mostly cache of per-locale catalogs.
// Reads return snapshots; Replace overwrites one category atomically.
type Store interface {
	Trending(code string) []Section
	Upcoming(code string) []UpcomingSection
	ReplaceTrending(code string, sections []Section)
	ReplaceUpcoming(code string, sections []UpcomingSection)
	// SetCrossRef patches the IMDb id of an already-published trending item.
	// Out-of-range indices are ignored.
	SetCrossRef(code string, sectionIdx, itemIdx int, id string)
}

// Refresher runs one full scrape cycle across all locales.
type Refresher interface {
	RefreshAll(ctx context.Context)
}

// Clock returns the current time (useful for testing).
type Clock interface {
	Now() time.Time
}
