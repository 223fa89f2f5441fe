// Package enrich resolves cross-reference ids for published trending items.
package enrich

import (
	"bytes"
	"context"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"

	"flixapi/internal/catalog"
	"flixapi/internal/metrics"
)

// widgetSelector locates the embedded third-party rating widget on an item's
// detail page; its data-title attribute carries the IMDb id.
const widgetSelector = ".imdbRatingPlugin"

// Enricher patches IMDb ids onto already-published trending items.
//
// Lookups are fire and forget: one goroutine per item, never awaited by the
// publisher, addressing the item through (locale code, section index, item
// index) so the binding survives independent of any in-flight replace.
// A failed fetch or an absent widget leaves the id unset; neither is an error.
type Enricher struct {
	fetcher catalog.Fetcher
	store   catalog.Store
	logger  *zap.Logger
}

// New constructs an Enricher.
func New(fetcher catalog.Fetcher, store catalog.Store, logger *zap.Logger) *Enricher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Enricher{fetcher: fetcher, store: store, logger: logger}
}

// EnrichSections spawns one lookup per item across the given sections.
// It returns immediately; the sections must already be installed in the
// store under the locale's code.
func (e *Enricher) EnrichSections(ctx context.Context, locale catalog.Locale, sections []catalog.Section) {
	for si, sec := range sections {
		for ii, item := range sec.Items {
			if item.DetailPath == "" {
				continue
			}
			go e.enrichItem(ctx, locale, si, ii, item.DetailPath)
		}
	}
}

func (e *Enricher) enrichItem(ctx context.Context, locale catalog.Locale, sectionIdx, itemIdx int, detailPath string) {
	resp, err := e.fetcher.Fetch(ctx, catalog.FetchRequest{
		URL:     locale.PageURL(detailPath),
		Referer: locale.BaseURL(),
	})
	if err != nil {
		metrics.ObserveEnrich("fetch_error")
		e.logger.Debug("cross-ref fetch failed",
			zap.String("locale", locale.Code),
			zap.String("path", detailPath),
			zap.Error(err),
		)
		return
	}

	id := ExtractCrossRef(resp.Body)
	if id == "" {
		metrics.ObserveEnrich("miss")
		return
	}

	e.store.SetCrossRef(locale.Code, sectionIdx, itemIdx, id)
	metrics.ObserveEnrich("hit")
}

// ExtractCrossRef pulls the IMDb id out of a detail-page document.
// It returns the empty string when the widget or its attribute is absent.
func ExtractCrossRef(markup []byte) string {
	if len(markup) == 0 {
		return ""
	}
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(markup))
	if err != nil {
		return ""
	}
	id, _ := doc.Find(widgetSelector).First().Attr("data-title")
	return id
}
