// Package parser turns raw catalog markup into ordered section records.
//
// The source layout is a flat run of sibling row blocks under the main
// container, alternating between heading rows and content rows. Trending
// pages repeat in groups of three with the heading at the second block of
// each group; upcoming pages are pattern-matched by the presence of
// non-empty heading text. Parsing is fail-soft: absent or malformed markup
// yields an empty result, never an error.
package parser

import (
	"bytes"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"flixapi/internal/catalog"
)

const (
	rowSelector         = "main > .container > .row"
	posterSelector      = ".poster-container"
	largePosterSelector = ".poster-container-large"
	posterLinkSelector  = ".poster-link"

	genreSeparator = "·"
)

// ParseTrending extracts the trending sections from a popular-page document.
// The final parsed section is a non-content sentinel block on the source
// layout and is always discarded.
func ParseTrending(markup []byte) []catalog.Section {
	doc := load(markup)
	if doc == nil {
		return []catalog.Section{}
	}

	sections := []catalog.Section{}
	doc.Find(rowSelector).Each(func(i int, row *goquery.Selection) {
		if i%3 == 1 {
			sections = append(sections, catalog.Section{
				Name:  row.Find("h2").Text(),
				Items: []catalog.Item{},
			})
			return
		}
		if len(sections) == 0 {
			return
		}
		cur := &sections[len(sections)-1]
		row.Find(posterSelector).Each(func(_ int, poster *goquery.Selection) {
			img := poster.Find("img")
			href, _ := poster.Find(posterLinkSelector).Attr("href")
			cur.Items = append(cur.Items, catalog.Item{
				ImageURL:   img.AttrOr("src", ""),
				Title:      img.AttrOr("alt", ""),
				DetailPath: strings.TrimPrefix(href, "/"),
			})
		})
	})

	if len(sections) > 0 {
		sections = sections[:len(sections)-1]
	}
	return sections
}

// ParseUpcoming extracts the coming-soon sections from an upcoming-page
// document. A row with non-empty trimmed heading text opens a section;
// content rows attach to the most recently opened one.
func ParseUpcoming(markup []byte) []catalog.UpcomingSection {
	doc := load(markup)
	if doc == nil {
		return []catalog.UpcomingSection{}
	}

	sections := []catalog.UpcomingSection{}
	doc.Find(rowSelector).Each(func(_ int, row *goquery.Selection) {
		if name := strings.TrimSpace(row.Find("h2").Text()); name != "" {
			sections = append(sections, catalog.UpcomingSection{
				Name:  name,
				Items: []catalog.UpcomingItem{},
			})
			return
		}
		if len(sections) == 0 {
			return
		}
		cur := &sections[len(sections)-1]
		row.Find(largePosterSelector).Each(func(_ int, poster *goquery.Selection) {
			img := poster.Find("img")
			paragraphs := poster.Parent().Find("p")
			cur.Items = append(cur.Items, catalog.UpcomingItem{
				ImageURL:    img.AttrOr("src", ""),
				Title:       img.AttrOr("alt", ""),
				Description: paragraphs.Eq(1).Text(),
				Genres:      SplitGenres(paragraphs.Eq(2).Text()),
			})
		})
	})

	return sections
}

// SplitGenres splits a genre paragraph on the literal separator into an
// ordered list of trimmed genre names. Surrounding layout whitespace around
// each name is discarded; empty fragments are dropped.
func SplitGenres(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return []string{}
	}
	parts := strings.Split(raw, genreSeparator)
	genres := make([]string, 0, len(parts))
	for _, p := range parts {
		if name := strings.TrimSpace(p); name != "" {
			genres = append(genres, name)
		}
	}
	return genres
}

func load(markup []byte) *goquery.Document {
	if len(markup) == 0 {
		return nil
	}
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(markup))
	if err != nil {
		return nil
	}
	return doc
}
