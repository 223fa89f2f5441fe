// Package catalog defines core types shared across subsystems.
package catalog

import "strings"

// Category identifies one of the two scraped catalog categories.
type Category string

// Category values. The string form doubles as the source page path.
const (
	CategoryTrending Category = "popular"
	CategoryUpcoming Category = "coming-soon"
)

// Locale is one supported regional variant of the source site.
// The table is static for the process lifetime; Code is the cache key.
type Locale struct {
	Name string `json:"name" mapstructure:"name"`
	Code string `json:"code" mapstructure:"code"`
	Host string `json:"host" mapstructure:"host"`
}

// BaseURL returns the locale's site root, expanding the "*" host pattern.
func (l Locale) BaseURL() string {
	return "https://" + strings.Replace(l.Host, "*", l.Code, 1) + "/"
}

// PageURL joins a path fragment onto the locale's base URL.
func (l Locale) PageURL(path string) string {
	return l.BaseURL() + path
}

// Item is a single trending catalog entry. IMDbID starts empty and is
// patched in place by the enricher after the catalog is published.
// DetailPath points at the item's detail page and never leaves the process.
type Item struct {
	ImageURL   string `json:"img"`
	Title      string `json:"title"`
	IMDbID     string `json:"imdbid,omitempty"`
	DetailPath string `json:"-"`
}

// UpcomingItem is a single coming-soon catalog entry, immutable once parsed.
type UpcomingItem struct {
	ImageURL    string   `json:"img"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Genres      []string `json:"genres"`
}

// Section is a named grouping of trending items in source-page order.
type Section struct {
	Name  string `json:"name"`
	Items []Item `json:"items"`
}

// UpcomingSection is a named grouping of coming-soon items in source-page order.
type UpcomingSection struct {
	Name  string         `json:"name"`
	Items []UpcomingItem `json:"items"`
}
