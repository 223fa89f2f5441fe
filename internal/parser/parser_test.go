package parser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// trendingPage builds a popular-page document in the source layout: row
// groups of three with the heading at the second block of each group.
func trendingPage(sections ...trendingSection) string {
	var b strings.Builder
	b.WriteString(`<html><body><main><div class="container">`)
	for _, sec := range sections {
		b.WriteString(`<div class="row"><div class="banner"></div></div>`)
		b.WriteString(`<div class="row"><h2>` + sec.name + `</h2></div>`)
		b.WriteString(`<div class="row">`)
		for _, it := range sec.items {
			b.WriteString(`<div class="poster-container">` +
				`<a class="poster-link" href="/` + it.path + `">` +
				`<img src="` + it.img + `" alt="` + it.title + `">` +
				`</a></div>`)
		}
		b.WriteString(`</div>`)
	}
	b.WriteString(`</div></main></body></html>`)
	return b.String()
}

type trendingSection struct {
	name  string
	items []trendingItem
}

type trendingItem struct {
	img   string
	title string
	path  string
}

func TestParseTrendingDropsLastSection(t *testing.T) {
	t.Parallel()

	markup := trendingPage(
		trendingSection{name: "Popular on Netflix", items: []trendingItem{
			{img: "https://img.example/a.jpg", title: "Alpha", path: "title/alpha"},
		}},
		trendingSection{name: "Trailing Sentinel", items: []trendingItem{
			{img: "https://img.example/z.jpg", title: "Zeta", path: "title/zeta"},
		}},
	)

	sections := ParseTrending([]byte(markup))

	require.Len(t, sections, 1)
	require.Equal(t, "Popular on Netflix", sections[0].Name)
	require.Len(t, sections[0].Items, 1)
	require.Equal(t, "Alpha", sections[0].Items[0].Title)
	require.Equal(t, "https://img.example/a.jpg", sections[0].Items[0].ImageURL)
	require.Equal(t, "title/alpha", sections[0].Items[0].DetailPath)

	// Data from the dropped sentinel never surfaces.
	for _, sec := range sections {
		for _, it := range sec.Items {
			require.NotEqual(t, "Zeta", it.Title)
		}
	}
}

func TestParseTrendingDropsLastWithSingleSection(t *testing.T) {
	t.Parallel()

	markup := trendingPage(
		trendingSection{name: "Only Section", items: []trendingItem{
			{img: "a.jpg", title: "A", path: "title/a"},
		}},
	)

	require.Empty(t, ParseTrending([]byte(markup)))
}

func TestParseTrendingPreservesDocumentOrder(t *testing.T) {
	t.Parallel()

	markup := trendingPage(
		trendingSection{name: "First", items: []trendingItem{
			{img: "1.jpg", title: "One", path: "title/one"},
			{img: "2.jpg", title: "Two", path: "title/two"},
		}},
		trendingSection{name: "Second", items: []trendingItem{
			{img: "3.jpg", title: "Three", path: "title/three"},
		}},
		trendingSection{name: "Sentinel"},
	)

	sections := ParseTrending([]byte(markup))

	require.Len(t, sections, 2)
	require.Equal(t, "First", sections[0].Name)
	require.Equal(t, "Second", sections[1].Name)
	require.Equal(t, "One", sections[0].Items[0].Title)
	require.Equal(t, "Two", sections[0].Items[1].Title)
	require.Equal(t, "Three", sections[1].Items[0].Title)
}

func TestParseTrendingEmptyInput(t *testing.T) {
	t.Parallel()

	require.Empty(t, ParseTrending(nil))
	require.Empty(t, ParseTrending([]byte("")))
	require.Empty(t, ParseTrending([]byte("not markup at all")))
	require.Empty(t, ParseTrending([]byte("<html><body><p>no rows here</p></body></html>")))
}

func TestParseUpcomingReadsDescriptionAndGenres(t *testing.T) {
	t.Parallel()

	markup := `<html><body><main><div class="container">
		<div class="row"><h2>New This Month</h2></div>
		<div class="row">
			<div class="col">
				<div class="poster-container-large">
					<img src="https://img.example/b.jpg" alt="Beta">
				</div>
				<p>Release badge</p>
				<p>A slow-burn mystery.</p>
				<p>
        Drama
·Thriller
				</p>
			</div>
		</div>
	</div></main></body></html>`

	sections := ParseUpcoming([]byte(markup))

	require.Len(t, sections, 1)
	require.Equal(t, "New This Month", sections[0].Name)
	require.Len(t, sections[0].Items, 1)

	item := sections[0].Items[0]
	require.Equal(t, "Beta", item.Title)
	require.Equal(t, "https://img.example/b.jpg", item.ImageURL)
	require.Equal(t, "A slow-burn mystery.", item.Description)
	require.Equal(t, []string{"Drama", "Thriller"}, item.Genres)
}

func TestParseUpcomingSkipsContentBeforeFirstHeading(t *testing.T) {
	t.Parallel()

	markup := `<html><body><main><div class="container">
		<div class="row">
			<div class="poster-container-large"><img src="x.jpg" alt="Orphan"></div>
		</div>
		<div class="row"><h2>Next Week</h2></div>
		<div class="row">
			<div class="poster-container-large"><img src="y.jpg" alt="Kept"></div>
		</div>
	</div></main></body></html>`

	sections := ParseUpcoming([]byte(markup))

	require.Len(t, sections, 1)
	require.Equal(t, "Next Week", sections[0].Name)
	require.Len(t, sections[0].Items, 1)
	require.Equal(t, "Kept", sections[0].Items[0].Title)
}

func TestParseUpcomingEmptyInput(t *testing.T) {
	t.Parallel()

	require.Empty(t, ParseUpcoming(nil))
	require.Empty(t, ParseUpcoming([]byte("<div></div>")))
}

func TestSplitGenresRoundTrip(t *testing.T) {
	t.Parallel()

	genres := []string{"Drama", "Thriller", "Sci-Fi & Fantasy"}
	joined := strings.Join(genres, "\n        ·\n        ")

	require.Equal(t, genres, SplitGenres(joined))
}

func TestSplitGenresTrimsAndDropsEmpty(t *testing.T) {
	t.Parallel()

	require.Equal(t, []string{"Drama", "Thriller"}, SplitGenres("Drama\n·Thriller"))
	require.Equal(t, []string{"Comedy"}, SplitGenres("   Comedy   "))
	require.Empty(t, SplitGenres(""))
	require.Empty(t, SplitGenres("   \n  "))
	require.Equal(t, []string{"Drama"}, SplitGenres("·Drama·"))
}
