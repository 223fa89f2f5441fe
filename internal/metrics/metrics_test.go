package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
)

func TestInitIsIdempotent(t *testing.T) {
	Init()
	Init()

	require.NotPanics(t, func() {
		ObserveScrape("us", "popular", "ok", 120*time.Millisecond)
		ObserveScrape("us", "coming-soon", "error", time.Second)
		ObserveEnrich("hit")
		ObserveEnrich("miss")
		RefreshStarted()
		RefreshFinished()
		ObserveHTTPRequest(http.MethodGet, "/langs", http.StatusOK, 5*time.Millisecond)
	})
}

func TestHandlerServesMetrics(t *testing.T) {
	Init()
	ObserveScrape("us", "popular", "ok", time.Millisecond)

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "flixapi_scrape_pages_total")
}

func TestMiddlewareRecordsRoutePattern(t *testing.T) {
	Init()

	r := chi.NewRouter()
	r.Use(Middleware)
	r.Get("/{lang}/popular", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/us/popular", nil))

	require.Equal(t, http.StatusOK, rec.Code)
}
