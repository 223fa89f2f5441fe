package collyfetcher

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"flixapi/internal/catalog"
)

func TestFetchSendsIdentityAndReferer(t *testing.T) {
	t.Parallel()

	headers := make(chan http.Header, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		headers <- r.Header.Clone()
		_, _ = w.Write([]byte("<html>ok</html>"))
	}))
	defer srv.Close()

	f := New(Config{Timeout: 2 * time.Second})
	resp, err := f.Fetch(context.Background(), catalog.FetchRequest{
		URL:     srv.URL,
		Referer: "https://flixable.com/popular",
	})

	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, []byte("<html>ok</html>"), resp.Body)

	got := <-headers
	require.Equal(t, "https://flixable.com/popular", got.Get("Referer"))
	require.NotEmpty(t, got.Get("User-Agent"))
}

func TestFetchAllowsRevisits(t *testing.T) {
	t.Parallel()

	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		_, _ = w.Write([]byte("ok"))
	}))
	defer srv.Close()

	f := New(Config{Timeout: 2 * time.Second})
	for i := 0; i < 2; i++ {
		_, err := f.Fetch(context.Background(), catalog.FetchRequest{URL: srv.URL})
		require.NoError(t, err)
	}
	require.Equal(t, int32(2), hits.Load())
}

func TestFetchNonSuccessStatus(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	f := New(Config{Timeout: 2 * time.Second})
	_, err := f.Fetch(context.Background(), catalog.FetchRequest{URL: srv.URL})

	require.Error(t, err)
}

func TestFetchTimesOut(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(300 * time.Millisecond)
		_, _ = w.Write([]byte("late"))
	}))
	defer srv.Close()

	f := New(Config{Timeout: 50 * time.Millisecond})
	_, err := f.Fetch(context.Background(), catalog.FetchRequest{URL: srv.URL})

	require.Error(t, err)
}

func TestFetchCanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(100 * time.Millisecond)
		_, _ = w.Write([]byte("ok"))
	}))
	defer srv.Close()

	f := New(Config{Timeout: 2 * time.Second})
	_, err := f.Fetch(ctx, catalog.FetchRequest{URL: srv.URL})

	require.Error(t, err)
	require.ErrorIs(t, err, context.Canceled)
}

func TestAgentPoolRandomIsAlwaysKnown(t *testing.T) {
	t.Parallel()

	pool := NewAgentPool()
	known := make(map[string]struct{}, len(desktopAgents))
	for _, a := range desktopAgents {
		known[a] = struct{}{}
	}
	for i := 0; i < 100; i++ {
		agent := pool.Random()
		require.NotEmpty(t, agent)
		_, ok := known[agent]
		require.True(t, ok)
	}
}
