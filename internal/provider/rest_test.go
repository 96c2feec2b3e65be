package provider

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"StockBoard/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRESTFetcher_FetchHistory(t *testing.T) {
	var gotAuth, gotRange string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotRange = r.URL.Query().Get("range")
		// Out of order on purpose: the fetcher must sort ascending.
		w.Write([]byte(`[
			{"timestamp":1704153600,"open":11,"high":11.5,"low":10.5,"close":11.2,"volume":2000},
			{"timestamp":1704067200,"open":10,"high":10.5,"low":9.5,"close":10.2,"volume":1000}]`))
	}))
	defer srv.Close()

	f := NewRESTFetcher(srv.URL, "secret", "")
	bars, err := f.FetchHistory("TST", model.Lookback3M)
	require.NoError(t, err)

	assert.Equal(t, "Bearer secret", gotAuth)
	assert.Equal(t, "3mo", gotRange)
	require.Len(t, bars, 2)
	assert.Equal(t, 10.2, bars[0].Close)
	assert.Equal(t, 11.2, bars[1].Close)
}

func TestRESTFetcher_ErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	}))
	defer srv.Close()

	f := NewRESTFetcher(srv.URL, "", "")
	_, err := f.FetchQuote("TST")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 502")
}

func TestRESTFetcher_FetchProfileAndNews(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/profile", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"sector":"Energy","market_cap":5000000,"trailing_pe":null}`))
	})
	mux.HandleFunc("/api/v1/news", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"title":"Spin-off","publisher":"Wire","link":"https://x","published_at":1704067200}]`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	f := NewRESTFetcher(srv.URL, "", "")
	p, err := f.FetchProfile("TST")
	require.NoError(t, err)
	assert.Equal(t, "Energy", p.Sector)
	require.NotNil(t, p.MarketCap)
	assert.Equal(t, 5e6, *p.MarketCap)
	assert.Nil(t, p.TrailingPE)

	items, err := f.FetchNews("TST")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Spin-off", items[0].Title)
}
