package provider

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"StockBoard/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const chartFixture = `{"chart":{"result":[{"timestamp":[1704067200,1704153600,1704240000],
"indicators":{"quote":[{"open":[10,11,null],"high":[10.5,11.5,null],"low":[9.5,10.5,null],
"close":[10.2,11.2,null],"volume":[1000,2000,null]}]}}],"error":null}}`

const summaryFixture = `{"quoteSummary":{"result":[{
"assetProfile":{"sector":"Technology","industry":"Semiconductors","website":"https://example.com","longBusinessSummary":"Makes chips."},
"summaryDetail":{"marketCap":{"raw":1500000000},"trailingPE":{"raw":24.5},"fiftyTwoWeekHigh":{"raw":120.5},"fiftyTwoWeekLow":{"raw":60.1}},
"defaultKeyStatistics":{"priceToBook":{"raw":3.2}}}],"error":null}}`

const searchFixture = `{"news":[
{"title":"Chips up","publisher":"Newswire","link":"https://example.com/a","providerPublishTime":1704067200},
{"title":"Chips down","publisher":"Ticker Daily","link":"https://example.com/b","providerPublishTime":1704153600}]}`

func newFixtureServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/v8/finance/chart/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(chartFixture))
	})
	mux.HandleFunc("/v10/finance/quoteSummary/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(summaryFixture))
	})
	mux.HandleFunc("/v1/finance/search", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(searchFixture))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestYahooFetcher_FetchHistory(t *testing.T) {
	srv := newFixtureServer(t)
	f := NewYahooFetcher("")
	f.BaseURL = srv.URL

	bars, err := f.FetchHistory("TST", model.Lookback1Y)
	require.NoError(t, err)
	// The all-null third bar is skipped, the rest kept in ascending order.
	require.Len(t, bars, 2)
	assert.Equal(t, 10.2, bars[0].Close)
	assert.Equal(t, 11.2, bars[1].Close)
	assert.True(t, bars[0].Time.Before(bars[1].Time))
}

func TestYahooFetcher_FetchProfile(t *testing.T) {
	srv := newFixtureServer(t)
	f := NewYahooFetcher("")
	f.BaseURL = srv.URL

	p, err := f.FetchProfile("TST")
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, "Technology", p.Sector)
	assert.Equal(t, "Semiconductors", p.Industry)
	require.NotNil(t, p.MarketCap)
	assert.Equal(t, 1.5e9, *p.MarketCap)
	require.NotNil(t, p.PriceToBook)
	assert.Equal(t, 3.2, *p.PriceToBook)
	// Absent fields stay nil, not zero.
	assert.Nil(t, p.DividendYield)
}

func TestYahooFetcher_FetchNews(t *testing.T) {
	srv := newFixtureServer(t)
	f := NewYahooFetcher("")
	f.BaseURL = srv.URL

	items, err := f.FetchNews("TST")
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Chips up", items[0].Title)
	assert.Equal(t, "Newswire", items[0].Publisher)
}

func TestYahooFetcher_EmptyChart(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"chart":{"result":[],"error":null}}`))
	}))
	defer srv.Close()
	f := NewYahooFetcher("")
	f.BaseURL = srv.URL

	bars, err := f.FetchHistory("GONE", model.Lookback1M)
	require.NoError(t, err)
	assert.Empty(t, bars)
}
