package provider

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"time"

	"StockBoard/internal/model"
)

// RESTFetcher implements Fetcher against a self-hosted market-data REST API.
// Used when data_source.base_url is configured instead of Yahoo.
type RESTFetcher struct {
	BaseURL string
	APIKey  string
	Client  *http.Client
}

// NewRESTFetcher creates a new fetcher with optional proxy support.
func NewRESTFetcher(baseURL, apiKey, proxyURL string) *RESTFetcher {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &RESTFetcher{
		BaseURL: baseURL,
		APIKey:  apiKey,
		Client: &http.Client{
			Timeout:   30 * time.Second,
			Transport: transport,
		},
	}
}

func (f *RESTFetcher) Name() string { return "rest" }

// restBar is the expected JSON shape of a bar from the provider.
type restBar struct {
	Timestamp int64   `json:"timestamp"`
	Open      float64 `json:"open"`
	High      float64 `json:"high"`
	Low       float64 `json:"low"`
	Close     float64 `json:"close"`
	Volume    float64 `json:"volume"`
}

func (f *RESTFetcher) getJSON(endpoint string, out interface{}) error {
	req, err := http.NewRequest("GET", endpoint, nil)
	if err != nil {
		return err
	}
	if f.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+f.APIKey)
	}
	resp, err := f.Client.Do(req)
	if err != nil {
		return fmt.Errorf("provider fetch: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("provider: status %d, body: %s", resp.StatusCode, string(body))
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("provider decode: %w", err)
	}
	return nil
}

func (f *RESTFetcher) fetchBars(endpoint string) ([]model.PriceBar, error) {
	var raw []restBar
	if err := f.getJSON(endpoint, &raw); err != nil {
		return nil, err
	}
	bars := make([]model.PriceBar, len(raw))
	for i, rb := range raw {
		bars[i] = model.PriceBar{
			Time:   time.Unix(rb.Timestamp, 0),
			Open:   rb.Open,
			High:   rb.High,
			Low:    rb.Low,
			Close:  rb.Close,
			Volume: rb.Volume,
		}
	}
	// Ensure chronological order
	sort.Slice(bars, func(i, j int) bool { return bars[i].Time.Before(bars[j].Time) })
	return bars, nil
}

func (f *RESTFetcher) FetchHistory(symbol string, lookback model.Lookback) ([]model.PriceBar, error) {
	endpoint := fmt.Sprintf("%s/api/v1/bars/daily?symbol=%s&range=%s",
		f.BaseURL, url.QueryEscape(symbol), lookback)
	return f.fetchBars(endpoint)
}

func (f *RESTFetcher) FetchQuote(symbol string) ([]model.PriceBar, error) {
	endpoint := fmt.Sprintf("%s/api/v1/bars/recent?symbol=%s", f.BaseURL, url.QueryEscape(symbol))
	return f.fetchBars(endpoint)
}

// restProfile is the expected JSON shape of an issuer profile.
type restProfile struct {
	Sector           string   `json:"sector"`
	Industry         string   `json:"industry"`
	Website          string   `json:"website"`
	Summary          string   `json:"summary"`
	MarketCap        *float64 `json:"market_cap"`
	TrailingPE       *float64 `json:"trailing_pe"`
	PriceToBook      *float64 `json:"price_to_book"`
	DividendYield    *float64 `json:"dividend_yield"`
	FiftyTwoWeekHigh *float64 `json:"week52_high"`
	FiftyTwoWeekLow  *float64 `json:"week52_low"`
}

func (f *RESTFetcher) FetchProfile(symbol string) (*model.CompanyProfile, error) {
	endpoint := fmt.Sprintf("%s/api/v1/profile?symbol=%s", f.BaseURL, url.QueryEscape(symbol))
	var raw restProfile
	if err := f.getJSON(endpoint, &raw); err != nil {
		return nil, err
	}
	return &model.CompanyProfile{
		Symbol:           symbol,
		Sector:           raw.Sector,
		Industry:         raw.Industry,
		Website:          raw.Website,
		Summary:          raw.Summary,
		MarketCap:        raw.MarketCap,
		TrailingPE:       raw.TrailingPE,
		PriceToBook:      raw.PriceToBook,
		DividendYield:    raw.DividendYield,
		FiftyTwoWeekHigh: raw.FiftyTwoWeekHigh,
		FiftyTwoWeekLow:  raw.FiftyTwoWeekLow,
	}, nil
}

// restNewsItem is the expected JSON shape of a news article.
type restNewsItem struct {
	Title       string `json:"title"`
	Publisher   string `json:"publisher"`
	Link        string `json:"link"`
	PublishedAt int64  `json:"published_at"`
}

func (f *RESTFetcher) FetchNews(symbol string) ([]model.NewsItem, error) {
	endpoint := fmt.Sprintf("%s/api/v1/news?symbol=%s", f.BaseURL, url.QueryEscape(symbol))
	var raw []restNewsItem
	if err := f.getJSON(endpoint, &raw); err != nil {
		return nil, err
	}
	items := make([]model.NewsItem, len(raw))
	for i, n := range raw {
		items[i] = model.NewsItem{
			Title:       n.Title,
			Publisher:   n.Publisher,
			Link:        n.Link,
			PublishedAt: time.Unix(n.PublishedAt, 0),
		}
	}
	return items, nil
}
