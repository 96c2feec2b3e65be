package provider

import "StockBoard/internal/model"

// Fetcher defines the interface for the market-data facade. Any call may fail
// or return an empty result; callers degrade per panel rather than abort.
type Fetcher interface {
	// FetchHistory returns daily bars over the lookback window, ascending by time.
	FetchHistory(symbol string, lookback model.Lookback) ([]model.PriceBar, error)
	// FetchQuote returns the most recent daily bars (enough for a day change).
	FetchQuote(symbol string) ([]model.PriceBar, error)
	FetchProfile(symbol string) (*model.CompanyProfile, error)
	FetchNews(symbol string) ([]model.NewsItem, error)
	Name() string
}
