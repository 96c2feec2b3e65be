package provider

import (
	"fmt"
	"time"

	"StockBoard/internal/model"
)

// MockFetcher returns controllable fixed data for development and testing.
// Per-symbol overrides take precedence; symbols listed in Fail error out.
type MockFetcher struct {
	Price    float64
	Bars     map[string][]model.PriceBar
	Profiles map[string]*model.CompanyProfile
	News     map[string][]model.NewsItem
	Fail     map[string]bool
	Empty    map[string]bool

	HistoryCalls int
	QuoteCalls   int
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) err(symbol string) error {
	if m.Fail[symbol] {
		return fmt.Errorf("mock: fetch failed for %s", symbol)
	}
	return nil
}

func (m *MockFetcher) bars(symbol string, count int) []model.PriceBar {
	if m.Empty[symbol] {
		return nil
	}
	if b, ok := m.Bars[symbol]; ok {
		return b
	}
	return GenerateBars(m.Price, count)
}

func (m *MockFetcher) FetchHistory(symbol string, _ model.Lookback) ([]model.PriceBar, error) {
	m.HistoryCalls++
	if err := m.err(symbol); err != nil {
		return nil, err
	}
	return m.bars(symbol, 60), nil
}

func (m *MockFetcher) FetchQuote(symbol string) ([]model.PriceBar, error) {
	m.QuoteCalls++
	if err := m.err(symbol); err != nil {
		return nil, err
	}
	return m.bars(symbol, 5), nil
}

func (m *MockFetcher) FetchProfile(symbol string) (*model.CompanyProfile, error) {
	if err := m.err(symbol); err != nil {
		return nil, err
	}
	if p, ok := m.Profiles[symbol]; ok {
		return p, nil
	}
	return &model.CompanyProfile{Symbol: symbol, Sector: "Technology"}, nil
}

func (m *MockFetcher) FetchNews(symbol string) ([]model.NewsItem, error) {
	if err := m.err(symbol); err != nil {
		return nil, err
	}
	if n, ok := m.News[symbol]; ok {
		return n, nil
	}
	return nil, nil
}

// GenerateBars builds a deterministic ascending bar sequence around basePrice.
func GenerateBars(basePrice float64, count int) []model.PriceBar {
	bars := make([]model.PriceBar, count)
	for i := 0; i < count; i++ {
		p := basePrice * (1 + float64(i-count/2)*0.001)
		bars[i] = model.PriceBar{
			Time:   time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, i),
			Open:   p * 0.999,
			High:   p * 1.005,
			Low:    p * 0.995,
			Close:  p,
			Volume: 1000000,
		}
	}
	return bars
}
