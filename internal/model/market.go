package model

import "time"

// PriceBar represents a single daily candlestick bar.
type PriceBar struct {
	Time   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume float64
}

// Closes extracts the closing prices from a bar sequence, preserving order.
func Closes(bars []PriceBar) []float64 {
	closes := make([]float64, len(bars))
	for i, b := range bars {
		closes[i] = b.Close
	}
	return closes
}

// WatchlistEntry is one configured (label, symbol) pair. The watchlist order
// is meaningful and preserved through aggregation.
type WatchlistEntry struct {
	Name   string `yaml:"name" json:"name"`
	Symbol string `yaml:"symbol" json:"symbol"`
}
