package model

import (
	"fmt"
	"time"
)

// Unavailable is the sentinel rendered for fields that could not be fetched.
const Unavailable = "N/A"

// TickerSnapshot is one watchlist row. When Valid is false the numeric fields
// are meaningless and every field renders as Unavailable; a failed symbol never
// affects its siblings.
type TickerSnapshot struct {
	Name        string
	Ticker      string
	Price       float64
	ChangePct   float64
	LastUpdated time.Time
	Valid       bool
}

// UnavailableSnapshot builds the all-N/A row for a symbol that failed.
func UnavailableSnapshot(name, ticker string) TickerSnapshot {
	return TickerSnapshot{Name: name, Ticker: ticker}
}

// PriceLabel formats the price for display.
func (s TickerSnapshot) PriceLabel() string {
	if !s.Valid {
		return Unavailable
	}
	return fmt.Sprintf("%.2f", s.Price)
}

// ChangeLabel formats the day change for display.
func (s TickerSnapshot) ChangeLabel() string {
	if !s.Valid {
		return Unavailable
	}
	return fmt.Sprintf("%.2f%%", s.ChangePct)
}

// DateLabel formats the last-updated date for display.
func (s TickerSnapshot) DateLabel() string {
	if !s.Valid {
		return Unavailable
	}
	return s.LastUpdated.Format("2006-01-02")
}

// PerformanceEntry is one ticker's return over a fixed lookback window.
// Symbols whose data is unavailable or undersized are omitted from the list
// entirely rather than zero-filled.
type PerformanceEntry struct {
	Ticker         string
	PerformancePct float64
}
