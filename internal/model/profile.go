package model

import (
	"time"

	"github.com/dustin/go-humanize"
)

// CompanyProfile holds issuer metadata. Any field may be absent: string fields
// are empty, numeric fields nil. Absence is per-field and never fails the panel.
type CompanyProfile struct {
	Symbol           string
	Sector           string
	Industry         string
	Website          string
	Summary          string
	MarketCap        *float64
	TrailingPE       *float64
	PriceToBook      *float64
	DividendYield    *float64
	FiftyTwoWeekHigh *float64
	FiftyTwoWeekLow  *float64
}

// MarketCapLabel formats the market cap with thousands separators, N/A when absent.
func (p *CompanyProfile) MarketCapLabel() string {
	if p.MarketCap == nil {
		return Unavailable
	}
	return "$" + humanize.Comma(int64(*p.MarketCap))
}

// NewsItem is one published article about a ticker.
type NewsItem struct {
	Title       string
	Publisher   string
	PublishedAt time.Time
	Link        string
}
