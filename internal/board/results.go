package board

import "StockBoard/internal/model"

// Status classifies the outcome of one fetch-and-compute unit. Every panel
// carries its own status; no unit's failure ever blocks a sibling.
type Status string

const (
	StatusOK     Status = "ok"
	StatusNoData Status = "no_data"
	StatusError  Status = "error"
)

// HistoryResult is the price-chart panel: bars plus the aligned indicator triple.
type HistoryResult struct {
	Status     Status
	Message    string
	Bars       []model.PriceBar
	Indicators model.IndicatorSet
}

// ProfileResult is the company-information panel.
type ProfileResult struct {
	Status  Status
	Message string
	Profile *model.CompanyProfile
}

// NewsResult is the recent-news panel.
type NewsResult struct {
	Status  Status
	Message string
	Items   []model.NewsItem
}
