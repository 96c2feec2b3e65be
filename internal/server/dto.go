package server

import (
	"math"

	"StockBoard/internal/board"
	"StockBoard/internal/model"
)

// Wire shapes for the dashboard UI. Undefined indicator values and unavailable
// snapshot fields serialize as JSON null, never zero.

type barDTO struct {
	Date   string  `json:"date"`
	Open   float64 `json:"open"`
	High   float64 `json:"high"`
	Low    float64 `json:"low"`
	Close  float64 `json:"close"`
	Volume float64 `json:"volume"`
}

type indicatorsDTO struct {
	SMA20 []*float64 `json:"sma20"`
	SMA50 []*float64 `json:"sma50"`
	RSI   []*float64 `json:"rsi"`
}

type historyDTO struct {
	Status     string         `json:"status"`
	Message    string         `json:"message,omitempty"`
	Symbol     string         `json:"symbol"`
	Range      string         `json:"range"`
	Bars       []barDTO       `json:"bars,omitempty"`
	Indicators *indicatorsDTO `json:"indicators,omitempty"`
}

type snapshotDTO struct {
	Name        string   `json:"name"`
	Ticker      string   `json:"ticker"`
	Price       *float64 `json:"price"`
	ChangePct   *float64 `json:"change_pct"`
	LastUpdated *string  `json:"last_updated"`
	PriceLabel  string   `json:"price_label"`
	ChangeLabel string   `json:"change_label"`
	DateLabel   string   `json:"date_label"`
}

type performanceDTO struct {
	Ticker         string  `json:"ticker"`
	PerformancePct float64 `json:"performance_pct"`
}

type profileDTO struct {
	Status           string   `json:"status"`
	Message          string   `json:"message,omitempty"`
	Symbol           string   `json:"symbol"`
	Sector           string   `json:"sector,omitempty"`
	Industry         string   `json:"industry,omitempty"`
	Website          string   `json:"website,omitempty"`
	Summary          string   `json:"summary,omitempty"`
	MarketCap        *float64 `json:"market_cap"`
	MarketCapLabel   string   `json:"market_cap_label,omitempty"`
	TrailingPE       *float64 `json:"trailing_pe"`
	PriceToBook      *float64 `json:"price_to_book"`
	DividendYield    *float64 `json:"dividend_yield"`
	FiftyTwoWeekHigh *float64 `json:"week52_high"`
	FiftyTwoWeekLow  *float64 `json:"week52_low"`
}

type newsItemDTO struct {
	Title       string `json:"title"`
	Publisher   string `json:"publisher"`
	PublishedAt string `json:"published_at"`
	Link        string `json:"link"`
}

type newsDTO struct {
	Status  string        `json:"status"`
	Message string        `json:"message,omitempty"`
	Symbol  string        `json:"symbol"`
	Items   []newsItemDTO `json:"items,omitempty"`
}

// optSeries converts a NaN-marked series into a nullable one.
func optSeries(series []float64) []*float64 {
	out := make([]*float64, len(series))
	for i, v := range series {
		if math.IsNaN(v) {
			continue
		}
		v := v
		out[i] = &v
	}
	return out
}

func toHistoryDTO(symbol string, lookback model.Lookback, res board.HistoryResult) historyDTO {
	dto := historyDTO{
		Status:  string(res.Status),
		Message: res.Message,
		Symbol:  symbol,
		Range:   string(lookback),
	}
	if res.Status != board.StatusOK {
		return dto
	}
	dto.Bars = make([]barDTO, len(res.Bars))
	for i, b := range res.Bars {
		dto.Bars[i] = barDTO{
			Date:   b.Time.Format("2006-01-02"),
			Open:   b.Open,
			High:   b.High,
			Low:    b.Low,
			Close:  b.Close,
			Volume: b.Volume,
		}
	}
	dto.Indicators = &indicatorsDTO{
		SMA20: optSeries(res.Indicators.SMA20),
		SMA50: optSeries(res.Indicators.SMA50),
		RSI:   optSeries(res.Indicators.RSI),
	}
	return dto
}

func toSnapshotDTO(s model.TickerSnapshot) snapshotDTO {
	dto := snapshotDTO{
		Name:        s.Name,
		Ticker:      s.Ticker,
		PriceLabel:  s.PriceLabel(),
		ChangeLabel: s.ChangeLabel(),
		DateLabel:   s.DateLabel(),
	}
	if s.Valid {
		price, change := s.Price, s.ChangePct
		date := s.LastUpdated.Format("2006-01-02")
		dto.Price = &price
		dto.ChangePct = &change
		dto.LastUpdated = &date
	}
	return dto
}

func toProfileDTO(symbol string, res board.ProfileResult) profileDTO {
	dto := profileDTO{
		Status:  string(res.Status),
		Message: res.Message,
		Symbol:  symbol,
	}
	if res.Status != board.StatusOK {
		return dto
	}
	p := res.Profile
	dto.Sector = p.Sector
	dto.Industry = p.Industry
	dto.Website = p.Website
	dto.Summary = p.Summary
	dto.MarketCap = p.MarketCap
	dto.MarketCapLabel = p.MarketCapLabel()
	dto.TrailingPE = p.TrailingPE
	dto.PriceToBook = p.PriceToBook
	dto.DividendYield = p.DividendYield
	dto.FiftyTwoWeekHigh = p.FiftyTwoWeekHigh
	dto.FiftyTwoWeekLow = p.FiftyTwoWeekLow
	return dto
}

func toNewsDTO(symbol string, res board.NewsResult) newsDTO {
	dto := newsDTO{
		Status:  string(res.Status),
		Message: res.Message,
		Symbol:  symbol,
	}
	for _, item := range res.Items {
		dto.Items = append(dto.Items, newsItemDTO{
			Title:       item.Title,
			Publisher:   item.Publisher,
			PublishedAt: item.PublishedAt.Format("2006-01-02 15:04"),
			Link:        item.Link,
		})
	}
	return dto
}
