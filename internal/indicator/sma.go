package indicator

import (
	"errors"
	"math"

	"StockBoard/internal/model"
)

// Conventional windows for the dashboard's indicator triple.
const (
	SMAShortWindow = 20
	SMALongWindow  = 50
	RSIWindow      = 14
)

// SMA computes the simple moving average of prices over the given window.
// The output is aligned 1:1 with the input: entries before the window is fully
// populated are NaN, never zero. Works for any window >= 1; a window larger
// than the input yields an all-NaN series.
func SMA(prices []float64, window int) ([]float64, error) {
	if window <= 0 {
		return nil, errors.New("window must be positive")
	}
	out := make([]float64, len(prices))
	var sum float64
	for i, p := range prices {
		out[i] = math.NaN()
		sum += p
		if i >= window {
			sum -= prices[i-window]
		}
		if i >= window-1 {
			out[i] = sum / float64(window)
		}
	}
	return out, nil
}

// Analyze derives the aligned SMA-20 / SMA-50 / RSI-14 triple from daily bars.
// An empty bar sequence yields empty series, not an error; the caller skips
// chart rendering instead.
func Analyze(bars []model.PriceBar) (model.IndicatorSet, error) {
	if len(bars) == 0 {
		return model.IndicatorSet{}, nil
	}
	closes := model.Closes(bars)

	sma20, err := SMA(closes, SMAShortWindow)
	if err != nil {
		return model.IndicatorSet{}, err
	}
	sma50, err := SMA(closes, SMALongWindow)
	if err != nil {
		return model.IndicatorSet{}, err
	}
	rsi, err := RSI(closes, RSIWindow)
	if err != nil {
		return model.IndicatorSet{}, err
	}
	return model.IndicatorSet{SMA20: sma20, SMA50: sma50, RSI: rsi}, nil
}
