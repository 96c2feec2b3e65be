package model

// IndicatorSet holds the derived series for one price history. Each slice is
// aligned 1:1 with the bar sequence it was computed from; entries before a
// window is fully populated are NaN.
type IndicatorSet struct {
	SMA20 []float64
	SMA50 []float64
	RSI   []float64
}

// Empty reports whether no indicator values were computed.
func (s IndicatorSet) Empty() bool {
	return len(s.SMA20) == 0 && len(s.SMA50) == 0 && len(s.RSI) == 0
}
