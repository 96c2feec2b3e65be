package indicator

import "errors"

// DayChange computes the percentage change between the most recent close and
// the one before it. A single point is compared against itself and yields 0%;
// this is the documented fallback, not an error.
func DayChange(closes []float64) (float64, error) {
	if len(closes) == 0 {
		return 0, errors.New("no closes provided")
	}
	latest := closes[len(closes)-1]
	previous := latest
	if len(closes) > 1 {
		previous = closes[len(closes)-2]
	}
	if previous == 0 {
		return 0, errors.New("previous close is zero")
	}
	return (latest - previous) / previous * 100, nil
}

// PeriodPerformance computes the percentage change from the first to the last
// close of a lookback window. Unlike DayChange, fewer than two points is an
// error: the caller drops the entry instead of zero-filling it.
func PeriodPerformance(closes []float64) (float64, error) {
	if len(closes) < 2 {
		return 0, errors.New("need at least two closes")
	}
	first := closes[0]
	if first == 0 {
		return 0, errors.New("first close is zero")
	}
	last := closes[len(closes)-1]
	return (last - first) / first * 100, nil
}
