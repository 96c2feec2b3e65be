package model

import "fmt"

// Lookback is the historical window requested for a price series.
type Lookback string

const (
	Lookback1M Lookback = "1mo"
	Lookback3M Lookback = "3mo"
	Lookback6M Lookback = "6mo"
	Lookback1Y Lookback = "1y"
	Lookback2Y Lookback = "2y"
	Lookback5Y Lookback = "5y"
)

// Lookbacks is the fixed set of selectable windows, in presentation order.
var Lookbacks = []Lookback{Lookback1M, Lookback3M, Lookback6M, Lookback1Y, Lookback2Y, Lookback5Y}

// ParseLookback validates a user-supplied range string.
func ParseLookback(s string) (Lookback, error) {
	for _, l := range Lookbacks {
		if string(l) == s {
			return l, nil
		}
	}
	return "", fmt.Errorf("unknown lookback %q", s)
}
