package indicator

import (
	"errors"
	"math"
)

// RSI computes the Relative Strength Index over the given window, using simple
// moving averages of gains and losses (Cutler's variant). The output is aligned
// 1:1 with the input. The first difference is undefined, so the earliest
// defined value sits at index == window; everything before is NaN.
//
// A zero-loss window with gains resolves to 100. A window with no movement at
// all (zero gain and zero loss) is left NaN: the ratio is 0/0 and downstream
// code treats the value as undefined rather than inventing a midpoint.
func RSI(prices []float64, window int) ([]float64, error) {
	if window <= 0 {
		return nil, errors.New("window must be positive")
	}
	n := len(prices)
	out := make([]float64, n)
	for i := range out {
		out[i] = math.NaN()
	}
	if n < 2 {
		return out, nil
	}

	gains := make([]float64, n)
	losses := make([]float64, n)
	var sumGain, sumLoss float64
	for i := 1; i < n; i++ {
		delta := prices[i] - prices[i-1]
		if delta > 0 {
			gains[i] = delta
		} else {
			losses[i] = -delta
		}
		sumGain += gains[i]
		sumLoss += losses[i]
		if i > window {
			sumGain -= gains[i-window]
			sumLoss -= losses[i-window]
		}
		if i < window {
			continue
		}

		avgGain := sumGain / float64(window)
		avgLoss := sumLoss / float64(window)
		switch {
		case avgLoss == 0 && avgGain == 0:
			// flat window, undefined
		case avgLoss == 0:
			out[i] = 100.0
		default:
			rs := avgGain / avgLoss
			out[i] = 100.0 - 100.0/(1.0+rs)
		}
	}
	return out, nil
}
