package indicator

import (
	"math"
	"testing"

	"StockBoard/internal/model"
)

func defined(series []float64) int {
	n := 0
	for _, v := range series {
		if !math.IsNaN(v) {
			n++
		}
	}
	return n
}

func TestSMA_AlignmentAndValues(t *testing.T) {
	prices := []float64{1, 2, 3, 4, 5, 6}
	out, err := SMA(prices, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != len(prices) {
		t.Fatalf("expected aligned output, got len %d", len(out))
	}
	if !math.IsNaN(out[0]) || !math.IsNaN(out[1]) {
		t.Error("entries before the window is populated must be NaN")
	}
	want := []float64{2, 3, 4, 5}
	for i, w := range want {
		if got := out[i+2]; math.Abs(got-w) > 1e-9 {
			t.Errorf("out[%d] = %v, want %v", i+2, got, w)
		}
	}
}

func TestSMA_DefinedCount(t *testing.T) {
	prices := make([]float64, 30)
	for i := range prices {
		prices[i] = 100 + float64(i)
	}
	for _, w := range []int{1, 5, 20, 30} {
		out, err := SMA(prices, w)
		if err != nil {
			t.Fatalf("window %d: %v", w, err)
		}
		if got, want := defined(out), len(prices)-w+1; got != want {
			t.Errorf("window %d: %d defined values, want %d", w, got, want)
		}
	}
}

func TestSMA_WindowLargerThanInput(t *testing.T) {
	out, err := SMA([]float64{1, 2, 3}, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if defined(out) != 0 {
		t.Errorf("expected all-NaN output for window > len, got %d defined", defined(out))
	}
}

func TestSMA_InvalidWindow(t *testing.T) {
	if _, err := SMA([]float64{1, 2}, 0); err == nil {
		t.Error("expected error for window 0")
	}
}

func TestAnalyze_EmptyInput(t *testing.T) {
	set, err := Analyze(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !set.Empty() {
		t.Error("expected empty indicator set for empty input")
	}
}

func TestAnalyze_Idempotent(t *testing.T) {
	bars := make([]model.PriceBar, 80)
	for i := range bars {
		bars[i].Close = 100 + math.Sin(float64(i))*10
	}
	a, err := Analyze(bars)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := Analyze(bars)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := range a.RSI {
		if math.Float64bits(a.SMA20[i]) != math.Float64bits(b.SMA20[i]) ||
			math.Float64bits(a.SMA50[i]) != math.Float64bits(b.SMA50[i]) ||
			math.Float64bits(a.RSI[i]) != math.Float64bits(b.RSI[i]) {
			t.Fatalf("outputs differ at index %d", i)
		}
	}
}
