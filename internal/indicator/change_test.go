package indicator

import (
	"math"
	"testing"
)

func TestDayChange(t *testing.T) {
	tests := []struct {
		name    string
		closes  []float64
		want    float64
		wantErr bool
	}{
		{"up", []float64{100, 110}, 10.0, false},
		{"down", []float64{100, 90}, -10.0, false},
		{"single point fallback", []float64{100}, 0.0, false},
		{"longer series uses last pair", []float64{50, 100, 110}, 10.0, false},
		{"empty", nil, 0, true},
		{"zero previous", []float64{0, 10}, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DayChange(tt.closes)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("got %.4f, want %.4f", got, tt.want)
			}
		})
	}
}

func TestPeriodPerformance(t *testing.T) {
	got, err := PeriodPerformance([]float64{50, 55, 60})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(got-20.0) > 1e-9 {
		t.Errorf("got %.4f, want 20.0", got)
	}

	// Fewer than two points is an error, not a zero: the caller omits the entry.
	if _, err := PeriodPerformance([]float64{50}); err == nil {
		t.Error("expected error for single point")
	}
	if _, err := PeriodPerformance(nil); err == nil {
		t.Error("expected error for empty series")
	}
	if _, err := PeriodPerformance([]float64{0, 10}); err == nil {
		t.Error("expected error for zero first close")
	}
}
