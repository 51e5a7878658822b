package calculator

import (
	"math"
	"testing"
)

func TestLogReturns(t *testing.T) {
	prices := []float64{100, 110, 99}
	rets := LogReturns(prices)
	if len(rets) != 2 {
		t.Fatalf("expected 2 returns, got %d", len(rets))
	}
	if !almostEqual(rets[0], math.Log(1.1)) {
		t.Errorf("expected ln(1.1), got %v", rets[0])
	}
	if !almostEqual(rets[1], math.Log(0.9)) {
		t.Errorf("expected ln(0.9), got %v", rets[1])
	}
}

func TestSimpleReturns(t *testing.T) {
	rets := SimpleReturns([]float64{100, 105})
	if len(rets) != 1 || !almostEqual(rets[0], 0.05) {
		t.Errorf("expected [0.05], got %v", rets)
	}
}

func TestReturns_TooShort(t *testing.T) {
	if LogReturns([]float64{100}) != nil {
		t.Error("expected nil for single observation")
	}
	if SimpleReturns(nil) != nil {
		t.Error("expected nil for empty slice")
	}
}

func TestStdDev(t *testing.T) {
	// sample stddev of {2,4,4,4,5,5,7,9} is sqrt(32/7)
	xs := []float64{2, 4, 4, 4, 5, 5, 7, 9}
	want := math.Sqrt(32.0 / 7.0)
	if got := StdDev(xs); !almostEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
	if StdDev([]float64{5}) != 0 {
		t.Error("expected 0 for single observation")
	}
}

func TestQuantile(t *testing.T) {
	xs := []float64{4, 1, 3, 2, 5}
	tests := []struct {
		q    float64
		want float64
	}{
		{0, 1},
		{0.25, 2},
		{0.5, 3},
		{0.75, 4},
		{1, 5},
		{0.05, 1.2},
	}
	for _, tt := range tests {
		if got := Quantile(xs, tt.q); !almostEqual(got, tt.want) {
			t.Errorf("q=%.2f: expected %v, got %v", tt.q, tt.want, got)
		}
	}
	if !math.IsNaN(Quantile(nil, 0.5)) {
		t.Error("expected NaN for empty slice")
	}
}

func TestAutocorrelation(t *testing.T) {
	// perfectly alternating series has strong negative lag-1 autocorrelation
	xs := []float64{1, -1, 1, -1, 1, -1, 1, -1}
	if ac := Autocorrelation(xs, 1); ac >= 0 {
		t.Errorf("expected negative lag-1 autocorrelation, got %v", ac)
	}
	// constant series is undefined, reported as 0
	if ac := Autocorrelation([]float64{3, 3, 3, 3}, 1); ac != 0 {
		t.Errorf("expected 0 for constant series, got %v", ac)
	}
}

func TestRollingVolatility_Alignment(t *testing.T) {
	rets := []float64{0.01, -0.02, 0.03, 0.01, -0.01}
	values, defined, err := RollingVolatility(rets, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if defined[0] || defined[1] {
		t.Error("expected warmup points undefined")
	}
	want := StdDev(rets[0:3])
	if !defined[2] || !almostEqual(values[2], want) {
		t.Errorf("expected %v at index 2, got %v", want, values[2])
	}
}

func TestSkewnessKurtosis_Symmetric(t *testing.T) {
	xs := []float64{-2, -1, 0, 1, 2}
	if s := Skewness(xs); !almostEqual(s, 0) {
		t.Errorf("expected 0 skewness for symmetric data, got %v", s)
	}
	if Kurtosis([]float64{1, 1, 1, 1, 1}) != 0 {
		t.Error("expected 0 kurtosis for constant data")
	}
}
