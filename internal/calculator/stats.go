package calculator

import (
	"math"
	"sort"
)

// Mean returns the arithmetic mean, or 0 for an empty slice.
func Mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	sum := 0.0
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

// StdDev returns the sample standard deviation, or 0 with fewer than two
// observations.
func StdDev(xs []float64) float64 {
	if len(xs) < 2 {
		return 0
	}
	m := Mean(xs)
	sum := 0.0
	for _, x := range xs {
		d := x - m
		sum += d * d
	}
	return math.Sqrt(sum / float64(len(xs)-1))
}

// Skewness returns the sample skewness, or 0 when undefined.
func Skewness(xs []float64) float64 {
	n := float64(len(xs))
	if n < 3 {
		return 0
	}
	m := Mean(xs)
	s := StdDev(xs)
	if s == 0 {
		return 0
	}
	sum := 0.0
	for _, x := range xs {
		d := (x - m) / s
		sum += d * d * d
	}
	return n / ((n - 1) * (n - 2)) * sum
}

// Kurtosis returns the sample excess kurtosis, or 0 when undefined.
func Kurtosis(xs []float64) float64 {
	n := float64(len(xs))
	if n < 4 {
		return 0
	}
	m := Mean(xs)
	s := StdDev(xs)
	if s == 0 {
		return 0
	}
	sum := 0.0
	for _, x := range xs {
		d := (x - m) / s
		sum += d * d * d * d
	}
	adj := 3 * (n - 1) * (n - 1) / ((n - 2) * (n - 3))
	return n*(n+1)/((n-1)*(n-2)*(n-3))*sum - adj
}

// Quantile returns the empirical q-quantile (0 <= q <= 1) using linear
// interpolation between order statistics.
func Quantile(xs []float64, q float64) float64 {
	if len(xs) == 0 {
		return math.NaN()
	}
	sorted := make([]float64, len(xs))
	copy(sorted, xs)
	sort.Float64s(sorted)

	if q <= 0 {
		return sorted[0]
	}
	if q >= 1 {
		return sorted[len(sorted)-1]
	}
	pos := q * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	frac := pos - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac
}

// Autocorrelation returns the lag-k autocorrelation, or 0 when undefined.
func Autocorrelation(xs []float64, lag int) float64 {
	if lag <= 0 || len(xs) <= lag {
		return 0
	}
	m := Mean(xs)
	var num, den float64
	for i := 0; i < len(xs); i++ {
		d := xs[i] - m
		den += d * d
	}
	if den == 0 {
		return 0
	}
	for i := lag; i < len(xs); i++ {
		num += (xs[i] - m) * (xs[i-lag] - m)
	}
	return num / den
}
