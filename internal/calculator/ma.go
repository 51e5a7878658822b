package calculator

import "errors"

// ErrInsufficientData is returned when a series is shorter than the
// requested window.
var ErrInsufficientData = errors.New("not enough data for calculation")

// SMASeries computes the trailing simple moving average over the given
// window for every index of prices. The returned mask marks the indices
// where the value is defined; the first window-1 points stay undefined
// rather than erroring, per trading convention.
func SMASeries(prices []float64, window int) ([]float64, []bool, error) {
	if window <= 0 {
		return nil, nil, errors.New("window must be positive")
	}
	values := make([]float64, len(prices))
	defined := make([]bool, len(prices))

	var sum float64
	for i, p := range prices {
		sum += p
		if i >= window {
			sum -= prices[i-window]
		}
		if i >= window-1 {
			values[i] = sum / float64(window)
			defined[i] = true
		}
	}
	return values, defined, nil
}

// SMA computes the simple moving average of the most recent window prices.
// Returns ErrInsufficientData when the series is shorter than the window.
func SMA(prices []float64, window int) (float64, error) {
	if window <= 0 {
		return 0, errors.New("window must be positive")
	}
	if len(prices) < window {
		return 0, ErrInsufficientData
	}
	sum := 0.0
	for i := len(prices) - window; i < len(prices); i++ {
		sum += prices[i]
	}
	return sum / float64(window), nil
}
