package calculator

import "math"

// TradingDaysPerYear is the annualization constant for daily series.
const TradingDaysPerYear = 252

// LogReturns computes ln(p[i]/p[i-1]) for each consecutive pair.
// The result has length len(prices)-1 and aligns to the later bar.
func LogReturns(prices []float64) []float64 {
	if len(prices) < 2 {
		return nil
	}
	rets := make([]float64, len(prices)-1)
	for i := 1; i < len(prices); i++ {
		rets[i-1] = math.Log(prices[i] / prices[i-1])
	}
	return rets
}

// SimpleReturns computes p[i]/p[i-1] - 1 for each consecutive pair.
func SimpleReturns(prices []float64) []float64 {
	if len(prices) < 2 {
		return nil
	}
	rets := make([]float64, len(prices)-1)
	for i := 1; i < len(prices); i++ {
		rets[i-1] = prices[i]/prices[i-1] - 1
	}
	return rets
}

// RollingVolatility computes the rolling sample standard deviation of
// returns over the given window. Aligned like SMASeries: the first
// window-1 points are undefined.
func RollingVolatility(returns []float64, window int) ([]float64, []bool, error) {
	if window <= 1 {
		return nil, nil, ErrInsufficientData
	}
	values := make([]float64, len(returns))
	defined := make([]bool, len(returns))
	for i := window - 1; i < len(returns); i++ {
		values[i] = StdDev(returns[i-window+1 : i+1])
		defined[i] = true
	}
	return values, defined, nil
}

// AnnualizedVolatility scales the standard deviation of daily returns by
// the square root of the trading-days constant.
func AnnualizedVolatility(returns []float64) float64 {
	return StdDev(returns) * math.Sqrt(TradingDaysPerYear)
}
