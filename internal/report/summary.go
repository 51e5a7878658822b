package report

import (
	"LuxorLab/internal/calculator"
	"LuxorLab/internal/model"
)

// Summarize computes descriptive statistics over the price series.
func Summarize(series *model.PriceSeries) model.MarketSummary {
	sum := model.MarketSummary{
		Symbol: series.Symbol,
		Bars:   len(series.Bars),
	}
	if len(series.Bars) == 0 {
		return sum
	}

	closes := series.Closes()
	sum.LastPrice = closes[len(closes)-1]
	sum.MeanClose = calculator.Mean(closes)
	sum.StdDevClose = calculator.StdDev(closes)

	sum.PeriodHigh = series.Bars[0].High
	sum.PeriodLow = series.Bars[0].Low
	for _, b := range series.Bars {
		if b.High > sum.PeriodHigh {
			sum.PeriodHigh = b.High
		}
		if b.Low < sum.PeriodLow {
			sum.PeriodLow = b.Low
		}
	}

	rets := calculator.LogReturns(closes)
	sum.AnnualizedVol = calculator.AnnualizedVolatility(rets)
	if vols, defined, err := calculator.RollingVolatility(rets, 30); err == nil {
		for i := len(vols) - 1; i >= 0; i-- {
			if defined[i] {
				sum.RollingVol30 = vols[i]
				break
			}
		}
	}
	sum.ReturnSkew = calculator.Skewness(rets)
	sum.ReturnKurt = calculator.Kurtosis(rets)
	sum.ReturnAC1 = calculator.Autocorrelation(rets, 1)
	return sum
}
