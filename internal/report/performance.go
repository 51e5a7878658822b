package report

import (
	"math"

	"LuxorLab/internal/calculator"
	"LuxorLab/internal/model"
)

// EquityReturns computes per-bar simple returns of the equity curve.
func EquityReturns(curve []model.EquityPoint) []float64 {
	equity := make([]float64, len(curve))
	for i, pt := range curve {
		equity[i] = pt.Equity.InexactFloat64()
	}
	return calculator.SimpleReturns(equity)
}

// Performance computes return and Sharpe statistics from the equity curve.
// Sharpe is NaN when the return variance is zero or there are fewer than
// two returns.
func Performance(curve []model.EquityPoint) model.PerformanceStats {
	stats := model.PerformanceStats{Sharpe: math.NaN()}
	if len(curve) == 0 {
		return stats
	}
	initial := curve[0].Equity.InexactFloat64()
	final := curve[len(curve)-1].Equity.InexactFloat64()
	stats.InitialEquity = initial
	stats.FinalEquity = final
	if initial != 0 {
		stats.CumulativeReturn = final/initial - 1
	}

	// annualize over the bar count at the fixed trading-days constant
	if initial > 0 && final > 0 && len(curve) > 1 {
		years := float64(len(curve)) / calculator.TradingDaysPerYear
		stats.AnnualizedReturn = math.Pow(final/initial, 1/years) - 1
	}

	rets := EquityReturns(curve)
	if len(rets) >= 2 {
		sd := calculator.StdDev(rets)
		if sd > 0 {
			stats.Sharpe = calculator.Mean(rets) / sd * math.Sqrt(calculator.TradingDaysPerYear)
		}
	}
	return stats
}

// Risk computes max drawdown and historical VaR from the equity curve.
// VaR is the empirical (1-confidence) quantile of per-bar returns, so a
// typical result is negative.
func Risk(curve []model.EquityPoint, confidence float64) model.RiskStats {
	stats := model.RiskStats{VaR: math.NaN(), VaRConfidence: confidence}

	var peak, maxDD float64
	for _, pt := range curve {
		eq := pt.Equity.InexactFloat64()
		if eq > peak {
			peak = eq
		}
		if peak > 0 {
			if dd := (peak - eq) / peak; dd > maxDD {
				maxDD = dd
			}
		}
	}
	stats.MaxDrawdown = maxDD

	rets := EquityReturns(curve)
	if len(rets) > 0 {
		stats.VaR = calculator.Quantile(rets, 1-confidence)
	}
	return stats
}

// Trades tabulates closed-trade statistics. ProfitFactor is NaN when there
// are no losing trades.
func Trades(trades []model.Trade) model.TradeStats {
	stats := model.TradeStats{
		Trades:       len(trades),
		ProfitFactor: math.NaN(),
	}
	for _, tr := range trades {
		pnl := tr.RealizedPnL.InexactFloat64()
		stats.NetProfit += pnl
		stats.TotalFees += tr.Fees.InexactFloat64()
		if pnl > 0 {
			stats.Wins++
			stats.GrossProfit += pnl
			if pnl > stats.LargestWin {
				stats.LargestWin = pnl
			}
		} else if pnl < 0 {
			stats.Losses++
			stats.GrossLoss += -pnl
			if -pnl > stats.LargestLoss {
				stats.LargestLoss = -pnl
			}
		}
	}
	if stats.Trades > 0 {
		stats.WinRate = float64(stats.Wins) / float64(stats.Trades)
	}
	if stats.Wins > 0 {
		stats.AvgWin = stats.GrossProfit / float64(stats.Wins)
	}
	if stats.Losses > 0 {
		stats.AvgLoss = stats.GrossLoss / float64(stats.Losses)
	}
	if stats.GrossLoss > 0 {
		stats.ProfitFactor = stats.GrossProfit / stats.GrossLoss
	}
	return stats
}
