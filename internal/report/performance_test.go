package report

import (
	"math"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"LuxorLab/internal/model"
)

func curveFrom(equities []float64) []model.EquityPoint {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	curve := make([]model.EquityPoint, len(equities))
	for i, e := range equities {
		d := decimal.NewFromFloat(e)
		curve[i] = model.EquityPoint{Time: start.AddDate(0, 0, i), Cash: d, Equity: d}
	}
	return curve
}

func TestPerformance_CumulativeReturn(t *testing.T) {
	stats := Performance(curveFrom([]float64{100000, 101000, 110000}))
	if math.Abs(stats.CumulativeReturn-0.10) > 1e-9 {
		t.Errorf("expected 0.10, got %v", stats.CumulativeReturn)
	}
	if stats.InitialEquity != 100000 || stats.FinalEquity != 110000 {
		t.Errorf("unexpected endpoints: %+v", stats)
	}
	if math.IsNaN(stats.Sharpe) {
		t.Error("expected defined Sharpe for varying returns")
	}
}

func TestPerformance_ZeroVarianceSharpeIsNaN(t *testing.T) {
	stats := Performance(curveFrom([]float64{100000, 100000, 100000}))
	if !math.IsNaN(stats.Sharpe) {
		t.Errorf("expected NaN Sharpe for zero variance, got %v", stats.Sharpe)
	}
}

func TestPerformance_EmptyCurve(t *testing.T) {
	stats := Performance(nil)
	if !math.IsNaN(stats.Sharpe) || stats.CumulativeReturn != 0 {
		t.Errorf("unexpected stats for empty curve: %+v", stats)
	}
}

func TestRisk_DrawdownNonNegative(t *testing.T) {
	stats := Risk(curveFrom([]float64{100, 120, 90, 110, 80}), 0.95)
	// peak 120, trough 80: dd = 40/120
	want := 40.0 / 120.0
	if math.Abs(stats.MaxDrawdown-want) > 1e-9 {
		t.Errorf("expected %v, got %v", want, stats.MaxDrawdown)
	}
}

func TestRisk_ZeroDrawdownWhenNonDecreasing(t *testing.T) {
	stats := Risk(curveFrom([]float64{100, 100, 105, 110}), 0.95)
	if stats.MaxDrawdown != 0 {
		t.Errorf("expected zero drawdown, got %v", stats.MaxDrawdown)
	}
}

func TestRisk_VaRIsEmpiricalQuantile(t *testing.T) {
	// returns: +10%, -20%, +25%, -50%
	stats := Risk(curveFrom([]float64{100, 110, 88, 110, 55}), 0.75)
	// 25% quantile of {0.10, -0.20, 0.25, -0.50}
	// sorted: -0.50, -0.20, 0.10, 0.25; pos = 0.25*3 = 0.75 -> -0.275
	if math.Abs(stats.VaR-(-0.275)) > 1e-9 {
		t.Errorf("expected -0.275, got %v", stats.VaR)
	}
	if stats.VaRConfidence != 0.75 {
		t.Errorf("expected confidence recorded, got %v", stats.VaRConfidence)
	}
}

func tradeWithPnL(pnl, fees float64) model.Trade {
	return model.Trade{
		RealizedPnL: decimal.NewFromFloat(pnl),
		Fees:        decimal.NewFromFloat(fees),
	}
}

func TestTrades_Tabulation(t *testing.T) {
	stats := Trades([]model.Trade{
		tradeWithPnL(100, 20),
		tradeWithPnL(-40, 20),
		tradeWithPnL(60, 20),
	})
	if stats.Trades != 3 || stats.Wins != 2 || stats.Losses != 1 {
		t.Fatalf("unexpected counts: %+v", stats)
	}
	if math.Abs(stats.WinRate-2.0/3.0) > 1e-9 {
		t.Errorf("expected win rate 2/3, got %v", stats.WinRate)
	}
	if stats.GrossProfit != 160 || stats.GrossLoss != 40 {
		t.Errorf("unexpected gross figures: %+v", stats)
	}
	if stats.NetProfit != 120 {
		t.Errorf("expected net 120, got %v", stats.NetProfit)
	}
	if math.Abs(stats.ProfitFactor-4.0) > 1e-9 {
		t.Errorf("expected profit factor 4, got %v", stats.ProfitFactor)
	}
	if stats.LargestWin != 100 || stats.LargestLoss != 40 {
		t.Errorf("unexpected extremes: %+v", stats)
	}
	if stats.TotalFees != 60 {
		t.Errorf("expected fees 60, got %v", stats.TotalFees)
	}
}

func TestTrades_NoLossesProfitFactorNaN(t *testing.T) {
	stats := Trades([]model.Trade{tradeWithPnL(50, 20)})
	if !math.IsNaN(stats.ProfitFactor) {
		t.Errorf("expected NaN profit factor, got %v", stats.ProfitFactor)
	}
}

func TestTrades_Empty(t *testing.T) {
	stats := Trades(nil)
	if stats.Trades != 0 || stats.WinRate != 0 {
		t.Errorf("unexpected stats for no trades: %+v", stats)
	}
}

func TestSummarize(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	series := &model.PriceSeries{
		Symbol: "GOLD",
		Bars: []model.OHLCV{
			{Time: start, Open: 100, High: 104, Low: 98, Close: 100},
			{Time: start.AddDate(0, 0, 1), Open: 100, High: 107, Low: 99, Close: 105},
			{Time: start.AddDate(0, 0, 2), Open: 105, High: 106, Low: 95, Close: 102},
		},
	}
	sum := Summarize(series)
	if sum.Bars != 3 || sum.LastPrice != 102 {
		t.Errorf("unexpected summary: %+v", sum)
	}
	if sum.PeriodHigh != 107 || sum.PeriodLow != 95 {
		t.Errorf("unexpected range: high=%v low=%v", sum.PeriodHigh, sum.PeriodLow)
	}
	if sum.AnnualizedVol <= 0 {
		t.Errorf("expected positive annualized vol, got %v", sum.AnnualizedVol)
	}
}
