package notifier

import (
	"fmt"
	"math"
	"strings"
	"time"

	"LuxorLab/internal/model"
)

// num renders a statistic, showing undefined values as n/a.
func num(f float64, decimals int) string {
	if math.IsNaN(f) {
		return "n/a"
	}
	return fmt.Sprintf("%.*f", decimals, f)
}

func pct(f float64) string {
	if math.IsNaN(f) {
		return "n/a"
	}
	return fmt.Sprintf("%+.2f%%", f*100)
}

// FormatMarketSummary renders the descriptive statistics table.
func FormatMarketSummary(sum *model.MarketSummary) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("=== Market Summary: %s (%d bars) ===\n", sum.Symbol, sum.Bars))
	b.WriteString(fmt.Sprintf("  %-24s %s\n", "Last price", num(sum.LastPrice, 2)))
	b.WriteString(fmt.Sprintf("  %-24s %s / %s\n", "Period high/low", num(sum.PeriodHigh, 2), num(sum.PeriodLow, 2)))
	b.WriteString(fmt.Sprintf("  %-24s %s (sd %s)\n", "Mean close", num(sum.MeanClose, 2), num(sum.StdDevClose, 2)))
	b.WriteString(fmt.Sprintf("  %-24s %s\n", "Annualized volatility", pct(sum.AnnualizedVol)))
	b.WriteString(fmt.Sprintf("  %-24s %s\n", "Rolling vol (30d)", num(sum.RollingVol30, 4)))
	b.WriteString(fmt.Sprintf("  %-24s %s\n", "Return skewness", num(sum.ReturnSkew, 3)))
	b.WriteString(fmt.Sprintf("  %-24s %s\n", "Return excess kurtosis", num(sum.ReturnKurt, 3)))
	b.WriteString(fmt.Sprintf("  %-24s %s\n", "Return autocorr (lag 1)", num(sum.ReturnAC1, 3)))
	return b.String()
}

// FormatBacktestReport renders the performance, risk and trade tables.
func FormatBacktestReport(strategy string, res *model.Result) string {
	var b strings.Builder
	perf := res.Performance
	risk := res.Risk
	ts := res.TradeStats

	b.WriteString(fmt.Sprintf("=== Backtest: %s on %s ===\n", strategy, res.Summary.Symbol))

	b.WriteString("Performance\n")
	b.WriteString(fmt.Sprintf("  %-24s %s\n", "Initial equity", num(perf.InitialEquity, 2)))
	b.WriteString(fmt.Sprintf("  %-24s %s\n", "Final equity", num(perf.FinalEquity, 2)))
	b.WriteString(fmt.Sprintf("  %-24s %s\n", "Cumulative return", pct(perf.CumulativeReturn)))
	b.WriteString(fmt.Sprintf("  %-24s %s\n", "Annualized return", pct(perf.AnnualizedReturn)))
	b.WriteString(fmt.Sprintf("  %-24s %s\n", "Sharpe (annualized)", num(perf.Sharpe, 3)))

	b.WriteString("Risk\n")
	b.WriteString(fmt.Sprintf("  %-24s %s\n", "Max drawdown", pct(risk.MaxDrawdown)))
	b.WriteString(fmt.Sprintf("  %-24s %s\n",
		fmt.Sprintf("VaR (%.0f%%, 1-day)", risk.VaRConfidence*100), pct(risk.VaR)))

	b.WriteString("Trades\n")
	b.WriteString(fmt.Sprintf("  %-24s %d (%d W / %d L)\n", "Closed trades", ts.Trades, ts.Wins, ts.Losses))
	b.WriteString(fmt.Sprintf("  %-24s %s\n", "Win rate", pct(ts.WinRate)))
	b.WriteString(fmt.Sprintf("  %-24s %s\n", "Net profit", num(ts.NetProfit, 2)))
	b.WriteString(fmt.Sprintf("  %-24s %s / %s\n", "Avg win / avg loss", num(ts.AvgWin, 2), num(ts.AvgLoss, 2)))
	b.WriteString(fmt.Sprintf("  %-24s %s\n", "Profit factor", num(ts.ProfitFactor, 3)))
	b.WriteString(fmt.Sprintf("  %-24s %s / %s\n", "Largest win / loss", num(ts.LargestWin, 2), num(ts.LargestLoss, 2)))
	b.WriteString(fmt.Sprintf("  %-24s %s\n", "Total fees", num(ts.TotalFees, 2)))
	return b.String()
}

// FormatTradeLog renders the closed-trade list.
func FormatTradeLog(trades []model.Trade) string {
	var b strings.Builder
	b.WriteString("Trade log\n")
	if len(trades) == 0 {
		b.WriteString("  (no closed trades)\n")
		return b.String()
	}
	b.WriteString(fmt.Sprintf("  %-12s %-12s %8s %12s %12s %12s\n",
		"entry", "exit", "qty", "entry px", "exit px", "pnl"))
	for _, tr := range trades {
		b.WriteString(fmt.Sprintf("  %-12s %-12s %8d %12s %12s %12s\n",
			tr.EntryTime.Format("2006-01-02"),
			tr.ExitTime.Format("2006-01-02"),
			tr.Quantity,
			tr.EntryPrice.StringFixed(2),
			tr.ExitPrice.StringFixed(2),
			tr.RealizedPnL.StringFixed(2)))
	}
	return b.String()
}

// FormatRunSummary renders the short Telegram push for watch mode.
func FormatRunSummary(strategy string, res *model.Result) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("📊 <b>LuxorLab</b> | %s\n\n", time.Now().Format("2006-01-02")))
	b.WriteString(fmt.Sprintf("%s on %s (%d bars)\n", strategy, res.Summary.Symbol, res.Summary.Bars))
	b.WriteString(fmt.Sprintf("Last price: %s\n\n", num(res.Summary.LastPrice, 2)))
	b.WriteString(fmt.Sprintf("Return: %s | Sharpe: %s\n", pct(res.Performance.CumulativeReturn), num(res.Performance.Sharpe, 2)))
	b.WriteString(fmt.Sprintf("Max DD: %s | VaR: %s\n", pct(res.Risk.MaxDrawdown), pct(res.Risk.VaR)))
	b.WriteString(fmt.Sprintf("Trades: %d, win rate %s\n", res.TradeStats.Trades, pct(res.TradeStats.WinRate)))

	if len(res.Signals) > 0 {
		last := res.Signals[len(res.Signals)-1]
		b.WriteString(fmt.Sprintf("\nCurrent stance: %s (fast %s / slow %s)\n",
			last.Direction, num(last.Fast, 2), num(last.Slow, 2)))
	}
	return b.String()
}
