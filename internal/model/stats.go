package model

// MarketSummary holds descriptive statistics over the price series.
type MarketSummary struct {
	Symbol        string
	Bars          int
	LastPrice     float64
	PeriodHigh    float64
	PeriodLow     float64
	MeanClose     float64
	StdDevClose   float64
	AnnualizedVol float64 // from daily log returns
	RollingVol30  float64 // latest 30-day rolling stddev of log returns
	ReturnSkew    float64
	ReturnKurt    float64 // excess kurtosis
	ReturnAC1     float64 // lag-1 autocorrelation of log returns
}

// PerformanceStats summarizes the equity curve.
type PerformanceStats struct {
	InitialEquity    float64
	FinalEquity      float64
	CumulativeReturn float64
	AnnualizedReturn float64
	Sharpe           float64 // NaN when return variance is zero
}

// RiskStats summarizes downside measures of the equity curve.
type RiskStats struct {
	MaxDrawdown   float64 // fraction of peak, always >= 0
	VaR           float64 // empirical quantile of per-bar returns
	VaRConfidence float64 // e.g. 0.95
}

// TradeStats summarizes closed trades.
type TradeStats struct {
	Trades       int
	Wins         int
	Losses       int
	WinRate      float64
	GrossProfit  float64
	GrossLoss    float64 // positive magnitude
	NetProfit    float64
	AvgWin       float64
	AvgLoss      float64 // positive magnitude
	ProfitFactor float64 // NaN when gross loss is zero
	LargestWin   float64
	LargestLoss  float64 // positive magnitude
	TotalFees    float64
}

// Result bundles everything a single run produces.
type Result struct {
	Summary     MarketSummary
	Signals     []Signal
	Trades      []Trade
	EquityCurve []EquityPoint
	Performance PerformanceStats
	Risk        RiskStats
	TradeStats  TradeStats
}
