package collector

import "LuxorLab/internal/model"

// Fetcher defines the interface for fetching historical price data.
type Fetcher interface {
	FetchDailyBars(symbol string, days int) ([]model.OHLCV, error)
	Name() string
}
