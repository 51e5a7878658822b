package collector

import (
	"fmt"
	"log"
	"sort"
	"time"

	"LuxorLab/internal/model"
)

// MockFetcher returns controllable fixed data for development and testing.
type MockFetcher struct {
	Price     float64
	DailyData []model.OHLCV
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchDailyBars(_ string, days int) ([]model.OHLCV, error) {
	if m.DailyData != nil {
		return m.DailyData, nil
	}
	return generateMockBars(m.Price, days), nil
}

func generateMockBars(basePrice float64, count int) []model.OHLCV {
	bars := make([]model.OHLCV, count)
	for i := 0; i < count; i++ {
		p := basePrice * (1 + float64(i-count/2)*0.001)
		bars[i] = model.OHLCV{
			Time:   time.Now().AddDate(0, 0, -(count - i)),
			Open:   p * 0.999,
			High:   p * 1.005,
			Low:    p * 0.995,
			Close:  p,
			Volume: 1000000,
		}
	}
	return bars
}

// Collector fetches and cleans the price series, with optional disk caching.
type Collector struct {
	Fetcher Fetcher
	Symbol  string
	Days    int
	Cache   *SeriesCache // optional
}

// NewCollector creates a new Collector.
func NewCollector(fetcher Fetcher, symbol string, days int, cache *SeriesCache) *Collector {
	return &Collector{Fetcher: fetcher, Symbol: symbol, Days: days, Cache: cache}
}

// Collect returns a cleaned price series: bars sorted chronologically with
// duplicate dates collapsed (last observation wins). A fresh cache entry is
// served without touching the network; a fetch failure is fatal to the run.
func (c *Collector) Collect() (*model.PriceSeries, error) {
	if c.Cache != nil {
		if series, ok := c.Cache.Load(c.Symbol); ok {
			log.Printf("[INFO] using cached series for %s (%d bars)", c.Symbol, len(series.Bars))
			return series, nil
		}
	}

	bars, err := c.Fetcher.FetchDailyBars(c.Symbol, c.Days)
	if err != nil {
		return nil, fmt.Errorf("fetch daily bars: %w", err)
	}
	bars = cleanBars(bars)
	if len(bars) == 0 {
		return nil, fmt.Errorf("no usable bars for %s", c.Symbol)
	}

	series := &model.PriceSeries{
		Symbol:    c.Symbol,
		Bars:      bars,
		FetchedAt: time.Now(),
	}

	if c.Cache != nil {
		if err := c.Cache.Save(series); err != nil {
			log.Printf("[WARN] save series cache: %v", err)
		}
	}
	return series, nil
}

// cleanBars sorts bars chronologically and collapses duplicate dates,
// keeping the last observation, so the series is strictly increasing.
func cleanBars(bars []model.OHLCV) []model.OHLCV {
	sorted := make([]model.OHLCV, len(bars))
	copy(sorted, bars)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Time.Before(sorted[j].Time) })

	cleaned := sorted[:0]
	for _, b := range sorted {
		d := dateOf(b.Time)
		if len(cleaned) > 0 && dateOf(cleaned[len(cleaned)-1].Time) == d {
			cleaned[len(cleaned)-1] = b
			continue
		}
		cleaned = append(cleaned, b)
	}
	return cleaned
}

func dateOf(t time.Time) string {
	return t.Format("2006-01-02")
}
