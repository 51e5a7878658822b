package collector

import (
	"encoding/json"
	"os"
	"sync"
	"time"

	"LuxorLab/internal/model"
)

// SeriesCache persists a fetched price series to a JSON file so repeated
// runs within the TTL skip the network.
type SeriesCache struct {
	mu   sync.Mutex
	path string
	ttl  time.Duration
}

// NewSeriesCache creates a cache at the given path. A zero TTL disables
// cache hits (every run re-fetches) while still writing through.
func NewSeriesCache(path string, ttl time.Duration) *SeriesCache {
	return &SeriesCache{path: path, ttl: ttl}
}

// Load returns the cached series when it exists, matches the symbol, and is
// younger than the TTL.
func (c *SeriesCache) Load(symbol string) (*model.PriceSeries, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	data, err := os.ReadFile(c.path)
	if err != nil {
		return nil, false
	}
	var series model.PriceSeries
	if err := json.Unmarshal(data, &series); err != nil {
		return nil, false
	}
	if series.Symbol != symbol {
		return nil, false
	}
	if c.ttl <= 0 || time.Since(series.FetchedAt) > c.ttl {
		return nil, false
	}
	return &series, true
}

// Save writes the series to disk.
func (c *SeriesCache) Save(series *model.PriceSeries) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	data, err := json.MarshalIndent(series, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(c.path, data, 0644)
}
