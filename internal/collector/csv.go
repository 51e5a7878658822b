package collector

import (
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"time"

	"LuxorLab/internal/model"
)

// CSVFetcher implements Fetcher from a local CSV file with a
// date,open,high,low,close,volume header. Rows with missing or unparsable
// required fields are dropped, per the data-cleaning policy.
type CSVFetcher struct {
	Path string
}

// NewCSVFetcher creates a fetcher reading from the given file.
func NewCSVFetcher(path string) *CSVFetcher {
	return &CSVFetcher{Path: path}
}

func (f *CSVFetcher) Name() string { return "csv" }

func (f *CSVFetcher) FetchDailyBars(_ string, days int) ([]model.OHLCV, error) {
	file, err := os.Open(f.Path)
	if err != nil {
		return nil, fmt.Errorf("open csv: %w", err)
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1 // tolerate ragged rows, they get dropped below

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}
	col := map[string]int{}
	for i, name := range header {
		col[name] = i
	}
	for _, required := range []string{"date", "open", "high", "low", "close"} {
		if _, ok := col[required]; !ok {
			return nil, fmt.Errorf("csv missing column %q", required)
		}
	}

	var bars []model.OHLCV
	dropped := 0
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv row: %w", err)
		}
		bar, ok := parseRow(rec, col)
		if !ok {
			dropped++
			continue
		}
		bars = append(bars, bar)
	}
	if dropped > 0 {
		log.Printf("[WARN] csv: dropped %d rows with missing fields", dropped)
	}
	if len(bars) == 0 {
		return nil, fmt.Errorf("csv: no usable rows in %s", f.Path)
	}
	if len(bars) > days {
		bars = bars[len(bars)-days:]
	}
	return bars, nil
}

func parseRow(rec []string, col map[string]int) (model.OHLCV, bool) {
	get := func(name string) (string, bool) {
		i, ok := col[name]
		if !ok || i >= len(rec) {
			return "", false
		}
		return rec[i], true
	}
	dateStr, ok := get("date")
	if !ok {
		return model.OHLCV{}, false
	}
	ts, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return model.OHLCV{}, false
	}

	var vals [4]float64
	for i, name := range []string{"open", "high", "low", "close"} {
		s, ok := get(name)
		if !ok || s == "" {
			return model.OHLCV{}, false
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return model.OHLCV{}, false
		}
		vals[i] = v
	}

	bar := model.OHLCV{
		Time:  ts,
		Open:  vals[0],
		High:  vals[1],
		Low:   vals[2],
		Close: vals[3],
	}
	// volume is optional
	if s, ok := get("volume"); ok && s != "" {
		if v, err := strconv.ParseFloat(s, 64); err == nil {
			bar.Volume = v
		}
	}
	return bar, true
}
