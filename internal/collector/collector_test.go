package collector

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"LuxorLab/internal/model"
)

func TestCleanBars_SortsAndDeduplicates(t *testing.T) {
	d1 := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	d2 := time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC)
	bars := []model.OHLCV{
		{Time: d2, Close: 30},
		{Time: d1, Close: 10},
		{Time: d1, Close: 20}, // duplicate date, later observation wins
	}
	cleaned := cleanBars(bars)
	if len(cleaned) != 2 {
		t.Fatalf("expected 2 bars, got %d", len(cleaned))
	}
	if cleaned[0].Close != 20 {
		t.Errorf("expected last duplicate kept (20), got %v", cleaned[0].Close)
	}
	if cleaned[1].Close != 30 {
		t.Errorf("expected 30 last, got %v", cleaned[1].Close)
	}
}

func TestCollect_FetchErrorIsFatal(t *testing.T) {
	f := &CSVFetcher{Path: "does-not-exist.csv"}
	col := NewCollector(f, "GOLD", 100, nil)
	if _, err := col.Collect(); err == nil {
		t.Fatal("expected error from missing data source")
	}
}

func TestCollect_UsesFreshCache(t *testing.T) {
	dir := t.TempDir()
	cache := NewSeriesCache(filepath.Join(dir, "cache.json"), time.Hour)

	want := &model.PriceSeries{
		Symbol:    "GOLD",
		Bars:      []model.OHLCV{{Time: time.Now().UTC().Truncate(time.Second), Close: 42}},
		FetchedAt: time.Now(),
	}
	if err := cache.Save(want); err != nil {
		t.Fatalf("save cache: %v", err)
	}

	// fetcher would fail; a fresh cache entry must short-circuit
	col := NewCollector(&CSVFetcher{Path: "does-not-exist.csv"}, "GOLD", 100, cache)
	got, err := col.Collect()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got.Bars) != 1 || got.Bars[0].Close != 42 {
		t.Errorf("expected cached series, got %+v", got)
	}
}

func TestSeriesCache_ExpiredAndWrongSymbol(t *testing.T) {
	dir := t.TempDir()
	cache := NewSeriesCache(filepath.Join(dir, "cache.json"), time.Millisecond)

	series := &model.PriceSeries{
		Symbol:    "GOLD",
		Bars:      []model.OHLCV{{Close: 1}},
		FetchedAt: time.Now().Add(-time.Minute),
	}
	if err := cache.Save(series); err != nil {
		t.Fatalf("save cache: %v", err)
	}
	if _, ok := cache.Load("GOLD"); ok {
		t.Error("expected expired cache miss")
	}
	series.FetchedAt = time.Now()
	cache.ttl = time.Hour
	if err := cache.Save(series); err != nil {
		t.Fatalf("save cache: %v", err)
	}
	if _, ok := cache.Load("CRUDE"); ok {
		t.Error("expected symbol mismatch cache miss")
	}
	if _, ok := cache.Load("GOLD"); !ok {
		t.Error("expected cache hit")
	}
}

func TestCSVFetcher_DropsBadRows(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bars.csv")
	content := "date,open,high,low,close,volume\n" +
		"2024-01-02,100,105,99,104,1200\n" +
		"2024-01-03,104,,100,\n" + // missing high and close: dropped
		"not-a-date,1,2,3,4,5\n" + // bad date: dropped
		"2024-01-04,104,108,103,107,900\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write csv: %v", err)
	}

	f := NewCSVFetcher(path)
	bars, err := f.FetchDailyBars("GOLD", 100)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(bars) != 2 {
		t.Fatalf("expected 2 bars after cleaning, got %d", len(bars))
	}
	if bars[1].Close != 107 {
		t.Errorf("expected close 107, got %v", bars[1].Close)
	}
}

func TestCSVFetcher_MissingColumn(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bars.csv")
	if err := os.WriteFile(path, []byte("date,open\n2024-01-02,1\n"), 0644); err != nil {
		t.Fatalf("write csv: %v", err)
	}
	if _, err := NewCSVFetcher(path).FetchDailyBars("GOLD", 10); err == nil {
		t.Error("expected error for missing columns")
	}
}

const yahooFixture = `{"chart":{"result":[{"timestamp":[1704153600,1704240000,1704326400],
"indicators":{"quote":[{"open":[100,null,102],"high":[105,null,106],"low":[99,null,101],
"close":[104,null,105],"volume":[1000,null,1200]}]}}],"error":null}}`

func TestYahooFetcher_ParsesChartAndSkipsNullBars(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(yahooFixture))
	}))
	defer srv.Close()

	f := NewYahooFetcher("")
	f.BaseURL = srv.URL

	bars, err := f.FetchDailyBars("GOLD", 100)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(bars) != 2 {
		t.Fatalf("expected 2 bars (null bar skipped), got %d", len(bars))
	}
	if bars[0].Close != 104 || bars[1].Close != 105 {
		t.Errorf("unexpected closes: %v, %v", bars[0].Close, bars[1].Close)
	}
}

func TestYahooFetcher_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"chart":{"result":[],"error":{"code":"Not Found","description":"no such symbol"}}}`))
	}))
	defer srv.Close()

	f := NewYahooFetcher("")
	f.BaseURL = srv.URL
	if _, err := f.FetchDailyBars("NOPE", 10); err == nil {
		t.Error("expected error from API error payload")
	}
}

func TestYahooFetcher_SymbolMap(t *testing.T) {
	f := NewYahooFetcher("")
	if got := f.yahooSymbol("GOLD"); got != "GC=F" {
		t.Errorf("expected GC=F, got %s", got)
	}
	if got := f.yahooSymbol("GC=F"); got != "GC=F" {
		t.Errorf("expected passthrough, got %s", got)
	}
}
