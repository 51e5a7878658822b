package scheduler

import (
	"fmt"
	"log"

	"LuxorLab/internal/backtest"
	"LuxorLab/internal/collector"
	"LuxorLab/internal/model"
	"LuxorLab/internal/recorder"
	"LuxorLab/internal/report"
	"LuxorLab/internal/strategy"
)

// Runner executes the full pipeline once: collect, analyze, generate
// signals, simulate, report, record.
type Runner struct {
	Collector     *collector.Collector
	Strategy      strategy.Luxor
	SimConfig     backtest.Config
	VaRConfidence float64
	Recorder      recorder.Recorder
}

// Run executes one full analysis and backtest over freshly collected data.
func (r *Runner) Run() (*model.Result, error) {
	series, err := r.Collector.Collect()
	if err != nil {
		return nil, fmt.Errorf("collect: %w", err)
	}
	log.Printf("[INFO] collected %d bars for %s via %s", len(series.Bars), series.Symbol, r.Collector.Fetcher.Name())

	signals, err := r.Strategy.Signals(series)
	if err != nil {
		return nil, fmt.Errorf("signals: %w", err)
	}

	sim, err := backtest.New(r.SimConfig)
	if err != nil {
		return nil, err
	}
	trades, curve, err := sim.Run(series, signals)
	if err != nil {
		return nil, fmt.Errorf("simulate: %w", err)
	}

	res := &model.Result{
		Summary:     report.Summarize(series),
		Signals:     signals,
		Trades:      trades,
		EquityCurve: curve,
		Performance: report.Performance(curve),
		Risk:        report.Risk(curve, r.VaRConfidence),
		TradeStats:  report.Trades(trades),
	}

	meta := recorder.RunMeta{
		Symbol:     series.Symbol,
		Strategy:   r.Strategy.Name(),
		FastWindow: r.Strategy.FastWindow,
		SlowWindow: r.Strategy.SlowWindow,
		OrderQty:   r.SimConfig.OrderQty,
		Fee:        r.SimConfig.Fee.InexactFloat64(),
	}
	if runID, err := r.Recorder.RecordRun(meta, res); err != nil {
		log.Printf("[ERROR] record run: %v", err)
	} else if runID != 0 {
		log.Printf("[INFO] recorded run %d", runID)
	}

	return res, nil
}
