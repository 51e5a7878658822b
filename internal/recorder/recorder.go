package recorder

import "LuxorLab/internal/model"

// RunMeta identifies a single backtest run.
type RunMeta struct {
	Symbol     string
	Strategy   string
	FastWindow int
	SlowWindow int
	OrderQty   int64
	Fee        float64
}

// Recorder persists backtest runs for later inspection.
type Recorder interface {
	// RecordRun stores the run with its trades and equity curve, returning
	// the run id.
	RecordRun(meta RunMeta, res *model.Result) (int64, error)
	Close() error
}
