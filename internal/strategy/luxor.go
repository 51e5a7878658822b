package strategy

import (
	"fmt"

	"LuxorLab/internal/calculator"
	"LuxorLab/internal/model"
)

// Luxor is the dual simple-moving-average trend rule: long while the fast
// SMA is at or above the slow SMA, short while it is below.
//
// The rule is level-triggered: both averages are re-evaluated every bar and
// the stance follows their current relative levels. Despite the "crossover"
// name it does not detect flip events; an edge-triggered variant would emit
// a signal only on the bar where the ordering changes. Level-triggered is
// what the textbook configuration does, and downstream the simulator treats
// a repeated stance as a no-op, so both variants trade identically.
type Luxor struct {
	FastWindow int
	SlowWindow int
}

// DefaultLuxor returns the canonical 10/30 configuration.
func DefaultLuxor() Luxor {
	return Luxor{FastWindow: 10, SlowWindow: 30}
}

// Name identifies the strategy in reports and records.
func (l Luxor) Name() string {
	return fmt.Sprintf("luxor-%d-%d", l.FastWindow, l.SlowWindow)
}

// Signals evaluates the rule over the whole series. One signal is emitted
// per bar; direction is NONE while either SMA is inside its warmup window.
func (l Luxor) Signals(series *model.PriceSeries) ([]model.Signal, error) {
	closes := series.Closes()

	fast, fastDef, err := calculator.SMASeries(closes, l.FastWindow)
	if err != nil {
		return nil, fmt.Errorf("fast SMA: %w", err)
	}
	slow, slowDef, err := calculator.SMASeries(closes, l.SlowWindow)
	if err != nil {
		return nil, fmt.Errorf("slow SMA: %w", err)
	}

	signals := make([]model.Signal, len(series.Bars))
	for i, bar := range series.Bars {
		sig := model.Signal{Time: bar.Time, Direction: model.DirectionNone}
		if fastDef[i] && slowDef[i] {
			sig.Fast = fast[i]
			sig.Slow = slow[i]
			if fast[i] >= slow[i] {
				sig.Direction = model.DirectionLong
			} else {
				sig.Direction = model.DirectionShort
			}
		}
		signals[i] = sig
	}
	return signals, nil
}
