package model

import "time"

// Direction is the directional stance of the strategy at a given bar.
type Direction string

const (
	DirectionNone  Direction = "NONE"
	DirectionLong  Direction = "LONG"
	DirectionShort Direction = "SHORT"
)

// Signal is the strategy output for one bar. Direction is NONE while
// either moving average is still inside its warmup window.
type Signal struct {
	Time      time.Time
	Direction Direction
	Fast      float64 // fast SMA value, 0 when undefined
	Slow      float64 // slow SMA value, 0 when undefined
}
