package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Position is an open position. Quantity is signed: positive for long,
// negative for short. At most one position is open at a time.
type Position struct {
	Quantity   int64
	EntryPrice decimal.Decimal
	OpenTime   time.Time
}

// Trade is a closed round trip.
type Trade struct {
	EntryTime   time.Time
	ExitTime    time.Time
	Quantity    int64 // signed, as held
	EntryPrice  decimal.Decimal
	ExitPrice   decimal.Decimal
	Fees        decimal.Decimal // entry fee + exit fee
	RealizedPnL decimal.Decimal // (exit-entry)*quantity - fees
}

// EquityPoint is one bar of the equity curve. Equity is cash plus the
// mark-to-market value of any open position at that bar's close.
type EquityPoint struct {
	Time   time.Time
	Cash   decimal.Decimal
	Equity decimal.Decimal
}
