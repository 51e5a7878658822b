package backtest

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"LuxorLab/internal/model"
)

// Config controls the toy order simulator. Orders are a fixed quantity
// with a flat per-order fee; futures margin is modelled as nil, so opening
// a position moves no premium and cash changes by the fee only.
type Config struct {
	InitialCash decimal.Decimal
	OrderQty    int64
	Fee         decimal.Decimal // flat fee charged per order (entry and exit each)
}

// Validate checks the configuration.
func (c Config) Validate() error {
	if c.InitialCash.Sign() <= 0 {
		return errors.New("initial cash must be positive")
	}
	if c.OrderQty <= 0 {
		return errors.New("order quantity must be positive")
	}
	if c.Fee.Sign() < 0 {
		return errors.New("fee must not be negative")
	}
	return nil
}

// Simulator translates directional signals into position changes, tracking
// cash and mark-to-market equity bar by bar. At most one position is open
// at any time; an opposite signal closes the current position and opens the
// reverse on the same bar, charging a fee for each order.
type Simulator struct {
	cfg Config

	cash decimal.Decimal
	pos  *model.Position

	trades []model.Trade
	curve  []model.EquityPoint
}

// New creates a Simulator. Config must be valid.
func New(cfg Config) (*Simulator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("simulator config: %w", err)
	}
	return &Simulator{cfg: cfg, cash: cfg.InitialCash}, nil
}

// Run replays the signal sequence against the price series. Signals must
// align one-to-one with the bars. Any position still open at the end of the
// series is left open; the equity curve marks it to the final close and the
// trade list covers closed round trips only.
func (s *Simulator) Run(series *model.PriceSeries, signals []model.Signal) ([]model.Trade, []model.EquityPoint, error) {
	if len(signals) != len(series.Bars) {
		return nil, nil, fmt.Errorf("signal count %d does not match bar count %d", len(signals), len(series.Bars))
	}

	for i, bar := range series.Bars {
		price := decimal.NewFromFloat(bar.Close)
		s.step(signals[i], bar, price)
		s.curve = append(s.curve, model.EquityPoint{
			Time:   bar.Time,
			Cash:   s.cash,
			Equity: s.markToMarket(price),
		})
	}
	return s.trades, s.curve, nil
}

// Position returns the currently open position, or nil when flat.
func (s *Simulator) Position() *model.Position {
	return s.pos
}

// Cash returns the current cash balance.
func (s *Simulator) Cash() decimal.Decimal {
	return s.cash
}

func (s *Simulator) step(sig model.Signal, bar model.OHLCV, price decimal.Decimal) {
	var want int64
	switch sig.Direction {
	case model.DirectionLong:
		want = s.cfg.OrderQty
	case model.DirectionShort:
		want = -s.cfg.OrderQty
	default:
		return
	}

	if s.pos != nil {
		if sameSign(s.pos.Quantity, want) {
			return // already holding that direction
		}
		s.close(bar, price)
	}
	s.open(want, bar, price)
}

func (s *Simulator) open(qty int64, bar model.OHLCV, price decimal.Decimal) {
	s.cash = s.cash.Sub(s.cfg.Fee)
	s.pos = &model.Position{
		Quantity:   qty,
		EntryPrice: price,
		OpenTime:   bar.Time,
	}
}

func (s *Simulator) close(bar model.OHLCV, price decimal.Decimal) {
	qty := decimal.NewFromInt(s.pos.Quantity)
	gross := price.Sub(s.pos.EntryPrice).Mul(qty)
	fees := s.cfg.Fee.Mul(decimal.NewFromInt(2)) // entry + exit

	s.cash = s.cash.Add(gross).Sub(s.cfg.Fee)
	s.trades = append(s.trades, model.Trade{
		EntryTime:   s.pos.OpenTime,
		ExitTime:    bar.Time,
		Quantity:    s.pos.Quantity,
		EntryPrice:  s.pos.EntryPrice,
		ExitPrice:   price,
		Fees:        fees,
		RealizedPnL: gross.Sub(fees),
	})
	s.pos = nil
}

// markToMarket values the open position at the given price. With nil
// futures margin, equity is cash plus unrealized P&L.
func (s *Simulator) markToMarket(price decimal.Decimal) decimal.Decimal {
	if s.pos == nil {
		return s.cash
	}
	unrealized := price.Sub(s.pos.EntryPrice).Mul(decimal.NewFromInt(s.pos.Quantity))
	return s.cash.Add(unrealized)
}

func sameSign(a, b int64) bool {
	return (a > 0) == (b > 0)
}
