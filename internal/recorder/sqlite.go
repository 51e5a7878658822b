package recorder

import (
	"database/sql"
	"fmt"
	"log"
	"math"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"LuxorLab/internal/model"
)

// SQLiteRecorder persists backtest runs to a SQLite database.
type SQLiteRecorder struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode so ad-hoc readers don't block the writer.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Printf("[INFO] sqlite recorder opened: %s", dbPath)
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id                INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp         INTEGER NOT NULL,
			symbol            TEXT,
			strategy          TEXT,
			fast_window       INTEGER,
			slow_window       INTEGER,
			order_qty         INTEGER,
			fee               REAL,
			bars              INTEGER,
			last_price        REAL,
			annualized_vol    REAL,
			initial_equity    REAL,
			final_equity      REAL,
			cumulative_return REAL,
			annualized_return REAL,
			sharpe            REAL,
			max_drawdown      REAL,
			var               REAL,
			var_confidence    REAL,
			trades            INTEGER,
			wins              INTEGER,
			losses            INTEGER,
			win_rate          REAL,
			net_profit        REAL,
			profit_factor     REAL,
			total_fees        REAL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_runs_ts ON runs(timestamp)`,

		`CREATE TABLE IF NOT EXISTS trades (
			id           INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id       INTEGER NOT NULL,
			entry_time   INTEGER,
			exit_time    INTEGER,
			quantity     INTEGER,
			entry_price  TEXT,
			exit_price   TEXT,
			fees         TEXT,
			realized_pnl TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_trades_run ON trades(run_id)`,

		`CREATE TABLE IF NOT EXISTS equity_points (
			id        INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id    INTEGER NOT NULL,
			timestamp INTEGER,
			cash      TEXT,
			equity    TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_equity_run ON equity_points(run_id)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

// nullIfNaN maps NaN stats to NULL so they stay distinguishable in SQL.
func nullIfNaN(f float64) interface{} {
	if math.IsNaN(f) {
		return nil
	}
	return f
}

func (r *SQLiteRecorder) RecordRun(meta RunMeta, res *model.Result) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	tx, err := r.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.Exec(`INSERT INTO runs
		(timestamp, symbol, strategy, fast_window, slow_window, order_qty, fee,
		 bars, last_price, annualized_vol,
		 initial_equity, final_equity, cumulative_return, annualized_return, sharpe,
		 max_drawdown, var, var_confidence,
		 trades, wins, losses, win_rate, net_profit, profit_factor, total_fees)
		VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)`,
		time.Now().Unix(), meta.Symbol, meta.Strategy,
		meta.FastWindow, meta.SlowWindow, meta.OrderQty, meta.Fee,
		res.Summary.Bars, res.Summary.LastPrice, res.Summary.AnnualizedVol,
		res.Performance.InitialEquity, res.Performance.FinalEquity,
		res.Performance.CumulativeReturn, res.Performance.AnnualizedReturn,
		nullIfNaN(res.Performance.Sharpe),
		res.Risk.MaxDrawdown, nullIfNaN(res.Risk.VaR), res.Risk.VaRConfidence,
		res.TradeStats.Trades, res.TradeStats.Wins, res.TradeStats.Losses,
		res.TradeStats.WinRate, res.TradeStats.NetProfit,
		nullIfNaN(res.TradeStats.ProfitFactor), res.TradeStats.TotalFees,
	)
	if err != nil {
		return 0, fmt.Errorf("insert run: %w", err)
	}
	runID, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("run id: %w", err)
	}

	tradeStmt, err := tx.Prepare(`INSERT INTO trades
		(run_id, entry_time, exit_time, quantity, entry_price, exit_price, fees, realized_pnl)
		VALUES (?,?,?,?,?,?,?,?)`)
	if err != nil {
		return 0, fmt.Errorf("prepare trade insert: %w", err)
	}
	defer tradeStmt.Close()
	for _, tr := range res.Trades {
		if _, err := tradeStmt.Exec(runID,
			tr.EntryTime.Unix(), tr.ExitTime.Unix(), tr.Quantity,
			tr.EntryPrice.String(), tr.ExitPrice.String(),
			tr.Fees.String(), tr.RealizedPnL.String(),
		); err != nil {
			return 0, fmt.Errorf("insert trade: %w", err)
		}
	}

	eqStmt, err := tx.Prepare(`INSERT INTO equity_points
		(run_id, timestamp, cash, equity) VALUES (?,?,?,?)`)
	if err != nil {
		return 0, fmt.Errorf("prepare equity insert: %w", err)
	}
	defer eqStmt.Close()
	for _, pt := range res.EquityCurve {
		if _, err := eqStmt.Exec(runID, pt.Time.Unix(), pt.Cash.String(), pt.Equity.String()); err != nil {
			return 0, fmt.Errorf("insert equity point: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit: %w", err)
	}
	return runID, nil
}

func (r *SQLiteRecorder) Close() error {
	log.Println("[INFO] closing sqlite recorder")
	return r.db.Close()
}
