package recorder

import (
	"database/sql"
	"fmt"
	"log"
	"sync"
	"time"

	"StockBoard/internal/model"

	_ "modernc.org/sqlite"
)

// SQLiteRecorder persists refresh history to a SQLite database.
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

	// WAL mode so dashboards can read history while the refresh job writes.
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
		`CREATE TABLE IF NOT EXISTS watchlist_snapshots (
			id           INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp    INTEGER NOT NULL,
			name         TEXT,
			ticker       TEXT,
			price        REAL,
			change_pct   REAL,
			last_updated TEXT,
			available    INTEGER
		)`,
		`CREATE INDEX IF NOT EXISTS idx_snapshots_ts ON watchlist_snapshots(timestamp)`,
		`CREATE INDEX IF NOT EXISTS idx_snapshots_ticker ON watchlist_snapshots(ticker)`,

		`CREATE TABLE IF NOT EXISTS performance_history (
			id              INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp       INTEGER NOT NULL,
			ticker          TEXT,
			lookback        TEXT,
			performance_pct REAL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_perf_ts ON performance_history(timestamp)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

func (r *SQLiteRecorder) RecordSnapshots(snaps []model.TickerSnapshot) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().Unix()
	for _, s := range snaps {
		available := 0
		if s.Valid {
			available = 1
		}
		_, err := r.db.Exec(`INSERT INTO watchlist_snapshots
			(timestamp, name, ticker, price, change_pct, last_updated, available)
			VALUES (?,?,?,?,?,?,?)`,
			now, s.Name, s.Ticker, s.Price, s.ChangePct, s.DateLabel(), available,
		)
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *SQLiteRecorder) RecordPerformance(entries []model.PerformanceEntry, lookback model.Lookback) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().Unix()
	for _, e := range entries {
		_, err := r.db.Exec(`INSERT INTO performance_history
			(timestamp, ticker, lookback, performance_pct)
			VALUES (?,?,?,?)`,
			now, e.Ticker, string(lookback), e.PerformancePct,
		)
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *SQLiteRecorder) Close() error {
	log.Println("[INFO] closing sqlite recorder")
	return r.db.Close()
}
