package recorder

import "StockBoard/internal/model"

// Recorder persists refresh results for later inspection. Recording is
// best-effort: a failed write is logged by the caller, never fatal.
type Recorder interface {
	RecordSnapshots(snaps []model.TickerSnapshot) error
	RecordPerformance(entries []model.PerformanceEntry, lookback model.Lookback) error
	Close() error
}
