package recorder

import "StockBoard/internal/model"

// NoopRecorder is a no-op implementation used when SQLite is not configured.
type NoopRecorder struct{}

func NewNoopRecorder() *NoopRecorder { return &NoopRecorder{} }

func (n *NoopRecorder) RecordSnapshots(_ []model.TickerSnapshot) error { return nil }
func (n *NoopRecorder) RecordPerformance(_ []model.PerformanceEntry, _ model.Lookback) error {
	return nil
}
func (n *NoopRecorder) Close() error { return nil }
