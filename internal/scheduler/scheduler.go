package scheduler

import (
	"fmt"
	"log"

	"StockBoard/internal/board"
	"StockBoard/internal/model"
	"StockBoard/internal/recorder"

	"github.com/robfig/cron/v3"
)

// Scheduler runs the periodic watchlist refresh: it rebuilds snapshots and the
// one-month performance list, records both, and drops stale cache entries.
type Scheduler struct {
	Cron     *cron.Cron
	Board    *board.Board
	Recorder recorder.Recorder
}

// NewScheduler creates a new Scheduler.
func NewScheduler(b *board.Board, rec recorder.Recorder) *Scheduler {
	return &Scheduler{
		Cron:     cron.New(cron.WithSeconds()),
		Board:    b,
		Recorder: rec,
	}
}

// Register registers the refresh task under the given cron spec.
func (s *Scheduler) Register(refreshCron string) error {
	if _, err := s.Cron.AddFunc(refreshCron, s.refreshTask); err != nil {
		return fmt.Errorf("register refresh task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	log.Println("[INFO] scheduler stopped")
}

// RunNow executes the refresh task immediately (for manual trigger / RUN_ON_START).
func (s *Scheduler) RunNow() {
	s.refreshTask()
}

func (s *Scheduler) refreshTask() {
	log.Println("[INFO] running watchlist refresh")

	snaps := s.Board.Snapshots()
	available := 0
	for _, snap := range snaps {
		if snap.Valid {
			available++
		}
	}
	log.Printf("[INFO] refreshed %d/%d watchlist rows", available, len(snaps))
	if err := s.Recorder.RecordSnapshots(snaps); err != nil {
		log.Printf("[ERROR] record snapshots: %v", err)
	}

	perf := s.Board.Performance(model.Lookback1M)
	if err := s.Recorder.RecordPerformance(perf, model.Lookback1M); err != nil {
		log.Printf("[ERROR] record performance: %v", err)
	}

	if dropped := s.Board.PurgeExpired(); dropped > 0 {
		log.Printf("[INFO] purged %d stale cache entries", dropped)
	}
}
