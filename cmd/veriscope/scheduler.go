// cmd/veriscope/scheduler.go
package main

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
)

// Scheduler runs the periodic maintenance jobs: daily counter reset and
// prediction-history pruning
type Scheduler struct {
	cron      *cron.Cron
	store     *Store
	retention time.Duration
}

// NewScheduler creates the maintenance scheduler
func NewScheduler(store *Store, cfg *Config) *Scheduler {
	return &Scheduler{
		cron:      cron.New(),
		store:     store,
		retention: time.Duration(cfg.HistoryRetentionDays) * 24 * time.Hour,
	}
}

// Start registers and starts the cron jobs
func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc("0 0 * * *", func() {
		ResetDailyCounters()
		Logger().Info("Daily counters reset")
	}); err != nil {
		return err
	}

	if s.store != nil {
		if _, err := s.cron.AddFunc("30 0 * * *", s.pruneHistory); err != nil {
			return err
		}
	}

	s.cron.Start()
	Logger().Info("Scheduler started")
	return nil
}

// Stop stops the cron scheduler
func (s *Scheduler) Stop() {
	if s.cron != nil {
		s.cron.Stop()
	}
}

// pruneHistory removes prediction records past the retention window
func (s *Scheduler) pruneHistory() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	cutoff := time.Now().Add(-s.retention)
	deleted, err := s.store.PruneHistory(ctx, cutoff)
	if err != nil {
		Logger().Error("History pruning failed: %v", err)
		return
	}
	if deleted > 0 {
		Logger().Info("Pruned %d prediction records older than %s", deleted, cutoff.Format("2006-01-02"))
	}
}
