// Package scheduler drives periodic and on-demand catalog refreshes.
package scheduler

import (
	"context"
	"time"

	"go.uber.org/zap"

	"flixapi/internal/catalog"
)

// Scheduler invokes the refresher once at startup, on a fixed interval, and
// whenever Trigger is called.
//
// There is no overlap prevention: a manual trigger while a periodic cycle is
// in flight runs concurrently with it. That is tolerated because store
// replaces are last-write-wins per category.
type Scheduler struct {
	refresher catalog.Refresher
	interval  time.Duration
	logger    *zap.Logger
	trigger   chan struct{}
}

// New constructs a Scheduler.
func New(refresher catalog.Refresher, interval time.Duration, logger *zap.Logger) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Scheduler{
		refresher: refresher,
		interval:  interval,
		logger:    logger,
		trigger:   make(chan struct{}, 1),
	}
}

// Run blocks, launching refresh cycles until the context finishes.
// The first cycle starts immediately.
func (s *Scheduler) Run(ctx context.Context) {
	s.launch(ctx, "startup")

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.launch(ctx, "interval")
		case <-s.trigger:
			s.launch(ctx, "manual")
		}
	}
}

// Trigger requests an on-demand refresh. It never blocks; a trigger that
// arrives while one is already pending coalesces with it.
func (s *Scheduler) Trigger() {
	select {
	case s.trigger <- struct{}{}:
	default:
	}
}

func (s *Scheduler) launch(ctx context.Context, reason string) {
	s.logger.Info("launching refresh cycle", zap.String("reason", reason))
	go s.refresher.RefreshAll(ctx)
}
