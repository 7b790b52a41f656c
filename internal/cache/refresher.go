package cache

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

// Refresher repopulates the snapshots on a fixed interval.
type Refresher struct {
	snapshots *Snapshots
	interval  time.Duration
	timeout   time.Duration
	logger    *slog.Logger
	cron      *cron.Cron
}

func NewRefresher(snapshots *Snapshots, interval time.Duration, logger *slog.Logger) *Refresher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Refresher{
		snapshots: snapshots,
		interval:  interval,
		timeout:   30 * time.Second,
		logger:    logger,
		cron:      cron.New(),
	}
}

// Start schedules the job. A zero interval leaves the refresher idle.
func (r *Refresher) Start() error {
	if r.interval <= 0 {
		r.logger.Info("snapshot refresher disabled")
		return nil
	}
	schedule := fmt.Sprintf("@every %s", r.interval)
	if _, err := r.cron.AddFunc(schedule, r.run); err != nil {
		return fmt.Errorf("schedule snapshot refresh: %w", err)
	}
	r.cron.Start()
	r.logger.Info("snapshot refresher started", "interval", r.interval.String())
	return nil
}

// Stop halts scheduling and waits for a running job to finish.
func (r *Refresher) Stop() {
	<-r.cron.Stop().Done()
}

func (r *Refresher) run() {
	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()

	start := time.Now()
	if err := r.snapshots.Refresh(ctx); err != nil {
		r.logger.Error("snapshot refresh failed", "error", err)
		return
	}
	r.logger.Info("snapshot refresh completed", "took", time.Since(start).String())
}
