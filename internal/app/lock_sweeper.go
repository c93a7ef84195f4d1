package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/jsamuelsen/quote-quiz/internal/platform/metrics"
	"github.com/jsamuelsen/quote-quiz/internal/ports"
)

// DefaultSweepSchedule runs the sweeper five minutes after midnight.
const DefaultSweepSchedule = "5 0 * * *"

// LockSweeper periodically drops lock keys from past days.
// Keys from a past day can never match again, so removing them only bounds memory.
type LockSweeper struct {
	locks    ports.LockRegistry
	clock    ports.Clock
	metrics  *metrics.Quiz
	logger   *slog.Logger
	schedule string
	location *time.Location
}

// LockSweeperConfig configures a LockSweeper.
type LockSweeperConfig struct {
	Locks ports.LockRegistry
	Clock ports.Clock

	// Schedule is a standard 5-field cron expression. Defaults to DefaultSweepSchedule.
	Schedule string

	// Location evaluates Schedule. Defaults to UTC.
	Location *time.Location

	Metrics *metrics.Quiz
	Logger  *slog.Logger
}

// NewLockSweeper validates the schedule and returns a sweeper.
func NewLockSweeper(cfg LockSweeperConfig) (*LockSweeper, error) {
	if cfg.Schedule == "" {
		cfg.Schedule = DefaultSweepSchedule
	}

	if cfg.Location == nil {
		cfg.Location = time.UTC
	}

	if _, err := cron.ParseStandard(cfg.Schedule); err != nil {
		return nil, fmt.Errorf("parsing sweep schedule %q: %w", cfg.Schedule, err)
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &LockSweeper{
		locks:    cfg.Locks,
		clock:    cfg.Clock,
		metrics:  cfg.Metrics,
		logger:   logger.With(slog.String("component", "app.LockSweeper")),
		schedule: cfg.Schedule,
		location: cfg.Location,
	}, nil
}

// Sweep evicts every key older than today and returns the number removed.
func (s *LockSweeper) Sweep(ctx context.Context) int {
	today := s.clock.Day(s.clock.Now())
	removed := s.locks.EvictBefore(ctx, today)

	s.metrics.RecordEvicted(removed)
	s.metrics.SetLockEntries(s.locks.Len())

	s.logger.InfoContext(ctx, "swept daily locks",
		slog.String("today", today),
		slog.Int("removed", removed),
		slog.Int("remaining", s.locks.Len()),
	)

	return removed
}

// Run schedules Sweep and blocks until ctx is done, then waits for a
// running sweep to finish.
func (s *LockSweeper) Run(ctx context.Context) error {
	cronLogger := cron.PrintfLogger(slog.NewLogLogger(s.logger.Handler(), slog.LevelDebug))

	c := cron.New(
		cron.WithLocation(s.location),
		cron.WithLogger(cronLogger),
		cron.WithChain(cron.Recover(cronLogger)),
	)

	if _, err := c.AddFunc(s.schedule, func() { s.Sweep(ctx) }); err != nil {
		return fmt.Errorf("scheduling lock sweep: %w", err)
	}

	s.logger.InfoContext(ctx, "lock sweeper started",
		slog.String("schedule", s.schedule),
		slog.String("location", s.location.String()),
	)

	c.Start()

	<-ctx.Done()

	<-c.Stop().Done()

	s.logger.Info("lock sweeper stopped")

	return nil
}
