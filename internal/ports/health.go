package ports

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

// ErrDuplicateChecker is returned when a checker name is registered twice.
var ErrDuplicateChecker = errors.New("duplicate health checker")

// HealthChecker is implemented by components that can report their health.
// The quote catalog registers itself at startup:
//
//	func (c *QuoteCatalog) Name() string { return "quote-catalog" }
//
//	func (c *QuoteCatalog) Check(ctx context.Context) error {
//	    _, err := c.Featured(ctx)
//	    return err
//	}
type HealthChecker interface {
	// Name identifies the check in readiness responses. Must be unique.
	Name() string

	// Check returns nil when the component is healthy.
	// Implementations should respect context cancellation.
	Check(ctx context.Context) error
}

// HealthRegistry aggregates health checks for the readiness probe.
type HealthRegistry interface {
	// Register adds a checker. Returns ErrDuplicateChecker if its name is taken.
	Register(checker HealthChecker) error

	// CheckAll runs every registered check concurrently.
	CheckAll(ctx context.Context) *HealthResult
}

// HealthStatus represents the overall health state.
type HealthStatus string

const (
	HealthStatusHealthy   HealthStatus = "healthy"
	HealthStatusUnhealthy HealthStatus = "unhealthy"
)

// HealthResult contains the aggregated health check results.
type HealthResult struct {
	Status HealthStatus `json:"status"`

	// Checks is keyed by checker name.
	Checks map[string]*CheckResult `json:"checks"`

	Timestamp time.Time `json:"timestamp"`
}

// CheckResult contains the result of a single health check.
type CheckResult struct {
	Status   HealthStatus  `json:"status"`
	Message  string        `json:"message,omitempty"`
	Duration time.Duration `json:"duration"`
}

// HealthRegistryOption configures a DefaultHealthRegistry.
type HealthRegistryOption func(*DefaultHealthRegistry)

// WithCheckTimeout bounds each individual check. Zero disables the bound.
func WithCheckTimeout(d time.Duration) HealthRegistryOption {
	return func(r *DefaultHealthRegistry) {
		r.checkTimeout = d
	}
}

// WithHealthNow replaces the time source used for timestamps and durations.
func WithHealthNow(now func() time.Time) HealthRegistryOption {
	return func(r *DefaultHealthRegistry) {
		r.now = now
	}
}

// DefaultHealthRegistry is the in-process HealthRegistry. Safe for concurrent use.
type DefaultHealthRegistry struct {
	mu       sync.RWMutex
	checkers []HealthChecker
	names    map[string]struct{}

	checkTimeout time.Duration
	now          func() time.Time
}

// NewHealthRegistry creates an empty registry.
func NewHealthRegistry(opts ...HealthRegistryOption) *DefaultHealthRegistry {
	r := &DefaultHealthRegistry{
		checkers: make([]HealthChecker, 0),
		names:    make(map[string]struct{}),
		now:      time.Now,
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Register adds a health checker to the registry.
func (r *DefaultHealthRegistry) Register(checker HealthChecker) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	name := checker.Name()
	if _, taken := r.names[name]; taken {
		return fmt.Errorf("%w: %s", ErrDuplicateChecker, name)
	}

	r.names[name] = struct{}{}
	r.checkers = append(r.checkers, checker)

	return nil
}

// CheckAll runs all registered checks concurrently. Any failure marks the
// whole result unhealthy.
func (r *DefaultHealthRegistry) CheckAll(ctx context.Context) *HealthResult {
	r.mu.RLock()
	checkers := append([]HealthChecker(nil), r.checkers...)
	r.mu.RUnlock()

	results := make([]*CheckResult, len(checkers))

	// Check errors are recorded per result, so the group never fails.
	var g errgroup.Group
	for i, checker := range checkers {
		g.Go(func() error {
			results[i] = r.run(ctx, checker)
			return nil
		})
	}

	_ = g.Wait()

	aggregate := &HealthResult{
		Status:    HealthStatusHealthy,
		Checks:    make(map[string]*CheckResult, len(checkers)),
		Timestamp: r.now(),
	}

	for i, checker := range checkers {
		aggregate.Checks[checker.Name()] = results[i]
		if results[i].Status == HealthStatusUnhealthy {
			aggregate.Status = HealthStatusUnhealthy
		}
	}

	return aggregate
}

func (r *DefaultHealthRegistry) run(ctx context.Context, checker HealthChecker) *CheckResult {
	if r.checkTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.checkTimeout)

		defer cancel()
	}

	start := r.now()
	err := checker.Check(ctx)

	res := &CheckResult{
		Status:   HealthStatusHealthy,
		Duration: r.now().Sub(start),
	}

	if err != nil {
		res.Status = HealthStatusUnhealthy
		res.Message = err.Error()
	}

	return res
}
