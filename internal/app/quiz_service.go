// Package app contains application services that orchestrate use cases.
// This is the application layer in Clean Architecture - it coordinates
// domain logic and infrastructure through ports.
//
// What does NOT belong here:
//   - HTTP specifics (that's adapters)
//   - Storage details (that's the memory adapter)
//   - Core domain rules (that's the domain layer)
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/jsamuelsen/quote-quiz/internal/domain"
	"github.com/jsamuelsen/quote-quiz/internal/platform/logging"
	"github.com/jsamuelsen/quote-quiz/internal/platform/metrics"
	"github.com/jsamuelsen/quote-quiz/internal/platform/telemetry"
	"github.com/jsamuelsen/quote-quiz/internal/ports"
)

// Daily actions, used for conflict reporting.
const (
	ActionSubmit = "submit"
	ActionSkip   = "skip"
)

// ErrDeviceRequired is wrapped by errors for calls without a device id.
var ErrDeviceRequired = errors.New("device id is required")

// QuizService runs the daily quiz: serving today's quote, gating one
// submit-or-skip per device per day, likes and ranking.
type QuizService struct {
	quotes      ports.QuoteCatalog
	submissions ports.SubmissionStore
	locks       ports.LockRegistry
	clock       ports.Clock
	metrics     *metrics.Quiz
	logger      *slog.Logger

	// gate serialises lock check, submission create and lock set so two
	// requests for the same device-day cannot both pass the check.
	gate sync.Mutex
}

// QuizServiceConfig contains the quiz service dependencies.
type QuizServiceConfig struct {
	Quotes      ports.QuoteCatalog
	Submissions ports.SubmissionStore
	Locks       ports.LockRegistry
	Clock       ports.Clock

	// Metrics is optional.
	Metrics *metrics.Quiz

	// Logger defaults to slog.Default().
	Logger *slog.Logger
}

// NewQuizService creates a quiz service with the provided dependencies.
func NewQuizService(cfg QuizServiceConfig) *QuizService {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &QuizService{
		quotes:      cfg.Quotes,
		submissions: cfg.Submissions,
		locks:       cfg.Locks,
		clock:       cfg.Clock,
		metrics:     cfg.Metrics,
		logger:      logger.With(slog.String("component", "app.QuizService")),
	}
}

// TodayView is today's quote as seen by one device.
type TodayView struct {
	Quote *domain.Quote

	// Locked reports whether the device already submitted or skipped today.
	// Always false when no device id was supplied.
	Locked bool
}

// Today returns the featured quote and whether deviceID has used today's action.
func (s *QuizService) Today(ctx context.Context, deviceID string) (*TodayView, error) {
	quote, err := s.quotes.Featured(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading featured quote: %w", err)
	}

	view := &TodayView{Quote: quote}

	if deviceID != "" {
		view.Locked = s.locks.IsLocked(ctx, s.lockKey(quote.ID, deviceID))
	}

	return view, nil
}

// Quote returns a quote by id.
func (s *QuizService) Quote(ctx context.Context, id string) (*domain.Quote, error) {
	quote, err := s.quotes.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("getting quote: %w", err)
	}

	return quote, nil
}

// Submit records deviceID's fills for quoteID and uses up today's action.
// Either the submission is stored and the lock is set, or neither happens.
func (s *QuizService) Submit(ctx context.Context, quoteID, deviceID, fillA, fillB string) (_ *domain.Submission, err error) {
	ctx, span := telemetry.StartSpan(ctx, "QuizService.Submit", telemetry.AttrQuoteID.String(quoteID))
	defer func() { telemetry.EndSpan(span, err) }()

	logger := logging.FromContextOr(ctx, s.logger).With(
		slog.String("method", "Submit"),
		slog.String("quote_id", quoteID),
	)

	if deviceID == "" {
		return nil, deviceRequired()
	}

	quote, err := s.quotes.Get(ctx, quoteID)
	if err != nil {
		return nil, fmt.Errorf("getting quote: %w", err)
	}

	key := s.lockKey(quote.ID, deviceID)
	span.SetAttributes(telemetry.AttrDay.String(key.Day))

	s.gate.Lock()
	defer s.gate.Unlock()

	// The request may have expired while queued on the gate.
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("waiting for daily gate: %w", err)
	}

	logger.Log(ctx, logging.LevelTrace, "checking daily lock", slog.String("day", key.Day))

	if s.locks.IsLocked(ctx, key) {
		s.metrics.RecordConflict(ActionSubmit)
		logger.InfoContext(ctx, "daily action already used", slog.String("day", key.Day))

		return nil, alreadyActed(key)
	}

	if err := domain.ValidateFills(fillA, fillB); err != nil {
		return nil, err
	}

	sub, err := s.submissions.Create(ctx, quote.ID, deviceID, fillA, fillB)
	if err != nil {
		return nil, fmt.Errorf("creating submission: %w", err)
	}

	s.locks.Lock(ctx, key)

	s.metrics.RecordSubmission()
	s.metrics.SetLockEntries(s.locks.Len())

	logger.InfoContext(ctx, "submission created",
		slog.String("submission_id", sub.ID),
		slog.String("day", key.Day),
	)

	return sub, nil
}

// Skip uses up deviceID's action for quoteID today without submitting.
func (s *QuizService) Skip(ctx context.Context, quoteID, deviceID string) (err error) {
	ctx, span := telemetry.StartSpan(ctx, "QuizService.Skip", telemetry.AttrQuoteID.String(quoteID))
	defer func() { telemetry.EndSpan(span, err) }()

	logger := logging.FromContextOr(ctx, s.logger).With(
		slog.String("method", "Skip"),
		slog.String("quote_id", quoteID),
	)

	if deviceID == "" {
		return deviceRequired()
	}

	quote, err := s.quotes.Get(ctx, quoteID)
	if err != nil {
		return fmt.Errorf("getting quote: %w", err)
	}

	key := s.lockKey(quote.ID, deviceID)
	span.SetAttributes(telemetry.AttrDay.String(key.Day))

	s.gate.Lock()
	defer s.gate.Unlock()

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("waiting for daily gate: %w", err)
	}

	logger.Log(ctx, logging.LevelTrace, "checking daily lock", slog.String("day", key.Day))

	if s.locks.IsLocked(ctx, key) {
		s.metrics.RecordConflict(ActionSkip)
		logger.InfoContext(ctx, "daily action already used", slog.String("day", key.Day))

		return alreadyActed(key)
	}

	s.locks.Lock(ctx, key)

	s.metrics.RecordSkip()
	s.metrics.SetLockEntries(s.locks.Len())

	logger.InfoContext(ctx, "quote skipped", slog.String("day", key.Day))

	return nil
}

// ToggleLike likes or un-likes a submission on behalf of deviceID and
// returns the resulting like count.
func (s *QuizService) ToggleLike(ctx context.Context, submissionID, deviceID string) (_ int, err error) {
	ctx, span := telemetry.StartSpan(ctx, "QuizService.ToggleLike", telemetry.AttrSubmissionID.String(submissionID))
	defer func() { telemetry.EndSpan(span, err) }()

	if deviceID == "" {
		return 0, deviceRequired()
	}

	if err := ctx.Err(); err != nil {
		return 0, err
	}

	count, liked, err := s.submissions.ToggleLike(ctx, submissionID, deviceID)
	if err != nil {
		return 0, fmt.Errorf("toggling like: %w", err)
	}

	s.metrics.RecordLike(liked)

	logging.FromContextOr(ctx, s.logger).DebugContext(ctx, "like toggled",
		slog.String("submission_id", submissionID),
		slog.Bool("liked", liked),
		slog.Int("likes", count),
	)

	return count, nil
}

// Submission returns a submission by id.
func (s *QuizService) Submission(ctx context.Context, id string) (*domain.Submission, error) {
	sub, err := s.submissions.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("getting submission: %w", err)
	}

	return sub, nil
}

// Ranking returns quoteID's submissions ordered by likes.
// Unknown quotes have an empty ranking.
func (s *QuizService) Ranking(ctx context.Context, quoteID string) ([]domain.RankedSubmission, error) {
	subs, err := s.submissions.ListByQuote(ctx, quoteID)
	if err != nil {
		return nil, fmt.Errorf("listing submissions: %w", err)
	}

	return Rank(quoteID, subs), nil
}

// lockKey derives today's key. The day is computed once per call.
func (s *QuizService) lockKey(quoteID, deviceID string) domain.LockKey {
	return domain.NewLockKey(quoteID, deviceID, s.clock.Day(s.clock.Now()))
}

func deviceRequired() error {
	return fmt.Errorf("%w: %w", ErrDeviceRequired,
		domain.NewValidationError("deviceId", "is required"))
}

func alreadyActed(key domain.LockKey) error {
	return domain.NewAlreadyActedError(key.Day)
}
