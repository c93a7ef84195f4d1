package app

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/quote-quiz/internal/adapters/memory"
	"github.com/jsamuelsen/quote-quiz/internal/domain"
	"github.com/jsamuelsen/quote-quiz/internal/mocks"
	"github.com/jsamuelsen/quote-quiz/internal/platform/clock"
	"github.com/jsamuelsen/quote-quiz/internal/platform/metrics"
)

const testQuoteID = "2025-09-08"

// discardLogger returns a logger that discards all output.
func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testQuote() domain.Quote {
	return domain.Quote{
		ID:       testQuoteID,
		Template: "{A}를 예측하는 가장 좋은 방법은 {B}를 창조하는 것이다.",
		Author:   "Peter Drucker",
		AnswerA:  "미래",
		AnswerB:  "미래",
	}
}

type quizFixture struct {
	svc      *QuizService
	clock    *clock.Manual
	locks    *memory.LockRegistry
	registry *prometheus.Registry
}

func newQuizFixture(t *testing.T) *quizFixture {
	t.Helper()

	catalog, err := memory.NewQuoteCatalog(testQuoteID, testQuote())
	require.NoError(t, err)

	clk := clock.NewManual(time.Date(2025, 9, 8, 9, 0, 0, 0, time.UTC))
	locks := memory.NewLockRegistry()
	reg := prometheus.NewRegistry()

	svc := NewQuizService(QuizServiceConfig{
		Quotes:      catalog,
		Submissions: memory.NewSubmissionStore(memory.SubmissionStoreConfig{Now: clk.Now}),
		Locks:       locks,
		Clock:       clk,
		Metrics:     metrics.NewQuiz(reg),
		Logger:      discardLogger(),
	})

	return &quizFixture{svc: svc, clock: clk, locks: locks, registry: reg}
}

func TestQuizService_Today(t *testing.T) {
	f := newQuizFixture(t)
	ctx := context.Background()

	view, err := f.svc.Today(ctx, "dev1")
	require.NoError(t, err)
	assert.Equal(t, testQuoteID, view.Quote.ID)
	assert.False(t, view.Locked)

	require.NoError(t, f.svc.Skip(ctx, testQuoteID, "dev1"))

	view, err = f.svc.Today(ctx, "dev1")
	require.NoError(t, err)
	assert.True(t, view.Locked)

	view, err = f.svc.Today(ctx, "")
	require.NoError(t, err)
	assert.False(t, view.Locked, "anonymous callers are never locked")
}

func TestQuizService_Quote_NotFound(t *testing.T) {
	f := newQuizFixture(t)

	_, err := f.svc.Quote(context.Background(), "nope")
	require.Error(t, err)
	assert.True(t, domain.IsNotFound(err))
}

func TestQuizService_Submit(t *testing.T) {
	f := newQuizFixture(t)
	ctx := context.Background()

	sub, err := f.svc.Submit(ctx, testQuoteID, "dev1", "미래", "미래")
	require.NoError(t, err)
	assert.NotEmpty(t, sub.ID)
	assert.Equal(t, testQuoteID, sub.QuoteID)
	assert.Equal(t, "dev1", sub.DeviceID)
	assert.Zero(t, sub.LikeCount())

	stored, err := f.svc.Submission(ctx, sub.ID)
	require.NoError(t, err)
	assert.Equal(t, "미래", stored.FillA)

	expected := `
# HELP quiz_submissions_total Accepted fill-in submissions.
# TYPE quiz_submissions_total counter
quiz_submissions_total 1
`
	assert.NoError(t, testutil.GatherAndCompare(f.registry, strings.NewReader(expected), "quiz_submissions_total"))
}

func TestQuizService_DailyGate(t *testing.T) {
	type step struct {
		action   string
		nextDay  bool
		conflict bool
	}

	tests := []struct {
		name  string
		steps []step
	}{
		{
			name: "second submit same day conflicts",
			steps: []step{
				{action: ActionSubmit},
				{action: ActionSubmit, conflict: true},
			},
		},
		{
			name: "skip then submit conflicts",
			steps: []step{
				{action: ActionSkip},
				{action: ActionSubmit, conflict: true},
			},
		},
		{
			name: "submit then skip conflicts",
			steps: []step{
				{action: ActionSubmit},
				{action: ActionSkip, conflict: true},
			},
		},
		{
			name: "second skip conflicts",
			steps: []step{
				{action: ActionSkip},
				{action: ActionSkip, conflict: true},
			},
		},
		{
			name: "next day unlocks",
			steps: []step{
				{action: ActionSubmit},
				{action: ActionSubmit, conflict: true},
				{action: ActionSubmit, nextDay: true},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newQuizFixture(t)
			ctx := context.Background()

			for i, s := range tt.steps {
				if s.nextDay {
					f.clock.NextDay()
				}

				var err error
				if s.action == ActionSkip {
					err = f.svc.Skip(ctx, testQuoteID, "dev1")
				} else {
					_, err = f.svc.Submit(ctx, testQuoteID, "dev1", "a", "b")
				}

				if s.conflict {
					require.Error(t, err, "step %d", i)
					assert.True(t, domain.IsConflict(err), "step %d", i)
					continue
				}

				require.NoError(t, err, "step %d", i)
			}
		})
	}
}

func TestQuizService_DailyGate_PerDevice(t *testing.T) {
	f := newQuizFixture(t)
	ctx := context.Background()

	_, err := f.svc.Submit(ctx, testQuoteID, "dev1", "a", "b")
	require.NoError(t, err)

	_, err = f.svc.Submit(ctx, testQuoteID, "dev2", "a", "b")
	assert.NoError(t, err)
}

func TestQuizService_Submit_RejectedInputs(t *testing.T) {
	tests := []struct {
		name     string
		quoteID  string
		deviceID string
		fillA    string
		fillB    string
		errCheck func(error) bool
	}{
		{
			name:     "missing device",
			quoteID:  testQuoteID,
			fillA:    "a",
			fillB:    "b",
			errCheck: func(err error) bool { return errors.Is(err, ErrDeviceRequired) && domain.IsValidation(err) },
		},
		{
			name:     "unknown quote",
			quoteID:  "nope",
			deviceID: "dev1",
			fillA:    "a",
			fillB:    "b",
			errCheck: domain.IsNotFound,
		},
		{
			name:     "empty fill",
			quoteID:  testQuoteID,
			deviceID: "dev1",
			fillA:    "",
			fillB:    "b",
			errCheck: domain.IsValidation,
		},
		{
			name:     "fill too long",
			quoteID:  testQuoteID,
			deviceID: "dev1",
			fillA:    "a",
			fillB:    strings.Repeat("x", domain.MaxFillLength+1),
			errCheck: domain.IsValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newQuizFixture(t)
			ctx := context.Background()

			sub, err := f.svc.Submit(ctx, tt.quoteID, tt.deviceID, tt.fillA, tt.fillB)
			require.Error(t, err)
			assert.True(t, tt.errCheck(err), "unexpected error: %v", err)
			assert.Nil(t, sub)

			// A rejected submit must not use up the day.
			assert.Zero(t, f.locks.Len())
		})
	}
}

func TestQuizService_Skip_RejectedInputs(t *testing.T) {
	f := newQuizFixture(t)
	ctx := context.Background()

	err := f.svc.Skip(ctx, testQuoteID, "")
	assert.ErrorIs(t, err, ErrDeviceRequired)

	err = f.svc.Skip(ctx, "nope", "dev1")
	assert.True(t, domain.IsNotFound(err))

	assert.Zero(t, f.locks.Len())
}

func TestQuizService_Submit_ConcurrentOneWins(t *testing.T) {
	f := newQuizFixture(t)
	ctx := context.Background()

	var (
		wg        sync.WaitGroup
		ok        atomic.Int32
		conflicts atomic.Int32
	)

	for range 50 {
		wg.Go(func() {
			_, err := f.svc.Submit(ctx, testQuoteID, "dev1", "a", "b")
			switch {
			case err == nil:
				ok.Add(1)
			case domain.IsConflict(err):
				conflicts.Add(1)
			}
		})
	}

	wg.Wait()

	assert.Equal(t, int32(1), ok.Load())
	assert.Equal(t, int32(49), conflicts.Load())

	ranking, err := f.svc.Ranking(ctx, testQuoteID)
	require.NoError(t, err)
	assert.Len(t, ranking, 1)
}

func TestQuizService_Submit_StoreFailureLeavesDayOpen(t *testing.T) {
	catalog, err := memory.NewQuoteCatalog("", testQuote())
	require.NoError(t, err)

	store := mocks.NewMockSubmissionStore(t)
	store.EXPECT().
		Create(mock.Anything, testQuoteID, "dev1", "a", "b").
		Return(nil, errors.New("disk on fire"))

	locks := memory.NewLockRegistry()

	svc := NewQuizService(QuizServiceConfig{
		Quotes:      catalog,
		Submissions: store,
		Locks:       locks,
		Clock:       clock.NewManual(time.Date(2025, 9, 8, 9, 0, 0, 0, time.UTC)),
		Logger:      discardLogger(),
	})

	_, err = svc.Submit(context.Background(), testQuoteID, "dev1", "a", "b")
	require.Error(t, err)
	assert.False(t, domain.IsConflict(err))
	assert.False(t, domain.IsValidation(err))
	assert.Zero(t, locks.Len())
}

func TestQuizService_Today_CatalogFailure(t *testing.T) {
	catalog := mocks.NewMockQuoteCatalog(t)
	catalog.EXPECT().
		Featured(mock.Anything).
		Return(nil, errors.New("catalog unavailable"))

	svc := NewQuizService(QuizServiceConfig{
		Quotes:      catalog,
		Submissions: memory.NewSubmissionStore(memory.SubmissionStoreConfig{}),
		Locks:       memory.NewLockRegistry(),
		Clock:       clock.NewManual(time.Date(2025, 9, 8, 9, 0, 0, 0, time.UTC)),
		Logger:      discardLogger(),
	})

	view, err := svc.Today(context.Background(), "dev1")
	require.Error(t, err)
	assert.Nil(t, view)
	assert.Contains(t, err.Error(), "loading featured quote")
	assert.False(t, domain.IsNotFound(err))
}

func TestQuizService_ExpiredContext(t *testing.T) {
	f := newQuizFixture(t)

	sub, err := f.svc.Submit(context.Background(), testQuoteID, "dev1", "a", "b")
	require.NoError(t, err)

	ctx, cancel := context.WithDeadline(context.Background(), time.Now().Add(-time.Second))
	defer cancel()

	_, err = f.svc.Submit(ctx, testQuoteID, "dev2", "a", "b")
	require.ErrorIs(t, err, context.DeadlineExceeded)

	err = f.svc.Skip(ctx, testQuoteID, "dev3")
	require.ErrorIs(t, err, context.DeadlineExceeded)

	_, err = f.svc.ToggleLike(ctx, sub.ID, "dev2")
	require.ErrorIs(t, err, context.DeadlineExceeded)

	assert.Equal(t, 1, f.locks.Len(), "expired calls must not use up the day")

	stored, err := f.svc.Submission(context.Background(), sub.ID)
	require.NoError(t, err)
	assert.Zero(t, stored.LikeCount())
}

func TestQuizService_ToggleLike_UsesStoreDirection(t *testing.T) {
	catalog, err := memory.NewQuoteCatalog("", testQuote())
	require.NoError(t, err)

	store := mocks.NewMockSubmissionStore(t)
	store.EXPECT().
		ToggleLike(mock.Anything, "s1", "dev2").
		Return(0, false, nil)

	reg := prometheus.NewRegistry()

	svc := NewQuizService(QuizServiceConfig{
		Quotes:      catalog,
		Submissions: store,
		Locks:       memory.NewLockRegistry(),
		Clock:       clock.NewManual(time.Date(2025, 9, 8, 9, 0, 0, 0, time.UTC)),
		Metrics:     metrics.NewQuiz(reg),
		Logger:      discardLogger(),
	})

	count, err := svc.ToggleLike(context.Background(), "s1", "dev2")
	require.NoError(t, err)
	assert.Zero(t, count)

	// No Get expectation is set: the direction comes from ToggleLike alone.
	expected := `
# HELP quiz_like_toggles_total Like toggles by resulting action.
# TYPE quiz_like_toggles_total counter
quiz_like_toggles_total{action="unlike"} 1
`
	assert.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "quiz_like_toggles_total"))
}

func TestQuizService_ToggleLike(t *testing.T) {
	f := newQuizFixture(t)
	ctx := context.Background()

	sub, err := f.svc.Submit(ctx, testQuoteID, "dev1", "a", "b")
	require.NoError(t, err)

	count, err := f.svc.ToggleLike(ctx, sub.ID, "dev2")
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	count, err = f.svc.ToggleLike(ctx, sub.ID, "dev3")
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	count, err = f.svc.ToggleLike(ctx, sub.ID, "dev2")
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	// authors may like their own submission
	count, err = f.svc.ToggleLike(ctx, sub.ID, "dev1")
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	expected := `
# HELP quiz_like_toggles_total Like toggles by resulting action.
# TYPE quiz_like_toggles_total counter
quiz_like_toggles_total{action="like"} 3
quiz_like_toggles_total{action="unlike"} 1
`
	assert.NoError(t, testutil.GatherAndCompare(f.registry, strings.NewReader(expected), "quiz_like_toggles_total"))
}

func TestQuizService_ToggleLike_Errors(t *testing.T) {
	f := newQuizFixture(t)
	ctx := context.Background()

	_, err := f.svc.ToggleLike(ctx, "missing", "dev1")
	assert.True(t, domain.IsNotFound(err))

	_, err = f.svc.ToggleLike(ctx, "missing", "")
	assert.ErrorIs(t, err, ErrDeviceRequired)
}

func TestQuizService_Ranking(t *testing.T) {
	f := newQuizFixture(t)
	ctx := context.Background()

	a, err := f.svc.Submit(ctx, testQuoteID, "dev1", "A", "A")
	require.NoError(t, err)

	b, err := f.svc.Submit(ctx, testQuoteID, "dev2", "B", "B")
	require.NoError(t, err)

	ranking, err := f.svc.Ranking(ctx, testQuoteID)
	require.NoError(t, err)
	require.Len(t, ranking, 2)
	assert.Equal(t, b.ID, ranking[0].ID, "equal likes list the newer submission first")
	assert.Equal(t, a.ID, ranking[1].ID)

	_, err = f.svc.ToggleLike(ctx, a.ID, "dev3")
	require.NoError(t, err)

	ranking, err = f.svc.Ranking(ctx, testQuoteID)
	require.NoError(t, err)
	assert.Equal(t, a.ID, ranking[0].ID)
	assert.Equal(t, 1, ranking[0].LikeCount)

	empty, err := f.svc.Ranking(ctx, "unknown")
	require.NoError(t, err)
	assert.Empty(t, empty)
}
