// Package ports defines interfaces for the quiz's collaborators.
// Ports are contracts that adapters implement, allowing the application layer
// to depend on abstractions rather than concrete implementations.
//
// Port Design Principles:
//   - Context as first parameter (always) for cancellation and deadlines
//   - Return domain types, never storage or transport types
//   - Error returns use domain error types (ErrNotFound, ErrConflict, etc.)
//   - Keep interfaces small and focused
package ports

import (
	"context"
	"time"

	"github.com/jsamuelsen/quote-quiz/internal/domain"
)

// QuoteCatalog holds the quotes that can be played.
// The catalog is read-only after startup.
type QuoteCatalog interface {
	// Get returns the quote with the given id.
	// Returns domain.ErrNotFound if the quote does not exist.
	Get(ctx context.Context, id string) (*domain.Quote, error)

	// Featured returns the quote served as "today's" quote.
	Featured(ctx context.Context) (*domain.Quote, error)
}

// SubmissionStore holds player submissions.
//
// Returned submissions are snapshots; mutating them does not affect the store.
type SubmissionStore interface {
	// Create stores a new submission with a fresh unique id and an empty like set.
	// Callers validate the fills beforehand.
	Create(ctx context.Context, quoteID, deviceID, fillA, fillB string) (*domain.Submission, error)

	// Get returns the submission with the given id.
	// Returns domain.ErrNotFound if the submission does not exist.
	Get(ctx context.Context, id string) (*domain.Submission, error)

	// ListByQuote returns every submission for the quote in no particular order.
	ListByQuote(ctx context.Context, quoteID string) ([]*domain.Submission, error)

	// ToggleLike adds deviceID to the submission's likes if absent, removes it otherwise,
	// and returns the resulting like count and whether deviceID now likes it.
	// Returns domain.ErrNotFound if the submission does not exist.
	ToggleLike(ctx context.Context, id, deviceID string) (count int, liked bool, err error)
}

// LockRegistry records which (quote, device, day) keys have used their daily action.
type LockRegistry interface {
	// IsLocked reports whether key has already been used.
	IsLocked(ctx context.Context, key domain.LockKey) bool

	// Lock marks key as used. Locking an already locked key is a no-op.
	Lock(ctx context.Context, key domain.LockKey)

	// EvictBefore drops every key whose day is earlier than day and
	// returns how many were removed.
	EvictBefore(ctx context.Context, day string) int

	// Len returns the number of stored keys.
	Len() int
}

// Clock supplies the current time and the calendar day it falls on.
type Clock interface {
	// Now returns the current time.
	Now() time.Time

	// Day returns the calendar day of t in the clock's location, formatted
	// with domain.DayLayout.
	Day(t time.Time) string
}
