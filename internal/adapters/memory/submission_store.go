package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jsamuelsen/quote-quiz/internal/domain"
)

// IDFunc generates submission identifiers.
type IDFunc func() (string, error)

// NewV7ID returns a UUIDv7 string. UUIDv7 strings sort in creation order.
func NewV7ID() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", err
	}

	return id.String(), nil
}

// SubmissionStoreConfig configures a SubmissionStore.
type SubmissionStoreConfig struct {
	// NewID generates submission ids. Defaults to NewV7ID.
	NewID IDFunc

	// Now stamps CreatedAt. Defaults to time.Now.
	Now func() time.Time
}

// SubmissionStore keeps submissions in a map guarded by a single mutex.
type SubmissionStore struct {
	mu          sync.RWMutex
	submissions map[string]*domain.Submission
	newID       IDFunc
	now         func() time.Time
}

// NewSubmissionStore creates an empty store.
func NewSubmissionStore(cfg SubmissionStoreConfig) *SubmissionStore {
	if cfg.NewID == nil {
		cfg.NewID = NewV7ID
	}

	if cfg.Now == nil {
		cfg.Now = time.Now
	}

	return &SubmissionStore{
		submissions: make(map[string]*domain.Submission),
		newID:       cfg.NewID,
		now:         cfg.Now,
	}
}

// Create stores a new submission and returns a snapshot of it.
func (s *SubmissionStore) Create(_ context.Context, quoteID, deviceID, fillA, fillB string) (*domain.Submission, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, err := s.newID()
	if err != nil {
		return nil, fmt.Errorf("generating submission id: %w", err)
	}

	if _, dup := s.submissions[id]; dup {
		return nil, fmt.Errorf("generating submission id: %q already used", id)
	}

	sub := &domain.Submission{
		ID:        id,
		QuoteID:   quoteID,
		DeviceID:  deviceID,
		FillA:     fillA,
		FillB:     fillB,
		CreatedAt: s.now(),
		Likes:     make(map[string]struct{}),
	}
	s.submissions[id] = sub

	return sub.Clone(), nil
}

// Get returns a snapshot of the submission.
func (s *SubmissionStore) Get(_ context.Context, id string) (*domain.Submission, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sub, ok := s.submissions[id]
	if !ok {
		return nil, domain.NewNotFoundError("submission", id)
	}

	return sub.Clone(), nil
}

// ListByQuote returns snapshots of the quote's submissions, unordered.
func (s *SubmissionStore) ListByQuote(_ context.Context, quoteID string) ([]*domain.Submission, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*domain.Submission, 0)

	for _, sub := range s.submissions {
		if sub.QuoteID == quoteID {
			out = append(out, sub.Clone())
		}
	}

	return out, nil
}

// ToggleLike flips deviceID's like on the submission.
func (s *SubmissionStore) ToggleLike(_ context.Context, id, deviceID string) (int, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sub, ok := s.submissions[id]
	if !ok {
		return 0, false, domain.NewNotFoundError("submission", id)
	}

	count := sub.ToggleLike(deviceID)

	return count, sub.LikedBy(deviceID), nil
}
