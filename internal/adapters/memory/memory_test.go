package memory

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/quote-quiz/internal/domain"
)

func testQuote(id string) domain.Quote {
	return domain.Quote{
		ID:       id,
		Template: "{A}를 예측하는 가장 좋은 방법은 {B}를 창조하는 것이다.",
		Author:   "Peter Drucker",
		AnswerA:  "미래",
		AnswerB:  "미래",
	}
}

// sequentialIDs returns an IDFunc yielding ids in order.
func sequentialIDs(ids ...string) IDFunc {
	var mu sync.Mutex

	next := 0

	return func() (string, error) {
		mu.Lock()
		defer mu.Unlock()

		if next >= len(ids) {
			return "", errors.New("out of ids")
		}

		id := ids[next]
		next++

		return id, nil
	}
}

// Quote catalog

func TestNewQuoteCatalog(t *testing.T) {
	tests := []struct {
		name       string
		featuredID string
		quotes     []domain.Quote
		wantErr    string
	}{
		{name: "featured defaults to first", quotes: []domain.Quote{testQuote("2025-09-08"), testQuote("2025-09-09")}},
		{name: "explicit featured", featuredID: "2025-09-09", quotes: []domain.Quote{testQuote("2025-09-08"), testQuote("2025-09-09")}},
		{name: "empty catalog", wantErr: "at least one quote"},
		{name: "unknown featured", featuredID: "nope", quotes: []domain.Quote{testQuote("2025-09-08")}, wantErr: "featured quote not in catalog"},
		{name: "duplicate ids", quotes: []domain.Quote{testQuote("a"), testQuote("a")}, wantErr: "duplicate id"},
		{name: "invalid quote", quotes: []domain.Quote{{ID: "bad", Template: "no blanks"}}, wantErr: "validation failed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewQuoteCatalog(tt.featuredID, tt.quotes...)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}

			require.NoError(t, err)

			featured, err := c.Featured(context.Background())
			require.NoError(t, err)

			want := tt.featuredID
			if want == "" {
				want = tt.quotes[0].ID
			}

			assert.Equal(t, want, featured.ID)
		})
	}
}

func TestQuoteCatalog_Get(t *testing.T) {
	c, err := NewQuoteCatalog("", testQuote("2025-09-08"))
	require.NoError(t, err)

	q, err := c.Get(context.Background(), "2025-09-08")
	require.NoError(t, err)
	assert.Equal(t, "Peter Drucker", q.Author)

	// snapshots do not leak into the catalog
	q.Author = "someone else"
	again, err := c.Get(context.Background(), "2025-09-08")
	require.NoError(t, err)
	assert.Equal(t, "Peter Drucker", again.Author)

	_, err = c.Get(context.Background(), "does-not-exist")
	assert.True(t, domain.IsNotFound(err))
}

func TestQuoteCatalog_HealthCheck(t *testing.T) {
	c, err := NewQuoteCatalog("", testQuote("2025-09-08"))
	require.NoError(t, err)

	assert.Equal(t, "quote-catalog", c.Name())
	assert.NoError(t, c.Check(context.Background()))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, c.Check(ctx), context.Canceled)
}

// Lock registry

func TestLockRegistry_LockAndIsLocked(t *testing.T) {
	ctx := context.Background()
	r := NewLockRegistry()
	key := domain.NewLockKey("q", "dev1", "2025-09-08")

	assert.False(t, r.IsLocked(ctx, key))

	r.Lock(ctx, key)
	assert.True(t, r.IsLocked(ctx, key))

	// other devices and days are unaffected
	assert.False(t, r.IsLocked(ctx, domain.NewLockKey("q", "dev2", "2025-09-08")))
	assert.False(t, r.IsLocked(ctx, domain.NewLockKey("q", "dev1", "2025-09-09")))
}

func TestLockRegistry_LockIsIdempotent(t *testing.T) {
	ctx := context.Background()
	r := NewLockRegistry()
	key := domain.NewLockKey("q", "dev1", "2025-09-08")

	r.Lock(ctx, key)
	r.Lock(ctx, key)

	assert.Equal(t, 1, r.Len())
	assert.True(t, r.IsLocked(ctx, key))
}

func TestLockRegistry_EvictBefore(t *testing.T) {
	ctx := context.Background()
	r := NewLockRegistry()

	r.Lock(ctx, domain.NewLockKey("q", "dev1", "2025-09-06"))
	r.Lock(ctx, domain.NewLockKey("q", "dev2", "2025-09-07"))
	r.Lock(ctx, domain.NewLockKey("q", "dev1", "2025-09-08"))

	assert.Equal(t, 2, r.EvictBefore(ctx, "2025-09-08"))
	assert.Equal(t, 1, r.Len())
	assert.True(t, r.IsLocked(ctx, domain.NewLockKey("q", "dev1", "2025-09-08")))

	assert.Equal(t, 0, r.EvictBefore(ctx, "2025-09-08"))
}

func TestLockRegistry_ConcurrentLocks(t *testing.T) {
	ctx := context.Background()
	r := NewLockRegistry()

	const devices = 100

	var wg sync.WaitGroup
	for i := 0; i < devices; i++ {
		wg.Add(1)

		go func(i int) {
			defer wg.Done()

			key := domain.NewLockKey("q", fmt.Sprintf("dev%d", i), "2025-09-08")
			r.Lock(ctx, key)
			_ = r.IsLocked(ctx, key)
		}(i)
	}

	wg.Wait()

	assert.Equal(t, devices, r.Len())
}

// Submission store

func TestSubmissionStore_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 9, 8, 9, 0, 0, 0, time.UTC)
	s := NewSubmissionStore(SubmissionStoreConfig{
		NewID: sequentialIDs("s1"),
		Now:   func() time.Time { return now },
	})

	created, err := s.Create(ctx, "q", "dev1", "미래", "미래")
	require.NoError(t, err)
	assert.Equal(t, "s1", created.ID)
	assert.Equal(t, 0, created.LikeCount())
	assert.Equal(t, now, created.CreatedAt)

	got, err := s.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, created, got)

	_, err = s.Get(ctx, "missing")
	assert.True(t, domain.IsNotFound(err))
}

func TestSubmissionStore_DefaultIDsAreUniqueUUIDv7(t *testing.T) {
	ctx := context.Background()
	s := NewSubmissionStore(SubmissionStoreConfig{})

	seen := make(map[string]struct{})
	prev := ""

	for i := 0; i < 50; i++ {
		sub, err := s.Create(ctx, "q", fmt.Sprintf("dev%d", i), "a", "b")
		require.NoError(t, err)

		parsed, err := uuid.Parse(sub.ID)
		require.NoError(t, err)
		assert.Equal(t, uuid.Version(7), parsed.Version())

		_, dup := seen[sub.ID]
		assert.False(t, dup)
		seen[sub.ID] = struct{}{}

		assert.Greater(t, sub.ID, prev, "ids should sort in creation order")
		prev = sub.ID
	}
}

func TestSubmissionStore_CreateFailures(t *testing.T) {
	ctx := context.Background()

	t.Run("id generator error", func(t *testing.T) {
		s := NewSubmissionStore(SubmissionStoreConfig{NewID: sequentialIDs()})

		_, err := s.Create(ctx, "q", "dev1", "a", "b")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "generating submission id")
	})

	t.Run("duplicate id is rejected", func(t *testing.T) {
		s := NewSubmissionStore(SubmissionStoreConfig{NewID: sequentialIDs("same", "same")})

		_, err := s.Create(ctx, "q", "dev1", "a", "b")
		require.NoError(t, err)

		_, err = s.Create(ctx, "q", "dev2", "a", "b")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "already used")
	})
}

func TestSubmissionStore_ListByQuote(t *testing.T) {
	ctx := context.Background()
	s := NewSubmissionStore(SubmissionStoreConfig{NewID: sequentialIDs("s1", "s2", "s3")})

	_, err := s.Create(ctx, "q1", "dev1", "a", "b")
	require.NoError(t, err)
	_, err = s.Create(ctx, "q2", "dev1", "a", "b")
	require.NoError(t, err)
	_, err = s.Create(ctx, "q1", "dev2", "a", "b")
	require.NoError(t, err)

	subs, err := s.ListByQuote(ctx, "q1")
	require.NoError(t, err)

	ids := make([]string, 0, len(subs))
	for _, sub := range subs {
		ids = append(ids, sub.ID)
	}

	assert.ElementsMatch(t, []string{"s1", "s3"}, ids)

	empty, err := s.ListByQuote(ctx, "none")
	require.NoError(t, err)
	assert.Empty(t, empty)
	assert.NotNil(t, empty)
}

func TestSubmissionStore_ToggleLike(t *testing.T) {
	ctx := context.Background()
	s := NewSubmissionStore(SubmissionStoreConfig{NewID: sequentialIDs("s1")})

	_, err := s.Create(ctx, "q", "dev1", "a", "b")
	require.NoError(t, err)

	count, liked, err := s.ToggleLike(ctx, "s1", "dev2")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
	assert.True(t, liked)

	count, liked, err = s.ToggleLike(ctx, "s1", "dev2")
	require.NoError(t, err)
	assert.Equal(t, 0, count)
	assert.False(t, liked)

	got, err := s.Get(ctx, "s1")
	require.NoError(t, err)
	assert.False(t, got.LikedBy("dev2"))

	_, _, err = s.ToggleLike(ctx, "missing", "dev2")
	assert.True(t, domain.IsNotFound(err))
}

func TestSubmissionStore_SnapshotsAreIsolated(t *testing.T) {
	ctx := context.Background()
	s := NewSubmissionStore(SubmissionStoreConfig{NewID: sequentialIDs("s1")})

	created, err := s.Create(ctx, "q", "dev1", "a", "b")
	require.NoError(t, err)

	created.ToggleLike("dev9")
	created.FillA = "changed"

	got, err := s.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, 0, got.LikeCount())
	assert.Equal(t, "a", got.FillA)
}

func TestSubmissionStore_ConcurrentTogglesDoNotLoseUpdates(t *testing.T) {
	ctx := context.Background()
	s := NewSubmissionStore(SubmissionStoreConfig{NewID: sequentialIDs("s1")})

	_, err := s.Create(ctx, "q", "dev1", "a", "b")
	require.NoError(t, err)

	const likers = 200

	var wg sync.WaitGroup
	for i := 0; i < likers; i++ {
		wg.Add(1)

		go func(i int) {
			defer wg.Done()

			// Each liker toggles once, so each must observe its own like.
			_, liked, err := s.ToggleLike(ctx, "s1", fmt.Sprintf("liker%d", i))
			assert.NoError(t, err)
			assert.True(t, liked)
		}(i)
	}

	wg.Wait()

	got, err := s.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, likers, got.LikeCount())
}
