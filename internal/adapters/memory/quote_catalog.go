package memory

import (
	"context"
	"errors"
	"fmt"

	"github.com/jsamuelsen/quote-quiz/internal/domain"
)

// ErrNoFeaturedQuote is returned when the featured quote id is not in the catalog.
var ErrNoFeaturedQuote = errors.New("featured quote not in catalog")

// QuoteCatalog is a read-only set of quotes built at startup.
type QuoteCatalog struct {
	quotes     map[string]*domain.Quote
	featuredID string
}

// NewQuoteCatalog validates quotes and builds a catalog featuring featuredID.
// An empty featuredID features the first quote.
func NewQuoteCatalog(featuredID string, quotes ...domain.Quote) (*QuoteCatalog, error) {
	if len(quotes) == 0 {
		return nil, errors.New("quote catalog needs at least one quote")
	}

	byID := make(map[string]*domain.Quote, len(quotes))

	for i := range quotes {
		q := quotes[i]

		if err := q.Validate(); err != nil {
			return nil, fmt.Errorf("quote %q: %w", q.ID, err)
		}

		if _, dup := byID[q.ID]; dup {
			return nil, fmt.Errorf("quote %q: duplicate id", q.ID)
		}

		byID[q.ID] = &q
	}

	if featuredID == "" {
		featuredID = quotes[0].ID
	}

	if _, ok := byID[featuredID]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrNoFeaturedQuote, featuredID)
	}

	return &QuoteCatalog{quotes: byID, featuredID: featuredID}, nil
}

// Get returns the quote with the given id.
func (c *QuoteCatalog) Get(_ context.Context, id string) (*domain.Quote, error) {
	q, ok := c.quotes[id]
	if !ok {
		return nil, domain.NewNotFoundError("quote", id)
	}

	cp := *q

	return &cp, nil
}

// Featured returns today's quote.
func (c *QuoteCatalog) Featured(ctx context.Context) (*domain.Quote, error) {
	return c.Get(ctx, c.featuredID)
}

// Name implements ports.HealthChecker.
func (c *QuoteCatalog) Name() string {
	return "quote-catalog"
}

// Check implements ports.HealthChecker. The catalog is healthy while it can
// serve the featured quote.
func (c *QuoteCatalog) Check(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	_, err := c.Featured(ctx)

	return err
}
