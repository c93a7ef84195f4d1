package app

import (
	"cmp"
	"slices"
	"strings"

	"github.com/jsamuelsen/quote-quiz/internal/domain"
)

// Rank orders a quote's submissions for display.
//
// Submissions for other quotes are dropped. Rows are sorted by like count,
// highest first; equal counts are ordered by id descending. With time-ordered
// ids this lists the newest submission first.
func Rank(quoteID string, subs []*domain.Submission) []domain.RankedSubmission {
	rows := make([]domain.RankedSubmission, 0, len(subs))

	for _, s := range subs {
		if s.QuoteID != quoteID {
			continue
		}

		rows = append(rows, domain.RankedSubmission{
			ID:        s.ID,
			QuoteID:   s.QuoteID,
			FillA:     s.FillA,
			FillB:     s.FillB,
			LikeCount: s.LikeCount(),
		})
	}

	slices.SortFunc(rows, compareRanked)

	return rows
}

func compareRanked(a, b domain.RankedSubmission) int {
	if c := cmp.Compare(b.LikeCount, a.LikeCount); c != 0 {
		return c
	}

	return strings.Compare(b.ID, a.ID)
}
