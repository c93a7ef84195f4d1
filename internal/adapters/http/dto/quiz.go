package dto

import (
	"time"

	"github.com/jsamuelsen/quote-quiz/internal/app"
	"github.com/jsamuelsen/quote-quiz/internal/domain"
)

// SubmitRequest is the body of POST /quotes/:id/submissions.
type SubmitRequest struct {
	FillA string `json:"fillA" validate:"required,min=1,max=24"`
	FillB string `json:"fillB" validate:"required,min=1,max=24"`
}

// QuoteResponse is a quote with its answers.
type QuoteResponse struct {
	ID       string `json:"id"`
	Template string `json:"template"`
	Author   string `json:"author"`
	AnswerA  string `json:"answerA"`
	AnswerB  string `json:"answerB"`
}

// NewQuoteResponse converts a domain quote.
func NewQuoteResponse(q *domain.Quote) QuoteResponse {
	return QuoteResponse{
		ID:       q.ID,
		Template: q.Template,
		Author:   q.Author,
		AnswerA:  q.AnswerA,
		AnswerB:  q.AnswerB,
	}
}

// TodayResponse is the body of GET /quotes/today.
type TodayResponse struct {
	Quote  QuoteResponse `json:"quote"`
	Locked bool          `json:"locked"`
}

// NewTodayResponse converts the service's view of today.
func NewTodayResponse(v *app.TodayView) TodayResponse {
	return TodayResponse{
		Quote:  NewQuoteResponse(v.Quote),
		Locked: v.Locked,
	}
}

// CreatedResponse carries the id of a new submission.
type CreatedResponse struct {
	ID string `json:"id"`
}

// RankingItem is one ranked submission.
type RankingItem struct {
	ID      string `json:"id"`
	QuoteID string `json:"quoteId"`
	FillA   string `json:"fillA"`
	FillB   string `json:"fillB"`
	Likes   int    `json:"likes"`
}

// RankingResponse is the body of GET /quotes/:id/ranking.
type RankingResponse struct {
	Items []RankingItem `json:"items"`
}

// NewRankingResponse converts ranked rows. Items is never null.
func NewRankingResponse(rows []domain.RankedSubmission) RankingResponse {
	items := make([]RankingItem, 0, len(rows))
	for _, r := range rows {
		items = append(items, RankingItem{
			ID:      r.ID,
			QuoteID: r.QuoteID,
			FillA:   r.FillA,
			FillB:   r.FillB,
			Likes:   r.LikeCount,
		})
	}

	return RankingResponse{Items: items}
}

// LikeResponse is the body of POST /submissions/:sid/like.
type LikeResponse struct {
	Likes int `json:"likes"`
}

// SubmissionResponse is the body of GET /submissions/:sid.
// The author's device id is not exposed.
type SubmissionResponse struct {
	ID        string    `json:"id"`
	QuoteID   string    `json:"quoteId"`
	FillA     string    `json:"fillA"`
	FillB     string    `json:"fillB"`
	Likes     int       `json:"likes"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewSubmissionResponse converts a domain submission.
func NewSubmissionResponse(s *domain.Submission) SubmissionResponse {
	return SubmissionResponse{
		ID:        s.ID,
		QuoteID:   s.QuoteID,
		FillA:     s.FillA,
		FillB:     s.FillB,
		Likes:     s.LikeCount(),
		CreatedAt: s.CreatedAt,
	}
}
