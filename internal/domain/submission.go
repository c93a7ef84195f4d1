package domain

import (
	"time"
	"unicode/utf8"
)

// Fill length bounds, counted in characters (runes).
const (
	MinFillLength = 1
	MaxFillLength = 24
)

// Submission is one device's answer to a quote.
type Submission struct {
	ID        string
	QuoteID   string
	DeviceID  string
	FillA     string
	FillB     string
	CreatedAt time.Time

	// Likes holds the devices that currently like this submission.
	Likes map[string]struct{}
}

// LikeCount returns the number of devices liking the submission.
func (s *Submission) LikeCount() int {
	return len(s.Likes)
}

// LikedBy reports whether deviceID currently likes the submission.
func (s *Submission) LikedBy(deviceID string) bool {
	_, ok := s.Likes[deviceID]
	return ok
}

// ToggleLike adds deviceID to the like set if absent and removes it otherwise.
// Returns the resulting like count.
func (s *Submission) ToggleLike(deviceID string) int {
	if s.Likes == nil {
		s.Likes = make(map[string]struct{})
	}

	if _, ok := s.Likes[deviceID]; ok {
		delete(s.Likes, deviceID)
	} else {
		s.Likes[deviceID] = struct{}{}
	}

	return len(s.Likes)
}

// Clone returns a deep copy safe to hand out of a store.
func (s *Submission) Clone() *Submission {
	c := *s

	c.Likes = make(map[string]struct{}, len(s.Likes))
	for d := range s.Likes {
		c.Likes[d] = struct{}{}
	}

	return &c
}

// ValidateFills checks both blanks are within the allowed length.
func ValidateFills(fillA, fillB string) error {
	var issues []FieldIssue

	if msg := fillMessage(fillA); msg != "" {
		issues = append(issues, FieldIssue{Field: "fillA", Message: msg})
	}

	if msg := fillMessage(fillB); msg != "" {
		issues = append(issues, FieldIssue{Field: "fillB", Message: msg})
	}

	return NewValidationErrors(issues...)
}

func fillMessage(fill string) string {
	switch n := utf8.RuneCountInString(fill); {
	case n < MinFillLength:
		return "must be at least 1 characters"
	case n > MaxFillLength:
		return "must be at most 24 characters"
	default:
		return ""
	}
}

// RankedSubmission is a read-only ranking row.
type RankedSubmission struct {
	ID        string
	QuoteID   string
	FillA     string
	FillB     string
	LikeCount int
}
