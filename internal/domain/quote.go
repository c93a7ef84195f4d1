// Package domain contains core business entities and rules.
package domain

import "strings"

// Blank placeholders that a quote template must contain exactly once each.
const (
	BlankA = "{A}"
	BlankB = "{B}"
)

// Quote is a quotation with two blanks the player fills in.
// Quotes are immutable once loaded into the catalog.
type Quote struct {
	// ID is a stable, human-assigned key such as "2025-09-08".
	ID string

	// Template is the quote text containing BlankA and BlankB.
	Template string

	// Author is who said or wrote the quote.
	Author string

	// AnswerA is the original text for BlankA.
	AnswerA string

	// AnswerB is the original text for BlankB.
	AnswerB string
}

// Validate checks the quote is usable as a two-blank puzzle.
func (q *Quote) Validate() error {
	var issues []FieldIssue

	if strings.TrimSpace(q.ID) == "" {
		issues = append(issues, FieldIssue{Field: "id", Message: "must not be empty"})
	}

	if strings.Count(q.Template, BlankA) != 1 {
		issues = append(issues, FieldIssue{Field: "template", Message: "must contain " + BlankA + " exactly once"})
	}

	if strings.Count(q.Template, BlankB) != 1 {
		issues = append(issues, FieldIssue{Field: "template", Message: "must contain " + BlankB + " exactly once"})
	}

	if q.AnswerA == "" {
		issues = append(issues, FieldIssue{Field: "answerA", Message: "must not be empty"})
	}

	if q.AnswerB == "" {
		issues = append(issues, FieldIssue{Field: "answerB", Message: "must not be empty"})
	}

	return NewValidationErrors(issues...)
}
