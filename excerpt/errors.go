package excerpt

import (
	"errors"
	"fmt"
)

// Sentinel errors for excerpt building. Match with errors.Is; the
// typed errors below carry the structured detail.
var (
	// ErrTagNotFound is returned when no node in the parsed document
	// matches the requested tag. Retrying with the same tag name
	// cannot succeed.
	ErrTagNotFound = errors.New("tag not found")

	// ErrBudgetExceeded is returned when the assembled excerpt still
	// estimates at or above the token budget after windowing.
	ErrBudgetExceeded = errors.New("token budget exceeded")

	// ErrInvalidInput is returned for an empty document, an empty tag
	// name, or non-positive limits.
	ErrInvalidInput = errors.New("invalid input")
)

// TagNotFoundError reports the tag that had no defining occurrence.
type TagNotFoundError struct {
	// Tag is the requested tag name, without delimiters.
	Tag string
}

func (e *TagNotFoundError) Error() string {
	return fmt.Sprintf("tag %q not found", e.Tag)
}

func (e *TagNotFoundError) Unwrap() error { return ErrTagNotFound }

// BudgetExceededError reports an excerpt that windowing could not bring
// under budget. The builder does not retry; a caller may choose to
// retry with a smaller MaxLines.
type BudgetExceededError struct {
	// Tag is the tag the excerpt was anchored on.
	Tag string

	// Tokens is the measured estimate of the assembled excerpt,
	// markers included.
	Tokens int

	// MaxTokens is the budget the excerpt had to stay strictly under.
	MaxTokens int
}

func (e *BudgetExceededError) Error() string {
	return fmt.Sprintf("excerpt for tag %q estimates %d tokens, budget is %d", e.Tag, e.Tokens, e.MaxTokens)
}

func (e *BudgetExceededError) Unwrap() error { return ErrBudgetExceeded }
