// Package common provides shared utilities and types used across the application.
package common

import (
	"errors"
	"fmt"
)

// Common application errors.
var (
	// Rule configuration errors.
	ErrNoRules         = errors.New("no category rules configured")
	ErrMissingCatchAll = errors.New("rule set has no catch-all category")
	ErrInvalidRule     = errors.New("invalid category rule")

	// Configuration errors.
	ErrInvalidConfig = errors.New("invalid configuration")

	// Embedding errors.
	ErrVectorizerUnavailable = errors.New("vectorizer unavailable")
)

// InvalidInputError reports a malformed message record in a batch. The
// engine fails fast on these rather than skipping records, because
// suggestion support thresholds depend on batch completeness.
type InvalidInputError struct {
	ID     string // offending record id, empty when the id itself is missing
	Field  string
	Reason string
}

func (e *InvalidInputError) Error() string {
	if e.ID == "" {
		return fmt.Sprintf("invalid input: %s: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("invalid input: message %q: %s: %s", e.ID, e.Field, e.Reason)
}

// NewInvalidInput creates an InvalidInputError for the given record.
func NewInvalidInput(id, field, reason string) error {
	return &InvalidInputError{ID: id, Field: field, Reason: reason}
}

// IsInvalidInput reports whether err is an InvalidInputError.
func IsInvalidInput(err error) bool {
	var iie *InvalidInputError
	return errors.As(err, &iie)
}
