package ratingsdomain

import "errors"

// Rejection reasons. The messages double as the machine-readable reason
// returned to API clients.
var (
	ErrMissingGuild    = errors.New("guildId required")
	ErrInvalidCategory = errors.New("invalid category")
	ErrInvalidScore    = errors.New("score required 1..5")
)

// ValidationError is returned when a candidate rating is rejected.
type ValidationError struct {
	Field string
	Cause error
}

func (e *ValidationError) Error() string {
	return e.Cause.Error()
}

func (e *ValidationError) Unwrap() error {
	return e.Cause
}

// Reason is the client-facing rejection reason.
func (e *ValidationError) Reason() string {
	return e.Cause.Error()
}

func reject(field string, cause error) *ValidationError {
	return &ValidationError{Field: field, Cause: cause}
}
