package models

import (
	"errors"
	"fmt"
)

var (
	// ErrEventNotFound is returned when a short ID resolves to no event.
	ErrEventNotFound = errors.New("event not found")

	// ErrShortIDExhausted is returned when short ID generation kept
	// colliding with existing events and the retry budget ran out.
	ErrShortIDExhausted = errors.New("could not allocate a unique short ID")
)

// ValidationError reports a rejected field before any store call is made.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}
