package domain

import (
	"errors"
	"fmt"

	"github.com/finleyross14/PeakOrderApp/pkg/money"
)

var (
	ErrNotFound          = errors.New("not found")
	ErrDuplicateGuess    = errors.New("a guess already exists for this user and event")
	ErrEventFinalized    = errors.New("final peak orders already set")
	ErrActiveEventExists = errors.New("another event is already active")
	ErrNoActiveEvent     = errors.New("no active event")
)

// ValidationError reports malformed input on a named field. Always
// recoverable by the caller; the operation leaves no partial state behind.
type ValidationError struct {
	Field   string
	Message string
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NotEligibleError explains a denied eligibility check. ShortfallCents is
// the additional confirmed donation needed, zero when the denial is not
// about money (e.g. registration has not opened).
type NotEligibleError struct {
	Reason         string
	ShortfallCents money.Cents
}

func (e *NotEligibleError) Error() string {
	return e.Reason
}
