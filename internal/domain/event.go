package domain

import (
	"time"

	"github.com/finleyross14/PeakOrderApp/pkg/money"
)

// Event is a single guessing contest. At most one event is active at a time;
// the final peak-order number stays nil until leadership publishes it.
type Event struct {
	ID                  string
	Name                string
	Description         string
	Start               time.Time
	End                 time.Time
	RegistrationOpensAt time.Time
	EntryFeeCents       money.Cents
	ProFeeCents         money.Cents
	IsActive            bool
	CharityIDs          []string
	FinalPeakOrders     *int64
	CreatedBy           string
	CreatedAt           time.Time
}

// Validate checks the fields a caller controls at creation time.
func (e Event) Validate() error {
	if e.Name == "" {
		return NewValidationError("name", "name is required")
	}
	if !e.Start.Before(e.End) {
		return NewValidationError("start", "start must be before end")
	}
	if !e.RegistrationOpensAt.Before(e.Start) {
		return NewValidationError("registration_opens_at", "registration must open before the event starts")
	}
	if e.EntryFeeCents < 0 {
		return NewValidationError("entry_fee_cents", "entry fee must not be negative")
	}
	if e.ProFeeCents < 0 {
		return NewValidationError("pro_fee_cents", "pro fee must not be negative")
	}
	return nil
}

// IsRegistrationOpen reports whether guesses may be submitted at the given
// instant. The boundary is inclusive: registration is open exactly at
// RegistrationOpensAt. Pure so the UI can poll it from a countdown tick.
func (e Event) IsRegistrationOpen(now time.Time) bool {
	return !now.Before(e.RegistrationOpensAt)
}

// InWindow reports whether now falls inside the event's start/end window.
func (e Event) InWindow(now time.Time) bool {
	return !now.Before(e.Start) && !now.After(e.End)
}

// Finalized reports whether the true peak-order number has been published.
func (e Event) Finalized() bool {
	return e.FinalPeakOrders != nil
}
