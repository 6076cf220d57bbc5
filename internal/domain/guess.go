package domain

import (
	"time"

	"github.com/finleyross14/PeakOrderApp/pkg/money"
)

// Guess is a user's prediction for an event's peak order count. At most one
// guess exists per (UserID, EventID); a second submission is rejected, never
// overwritten. TotalDonationCents starts at the event's entry fee and grows
// with follow-up donations tied to this entry.
type Guess struct {
	ID                 string
	EventID            string
	UserID             string
	Value              int64
	TotalDonationCents money.Cents
	PaymentMethod      PaymentMethod
	PaymentNote        string
	IsPaid             bool
	CharityID          string
	UserName           string
	Team               string
	CreatedAt          time.Time
}

// Validate checks the caller-controlled fields at creation time.
func (g Guess) Validate() error {
	if g.Value <= 0 {
		return NewValidationError("value", "guess must be a positive number")
	}
	if !g.PaymentMethod.Valid() {
		return NewValidationError("payment_method", "payment method must be zelle or venmo")
	}
	return nil
}
