package domain

import (
	"time"

	"github.com/finleyross14/PeakOrderApp/pkg/money"
)

// PaymentMethod enumerates the supported ways to send a donation.
type PaymentMethod string

const (
	PaymentMethodZelle PaymentMethod = "zelle"
	PaymentMethodVenmo PaymentMethod = "venmo"
)

// Valid reports whether the method is one of the supported values.
func (m PaymentMethod) Valid() bool {
	return m == PaymentMethodZelle || m == PaymentMethodVenmo
}

// Donation is a claimed contribution toward an event. It is created unpaid;
// only an out-of-band confirmation flips IsPaid, and only confirmed
// donations count toward eligibility. Immutable apart from the IsPaid flag.
type Donation struct {
	ID            string
	UserID        string
	EventID       string
	AmountCents   money.Cents
	PaymentMethod PaymentMethod
	PaymentNote   string
	IsPaid        bool
	UserName      string
	CreatedAt     time.Time
}

// Validate checks the caller-controlled fields at creation time.
func (d Donation) Validate() error {
	if d.AmountCents <= 0 {
		return NewValidationError("amount_cents", "amount must be positive")
	}
	if !d.PaymentMethod.Valid() {
		return NewValidationError("payment_method", "payment method must be zelle or venmo")
	}
	return nil
}
