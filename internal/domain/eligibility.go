package domain

import (
	"fmt"
	"time"

	"github.com/finleyross14/PeakOrderApp/pkg/money"
)

// Decision is the outcome of an eligibility check.
type Decision struct {
	Allowed        bool
	Reason         string
	ShortfallCents money.Cents
}

// Err converts a denied decision into a NotEligibleError; nil when allowed.
func (d Decision) Err() error {
	if d.Allowed {
		return nil
	}
	return &NotEligibleError{Reason: d.Reason, ShortfallCents: d.ShortfallCents}
}

// ConfirmedDonationTotal sums the confirmed (IsPaid) donations a user has
// made toward an event. Unconfirmed donations never count: eligibility must
// not be reachable through unverified payment claims.
func ConfirmedDonationTotal(userID, eventID string, donations []Donation) money.Cents {
	var total money.Cents
	for _, d := range donations {
		if d.UserID == userID && d.EventID == eventID && d.IsPaid {
			total += d.AmountCents
		}
	}
	return total
}

// DonationProgress returns both the confirmed and the still-pending donation
// totals for a user and event. Progress displays may show the pending share;
// gating decisions use the confirmed total only.
func DonationProgress(userID, eventID string, donations []Donation) (confirmed, pending money.Cents) {
	for _, d := range donations {
		if d.UserID != userID || d.EventID != eventID {
			continue
		}
		if d.IsPaid {
			confirmed += d.AmountCents
		} else {
			pending += d.AmountCents
		}
	}
	return confirmed, pending
}

// CanGuess decides whether a user may submit a guess for the event: the
// registration window must have opened and the user's confirmed donations
// must cover the entry fee. Locale only affects the wording of the reason.
func CanGuess(userID string, event Event, donations []Donation, now time.Time, locale string) Decision {
	if !event.IsRegistrationOpen(now) {
		return Decision{Reason: "Registration has not yet opened for this event"}
	}
	confirmed := ConfirmedDonationTotal(userID, event.ID, donations)
	if confirmed < event.EntryFeeCents {
		return Decision{
			Reason: fmt.Sprintf("You must donate at least %s to participate",
				money.Format(event.EntryFeeCents, locale)),
			ShortfallCents: event.EntryFeeCents - confirmed,
		}
	}
	return Decision{Allowed: true}
}

// CanAccessPro decides whether a user may unlock historical insights. It
// first re-applies CanGuess and propagates that denial unchanged; otherwise
// the confirmed total must also cover the entry fee plus the pro fee.
func CanAccessPro(userID string, event Event, donations []Donation, now time.Time, locale string) Decision {
	if d := CanGuess(userID, event, donations, now, locale); !d.Allowed {
		return d
	}
	required := event.EntryFeeCents + event.ProFeeCents
	confirmed := ConfirmedDonationTotal(userID, event.ID, donations)
	if confirmed < required {
		return Decision{
			Reason: fmt.Sprintf("Pro access requires a total donation of %s",
				money.Format(required, locale)),
			ShortfallCents: required - confirmed,
		}
	}
	return Decision{Allowed: true}
}
