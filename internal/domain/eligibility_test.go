package domain

import (
	"strings"
	"testing"
	"time"

	"github.com/finleyross14/PeakOrderApp/pkg/money"
)

var (
	testNow  = time.Date(2025, 11, 20, 12, 0, 0, 0, time.UTC)
	testOpen = testNow.Add(-time.Hour)
)

func testEvent() Event {
	return Event{
		ID:                  "e1",
		Name:                "Peak Orders",
		Start:               testNow.Add(-30 * time.Minute),
		End:                 testNow.Add(7 * 24 * time.Hour),
		RegistrationOpensAt: testOpen,
		EntryFeeCents:       1000,
		ProFeeCents:         3000,
		IsActive:            true,
	}
}

func paidDonation(userID string, amount money.Cents) Donation {
	return Donation{
		ID: "d-" + userID, UserID: userID, EventID: "e1",
		AmountCents: amount, PaymentMethod: PaymentMethodZelle,
		IsPaid: true, CreatedAt: testNow,
	}
}

func TestCanGuessDeniedWithoutDonations(t *testing.T) {
	d := CanGuess("u1", testEvent(), nil, testNow, "en")
	if d.Allowed {
		t.Fatal("expected denial with no donations")
	}
	if d.ShortfallCents != 1000 {
		t.Fatalf("shortfall = %d, want 1000", d.ShortfallCents)
	}
	if !strings.Contains(d.Reason, "$10.00") {
		t.Fatalf("reason %q should quote the entry fee", d.Reason)
	}
}

func TestCanGuessIgnoresUnpaidDonations(t *testing.T) {
	pending := paidDonation("u1", 5000)
	pending.IsPaid = false
	d := CanGuess("u1", testEvent(), []Donation{pending}, testNow, "en")
	if d.Allowed {
		t.Fatal("unconfirmed donations must not unlock guessing")
	}
	if d.ShortfallCents != 1000 {
		t.Fatalf("shortfall = %d, want full entry fee 1000", d.ShortfallCents)
	}
}

func TestCanGuessAllowedOnceConfirmed(t *testing.T) {
	d := CanGuess("u1", testEvent(), []Donation{paidDonation("u1", 1000)}, testNow, "en")
	if !d.Allowed {
		t.Fatalf("expected allowed, got denial: %s", d.Reason)
	}
	if d.ShortfallCents != 0 {
		t.Fatalf("shortfall = %d, want 0", d.ShortfallCents)
	}
}

func TestCanGuessIgnoresOtherUsersAndEvents(t *testing.T) {
	donations := []Donation{
		paidDonation("u2", 1000),
		{ID: "dx", UserID: "u1", EventID: "e2", AmountCents: 1000, PaymentMethod: PaymentMethodVenmo, IsPaid: true},
	}
	if d := CanGuess("u1", testEvent(), donations, testNow, "en"); d.Allowed {
		t.Fatal("donations by other users or for other events must not count")
	}
}

func TestCanGuessDeniedBeforeRegistrationOpens(t *testing.T) {
	ev := testEvent()
	ev.RegistrationOpensAt = testNow.Add(time.Hour)
	d := CanGuess("u1", ev, []Donation{paidDonation("u1", 5000)}, testNow, "en")
	if d.Allowed {
		t.Fatal("expected denial before registration opens")
	}
	if d.ShortfallCents != 0 {
		t.Fatalf("registration denial must not carry a shortfall, got %d", d.ShortfallCents)
	}
}

func TestRegistrationBoundaryInclusive(t *testing.T) {
	ev := testEvent()
	if ev.IsRegistrationOpen(testOpen.Add(-time.Nanosecond)) {
		t.Fatal("registration must be closed strictly before it opens")
	}
	if !ev.IsRegistrationOpen(testOpen) {
		t.Fatal("registration must be open exactly at the opening instant")
	}
	if !ev.IsRegistrationOpen(testOpen.Add(time.Minute)) {
		t.Fatal("registration must stay open after the opening instant")
	}
}

func TestCanGuessMonotonicInConfirmedTotal(t *testing.T) {
	ev := testEvent()
	var donations []Donation
	allowed := false
	for i := 0; i < 10; i++ {
		donations = append(donations, paidDonation("u1", 250))
		donations[len(donations)-1].ID = donations[len(donations)-1].ID + string(rune('a'+i))
		d := CanGuess("u1", ev, donations, testNow, "en")
		if allowed && !d.Allowed {
			t.Fatalf("allowed flipped back to denied at total %d",
				ConfirmedDonationTotal("u1", ev.ID, donations))
		}
		allowed = allowed || d.Allowed
	}
	if !allowed {
		t.Fatal("expected eligibility to be reached eventually")
	}
}

func TestCanAccessProShortfall(t *testing.T) {
	d := CanAccessPro("u1", testEvent(), []Donation{paidDonation("u1", 1000)}, testNow, "en")
	if d.Allowed {
		t.Fatal("entry fee alone must not unlock pro access")
	}
	if d.ShortfallCents != 3000 {
		t.Fatalf("shortfall = %d, want 3000", d.ShortfallCents)
	}
	if !strings.Contains(d.Reason, "$40.00") {
		t.Fatalf("reason %q should quote the combined requirement", d.Reason)
	}
}

func TestCanAccessProPropagatesGuessDenial(t *testing.T) {
	ev := testEvent()
	ev.RegistrationOpensAt = testNow.Add(time.Hour)
	d := CanAccessPro("u1", ev, []Donation{paidDonation("u1", 10000)}, testNow, "en")
	if d.Allowed {
		t.Fatal("expected denial before registration opens")
	}
	if !strings.Contains(d.Reason, "Registration") {
		t.Fatalf("expected the guess denial to propagate, got %q", d.Reason)
	}
}

func TestCanAccessProAllowed(t *testing.T) {
	d := CanAccessPro("u1", testEvent(), []Donation{paidDonation("u1", 4000)}, testNow, "en")
	if !d.Allowed {
		t.Fatalf("expected allowed, got denial: %s", d.Reason)
	}
}

func TestDonationProgressSplitsConfirmedAndPending(t *testing.T) {
	pending := paidDonation("u1", 500)
	pending.ID = "d-pending"
	pending.IsPaid = false
	confirmed, pendingTotal := DonationProgress("u1", "e1", []Donation{paidDonation("u1", 1000), pending})
	if confirmed != 1000 {
		t.Fatalf("confirmed = %d, want 1000", confirmed)
	}
	if pendingTotal != 500 {
		t.Fatalf("pending = %d, want 500", pendingTotal)
	}
}

func TestDecisionErr(t *testing.T) {
	if err := (Decision{Allowed: true}).Err(); err != nil {
		t.Fatalf("allowed decision produced error: %v", err)
	}
	err := (Decision{Reason: "nope", ShortfallCents: 42}).Err()
	ne, ok := err.(*NotEligibleError)
	if !ok {
		t.Fatalf("expected *NotEligibleError, got %T", err)
	}
	if ne.Reason != "nope" || ne.ShortfallCents != 42 {
		t.Fatalf("unexpected error contents: %+v", ne)
	}
}
