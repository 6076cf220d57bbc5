package handlers

import (
	"net/http"

	"github.com/finleyross14/PeakOrderApp/pkg/money"
)

// StatsSummary aggregates fundraiser totals across all events: entry counts
// and how much money is confirmed versus still pending.
func (a *App) StatsSummary(w http.ResponseWriter, r *http.Request) {
	events, err := a.Store.ListEvents(r.Context())
	if err != nil {
		a.domainError(w, err)
		return
	}

	var totalGuesses, paidGuesses, totalDonations int
	var confirmedCents, pendingCents money.Cents
	for _, event := range events {
		guesses, err := a.Store.ListEventGuesses(r.Context(), event.ID)
		if err != nil {
			a.domainError(w, err)
			return
		}
		totalGuesses += len(guesses)
		for _, g := range guesses {
			if g.IsPaid {
				paidGuesses++
			}
		}

		donations, err := a.Store.ListEventDonations(r.Context(), event.ID)
		if err != nil {
			a.domainError(w, err)
			return
		}
		totalDonations += len(donations)
		for _, d := range donations {
			if d.IsPaid {
				confirmedCents += d.AmountCents
			} else {
				pendingCents += d.AmountCents
			}
		}
	}

	a.json(w, http.StatusOK, map[string]any{
		"total_events":    len(events),
		"total_guesses":   totalGuesses,
		"paid_guesses":    paidGuesses,
		"total_donations": totalDonations,
		"confirmed_cents": confirmedCents,
		"pending_cents":   pendingCents,
	})
}
