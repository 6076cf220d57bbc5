package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/finleyross14/PeakOrderApp/internal/domain"
	"github.com/finleyross14/PeakOrderApp/pkg/money"
)

// Leaderboard returns the donation standings for an event, plus the
// closest-guess ranking once the final peak-order number is published. The
// registration timestamps are echoed so clients can drive a countdown off
// server time.
func (a *App) Leaderboard(w http.ResponseWriter, r *http.Request) {
	event, err := a.Store.GetEvent(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		a.domainError(w, err)
		return
	}
	guesses, err := a.Store.ListEventGuesses(r.Context(), event.ID)
	if err != nil {
		a.domainError(w, err)
		return
	}

	locale := a.locale(r)
	rows := domain.DonationLeaderboard(guesses, a.GroupBy)
	standings := make([]map[string]any, 0, len(rows))
	for _, row := range rows {
		standings = append(standings, map[string]any{
			"rank":        row.Rank,
			"key":         row.Key,
			"total_cents": row.TotalCents,
			"total":       money.Format(row.TotalCents, locale),
		})
	}

	now := a.now()
	resp := map[string]any{
		"event_id":              event.ID,
		"group_by":              string(a.GroupBy),
		"standings":             standings,
		"finalized":             event.Finalized(),
		"registration_open":     event.IsRegistrationOpen(now),
		"registration_opens_at": event.RegistrationOpensAt,
		"start":                 event.Start,
		"end":                   event.End,
		"server_time":           now,
	}

	if event.Finalized() {
		ranked := domain.ClosestGuessRanking(guesses, *event.FinalPeakOrders)
		results := make([]map[string]any, 0, len(ranked))
		for _, rg := range ranked {
			results = append(results, map[string]any{
				"rank":                 rg.Rank,
				"diff":                 rg.Diff,
				"value":                rg.Guess.Value,
				"user_name":            rg.Guess.UserName,
				"team":                 rg.Guess.Team,
				"total_donation_cents": rg.Guess.TotalDonationCents,
			})
		}
		resp["final_peak_orders"] = *event.FinalPeakOrders
		resp["closest_guesses"] = results
		if winner, ok := domain.ClosestGuessWinner(guesses, *event.FinalPeakOrders); ok {
			resp["winner"] = map[string]any{
				"user_name": winner.Guess.UserName,
				"value":     winner.Guess.Value,
				"diff":      winner.Diff,
			}
		}
	}

	a.json(w, http.StatusOK, resp)
}
