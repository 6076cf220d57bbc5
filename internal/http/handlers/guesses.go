package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/finleyross14/PeakOrderApp/internal/domain"
	"github.com/finleyross14/PeakOrderApp/pkg/money"
)

type createGuessRequest struct {
	Value         int64  `json:"value"`
	PaymentMethod string `json:"payment_method"`
	PaymentNote   string `json:"payment_note"`
	CharityID     string `json:"charity_id"`
}

type guessDTO struct {
	ID                 string    `json:"id"`
	EventID            string    `json:"event_id"`
	UserID             string    `json:"user_id"`
	Value              int64     `json:"value"`
	TotalDonationCents int64     `json:"total_donation_cents"`
	PaymentMethod      string    `json:"payment_method"`
	IsPaid             bool      `json:"is_paid"`
	CharityID          string    `json:"charity_id,omitempty"`
	UserName           string    `json:"user_name,omitempty"`
	Team               string    `json:"team,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
}

// GuessesCreate submits the caller's prediction for an event. The
// eligibility gate runs first: registration must be open and the caller's
// confirmed donations must cover the entry fee. A second submission for the
// same event is rejected and the original guess stands.
func (a *App) GuessesCreate(w http.ResponseWriter, r *http.Request) {
	userID := a.currentUserID(r)
	if userID == "" {
		a.error(w, http.StatusUnauthorized, "unauthorized", "missing user context")
		return
	}
	var req createGuessRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	event, err := a.Store.GetEvent(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		a.domainError(w, err)
		return
	}
	donations, err := a.Store.ListUserEventDonations(r.Context(), userID, event.ID)
	if err != nil {
		a.domainError(w, err)
		return
	}
	if err := domain.CanGuess(userID, *event, donations, a.now(), a.locale(r)).Err(); err != nil {
		a.domainError(w, err)
		return
	}
	user, err := a.Store.GetUser(r.Context(), userID)
	if err != nil {
		a.domainError(w, err)
		return
	}

	guess := &domain.Guess{
		EventID:       event.ID,
		UserID:        userID,
		Value:         req.Value,
		PaymentMethod: domain.PaymentMethod(req.PaymentMethod),
		PaymentNote:   req.PaymentNote,
		CharityID:     req.CharityID,
		UserName:      user.Name,
		Team:          user.Team,
	}
	if err := a.Store.CreateGuess(r.Context(), guess); err != nil {
		a.domainError(w, err)
		return
	}
	a.json(w, http.StatusCreated, toGuessDTO(guess))
}

func (a *App) GuessesList(w http.ResponseWriter, r *http.Request) {
	guesses, err := a.Store.ListEventGuesses(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		a.domainError(w, err)
		return
	}
	items := make([]guessDTO, 0, len(guesses))
	for i := range guesses {
		items = append(items, toGuessDTO(&guesses[i]))
	}
	a.json(w, http.StatusOK, map[string]any{"items": items})
}

type guessDonationRequest struct {
	AmountCents   int64  `json:"amount_cents"`
	PaymentMethod string `json:"payment_method"`
	PaymentNote   string `json:"payment_note"`
}

// GuessDonationsCreate records a follow-up donation tied to an existing
// guess. The donation itself still needs out-of-band confirmation before it
// counts toward eligibility, but the guess's running total grows right away
// so the leaderboard reflects the pledge.
func (a *App) GuessDonationsCreate(w http.ResponseWriter, r *http.Request) {
	userID := a.currentUserID(r)
	if userID == "" {
		a.error(w, http.StatusUnauthorized, "unauthorized", "missing user context")
		return
	}
	var req guessDonationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	guess, err := a.Store.GetGuess(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		a.domainError(w, err)
		return
	}
	if guess.UserID != userID {
		a.error(w, http.StatusForbidden, "forbidden", "guess belongs to another user")
		return
	}

	donation := &domain.Donation{
		UserID:        userID,
		EventID:       guess.EventID,
		AmountCents:   money.Cents(req.AmountCents),
		PaymentMethod: domain.PaymentMethod(req.PaymentMethod),
		PaymentNote:   req.PaymentNote,
		UserName:      guess.UserName,
	}
	if err := a.Store.CreateDonation(r.Context(), donation); err != nil {
		a.domainError(w, err)
		return
	}
	if err := a.Store.AddGuessDonation(r.Context(), guess.ID, donation.AmountCents); err != nil {
		a.domainError(w, err)
		return
	}
	guess.TotalDonationCents += donation.AmountCents
	a.json(w, http.StatusCreated, map[string]any{
		"donation": toDonationDTO(donation),
		"guess":    toGuessDTO(guess),
	})
}

func toGuessDTO(g *domain.Guess) guessDTO {
	return guessDTO{
		ID:                 g.ID,
		EventID:            g.EventID,
		UserID:             g.UserID,
		Value:              g.Value,
		TotalDonationCents: int64(g.TotalDonationCents),
		PaymentMethod:      string(g.PaymentMethod),
		IsPaid:             g.IsPaid,
		CharityID:          g.CharityID,
		UserName:           g.UserName,
		Team:               g.Team,
		CreatedAt:          g.CreatedAt,
	}
}
