package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/finleyross14/PeakOrderApp/internal/domain"
	"github.com/finleyross14/PeakOrderApp/pkg/money"
)

type createDonationRequest struct {
	AmountCents   int64  `json:"amount_cents"`
	PaymentMethod string `json:"payment_method"`
	PaymentNote   string `json:"payment_note"`
}

type donationDTO struct {
	ID            string    `json:"id"`
	UserID        string    `json:"user_id"`
	EventID       string    `json:"event_id"`
	AmountCents   int64     `json:"amount_cents"`
	PaymentMethod string    `json:"payment_method"`
	PaymentNote   string    `json:"payment_note,omitempty"`
	IsPaid        bool      `json:"is_paid"`
	UserName      string    `json:"user_name,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// DonationsCreate records a claimed contribution toward an event. The record
// starts unpaid; it counts toward eligibility only after an admin confirms
// the money actually arrived.
func (a *App) DonationsCreate(w http.ResponseWriter, r *http.Request) {
	userID := a.currentUserID(r)
	if userID == "" {
		a.error(w, http.StatusUnauthorized, "unauthorized", "missing user context")
		return
	}
	var req createDonationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	user, err := a.Store.GetUser(r.Context(), userID)
	if err != nil {
		a.domainError(w, err)
		return
	}

	donation := &domain.Donation{
		UserID:        userID,
		EventID:       chi.URLParam(r, "id"),
		AmountCents:   money.Cents(req.AmountCents),
		PaymentMethod: domain.PaymentMethod(req.PaymentMethod),
		PaymentNote:   req.PaymentNote,
		UserName:      user.Name,
	}
	if err := a.Store.CreateDonation(r.Context(), donation); err != nil {
		a.domainError(w, err)
		return
	}
	a.json(w, http.StatusCreated, toDonationDTO(donation))
}

func (a *App) DonationsList(w http.ResponseWriter, r *http.Request) {
	donations, err := a.Store.ListEventDonations(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		a.domainError(w, err)
		return
	}
	items := make([]donationDTO, 0, len(donations))
	for i := range donations {
		items = append(items, toDonationDTO(&donations[i]))
	}
	a.json(w, http.StatusOK, map[string]any{"items": items})
}

func toDonationDTO(d *domain.Donation) donationDTO {
	return donationDTO{
		ID:            d.ID,
		UserID:        d.UserID,
		EventID:       d.EventID,
		AmountCents:   int64(d.AmountCents),
		PaymentMethod: string(d.PaymentMethod),
		PaymentNote:   d.PaymentNote,
		IsPaid:        d.IsPaid,
		UserName:      d.UserName,
		CreatedAt:     d.CreatedAt,
	}
}
