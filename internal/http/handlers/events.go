package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/finleyross14/PeakOrderApp/internal/domain"
	"github.com/finleyross14/PeakOrderApp/pkg/money"
)

type createEventRequest struct {
	Name                string    `json:"name"`
	Description         string    `json:"description"`
	Start               time.Time `json:"start"`
	End                 time.Time `json:"end"`
	RegistrationOpensAt time.Time `json:"registration_opens_at"`
	EntryFeeCents       int64     `json:"entry_fee_cents"`
	ProFeeCents         int64     `json:"pro_fee_cents"`
	CharityIDs          []string  `json:"charity_ids"`
}

type eventDTO struct {
	ID                  string    `json:"id"`
	Name                string    `json:"name"`
	Description         string    `json:"description,omitempty"`
	Start               time.Time `json:"start"`
	End                 time.Time `json:"end"`
	RegistrationOpensAt time.Time `json:"registration_opens_at"`
	RegistrationOpen    bool      `json:"registration_open"`
	EntryFeeCents       int64     `json:"entry_fee_cents"`
	EntryFee            string    `json:"entry_fee"`
	ProFeeCents         int64     `json:"pro_fee_cents"`
	ProFee              string    `json:"pro_fee"`
	IsActive            bool      `json:"is_active"`
	CharityIDs          []string  `json:"charity_ids,omitempty"`
	FinalPeakOrders     *int64    `json:"final_peak_orders,omitempty"`
	CreatedAt           time.Time `json:"created_at"`
}

func (a *App) EventsActive(w http.ResponseWriter, r *http.Request) {
	event, err := a.Store.ActiveEvent(r.Context())
	if err != nil {
		a.domainError(w, err)
		return
	}
	a.json(w, http.StatusOK, a.toEventDTO(event, r))
}

func (a *App) EventsList(w http.ResponseWriter, r *http.Request) {
	events, err := a.Store.ListEvents(r.Context())
	if err != nil {
		a.domainError(w, err)
		return
	}
	items := make([]eventDTO, 0, len(events))
	for i := range events {
		items = append(items, a.toEventDTO(&events[i], r))
	}
	a.json(w, http.StatusOK, map[string]any{"items": items})
}

func (a *App) EventsCreate(w http.ResponseWriter, r *http.Request) {
	var req createEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	event := &domain.Event{
		Name:                req.Name,
		Description:         req.Description,
		Start:               req.Start,
		End:                 req.End,
		RegistrationOpensAt: req.RegistrationOpensAt,
		EntryFeeCents:       money.Cents(req.EntryFeeCents),
		ProFeeCents:         money.Cents(req.ProFeeCents),
		CharityIDs:          req.CharityIDs,
		CreatedBy:           a.currentUserID(r),
	}
	if err := a.Store.CreateEvent(r.Context(), event); err != nil {
		a.domainError(w, err)
		return
	}
	a.json(w, http.StatusCreated, a.toEventDTO(event, r))
}

// EventEligibility reports both gate decisions plus donation progress. The
// progress totals include pending donations so the UI can show a full bar,
// but the decisions themselves count confirmed donations only.
func (a *App) EventEligibility(w http.ResponseWriter, r *http.Request) {
	userID := a.currentUserID(r)
	if userID == "" {
		a.error(w, http.StatusUnauthorized, "unauthorized", "missing user context")
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

	now := a.now()
	locale := a.locale(r)
	confirmed, pending := domain.DonationProgress(userID, event.ID, donations)
	a.json(w, http.StatusOK, map[string]any{
		"event_id":              event.ID,
		"registration_open":     event.IsRegistrationOpen(now),
		"registration_opens_at": event.RegistrationOpensAt,
		"can_guess":             toDecisionDTO(domain.CanGuess(userID, *event, donations, now, locale)),
		"can_access_pro":        toDecisionDTO(domain.CanAccessPro(userID, *event, donations, now, locale)),
		"donation_progress": map[string]any{
			"confirmed_cents": confirmed,
			"pending_cents":   pending,
			"confirmed":       money.Format(confirmed, locale),
			"pending":         money.Format(pending, locale),
		},
	})
}

func toDecisionDTO(d domain.Decision) map[string]any {
	dto := map[string]any{"allowed": d.Allowed}
	if !d.Allowed {
		dto["reason"] = d.Reason
		if d.ShortfallCents > 0 {
			dto["shortfall_cents"] = d.ShortfallCents
		}
	}
	return dto
}

func (a *App) toEventDTO(e *domain.Event, r *http.Request) eventDTO {
	locale := a.locale(r)
	return eventDTO{
		ID:                  e.ID,
		Name:                e.Name,
		Description:         e.Description,
		Start:               e.Start,
		End:                 e.End,
		RegistrationOpensAt: e.RegistrationOpensAt,
		RegistrationOpen:    e.IsRegistrationOpen(a.now()),
		EntryFeeCents:       int64(e.EntryFeeCents),
		EntryFee:            money.Format(e.EntryFeeCents, locale),
		ProFeeCents:         int64(e.ProFeeCents),
		ProFee:              money.Format(e.ProFeeCents, locale),
		IsActive:            e.IsActive,
		CharityIDs:          e.CharityIDs,
		FinalPeakOrders:     e.FinalPeakOrders,
		CreatedAt:           e.CreatedAt,
	}
}
