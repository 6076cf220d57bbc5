package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/finleyross14/PeakOrderApp/internal/domain"
)

// ProGrant unlocks historical insights for the caller. The gate re-checks
// guessing eligibility and then the combined entry+pro fee against confirmed
// donations; granting twice returns the original grant.
func (a *App) ProGrant(w http.ResponseWriter, r *http.Request) {
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
	if err := domain.CanAccessPro(userID, *event, donations, a.now(), a.locale(r)).Err(); err != nil {
		a.domainError(w, err)
		return
	}

	access, err := a.Store.GrantProAccess(r.Context(), &domain.ProAccess{
		EventID: event.ID,
		UserID:  userID,
	})
	if err != nil {
		a.domainError(w, err)
		return
	}
	a.json(w, http.StatusCreated, map[string]any{
		"id":         access.ID,
		"event_id":   access.EventID,
		"user_id":    access.UserID,
		"granted_at": access.GrantedAt,
	})
}

// Insights serves the historical peak-order series to pro-access holders.
func (a *App) Insights(w http.ResponseWriter, r *http.Request) {
	userID := a.currentUserID(r)
	if userID == "" {
		a.error(w, http.StatusUnauthorized, "unauthorized", "missing user context")
		return
	}
	eventID := chi.URLParam(r, "id")
	if _, err := a.Store.GetProAccess(r.Context(), userID, eventID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			a.error(w, http.StatusForbidden, "forbidden", "pro access required")
			return
		}
		a.domainError(w, err)
		return
	}
	history, err := a.Store.ListHistory(r.Context())
	if err != nil {
		a.domainError(w, err)
		return
	}
	items := make([]map[string]any, 0, len(history))
	for _, point := range history {
		items = append(items, map[string]any{
			"year":        point.Year,
			"peak_orders": point.PeakOrders,
		})
	}
	a.json(w, http.StatusOK, map[string]any{"event_id": eventID, "history": items})
}
