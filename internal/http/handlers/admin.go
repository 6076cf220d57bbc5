package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
)

type paidRequest struct {
	Paid *bool `json:"paid"`
}

// paidFlag reads the optional {"paid": bool} body; an empty body means
// confirm. The flips are the operator's confirmation that money arrived.
func paidFlag(r *http.Request) (bool, error) {
	var req paidRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if errors.Is(err, io.EOF) {
			return true, nil
		}
		return false, err
	}
	if req.Paid == nil {
		return true, nil
	}
	return *req.Paid, nil
}

func (a *App) AdminDonationPaid(w http.ResponseWriter, r *http.Request) {
	paid, err := paidFlag(r)
	if err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	id := chi.URLParam(r, "id")
	if err := a.Store.SetDonationPaid(r.Context(), id, paid); err != nil {
		a.domainError(w, err)
		return
	}
	a.json(w, http.StatusOK, map[string]any{"id": id, "is_paid": paid})
}

func (a *App) AdminGuessPaid(w http.ResponseWriter, r *http.Request) {
	paid, err := paidFlag(r)
	if err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	id := chi.URLParam(r, "id")
	if err := a.Store.SetGuessPaid(r.Context(), id, paid); err != nil {
		a.domainError(w, err)
		return
	}
	a.json(w, http.StatusOK, map[string]any{"id": id, "is_paid": paid})
}

func (a *App) AdminEventActivate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := a.Store.ActivateEvent(r.Context(), id); err != nil {
		a.domainError(w, err)
		return
	}
	a.json(w, http.StatusOK, map[string]any{"id": id, "is_active": true})
}

type finalRequest struct {
	FinalPeakOrders int64 `json:"final_peak_orders"`
}

// AdminEventFinal publishes the true peak-order number. One-way: once set,
// the contest is closed and further attempts are rejected.
func (a *App) AdminEventFinal(w http.ResponseWriter, r *http.Request) {
	var req finalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	id := chi.URLParam(r, "id")
	if err := a.Store.SetFinalPeakOrders(r.Context(), id, req.FinalPeakOrders); err != nil {
		a.domainError(w, err)
		return
	}
	a.json(w, http.StatusOK, map[string]any{"id": id, "final_peak_orders": req.FinalPeakOrders})
}
