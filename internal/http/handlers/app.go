package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/finleyross14/PeakOrderApp/internal/domain"
	"github.com/finleyross14/PeakOrderApp/internal/middleware"
)

// App carries the handler dependencies. The store is the domain.Store
// interface, so the same handlers run against the in-memory ledger in demo
// mode and PostgreSQL in production.
type App struct {
	Store         domain.Store
	Logger        zerolog.Logger
	SessionSecret string
	AdminKey      string
	GroupBy       domain.LeaderboardGroupBy
	DefaultLocale string
	Now           func() time.Time
}

func NewApp(store domain.Store, logger zerolog.Logger) *App {
	return &App{
		Store:         store,
		Logger:        logger,
		GroupBy:       domain.GroupByTeam,
		DefaultLocale: "en",
		Now:           time.Now,
	}
}

func (a *App) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (a *App) error(w http.ResponseWriter, code int, codeStr, message string) {
	a.json(w, code, map[string]any{
		"error": map[string]any{"code": codeStr, "message": message},
	})
}

// domainError maps the domain error taxonomy onto HTTP responses. Eligibility
// denials carry the shortfall so clients can render "donate $X more".
func (a *App) domainError(w http.ResponseWriter, err error) {
	var validation *domain.ValidationError
	if errors.As(err, &validation) {
		a.error(w, http.StatusBadRequest, "bad_request", validation.Error())
		return
	}
	var notEligible *domain.NotEligibleError
	if errors.As(err, &notEligible) {
		a.json(w, http.StatusForbidden, map[string]any{
			"error": map[string]any{
				"code":            "not_eligible",
				"message":         notEligible.Reason,
				"shortfall_cents": notEligible.ShortfallCents,
			},
		})
		return
	}
	switch {
	case errors.Is(err, domain.ErrDuplicateGuess):
		a.error(w, http.StatusConflict, "duplicate_guess", err.Error())
	case errors.Is(err, domain.ErrEventFinalized):
		a.error(w, http.StatusConflict, "event_finalized", err.Error())
	case errors.Is(err, domain.ErrActiveEventExists):
		a.error(w, http.StatusConflict, "active_event_exists", err.Error())
	case errors.Is(err, domain.ErrNoActiveEvent):
		a.error(w, http.StatusNotFound, "no_active_event", err.Error())
	case errors.Is(err, domain.ErrNotFound):
		a.error(w, http.StatusNotFound, "not_found", "resource not found")
	default:
		a.Logger.Error().Err(err).Msg("unhandled store error")
		a.error(w, http.StatusInternalServerError, "internal", "internal error")
	}
}

func (a *App) currentUserID(r *http.Request) string {
	return middleware.UserIDFromContext(r.Context())
}

func (a *App) locale(r *http.Request) string {
	locale := middleware.LocaleFromContext(r.Context())
	if locale == "" {
		return a.DefaultLocale
	}
	return locale
}
