package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/finleyross14/PeakOrderApp/internal/http/handlers"
	"github.com/finleyross14/PeakOrderApp/internal/infra"
	"github.com/finleyross14/PeakOrderApp/internal/middleware"
)

// NewRouter wires the full HTTP surface. Reads are public so the leaderboard
// and countdown work without a session; writes require a token, and the
// confirmation endpoints additionally require the admin role.
func NewRouter(app *handlers.App, cfg *infra.Config, countryLookup middleware.CountryLookup) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.RequestID,
		chimw.RealIP,
		chimw.Recoverer,
		middleware.Logger(app.Logger),
		middleware.RateLimit(cfg.RateLimitPerMin, time.Minute),
		middleware.CORS(cfg.AllowedOrigins),
		middleware.Locale(cfg.DefaultLocale, countryLookup),
	)

	r.Route("/v1", func(r chi.Router) {
		r.Get("/healthz", app.Health)
		r.Post("/auth/login", app.AuthLogin)
		r.Get("/charities", app.CharitiesList)
		r.Get("/stats/summary", app.StatsSummary)

		r.Get("/events", app.EventsList)
		r.Get("/events/active", app.EventsActive)
		r.Get("/events/{id}/guesses", app.GuessesList)
		r.Get("/events/{id}/donations", app.DonationsList)
		r.Get("/events/{id}/leaderboard", app.Leaderboard)

		r.Group(func(r chi.Router) {
			r.Use(middleware.AuthJWT(app.SessionSecret))

			r.Get("/me", app.Me)
			r.Post("/events", app.EventsCreate)
			r.Get("/events/{id}/eligibility", app.EventEligibility)
			r.Post("/events/{id}/guesses", app.GuessesCreate)
			r.Post("/events/{id}/donations", app.DonationsCreate)
			r.Post("/guesses/{id}/donations", app.GuessDonationsCreate)
			r.Post("/events/{id}/pro", app.ProGrant)
			r.Get("/events/{id}/insights", app.Insights)

			r.Route("/admin", func(r chi.Router) {
				r.Use(middleware.RequireAdmin)

				r.Post("/donations/{id}/paid", app.AdminDonationPaid)
				r.Post("/guesses/{id}/paid", app.AdminGuessPaid)
				r.Post("/events/{id}/activate", app.AdminEventActivate)
				r.Post("/events/{id}/final", app.AdminEventFinal)
			})
		})
	})

	return r
}
