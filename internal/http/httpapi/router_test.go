package httpapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/finleyross14/PeakOrderApp/internal/http/handlers"
	"github.com/finleyross14/PeakOrderApp/internal/infra"
	"github.com/finleyross14/PeakOrderApp/internal/ledger"
)

func newTestRouter(t *testing.T) (http.Handler, *ledger.Store) {
	t.Helper()
	store := ledger.New(nil)
	app := handlers.NewApp(store, zerolog.Nop())
	app.SessionSecret = "router-secret"
	app.AdminKey = "adminkey"
	cfg := &infra.Config{
		DefaultLocale:   "en",
		RateLimitPerMin: 1000,
		AllowedOrigins:  []string{"http://localhost:3000"},
	}
	return NewRouter(app, cfg, nil), store
}

func do(t *testing.T, router http.Handler, method, path, token, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func decode(t *testing.T, rr *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var payload map[string]any
	if err := json.NewDecoder(rr.Body).Decode(&payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return payload
}

func login(t *testing.T, router http.Handler, name, team, adminKey string) string {
	t.Helper()
	body := fmt.Sprintf(`{"name":%q,"team":%q,"admin_key":%q}`, name, team, adminKey)
	rr := do(t, router, "POST", "/v1/auth/login", "", body)
	if rr.Code != http.StatusOK {
		t.Fatalf("login failed: %d %s", rr.Code, rr.Body.String())
	}
	token, _ := decode(t, rr)["token"].(string)
	if token == "" {
		t.Fatalf("login returned no token")
	}
	return token
}

func TestHealthz(t *testing.T) {
	router, _ := newTestRouter(t)
	rr := do(t, router, "GET", "/v1/healthz", "", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("unexpected status: got %d, want 200", rr.Code)
	}
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	router, _ := newTestRouter(t)
	rr := do(t, router, "GET", "/v1/me", "", "")
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", rr.Code)
	}
}

func TestAdminRoutesRequireAdminRole(t *testing.T) {
	router, _ := newTestRouter(t)
	token := login(t, router, "Regular", "", "")
	rr := do(t, router, "POST", "/v1/admin/events/e1/activate", token, "")
	if rr.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for non-admin, got %d", rr.Code)
	}
}

// TestFundraiserFlow walks the whole contest: create and activate an event,
// donate, confirm, guess, publish the final number, read the winner.
func TestFundraiserFlow(t *testing.T) {
	router, _ := newTestRouter(t)

	admin := login(t, router, "Lead", "", "adminkey")
	player := login(t, router, "Dana", "Platform", "")

	now := time.Now().UTC()
	eventBody := fmt.Sprintf(`{
		"name": "Holiday Peak",
		"start": %q, "end": %q, "registration_opens_at": %q,
		"entry_fee_cents": 1000, "pro_fee_cents": 3000,
		"charity_ids": ["c1"]
	}`, now.Format(time.RFC3339), now.Add(48*time.Hour).Format(time.RFC3339),
		now.Add(-time.Hour).Format(time.RFC3339))
	rr := do(t, router, "POST", "/v1/events", admin, eventBody)
	if rr.Code != http.StatusCreated {
		t.Fatalf("create event: %d %s", rr.Code, rr.Body.String())
	}
	eventID, _ := decode(t, rr)["id"].(string)

	rr = do(t, router, "POST", "/v1/admin/events/"+eventID+"/activate", admin, "")
	if rr.Code != http.StatusOK {
		t.Fatalf("activate event: %d %s", rr.Code, rr.Body.String())
	}
	rr = do(t, router, "GET", "/v1/events/active", "", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("active event: %d", rr.Code)
	}

	// Guessing before any confirmed donation is refused.
	rr = do(t, router, "POST", "/v1/events/"+eventID+"/guesses", player,
		`{"value":60000,"payment_method":"zelle"}`)
	if rr.Code != http.StatusForbidden {
		t.Fatalf("expected 403 before donation, got %d", rr.Code)
	}

	rr = do(t, router, "POST", "/v1/events/"+eventID+"/donations", player,
		`{"amount_cents":1000,"payment_method":"zelle","payment_note":"sent"}`)
	if rr.Code != http.StatusCreated {
		t.Fatalf("create donation: %d %s", rr.Code, rr.Body.String())
	}
	donationID, _ := decode(t, rr)["id"].(string)

	// Still pending, still refused.
	rr = do(t, router, "POST", "/v1/events/"+eventID+"/guesses", player,
		`{"value":60000,"payment_method":"zelle"}`)
	if rr.Code != http.StatusForbidden {
		t.Fatalf("expected 403 while donation pending, got %d", rr.Code)
	}

	rr = do(t, router, "POST", "/v1/admin/donations/"+donationID+"/paid", admin, "")
	if rr.Code != http.StatusOK {
		t.Fatalf("confirm donation: %d %s", rr.Code, rr.Body.String())
	}

	rr = do(t, router, "POST", "/v1/events/"+eventID+"/guesses", player,
		`{"value":60000,"payment_method":"zelle"}`)
	if rr.Code != http.StatusCreated {
		t.Fatalf("create guess: %d %s", rr.Code, rr.Body.String())
	}
	guessID, _ := decode(t, rr)["id"].(string)

	rr = do(t, router, "POST", "/v1/admin/guesses/"+guessID+"/paid", admin, "")
	if rr.Code != http.StatusOK {
		t.Fatalf("confirm guess: %d %s", rr.Code, rr.Body.String())
	}

	rr = do(t, router, "POST", "/v1/admin/events/"+eventID+"/final", admin,
		`{"final_peak_orders":62000}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("set final: %d %s", rr.Code, rr.Body.String())
	}

	rr = do(t, router, "GET", "/v1/events/"+eventID+"/leaderboard", "", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("leaderboard: %d", rr.Code)
	}
	payload := decode(t, rr)
	if payload["finalized"] != true {
		t.Fatalf("expected finalized leaderboard, got %v", payload["finalized"])
	}
	winner, _ := payload["winner"].(map[string]any)
	if winner["user_name"] != "Dana" {
		t.Fatalf("expected Dana as winner, got %v", winner["user_name"])
	}
	standings, _ := payload["standings"].([]any)
	if len(standings) != 1 {
		t.Fatalf("expected one standings row, got %d", len(standings))
	}
	row, _ := standings[0].(map[string]any)
	if row["key"] != "Platform" {
		t.Fatalf("expected team grouping, got %v", row["key"])
	}
	if row["total_cents"] != float64(1000) {
		t.Fatalf("expected total 1000, got %v", row["total_cents"])
	}
}
