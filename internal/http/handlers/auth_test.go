package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/finleyross14/PeakOrderApp/internal/middleware"
)

func TestAuthLoginCreatesSession(t *testing.T) {
	app, store := newTestApp()

	req := httptest.NewRequest("POST", "/v1/auth/login",
		strings.NewReader(`{"name":"Dana","team":"Platform"}`))
	rr := httptest.NewRecorder()
	app.AuthLogin(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("unexpected status: got %d, want 200: %s", rr.Code, rr.Body.String())
	}
	payload := decodeBody(t, rr)
	token, _ := payload["token"].(string)
	if token == "" {
		t.Fatalf("expected a session token")
	}
	claims, err := middleware.VerifyJWT(app.SessionSecret, token)
	if err != nil {
		t.Fatalf("VerifyJWT() error: %v", err)
	}
	if claims.Name != "Dana" || claims.Role != "user" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
	if _, err := store.GetUser(req.Context(), claims.Sub); err != nil {
		t.Fatalf("expected user persisted: %v", err)
	}
}

func TestAuthLoginAdminKey(t *testing.T) {
	app, _ := newTestApp()

	rr := httptest.NewRecorder()
	app.AuthLogin(rr, httptest.NewRequest("POST", "/v1/auth/login",
		strings.NewReader(`{"name":"Lead","admin_key":"letmein"}`)))
	if rr.Code != http.StatusOK {
		t.Fatalf("unexpected status: got %d, want 200", rr.Code)
	}
	payload := decodeBody(t, rr)
	user, _ := payload["user"].(map[string]any)
	if user["role"] != "admin" {
		t.Fatalf("expected admin role, got %v", user["role"])
	}

	rr = httptest.NewRecorder()
	app.AuthLogin(rr, httptest.NewRequest("POST", "/v1/auth/login",
		strings.NewReader(`{"name":"Mallory","admin_key":"wrong"}`)))
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for wrong admin key, got %d", rr.Code)
	}
}

func TestAuthLoginRequiresName(t *testing.T) {
	app, _ := newTestApp()

	rr := httptest.NewRecorder()
	app.AuthLogin(rr, httptest.NewRequest("POST", "/v1/auth/login", strings.NewReader(`{"name":"  "}`)))
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for blank name, got %d", rr.Code)
	}
}

func TestMeWithoutSession(t *testing.T) {
	app, _ := newTestApp()

	rr := httptest.NewRecorder()
	app.Me(rr, httptest.NewRequest("GET", "/v1/me", nil))
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without session, got %d", rr.Code)
	}
}
