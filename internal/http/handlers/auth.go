package handlers

import (
	"crypto/subtle"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/finleyross14/PeakOrderApp/internal/domain"
	"github.com/finleyross14/PeakOrderApp/internal/middleware"
)

type loginRequest struct {
	Name     string `json:"name"`
	Team     string `json:"team"`
	AdminKey string `json:"admin_key"`
}

type loginResponse struct {
	Token string  `json:"token"`
	User  userDTO `json:"user"`
}

type userDTO struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Team      string    `json:"team,omitempty"`
	Role      string    `json:"role"`
	Locale    string    `json:"locale"`
	CreatedAt time.Time `json:"created_at"`
}

// AuthLogin creates a session from a display name. There is no password:
// participants are trusted guests identified by name for the duration of the
// fundraiser. Supplying the configured admin key upgrades the session role.
func (a *App) AuthLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		a.error(w, http.StatusBadRequest, "bad_request", "name required")
		return
	}

	role := domain.UserRoleUser
	if req.AdminKey != "" {
		if a.AdminKey == "" || subtle.ConstantTimeCompare([]byte(req.AdminKey), []byte(a.AdminKey)) != 1 {
			a.error(w, http.StatusUnauthorized, "unauthorized", "invalid admin key")
			return
		}
		role = domain.UserRoleAdmin
	}

	user := &domain.User{
		Name:   req.Name,
		Team:   strings.TrimSpace(req.Team),
		Role:   role,
		Locale: a.locale(r),
	}
	if err := a.Store.CreateUser(r.Context(), user); err != nil {
		a.domainError(w, err)
		return
	}

	token, err := middleware.SignJWT(a.SessionSecret, middleware.TokenClaims{
		Sub:      user.ID,
		Name:     user.Name,
		Team:     user.Team,
		Role:     string(user.Role),
		Exp:      a.now().Add(24 * time.Hour).Unix(),
		Issuer:   "peakorderapp",
		Audience: "peakorder-clients",
	})
	if err != nil {
		a.Logger.Error().Err(err).Msg("sign jwt failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to sign token")
		return
	}

	a.json(w, http.StatusOK, loginResponse{Token: token, User: toUserDTO(user)})
}

func (a *App) Me(w http.ResponseWriter, r *http.Request) {
	userID := a.currentUserID(r)
	if userID == "" {
		a.error(w, http.StatusUnauthorized, "unauthorized", "missing user context")
		return
	}
	user, err := a.Store.GetUser(r.Context(), userID)
	if err != nil {
		a.domainError(w, err)
		return
	}
	a.json(w, http.StatusOK, toUserDTO(user))
}

func toUserDTO(u *domain.User) userDTO {
	return userDTO{
		ID:        u.ID,
		Name:      u.Name,
		Team:      u.Team,
		Role:      string(u.Role),
		Locale:    u.Locale,
		CreatedAt: u.CreatedAt,
	}
}
