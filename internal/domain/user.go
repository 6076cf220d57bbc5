package domain

import "time"

// UserRole enumerates supported roles.
type UserRole string

const (
	UserRoleUser  UserRole = "user"
	UserRoleAdmin UserRole = "admin"
)

// User is a session-scoped participant identity. Accounts are created from
// just a display name at login and are not expected to outlive the session.
type User struct {
	ID        string
	Name      string
	Team      string
	Role      UserRole
	Locale    string
	CreatedAt time.Time
}

// IsAdmin reports whether the user may perform backend-only actions.
func (u User) IsAdmin() bool {
	return u.Role == UserRoleAdmin
}
