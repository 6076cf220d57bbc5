package domain

import "time"

// ProAccess records that a user unlocked historical insights for an event.
// The record's existence is the capability; at most one exists per
// (UserID, EventID).
type ProAccess struct {
	ID        string
	EventID   string
	UserID    string
	GrantedAt time.Time
}
