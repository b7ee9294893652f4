package models

import "time"

// Session is the authoritative server-side record of a login.
// ExpiresAt is the only field that changes after creation: logout moves it
// into the past. Rows are never deleted and a user may own several live ones.
type Session struct {
	ID        string
	UserID    string
	ExpiresAt time.Time
	CreatedAt time.Time
}

// IsExpiredAt reports whether the session has lapsed at t.
func (s *Session) IsExpiredAt(t time.Time) bool {
	return t.After(s.ExpiresAt)
}
