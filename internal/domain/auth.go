package domain

import "time"

// SessionToken describes an issued bearer token bound to a session.
type SessionToken struct {
	SessionID string
	Token     string
	ExpiresAt time.Time
}
