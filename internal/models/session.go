package models

import "context"

// Session is the per-device selection of which member "I" am in a group.
type Session struct {
	DeviceID        string
	GroupID         string
	CurrentMemberID string
}

// SessionStore loads and saves sessions. Callers inject it; the engine never does I/O.
type SessionStore interface {
	// LoadSession returns the saved session, or nil when none exists.
	LoadSession(ctx context.Context, deviceID, groupID string) (*Session, error)
	SaveSession(ctx context.Context, session *Session) error
}
