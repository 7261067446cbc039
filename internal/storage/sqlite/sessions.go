package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mmynk/splitledger/internal/models"
)

// LoadSession returns the device's saved session for a group, or nil.
func (s *SQLiteStore) LoadSession(ctx context.Context, deviceID, groupID string) (*models.Session, error) {
	session := &models.Session{DeviceID: deviceID, GroupID: groupID}
	err := s.db.QueryRowContext(ctx,
		"SELECT current_member_id FROM sessions WHERE device_id = ? AND group_id = ?",
		deviceID, groupID,
	).Scan(&session.CurrentMemberID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	return session, nil
}

// SaveSession upserts the device's current member for a group.
func (s *SQLiteStore) SaveSession(ctx context.Context, session *models.Session) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO sessions (device_id, group_id, current_member_id) VALUES (?, ?, ?)
		 ON CONFLICT (device_id, group_id) DO UPDATE SET current_member_id = excluded.current_member_id`,
		session.DeviceID, session.GroupID, session.CurrentMemberID,
	)
	if err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}
