package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mmynk/splitledger/internal/models"
	"github.com/mmynk/splitledger/internal/storage"
)

const settlementColumns = "id, group_id, from_member_id, to_member_id, amount, date, created_at, note"

// CreateSettlements persists settlements in one transaction.
func (s *SQLiteStore) CreateSettlements(ctx context.Context, settlements []*models.Settlement) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		for _, settlement := range settlements {
			if err := s.insertSettlement(ctx, tx, settlement); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *SQLiteStore) insertSettlement(ctx context.Context, tx *sql.Tx, settlement *models.Settlement) error {
	// Generate ID if not set
	if settlement.ID == "" {
		settlement.ID = newID()
	}
	settlement.Date = s.stamp(settlement.Date)
	settlement.CreatedAt = s.stamp(settlement.CreatedAt)

	var note any
	if settlement.Note != "" {
		note = settlement.Note
	}

	_, err := tx.ExecContext(ctx,
		`INSERT INTO settlements (`+settlementColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		settlement.ID, settlement.GroupID, settlement.FromMemberID, settlement.ToMemberID,
		settlement.Amount, nullableTime(settlement.Date), settlement.CreatedAt.Unix(), note,
	)
	if err != nil {
		return fmt.Errorf("failed to insert settlement: %w", err)
	}
	return nil
}

func scanSettlement(scanner interface{ Scan(...any) error }) (models.Settlement, error) {
	var settlement models.Settlement
	var date sql.NullInt64
	var createdAt int64
	var note sql.NullString

	err := scanner.Scan(&settlement.ID, &settlement.GroupID, &settlement.FromMemberID, &settlement.ToMemberID,
		&settlement.Amount, &date, &createdAt, &note)
	if err != nil {
		return settlement, err
	}

	settlement.Date = timeFromNull(date)
	settlement.CreatedAt = models.FromUnix(createdAt)
	if note.Valid {
		settlement.Note = note.String
	}
	return settlement, nil
}

// GetSettlement retrieves a settlement by ID.
func (s *SQLiteStore) GetSettlement(ctx context.Context, settlementID string) (*models.Settlement, error) {
	settlement, err := scanSettlement(s.db.QueryRowContext(ctx,
		`SELECT `+settlementColumns+` FROM settlements WHERE id = ?`,
		settlementID,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("settlement %s: %w", settlementID, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get settlement: %w", err)
	}
	return &settlement, nil
}

// ListSettlementsByGroup retrieves all settlements for a group, newest first.
func (s *SQLiteStore) ListSettlementsByGroup(ctx context.Context, groupID string) ([]models.Settlement, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+settlementColumns+` FROM settlements WHERE group_id = ? ORDER BY created_at DESC, id`,
		groupID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list settlements by group: %w", err)
	}
	defer rows.Close()

	var settlements []models.Settlement
	for rows.Next() {
		settlement, err := scanSettlement(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan settlement: %w", err)
		}
		settlements = append(settlements, settlement)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate settlements: %w", err)
	}

	return settlements, nil
}

// DeleteSettlement removes a settlement by ID.
func (s *SQLiteStore) DeleteSettlement(ctx context.Context, groupID, settlementID string) error {
	result, err := s.db.ExecContext(ctx,
		"DELETE FROM settlements WHERE group_id = ? AND id = ?", groupID, settlementID,
	)
	if err != nil {
		return fmt.Errorf("failed to delete settlement: %w", err)
	}
	return requireAffected(result, "settlement", settlementID)
}
