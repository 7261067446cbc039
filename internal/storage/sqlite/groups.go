package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mmynk/splitledger/internal/models"
	"github.com/mmynk/splitledger/internal/storage"
)

// CreateGroup persists a new group with its members and categories.
func (s *SQLiteStore) CreateGroup(ctx context.Context, group *models.Group) error {
	if group.ID == "" {
		group.ID = newID()
	}
	group.CreatedAt = s.stamp(group.CreatedAt)
	group.UpdatedAt = group.CreatedAt

	return s.withTx(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx,
			"INSERT INTO groups (id, name, color, created_at, updated_at) VALUES (?, ?, ?, ?, ?)",
			group.ID, group.Name, group.Color, group.CreatedAt.Unix(), group.UpdatedAt.Unix(),
		)
		if err != nil {
			return fmt.Errorf("failed to insert group: %w", err)
		}

		for i := range group.Members {
			if err := s.insertMember(ctx, tx, group.ID, i, &group.Members[i]); err != nil {
				return err
			}
		}
		for i := range group.Categories {
			if err := insertCategory(ctx, tx, group.ID, &group.Categories[i]); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *SQLiteStore) insertMember(ctx context.Context, tx *sql.Tx, groupID string, position int, member *models.Member) error {
	if member.ID == "" {
		member.ID = newID()
	}
	member.CreatedAt = s.stamp(member.CreatedAt)

	_, err := tx.ExecContext(ctx,
		"INSERT INTO members (group_id, id, name, color, position, created_at) VALUES (?, ?, ?, ?, ?, ?)",
		groupID, member.ID, member.Name, member.Color, position, member.CreatedAt.Unix(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert member: %w", err)
	}
	return nil
}

func insertCategory(ctx context.Context, tx *sql.Tx, groupID string, category *models.Category) error {
	if category.ID == "" {
		category.ID = newID()
	}
	_, err := tx.ExecContext(ctx,
		"INSERT INTO categories (group_id, id, name, icon, color, is_default) VALUES (?, ?, ?, ?, ?, ?)",
		groupID, category.ID, category.Name, category.Icon, category.Color, category.IsDefault,
	)
	if err != nil {
		return fmt.Errorf("failed to insert category: %w", err)
	}
	return nil
}

// GetGroup retrieves a group by ID, including members and categories.
func (s *SQLiteStore) GetGroup(ctx context.Context, groupID string) (*models.Group, error) {
	group := &models.Group{}
	var createdAt, updatedAt int64
	err := s.db.QueryRowContext(ctx,
		"SELECT id, name, color, created_at, updated_at FROM groups WHERE id = ?",
		groupID,
	).Scan(&group.ID, &group.Name, &group.Color, &createdAt, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("group %s: %w", groupID, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get group: %w", err)
	}
	group.CreatedAt = models.FromUnix(createdAt)
	group.UpdatedAt = models.FromUnix(updatedAt)

	if group.Members, err = s.listMembers(ctx, groupID); err != nil {
		return nil, err
	}
	if group.Categories, err = s.listCategories(ctx, groupID); err != nil {
		return nil, err
	}
	return group, nil
}

func (s *SQLiteStore) listMembers(ctx context.Context, groupID string) ([]models.Member, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, name, color, created_at FROM members WHERE group_id = ? ORDER BY position",
		groupID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get members: %w", err)
	}
	defer rows.Close()

	var members []models.Member
	for rows.Next() {
		var m models.Member
		var createdAt int64
		if err := rows.Scan(&m.ID, &m.Name, &m.Color, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan member: %w", err)
		}
		m.CreatedAt = models.FromUnix(createdAt)
		members = append(members, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate members: %w", err)
	}
	return members, nil
}

func (s *SQLiteStore) listCategories(ctx context.Context, groupID string) ([]models.Category, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, name, icon, color, is_default FROM categories WHERE group_id = ? ORDER BY is_default DESC, name",
		groupID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get categories: %w", err)
	}
	defer rows.Close()

	var categories []models.Category
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Icon, &c.Color, &c.IsDefault); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate categories: %w", err)
	}
	return categories, nil
}

// ListGroups retrieves all groups, newest first.
func (s *SQLiteStore) ListGroups(ctx context.Context) ([]*models.Group, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT id FROM groups ORDER BY created_at DESC, id")
	if err != nil {
		return nil, fmt.Errorf("failed to list groups: %w", err)
	}

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			rows.Close()
			return nil, fmt.Errorf("failed to scan group id: %w", err)
		}
		ids = append(ids, id)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate groups: %w", err)
	}

	groups := make([]*models.Group, 0, len(ids))
	for _, id := range ids {
		group, err := s.GetGroup(ctx, id)
		if err != nil {
			return nil, err
		}
		groups = append(groups, group)
	}
	return groups, nil
}

// UpdateGroup changes a group's name and color.
func (s *SQLiteStore) UpdateGroup(ctx context.Context, group *models.Group) error {
	result, err := s.db.ExecContext(ctx,
		"UPDATE groups SET name = ?, color = ?, updated_at = ? WHERE id = ?",
		group.Name, group.Color, s.now().Unix(), group.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update group: %w", err)
	}
	return requireAffected(result, "group", group.ID)
}

// DeleteGroup removes a group. Members, categories, expenses, splits and
// settlements cascade; sessions carry no foreign key and are removed here.
func (s *SQLiteStore) DeleteGroup(ctx context.Context, groupID string) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, "DELETE FROM sessions WHERE group_id = ?", groupID); err != nil {
			return fmt.Errorf("failed to delete sessions: %w", err)
		}
		result, err := tx.ExecContext(ctx, "DELETE FROM groups WHERE id = ?", groupID)
		if err != nil {
			return fmt.Errorf("failed to delete group: %w", err)
		}
		return requireAffected(result, "group", groupID)
	})
}

// AddMember appends a member after the existing ones.
func (s *SQLiteStore) AddMember(ctx context.Context, groupID string, member *models.Member) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		var position int
		err := tx.QueryRowContext(ctx,
			"SELECT COUNT(*) FROM members WHERE group_id = ?", groupID,
		).Scan(&position)
		if err != nil {
			return fmt.Errorf("failed to count members: %w", err)
		}

		if err := s.touchGroup(ctx, tx, groupID); err != nil {
			return err
		}
		return s.insertMember(ctx, tx, groupID, position, member)
	})
}

// UpdateMember changes a member's name and color.
func (s *SQLiteStore) UpdateMember(ctx context.Context, groupID string, member *models.Member) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		result, err := tx.ExecContext(ctx,
			"UPDATE members SET name = ?, color = ? WHERE group_id = ? AND id = ?",
			member.Name, member.Color, groupID, member.ID,
		)
		if err != nil {
			return fmt.Errorf("failed to update member: %w", err)
		}
		if err := requireAffected(result, "member", member.ID); err != nil {
			return err
		}
		return s.touchGroup(ctx, tx, groupID)
	})
}

// AddCategory adds a category to a group.
func (s *SQLiteStore) AddCategory(ctx context.Context, groupID string, category *models.Category) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		if err := s.touchGroup(ctx, tx, groupID); err != nil {
			return err
		}
		return insertCategory(ctx, tx, groupID, category)
	})
}

// UpdateCategory changes a category's name, icon and color.
func (s *SQLiteStore) UpdateCategory(ctx context.Context, groupID string, category *models.Category) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		result, err := tx.ExecContext(ctx,
			"UPDATE categories SET name = ?, icon = ?, color = ? WHERE group_id = ? AND id = ?",
			category.Name, category.Icon, category.Color, groupID, category.ID,
		)
		if err != nil {
			return fmt.Errorf("failed to update category: %w", err)
		}
		if err := requireAffected(result, "category", category.ID); err != nil {
			return err
		}
		return s.touchGroup(ctx, tx, groupID)
	})
}

// DeleteCategory removes a category and clears it from the group's expenses.
func (s *SQLiteStore) DeleteCategory(ctx context.Context, groupID, categoryID string) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		result, err := tx.ExecContext(ctx,
			"DELETE FROM categories WHERE group_id = ? AND id = ?", groupID, categoryID,
		)
		if err != nil {
			return fmt.Errorf("failed to delete category: %w", err)
		}
		if err := requireAffected(result, "category", categoryID); err != nil {
			return err
		}

		_, err = tx.ExecContext(ctx,
			"UPDATE expenses SET category_id = '' WHERE group_id = ? AND category_id = ?", groupID, categoryID,
		)
		if err != nil {
			return fmt.Errorf("failed to uncategorize expenses: %w", err)
		}
		return s.touchGroup(ctx, tx, groupID)
	})
}

// touchGroup bumps updated_at and fails with ErrNotFound for unknown groups.
func (s *SQLiteStore) touchGroup(ctx context.Context, tx *sql.Tx, groupID string) error {
	result, err := tx.ExecContext(ctx,
		"UPDATE groups SET updated_at = ? WHERE id = ?", s.now().Unix(), groupID,
	)
	if err != nil {
		return fmt.Errorf("failed to update group: %w", err)
	}
	return requireAffected(result, "group", groupID)
}

func requireAffected(result sql.Result, kind, id string) error {
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check affected rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%s %s: %w", kind, id, storage.ErrNotFound)
	}
	return nil
}
