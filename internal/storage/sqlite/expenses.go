package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mmynk/splitledger/internal/models"
	"github.com/mmynk/splitledger/internal/money"
	"github.com/mmynk/splitledger/internal/storage"
)

const expenseColumns = `id, group_id, description, amount, date, paid_by_member_id, category_id,
	created_by_member_id, type, is_income, split_method, is_settlement, created_at, updated_at`

// expenseRow is the flat column form of both expense variants.
type expenseRow struct {
	record      models.ExpenseRecord
	date        sql.NullInt64
	createdAt   int64
	updatedAt   int64
	expenseType models.ExpenseType
	isIncome    bool
	method      models.SplitMethod
}

func (r *expenseRow) scan(scanner interface{ Scan(...any) error }) error {
	return scanner.Scan(
		&r.record.ID, &r.record.GroupID, &r.record.Description, &r.record.Amount, &r.date,
		&r.record.PaidByMemberID, &r.record.CategoryID, &r.record.CreatedByMemberID,
		&r.expenseType, &r.isIncome, &r.method, &r.record.IsSettlement, &r.createdAt, &r.updatedAt,
	)
}

// toModel builds the variant; splits are attached by the caller.
func (r *expenseRow) toModel() (models.Expense, error) {
	r.record.Date = timeFromNull(r.date)
	r.record.CreatedAt = models.FromUnix(r.createdAt)
	r.record.UpdatedAt = models.FromUnix(r.updatedAt)

	switch r.expenseType {
	case models.ExpenseShared:
		return &models.SharedExpense{ExpenseRecord: r.record, Method: r.method}, nil
	case models.ExpensePersonal:
		return &models.PersonalExpense{ExpenseRecord: r.record, IsIncome: r.isIncome}, nil
	default:
		return nil, fmt.Errorf("expense %s has unknown type %q", r.record.ID, r.expenseType)
	}
}

// CreateExpense persists a new expense and its splits.
func (s *SQLiteStore) CreateExpense(ctx context.Context, expense models.Expense) error {
	rec := expense.Record()
	if rec.ID == "" {
		rec.ID = newID()
	}
	rec.Date = s.stamp(rec.Date)
	rec.CreatedAt = s.stamp(rec.CreatedAt)
	rec.UpdatedAt = rec.CreatedAt

	return s.withTx(ctx, func(tx *sql.Tx) error {
		var isIncome bool
		var method models.SplitMethod
		switch e := expense.(type) {
		case *models.SharedExpense:
			method = e.Method
		case *models.PersonalExpense:
			isIncome = e.IsIncome
		}

		_, err := tx.ExecContext(ctx,
			`INSERT INTO expenses (`+expenseColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			rec.ID, rec.GroupID, rec.Description, rec.Amount, nullableTime(rec.Date),
			rec.PaidByMemberID, rec.CategoryID, rec.CreatedByMemberID,
			expense.Type(), isIncome, method, rec.IsSettlement, rec.CreatedAt.Unix(), rec.UpdatedAt.Unix(),
		)
		if err != nil {
			return fmt.Errorf("failed to insert expense: %w", err)
		}

		return insertSplits(ctx, tx, rec.ID, expense.Shares())
	})
}

func insertSplits(ctx context.Context, tx *sql.Tx, expenseID string, splits []models.ExpenseSplit) error {
	for i, split := range splits {
		_, err := tx.ExecContext(ctx,
			"INSERT INTO expense_splits (expense_id, position, member_id, amount, percentage) VALUES (?, ?, ?, ?, ?)",
			expenseID, i, split.MemberID, split.Amount, split.Percentage,
		)
		if err != nil {
			return fmt.Errorf("failed to insert split: %w", err)
		}
	}
	return nil
}

// GetExpense retrieves an expense by ID, including its splits.
func (s *SQLiteStore) GetExpense(ctx context.Context, groupID, expenseID string) (models.Expense, error) {
	var row expenseRow
	err := row.scan(s.db.QueryRowContext(ctx,
		`SELECT `+expenseColumns+` FROM expenses WHERE group_id = ? AND id = ?`,
		groupID, expenseID,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("expense %s: %w", expenseID, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get expense: %w", err)
	}

	expense, err := row.toModel()
	if err != nil {
		return nil, err
	}

	splits, err := s.splitsByExpense(ctx, "WHERE s.expense_id = ?", expenseID)
	if err != nil {
		return nil, err
	}
	attachSplits(expense, splits[expenseID])
	return expense, nil
}

// UpdateExpense replaces an existing expense and its splits.
func (s *SQLiteStore) UpdateExpense(ctx context.Context, expense models.Expense) error {
	rec := expense.Record()
	rec.Date = s.stamp(rec.Date)
	rec.UpdatedAt = models.ResolvedAt(s.now())

	return s.withTx(ctx, func(tx *sql.Tx) error {
		var isIncome bool
		var method models.SplitMethod
		switch e := expense.(type) {
		case *models.SharedExpense:
			method = e.Method
		case *models.PersonalExpense:
			isIncome = e.IsIncome
		}

		result, err := tx.ExecContext(ctx,
			`UPDATE expenses SET description = ?, amount = ?, date = ?, paid_by_member_id = ?,
				category_id = ?, type = ?, is_income = ?, split_method = ?, is_settlement = ?, updated_at = ?
			 WHERE group_id = ? AND id = ?`,
			rec.Description, rec.Amount, nullableTime(rec.Date), rec.PaidByMemberID,
			rec.CategoryID, expense.Type(), isIncome, method, rec.IsSettlement, rec.UpdatedAt.Unix(),
			rec.GroupID, rec.ID,
		)
		if err != nil {
			return fmt.Errorf("failed to update expense: %w", err)
		}
		if err := requireAffected(result, "expense", rec.ID); err != nil {
			return err
		}

		if _, err := tx.ExecContext(ctx, "DELETE FROM expense_splits WHERE expense_id = ?", rec.ID); err != nil {
			return fmt.Errorf("failed to delete old splits: %w", err)
		}
		return insertSplits(ctx, tx, rec.ID, expense.Shares())
	})
}

// DeleteExpense removes an expense; its splits cascade.
func (s *SQLiteStore) DeleteExpense(ctx context.Context, groupID, expenseID string) error {
	result, err := s.db.ExecContext(ctx,
		"DELETE FROM expenses WHERE group_id = ? AND id = ?", groupID, expenseID,
	)
	if err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}
	return requireAffected(result, "expense", expenseID)
}

// ListExpensesByGroup retrieves all expenses for a group, newest date first.
func (s *SQLiteStore) ListExpensesByGroup(ctx context.Context, groupID string) ([]models.Expense, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+expenseColumns+` FROM expenses WHERE group_id = ? ORDER BY created_at DESC, id`,
		groupID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses by group: %w", err)
	}
	defer rows.Close()

	var expenses []models.Expense
	for rows.Next() {
		var row expenseRow
		if err := row.scan(rows); err != nil {
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}
		expense, err := row.toModel()
		if err != nil {
			return nil, err
		}
		expenses = append(expenses, expense)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate expenses: %w", err)
	}

	splits, err := s.splitsByExpense(ctx,
		"JOIN expenses e ON e.id = s.expense_id WHERE e.group_id = ?", groupID)
	if err != nil {
		return nil, err
	}
	for _, expense := range expenses {
		attachSplits(expense, splits[expense.Record().ID])
	}

	models.SortExpensesByDate(expenses)
	return expenses, nil
}

// splitsByExpense loads splits matching where, grouped by expense and in position order.
func (s *SQLiteStore) splitsByExpense(ctx context.Context, where string, args ...any) (map[string][]models.ExpenseSplit, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT s.expense_id, s.member_id, s.amount, s.percentage FROM expense_splits s `+where+
			` ORDER BY s.expense_id, s.position`,
		args...,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get splits: %w", err)
	}
	defer rows.Close()

	splits := make(map[string][]models.ExpenseSplit)
	for rows.Next() {
		var expenseID string
		var split models.ExpenseSplit
		var amount int64
		if err := rows.Scan(&expenseID, &split.MemberID, &amount, &split.Percentage); err != nil {
			return nil, fmt.Errorf("failed to scan split: %w", err)
		}
		split.Amount = money.Cents(amount)
		splits[expenseID] = append(splits[expenseID], split)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate splits: %w", err)
	}
	return splits, nil
}

// attachSplits sets stored splits on shared expenses. Personal expenses
// derive their single split from the payer.
func attachSplits(expense models.Expense, splits []models.ExpenseSplit) {
	if shared, ok := expense.(*models.SharedExpense); ok {
		shared.Splits = splits
	}
}
