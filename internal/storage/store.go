// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/mmynk/splitledger/internal/models"
)

// ErrNotFound is wrapped by every lookup that finds no row.
var ErrNotFound = errors.New("not found")

// Store defines the persistence collaborator for group ledgers.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL, etc.)
// without changing the service layer. The balance engine never sees it;
// the service loads snapshots from it and hands them over.
//
// Pending timestamps on records being written are resolved by the store.
type Store interface {
	// CreateGroup persists a group with its members and categories.
	// Empty IDs are generated and written back into the models.
	CreateGroup(ctx context.Context, group *models.Group) error

	// GetGroup retrieves a group with members (join order) and categories.
	GetGroup(ctx context.Context, groupID string) (*models.Group, error)

	// ListGroups returns every group, newest first.
	ListGroups(ctx context.Context) ([]*models.Group, error)

	// UpdateGroup changes a group's name and color.
	UpdateGroup(ctx context.Context, group *models.Group) error

	// DeleteGroup removes a group with its members, categories, expenses,
	// settlements and sessions.
	DeleteGroup(ctx context.Context, groupID string) error

	// AddMember appends a member to a group.
	AddMember(ctx context.Context, groupID string, member *models.Member) error

	// UpdateMember changes a member's name and color.
	UpdateMember(ctx context.Context, groupID string, member *models.Member) error

	// AddCategory adds a category to a group.
	AddCategory(ctx context.Context, groupID string, category *models.Category) error

	// UpdateCategory changes a category's name, icon and color.
	UpdateCategory(ctx context.Context, groupID string, category *models.Category) error

	// DeleteCategory removes a category. Expenses that used it become uncategorized.
	DeleteCategory(ctx context.Context, groupID, categoryID string) error

	// CreateExpense persists an expense with its splits.
	CreateExpense(ctx context.Context, expense models.Expense) error

	// GetExpense retrieves one expense of a group.
	GetExpense(ctx context.Context, groupID, expenseID string) (models.Expense, error)

	// UpdateExpense replaces an expense and its splits.
	UpdateExpense(ctx context.Context, expense models.Expense) error

	// DeleteExpense removes an expense and its splits.
	DeleteExpense(ctx context.Context, groupID, expenseID string) error

	// ListExpensesByGroup returns a group's expenses, newest date first.
	ListExpensesByGroup(ctx context.Context, groupID string) ([]models.Expense, error)

	// CreateSettlements persists settlements atomically.
	CreateSettlements(ctx context.Context, settlements []*models.Settlement) error

	// GetSettlement retrieves one settlement.
	GetSettlement(ctx context.Context, settlementID string) (*models.Settlement, error)

	// ListSettlementsByGroup returns a group's settlements, newest first.
	ListSettlementsByGroup(ctx context.Context, groupID string) ([]models.Settlement, error)

	// DeleteSettlement removes a settlement, reversing its effect on balances.
	DeleteSettlement(ctx context.Context, groupID, settlementID string) error

	models.SessionStore

	// Close releases any resources held by the store.
	Close() error
}
