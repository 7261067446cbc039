// Package service implements the ledger RPC surface on top of the store and
// the balance engine. Every read recomputes from the stored records.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"connectrpc.com/connect"

	"github.com/mmynk/splitledger/internal/calculator"
	"github.com/mmynk/splitledger/internal/metrics"
	"github.com/mmynk/splitledger/internal/models"
	"github.com/mmynk/splitledger/internal/money"
	"github.com/mmynk/splitledger/internal/storage"
	"github.com/mmynk/splitledger/pkg/ledgerapi"
)

// Ensure LedgerService implements the handler interface
var _ ledgerapi.LedgerServiceHandler = (*LedgerService)(nil)

// LedgerService implements the Connect LedgerService.
type LedgerService struct {
	store             storage.Store
	metrics           *metrics.Metrics
	now               func() time.Time
	defaultCategories bool
}

// Option configures a LedgerService.
type Option func(*LedgerService)

// WithMetrics records debt calculations in m.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *LedgerService) { s.metrics = m }
}

// WithDefaultCategories controls whether new groups are seeded with the
// default categories. Enabled by default.
func WithDefaultCategories(enabled bool) Option {
	return func(s *LedgerService) { s.defaultCategories = enabled }
}

// WithClock overrides the time source used for settle-all records.
func WithClock(now func() time.Time) Option {
	return func(s *LedgerService) { s.now = now }
}

// NewLedgerService creates a new LedgerService with the given storage backend.
func NewLedgerService(store storage.Store, opts ...Option) *LedgerService {
	s := &LedgerService{
		store:             store,
		now:               time.Now,
		defaultCategories: true,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// validationErrors are reported to callers as InvalidArgument.
var validationErrors = []error{
	calculator.ErrInvalidAmount,
	calculator.ErrNoParticipants,
	calculator.ErrInvalidParticipant,
	calculator.ErrUnknownSplitMethod,
	calculator.ErrSplitMismatch,
	calculator.ErrNegativeShare,
	calculator.ErrPercentageMismatch,
	money.ErrInvalidAmount,
}

// toConnectError maps store and calculator errors to connect codes.
func toConnectError(err error) error {
	var connectErr *connect.Error
	if errors.As(err, &connectErr) {
		return err
	}
	if errors.Is(err, storage.ErrNotFound) {
		return connect.NewError(connect.CodeNotFound, err)
	}
	for _, target := range validationErrors {
		if errors.Is(err, target) {
			return connect.NewError(connect.CodeInvalidArgument, err)
		}
	}
	return connect.NewError(connect.CodeInternal, err)
}

func invalidArgument(format string, args ...any) error {
	return connect.NewError(connect.CodeInvalidArgument, fmt.Errorf(format, args...))
}

func required(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return invalidArgument("%s required", field)
	}
	return nil
}

// loadGroup fetches a group, failing with InvalidArgument or NotFound.
func (s *LedgerService) loadGroup(ctx context.Context, groupID string) (*models.Group, error) {
	if err := required("group_id", groupID); err != nil {
		return nil, err
	}
	group, err := s.store.GetGroup(ctx, groupID)
	if err != nil {
		slog.Error("Failed to load group", "group_id", groupID, "error", err)
		return nil, toConnectError(err)
	}
	return group, nil
}

// requireMember fails with InvalidArgument unless memberID belongs to group.
func requireMember(group *models.Group, field, memberID string) error {
	if err := required(field, memberID); err != nil {
		return err
	}
	if !group.HasMember(memberID) {
		return invalidArgument("%s %q is not a member of group %s", field, memberID, group.ID)
	}
	return nil
}

// snapshot loads every record the balance engine needs for a group.
func (s *LedgerService) snapshot(ctx context.Context, groupID string) ([]models.Expense, []models.Settlement, error) {
	expenses, err := s.store.ListExpensesByGroup(ctx, groupID)
	if err != nil {
		slog.Error("Failed to list expenses", "group_id", groupID, "error", err)
		return nil, nil, toConnectError(err)
	}
	settlements, err := s.store.ListSettlementsByGroup(ctx, groupID)
	if err != nil {
		slog.Error("Failed to list settlements", "group_id", groupID, "error", err)
		return nil, nil, toConnectError(err)
	}
	return expenses, settlements, nil
}

func errMemberNotFound(memberID string) error {
	return fmt.Errorf("member %s: %w", memberID, storage.ErrNotFound)
}
