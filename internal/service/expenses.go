package service

import (
	"context"
	"log/slog"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/splitledger/internal/calculator"
	"github.com/mmynk/splitledger/internal/models"
	"github.com/mmynk/splitledger/pkg/ledgerapi"
)

// PreviewSplits computes splits without storing anything. Custom and
// percentage inputs are not required to add up; the response reports the gap.
func (s *LedgerService) PreviewSplits(ctx context.Context, req *connect.Request[ledgerapi.PreviewSplitsRequest]) (*connect.Response[ledgerapi.PreviewSplitsResponse], error) {
	method, err := models.ParseSplitMethod(req.Msg.Method)
	if err != nil {
		return nil, invalidArgument("%v", err)
	}

	splits, err := calculator.ComputeSplits(req.Msg.Amount, method, req.Msg.ParticipantIDs, req.Msg.Values)
	if err != nil {
		return nil, toConnectError(err)
	}

	mismatch := -req.Msg.Amount
	for _, split := range splits {
		mismatch += split.Amount
	}

	return connect.NewResponse(&ledgerapi.PreviewSplitsResponse{
		Splits:   toSplits(nil, splits),
		Mismatch: mismatch,
	}), nil
}

// buildExpense validates input against group and builds the expense variant.
// Shared splits must add up to the amount exactly.
func buildExpense(group *models.Group, in ledgerapi.ExpenseInput) (models.Expense, error) {
	description := strings.TrimSpace(in.Description)
	if description == "" {
		return nil, invalidArgument("description required")
	}
	if in.Amount <= 0 {
		return nil, toConnectError(calculator.ErrInvalidAmount)
	}
	if err := requireMember(group, "paid_by_member_id", in.PaidByMemberID); err != nil {
		return nil, err
	}
	if in.CreatedByMemberID != "" {
		if err := requireMember(group, "created_by_member_id", in.CreatedByMemberID); err != nil {
			return nil, err
		}
	}
	if _, ok := findCategory(group, in.CategoryID); in.CategoryID != "" && !ok {
		return nil, invalidArgument("category %q does not belong to group %s", in.CategoryID, group.ID)
	}

	record := models.ExpenseRecord{
		GroupID:           group.ID,
		Description:       description,
		Amount:            in.Amount,
		Date:              models.FromUnix(in.Date),
		PaidByMemberID:    in.PaidByMemberID,
		CategoryID:        in.CategoryID,
		CreatedByMemberID: in.CreatedByMemberID,
	}

	switch models.ExpenseType(in.Type) {
	case models.ExpensePersonal:
		return &models.PersonalExpense{ExpenseRecord: record, IsIncome: in.IsIncome}, nil
	case models.ExpenseShared, "":
	default:
		return nil, invalidArgument("unknown expense type %q", in.Type)
	}

	method := models.SplitEqual
	if in.SplitMethod != "" {
		var err error
		if method, err = models.ParseSplitMethod(in.SplitMethod); err != nil {
			return nil, invalidArgument("%v", err)
		}
	}
	for _, id := range in.ParticipantIDs {
		if err := requireMember(group, "participant", id); err != nil {
			return nil, err
		}
	}
	if method == models.SplitPercentage {
		if err := calculator.ValidatePercentages(in.ParticipantIDs, in.Values); err != nil {
			return nil, toConnectError(err)
		}
	}

	splits, err := calculator.ComputeSplits(in.Amount, method, in.ParticipantIDs, in.Values)
	if err != nil {
		return nil, toConnectError(err)
	}
	if err := calculator.ValidateSplits(in.Amount, splits); err != nil {
		return nil, toConnectError(err)
	}

	return &models.SharedExpense{ExpenseRecord: record, Method: method, Splits: splits}, nil
}

// CreateExpense records a shared or personal expense.
func (s *LedgerService) CreateExpense(ctx context.Context, req *connect.Request[ledgerapi.CreateExpenseRequest]) (*connect.Response[ledgerapi.CreateExpenseResponse], error) {
	slog.Info("CreateExpense request received",
		"group_id", req.Msg.GroupID,
		"type", req.Msg.Type,
		"split_method", req.Msg.SplitMethod,
		"participants_count", len(req.Msg.ParticipantIDs),
	)

	group, err := s.loadGroup(ctx, req.Msg.GroupID)
	if err != nil {
		return nil, err
	}

	expense, err := buildExpense(group, req.Msg.ExpenseInput)
	if err != nil {
		slog.Warn("CreateExpense rejected", "group_id", group.ID, "error", err)
		return nil, err
	}

	if err := s.store.CreateExpense(ctx, expense); err != nil {
		slog.Error("CreateExpense failed", "group_id", group.ID, "error", err)
		return nil, toConnectError(err)
	}

	slog.Info("Expense created", "group_id", group.ID, "expense_id", expense.Record().ID)

	return connect.NewResponse(&ledgerapi.CreateExpenseResponse{Expense: toExpense(group, expense)}), nil
}

// UpdateExpense replaces an expense. Creation metadata is kept.
func (s *LedgerService) UpdateExpense(ctx context.Context, req *connect.Request[ledgerapi.UpdateExpenseRequest]) (*connect.Response[ledgerapi.UpdateExpenseResponse], error) {
	slog.Info("UpdateExpense request received", "group_id", req.Msg.GroupID, "expense_id", req.Msg.ExpenseID)

	group, err := s.loadGroup(ctx, req.Msg.GroupID)
	if err != nil {
		return nil, err
	}
	if err := required("expense_id", req.Msg.ExpenseID); err != nil {
		return nil, err
	}

	existing, err := s.store.GetExpense(ctx, group.ID, req.Msg.ExpenseID)
	if err != nil {
		slog.Error("UpdateExpense failed", "expense_id", req.Msg.ExpenseID, "error", err)
		return nil, toConnectError(err)
	}

	expense, err := buildExpense(group, req.Msg.ExpenseInput)
	if err != nil {
		slog.Warn("UpdateExpense rejected", "expense_id", req.Msg.ExpenseID, "error", err)
		return nil, err
	}

	prev, rec := existing.Record(), expense.Record()
	rec.ID = prev.ID
	rec.CreatedAt = prev.CreatedAt
	rec.IsSettlement = prev.IsSettlement
	if rec.CreatedByMemberID == "" {
		rec.CreatedByMemberID = prev.CreatedByMemberID
	}
	if rec.Date.IsPending() {
		rec.Date = prev.Date
	}

	if err := s.store.UpdateExpense(ctx, expense); err != nil {
		slog.Error("UpdateExpense failed", "expense_id", rec.ID, "error", err)
		return nil, toConnectError(err)
	}

	slog.Info("Expense updated", "group_id", group.ID, "expense_id", rec.ID)

	return connect.NewResponse(&ledgerapi.UpdateExpenseResponse{Expense: toExpense(group, expense)}), nil
}

// DeleteExpense removes an expense and its splits.
func (s *LedgerService) DeleteExpense(ctx context.Context, req *connect.Request[ledgerapi.DeleteExpenseRequest]) (*connect.Response[ledgerapi.DeleteExpenseResponse], error) {
	slog.Info("DeleteExpense request received", "group_id", req.Msg.GroupID, "expense_id", req.Msg.ExpenseID)

	if err := required("group_id", req.Msg.GroupID); err != nil {
		return nil, err
	}
	if err := required("expense_id", req.Msg.ExpenseID); err != nil {
		return nil, err
	}

	if err := s.store.DeleteExpense(ctx, req.Msg.GroupID, req.Msg.ExpenseID); err != nil {
		slog.Error("DeleteExpense failed", "expense_id", req.Msg.ExpenseID, "error", err)
		return nil, toConnectError(err)
	}

	slog.Info("Expense deleted", "expense_id", req.Msg.ExpenseID)

	return connect.NewResponse(&ledgerapi.DeleteExpenseResponse{}), nil
}

// ListExpenses returns a group's expenses, newest date first.
func (s *LedgerService) ListExpenses(ctx context.Context, req *connect.Request[ledgerapi.ListExpensesRequest]) (*connect.Response[ledgerapi.ListExpensesResponse], error) {
	slog.Info("ListExpenses request received", "group_id", req.Msg.GroupID)

	group, err := s.loadGroup(ctx, req.Msg.GroupID)
	if err != nil {
		return nil, err
	}

	expenses, err := s.store.ListExpensesByGroup(ctx, group.ID)
	if err != nil {
		slog.Error("ListExpenses failed", "group_id", group.ID, "error", err)
		return nil, toConnectError(err)
	}

	out := make([]ledgerapi.Expense, len(expenses))
	for i, e := range expenses {
		out[i] = toExpense(group, e)
	}

	return connect.NewResponse(&ledgerapi.ListExpensesResponse{Expenses: out}), nil
}
