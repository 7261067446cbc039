package service

import (
	"context"
	"log/slog"
	"time"

	"connectrpc.com/connect"

	"github.com/mmynk/splitledger/internal/calculator"
	"github.com/mmynk/splitledger/internal/models"
	"github.com/mmynk/splitledger/pkg/ledgerapi"
)

// GetSpendingReport totals a group's shared or personal expenses by
// category, by payer and by day.
func (s *LedgerService) GetSpendingReport(ctx context.Context, req *connect.Request[ledgerapi.GetSpendingReportRequest]) (*connect.Response[ledgerapi.GetSpendingReportResponse], error) {
	slog.Info("GetSpendingReport request received", "group_id", req.Msg.GroupID, "type", req.Msg.Type)

	kind := models.ExpenseType(req.Msg.Type)
	switch kind {
	case "":
		kind = models.ExpenseShared
	case models.ExpenseShared, models.ExpensePersonal:
	default:
		return nil, invalidArgument("unknown expense type %q", req.Msg.Type)
	}

	group, err := s.loadGroup(ctx, req.Msg.GroupID)
	if err != nil {
		return nil, err
	}
	expenses, err := s.store.ListExpensesByGroup(ctx, group.ID)
	if err != nil {
		slog.Error("Failed to list expenses", "group_id", group.ID, "error", err)
		return nil, toConnectError(err)
	}

	categories := make(map[string]models.Category, len(group.Categories))
	for _, c := range group.Categories {
		categories[c.ID] = c
	}

	resp := &ledgerapi.GetSpendingReportResponse{
		ByCategory: []ledgerapi.CategorySpending{},
		ByMember:   []ledgerapi.MemberSpending{},
		ByDay:      []ledgerapi.DaySpending{},
	}
	for _, t := range calculator.SpendingByCategory(expenses, group.Categories, kind) {
		c := categories[t.CategoryID]
		resp.ByCategory = append(resp.ByCategory, ledgerapi.CategorySpending{
			CategoryID: c.ID,
			Name:       c.Name,
			Icon:       c.Icon,
			Color:      c.Color,
			Total:      t.Total,
		})
	}
	for _, t := range calculator.SpendingByMember(expenses, group.Members, kind) {
		m, _ := group.Member(t.MemberID)
		resp.ByMember = append(resp.ByMember, ledgerapi.MemberSpending{
			MemberID: m.ID,
			Name:     m.Name,
			Color:    m.Color,
			Total:    t.Total,
		})
	}
	for _, t := range calculator.SpendingByDay(expenses, kind, time.UTC) {
		resp.ByDay = append(resp.ByDay, ledgerapi.DaySpending{Day: t.Day, Total: t.Total})
	}

	return connect.NewResponse(resp), nil
}
