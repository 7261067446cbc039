package service

import (
	"context"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/splitledger/internal/calculator"
	"github.com/mmynk/splitledger/internal/models"
	"github.com/mmynk/splitledger/pkg/ledgerapi"
)

// GetBalances computes every member's balance and spending breakdown plus
// the suggested transfers. Ids that records reference but the group no
// longer lists appear after the members, named "Unknown".
func (s *LedgerService) GetBalances(ctx context.Context, req *connect.Request[ledgerapi.GetBalancesRequest]) (*connect.Response[ledgerapi.GetBalancesResponse], error) {
	slog.Info("GetBalances request received", "group_id", req.Msg.GroupID)

	group, err := s.loadGroup(ctx, req.Msg.GroupID)
	if err != nil {
		return nil, err
	}
	expenses, settlements, err := s.snapshot(ctx, group.ID)
	if err != nil {
		return nil, err
	}

	balances := calculator.ComputeBalances(expenses, settlements, group.Members)
	debts := calculator.SimplifyBalances(balances)
	s.metrics.ObserveDebts(len(debts))

	resp := &ledgerapi.GetBalancesResponse{
		Balances: make([]ledgerapi.MemberBalance, len(balances)),
		Debts:    make([]ledgerapi.Debt, len(debts)),
		Settled:  len(debts) == 0,
	}
	for i, b := range balances {
		spending := calculator.MemberTotalSpending(b.MemberID, expenses)
		resp.Balances[i] = ledgerapi.MemberBalance{
			MemberID:      b.MemberID,
			Name:          group.MemberName(b.MemberID),
			Balance:       b.Balance,
			Orphaned:      b.Orphaned,
			Personal:      spending.Personal,
			SharedQuota:   spending.SharedQuota,
			TotalSpending: spending.Total,
		}
	}
	for i, d := range debts {
		resp.Debts[i] = toDebt(group, d)
	}

	slog.Info("GetBalances successful",
		"group_id", group.ID,
		"expenses_count", len(expenses),
		"settlements_count", len(settlements),
		"debts_count", len(debts),
	)

	return connect.NewResponse(resp), nil
}

// SettleAll records every currently suggested transfer as a settlement,
// bringing all balances to zero within tolerance.
func (s *LedgerService) SettleAll(ctx context.Context, req *connect.Request[ledgerapi.SettleAllRequest]) (*connect.Response[ledgerapi.SettleAllResponse], error) {
	slog.Info("SettleAll request received", "group_id", req.Msg.GroupID)

	group, err := s.loadGroup(ctx, req.Msg.GroupID)
	if err != nil {
		return nil, err
	}
	expenses, settlements, err := s.snapshot(ctx, group.ID)
	if err != nil {
		return nil, err
	}

	debts := calculator.CalculateDebts(expenses, settlements, group.Members)
	s.metrics.ObserveDebts(len(debts))

	records := calculator.DebtsToSettlements(group.ID, debts, req.Msg.Note, s.now())
	if len(records) > 0 {
		ptrs := make([]*models.Settlement, len(records))
		for i := range records {
			ptrs[i] = &records[i]
		}
		if err := s.store.CreateSettlements(ctx, ptrs); err != nil {
			slog.Error("SettleAll failed", "group_id", group.ID, "error", err)
			return nil, toConnectError(err)
		}
	}

	out := make([]ledgerapi.Settlement, len(records))
	for i, settlement := range records {
		out[i] = toSettlement(group, settlement)
	}

	slog.Info("Group settled", "group_id", group.ID, "settlements_count", len(records))

	return connect.NewResponse(&ledgerapi.SettleAllResponse{Settlements: out}), nil
}
