package service

import (
	"context"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/splitledger/internal/calculator"
	"github.com/mmynk/splitledger/internal/models"
	"github.com/mmynk/splitledger/pkg/ledgerapi"
)

// RecordSettlement logs a payment from one member to another.
func (s *LedgerService) RecordSettlement(ctx context.Context, req *connect.Request[ledgerapi.RecordSettlementRequest]) (*connect.Response[ledgerapi.RecordSettlementResponse], error) {
	slog.Info("RecordSettlement request received",
		"group_id", req.Msg.GroupID,
		"from", req.Msg.FromMemberID,
		"to", req.Msg.ToMemberID,
		"amount", req.Msg.Amount,
	)

	group, err := s.loadGroup(ctx, req.Msg.GroupID)
	if err != nil {
		return nil, err
	}
	if err := requireMember(group, "from_member_id", req.Msg.FromMemberID); err != nil {
		return nil, err
	}
	if err := requireMember(group, "to_member_id", req.Msg.ToMemberID); err != nil {
		return nil, err
	}
	if req.Msg.FromMemberID == req.Msg.ToMemberID {
		return nil, invalidArgument("a member cannot settle with themselves")
	}
	if req.Msg.Amount <= 0 {
		return nil, toConnectError(calculator.ErrInvalidAmount)
	}

	settlement := &models.Settlement{
		GroupID:      group.ID,
		FromMemberID: req.Msg.FromMemberID,
		ToMemberID:   req.Msg.ToMemberID,
		Amount:       req.Msg.Amount,
		Date:         models.FromUnix(req.Msg.Date),
		Note:         req.Msg.Note,
	}
	if err := s.store.CreateSettlements(ctx, []*models.Settlement{settlement}); err != nil {
		slog.Error("RecordSettlement failed", "group_id", group.ID, "error", err)
		return nil, toConnectError(err)
	}

	slog.Info("Settlement recorded", "group_id", group.ID, "settlement_id", settlement.ID)

	return connect.NewResponse(&ledgerapi.RecordSettlementResponse{
		Settlement: toSettlement(group, *settlement),
	}), nil
}

// DeleteSettlement reverses a settlement by removing it from the log.
func (s *LedgerService) DeleteSettlement(ctx context.Context, req *connect.Request[ledgerapi.DeleteSettlementRequest]) (*connect.Response[ledgerapi.DeleteSettlementResponse], error) {
	slog.Info("DeleteSettlement request received", "group_id", req.Msg.GroupID, "settlement_id", req.Msg.SettlementID)

	if err := required("group_id", req.Msg.GroupID); err != nil {
		return nil, err
	}
	if err := required("settlement_id", req.Msg.SettlementID); err != nil {
		return nil, err
	}

	if err := s.store.DeleteSettlement(ctx, req.Msg.GroupID, req.Msg.SettlementID); err != nil {
		slog.Error("DeleteSettlement failed", "settlement_id", req.Msg.SettlementID, "error", err)
		return nil, toConnectError(err)
	}

	slog.Info("Settlement deleted", "settlement_id", req.Msg.SettlementID)

	return connect.NewResponse(&ledgerapi.DeleteSettlementResponse{}), nil
}

// ListSettlements returns a group's settlements, newest first.
func (s *LedgerService) ListSettlements(ctx context.Context, req *connect.Request[ledgerapi.ListSettlementsRequest]) (*connect.Response[ledgerapi.ListSettlementsResponse], error) {
	group, err := s.loadGroup(ctx, req.Msg.GroupID)
	if err != nil {
		return nil, err
	}

	settlements, err := s.store.ListSettlementsByGroup(ctx, group.ID)
	if err != nil {
		slog.Error("ListSettlements failed", "group_id", group.ID, "error", err)
		return nil, toConnectError(err)
	}

	out := make([]ledgerapi.Settlement, len(settlements))
	for i, settlement := range settlements {
		out[i] = toSettlement(group, settlement)
	}

	return connect.NewResponse(&ledgerapi.ListSettlementsResponse{Settlements: out}), nil
}
