package service

import (
	"context"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/splitledger/internal/middleware"
	"github.com/mmynk/splitledger/internal/models"
	"github.com/mmynk/splitledger/pkg/ledgerapi"
)

// deviceID prefers the explicit request field over the X-Device-Id header.
func deviceID(ctx context.Context, fromRequest string) (string, error) {
	id := fromRequest
	if id == "" {
		id = middleware.GetDeviceID(ctx)
	}
	if err := required("device_id", id); err != nil {
		return "", err
	}
	return id, nil
}

// SetCurrentMember remembers which member the device acts as in a group.
func (s *LedgerService) SetCurrentMember(ctx context.Context, req *connect.Request[ledgerapi.SetCurrentMemberRequest]) (*connect.Response[ledgerapi.SetCurrentMemberResponse], error) {
	device, err := deviceID(ctx, req.Msg.DeviceID)
	if err != nil {
		return nil, err
	}
	group, err := s.loadGroup(ctx, req.Msg.GroupID)
	if err != nil {
		return nil, err
	}
	member, ok := group.Member(req.Msg.MemberID)
	if !ok {
		return nil, connect.NewError(connect.CodeNotFound, errMemberNotFound(req.Msg.MemberID))
	}

	session := &models.Session{DeviceID: device, GroupID: group.ID, CurrentMemberID: member.ID}
	if err := s.store.SaveSession(ctx, session); err != nil {
		slog.Error("SetCurrentMember failed", "group_id", group.ID, "error", err)
		return nil, toConnectError(err)
	}

	slog.Info("Current member set", "group_id", group.ID, "device_id", device, "member_id", member.ID)

	return connect.NewResponse(&ledgerapi.SetCurrentMemberResponse{Member: toMember(member)}), nil
}

// GetCurrentMember returns the device's member in a group. The member is nil
// when nothing was selected or the selected member left the group.
func (s *LedgerService) GetCurrentMember(ctx context.Context, req *connect.Request[ledgerapi.GetCurrentMemberRequest]) (*connect.Response[ledgerapi.GetCurrentMemberResponse], error) {
	device, err := deviceID(ctx, req.Msg.DeviceID)
	if err != nil {
		return nil, err
	}
	group, err := s.loadGroup(ctx, req.Msg.GroupID)
	if err != nil {
		return nil, err
	}

	session, err := s.store.LoadSession(ctx, device, group.ID)
	if err != nil {
		slog.Error("GetCurrentMember failed", "group_id", group.ID, "error", err)
		return nil, toConnectError(err)
	}

	resp := &ledgerapi.GetCurrentMemberResponse{}
	if session != nil {
		if member, ok := group.Member(session.CurrentMemberID); ok {
			m := toMember(member)
			resp.Member = &m
		}
	}
	return connect.NewResponse(resp), nil
}
