package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/splitledger/internal/models"
	"github.com/mmynk/splitledger/internal/storage"
	"github.com/mmynk/splitledger/pkg/ledgerapi"
)

// CreateGroup creates a new group. Members get palette colors in order and
// the default categories are seeded unless disabled.
func (s *LedgerService) CreateGroup(ctx context.Context, req *connect.Request[ledgerapi.CreateGroupRequest]) (*connect.Response[ledgerapi.CreateGroupResponse], error) {
	slog.Info("CreateGroup request received",
		"name", req.Msg.Name,
		"members_count", len(req.Msg.Members),
	)

	name := strings.TrimSpace(req.Msg.Name)
	if name == "" {
		return nil, invalidArgument("name required")
	}

	group := &models.Group{Name: name, Color: req.Msg.Color}
	for i, memberName := range req.Msg.Members {
		memberName = strings.TrimSpace(memberName)
		if memberName == "" {
			return nil, invalidArgument("member %d has an empty name", i)
		}
		group.Members = append(group.Members, models.Member{
			Name:  memberName,
			Color: models.MemberColor(i),
		})
	}
	if s.defaultCategories {
		group.Categories = models.DefaultCategories()
	}

	// Save to storage (generates IDs and timestamps)
	if err := s.store.CreateGroup(ctx, group); err != nil {
		slog.Error("CreateGroup failed", "error", err)
		return nil, toConnectError(err)
	}

	slog.Info("Group created", "group_id", group.ID)

	return connect.NewResponse(&ledgerapi.CreateGroupResponse{Group: toGroup(group)}), nil
}

// GetGroup retrieves a group by ID.
func (s *LedgerService) GetGroup(ctx context.Context, req *connect.Request[ledgerapi.GetGroupRequest]) (*connect.Response[ledgerapi.GetGroupResponse], error) {
	slog.Info("GetGroup request received", "group_id", req.Msg.GroupID)

	group, err := s.loadGroup(ctx, req.Msg.GroupID)
	if err != nil {
		return nil, err
	}

	return connect.NewResponse(&ledgerapi.GetGroupResponse{Group: toGroup(group)}), nil
}

// ListGroups retrieves all groups.
func (s *LedgerService) ListGroups(ctx context.Context, req *connect.Request[ledgerapi.ListGroupsRequest]) (*connect.Response[ledgerapi.ListGroupsResponse], error) {
	slog.Info("ListGroups request received")

	groups, err := s.store.ListGroups(ctx)
	if err != nil {
		slog.Error("ListGroups failed", "error", err)
		return nil, toConnectError(err)
	}

	out := make([]ledgerapi.Group, len(groups))
	for i, group := range groups {
		out[i] = toGroup(group)
	}

	slog.Info("ListGroups successful", "count", len(groups))

	return connect.NewResponse(&ledgerapi.ListGroupsResponse{Groups: out}), nil
}

// UpdateGroup renames a group and sets its color.
func (s *LedgerService) UpdateGroup(ctx context.Context, req *connect.Request[ledgerapi.UpdateGroupRequest]) (*connect.Response[ledgerapi.UpdateGroupResponse], error) {
	slog.Info("UpdateGroup request received", "group_id", req.Msg.GroupID, "name", req.Msg.Name)

	group, err := s.loadGroup(ctx, req.Msg.GroupID)
	if err != nil {
		return nil, err
	}
	if err := required("name", req.Msg.Name); err != nil {
		return nil, err
	}

	group.Name = strings.TrimSpace(req.Msg.Name)
	group.Color = req.Msg.Color

	if err := s.store.UpdateGroup(ctx, group); err != nil {
		slog.Error("UpdateGroup failed", "group_id", group.ID, "error", err)
		return nil, toConnectError(err)
	}

	// Reload for the new updated_at.
	updated, err := s.loadGroup(ctx, group.ID)
	if err != nil {
		return nil, err
	}

	slog.Info("Group updated", "group_id", group.ID)

	return connect.NewResponse(&ledgerapi.UpdateGroupResponse{Group: toGroup(updated)}), nil
}

// DeleteGroup removes a group together with its expenses, settlements and
// device sessions.
func (s *LedgerService) DeleteGroup(ctx context.Context, req *connect.Request[ledgerapi.DeleteGroupRequest]) (*connect.Response[ledgerapi.DeleteGroupResponse], error) {
	slog.Info("DeleteGroup request received", "group_id", req.Msg.GroupID)

	if err := required("group_id", req.Msg.GroupID); err != nil {
		return nil, err
	}
	if err := s.store.DeleteGroup(ctx, req.Msg.GroupID); err != nil {
		slog.Error("DeleteGroup failed", "group_id", req.Msg.GroupID, "error", err)
		return nil, toConnectError(err)
	}

	slog.Info("Group deleted", "group_id", req.Msg.GroupID)

	return connect.NewResponse(&ledgerapi.DeleteGroupResponse{}), nil
}

// AddMember appends a member to a group.
func (s *LedgerService) AddMember(ctx context.Context, req *connect.Request[ledgerapi.AddMemberRequest]) (*connect.Response[ledgerapi.AddMemberResponse], error) {
	slog.Info("AddMember request received", "group_id", req.Msg.GroupID, "name", req.Msg.Name)

	group, err := s.loadGroup(ctx, req.Msg.GroupID)
	if err != nil {
		return nil, err
	}
	if err := required("name", req.Msg.Name); err != nil {
		return nil, err
	}

	member := &models.Member{
		Name:  strings.TrimSpace(req.Msg.Name),
		Color: req.Msg.Color,
	}
	if member.Color == "" {
		member.Color = models.MemberColor(len(group.Members))
	}

	if err := s.store.AddMember(ctx, group.ID, member); err != nil {
		slog.Error("AddMember failed", "group_id", group.ID, "error", err)
		return nil, toConnectError(err)
	}

	slog.Info("Member added", "group_id", group.ID, "member_id", member.ID)

	return connect.NewResponse(&ledgerapi.AddMemberResponse{Member: toMember(*member)}), nil
}

// UpdateMember renames or recolors a member. Ids never change, so every
// expense and settlement keeps pointing at the member.
func (s *LedgerService) UpdateMember(ctx context.Context, req *connect.Request[ledgerapi.UpdateMemberRequest]) (*connect.Response[ledgerapi.UpdateMemberResponse], error) {
	slog.Info("UpdateMember request received", "group_id", req.Msg.GroupID, "member_id", req.Msg.MemberID)

	group, err := s.loadGroup(ctx, req.Msg.GroupID)
	if err != nil {
		return nil, err
	}
	member, ok := group.Member(req.Msg.MemberID)
	if !ok {
		return nil, connect.NewError(connect.CodeNotFound, errMemberNotFound(req.Msg.MemberID))
	}
	if err := required("name", req.Msg.Name); err != nil {
		return nil, err
	}

	member.Name = strings.TrimSpace(req.Msg.Name)
	if req.Msg.Color != "" {
		member.Color = req.Msg.Color
	}

	if err := s.store.UpdateMember(ctx, group.ID, &member); err != nil {
		slog.Error("UpdateMember failed", "group_id", group.ID, "member_id", member.ID, "error", err)
		return nil, toConnectError(err)
	}

	slog.Info("Member updated", "group_id", group.ID, "member_id", member.ID)

	return connect.NewResponse(&ledgerapi.UpdateMemberResponse{Member: toMember(member)}), nil
}

// ListCategories returns a group's categories, defaults first.
func (s *LedgerService) ListCategories(ctx context.Context, req *connect.Request[ledgerapi.ListCategoriesRequest]) (*connect.Response[ledgerapi.ListCategoriesResponse], error) {
	group, err := s.loadGroup(ctx, req.Msg.GroupID)
	if err != nil {
		return nil, err
	}
	return connect.NewResponse(&ledgerapi.ListCategoriesResponse{Categories: toCategories(group.Categories)}), nil
}

// AddCategory adds a custom category to a group.
func (s *LedgerService) AddCategory(ctx context.Context, req *connect.Request[ledgerapi.AddCategoryRequest]) (*connect.Response[ledgerapi.AddCategoryResponse], error) {
	slog.Info("AddCategory request received", "group_id", req.Msg.GroupID, "name", req.Msg.Name)

	group, err := s.loadGroup(ctx, req.Msg.GroupID)
	if err != nil {
		return nil, err
	}
	if err := required("name", req.Msg.Name); err != nil {
		return nil, err
	}

	category := &models.Category{
		Name:  strings.TrimSpace(req.Msg.Name),
		Icon:  req.Msg.Icon,
		Color: req.Msg.Color,
	}
	if err := s.store.AddCategory(ctx, group.ID, category); err != nil {
		slog.Error("AddCategory failed", "group_id", group.ID, "error", err)
		return nil, toConnectError(err)
	}

	return connect.NewResponse(&ledgerapi.AddCategoryResponse{Category: toCategory(*category)}), nil
}

func findCategory(group *models.Group, categoryID string) (models.Category, bool) {
	for _, c := range group.Categories {
		if c.ID == categoryID {
			return c, true
		}
	}
	return models.Category{}, false
}

// UpdateCategory edits a category. Empty icon or color keep the current value.
func (s *LedgerService) UpdateCategory(ctx context.Context, req *connect.Request[ledgerapi.UpdateCategoryRequest]) (*connect.Response[ledgerapi.UpdateCategoryResponse], error) {
	slog.Info("UpdateCategory request received", "group_id", req.Msg.GroupID, "category_id", req.Msg.CategoryID)

	group, err := s.loadGroup(ctx, req.Msg.GroupID)
	if err != nil {
		return nil, err
	}
	category, ok := findCategory(group, req.Msg.CategoryID)
	if !ok {
		return nil, connect.NewError(connect.CodeNotFound, fmt.Errorf("category %s: %w", req.Msg.CategoryID, storage.ErrNotFound))
	}
	if err := required("name", req.Msg.Name); err != nil {
		return nil, err
	}

	category.Name = strings.TrimSpace(req.Msg.Name)
	if req.Msg.Icon != "" {
		category.Icon = req.Msg.Icon
	}
	if req.Msg.Color != "" {
		category.Color = req.Msg.Color
	}

	if err := s.store.UpdateCategory(ctx, group.ID, &category); err != nil {
		slog.Error("UpdateCategory failed", "group_id", group.ID, "category_id", category.ID, "error", err)
		return nil, toConnectError(err)
	}

	return connect.NewResponse(&ledgerapi.UpdateCategoryResponse{Category: toCategory(category)}), nil
}

// DeleteCategory removes a category, default or custom. Expenses filed under
// it stay in the ledger without a category.
func (s *LedgerService) DeleteCategory(ctx context.Context, req *connect.Request[ledgerapi.DeleteCategoryRequest]) (*connect.Response[ledgerapi.DeleteCategoryResponse], error) {
	slog.Info("DeleteCategory request received", "group_id", req.Msg.GroupID, "category_id", req.Msg.CategoryID)

	group, err := s.loadGroup(ctx, req.Msg.GroupID)
	if err != nil {
		return nil, err
	}
	if err := required("category_id", req.Msg.CategoryID); err != nil {
		return nil, err
	}

	if err := s.store.DeleteCategory(ctx, group.ID, req.Msg.CategoryID); err != nil {
		slog.Error("DeleteCategory failed", "group_id", group.ID, "category_id", req.Msg.CategoryID, "error", err)
		return nil, toConnectError(err)
	}

	slog.Info("Category deleted", "group_id", group.ID, "category_id", req.Msg.CategoryID)

	return connect.NewResponse(&ledgerapi.DeleteCategoryResponse{}), nil
}
