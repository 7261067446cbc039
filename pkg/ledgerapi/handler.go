package ledgerapi

import (
	"context"
	"net/http"

	"connectrpc.com/connect"
)

// LedgerServiceName is the fully-qualified name of the ledger service.
const LedgerServiceName = "splitledger.v1.LedgerService"

// Procedure paths, usable as HTTP routes.
const (
	LedgerServiceCreateGroupProcedure       = "/" + LedgerServiceName + "/CreateGroup"
	LedgerServiceGetGroupProcedure          = "/" + LedgerServiceName + "/GetGroup"
	LedgerServiceListGroupsProcedure        = "/" + LedgerServiceName + "/ListGroups"
	LedgerServiceUpdateGroupProcedure       = "/" + LedgerServiceName + "/UpdateGroup"
	LedgerServiceDeleteGroupProcedure       = "/" + LedgerServiceName + "/DeleteGroup"
	LedgerServiceAddMemberProcedure         = "/" + LedgerServiceName + "/AddMember"
	LedgerServiceUpdateMemberProcedure      = "/" + LedgerServiceName + "/UpdateMember"
	LedgerServiceListCategoriesProcedure    = "/" + LedgerServiceName + "/ListCategories"
	LedgerServiceAddCategoryProcedure       = "/" + LedgerServiceName + "/AddCategory"
	LedgerServiceUpdateCategoryProcedure    = "/" + LedgerServiceName + "/UpdateCategory"
	LedgerServiceDeleteCategoryProcedure    = "/" + LedgerServiceName + "/DeleteCategory"
	LedgerServicePreviewSplitsProcedure     = "/" + LedgerServiceName + "/PreviewSplits"
	LedgerServiceCreateExpenseProcedure     = "/" + LedgerServiceName + "/CreateExpense"
	LedgerServiceUpdateExpenseProcedure     = "/" + LedgerServiceName + "/UpdateExpense"
	LedgerServiceDeleteExpenseProcedure     = "/" + LedgerServiceName + "/DeleteExpense"
	LedgerServiceListExpensesProcedure      = "/" + LedgerServiceName + "/ListExpenses"
	LedgerServiceRecordSettlementProcedure  = "/" + LedgerServiceName + "/RecordSettlement"
	LedgerServiceDeleteSettlementProcedure  = "/" + LedgerServiceName + "/DeleteSettlement"
	LedgerServiceListSettlementsProcedure   = "/" + LedgerServiceName + "/ListSettlements"
	LedgerServiceGetBalancesProcedure       = "/" + LedgerServiceName + "/GetBalances"
	LedgerServiceSettleAllProcedure         = "/" + LedgerServiceName + "/SettleAll"
	LedgerServiceGetSpendingReportProcedure = "/" + LedgerServiceName + "/GetSpendingReport"
	LedgerServiceSetCurrentMemberProcedure  = "/" + LedgerServiceName + "/SetCurrentMember"
	LedgerServiceGetCurrentMemberProcedure  = "/" + LedgerServiceName + "/GetCurrentMember"
)

// LedgerServiceHandler is implemented by the ledger service.
type LedgerServiceHandler interface {
	CreateGroup(context.Context, *connect.Request[CreateGroupRequest]) (*connect.Response[CreateGroupResponse], error)
	GetGroup(context.Context, *connect.Request[GetGroupRequest]) (*connect.Response[GetGroupResponse], error)
	ListGroups(context.Context, *connect.Request[ListGroupsRequest]) (*connect.Response[ListGroupsResponse], error)
	UpdateGroup(context.Context, *connect.Request[UpdateGroupRequest]) (*connect.Response[UpdateGroupResponse], error)
	DeleteGroup(context.Context, *connect.Request[DeleteGroupRequest]) (*connect.Response[DeleteGroupResponse], error)
	AddMember(context.Context, *connect.Request[AddMemberRequest]) (*connect.Response[AddMemberResponse], error)
	UpdateMember(context.Context, *connect.Request[UpdateMemberRequest]) (*connect.Response[UpdateMemberResponse], error)
	ListCategories(context.Context, *connect.Request[ListCategoriesRequest]) (*connect.Response[ListCategoriesResponse], error)
	AddCategory(context.Context, *connect.Request[AddCategoryRequest]) (*connect.Response[AddCategoryResponse], error)
	UpdateCategory(context.Context, *connect.Request[UpdateCategoryRequest]) (*connect.Response[UpdateCategoryResponse], error)
	DeleteCategory(context.Context, *connect.Request[DeleteCategoryRequest]) (*connect.Response[DeleteCategoryResponse], error)
	PreviewSplits(context.Context, *connect.Request[PreviewSplitsRequest]) (*connect.Response[PreviewSplitsResponse], error)
	CreateExpense(context.Context, *connect.Request[CreateExpenseRequest]) (*connect.Response[CreateExpenseResponse], error)
	UpdateExpense(context.Context, *connect.Request[UpdateExpenseRequest]) (*connect.Response[UpdateExpenseResponse], error)
	DeleteExpense(context.Context, *connect.Request[DeleteExpenseRequest]) (*connect.Response[DeleteExpenseResponse], error)
	ListExpenses(context.Context, *connect.Request[ListExpensesRequest]) (*connect.Response[ListExpensesResponse], error)
	RecordSettlement(context.Context, *connect.Request[RecordSettlementRequest]) (*connect.Response[RecordSettlementResponse], error)
	DeleteSettlement(context.Context, *connect.Request[DeleteSettlementRequest]) (*connect.Response[DeleteSettlementResponse], error)
	ListSettlements(context.Context, *connect.Request[ListSettlementsRequest]) (*connect.Response[ListSettlementsResponse], error)
	GetBalances(context.Context, *connect.Request[GetBalancesRequest]) (*connect.Response[GetBalancesResponse], error)
	SettleAll(context.Context, *connect.Request[SettleAllRequest]) (*connect.Response[SettleAllResponse], error)
	GetSpendingReport(context.Context, *connect.Request[GetSpendingReportRequest]) (*connect.Response[GetSpendingReportResponse], error)
	SetCurrentMember(context.Context, *connect.Request[SetCurrentMemberRequest]) (*connect.Response[SetCurrentMemberResponse], error)
	GetCurrentMember(context.Context, *connect.Request[GetCurrentMemberRequest]) (*connect.Response[GetCurrentMemberResponse], error)
}

// NewLedgerServiceHandler builds an HTTP handler for every procedure of svc.
// It returns the path prefix to mount the handler on.
func NewLedgerServiceHandler(svc LedgerServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{connect.WithCodec(Codec)}, opts...)

	routes := map[string]http.Handler{
		LedgerServiceCreateGroupProcedure:       connect.NewUnaryHandler(LedgerServiceCreateGroupProcedure, svc.CreateGroup, opts...),
		LedgerServiceGetGroupProcedure:          connect.NewUnaryHandler(LedgerServiceGetGroupProcedure, svc.GetGroup, opts...),
		LedgerServiceListGroupsProcedure:        connect.NewUnaryHandler(LedgerServiceListGroupsProcedure, svc.ListGroups, opts...),
		LedgerServiceUpdateGroupProcedure:       connect.NewUnaryHandler(LedgerServiceUpdateGroupProcedure, svc.UpdateGroup, opts...),
		LedgerServiceDeleteGroupProcedure:       connect.NewUnaryHandler(LedgerServiceDeleteGroupProcedure, svc.DeleteGroup, opts...),
		LedgerServiceAddMemberProcedure:         connect.NewUnaryHandler(LedgerServiceAddMemberProcedure, svc.AddMember, opts...),
		LedgerServiceUpdateMemberProcedure:      connect.NewUnaryHandler(LedgerServiceUpdateMemberProcedure, svc.UpdateMember, opts...),
		LedgerServiceListCategoriesProcedure:    connect.NewUnaryHandler(LedgerServiceListCategoriesProcedure, svc.ListCategories, opts...),
		LedgerServiceAddCategoryProcedure:       connect.NewUnaryHandler(LedgerServiceAddCategoryProcedure, svc.AddCategory, opts...),
		LedgerServiceUpdateCategoryProcedure:    connect.NewUnaryHandler(LedgerServiceUpdateCategoryProcedure, svc.UpdateCategory, opts...),
		LedgerServiceDeleteCategoryProcedure:    connect.NewUnaryHandler(LedgerServiceDeleteCategoryProcedure, svc.DeleteCategory, opts...),
		LedgerServicePreviewSplitsProcedure:     connect.NewUnaryHandler(LedgerServicePreviewSplitsProcedure, svc.PreviewSplits, opts...),
		LedgerServiceCreateExpenseProcedure:     connect.NewUnaryHandler(LedgerServiceCreateExpenseProcedure, svc.CreateExpense, opts...),
		LedgerServiceUpdateExpenseProcedure:     connect.NewUnaryHandler(LedgerServiceUpdateExpenseProcedure, svc.UpdateExpense, opts...),
		LedgerServiceDeleteExpenseProcedure:     connect.NewUnaryHandler(LedgerServiceDeleteExpenseProcedure, svc.DeleteExpense, opts...),
		LedgerServiceListExpensesProcedure:      connect.NewUnaryHandler(LedgerServiceListExpensesProcedure, svc.ListExpenses, opts...),
		LedgerServiceRecordSettlementProcedure:  connect.NewUnaryHandler(LedgerServiceRecordSettlementProcedure, svc.RecordSettlement, opts...),
		LedgerServiceDeleteSettlementProcedure:  connect.NewUnaryHandler(LedgerServiceDeleteSettlementProcedure, svc.DeleteSettlement, opts...),
		LedgerServiceListSettlementsProcedure:   connect.NewUnaryHandler(LedgerServiceListSettlementsProcedure, svc.ListSettlements, opts...),
		LedgerServiceGetBalancesProcedure:       connect.NewUnaryHandler(LedgerServiceGetBalancesProcedure, svc.GetBalances, opts...),
		LedgerServiceSettleAllProcedure:         connect.NewUnaryHandler(LedgerServiceSettleAllProcedure, svc.SettleAll, opts...),
		LedgerServiceGetSpendingReportProcedure: connect.NewUnaryHandler(LedgerServiceGetSpendingReportProcedure, svc.GetSpendingReport, opts...),
		LedgerServiceSetCurrentMemberProcedure:  connect.NewUnaryHandler(LedgerServiceSetCurrentMemberProcedure, svc.SetCurrentMember, opts...),
		LedgerServiceGetCurrentMemberProcedure:  connect.NewUnaryHandler(LedgerServiceGetCurrentMemberProcedure, svc.GetCurrentMember, opts...),
	}

	return "/" + LedgerServiceName + "/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		handler, ok := routes[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		handler.ServeHTTP(w, r)
	})
}
