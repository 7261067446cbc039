package ledgerapi

import (
	"context"
	"strings"

	"connectrpc.com/connect"
)

// LedgerServiceClient is a typed client for the ledger service.
type LedgerServiceClient interface {
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

// NewLedgerServiceClient constructs a client for the service at baseURL,
// e.g. http://localhost:8080.
func NewLedgerServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) LedgerServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = append([]connect.ClientOption{connect.WithCodec(Codec)}, opts...)

	return &ledgerServiceClient{
		createGroup:       connect.NewClient[CreateGroupRequest, CreateGroupResponse](httpClient, baseURL+LedgerServiceCreateGroupProcedure, opts...),
		getGroup:          connect.NewClient[GetGroupRequest, GetGroupResponse](httpClient, baseURL+LedgerServiceGetGroupProcedure, opts...),
		listGroups:        connect.NewClient[ListGroupsRequest, ListGroupsResponse](httpClient, baseURL+LedgerServiceListGroupsProcedure, opts...),
		updateGroup:       connect.NewClient[UpdateGroupRequest, UpdateGroupResponse](httpClient, baseURL+LedgerServiceUpdateGroupProcedure, opts...),
		deleteGroup:       connect.NewClient[DeleteGroupRequest, DeleteGroupResponse](httpClient, baseURL+LedgerServiceDeleteGroupProcedure, opts...),
		addMember:         connect.NewClient[AddMemberRequest, AddMemberResponse](httpClient, baseURL+LedgerServiceAddMemberProcedure, opts...),
		updateMember:      connect.NewClient[UpdateMemberRequest, UpdateMemberResponse](httpClient, baseURL+LedgerServiceUpdateMemberProcedure, opts...),
		listCategories:    connect.NewClient[ListCategoriesRequest, ListCategoriesResponse](httpClient, baseURL+LedgerServiceListCategoriesProcedure, opts...),
		addCategory:       connect.NewClient[AddCategoryRequest, AddCategoryResponse](httpClient, baseURL+LedgerServiceAddCategoryProcedure, opts...),
		updateCategory:    connect.NewClient[UpdateCategoryRequest, UpdateCategoryResponse](httpClient, baseURL+LedgerServiceUpdateCategoryProcedure, opts...),
		deleteCategory:    connect.NewClient[DeleteCategoryRequest, DeleteCategoryResponse](httpClient, baseURL+LedgerServiceDeleteCategoryProcedure, opts...),
		previewSplits:     connect.NewClient[PreviewSplitsRequest, PreviewSplitsResponse](httpClient, baseURL+LedgerServicePreviewSplitsProcedure, opts...),
		createExpense:     connect.NewClient[CreateExpenseRequest, CreateExpenseResponse](httpClient, baseURL+LedgerServiceCreateExpenseProcedure, opts...),
		updateExpense:     connect.NewClient[UpdateExpenseRequest, UpdateExpenseResponse](httpClient, baseURL+LedgerServiceUpdateExpenseProcedure, opts...),
		deleteExpense:     connect.NewClient[DeleteExpenseRequest, DeleteExpenseResponse](httpClient, baseURL+LedgerServiceDeleteExpenseProcedure, opts...),
		listExpenses:      connect.NewClient[ListExpensesRequest, ListExpensesResponse](httpClient, baseURL+LedgerServiceListExpensesProcedure, opts...),
		recordSettlement:  connect.NewClient[RecordSettlementRequest, RecordSettlementResponse](httpClient, baseURL+LedgerServiceRecordSettlementProcedure, opts...),
		deleteSettlement:  connect.NewClient[DeleteSettlementRequest, DeleteSettlementResponse](httpClient, baseURL+LedgerServiceDeleteSettlementProcedure, opts...),
		listSettlements:   connect.NewClient[ListSettlementsRequest, ListSettlementsResponse](httpClient, baseURL+LedgerServiceListSettlementsProcedure, opts...),
		getBalances:       connect.NewClient[GetBalancesRequest, GetBalancesResponse](httpClient, baseURL+LedgerServiceGetBalancesProcedure, opts...),
		settleAll:         connect.NewClient[SettleAllRequest, SettleAllResponse](httpClient, baseURL+LedgerServiceSettleAllProcedure, opts...),
		getSpendingReport: connect.NewClient[GetSpendingReportRequest, GetSpendingReportResponse](httpClient, baseURL+LedgerServiceGetSpendingReportProcedure, opts...),
		setCurrentMember:  connect.NewClient[SetCurrentMemberRequest, SetCurrentMemberResponse](httpClient, baseURL+LedgerServiceSetCurrentMemberProcedure, opts...),
		getCurrentMember:  connect.NewClient[GetCurrentMemberRequest, GetCurrentMemberResponse](httpClient, baseURL+LedgerServiceGetCurrentMemberProcedure, opts...),
	}
}

type ledgerServiceClient struct {
	createGroup       *connect.Client[CreateGroupRequest, CreateGroupResponse]
	getGroup          *connect.Client[GetGroupRequest, GetGroupResponse]
	listGroups        *connect.Client[ListGroupsRequest, ListGroupsResponse]
	updateGroup       *connect.Client[UpdateGroupRequest, UpdateGroupResponse]
	deleteGroup       *connect.Client[DeleteGroupRequest, DeleteGroupResponse]
	addMember         *connect.Client[AddMemberRequest, AddMemberResponse]
	updateMember      *connect.Client[UpdateMemberRequest, UpdateMemberResponse]
	listCategories    *connect.Client[ListCategoriesRequest, ListCategoriesResponse]
	addCategory       *connect.Client[AddCategoryRequest, AddCategoryResponse]
	updateCategory    *connect.Client[UpdateCategoryRequest, UpdateCategoryResponse]
	deleteCategory    *connect.Client[DeleteCategoryRequest, DeleteCategoryResponse]
	previewSplits     *connect.Client[PreviewSplitsRequest, PreviewSplitsResponse]
	createExpense     *connect.Client[CreateExpenseRequest, CreateExpenseResponse]
	updateExpense     *connect.Client[UpdateExpenseRequest, UpdateExpenseResponse]
	deleteExpense     *connect.Client[DeleteExpenseRequest, DeleteExpenseResponse]
	listExpenses      *connect.Client[ListExpensesRequest, ListExpensesResponse]
	recordSettlement  *connect.Client[RecordSettlementRequest, RecordSettlementResponse]
	deleteSettlement  *connect.Client[DeleteSettlementRequest, DeleteSettlementResponse]
	listSettlements   *connect.Client[ListSettlementsRequest, ListSettlementsResponse]
	getBalances       *connect.Client[GetBalancesRequest, GetBalancesResponse]
	settleAll         *connect.Client[SettleAllRequest, SettleAllResponse]
	getSpendingReport *connect.Client[GetSpendingReportRequest, GetSpendingReportResponse]
	setCurrentMember  *connect.Client[SetCurrentMemberRequest, SetCurrentMemberResponse]
	getCurrentMember  *connect.Client[GetCurrentMemberRequest, GetCurrentMemberResponse]
}

func (c *ledgerServiceClient) CreateGroup(ctx context.Context, req *connect.Request[CreateGroupRequest]) (*connect.Response[CreateGroupResponse], error) {
	return c.createGroup.CallUnary(ctx, req)
}

func (c *ledgerServiceClient) GetGroup(ctx context.Context, req *connect.Request[GetGroupRequest]) (*connect.Response[GetGroupResponse], error) {
	return c.getGroup.CallUnary(ctx, req)
}

func (c *ledgerServiceClient) ListGroups(ctx context.Context, req *connect.Request[ListGroupsRequest]) (*connect.Response[ListGroupsResponse], error) {
	return c.listGroups.CallUnary(ctx, req)
}

func (c *ledgerServiceClient) UpdateGroup(ctx context.Context, req *connect.Request[UpdateGroupRequest]) (*connect.Response[UpdateGroupResponse], error) {
	return c.updateGroup.CallUnary(ctx, req)
}

func (c *ledgerServiceClient) DeleteGroup(ctx context.Context, req *connect.Request[DeleteGroupRequest]) (*connect.Response[DeleteGroupResponse], error) {
	return c.deleteGroup.CallUnary(ctx, req)
}

func (c *ledgerServiceClient) AddMember(ctx context.Context, req *connect.Request[AddMemberRequest]) (*connect.Response[AddMemberResponse], error) {
	return c.addMember.CallUnary(ctx, req)
}

func (c *ledgerServiceClient) UpdateMember(ctx context.Context, req *connect.Request[UpdateMemberRequest]) (*connect.Response[UpdateMemberResponse], error) {
	return c.updateMember.CallUnary(ctx, req)
}

func (c *ledgerServiceClient) ListCategories(ctx context.Context, req *connect.Request[ListCategoriesRequest]) (*connect.Response[ListCategoriesResponse], error) {
	return c.listCategories.CallUnary(ctx, req)
}

func (c *ledgerServiceClient) AddCategory(ctx context.Context, req *connect.Request[AddCategoryRequest]) (*connect.Response[AddCategoryResponse], error) {
	return c.addCategory.CallUnary(ctx, req)
}

func (c *ledgerServiceClient) UpdateCategory(ctx context.Context, req *connect.Request[UpdateCategoryRequest]) (*connect.Response[UpdateCategoryResponse], error) {
	return c.updateCategory.CallUnary(ctx, req)
}

func (c *ledgerServiceClient) DeleteCategory(ctx context.Context, req *connect.Request[DeleteCategoryRequest]) (*connect.Response[DeleteCategoryResponse], error) {
	return c.deleteCategory.CallUnary(ctx, req)
}

func (c *ledgerServiceClient) PreviewSplits(ctx context.Context, req *connect.Request[PreviewSplitsRequest]) (*connect.Response[PreviewSplitsResponse], error) {
	return c.previewSplits.CallUnary(ctx, req)
}

func (c *ledgerServiceClient) CreateExpense(ctx context.Context, req *connect.Request[CreateExpenseRequest]) (*connect.Response[CreateExpenseResponse], error) {
	return c.createExpense.CallUnary(ctx, req)
}

func (c *ledgerServiceClient) UpdateExpense(ctx context.Context, req *connect.Request[UpdateExpenseRequest]) (*connect.Response[UpdateExpenseResponse], error) {
	return c.updateExpense.CallUnary(ctx, req)
}

func (c *ledgerServiceClient) DeleteExpense(ctx context.Context, req *connect.Request[DeleteExpenseRequest]) (*connect.Response[DeleteExpenseResponse], error) {
	return c.deleteExpense.CallUnary(ctx, req)
}

func (c *ledgerServiceClient) ListExpenses(ctx context.Context, req *connect.Request[ListExpensesRequest]) (*connect.Response[ListExpensesResponse], error) {
	return c.listExpenses.CallUnary(ctx, req)
}

func (c *ledgerServiceClient) RecordSettlement(ctx context.Context, req *connect.Request[RecordSettlementRequest]) (*connect.Response[RecordSettlementResponse], error) {
	return c.recordSettlement.CallUnary(ctx, req)
}

func (c *ledgerServiceClient) DeleteSettlement(ctx context.Context, req *connect.Request[DeleteSettlementRequest]) (*connect.Response[DeleteSettlementResponse], error) {
	return c.deleteSettlement.CallUnary(ctx, req)
}

func (c *ledgerServiceClient) ListSettlements(ctx context.Context, req *connect.Request[ListSettlementsRequest]) (*connect.Response[ListSettlementsResponse], error) {
	return c.listSettlements.CallUnary(ctx, req)
}

func (c *ledgerServiceClient) GetBalances(ctx context.Context, req *connect.Request[GetBalancesRequest]) (*connect.Response[GetBalancesResponse], error) {
	return c.getBalances.CallUnary(ctx, req)
}

func (c *ledgerServiceClient) SettleAll(ctx context.Context, req *connect.Request[SettleAllRequest]) (*connect.Response[SettleAllResponse], error) {
	return c.settleAll.CallUnary(ctx, req)
}

func (c *ledgerServiceClient) GetSpendingReport(ctx context.Context, req *connect.Request[GetSpendingReportRequest]) (*connect.Response[GetSpendingReportResponse], error) {
	return c.getSpendingReport.CallUnary(ctx, req)
}

func (c *ledgerServiceClient) SetCurrentMember(ctx context.Context, req *connect.Request[SetCurrentMemberRequest]) (*connect.Response[SetCurrentMemberResponse], error) {
	return c.setCurrentMember.CallUnary(ctx, req)
}

func (c *ledgerServiceClient) GetCurrentMember(ctx context.Context, req *connect.Request[GetCurrentMemberRequest]) (*connect.Response[GetCurrentMemberResponse], error) {
	return c.getCurrentMember.CallUnary(ctx, req)
}
