// Package ledgerapi defines the wire surface of the ledger service:
// request and response messages, the JSON codec, the handler constructor
// and a typed client.
//
// Amounts travel as JSON numbers with two decimals and are held as
// money.Cents. Timestamps are Unix seconds; 0 means "not set" and is
// resolved to the server clock on write.
package ledgerapi

import "github.com/mmynk/splitledger/internal/money"

type Member struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Color     string `json:"color"`
	CreatedAt int64  `json:"created_at"`
}

type Category struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Icon      string `json:"icon"`
	Color     string `json:"color"`
	IsDefault bool   `json:"is_default"`
}

type Group struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Color      string     `json:"color"`
	Members    []Member   `json:"members"`
	Categories []Category `json:"categories"`
	CreatedAt  int64      `json:"created_at"`
	UpdatedAt  int64      `json:"updated_at"`
}

type Split struct {
	MemberID   string      `json:"member_id"`
	MemberName string      `json:"member_name,omitempty"`
	Amount     money.Cents `json:"amount"`

	// Percentage is set for percentage splits only.
	Percentage string `json:"percentage,omitempty"`
}

type Expense struct {
	ID                string      `json:"id"`
	GroupID           string      `json:"group_id"`
	Description       string      `json:"description"`
	Amount            money.Cents `json:"amount"`
	Date              int64       `json:"date"`
	PaidByMemberID    string      `json:"paid_by_member_id"`
	PaidByName        string      `json:"paid_by_name"`
	CategoryID        string      `json:"category_id,omitempty"`
	CreatedByMemberID string      `json:"created_by_member_id,omitempty"`
	Type              string      `json:"type"`
	SplitMethod       string      `json:"split_method,omitempty"`
	IsIncome          bool        `json:"is_income,omitempty"`
	IsSettlement      bool        `json:"is_settlement,omitempty"`
	Splits            []Split     `json:"splits"`
	CreatedAt         int64       `json:"created_at"`
	UpdatedAt         int64       `json:"updated_at"`
}

type Settlement struct {
	ID           string      `json:"id"`
	GroupID      string      `json:"group_id"`
	FromMemberID string      `json:"from_member_id"`
	FromName     string      `json:"from_name"`
	ToMemberID   string      `json:"to_member_id"`
	ToName       string      `json:"to_name"`
	Amount       money.Cents `json:"amount"`
	Date         int64       `json:"date"`
	CreatedAt    int64       `json:"created_at"`
	Note         string      `json:"note,omitempty"`
}

// Debt is a suggested transfer.
type Debt struct {
	FromMemberID string      `json:"from_member_id"`
	FromName     string      `json:"from_name"`
	ToMemberID   string      `json:"to_member_id"`
	ToName       string      `json:"to_name"`
	Amount       money.Cents `json:"amount"`
}

// MemberBalance carries a member's net balance and spending breakdown.
type MemberBalance struct {
	MemberID      string      `json:"member_id"`
	Name          string      `json:"name"`
	Balance       money.Cents `json:"balance"`
	Orphaned      bool        `json:"orphaned,omitempty"`
	Personal      money.Cents `json:"personal"`
	SharedQuota   money.Cents `json:"shared_quota"`
	TotalSpending money.Cents `json:"total_spending"`
}

type CreateGroupRequest struct {
	Name    string   `json:"name"`
	Color   string   `json:"color,omitempty"`
	Members []string `json:"members"`
}

type CreateGroupResponse struct {
	Group Group `json:"group"`
}

type GetGroupRequest struct {
	GroupID string `json:"group_id"`
}

type GetGroupResponse struct {
	Group Group `json:"group"`
}

type ListGroupsRequest struct{}

type ListGroupsResponse struct {
	Groups []Group `json:"groups"`
}

// UpdateGroupRequest renames or recolors a group. Empty Color clears it.
type UpdateGroupRequest struct {
	GroupID string `json:"group_id"`
	Name    string `json:"name"`
	Color   string `json:"color,omitempty"`
}

type UpdateGroupResponse struct {
	Group Group `json:"group"`
}

// DeleteGroupRequest removes a group with everything it owns.
type DeleteGroupRequest struct {
	GroupID string `json:"group_id"`
}

type DeleteGroupResponse struct{}

type AddMemberRequest struct {
	GroupID string `json:"group_id"`
	Name    string `json:"name"`
	Color   string `json:"color,omitempty"`
}

type AddMemberResponse struct {
	Member Member `json:"member"`
}

type UpdateMemberRequest struct {
	GroupID  string `json:"group_id"`
	MemberID string `json:"member_id"`
	Name     string `json:"name"`
	Color    string `json:"color,omitempty"`
}

type UpdateMemberResponse struct {
	Member Member `json:"member"`
}

type ListCategoriesRequest struct {
	GroupID string `json:"group_id"`
}

type ListCategoriesResponse struct {
	Categories []Category `json:"categories"`
}

type AddCategoryRequest struct {
	GroupID string `json:"group_id"`
	Name    string `json:"name"`
	Icon    string `json:"icon,omitempty"`
	Color   string `json:"color,omitempty"`
}

type AddCategoryResponse struct {
	Category Category `json:"category"`
}

type UpdateCategoryRequest struct {
	GroupID    string `json:"group_id"`
	CategoryID string `json:"category_id"`
	Name       string `json:"name"`
	Icon       string `json:"icon,omitempty"`
	Color      string `json:"color,omitempty"`
}

type UpdateCategoryResponse struct {
	Category Category `json:"category"`
}

// DeleteCategoryRequest removes a category. Expenses that used it become
// uncategorized.
type DeleteCategoryRequest struct {
	GroupID    string `json:"group_id"`
	CategoryID string `json:"category_id"`
}

type DeleteCategoryResponse struct{}

type PreviewSplitsRequest struct {
	Amount         money.Cents       `json:"amount"`
	Method         string            `json:"method"`
	ParticipantIDs []string          `json:"participant_ids"`
	Values         map[string]string `json:"values,omitempty"`
}

type PreviewSplitsResponse struct {
	Splits []Split `json:"splits"`

	// Mismatch is the signed difference between the splits and the amount.
	// Custom and percentage previews may legitimately miss while being edited.
	Mismatch money.Cents `json:"mismatch"`
}

// ExpenseInput is the editable part of an expense.
//
// For shared expenses the splits are computed from SplitMethod,
// ParticipantIDs and Values; Values holds amounts for custom splits and
// percentages for percentage splits.
type ExpenseInput struct {
	GroupID           string            `json:"group_id"`
	Description       string            `json:"description"`
	Amount            money.Cents       `json:"amount"`
	Date              int64             `json:"date,omitempty"`
	PaidByMemberID    string            `json:"paid_by_member_id"`
	CategoryID        string            `json:"category_id,omitempty"`
	CreatedByMemberID string            `json:"created_by_member_id,omitempty"`
	Type              string            `json:"type"`
	IsIncome          bool              `json:"is_income,omitempty"`
	SplitMethod       string            `json:"split_method,omitempty"`
	ParticipantIDs    []string          `json:"participant_ids,omitempty"`
	Values            map[string]string `json:"values,omitempty"`
}

type CreateExpenseRequest struct {
	ExpenseInput
}

type CreateExpenseResponse struct {
	Expense Expense `json:"expense"`
}

type UpdateExpenseRequest struct {
	ExpenseID string `json:"expense_id"`
	ExpenseInput
}

type UpdateExpenseResponse struct {
	Expense Expense `json:"expense"`
}

type DeleteExpenseRequest struct {
	GroupID   string `json:"group_id"`
	ExpenseID string `json:"expense_id"`
}

type DeleteExpenseResponse struct{}

type ListExpensesRequest struct {
	GroupID string `json:"group_id"`
}

type ListExpensesResponse struct {
	Expenses []Expense `json:"expenses"`
}

type RecordSettlementRequest struct {
	GroupID      string      `json:"group_id"`
	FromMemberID string      `json:"from_member_id"`
	ToMemberID   string      `json:"to_member_id"`
	Amount       money.Cents `json:"amount"`
	Date         int64       `json:"date,omitempty"`
	Note         string      `json:"note,omitempty"`
}

type RecordSettlementResponse struct {
	Settlement Settlement `json:"settlement"`
}

type DeleteSettlementRequest struct {
	GroupID      string `json:"group_id"`
	SettlementID string `json:"settlement_id"`
}

type DeleteSettlementResponse struct{}

type ListSettlementsRequest struct {
	GroupID string `json:"group_id"`
}

type ListSettlementsResponse struct {
	Settlements []Settlement `json:"settlements"`
}

type GetBalancesRequest struct {
	GroupID string `json:"group_id"`
}

type GetBalancesResponse struct {
	Balances []MemberBalance `json:"balances"`
	Debts    []Debt          `json:"debts"`

	// Settled is true when no transfers are suggested.
	Settled bool `json:"settled"`
}

type SettleAllRequest struct {
	GroupID string `json:"group_id"`
	Note    string `json:"note,omitempty"`
}

type SettleAllResponse struct {
	Settlements []Settlement `json:"settlements"`
}

// SetCurrentMemberRequest selects who "I" am in a group on one device.
// DeviceID falls back to the X-Device-Id header when empty.
type SetCurrentMemberRequest struct {
	DeviceID string `json:"device_id,omitempty"`
	GroupID  string `json:"group_id"`
	MemberID string `json:"member_id"`
}

type SetCurrentMemberResponse struct {
	Member Member `json:"member"`
}

type GetCurrentMemberRequest struct {
	DeviceID string `json:"device_id,omitempty"`
	GroupID  string `json:"group_id"`
}

// GetCurrentMemberResponse has a nil Member when nothing is selected.
type GetCurrentMemberResponse struct {
	Member *Member `json:"member"`
}

// GetSpendingReportRequest selects the expense kind to report on,
// "shared" when empty.
type GetSpendingReportRequest struct {
	GroupID string `json:"group_id"`
	Type    string `json:"type,omitempty"`
}

type CategorySpending struct {
	CategoryID string      `json:"category_id"`
	Name       string      `json:"name"`
	Icon       string      `json:"icon"`
	Color      string      `json:"color"`
	Total      money.Cents `json:"total"`
}

type MemberSpending struct {
	MemberID string      `json:"member_id"`
	Name     string      `json:"name"`
	Color    string      `json:"color"`
	Total    money.Cents `json:"total"`
}

// DaySpending totals one calendar day, formatted YYYY-MM-DD in UTC.
type DaySpending struct {
	Day   string      `json:"day"`
	Total money.Cents `json:"total"`
}

// GetSpendingReportResponse lists category and member totals largest first,
// and day totals oldest first. Settlement records are never counted.
type GetSpendingReportResponse struct {
	ByCategory []CategorySpending `json:"by_category"`
	ByMember   []MemberSpending   `json:"by_member"`
	ByDay      []DaySpending      `json:"by_day"`
}
