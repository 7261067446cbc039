package models

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/mmynk/splitledger/internal/money"
)

// SplitMethod selects how a shared expense is divided.
type SplitMethod string

const (
	SplitEqual      SplitMethod = "equal"
	SplitCustom     SplitMethod = "custom"
	SplitPercentage SplitMethod = "percentage"
)

// ParseSplitMethod validates a split method name.
func ParseSplitMethod(s string) (SplitMethod, error) {
	switch m := SplitMethod(s); m {
	case SplitEqual, SplitCustom, SplitPercentage:
		return m, nil
	default:
		return "", fmt.Errorf("unknown split method: %q", s)
	}
}

// ExpenseType distinguishes shared from personal expenses.
type ExpenseType string

const (
	ExpenseShared   ExpenseType = "shared"
	ExpensePersonal ExpenseType = "personal"
)

// ExpenseSplit is one member's owed share of one expense.
type ExpenseSplit struct {
	MemberID string
	Amount   money.Cents

	// Percentage is set only for percentage splits, kept for display.
	Percentage decimal.NullDecimal
}

// Expense is implemented by *SharedExpense and *PersonalExpense only.
type Expense interface {
	// Record returns the fields common to every expense.
	Record() *ExpenseRecord

	// Type reports the variant.
	Type() ExpenseType

	// Shares returns the per-member splits.
	Shares() []ExpenseSplit

	sealed()
}

// ExpenseRecord holds the fields shared by both expense variants.
type ExpenseRecord struct {
	ID                string
	GroupID           string
	Description       string
	Amount            money.Cents
	Date              Timestamp
	PaidByMemberID    string
	CategoryID        string
	CreatedByMemberID string

	// IsSettlement marks legacy records that represent a debt payment.
	// They are skipped by every balance computation.
	IsSettlement bool

	CreatedAt Timestamp
	UpdatedAt Timestamp
}

// SharedExpense is split across participants.
type SharedExpense struct {
	ExpenseRecord
	Method SplitMethod
	Splits []ExpenseSplit
}

func (e *SharedExpense) Record() *ExpenseRecord { return &e.ExpenseRecord }
func (e *SharedExpense) Type() ExpenseType      { return ExpenseShared }
func (e *SharedExpense) Shares() []ExpenseSplit { return e.Splits }
func (e *SharedExpense) sealed()                {}

// Share returns the split for memberID, if any.
func (e *SharedExpense) Share(memberID string) (ExpenseSplit, bool) {
	for _, s := range e.Splits {
		if s.MemberID == memberID {
			return s, true
		}
	}
	return ExpenseSplit{}, false
}

// PersonalExpense is an expense or income entry for the payer alone.
type PersonalExpense struct {
	ExpenseRecord

	// IsIncome marks money received rather than spent.
	IsIncome bool
}

func (e *PersonalExpense) Record() *ExpenseRecord { return &e.ExpenseRecord }
func (e *PersonalExpense) Type() ExpenseType      { return ExpensePersonal }
func (e *PersonalExpense) sealed()                {}

// Shares returns the single full-amount split assigned to the payer.
func (e *PersonalExpense) Shares() []ExpenseSplit {
	return []ExpenseSplit{{MemberID: e.PaidByMemberID, Amount: e.Amount}}
}

// SortExpensesByDate orders expenses newest first. Pending dates come first.
// Ties keep their input order.
func SortExpensesByDate(expenses []Expense) {
	sort.SliceStable(expenses, func(i, j int) bool {
		return expenses[j].Record().Date.Before(expenses[i].Record().Date)
	})
}
