package calculator

import (
	"sort"
	"time"

	"github.com/mmynk/splitledger/internal/models"
	"github.com/mmynk/splitledger/internal/money"
)

// CategoryTotal is the amount spent in one category.
type CategoryTotal struct {
	CategoryID string
	Total      money.Cents
}

// MemberTotal is the amount one member paid.
type MemberTotal struct {
	MemberID string
	Total    money.Cents
}

// DayTotal is the amount spent on one calendar day, formatted YYYY-MM-DD.
type DayTotal struct {
	Day   string
	Total money.Cents
}

// reportable yields the non-settlement expenses of kind.
func reportable(expenses []models.Expense, kind models.ExpenseType) []*models.ExpenseRecord {
	var out []*models.ExpenseRecord
	for _, e := range expenses {
		if e.Type() != kind || e.Record().IsSettlement {
			continue
		}
		out = append(out, e.Record())
	}
	return out
}

// SpendingByCategory totals expense amounts of kind per category.
// Only categories with a positive total are returned, largest first; ties
// keep category order. Uncategorized or unknown-category expenses are left out.
func SpendingByCategory(expenses []models.Expense, categories []models.Category, kind models.ExpenseType) []CategoryTotal {
	totals := make(map[string]money.Cents)
	for _, rec := range reportable(expenses, kind) {
		totals[rec.CategoryID] += rec.Amount
	}

	var out []CategoryTotal
	for _, c := range categories {
		if total := totals[c.ID]; total > 0 {
			out = append(out, CategoryTotal{CategoryID: c.ID, Total: total})
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Total > out[j].Total })
	return out
}

// SpendingByMember totals what each member paid for expenses of kind.
// Every member is listed, largest first; ties keep member order.
func SpendingByMember(expenses []models.Expense, members []models.Member, kind models.ExpenseType) []MemberTotal {
	totals := make(map[string]money.Cents)
	for _, rec := range reportable(expenses, kind) {
		totals[rec.PaidByMemberID] += rec.Amount
	}

	out := make([]MemberTotal, len(members))
	for i, m := range members {
		out[i] = MemberTotal{MemberID: m.ID, Total: totals[m.ID]}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Total > out[j].Total })
	return out
}

// SpendingByDay totals expenses of kind per calendar day in loc, oldest day
// first. Expenses with a pending date are skipped.
func SpendingByDay(expenses []models.Expense, kind models.ExpenseType, loc *time.Location) []DayTotal {
	totals := make(map[string]money.Cents)
	for _, rec := range reportable(expenses, kind) {
		t, ok := rec.Date.Time()
		if !ok {
			continue
		}
		totals[t.In(loc).Format(time.DateOnly)] += rec.Amount
	}

	out := make([]DayTotal, 0, len(totals))
	for day, total := range totals {
		out = append(out, DayTotal{Day: day, Total: total})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Day < out[j].Day })
	return out
}
