package calculator

import (
	"sort"
	"time"

	"github.com/mmynk/splitledger/internal/models"
	"github.com/mmynk/splitledger/internal/money"
)

// MemberBalance is one member's net position in a group.
type MemberBalance struct {
	MemberID string

	// Balance is positive when the member is owed money, negative when they owe.
	Balance money.Cents

	// Orphaned is set when the id is referenced by records but is not a group member.
	Orphaned bool
}

// Spending is a member's reporting breakdown. It plays no part in debts.
type Spending struct {
	// Personal is income minus expenses across the member's personal entries.
	Personal money.Cents

	// SharedQuota is the member's share of every shared expense, whoever paid.
	SharedQuota money.Cents

	// Total is Personal - SharedQuota.
	Total money.Cents
}

// countsTowardBalance reports whether e takes part in shared-balance math.
func countsTowardBalance(e models.Expense) (*models.SharedExpense, bool) {
	shared, ok := e.(*models.SharedExpense)
	if !ok || shared.IsSettlement {
		return nil, false
	}
	return shared, true
}

// ComputeBalance returns memberID's net balance.
//
// For each shared, non-settlement expense the payer gains the amount and each
// split member loses their share. Each settlement raises the payer's balance
// toward zero and lowers the receiver's.
func ComputeBalance(memberID string, expenses []models.Expense, settlements []models.Settlement) money.Cents {
	var balance money.Cents

	for _, e := range expenses {
		shared, ok := countsTowardBalance(e)
		if !ok {
			continue
		}
		if shared.PaidByMemberID == memberID {
			balance += shared.Amount
		}
		if split, ok := shared.Share(memberID); ok {
			balance -= split.Amount
		}
	}

	for _, s := range settlements {
		if s.FromMemberID == memberID {
			balance += s.Amount
		}
		if s.ToMemberID == memberID {
			balance -= s.Amount
		}
	}

	return balance
}

// ComputeBalances returns every member's balance in member order, followed by
// ids referenced in records but missing from members, in first-seen order.
// Orphaned contributions are applied like any other.
func ComputeBalances(expenses []models.Expense, settlements []models.Settlement, members []models.Member) []MemberBalance {
	index := make(map[string]int, len(members))
	balances := make([]MemberBalance, 0, len(members))

	for _, m := range members {
		if _, exists := index[m.ID]; exists {
			continue
		}
		index[m.ID] = len(balances)
		balances = append(balances, MemberBalance{MemberID: m.ID})
	}

	add := func(id string, delta money.Cents) {
		i, exists := index[id]
		if !exists {
			i = len(balances)
			index[id] = i
			balances = append(balances, MemberBalance{MemberID: id, Orphaned: true})
		}
		balances[i].Balance += delta
	}

	for _, e := range expenses {
		shared, ok := countsTowardBalance(e)
		if !ok {
			continue
		}
		add(shared.PaidByMemberID, shared.Amount)
		charged := make(map[string]bool, len(shared.Splits))
		for _, split := range shared.Splits {
			// Only the first split per member counts, as in ComputeBalance.
			if charged[split.MemberID] {
				continue
			}
			charged[split.MemberID] = true
			add(split.MemberID, -split.Amount)
		}
	}

	for _, s := range settlements {
		add(s.FromMemberID, s.Amount)
		add(s.ToMemberID, -s.Amount)
	}

	return balances
}

// CalculateDebts suggests the transfers that bring every balance to zero.
//
// Creditors (balance above money.Tolerance) are sorted largest first, debtors
// most negative first, and the current largest of each side are matched
// repeatedly. This greedy matching keeps the number of transfers low for
// typical group sizes but is not guaranteed minimal for every distribution.
func CalculateDebts(expenses []models.Expense, settlements []models.Settlement, members []models.Member) []models.Debt {
	return SimplifyBalances(ComputeBalances(expenses, settlements, members))
}

// SimplifyBalances runs the greedy matching over precomputed balances.
func SimplifyBalances(balances []MemberBalance) []models.Debt {
	var creditors, debtors []MemberBalance
	for _, b := range balances {
		switch {
		case b.Balance > money.Tolerance:
			creditors = append(creditors, b)
		case b.Balance < -money.Tolerance:
			debtors = append(debtors, b)
		}
	}

	sort.SliceStable(creditors, func(i, j int) bool { return creditors[i].Balance > creditors[j].Balance })
	sort.SliceStable(debtors, func(i, j int) bool { return debtors[i].Balance < debtors[j].Balance })

	debts := []models.Debt{}
	i, j := 0, 0
	for i < len(creditors) && j < len(debtors) {
		creditor := &creditors[i]
		debtor := &debtors[j]

		amount := money.Min(creditor.Balance, debtor.Balance.Abs())
		if amount > money.Tolerance {
			debts = append(debts, models.Debt{
				FromMemberID: debtor.MemberID,
				ToMemberID:   creditor.MemberID,
				Amount:       amount,
			})
		}

		creditor.Balance -= amount
		debtor.Balance += amount

		if creditor.Balance.Abs() < money.Tolerance {
			i++
		}
		if debtor.Balance.Abs() < money.Tolerance {
			j++
		}
	}

	return debts
}

// MemberTotalSpending sums memberID's personal activity and shared quota.
// Settlement-flagged records are skipped.
func MemberTotalSpending(memberID string, expenses []models.Expense) Spending {
	var spending Spending

	for _, e := range expenses {
		switch exp := e.(type) {
		case *models.PersonalExpense:
			if exp.IsSettlement || exp.PaidByMemberID != memberID {
				continue
			}
			if exp.IsIncome {
				spending.Personal += exp.Amount
			} else {
				spending.Personal -= exp.Amount
			}
		case *models.SharedExpense:
			if exp.IsSettlement {
				continue
			}
			if split, ok := exp.Share(memberID); ok {
				spending.SharedQuota += split.Amount
			}
		}
	}

	spending.Total = spending.Personal - spending.SharedQuota
	return spending
}

// DebtsToSettlements turns suggested debts into settlement records dated now,
// ready for a caller to persist once the payments are confirmed.
func DebtsToSettlements(groupID string, debts []models.Debt, note string, now time.Time) []models.Settlement {
	settlements := make([]models.Settlement, len(debts))
	for i, d := range debts {
		settlements[i] = models.Settlement{
			GroupID:      groupID,
			FromMemberID: d.FromMemberID,
			ToMemberID:   d.ToMemberID,
			Amount:       d.Amount,
			Date:         models.ResolvedAt(now),
			Note:         note,
		}
	}
	return settlements
}
