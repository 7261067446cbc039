package calculator

import (
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/mmynk/splitledger/internal/models"
	"github.com/mmynk/splitledger/internal/money"
)

func members(ids ...string) []models.Member {
	out := make([]models.Member, len(ids))
	for i, id := range ids {
		out[i] = models.Member{ID: id, Name: id}
	}
	return out
}

// equalExpense builds a shared expense paid by payer and split equally.
func equalExpense(t *testing.T, payer string, amount money.Cents, participants ...string) models.Expense {
	t.Helper()
	splits, err := ComputeSplits(amount, models.SplitEqual, participants, nil)
	if err != nil {
		t.Fatalf("ComputeSplits failed: %v", err)
	}
	return &models.SharedExpense{
		ExpenseRecord: models.ExpenseRecord{Amount: amount, PaidByMemberID: payer},
		Method:        models.SplitEqual,
		Splits:        splits,
	}
}

func settlement(from, to string, amount money.Cents) models.Settlement {
	return models.Settlement{FromMemberID: from, ToMemberID: to, Amount: amount}
}

func assertDebts(t *testing.T, got, want []models.Debt) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d debts %+v, want %d %+v", len(got), got, len(want), want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("debt %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestComputeBalance(t *testing.T) {
	expenses := []models.Expense{
		equalExpense(t, "A", money.FromMajor(30, 0), "A", "B", "C"),
	}

	tests := map[string]money.Cents{"A": 2000, "B": -1000, "C": -1000, "D": 0}
	for id, want := range tests {
		if got := ComputeBalance(id, expenses, nil); got != want {
			t.Errorf("ComputeBalance(%s) = %s, want %s", id, got, want)
		}
	}
}

func TestComputeBalanceSkipsPersonalAndSettlementRecords(t *testing.T) {
	legacy := equalExpense(t, "A", money.FromMajor(50, 0), "B")
	legacy.Record().IsSettlement = true

	expenses := []models.Expense{
		legacy,
		&models.PersonalExpense{ExpenseRecord: models.ExpenseRecord{Amount: 9999, PaidByMemberID: "A"}},
		equalExpense(t, "A", money.FromMajor(10, 0), "A", "B"),
	}

	if got := ComputeBalance("A", expenses, nil); got != 500 {
		t.Errorf("ComputeBalance(A) = %s, want 5.00", got)
	}
	if got := ComputeBalance("B", expenses, nil); got != -500 {
		t.Errorf("ComputeBalance(B) = %s, want -5.00", got)
	}
}

func TestCalculateDebts(t *testing.T) {
	tests := []struct {
		name        string
		members     []models.Member
		expenses    func(t *testing.T) []models.Expense
		settlements []models.Settlement
		want        []models.Debt
	}{
		{
			name:    "one payer, three-way equal split",
			members: members("A", "B", "C"),
			expenses: func(t *testing.T) []models.Expense {
				return []models.Expense{equalExpense(t, "A", money.FromMajor(30, 0), "A", "B", "C")}
			},
			want: []models.Debt{
				{FromMemberID: "B", ToMemberID: "A", Amount: 1000},
				{FromMemberID: "C", ToMemberID: "A", Amount: 1000},
			},
		},
		{
			name:    "mutual expenses net out",
			members: members("A", "B"),
			expenses: func(t *testing.T) []models.Expense {
				return []models.Expense{
					equalExpense(t, "A", money.FromMajor(10, 0), "A", "B"),
					equalExpense(t, "B", money.FromMajor(5, 0), "A", "B"),
				}
			},
			want: []models.Debt{{FromMemberID: "B", ToMemberID: "A", Amount: 250}},
		},
		{
			name:    "settlement clears the debt",
			members: members("A", "B"),
			expenses: func(t *testing.T) []models.Expense {
				return []models.Expense{equalExpense(t, "B", money.FromMajor(20, 0), "A", "B")}
			},
			settlements: []models.Settlement{settlement("A", "B", 1000)},
			want:        []models.Debt{},
		},
		{
			name:    "partial settlement leaves the rest",
			members: members("A", "B"),
			expenses: func(t *testing.T) []models.Expense {
				return []models.Expense{equalExpense(t, "B", money.FromMajor(20, 0), "A", "B")}
			},
			settlements: []models.Settlement{settlement("A", "B", 400)},
			want:        []models.Debt{{FromMemberID: "A", ToMemberID: "B", Amount: 600}},
		},
		{
			name:     "no expenses",
			members:  members("A", "B"),
			expenses: func(t *testing.T) []models.Expense { return nil },
			want:     []models.Debt{},
		},
		{
			name:    "one creditor, several debtors, largest debtor first",
			members: members("A", "B", "C", "D"),
			expenses: func(t *testing.T) []models.Expense {
				return []models.Expense{
					&models.SharedExpense{
						ExpenseRecord: models.ExpenseRecord{Amount: 10000, PaidByMemberID: "A"},
						Method:        models.SplitCustom,
						Splits: []models.ExpenseSplit{
							{MemberID: "B", Amount: 2000},
							{MemberID: "C", Amount: 5000},
							{MemberID: "D", Amount: 3000},
						},
					},
				}
			},
			want: []models.Debt{
				{FromMemberID: "C", ToMemberID: "A", Amount: 5000},
				{FromMemberID: "D", ToMemberID: "A", Amount: 3000},
				{FromMemberID: "B", ToMemberID: "A", Amount: 2000},
			},
		},
		{
			name:    "one debtor, several creditors",
			members: members("A", "B", "C"),
			expenses: func(t *testing.T) []models.Expense {
				return []models.Expense{
					equalExpense(t, "B", money.FromMajor(30, 0), "A"),
					equalExpense(t, "C", money.FromMajor(45, 0), "A"),
				}
			},
			want: []models.Debt{
				{FromMemberID: "A", ToMemberID: "C", Amount: 4500},
				{FromMemberID: "A", ToMemberID: "B", Amount: 3000},
			},
		},
		{
			name:    "orphaned member still takes part",
			members: members("A"),
			expenses: func(t *testing.T) []models.Expense {
				return []models.Expense{equalExpense(t, "A", money.FromMajor(10, 0), "A", "ghost")}
			},
			want: []models.Debt{{FromMemberID: "ghost", ToMemberID: "A", Amount: 500}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateDebts(tt.expenses(t), tt.settlements, tt.members)
			if got == nil {
				t.Fatal("CalculateDebts returned nil, want empty slice")
			}
			assertDebts(t, got, tt.want)
		})
	}
}

func TestComputeBalancesOrder(t *testing.T) {
	expenses := []models.Expense{
		equalExpense(t, "B", money.FromMajor(9, 0), "ghost1", "B", "ghost2"),
	}
	got := ComputeBalances(expenses, []models.Settlement{settlement("ghost3", "A", 100)}, members("A", "B", "C"))

	wantIDs := []string{"A", "B", "C", "ghost1", "ghost2", "ghost3"}
	if len(got) != len(wantIDs) {
		t.Fatalf("got %d balances, want %d", len(got), len(wantIDs))
	}
	for i, id := range wantIDs {
		if got[i].MemberID != id {
			t.Errorf("balance %d = %s, want %s", i, got[i].MemberID, id)
		}
		if wantOrphan := i >= 3; got[i].Orphaned != wantOrphan {
			t.Errorf("%s orphaned = %v, want %v", id, got[i].Orphaned, wantOrphan)
		}
	}
	if got[0].Balance != -100 || got[1].Balance != 600 || got[2].Balance != 0 {
		t.Errorf("balances = %+v", got)
	}
}

// randomLedger builds a random but well-formed history.
func randomLedger(t *testing.T, rng *rand.Rand, ids []string) ([]models.Expense, []models.Settlement) {
	t.Helper()
	var expenses []models.Expense
	for n := rng.Intn(12); n > 0; n-- {
		payer := ids[rng.Intn(len(ids))]
		perm := rng.Perm(len(ids))[:1+rng.Intn(len(ids))]
		participants := make([]string, len(perm))
		for i, p := range perm {
			participants[i] = ids[p]
		}
		amount := money.Cents(1 + rng.Intn(50000))
		expenses = append(expenses, equalExpense(t, payer, amount, participants...))
	}
	var settlements []models.Settlement
	for n := rng.Intn(4); n > 0; n-- {
		from, to := ids[rng.Intn(len(ids))], ids[rng.Intn(len(ids))]
		if from == to {
			continue
		}
		settlements = append(settlements, settlement(from, to, money.Cents(1+rng.Intn(10000))))
	}
	return expenses, settlements
}

func TestBalanceProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	ids := []string{"A", "B", "C", "D", "E"}
	group := members(ids...)

	for round := 0; round < 200; round++ {
		t.Run(fmt.Sprintf("round-%d", round), func(t *testing.T) {
			expenses, settlements := randomLedger(t, rng, ids)

			var total, positive money.Cents
			for _, id := range ids {
				b := ComputeBalance(id, expenses, settlements)
				total += b
				if b > 0 {
					positive += b
				}
			}
			if total != 0 {
				t.Fatalf("balances sum to %s, want 0", total)
			}

			debts := CalculateDebts(expenses, settlements, group)
			var owed money.Cents
			for _, d := range debts {
				owed += d.Amount
			}
			// One-cent residues are treated as settled and never emitted.
			if diff := positive - owed; diff < 0 || diff > money.Cents(len(ids)) {
				t.Fatalf("debts sum to %s, positive balances to %s", owed, positive)
			}

			applied := append(append([]models.Settlement{}, settlements...),
				DebtsToSettlements("g", debts, "", time.Now())...)
			if again := CalculateDebts(expenses, applied, group); len(again) != 0 {
				t.Fatalf("debts after settling all: %+v", again)
			}
		})
	}
}

func TestDebtConservationWithoutResidues(t *testing.T) {
	expenses := []models.Expense{
		equalExpense(t, "A", money.FromMajor(100, 0), "A", "B", "C", "D"),
		equalExpense(t, "B", money.FromMajor(60, 0), "B", "C", "D"),
		equalExpense(t, "D", money.FromMajor(12, 0), "A", "D"),
	}
	group := members("A", "B", "C", "D")

	var positive money.Cents
	for _, b := range ComputeBalances(expenses, nil, group) {
		if b.Balance > 0 {
			positive += b.Balance
		}
	}

	var owed money.Cents
	for _, d := range CalculateDebts(expenses, nil, group) {
		owed += d.Amount
	}
	if owed != positive {
		t.Errorf("debts sum to %s, positive balances to %s", owed, positive)
	}
}

func TestSettlementReversal(t *testing.T) {
	expenses := []models.Expense{equalExpense(t, "A", money.FromMajor(30, 0), "A", "B", "C")}
	s := settlement("B", "A", 700)

	before := ComputeBalance("B", expenses, nil)
	during := ComputeBalance("B", expenses, []models.Settlement{s})
	after := ComputeBalance("B", expenses, []models.Settlement{})

	if during != before+700 {
		t.Errorf("balance with settlement = %s, want %s", during, before+700)
	}
	if after != before {
		t.Errorf("balance after removal = %s, want %s", after, before)
	}
}

func TestMemberTotalSpending(t *testing.T) {
	income := &models.PersonalExpense{
		ExpenseRecord: models.ExpenseRecord{Amount: money.FromMajor(100, 0), PaidByMemberID: "A"},
		IsIncome:      true,
	}
	groceries := &models.PersonalExpense{
		ExpenseRecord: models.ExpenseRecord{Amount: money.FromMajor(30, 0), PaidByMemberID: "A"},
	}
	otherPersonal := &models.PersonalExpense{
		ExpenseRecord: models.ExpenseRecord{Amount: money.FromMajor(500, 0), PaidByMemberID: "B"},
	}
	legacy := equalExpense(t, "B", money.FromMajor(80, 0), "A")
	legacy.Record().IsSettlement = true

	expenses := []models.Expense{
		income,
		groceries,
		otherPersonal,
		legacy,
		equalExpense(t, "B", money.FromMajor(20, 0), "A", "B"),
		equalExpense(t, "A", money.FromMajor(9, 0), "A", "B", "C"),
	}

	got := MemberTotalSpending("A", expenses)
	want := Spending{Personal: 7000, SharedQuota: 1300, Total: 5700}
	if got != want {
		t.Errorf("MemberTotalSpending(A) = %+v, want %+v", got, want)
	}

	if got := MemberTotalSpending("nobody", expenses); got != (Spending{}) {
		t.Errorf("MemberTotalSpending(nobody) = %+v, want zero", got)
	}
}

func TestDebtsToSettlements(t *testing.T) {
	now := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	debts := []models.Debt{{FromMemberID: "B", ToMemberID: "A", Amount: 250}}

	got := DebtsToSettlements("g1", debts, "settle up", now)
	if len(got) != 1 {
		t.Fatalf("got %d settlements", len(got))
	}
	s := got[0]
	if s.GroupID != "g1" || s.FromMemberID != "B" || s.ToMemberID != "A" || s.Amount != 250 || s.Note != "settle up" {
		t.Errorf("settlement = %+v", s)
	}
	if ts, ok := s.Date.Time(); !ok || !ts.Equal(now) {
		t.Errorf("date = %v, %v", ts, ok)
	}
}
