package models

import (
	"testing"
	"time"

	"github.com/mmynk/splitledger/internal/money"
)

func TestTimestampOrdering(t *testing.T) {
	early := ResolvedAt(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	late := ResolvedAt(time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC))
	pending := PendingTimestamp()

	if !early.Before(late) {
		t.Error("early should be before late")
	}
	if late.Before(early) {
		t.Error("late should not be before early")
	}
	if !late.Before(pending) {
		t.Error("resolved should be before pending")
	}
	if pending.Before(early) {
		t.Error("pending should not be before resolved")
	}
	if pending.Before(PendingTimestamp()) {
		t.Error("pending timestamps should be unordered")
	}
}

func TestTimestampResolve(t *testing.T) {
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

	ts := PendingTimestamp()
	if !ts.IsPending() {
		t.Fatal("expected pending")
	}
	if _, ok := ts.Time(); ok {
		t.Error("pending timestamp should not report a time")
	}
	if ts.Unix() != 0 {
		t.Errorf("pending Unix() = %d, want 0", ts.Unix())
	}

	resolved := ts.Resolve(now)
	got, ok := resolved.Time()
	if !ok || !got.Equal(now) {
		t.Errorf("Resolve() = %v, %v; want %v", got, ok, now)
	}

	// Already resolved timestamps keep their time.
	if again := resolved.Resolve(now.Add(time.Hour)); again.Unix() != now.Unix() {
		t.Errorf("Resolve on resolved changed time to %d", again.Unix())
	}

	if !FromUnix(0).IsPending() {
		t.Error("FromUnix(0) should be pending")
	}
	if FromUnix(now.Unix()).Unix() != now.Unix() {
		t.Error("FromUnix round trip failed")
	}
}

func TestSortExpensesByDate(t *testing.T) {
	day := func(d int) Timestamp {
		return ResolvedAt(time.Date(2024, 1, d, 0, 0, 0, 0, time.UTC))
	}
	expenses := []Expense{
		&SharedExpense{ExpenseRecord: ExpenseRecord{ID: "old", Date: day(1)}},
		&PersonalExpense{ExpenseRecord: ExpenseRecord{ID: "pending", Date: PendingTimestamp()}},
		&SharedExpense{ExpenseRecord: ExpenseRecord{ID: "new", Date: day(20)}},
		&SharedExpense{ExpenseRecord: ExpenseRecord{ID: "mid-a", Date: day(10)}},
		&SharedExpense{ExpenseRecord: ExpenseRecord{ID: "mid-b", Date: day(10)}},
	}

	SortExpensesByDate(expenses)

	want := []string{"pending", "new", "mid-a", "mid-b", "old"}
	for i, id := range want {
		if got := expenses[i].Record().ID; got != id {
			t.Errorf("position %d = %s, want %s", i, got, id)
		}
	}
}

func TestPersonalExpenseShares(t *testing.T) {
	e := &PersonalExpense{ExpenseRecord: ExpenseRecord{PaidByMemberID: "alice", Amount: money.FromMajor(12, 0)}}
	shares := e.Shares()
	if len(shares) != 1 || shares[0].MemberID != "alice" || shares[0].Amount != 1200 {
		t.Errorf("Shares() = %+v", shares)
	}
	if e.Type() != ExpensePersonal {
		t.Errorf("Type() = %s", e.Type())
	}
}

func TestParseSplitMethod(t *testing.T) {
	for _, s := range []string{"equal", "custom", "percentage"} {
		if _, err := ParseSplitMethod(s); err != nil {
			t.Errorf("ParseSplitMethod(%q) error = %v", s, err)
		}
	}
	if _, err := ParseSplitMethod("shares"); err == nil {
		t.Error("expected error for unknown method")
	}
}

func TestGroupMemberName(t *testing.T) {
	g := &Group{Members: []Member{{ID: "a", Name: "Alice"}}}
	if got := g.MemberName("a"); got != "Alice" {
		t.Errorf("MemberName(a) = %s", got)
	}
	if got := g.MemberName("ghost"); got != UnknownMemberName {
		t.Errorf("MemberName(ghost) = %s", got)
	}
	if MemberColor(len(MemberColors)) != MemberColors[0] {
		t.Error("MemberColor should wrap around")
	}
}
