package models

import "github.com/mmynk/splitledger/internal/money"

// Settlement represents a payment between group members to clear debts.
// It is immutable; reversing it means deleting it from the log.
type Settlement struct {
	// ID is the unique identifier for the settlement (UUID format).
	ID string

	// GroupID is the group this settlement belongs to.
	GroupID string

	// FromMemberID is the member who paid (debtor settling up).
	FromMemberID string

	// ToMemberID is the member who received payment (creditor being paid).
	ToMemberID string

	// Amount is the payment amount.
	Amount money.Cents

	// Date is when the payment happened.
	Date Timestamp

	// CreatedAt is when the settlement was recorded.
	CreatedAt Timestamp

	// Note is an optional description for the settlement.
	Note string
}

// Debt is one leg of the suggested transfers. Computed, never stored.
type Debt struct {
	FromMemberID string
	ToMemberID   string
	Amount       money.Cents
}
