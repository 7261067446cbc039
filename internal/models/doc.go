// Package models defines the core domain models for the group ledger.
//
// # Records
//
// The engine consumes read-only snapshots of three record kinds:
//   - Member: a person inside a group
//   - Expense: a shared or personal expense, with its per-member splits
//   - Settlement: a completed payment between two members
//
// Debt is computed, never stored.
//
// # Design Principles
//
//  1. **Integer money**: every amount is money.Cents, so sums never drift
//  2. **Sealed variants**: SharedExpense and PersonalExpense are distinct types
//     behind the Expense interface; fields only legal for one kind live on it
//  3. **Avoid circular references**: records point at members by ID string
//  4. **Explicit timestamps**: a Timestamp is either pending or resolved,
//     never a zero value standing in for "not written yet"
package models
