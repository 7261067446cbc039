package calculator

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/mmynk/splitledger/internal/models"
	"github.com/mmynk/splitledger/internal/money"
)

var (
	ErrInvalidAmount      = errors.New("amount must be greater than zero")
	ErrNoParticipants     = errors.New("at least one participant is required")
	ErrInvalidParticipant = errors.New("participant ids must be non-empty and unique")
	ErrUnknownSplitMethod = errors.New("unknown split method")
	ErrSplitMismatch      = errors.New("splits do not sum to the expense amount")
	ErrNegativeShare      = errors.New("split amounts cannot be negative")
	ErrPercentageMismatch = errors.New("percentages must sum to 100")
)

// SplitMismatchError reports by how much a set of splits misses the total.
type SplitMismatchError struct {
	Expected money.Cents
	Actual   money.Cents
}

func (e *SplitMismatchError) Error() string {
	return fmt.Sprintf("%v: expected %s, got %s", ErrSplitMismatch, e.Expected, e.Actual)
}

func (e *SplitMismatchError) Unwrap() error { return ErrSplitMismatch }

// PercentageMismatchError reports the actual percentage total.
type PercentageMismatchError struct {
	Total decimal.Decimal
}

func (e *PercentageMismatchError) Error() string {
	return fmt.Sprintf("%v: got %s", ErrPercentageMismatch, e.Total.String())
}

func (e *PercentageMismatchError) Unwrap() error { return ErrPercentageMismatch }

var hundredPercent = decimal.NewFromInt(100)

// ComputeSplits divides amount among participants.
//
//   - equal: integer cents divided by the participant count; the remainder goes
//     one cent at a time to the first participants in input order
//   - custom: values[id] parsed as a major-unit amount, 0 when missing or unparsable
//   - percentage: round(amount * values[id] / 100) half-up, percentage kept on the split
//
// Custom and percentage splits are not checked against amount; callers that
// need that guarantee use ValidateSplits. Nothing is returned on error.
func ComputeSplits(amount money.Cents, method models.SplitMethod, participants []string, values map[string]string) ([]models.ExpenseSplit, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}
	if len(participants) == 0 {
		return nil, ErrNoParticipants
	}
	seen := make(map[string]bool, len(participants))
	for _, p := range participants {
		if p == "" || seen[p] {
			return nil, fmt.Errorf("%w: %q", ErrInvalidParticipant, p)
		}
		seen[p] = true
	}

	switch method {
	case models.SplitEqual:
		return splitEqual(amount, participants), nil
	case models.SplitCustom:
		return splitCustom(participants, values), nil
	case models.SplitPercentage:
		return splitPercentage(amount, participants, values), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownSplitMethod, method)
	}
}

func splitEqual(amount money.Cents, participants []string) []models.ExpenseSplit {
	count := money.Cents(len(participants))
	base := amount / count
	remainder := amount % count

	splits := make([]models.ExpenseSplit, len(participants))
	for i, p := range participants {
		share := base
		if money.Cents(i) < remainder {
			share++
		}
		splits[i] = models.ExpenseSplit{MemberID: p, Amount: share}
	}
	return splits
}

func splitCustom(participants []string, values map[string]string) []models.ExpenseSplit {
	splits := make([]models.ExpenseSplit, len(participants))
	for i, p := range participants {
		splits[i] = models.ExpenseSplit{MemberID: p, Amount: money.ParseOrZero(values[p])}
	}
	return splits
}

func splitPercentage(amount money.Cents, participants []string, values map[string]string) []models.ExpenseSplit {
	splits := make([]models.ExpenseSplit, len(participants))
	for i, p := range participants {
		pct := parsePercentage(values[p])
		splits[i] = models.ExpenseSplit{
			MemberID:   p,
			Amount:     amount.Percent(pct),
			Percentage: decimal.NewNullDecimal(pct),
		}
	}
	return splits
}

func parsePercentage(s string) decimal.Decimal {
	pct, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero
	}
	return pct
}

// PersonalSplit is the single split of a personal expense: everything on the payer.
func PersonalSplit(amount money.Cents, payerID string) models.ExpenseSplit {
	return models.ExpenseSplit{MemberID: payerID, Amount: amount}
}

// ValidateSplits checks that splits are non-negative and sum exactly to amount.
func ValidateSplits(amount money.Cents, splits []models.ExpenseSplit) error {
	var total money.Cents
	for _, s := range splits {
		if s.Amount < 0 {
			return fmt.Errorf("%w: member %s", ErrNegativeShare, s.MemberID)
		}
		total += s.Amount
	}
	if total != amount {
		return &SplitMismatchError{Expected: amount, Actual: total}
	}
	return nil
}

// ValidatePercentages checks that the percentages given for participants sum to 100.
func ValidatePercentages(participants []string, values map[string]string) error {
	total := decimal.Zero
	for _, p := range participants {
		total = total.Add(parsePercentage(values[p]))
	}
	if !total.Equal(hundredPercent) {
		return &PercentageMismatchError{Total: total}
	}
	return nil
}
