// Package money holds the currency arithmetic shared by the split calculator
// and the balance engine.
//
// Amounts are kept as integer minor units (cents) so that running sums never
// drift. Conversions from user input go through shopspring/decimal and are
// rounded half-up to two decimal places.
package money

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// Cents is an amount of money in minor units.
type Cents int64

// Tolerance is the largest residue still treated as settled.
const Tolerance Cents = 1

// Zero is the zero amount.
const Zero Cents = 0

// MaxAmount and MinAmount bound what a Cents value can hold.
const (
	MaxAmount Cents = math.MaxInt64
	MinAmount Cents = -math.MaxInt64
)

var (
	hundred  = decimal.NewFromInt(100)
	maxMajor = decimal.New(int64(MaxAmount), -2)
)

// ErrInvalidAmount is returned when a string is not a decimal number
// or does not fit in Cents.
var ErrInvalidAmount = errors.New("invalid money amount")

// FromDecimal converts a major-unit decimal to cents, rounding half-up.
// Values beyond the Cents range saturate at MaxAmount or MinAmount.
func FromDecimal(d decimal.Decimal) Cents {
	c, err := fromDecimal(d)
	if err != nil {
		if d.Sign() < 0 {
			return MinAmount
		}
		return MaxAmount
	}
	return c
}

func fromDecimal(d decimal.Decimal) (Cents, error) {
	rounded := d.Round(2)
	if rounded.Abs().GreaterThan(maxMajor) {
		return 0, fmt.Errorf("%w: %s out of range", ErrInvalidAmount, d.String())
	}
	return Cents(rounded.Mul(hundred).IntPart()), nil
}

// FromFloat converts a major-unit float to cents, rounding half-up.
// It exists for legacy float inputs; prefer Parse for user input.
func FromFloat(f float64) Cents {
	return FromDecimal(decimal.NewFromFloat(f))
}

// FromMajor builds an amount from whole units and cents, e.g. FromMajor(10, 50) is 10.50.
func FromMajor(units, cents int64) Cents {
	if units < 0 {
		return Cents(units*100 - cents)
	}
	return Cents(units*100 + cents)
}

// Parse reads a major-unit amount such as "10", "10.5" or "-2.50".
// Extra precision is rounded half-up to cents.
func Parse(s string) (Cents, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("%w: empty", ErrInvalidAmount)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	return fromDecimal(d)
}

// ParseOrZero is Parse with a zero fallback for empty or unparsable input.
func ParseOrZero(s string) Cents {
	c, err := Parse(s)
	if err != nil {
		return 0
	}
	return c
}

// Percent returns round(c * pct / 100) to cents, half-up.
func (c Cents) Percent(pct decimal.Decimal) Cents {
	return FromDecimal(c.Decimal().Mul(pct).Div(hundred))
}

// Decimal returns the amount in major units.
func (c Cents) Decimal() decimal.Decimal {
	return decimal.New(int64(c), -2)
}

// Float64 returns the amount in major units as a float.
func (c Cents) Float64() float64 {
	return float64(c) / 100
}

// Abs returns the absolute value.
func (c Cents) Abs() Cents {
	if c < 0 {
		return -c
	}
	return c
}

// IsSettled reports whether the amount is within Tolerance of zero.
func (c Cents) IsSettled() bool {
	return c.Abs() <= Tolerance
}

// String formats the amount with exactly two decimals.
func (c Cents) String() string {
	return c.Decimal().StringFixed(2)
}

// MarshalJSON encodes the amount as a JSON number with two decimals.
func (c Cents) MarshalJSON() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalJSON accepts a JSON number or a quoted decimal string.
func (c *Cents) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "null" {
		*c = 0
		return nil
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Sum adds amounts.
func Sum(amounts ...Cents) Cents {
	var total Cents
	for _, a := range amounts {
		total += a
	}
	return total
}

// Min returns the smaller of a and b.
func Min(a, b Cents) Cents {
	if a < b {
		return a
	}
	return b
}
