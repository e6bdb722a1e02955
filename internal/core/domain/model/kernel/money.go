package kernel

import (
	"fmt"

	"deliveryapi/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// MoneyScale is the number of decimal places used when presenting amounts.
const MoneyScale = 2

// Money is a fixed-point monetary amount. Arithmetic keeps full precision;
// rounding to MoneyScale (half-up) happens only in Round and String, so
// summing many lines never accumulates rounding error.
//
// Negative amounts are representable; callers that need a non-negative
// amount (prices, fees) check IsNegative themselves.
type Money struct {
	amount decimal.Decimal
}

// ZeroMoney returns an amount of 0.
func ZeroMoney() Money {
	return Money{amount: decimal.Zero}
}

// NewMoney wraps a decimal amount.
func NewMoney(amount decimal.Decimal) Money {
	return Money{amount: amount}
}

// MoneyFromString parses amounts such as "25.90".
func MoneyFromString(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("money", fmt.Errorf("%q is not a decimal: %w", s, err))
	}
	return Money{amount: d}, nil
}

// MustMoney is MoneyFromString for literals; it panics on malformed input.
func MustMoney(s string) Money {
	m, err := MoneyFromString(s)
	if err != nil {
		panic(err)
	}
	return m
}

// Add returns m + other.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

// Multiply returns m * factor.
func (m Money) Multiply(factor int) Money {
	return Money{amount: m.amount.Mul(decimal.NewFromInt(int64(factor)))}
}

// IsNegative reports whether the amount is below zero.
func (m Money) IsNegative() bool {
	return m.amount.IsNegative()
}

// IsZero reports whether the amount equals zero.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// Equal compares amounts numerically, so 25.5 equals 25.50.
func (m Money) Equal(other Money) bool {
	return m.amount.Equal(other.amount)
}

// Decimal exposes the unrounded amount.
func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// Round returns the amount rounded half-up to MoneyScale places.
func (m Money) Round() Money {
	return Money{amount: m.amount.Round(MoneyScale)}
}

// String renders the amount with exactly two decimals, e.g. "29.00".
func (m Money) String() string {
	return m.amount.StringFixed(MoneyScale)
}
