package kernel

import (
	"fmt"

	"seeder/internal/pkg/errs"
	"seeder/internal/pkg/guard"
)

// ErrMoneyIsNotConstructed is returned when a Money instance was not created
// through NewMoney. Zero-value amounts must be expressed as NewMoney(0).
var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError("Money must be created via NewMoney")

// Money represents a monetary amount in minor units (e.g., cents).
// The backend quotes all rates and totals in minor units, so no floating
// point arithmetic ever touches an amount.
//
// Money is an immutable value object; the zero value is invalid.
//
// Example:
//
//	rate, err := kernel.NewMoney(2500) // 25.00 in minor units
//	if err != nil {
//	    // handle validation error
//	}
//	total := rate.MultiplySteps(12)
type Money struct { //nolint:recvcheck //using for validation
	amount int64
	guard  guard.ConstructorGuard
}

// NewMoney creates a Money value from an amount in minor units.
// Negative amounts are rejected: the seeder only ever deals with prices
// and remaining balances, never refunds.
func NewMoney(amount int64) (Money, error) {
	if amount < 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"amount is invalid",
			fmt.Errorf("%d is negative", amount),
		)
	}

	return Money{
		amount: amount,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Money value was created through NewMoney.
func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}

// Amount returns the amount in minor units.
func (m Money) Amount() int64 {
	return m.amount
}

// Add returns the sum of two Money values.
func (m Money) Add(other Money) Money {
	sum, _ := NewMoney(m.amount + other.amount)
	return sum
}

// MultiplySteps returns the amount multiplied by a step count.
// Used to derive an order's total from its per-step rate.
func (m Money) MultiplySteps(steps int) Money {
	product, _ := NewMoney(m.amount * int64(steps))
	return product
}

// IsEqual reports whether two Money values represent the same amount.
func (m Money) IsEqual(other Money) bool {
	return m.amount == other.amount
}

// String formats the amount as major.minor, e.g. "25.00".
func (m Money) String() string {
	return fmt.Sprintf("%d.%02d", m.amount/100, m.amount%100)
}
