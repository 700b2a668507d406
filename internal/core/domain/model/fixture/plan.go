package fixture

import (
	"errors"
	"fmt"

	"seeder/internal/core/domain/model/kernel"
	"seeder/internal/pkg/errs"
	"seeder/internal/pkg/guard"
)

const (
	// MinDurationSteps is the shortest installment schedule the backend accepts.
	MinDurationSteps = 1
	// MaxDurationSteps is the longest installment schedule the backend accepts.
	MaxDurationSteps = 60
)

// ErrPlanIsNotConstructed is returned when a Plan instance was not created
// through NewPlan.
var ErrPlanIsNotConstructed = errs.NewValueIsRequiredError("Plan must be created via NewPlan")

// Plan is the order configuration half of a fixture: how many items to order,
// over how many installment steps, at what per-step rate, and how each step
// is paid. Plans are immutable; the zero value is invalid.
//
// Plan follows these invariants:
//   - Quantity must be positive
//   - Duration steps must lie within [MinDurationSteps, MaxDurationSteps]
//   - The per-step rate must be a constructed, non-zero Money value
//   - The payment method must be valid
//
// Example:
//
//	rate, _ := kernel.NewMoney(2500)
//	plan, err := fixture.NewPlan(2, 12, rate, kernel.Wallet)
//	if err != nil {
//	    // handle validation error
//	}
type Plan struct { //nolint:recvcheck //using for validation
	quantity      int
	durationSteps int
	ratePerStep   kernel.Money
	paymentMethod kernel.PaymentMethod

	guard guard.ConstructorGuard
}

// NewPlan creates an order plan, validating every field.
func NewPlan(
	quantity int,
	durationSteps int,
	ratePerStep kernel.Money,
	paymentMethod kernel.PaymentMethod,
) (Plan, error) {
	plan := Plan{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		plan.setQuantity(quantity),
		plan.setDurationSteps(durationSteps),
		plan.setRatePerStep(ratePerStep),
		plan.setPaymentMethod(paymentMethod),
	); err != nil {
		return Plan{}, err
	}

	return plan, nil
}

// Validate ensures the plan was created through NewPlan.
func (p Plan) Validate() error {
	return p.guard.Validate(ErrPlanIsNotConstructed)
}

// Quantity returns the number of items to order.
func (p Plan) Quantity() int {
	return p.quantity
}

// DurationSteps returns the total number of installment steps.
func (p Plan) DurationSteps() int {
	return p.durationSteps
}

// RatePerStep returns the amount charged per installment step.
func (p Plan) RatePerStep() kernel.Money {
	return p.ratePerStep
}

// PaymentMethod returns how each installment is paid.
func (p Plan) PaymentMethod() kernel.PaymentMethod {
	return p.paymentMethod
}

// TotalValue returns the plan's full price: rate per step times duration.
func (p Plan) TotalValue() kernel.Money {
	return p.ratePerStep.MultiplySteps(p.durationSteps)
}

// String formats the plan for failure lines in the run report.
func (p Plan) String() string {
	return fmt.Sprintf("%dx over %d steps @ %s via %s",
		p.quantity, p.durationSteps, p.ratePerStep, p.paymentMethod)
}

func (p *Plan) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity is invalid",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}
	p.quantity = quantity
	return nil
}

func (p *Plan) setDurationSteps(durationSteps int) error {
	if durationSteps < MinDurationSteps || durationSteps > MaxDurationSteps {
		return errs.NewValueIsOutOfRangeError("durationSteps", durationSteps, MinDurationSteps, MaxDurationSteps)
	}
	p.durationSteps = durationSteps
	return nil
}

func (p *Plan) setRatePerStep(ratePerStep kernel.Money) error {
	if err := ratePerStep.Validate(); err != nil {
		return err
	}
	if ratePerStep.Amount() == 0 {
		return errs.NewValueIsInvalidError("ratePerStep must be greater than zero")
	}
	p.ratePerStep = ratePerStep
	return nil
}

func (p *Plan) setPaymentMethod(paymentMethod kernel.PaymentMethod) error {
	if err := paymentMethod.Validate(); err != nil {
		return err
	}
	p.paymentMethod = paymentMethod
	return nil
}
