package order

import (
	"errors"
	"fmt"

	"seeder/internal/core/domain/model/kernel"
	"seeder/internal/pkg/errs"
)

var ErrOrderIsNotConstructed = errs.NewValueIsRequiredError("order must be created via NewOrder or RestoreOrder")

// Order is a local reference to an order owned by the remote backend.
//
// The identifier is generated client-side before submission, which makes the
// create request idempotent: resubmitting the same identifier cannot produce
// a second order. Creation charges the first installment, so paidSteps starts
// at 1 and an order with a single step is born Settled.
//
// Invariants (enforced by constructors and RecordPayment):
//   - 1 <= paidSteps <= totalSteps
//   - status is Settled if and only if paidSteps == totalSteps
type Order struct {
	id            kernel.UUID
	status        Status
	ratePerStep   kernel.Money
	paymentMethod kernel.PaymentMethod
	paidSteps     int
	totalSteps    int

	isConstructed bool
}

// PaymentStep describes one recorded installment: which step number was paid
// and the balance the backend reports as still outstanding after it.
type PaymentStep struct {
	StepNumber int
	Remaining  kernel.Money
}

// NewOrder creates a reference to a freshly created remote order.
// The first installment is charged at creation, so the reference starts with
// one paid step; a one-step order is already Settled.
func NewOrder(id kernel.UUID, ratePerStep kernel.Money, paymentMethod kernel.PaymentMethod, totalSteps int) (*Order, error) {
	err := errors.Join(
		id.Validate(),
		ratePerStep.Validate(),
		paymentMethod.Validate(),
		validateTotalSteps(totalSteps),
	)
	if err != nil {
		return nil, err
	}

	status := Active
	if totalSteps == 1 {
		status = Settled
	}

	return &Order{
		id:            id,
		status:        status,
		ratePerStep:   ratePerStep,
		paymentMethod: paymentMethod,
		paidSteps:     1,
		totalSteps:    totalSteps,

		isConstructed: true,
	}, nil
}

// RestoreOrder reconstructs a reference from externally held state, for
// example a row read back from the seed ledger. Unlike NewOrder it accepts
// any consistent paidSteps/status combination.
func RestoreOrder(
	id kernel.UUID,
	status Status,
	ratePerStep kernel.Money,
	paymentMethod kernel.PaymentMethod,
	paidSteps int,
	totalSteps int,
) (*Order, error) {
	err := errors.Join(
		id.Validate(),
		status.Validate(),
		ratePerStep.Validate(),
		paymentMethod.Validate(),
		validateTotalSteps(totalSteps),
	)
	if err != nil {
		return nil, err
	}

	if paidSteps < 1 || paidSteps > totalSteps {
		return nil, errs.NewValueIsOutOfRangeError("paidSteps", paidSteps, 1, totalSteps)
	}

	settled := paidSteps == totalSteps
	if settled != (status == Settled) {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s does not match %d of %d paid steps", status.String(), paidSteps, totalSteps),
		)
	}

	return &Order{
		id:            id,
		status:        status,
		ratePerStep:   ratePerStep,
		paymentMethod: paymentMethod,
		paidSteps:     paidSteps,
		totalSteps:    totalSteps,

		isConstructed: true,
	}, nil
}

func validateTotalSteps(totalSteps int) error {
	if totalSteps < 1 {
		return errs.NewValueIsInvalidError("totalSteps must be positive")
	}
	return nil
}

// ID returns the client-generated order identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Status returns the current installment lifecycle state.
func (o *Order) Status() Status {
	return o.status
}

// RatePerStep returns the amount charged per installment step.
func (o *Order) RatePerStep() kernel.Money {
	return o.ratePerStep
}

// PaymentMethod returns the method installments are paid with.
func (o *Order) PaymentMethod() kernel.PaymentMethod {
	return o.paymentMethod
}

// PaidSteps returns how many installment steps have been paid so far,
// including the step charged at creation.
func (o *Order) PaidSteps() int {
	return o.paidSteps
}

// TotalSteps returns the total number of installment steps in the plan.
func (o *Order) TotalSteps() int {
	return o.totalSteps
}

// IsSettled reports whether every installment step has been paid.
func (o *Order) IsSettled() bool {
	return o.status == Settled
}

// RecordPayment advances the local mirror after the backend accepted one
// installment payment. Returns the step that was paid and the remaining
// balance. Fails if the order is already Settled.
func (o *Order) RecordPayment() (PaymentStep, error) {
	if err := o.Validate(); err != nil {
		return PaymentStep{}, err
	}

	next := o.paidSteps + 1
	newStatus, err := o.status.Pay(next == o.totalSteps)
	if err != nil {
		return PaymentStep{}, err
	}

	o.paidSteps = next
	o.status = newStatus

	return PaymentStep{StepNumber: next, Remaining: o.Remaining()}, nil
}

// Remaining returns the outstanding balance: rate per step multiplied by the
// number of unpaid steps. Settled orders owe zero.
func (o *Order) Remaining() kernel.Money {
	return o.ratePerStep.MultiplySteps(o.totalSteps - o.paidSteps)
}

// TotalValue returns the full price of the order across all steps.
func (o *Order) TotalValue() kernel.Money {
	return o.ratePerStep.MultiplySteps(o.totalSteps)
}

// Validate returns an error if the order was not created through a constructor.
func (o *Order) Validate() error {
	if !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}
