package batch

import (
	"errors"
	"math"

	"seeder/internal/core/domain/model/kernel"
	"seeder/internal/core/domain/model/order"
	"seeder/internal/pkg/errs"
)

var ErrProgressionPlanIsNotConstructed = errs.NewValueIsRequiredError(
	"ProgressionPlan must be created via NewProgressionPlan")

// ProgressionPlan assigns an order a target completion fraction. The banding
// policy produces one plan per successfully created order; the progression
// simulator executes them.
type ProgressionPlan struct {
	order    *order.Order
	fraction float64

	isConstructed bool
}

// NewProgressionPlan creates a plan targeting the given completion fraction.
// The fraction must lie in [0, 1]; 1 means pay the order off completely.
func NewProgressionPlan(o *order.Order, fraction float64) (ProgressionPlan, error) {
	err := errors.Join(
		validateOrder(o),
		validateFraction(fraction),
	)
	if err != nil {
		return ProgressionPlan{}, err
	}

	return ProgressionPlan{
		order:    o,
		fraction: fraction,

		isConstructed: true,
	}, nil
}

func validateOrder(o *order.Order) error {
	if o == nil {
		return errs.NewValueIsRequiredError("order")
	}
	return o.Validate()
}

func validateFraction(fraction float64) error {
	if fraction < 0 || fraction > 1 {
		return errs.NewValueIsOutOfRangeError("fraction", fraction, 0.0, 1.0)
	}
	return nil
}

// Order returns the order this plan targets.
func (p ProgressionPlan) Order() *order.Order {
	return p.order
}

// Fraction returns the target completion fraction.
func (p ProgressionPlan) Fraction() float64 {
	return p.fraction
}

// AdditionalSteps returns how many installment payments the simulator must
// issue on top of the step charged at creation:
//
//	max(0, floor(totalSteps * fraction) - 1)
//
// A fraction low enough to target less than one full step yields zero; the
// creation payment already covers the first step.
func (p ProgressionPlan) AdditionalSteps() int {
	target := int(math.Floor(float64(p.order.TotalSteps()) * p.fraction))
	if target <= 1 {
		return 0
	}
	return target - 1
}

// Validate returns an error if the plan was not created through the constructor.
func (p ProgressionPlan) Validate() error {
	if !p.isConstructed {
		return ErrProgressionPlanIsNotConstructed
	}
	return nil
}

// ProgressionResult records how far the simulator advanced one order.
//
// HaltedByStepLimit marks the backend's daily installment limit, an expected
// terminal condition. Fault is set only for unexpected failures; a result can
// have neither (plan completed) but never both.
type ProgressionResult struct {
	OrderID           kernel.UUID
	StepsPlanned      int
	StepsCompleted    int
	HaltedByStepLimit bool
	Fault             *Failure
}

// Completed reports whether every planned step was paid.
func (r ProgressionResult) Completed() bool {
	return r.StepsCompleted == r.StepsPlanned && r.Fault == nil && !r.HaltedByStepLimit
}
