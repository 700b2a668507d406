package commands

import (
	"errors"

	"seeder/internal/core/domain/model/batch"
	"seeder/internal/pkg/guard"
)

var ErrAdvanceOrderCommandIsNotConstructed = errors.New(
	"AdvanceOrderCommand must be created via NewAdvanceOrderCommand constructor",
)

// AdvanceOrderCommand represents a request to advance one created order
// through its planned installment steps.
type AdvanceOrderCommand struct { //nolint:recvcheck //using for validation
	plan batch.ProgressionPlan

	guard guard.ConstructorGuard
}

// NewAdvanceOrderCommand creates a command from a progression plan produced
// by the banding policy.
func NewAdvanceOrderCommand(plan batch.ProgressionPlan) (AdvanceOrderCommand, error) {
	advanceCommand := AdvanceOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := advanceCommand.setPlan(plan); err != nil {
		return AdvanceOrderCommand{}, err
	}

	return advanceCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAdvanceOrderCommandIsNotConstructed if validation fails.
func (c AdvanceOrderCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceOrderCommandIsNotConstructed)
}

// Plan returns the progression plan to execute.
func (c AdvanceOrderCommand) Plan() batch.ProgressionPlan {
	return c.plan
}

func (c *AdvanceOrderCommand) setPlan(plan batch.ProgressionPlan) error {
	if err := plan.Validate(); err != nil {
		return err
	}

	c.plan = plan
	return nil
}
