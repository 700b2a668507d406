package commands

import (
	"errors"

	"seeder/internal/core/domain/model/fixture"
	"seeder/internal/pkg/guard"
)

var ErrRunSeedingCommandIsNotConstructed = errors.New(
	"RunSeedingCommand must be created via NewRunSeedingCommand constructor",
)

// RunSeedingCommand represents a request to execute one full seeding run:
// generate the fixture catalog from the given pool and plans, submit it,
// band the created orders, and advance each through its installments.
//
// Example:
//
//	cmd, err := NewRunSeedingCommand(pool, plans)
//	if err != nil {
//	    return fmt.Errorf("invalid run: %w", err)
//	}
//
//	report, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("seeding run failed: %w", err)
//	}
//	fmt.Print(report)
type RunSeedingCommand struct { //nolint:recvcheck //using for validation
	pool  []fixture.Address
	plans []fixture.Plan

	guard guard.ConstructorGuard
}

// NewRunSeedingCommand creates a command from an address pool and order
// plans. The pool must not be empty; that is the one fatal precondition of
// a run.
func NewRunSeedingCommand(pool []fixture.Address, plans []fixture.Plan) (RunSeedingCommand, error) {
	runCommand := RunSeedingCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		runCommand.setPool(pool),
		runCommand.setPlans(plans),
	); err != nil {
		return RunSeedingCommand{}, err
	}

	return runCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRunSeedingCommandIsNotConstructed if validation fails.
func (c RunSeedingCommand) Validate() error {
	return c.guard.Validate(ErrRunSeedingCommandIsNotConstructed)
}

// Pool returns the address pool fixtures draw from.
func (c RunSeedingCommand) Pool() []fixture.Address {
	return c.pool
}

// Plans returns the order plans, one fixture per plan.
func (c RunSeedingCommand) Plans() []fixture.Plan {
	return c.plans
}

func (c *RunSeedingCommand) setPool(pool []fixture.Address) error {
	if len(pool) == 0 {
		return fixture.ErrAddressPoolIsEmpty
	}

	for _, addr := range pool {
		if err := addr.Validate(); err != nil {
			return err
		}
	}

	c.pool = pool
	return nil
}

func (c *RunSeedingCommand) setPlans(plans []fixture.Plan) error {
	for _, p := range plans {
		if err := p.Validate(); err != nil {
			return err
		}
	}

	c.plans = plans
	return nil
}
