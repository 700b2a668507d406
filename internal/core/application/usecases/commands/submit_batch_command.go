package commands

import (
	"errors"

	"seeder/internal/core/domain/model/fixture"
	"seeder/internal/pkg/guard"
)

var ErrSubmitBatchCommandIsNotConstructed = errors.New(
	"SubmitBatchCommand must be created via NewSubmitBatchCommand constructor",
)

// SubmitBatchCommand represents a request to submit a batch of fixtures to
// the remote backend, one order per fixture, in fixture order.
//
// Example:
//
//	fixtures, _ := fixture.GenerateFixtures(pool, plans)
//	cmd, err := NewSubmitBatchCommand(fixtures)
//	if err != nil {
//	    return fmt.Errorf("invalid batch: %w", err)
//	}
//
//	handler := NewSubmitBatchCommandHandler(backend, pacer)
//	results, err := handler.Handle(ctx, cmd)
type SubmitBatchCommand struct { //nolint:recvcheck //using for validation
	fixtures []fixture.Fixture

	guard guard.ConstructorGuard
}

// NewSubmitBatchCommand creates a command from a fixture catalog.
// Every fixture must have been built by the catalog generator; an empty
// batch is valid and submits nothing.
func NewSubmitBatchCommand(fixtures []fixture.Fixture) (SubmitBatchCommand, error) {
	batchCommand := SubmitBatchCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := batchCommand.setFixtures(fixtures); err != nil {
		return SubmitBatchCommand{}, err
	}

	return batchCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrSubmitBatchCommandIsNotConstructed if validation fails.
func (c SubmitBatchCommand) Validate() error {
	return c.guard.Validate(ErrSubmitBatchCommandIsNotConstructed)
}

// Fixtures returns the fixtures to submit, in submission order.
func (c SubmitBatchCommand) Fixtures() []fixture.Fixture {
	return c.fixtures
}

func (c *SubmitBatchCommand) setFixtures(fixtures []fixture.Fixture) error {
	for _, f := range fixtures {
		if err := f.Validate(); err != nil {
			return err
		}
	}

	c.fixtures = fixtures
	return nil
}
