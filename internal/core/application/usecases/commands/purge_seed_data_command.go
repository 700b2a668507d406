package commands

import (
	"errors"

	"seeder/internal/pkg/guard"
)

var ErrPurgeSeedDataCommandIsNotConstructed = errors.New(
	"PurgeSeedDataCommand must be created via NewPurgeSeedDataCommand constructor",
)

// PurgeSeedDataCommand represents a request to wipe the local seed ledger.
// Used between runs so stale rows never pollute counts or progression.
type PurgeSeedDataCommand struct {
	guard guard.ConstructorGuard
}

// NewPurgeSeedDataCommand creates a purge command.
func NewPurgeSeedDataCommand() PurgeSeedDataCommand {
	return PurgeSeedDataCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
// Returns ErrPurgeSeedDataCommandIsNotConstructed if validation fails.
func (c PurgeSeedDataCommand) Validate() error {
	return c.guard.Validate(ErrPurgeSeedDataCommandIsNotConstructed)
}
