package fixture

import (
	"fmt"

	"seeder/internal/pkg/errs"
	"seeder/internal/pkg/guard"
)

// ErrFixtureIsNotConstructed is returned when a Fixture instance was not
// created through NewFixture or GenerateFixtures.
var ErrFixtureIsNotConstructed = errs.NewValueIsRequiredError(
	"Fixture must be created via NewFixture or GenerateFixtures")

// Fixture is one immutable unit of work for the submission driver: an order
// plan paired with the delivery address selected for it. The index records
// the fixture's position in the catalog and drives both the address pairing
// and the reporting order.
type Fixture struct { //nolint:recvcheck //using for validation
	index   int
	plan    Plan
	address Address

	guard guard.ConstructorGuard
}

// NewFixture creates a fixture from an already validated plan and address.
// GenerateFixtures is the usual entry point; NewFixture exists for tests and
// for callers that do their own pairing.
func NewFixture(index int, plan Plan, address Address) (Fixture, error) {
	if index < 0 {
		return Fixture{}, errs.NewValueIsInvalidErrorWithCause(
			"index is invalid",
			fmt.Errorf("%d is negative", index),
		)
	}
	if err := plan.Validate(); err != nil {
		return Fixture{}, err
	}
	if err := address.Validate(); err != nil {
		return Fixture{}, err
	}

	return Fixture{
		index:   index,
		plan:    plan,
		address: address,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the fixture was created through a constructor.
func (f Fixture) Validate() error {
	return f.guard.Validate(ErrFixtureIsNotConstructed)
}

// Index returns the fixture's position in the catalog.
func (f Fixture) Index() int {
	return f.index
}

// Plan returns the order configuration to submit.
func (f Fixture) Plan() Plan {
	return f.plan
}

// Address returns the delivery address paired with this fixture.
func (f Fixture) Address() Address {
	return f.address
}
