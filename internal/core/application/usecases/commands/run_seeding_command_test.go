package commands_test

import (
	"testing"

	"seeder/internal/core/application/usecases/commands"
	"seeder/internal/core/domain/model/fixture"
	"seeder/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPool(t *testing.T, n int) []fixture.Address {
	t.Helper()

	streets := []string{"12 Marina Road", "4 Harbor Lane", "77 Ridge Close"}
	pool := make([]fixture.Address, 0, n)
	for i := range n {
		addr, err := fixture.NewAddress(streets[i%len(streets)], "Lagos")
		require.NoError(t, err)
		pool = append(pool, addr)
	}
	return pool
}

func testOrderPlans(t *testing.T, n, durationSteps int) []fixture.Plan {
	t.Helper()

	rate, err := kernel.NewMoney(2500)
	require.NoError(t, err)

	plans := make([]fixture.Plan, 0, n)
	for range n {
		plan, planErr := fixture.NewPlan(1, durationSteps, rate, kernel.Wallet)
		require.NoError(t, planErr)
		plans = append(plans, plan)
	}
	return plans
}

func TestNewRunSeedingCommand(t *testing.T) {
	t.Run("valid command", func(t *testing.T) {
		cmd, err := commands.NewRunSeedingCommand(testPool(t, 2), testOrderPlans(t, 3, 12))

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Len(t, cmd.Pool(), 2)
		assert.Len(t, cmd.Plans(), 3)
	})

	t.Run("empty pool is rejected", func(t *testing.T) {
		_, err := commands.NewRunSeedingCommand(nil, testOrderPlans(t, 3, 12))

		require.Error(t, err)
		require.ErrorIs(t, err, fixture.ErrAddressPoolIsEmpty)
	})

	t.Run("unconstructed address is rejected", func(t *testing.T) {
		_, err := commands.NewRunSeedingCommand([]fixture.Address{{}}, testOrderPlans(t, 1, 12))
		require.Error(t, err)
	})

	t.Run("unconstructed plan is rejected", func(t *testing.T) {
		_, err := commands.NewRunSeedingCommand(testPool(t, 1), []fixture.Plan{{}})
		require.Error(t, err)
	})

	t.Run("no plans is a valid empty run", func(t *testing.T) {
		cmd, err := commands.NewRunSeedingCommand(testPool(t, 2), nil)

		require.NoError(t, err)
		assert.Empty(t, cmd.Plans())
	})
}

func TestRunSeedingCommand_Validate(t *testing.T) {
	var cmd commands.RunSeedingCommand

	err := cmd.Validate()
	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrRunSeedingCommandIsNotConstructed)
}
