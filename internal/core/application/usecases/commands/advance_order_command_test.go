package commands_test

import (
	"testing"

	"seeder/internal/core/application/usecases/commands"
	"seeder/internal/core/domain/model/batch"
	"seeder/internal/core/domain/model/kernel"
	"seeder/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPlan(t *testing.T, totalSteps int, fraction float64) batch.ProgressionPlan {
	t.Helper()

	rate, err := kernel.NewMoney(2500)
	require.NoError(t, err)
	o, err := order.NewOrder(kernel.NewUUID(), rate, kernel.Wallet, totalSteps)
	require.NoError(t, err)
	plan, err := batch.NewProgressionPlan(o, fraction)
	require.NoError(t, err)
	return plan
}

func TestNewAdvanceOrderCommand(t *testing.T) {
	t.Run("valid command", func(t *testing.T) {
		plan := testPlan(t, 12, 0.5)

		cmd, err := commands.NewAdvanceOrderCommand(plan)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Equal(t, plan, cmd.Plan())
	})

	t.Run("unconstructed plan is rejected", func(t *testing.T) {
		_, err := commands.NewAdvanceOrderCommand(batch.ProgressionPlan{})
		require.Error(t, err)
	})
}

func TestAdvanceOrderCommand_Validate(t *testing.T) {
	var cmd commands.AdvanceOrderCommand

	err := cmd.Validate()
	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrAdvanceOrderCommandIsNotConstructed)
}
