package guard_test

import (
	"errors"
	"testing"

	"seeder/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConstructorGuard(t *testing.T) {
	t.Run("creates_properly_constructed_guard", func(t *testing.T) {
		// When
		g := guard.NewConstructorGuard()

		// Then
		customError := errors.New("test object not constructed")
		require.NoError(t, g.Validate(customError))
		require.NoError(t, g.Validate(nil))
	})
}

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("properly_constructed_guard_returns_nil", func(t *testing.T) {
		// Given
		g := guard.NewConstructorGuard()
		customError := errors.New("not constructed")

		// When
		err := g.Validate(customError)

		// Then
		require.NoError(t, err)
	})

	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard // zero value
		expectedError := errors.New("entity not constructed")

		// When
		err := g.Validate(expectedError)

		// Then
		require.Error(t, err)
		assert.Equal(t, expectedError, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard // zero value

		// When
		err := g.Validate(nil)

		// Then
		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})
}

// TestConstructorGuardUsageExample demonstrates how ConstructorGuard is used
// by the fixture value objects to enforce constructor usage.
func TestConstructorGuardUsageExample(t *testing.T) {
	type plan struct {
		quantity int
		steps    int
		guard    guard.ConstructorGuard
	}

	var errPlanNotConstructed = errors.New("plan must be created via its constructor")

	newPlan := func(quantity, steps int) (plan, error) {
		if quantity <= 0 {
			return plan{}, errors.New("quantity must be positive")
		}
		if steps <= 0 {
			return plan{}, errors.New("steps must be positive")
		}
		return plan{
			quantity: quantity,
			steps:    steps,
			guard:    guard.NewConstructorGuard(),
		}, nil
	}

	validatePlan := func(p plan) error {
		return p.guard.Validate(errPlanNotConstructed)
	}

	t.Run("valid_construction_through_constructor", func(t *testing.T) {
		// When
		p, err := newPlan(1, 12)

		// Then
		require.NoError(t, err)
		require.NoError(t, validatePlan(p))
		assert.Equal(t, 1, p.quantity)
		assert.Equal(t, 12, p.steps)
	})

	t.Run("zero_value_construction_fails_validation", func(t *testing.T) {
		// Given
		var p plan // zero value

		// When
		err := validatePlan(p)

		// Then
		require.Error(t, err)
		assert.Equal(t, errPlanNotConstructed, err)
	})

	t.Run("constructor_validates_business_rules", func(t *testing.T) {
		_, err := newPlan(0, 12)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "quantity must be positive")

		_, err = newPlan(1, 0)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "steps must be positive")
	})
}

// TestConstructorGuardDefaultError verifies the default error behavior.
func TestConstructorGuardDefaultError(t *testing.T) {
	t.Run("default_error_constant_has_meaningful_message", func(t *testing.T) {
		require.Error(t, guard.ErrDefaultConstructorGuard)
		assert.Equal(t, "object must be created via its constructor", guard.ErrDefaultConstructorGuard.Error())
	})
}

// TestConstructorGuardImmutability verifies guards can be safely copied by value.
func TestConstructorGuardImmutability(t *testing.T) {
	t.Run("guard_can_be_safely_passed_by_value", func(t *testing.T) {
		// Given
		g := guard.NewConstructorGuard()
		testError := errors.New("test error")

		// When
		guardCopy := g

		// Then
		require.NoError(t, g.Validate(testError))
		require.NoError(t, guardCopy.Validate(testError))
	})
}
