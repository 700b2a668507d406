package batch_test

import (
	"errors"
	"testing"
	"time"

	"seeder/internal/core/domain/model/batch"
	"seeder/internal/core/domain/model/fixture"
	"seeder/internal/core/domain/model/kernel"
	"seeder/internal/core/domain/model/order"
	"seeder/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFixture(t *testing.T, index int) fixture.Fixture {
	t.Helper()

	rate, err := kernel.NewMoney(2500)
	require.NoError(t, err)
	plan, err := fixture.NewPlan(1, 12, rate, kernel.Wallet)
	require.NoError(t, err)
	addr, err := fixture.NewAddress("12 Marina Road", "Lagos")
	require.NoError(t, err)
	f, err := fixture.NewFixture(index, plan, addr)
	require.NoError(t, err)
	return f
}

func testOrder(t *testing.T, totalSteps int) *order.Order {
	t.Helper()

	rate, err := kernel.NewMoney(2500)
	require.NoError(t, err)
	o, err := order.NewOrder(kernel.NewUUID(), rate, kernel.Wallet, totalSteps)
	require.NoError(t, err)
	return o
}

func TestSubmissionResult(t *testing.T) {
	t.Run("success carries the order", func(t *testing.T) {
		f := testFixture(t, 0)
		o := testOrder(t, 12)

		result := batch.NewSubmissionSuccess(f, o, 120*time.Millisecond)

		assert.True(t, result.Succeeded())
		assert.Same(t, o, result.Order())
		assert.Nil(t, result.Failure())
		assert.Equal(t, 120*time.Millisecond, result.Latency())
	})

	t.Run("failure carries the reason", func(t *testing.T) {
		f := testFixture(t, 3)
		failure := batch.Failure{Kind: batch.ValidationFailure, Message: "street is required", StatusCode: 422}

		result := batch.NewSubmissionFailure(f, failure, 40*time.Millisecond)

		assert.False(t, result.Succeeded())
		assert.Nil(t, result.Order())
		require.NotNil(t, result.Failure())
		assert.Equal(t, batch.ValidationFailure, result.Failure().Kind)
		assert.Equal(t, 3, result.Fixture().Index())
	})
}

func TestFailureFromError(t *testing.T) {
	t.Run("transport error", func(t *testing.T) {
		err := errs.NewTransportError("create order", errors.New("connection refused"))

		failure := batch.FailureFromError(err)

		assert.Equal(t, batch.TransportFailure, failure.Kind)
		assert.Zero(t, failure.StatusCode)
	})

	t.Run("request rejected", func(t *testing.T) {
		err := errs.NewRequestRejectedError(422, "street is required")

		failure := batch.FailureFromError(err)

		assert.Equal(t, batch.ValidationFailure, failure.Kind)
		assert.Equal(t, 422, failure.StatusCode)
		assert.Equal(t, "street is required", failure.Message)
	})

	t.Run("installment limit", func(t *testing.T) {
		err := errs.NewInstallmentLimitError("abc", "you have already made a payment for this order today")

		failure := batch.FailureFromError(err)

		assert.Equal(t, batch.BusinessRuleFailure, failure.Kind)
	})

	t.Run("unexpected response", func(t *testing.T) {
		err := errs.NewUnexpectedResponseError(502, "bad gateway")

		failure := batch.FailureFromError(err)

		assert.Equal(t, batch.UnexpectedFailure, failure.Kind)
		assert.Equal(t, 502, failure.StatusCode)
	})

	t.Run("unclassified error falls back to unexpected", func(t *testing.T) {
		failure := batch.FailureFromError(errors.New("boom"))

		assert.Equal(t, batch.UnexpectedFailure, failure.Kind)
		assert.Equal(t, "boom", failure.Message)
	})

	t.Run("wrapped errors are still classified", func(t *testing.T) {
		err := errs.NewRequestRejectedError(400, "bad payload")
		wrapped := errors.Join(errors.New("submitting fixture 2"), err)

		failure := batch.FailureFromError(wrapped)

		assert.Equal(t, batch.ValidationFailure, failure.Kind)
	})
}

func TestFailure_String(t *testing.T) {
	withStatus := batch.Failure{Kind: batch.ValidationFailure, Message: "street is required", StatusCode: 422}
	assert.Equal(t, "validation (422): street is required", withStatus.String())

	withoutStatus := batch.Failure{Kind: batch.TransportFailure, Message: "connection refused"}
	assert.Equal(t, "transport: connection refused", withoutStatus.String())
}
