package pacing_test

import (
	"context"
	"testing"
	"time"

	"seeder/internal/pkg/pacing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRandomDelayPacer(t *testing.T) {
	t.Run("valid bounds", func(t *testing.T) {
		p, err := pacing.NewRandomDelayPacer(500*time.Millisecond, 1500*time.Millisecond)
		require.NoError(t, err)
		assert.NotNil(t, p)
	})

	t.Run("zero min delay is rejected", func(t *testing.T) {
		_, err := pacing.NewRandomDelayPacer(0, time.Second)
		require.Error(t, err)
	})

	t.Run("max below min is rejected", func(t *testing.T) {
		_, err := pacing.NewRandomDelayPacer(time.Second, 500*time.Millisecond)
		require.Error(t, err)
	})
}

func TestRandomDelayPacer_Pause(t *testing.T) {
	t.Run("waits at least the lower bound", func(t *testing.T) {
		p, err := pacing.NewFixedDelayPacer(20 * time.Millisecond)
		require.NoError(t, err)

		start := time.Now()
		require.NoError(t, p.Pause(context.Background()))
		assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
	})

	t.Run("cancelled context ends the pause", func(t *testing.T) {
		p, err := pacing.NewFixedDelayPacer(10 * time.Second)
		require.NoError(t, err)

		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()

		start := time.Now()
		err = p.Pause(ctx)
		require.ErrorIs(t, err, context.DeadlineExceeded)
		assert.Less(t, time.Since(start), time.Second)
	})
}
