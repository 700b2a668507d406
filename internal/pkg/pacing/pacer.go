// Package pacing implements the inter-request delay the seeder inserts between
// outbound calls. The remote backend rate-limits per identity, so the driver
// never fires back-to-back requests; every pause is context-aware so an
// externally cancelled run stops between calls rather than mid-flight.
package pacing

import (
	"context"
	"math/rand/v2"
	"time"

	"seeder/internal/pkg/errs"
)

const (
	// DefaultMinDelay is the default lower bound of the submission pacing window.
	DefaultMinDelay = 500 * time.Millisecond
	// DefaultMaxDelay is the default upper bound of the submission pacing window.
	DefaultMaxDelay = 1500 * time.Millisecond
	// DefaultProgressionDelay is the default fixed delay between dependent
	// installment calls for one order.
	DefaultProgressionDelay = 500 * time.Millisecond
)

// RandomDelayPacer pauses for a uniformly random duration within [min, max].
// With min == max the delay is fixed. The zero value is unusable; construct
// with NewRandomDelayPacer or NewFixedDelayPacer.
type RandomDelayPacer struct {
	min time.Duration
	max time.Duration
}

// NewRandomDelayPacer creates a pacer with a jittered delay in [min, max].
// The lower bound must be positive: a zero delay would hammer the backend's
// shared rate limiter, which is exactly what pacing exists to avoid.
func NewRandomDelayPacer(minDelay, maxDelay time.Duration) (*RandomDelayPacer, error) {
	if minDelay <= 0 {
		return nil, errs.NewValueIsInvalidError("minDelay must be positive")
	}
	if maxDelay < minDelay {
		return nil, errs.NewValueIsOutOfRangeError("maxDelay", maxDelay, minDelay, time.Duration(1<<62))
	}
	return &RandomDelayPacer{min: minDelay, max: maxDelay}, nil
}

// NewFixedDelayPacer creates a pacer with a constant delay.
func NewFixedDelayPacer(delay time.Duration) (*RandomDelayPacer, error) {
	return NewRandomDelayPacer(delay, delay)
}

// Pause blocks for the next delay or until ctx is cancelled.
// Returns ctx.Err() when the context ends first.
func (p *RandomDelayPacer) Pause(ctx context.Context) error {
	d := p.min
	if p.max > p.min {
		d += time.Duration(rand.Int64N(int64(p.max-p.min) + 1))
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
