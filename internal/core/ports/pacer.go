package ports

import "context"

// Pacer inserts the delay between consecutive outbound calls. The remote
// system rate-limits per identity, so the driver paces rather than retries.
type Pacer interface {
	// Pause blocks for one pacing interval or until the context is
	// cancelled, whichever comes first. Returns the context error on
	// cancellation so a run can end between calls.
	Pause(ctx context.Context) error
}
