package commands

import (
	"context"
	"time"

	"seeder/internal/core/domain/model/batch"
	"seeder/internal/core/ports"
)

// SubmitBatchCommandHandler drives the sequential submission of a fixture
// batch against the remote backend.
//
// Execution policy:
//   - Strictly ordered: fixture i+1 is never submitted before fixture i's
//     call has returned.
//   - Paced: the pacer runs between consecutive calls, never before the
//     first one. The remote system rate-limits per identity, so pacing
//     replaces concurrency.
//   - Partial-failure tolerant: a failed unit is recorded and the batch
//     continues; no failure aborts the run and nothing is retried.
//
// The only error Handle itself returns is context cancellation surfaced by
// the pacer; everything else ends up inside the result sequence.
type SubmitBatchCommandHandler struct {
	backend ports.Backend
	pacer   ports.Pacer
}

// NewSubmitBatchCommandHandler creates a handler for batch submission.
func NewSubmitBatchCommandHandler(backend ports.Backend, pacer ports.Pacer) SubmitBatchCommandHandler {
	return SubmitBatchCommandHandler{
		backend: backend,
		pacer:   pacer,
	}
}

// Handle submits every fixture in order and returns one result per fixture.
// An empty batch returns an empty result sequence without any network call.
func (h *SubmitBatchCommandHandler) Handle(ctx context.Context, cmd SubmitBatchCommand) ([]batch.SubmissionResult, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	fixtures := cmd.Fixtures()
	results := make([]batch.SubmissionResult, 0, len(fixtures))

	for i, f := range fixtures {
		if i > 0 {
			if err := h.pacer.Pause(ctx); err != nil {
				return results, err
			}
		}

		started := time.Now()
		created, err := h.backend.CreateOrder(ctx, f)
		latency := time.Since(started)

		if err != nil {
			results = append(results, batch.NewSubmissionFailure(f, batch.FailureFromError(err), latency))
			continue
		}

		results = append(results, batch.NewSubmissionSuccess(f, created, latency))
	}

	return results, nil
}
