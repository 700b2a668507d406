package commands

import (
	"context"
	"errors"

	"seeder/internal/core/domain/model/batch"
	"seeder/internal/core/ports"
	"seeder/internal/pkg/errs"
)

// AdvanceOrderCommandHandler executes one order's progression plan: it issues
// the planned number of installment payments sequentially, pacing before
// every call because each payment depends on the previous one having been
// applied.
//
// Halt policy:
//   - The backend's one-installment-per-day rule is an expected terminal
//     condition: progression stops, the result is flagged, no fault is
//     recorded.
//   - Any other failure also stops progression for this order (to avoid
//     cascading errors) but is recorded as a fault.
//   - Context cancellation surfaced by the pacer ends the run and is the
//     only error Handle returns.
type AdvanceOrderCommandHandler struct {
	backend ports.Backend
	pacer   ports.Pacer
}

// NewAdvanceOrderCommandHandler creates a handler for order progression.
func NewAdvanceOrderCommandHandler(backend ports.Backend, pacer ports.Pacer) AdvanceOrderCommandHandler {
	return AdvanceOrderCommandHandler{
		backend: backend,
		pacer:   pacer,
	}
}

// Handle pays the plan's additional steps one at a time and reports how far
// the order got. A plan with zero additional steps returns immediately
// without any network call.
func (h *AdvanceOrderCommandHandler) Handle(ctx context.Context, cmd AdvanceOrderCommand) (batch.ProgressionResult, error) {
	if err := cmd.Validate(); err != nil {
		return batch.ProgressionResult{}, err
	}

	plan := cmd.Plan()
	target := plan.Order()
	result := batch.ProgressionResult{
		OrderID:      target.ID(),
		StepsPlanned: plan.AdditionalSteps(),
	}

	for range plan.AdditionalSteps() {
		if err := h.pacer.Pause(ctx); err != nil {
			return result, err
		}

		_, err := h.backend.PayInstallment(ctx, target.ID(), target.PaymentMethod())
		if err != nil {
			if errors.Is(err, errs.ErrInstallmentLimitReached) {
				result.HaltedByStepLimit = true
				return result, nil
			}

			fault := batch.FailureFromError(err)
			result.Fault = &fault
			return result, nil
		}

		if _, err = target.RecordPayment(); err != nil {
			fault := batch.FailureFromError(err)
			result.Fault = &fault
			return result, nil
		}

		result.StepsCompleted++
	}

	return result, nil
}
