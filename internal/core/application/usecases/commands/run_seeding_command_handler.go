package commands

import (
	"context"

	"seeder/internal/core/domain/model/batch"
	"seeder/internal/core/domain/model/fixture"
	"seeder/internal/core/domain/model/order"
	"seeder/internal/core/domain/services"
)

// RunSeedingCommandHandler orchestrates a full seeding run:
//
//	catalog -> submission driver -> seed ledger -> banding -> progression -> report
//
// Each stage is a separate handler or domain service; this handler only
// wires them in order and records created orders in the local ledger so
// purge and inspection commands can find them later.
type RunSeedingCommandHandler struct {
	submitHandler  SubmitBatchCommandHandler
	advanceHandler AdvanceOrderCommandHandler
	bander         services.ProgressionBander
	uowFactory     OrderRecordUoWFactory
}

// NewRunSeedingCommandHandler creates a handler for the full pipeline.
func NewRunSeedingCommandHandler(
	submitHandler SubmitBatchCommandHandler,
	advanceHandler AdvanceOrderCommandHandler,
	bander services.ProgressionBander,
	uowFactory OrderRecordUoWFactory,
) RunSeedingCommandHandler {
	return RunSeedingCommandHandler{
		submitHandler:  submitHandler,
		advanceHandler: advanceHandler,
		bander:         bander,
		uowFactory:     uowFactory,
	}
}

// Handle executes the run and returns the aggregated report. Unit failures
// are recorded inside the report; Handle itself fails only on catalog
// construction, ledger, or cancellation errors.
func (h *RunSeedingCommandHandler) Handle(ctx context.Context, cmd RunSeedingCommand) (batch.Report, error) {
	if err := cmd.Validate(); err != nil {
		return batch.Report{}, err
	}

	fixtures, err := fixture.GenerateFixtures(cmd.Pool(), cmd.Plans())
	if err != nil {
		return batch.Report{}, err
	}

	submitCmd, err := NewSubmitBatchCommand(fixtures)
	if err != nil {
		return batch.Report{}, err
	}

	submissions, err := h.submitHandler.Handle(ctx, submitCmd)
	if err != nil {
		return batch.Report{}, err
	}

	orders := createdOrders(submissions)
	if err = h.recordOrders(ctx, orders); err != nil {
		return batch.Report{}, err
	}

	plans, err := h.bander.Band(orders)
	if err != nil {
		return batch.Report{}, err
	}

	progressions := make([]batch.ProgressionResult, 0, len(plans))
	for _, plan := range plans {
		advanceCmd, cmdErr := NewAdvanceOrderCommand(plan)
		if cmdErr != nil {
			return batch.Report{}, cmdErr
		}

		result, advErr := h.advanceHandler.Handle(ctx, advanceCmd)
		if advErr != nil {
			return batch.Report{}, advErr
		}
		progressions = append(progressions, result)
	}

	if err = h.updateOrders(ctx, orders); err != nil {
		return batch.Report{}, err
	}

	return batch.BuildReport(submissions, progressions), nil
}

func createdOrders(submissions []batch.SubmissionResult) []*order.Order {
	orders := make([]*order.Order, 0, len(submissions))
	for _, sub := range submissions {
		if sub.Succeeded() {
			orders = append(orders, sub.Order())
		}
	}
	return orders
}

func (h *RunSeedingCommandHandler) recordOrders(ctx context.Context, orders []*order.Order) error {
	if len(orders) == 0 {
		return nil
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRecordRepository()
	for _, o := range orders {
		if err := repo.Add(ctx, o); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}

func (h *RunSeedingCommandHandler) updateOrders(ctx context.Context, orders []*order.Order) error {
	if len(orders) == 0 {
		return nil
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRecordRepository()
	for _, o := range orders {
		if err := repo.Update(ctx, o); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
