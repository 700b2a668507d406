package commands

import (
	"context"
)

// PurgeSeedDataCommandHandler deletes every row from the seed ledger inside
// a single transaction and reports how many were removed.
type PurgeSeedDataCommandHandler struct {
	uowFactory OrderRecordUoWFactory
}

// NewPurgeSeedDataCommandHandler creates a handler for ledger purges.
func NewPurgeSeedDataCommandHandler(uowFactory OrderRecordUoWFactory) PurgeSeedDataCommandHandler {
	return PurgeSeedDataCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle wipes the ledger and returns the number of deleted rows.
func (h *PurgeSeedDataCommandHandler) Handle(ctx context.Context, cmd PurgeSeedDataCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	purged, err := uow.OrderRecordRepository().PurgeAll(ctx)
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return purged, nil
}
