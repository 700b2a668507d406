// Package commands contains the operations of a seeding run that change
// state, remotely or locally: submitting fixture batches, advancing orders
// through installment steps, running the full pipeline, and purging the seed
// ledger. All commands follow a consistent pattern: validation, execution,
// recorded results.
package commands

import (
	"context"

	"seeder/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers
// that touch the local seed ledger.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRecordRepoFactory provides access to the seed ledger repository
	// within a transaction.
	OrderRecordRepoFactory interface {
		OrderRecordRepository() ports.OrderRecordRepository
	}

	// OrderRecordUoW manages transactions over the seed ledger.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   repo := uow.OrderRecordRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	OrderRecordUoW interface {
		TxManager
		OrderRecordRepoFactory
	}

	// OrderRecordUoWFactory creates new unit of work instances.
	OrderRecordUoWFactory interface {
		Create() OrderRecordUoW
	}
)
