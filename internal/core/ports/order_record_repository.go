package ports

import (
	"context"

	"seeder/internal/core/domain/model/kernel"
	"seeder/internal/core/domain/model/order"
)

// OrderRecordRepository is the persistence contract for the local seed
// ledger: one row per order this process created in the backend. The ledger
// makes seeded data identifiable later so maintenance commands can count,
// list, and purge it without guessing which remote records are test data.
type OrderRecordRepository interface {
	// Add records a newly created order in the ledger.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists progression changes (paid steps, status) to an
	// existing ledger row.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves one ledger row by order identifier.
	// Returns errs.ErrObjectNotFound when the order was never recorded.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllActive retrieves every recorded order that still has unpaid
	// steps, in insertion order.
	GetAllActive(ctx context.Context) ([]*order.Order, error)

	// PurgeAll deletes every ledger row and returns how many were removed.
	PurgeAll(ctx context.Context) (int64, error)
}
