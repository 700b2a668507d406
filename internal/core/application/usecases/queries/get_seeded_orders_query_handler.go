package queries

import (
	"context"

	"seeder/internal/core/domain/model/kernel"
	"seeder/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetSeededOrdersQueryHandler reads the seed ledger straight from the
// database, bypassing the domain aggregates.
//
// Example:
//
//	handler := NewGetSeededOrdersQueryHandler(db)
//	query := NewGetSeededOrdersQuery()
//
//	records, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("failed to read seed ledger: %v", err)
//	    return err
//	}
type GetSeededOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetSeededOrdersQueryHandler creates a handler for seed ledger queries.
// Requires a GORM database connection for query execution.
func NewGetSeededOrdersQueryHandler(db *gorm.DB) GetSeededOrdersQueryHandler {
	return GetSeededOrdersQueryHandler{db: db}
}

// Handle retrieves every recorded order, sorted by ID for consistent output.
// The remaining balance is computed in SQL from the rate and unpaid steps.
func (h GetSeededOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetSeededOrdersQuery,
) ([]GetSeededOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	records := make([]GetSeededOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			status,
			paid_steps,
			total_steps,
			rate_per_step * (total_steps - paid_steps) AS remaining_amount
		FROM seeded_orders
		ORDER BY id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var record GetSeededOrdersQueryResponse
		var id uuid.UUID
		var status int

		err = rows.Scan(
			&id,
			&status,
			&record.PaidSteps,
			&record.TotalSteps,
			&record.RemainingAmount,
		)
		if err != nil {
			return nil, err
		}

		recordID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		record.ID = recordID
		record.Status = order.Status(status).String()
		records = append(records, record)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}
