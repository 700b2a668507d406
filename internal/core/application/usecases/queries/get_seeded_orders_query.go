// Package queries contains read-only operations over the seed ledger.
// Queries bypass the domain aggregates and read the database directly,
// following the CQRS split: commands go through the unit of work, queries
// do not.
package queries

import (
	"errors"

	"seeder/internal/core/domain/model/kernel"
	"seeder/internal/pkg/guard"
)

var ErrGetSeededOrdersQueryIsNotConstructed = errors.New(
	"GetSeededOrdersQuery must be created via NewGetSeededOrdersQuery constructor",
)

// GetSeededOrdersQuery retrieves every order recorded in the seed ledger,
// for inspecting what state a seeding run left the backend in.
//
// Example:
//
//	query := NewGetSeededOrdersQuery()
//	handler := NewGetSeededOrdersQueryHandler(db)
//
//	records, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to read seed ledger: %w", err)
//	}
//	fmt.Printf("%d seeded orders\n", len(records))
type GetSeededOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetSeededOrdersQuery creates a query for the full seed ledger.
func NewGetSeededOrdersQuery() GetSeededOrdersQuery {
	return GetSeededOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetSeededOrdersQueryIsNotConstructed if validation fails.
func (q GetSeededOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetSeededOrdersQueryIsNotConstructed)
}

// GetSeededOrdersQueryResponse represents one seeded order as the ledger
// recorded it.
type GetSeededOrdersQueryResponse struct {
	ID         kernel.UUID
	Status     string
	PaidSteps  int
	TotalSteps int

	// RemainingAmount is the outstanding balance in minor units.
	RemainingAmount int64
}
