// Package orderrecordrepo persists the seed ledger: one row per order this
// process created in the remote backend. It implements the repository pattern
// for the order reference, handling conversion between domain objects and
// database rows.
package orderrecordrepo

import (
	"seeder/internal/core/domain/model/kernel"
	"seeder/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderRecordDTO represents the database structure for one seeded order.
// The primary key is the client-generated order identifier, so the ledger
// row and the remote record always share an ID.
type OrderRecordDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	Status        int       `gorm:"index"`
	RatePerStep   int64
	PaymentMethod int
	PaidSteps     int
	TotalSteps    int
}

// TableName specifies the database table name for seeded order records.
// Overrides GORM's default naming convention.
func (OrderRecordDTO) TableName() string {
	return "seeded_orders"
}

// fromDomain converts an order reference to its database representation.
func fromDomain(aggregate *order.Order) OrderRecordDTO {
	return OrderRecordDTO{
		ID:            aggregate.ID().Bytes(),
		Status:        int(aggregate.Status()),
		RatePerStep:   aggregate.RatePerStep().Amount(),
		PaymentMethod: int(aggregate.PaymentMethod()),
		PaidSteps:     aggregate.PaidSteps(),
		TotalSteps:    aggregate.TotalSteps(),
	}
}

// toDomain converts a database row back to an order reference using
// RestoreOrder, which re-checks counter and status consistency.
func toDomain(dto OrderRecordDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	rate, err := kernel.NewMoney(dto.RatePerStep)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		order.Status(dto.Status),
		rate,
		kernel.PaymentMethod(dto.PaymentMethod),
		dto.PaidSteps,
		dto.TotalSteps,
	)
}
