package orderrecordrepo

import (
	"context"
	"errors"

	"seeder/internal/core/domain/model/kernel"
	"seeder/internal/core/domain/model/order"
	"seeder/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRecordRepository implements OrderRecordRepository using GORM.
type GormOrderRecordRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRecordRepository creates a new GORM seed ledger repository.
func NewGormOrderRecordRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRecordRepository {
	return &GormOrderRecordRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a newly created order to the ledger.
func (r *GormOrderRecordRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves progression changes for an existing ledger row.
func (r *GormOrderRecordRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&OrderRecordDTO{}).Where("id = ?", dto.ID).Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves one ledger row by order identifier.
func (r *GormOrderRecordRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderRecordDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order record", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllActive retrieves every recorded order that still has unpaid steps,
// in insertion order.
func (r *GormOrderRecordRepository) GetAllActive(ctx context.Context) ([]*order.Order, error) {
	var dtos []OrderRecordDTO
	if err := r.db.WithContext(ctx).Order("id").Find(&dtos, "status = ?", order.Active).Error; err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}

// PurgeAll deletes every ledger row and returns how many were removed.
func (r *GormOrderRecordRepository) PurgeAll(ctx context.Context) (int64, error) {
	result := r.db.WithContext(ctx).Where("1 = 1").Delete(&OrderRecordDTO{})
	if result.Error != nil {
		return 0, result.Error
	}

	return result.RowsAffected, nil
}
