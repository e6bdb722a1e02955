package orderrepo

import (
	"context"
	"errors"

	"deliveryapi/internal/core/domain/model/kernel"
	"deliveryapi/internal/core/domain/model/order"
	"deliveryapi/internal/pkg/errs"

	"github.com/samber/lo"
	"gorm.io/gorm"
)

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker is implemented by the unit of work, which publishes the
// events of tracked orders after commit.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a repository on db. tracker may be nil for
// read-only use.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add inserts the order and its lines.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.track(aggregate)
	return nil
}

// Update rewrites the order row and replaces its lines.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	db := r.db.WithContext(ctx)

	result := db.Model(&OrderDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Omit("ID", "Lines").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", aggregate.ID().String())
	}

	if err := db.Where("order_id = ?", dto.ID).Delete(&OrderLineDTO{}).Error; err != nil {
		return err
	}
	if len(dto.Lines) > 0 {
		if err := db.Create(&dto.Lines).Error; err != nil {
			return err
		}
	}

	r.track(aggregate)
	return nil
}

// Get retrieves an order with its lines.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.preloaded(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Delete removes the order and, by cascade, its lines.
func (r *GormOrderRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	db := r.db.WithContext(ctx)
	if err := db.Where("order_id = ?", id.Bytes()).Delete(&OrderLineDTO{}).Error; err != nil {
		return err
	}

	result := db.Where("id = ?", id.Bytes()).Delete(&OrderDTO{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", id.String())
	}

	return nil
}

// Find returns orders matching every set criterion of filter, oldest first.
// The time range is inclusive on both ends.
//
// Example:
//
//	restaurantID := restaurant.ID()
//	orders, err := repo.Find(ctx, order.Filter{
//	    Statuses:     []order.Status{order.Confirmed, order.Preparing},
//	    RestaurantID: &restaurantID,
//	})
func (r *GormOrderRepository) Find(ctx context.Context, filter order.Filter) ([]*order.Order, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	tx := r.preloaded(ctx)

	if len(filter.Statuses) > 0 {
		tx = tx.Where("status IN ?", lo.Map(filter.Statuses, func(s order.Status, _ int) string {
			return s.String()
		}))
	}
	if filter.CustomerID != nil {
		tx = tx.Where("customer_id = ?", filter.CustomerID.Bytes())
	}
	if filter.RestaurantID != nil {
		tx = tx.Where("restaurant_id = ?", filter.RestaurantID.Bytes())
	}
	if period := filter.CreatedAt; period != nil {
		if period.From != nil {
			tx = tx.Where("created_at >= ?", period.From.UTC())
		}
		if period.To != nil {
			tx = tx.Where("created_at <= ?", period.To.UTC())
		}
	}

	var dtos []OrderDTO
	if err := tx.Order("created_at, id").Find(&dtos).Error; err != nil {
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

func (r *GormOrderRepository) preloaded(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Preload("Lines", func(db *gorm.DB) *gorm.DB {
		return db.Order("position")
	})
}

func (r *GormOrderRepository) track(aggregate *order.Order) {
	if r.tracker != nil {
		r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	}
}
