package ports

import (
	"context"

	"deliveryapi/internal/core/domain/model/kernel"
	"deliveryapi/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// An order is always loaded and saved together with its lines.
type OrderRepository interface {
	// Add persists a new order and its lines.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists status and line changes of an existing order.
	// Returns errs.ErrObjectNotFound if the order does not exist.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order with its lines.
	// Returns errs.ErrObjectNotFound if the order does not exist.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// Delete permanently removes an order and its lines.
	// Returns errs.ErrObjectNotFound if the order does not exist.
	Delete(ctx context.Context, id kernel.UUID) error

	// Find returns the orders matching filter, oldest first. No match is an
	// empty slice, never an error.
	//
	// Example:
	//   from := time.Now().Add(-24 * time.Hour)
	//   orders, err := repo.Find(ctx, order.Filter{
	//       Statuses:  []order.Status{order.Delivered},
	//       CreatedAt: &order.TimeRange{From: &from},
	//   })
	Find(ctx context.Context, filter order.Filter) ([]*order.Order, error)
}
