package ports

import (
	"context"

	"deliveryapi/internal/core/domain/model/order"
)

// OrderEventPublisher delivers order domain events outside the process.
// It is called only after the transaction that produced the events commits.
type OrderEventPublisher interface {
	PublishStatusChanged(ctx context.Context, event order.StatusChanged) error
}
