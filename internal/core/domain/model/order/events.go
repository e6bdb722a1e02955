package order

import (
	"time"

	"deliveryapi/internal/core/domain/model/kernel"
)

// StatusChanged is recorded by the aggregate on every successful status change
// and published after the surrounding transaction commits.
type StatusChanged struct {
	OrderID      kernel.UUID
	CustomerID   kernel.UUID
	RestaurantID kernel.UUID
	From         Status
	To           Status
	Total        kernel.Money
	OccurredAt   time.Time
}

// EventName is the routing key used when the event leaves the process.
func (StatusChanged) EventName() string {
	return "order.status_changed"
}
