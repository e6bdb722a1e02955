package queries

import (
	"time"

	"deliveryapi/internal/core/domain/model/kernel"
	"deliveryapi/internal/core/domain/model/order"

	"github.com/samber/lo"
)

// OrderResponse is the read model of one order.
type OrderResponse struct {
	ID              kernel.UUID
	CustomerID      kernel.UUID
	RestaurantID    kernel.UUID
	DeliveryAddress kernel.Address
	Lines           []OrderLineResponse
	Subtotal        kernel.Money
	DeliveryFee     kernel.Money
	Total           kernel.Money
	Status          order.Status
	CreatedAt       time.Time
}

type OrderLineResponse struct {
	ID          kernel.UUID
	ProductID   kernel.UUID
	ProductName string
	UnitPrice   kernel.Money
	Quantity    int
	Subtotal    kernel.Money
}

func newOrderResponse(o *order.Order) OrderResponse {
	return OrderResponse{
		ID:              o.ID(),
		CustomerID:      o.CustomerID(),
		RestaurantID:    o.RestaurantID(),
		DeliveryAddress: o.DeliveryAddress(),
		Lines: lo.Map(o.Lines(), func(l *order.Line, _ int) OrderLineResponse {
			return OrderLineResponse{
				ID:          l.ID(),
				ProductID:   l.ProductID(),
				ProductName: l.ProductName(),
				UnitPrice:   l.UnitPrice(),
				Quantity:    l.Quantity(),
				Subtotal:    l.Subtotal(),
			}
		}),
		Subtotal:    o.Subtotal(),
		DeliveryFee: o.DeliveryFee(),
		Total:       o.Total(),
		Status:      o.Status(),
		CreatedAt:   o.CreatedAt(),
	}
}

func newOrderResponses(orders []*order.Order) []OrderResponse {
	return lo.Map(orders, func(o *order.Order, _ int) OrderResponse {
		return newOrderResponse(o)
	})
}
