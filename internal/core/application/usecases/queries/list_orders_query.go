package queries

import (
	"context"
	"errors"
	"strings"
	"time"

	"deliveryapi/internal/core/domain/model/kernel"
	"deliveryapi/internal/core/domain/model/order"
	"deliveryapi/internal/core/ports"
	"deliveryapi/internal/pkg/guard"
)

var (
	ErrListOrdersQueryIsNotConstructed = errors.New(
		"ListOrdersQuery must be created via a ListOrdersQuery constructor",
	)
)

// ListOrdersQuery lists stored orders through an order.Filter. The
// constructors cover the by-status, by-date-range, by-customer and
// by-restaurant lookups as well as their combination.
//
// Example:
//
//	from := time.Now().AddDate(0, 0, -7)
//	query, err := NewListOrdersQuery("confirmed", &from, nil)
//	orders, err := handler.Handle(ctx, query)
type ListOrdersQuery struct {
	filter order.Filter

	guard guard.ConstructorGuard
}

// NewListOrdersQuery combines an optional status label with an optional,
// possibly open-ended, creation date range. An empty label matches every
// status.
func NewListOrdersQuery(statusLabel string, from, to *time.Time) (ListOrdersQuery, error) {
	var filter order.Filter

	if strings.TrimSpace(statusLabel) != "" {
		status, err := order.ParseStatus(statusLabel)
		if err != nil {
			return ListOrdersQuery{}, err
		}
		filter.Statuses = []order.Status{status}
	}

	if from != nil || to != nil {
		filter.CreatedAt = &order.TimeRange{From: from, To: to}
	}

	return newListOrdersQuery(filter)
}

// NewCustomerOrdersQuery lists every order of one customer.
func NewCustomerOrdersQuery(customerID kernel.UUID) (ListOrdersQuery, error) {
	return newListOrdersQuery(order.Filter{CustomerID: &customerID})
}

// NewRestaurantOrdersQuery lists every order placed at one restaurant.
func NewRestaurantOrdersQuery(restaurantID kernel.UUID) (ListOrdersQuery, error) {
	return newListOrdersQuery(order.Filter{RestaurantID: &restaurantID})
}

func newListOrdersQuery(filter order.Filter) (ListOrdersQuery, error) {
	if err := filter.Validate(); err != nil {
		return ListOrdersQuery{}, err
	}
	return ListOrdersQuery{filter: filter, guard: guard.NewConstructorGuard()}, nil
}

func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

func (q ListOrdersQuery) Filter() order.Filter { return q.filter }

// ListOrdersQueryHandler is a read-through to the order repository. No match
// yields an empty, non-nil slice.
type ListOrdersQueryHandler struct {
	orders ports.OrderRepository
}

func NewListOrdersQueryHandler(orders ports.OrderRepository) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{orders: orders}
}

func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders, err := h.orders.Find(ctx, query.Filter())
	if err != nil {
		return nil, err
	}

	return newOrderResponses(orders), nil
}
