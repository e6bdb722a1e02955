package queries

import (
	"context"
	"errors"

	"deliveryapi/internal/core/domain/model/catalog"
	"deliveryapi/internal/core/domain/model/kernel"
	"deliveryapi/internal/core/domain/services"
	"deliveryapi/internal/core/ports"
	"deliveryapi/internal/pkg/guard"
)

var (
	ErrQuoteOrderQueryIsNotConstructed = errors.New(
		"QuoteOrderQuery must be created via NewQuoteOrderQuery constructor",
	)
)

// QuoteOrderQuery prices hypothetical lines at one restaurant without
// storing anything.
type QuoteOrderQuery struct {
	restaurantID kernel.UUID
	lines        []services.QuoteLine

	guard guard.ConstructorGuard
}

func NewQuoteOrderQuery(restaurantID kernel.UUID, lines []services.QuoteLine) (QuoteOrderQuery, error) {
	if err := restaurantID.Validate(); err != nil {
		return QuoteOrderQuery{}, err
	}
	return QuoteOrderQuery{
		restaurantID: restaurantID,
		lines:        lines,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (q QuoteOrderQuery) Validate() error {
	return q.guard.Validate(ErrQuoteOrderQueryIsNotConstructed)
}

func (q QuoteOrderQuery) RestaurantID() kernel.UUID   { return q.restaurantID }
func (q QuoteOrderQuery) Lines() []services.QuoteLine { return q.lines }

type QuoteOrderQueryHandler struct {
	restaurants ports.RestaurantRepository
	products    ports.ProductRepository
	calculator  services.TotalCalculator
}

func NewQuoteOrderQueryHandler(
	restaurants ports.RestaurantRepository,
	products ports.ProductRepository,
) QuoteOrderQueryHandler {
	return QuoteOrderQueryHandler{
		restaurants: restaurants,
		products:    products,
		calculator:  services.NewTotalCalculator(),
	}
}

// Handle fails with errs.ErrObjectNotFound for an unknown restaurant or
// product and with services.ErrProductUnavailable for an inactive product.
func (h QuoteOrderQueryHandler) Handle(ctx context.Context, query QuoteOrderQuery) (services.Quote, error) {
	if err := query.Validate(); err != nil {
		return services.Quote{}, err
	}

	restaurant, err := h.restaurants.Get(ctx, query.RestaurantID())
	if err != nil {
		return services.Quote{}, err
	}

	return h.calculator.Quote(restaurant, query.Lines(), func(id kernel.UUID) (*catalog.Product, error) {
		return h.products.Get(ctx, id)
	})
}
