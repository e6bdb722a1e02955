package queries

import (
	"context"
	"errors"
	"time"

	"deliveryapi/internal/core/domain/model/catalog"
	"deliveryapi/internal/core/domain/model/kernel"
	"deliveryapi/internal/core/ports"
	"deliveryapi/internal/pkg/guard"
)

var (
	ErrGetCatalogItemQueryIsNotConstructed = errors.New(
		"GetCatalogItemQuery must be created via NewGetCatalogItemQuery constructor",
	)
)

// GetCatalogItemQuery looks up one customer, restaurant or product by id.
type GetCatalogItemQuery struct {
	id kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetCatalogItemQuery(id kernel.UUID) (GetCatalogItemQuery, error) {
	if err := id.Validate(); err != nil {
		return GetCatalogItemQuery{}, err
	}
	return GetCatalogItemQuery{id: id, guard: guard.NewConstructorGuard()}, nil
}

func (q GetCatalogItemQuery) Validate() error {
	return q.guard.Validate(ErrGetCatalogItemQueryIsNotConstructed)
}

func (q GetCatalogItemQuery) ID() kernel.UUID { return q.id }

type CustomerResponse struct {
	ID        kernel.UUID
	Name      string
	Email     string
	Phone     string
	Address   kernel.Address
	Active    bool
	CreatedAt time.Time
}

type RestaurantResponse struct {
	ID                  kernel.UUID
	Name                string
	Category            string
	Phone               string
	DeliveryFee         kernel.Money
	DeliveryTimeMinutes int
	Active              bool
}

type ProductResponse struct {
	ID           kernel.UUID
	RestaurantID kernel.UUID
	Name         string
	Category     string
	Description  string
	Price        kernel.Money
	Available    bool
}

// GetCatalogQueryHandler serves the catalog lookups. Every Handle method
// fails with errs.ErrObjectNotFound for an unknown id.
type GetCatalogQueryHandler struct {
	customers   ports.CustomerRepository
	restaurants ports.RestaurantRepository
	products    ports.ProductRepository
}

func NewGetCatalogQueryHandler(
	customers ports.CustomerRepository,
	restaurants ports.RestaurantRepository,
	products ports.ProductRepository,
) GetCatalogQueryHandler {
	return GetCatalogQueryHandler{customers: customers, restaurants: restaurants, products: products}
}

func (h GetCatalogQueryHandler) HandleCustomer(ctx context.Context, query GetCatalogItemQuery) (CustomerResponse, error) {
	if err := query.Validate(); err != nil {
		return CustomerResponse{}, err
	}

	c, err := h.customers.Get(ctx, query.ID())
	if err != nil {
		return CustomerResponse{}, err
	}

	return newCustomerResponse(c), nil
}

func (h GetCatalogQueryHandler) HandleRestaurant(ctx context.Context, query GetCatalogItemQuery) (RestaurantResponse, error) {
	if err := query.Validate(); err != nil {
		return RestaurantResponse{}, err
	}

	r, err := h.restaurants.Get(ctx, query.ID())
	if err != nil {
		return RestaurantResponse{}, err
	}

	return RestaurantResponse{
		ID:                  r.ID(),
		Name:                r.Name(),
		Category:            r.Category(),
		Phone:               r.Phone(),
		DeliveryFee:         r.DeliveryFee(),
		DeliveryTimeMinutes: r.DeliveryTimeMinutes(),
		Active:              r.IsActive(),
	}, nil
}

func (h GetCatalogQueryHandler) HandleProduct(ctx context.Context, query GetCatalogItemQuery) (ProductResponse, error) {
	if err := query.Validate(); err != nil {
		return ProductResponse{}, err
	}

	p, err := h.products.Get(ctx, query.ID())
	if err != nil {
		return ProductResponse{}, err
	}

	return ProductResponse{
		ID:           p.ID(),
		RestaurantID: p.RestaurantID(),
		Name:         p.Name(),
		Category:     p.Category(),
		Description:  p.Description(),
		Price:        p.Price(),
		Available:    p.IsAvailable(),
	}, nil
}

func newCustomerResponse(c *catalog.Customer) CustomerResponse {
	return CustomerResponse{
		ID:        c.ID(),
		Name:      c.Name(),
		Email:     c.Email(),
		Phone:     c.Phone(),
		Address:   c.Address(),
		Active:    c.IsActive(),
		CreatedAt: c.CreatedAt(),
	}
}
