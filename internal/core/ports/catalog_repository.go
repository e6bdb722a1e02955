package ports

import (
	"context"

	"deliveryapi/internal/core/domain/model/catalog"
	"deliveryapi/internal/core/domain/model/kernel"
)

// CustomerRepository stores customers. Get returns errs.ErrObjectNotFound
// for unknown ids.
type CustomerRepository interface {
	Add(ctx context.Context, customer *catalog.Customer) error
	Get(ctx context.Context, id kernel.UUID) (*catalog.Customer, error)
}

// RestaurantRepository stores restaurants. Get returns errs.ErrObjectNotFound
// for unknown ids.
type RestaurantRepository interface {
	Add(ctx context.Context, restaurant *catalog.Restaurant) error
	Get(ctx context.Context, id kernel.UUID) (*catalog.Restaurant, error)
}

// ProductRepository stores products. Get returns errs.ErrObjectNotFound
// for unknown ids.
type ProductRepository interface {
	Add(ctx context.Context, product *catalog.Product) error
	Update(ctx context.Context, product *catalog.Product) error
	Get(ctx context.Context, id kernel.UUID) (*catalog.Product, error)
}
