package catalog

import (
	"errors"

	"deliveryapi/internal/core/domain/model/kernel"
	"deliveryapi/internal/pkg/guard"
)

var ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")

// Product is a menu item of one restaurant. Orders copy its name and price
// when a line is added, so later price changes never touch existing orders.
type Product struct {
	id           kernel.UUID
	restaurantID kernel.UUID
	name         string
	category     string
	description  string
	price        kernel.Money
	available    bool

	guard guard.ConstructorGuard
}

func NewProduct(
	id, restaurantID kernel.UUID, name, category, description string, price kernel.Money,
) (*Product, error) {
	p := &Product{available: true, guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		requireID(&p.id, id),
		requireID(&p.restaurantID, restaurantID),
		requireText(&p.name, "name", name),
		requireText(&p.category, "category", category),
		requireNonNegative(&p.price, "price", price),
	); err != nil {
		return nil, err
	}
	p.description = description

	return p, nil
}

// RestoreProduct rebuilds a product loaded from storage.
func RestoreProduct(
	id, restaurantID kernel.UUID, name, category, description string, price kernel.Money, available bool,
) (*Product, error) {
	p, err := NewProduct(id, restaurantID, name, category, description, price)
	if err != nil {
		return nil, err
	}
	p.available = available
	return p, nil
}

func (p *Product) Validate() error {
	if p == nil {
		return ErrProductIsNotConstructed
	}
	return p.guard.Validate(ErrProductIsNotConstructed)
}

func (p *Product) ID() kernel.UUID           { return p.id }
func (p *Product) RestaurantID() kernel.UUID { return p.restaurantID }
func (p *Product) Name() string              { return p.name }
func (p *Product) Category() string          { return p.category }
func (p *Product) Description() string       { return p.description }
func (p *Product) Price() kernel.Money       { return p.price }
func (p *Product) IsAvailable() bool         { return p.available }
func (p *Product) IsEqual(o *Product) bool   { return o != nil && p.id.IsEqual(o.id) }

// SetAvailable toggles whether the product can be ordered or quoted.
func (p *Product) SetAvailable(available bool) {
	p.available = available
}
