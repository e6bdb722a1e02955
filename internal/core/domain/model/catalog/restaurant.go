package catalog

import (
	"errors"
	"fmt"

	"deliveryapi/internal/core/domain/model/kernel"
	"deliveryapi/internal/pkg/errs"
	"deliveryapi/internal/pkg/guard"
)

var ErrRestaurantIsNotConstructed = errors.New("Restaurant must be created via NewRestaurant constructor")

// Restaurant sells products and charges a flat delivery fee per order.
type Restaurant struct {
	id                  kernel.UUID
	name                string
	category            string
	phone               string
	deliveryFee         kernel.Money
	deliveryTimeMinutes int
	active              bool

	guard guard.ConstructorGuard
}

func NewRestaurant(
	id kernel.UUID, name, category, phone string, deliveryFee kernel.Money, deliveryTimeMinutes int,
) (*Restaurant, error) {
	r := &Restaurant{active: true, guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		requireID(&r.id, id),
		requireText(&r.name, "name", name),
		requireText(&r.category, "category", category),
		requireNonNegative(&r.deliveryFee, "delivery fee", deliveryFee),
		r.setDeliveryTime(deliveryTimeMinutes),
	); err != nil {
		return nil, err
	}
	r.phone = phone

	return r, nil
}

// RestoreRestaurant rebuilds a restaurant loaded from storage.
func RestoreRestaurant(
	id kernel.UUID, name, category, phone string, deliveryFee kernel.Money, deliveryTimeMinutes int, active bool,
) (*Restaurant, error) {
	r, err := NewRestaurant(id, name, category, phone, deliveryFee, deliveryTimeMinutes)
	if err != nil {
		return nil, err
	}
	r.active = active
	return r, nil
}

func (r *Restaurant) Validate() error {
	if r == nil {
		return ErrRestaurantIsNotConstructed
	}
	return r.guard.Validate(ErrRestaurantIsNotConstructed)
}

func (r *Restaurant) ID() kernel.UUID            { return r.id }
func (r *Restaurant) Name() string               { return r.name }
func (r *Restaurant) Category() string           { return r.category }
func (r *Restaurant) Phone() string              { return r.phone }
func (r *Restaurant) DeliveryFee() kernel.Money  { return r.deliveryFee }
func (r *Restaurant) DeliveryTimeMinutes() int   { return r.deliveryTimeMinutes }
func (r *Restaurant) IsActive() bool             { return r.active }
func (r *Restaurant) IsEqual(o *Restaurant) bool { return o != nil && r.id.IsEqual(o.id) }

func (r *Restaurant) Deactivate() {
	r.active = false
}

func (r *Restaurant) setDeliveryTime(minutes int) error {
	if minutes < 0 {
		return errs.NewValueIsInvalidErrorWithCause("delivery time", fmt.Errorf("%d is negative", minutes))
	}
	r.deliveryTimeMinutes = minutes
	return nil
}
