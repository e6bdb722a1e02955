package catalog

import (
	"errors"
	"time"

	"deliveryapi/internal/core/domain/model/kernel"
	"deliveryapi/internal/pkg/guard"
)

var ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer constructor")

// Customer places orders. Deactivated customers are kept for order history.
type Customer struct {
	id        kernel.UUID
	name      string
	email     string
	phone     string
	address   kernel.Address
	active    bool
	createdAt time.Time

	guard guard.ConstructorGuard
}

func NewCustomer(id kernel.UUID, name, email, phone string, address kernel.Address, createdAt time.Time) (*Customer, error) {
	c := &Customer{active: true, createdAt: createdAt.UTC(), guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		requireID(&c.id, id),
		requireText(&c.name, "name", name),
		parseEmail(&c.email, email),
		c.setAddress(address),
	); err != nil {
		return nil, err
	}
	c.phone = phone

	return c, nil
}

// RestoreCustomer rebuilds a customer loaded from storage.
func RestoreCustomer(
	id kernel.UUID, name, email, phone string, address kernel.Address, active bool, createdAt time.Time,
) (*Customer, error) {
	c, err := NewCustomer(id, name, email, phone, address, createdAt)
	if err != nil {
		return nil, err
	}
	c.active = active
	return c, nil
}

func (c *Customer) Validate() error {
	if c == nil {
		return ErrCustomerIsNotConstructed
	}
	return c.guard.Validate(ErrCustomerIsNotConstructed)
}

func (c *Customer) ID() kernel.UUID          { return c.id }
func (c *Customer) Name() string             { return c.name }
func (c *Customer) Email() string            { return c.email }
func (c *Customer) Phone() string            { return c.phone }
func (c *Customer) Address() kernel.Address  { return c.address }
func (c *Customer) IsActive() bool           { return c.active }
func (c *Customer) CreatedAt() time.Time     { return c.createdAt }
func (c *Customer) IsEqual(o *Customer) bool { return o != nil && c.id.IsEqual(o.id) }

// Deactivate is the soft delete of a customer.
func (c *Customer) Deactivate() {
	c.active = false
}

func (c *Customer) setAddress(address kernel.Address) error {
	if err := address.Validate(); err != nil {
		return err
	}
	c.address = address
	return nil
}
