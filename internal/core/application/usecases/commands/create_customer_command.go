package commands

import (
	"errors"

	"deliveryapi/internal/core/domain/model/kernel"
	"deliveryapi/internal/pkg/guard"
)

var (
	ErrCreateCustomerCommandIsNotConstructed = errors.New(
		"CreateCustomerCommand must be created via NewCreateCustomerCommand constructor",
	)
)

// CreateCustomerCommand registers a customer. Field rules are enforced by
// catalog.NewCustomer when the handler runs.
type CreateCustomerCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID
	name       string
	email      string
	phone      string
	address    kernel.Address

	guard guard.ConstructorGuard
}

func NewCreateCustomerCommand(
	customerID kernel.UUID, name, email, phone string, address kernel.Address,
) (CreateCustomerCommand, error) {
	cmd := CreateCustomerCommand{
		name:  name,
		email: email,
		phone: phone,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		setUUID(&cmd.customerID, customerID),
		address.Validate(),
	); err != nil {
		return CreateCustomerCommand{}, err
	}
	cmd.address = address

	return cmd, nil
}

func (c CreateCustomerCommand) Validate() error {
	return c.guard.Validate(ErrCreateCustomerCommandIsNotConstructed)
}

func (c CreateCustomerCommand) CustomerID() kernel.UUID { return c.customerID }
func (c CreateCustomerCommand) Name() string            { return c.name }
func (c CreateCustomerCommand) Email() string           { return c.email }
func (c CreateCustomerCommand) Phone() string           { return c.phone }
func (c CreateCustomerCommand) Address() kernel.Address { return c.address }
