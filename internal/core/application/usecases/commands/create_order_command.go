package commands

import (
	"errors"

	"deliveryapi/internal/core/domain/model/kernel"
	"deliveryapi/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
)

// CreateOrderCommand represents a request to open a new order for a customer
// at a restaurant.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewCreateOrderCommand(orderID, customerID, restaurantID, address)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.UUID
	customerID      kernel.UUID
	restaurantID    kernel.UUID
	deliveryAddress kernel.Address

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates every identifier and the address.
func NewCreateOrderCommand(
	orderID, customerID, restaurantID kernel.UUID,
	deliveryAddress kernel.Address,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		setUUID(&cmd.orderID, orderID),
		setUUID(&cmd.customerID, customerID),
		setUUID(&cmd.restaurantID, restaurantID),
		cmd.setDeliveryAddress(deliveryAddress),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) OrderID() kernel.UUID            { return c.orderID }
func (c CreateOrderCommand) CustomerID() kernel.UUID         { return c.customerID }
func (c CreateOrderCommand) RestaurantID() kernel.UUID       { return c.restaurantID }
func (c CreateOrderCommand) DeliveryAddress() kernel.Address { return c.deliveryAddress }

func (c *CreateOrderCommand) setDeliveryAddress(address kernel.Address) error {
	if err := address.Validate(); err != nil {
		return err
	}
	c.deliveryAddress = address
	return nil
}

func setUUID(dst *kernel.UUID, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	*dst = id
	return nil
}
