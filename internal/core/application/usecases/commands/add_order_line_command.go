package commands

import (
	"errors"
	"fmt"

	"deliveryapi/internal/core/domain/model/kernel"
	"deliveryapi/internal/core/domain/services"
	"deliveryapi/internal/pkg/guard"
)

var (
	ErrAddOrderLineCommandIsNotConstructed = errors.New(
		"AddOrderLineCommand must be created via NewAddOrderLineCommand constructor",
	)
)

// AddOrderLineCommand appends quantity units of a product to an order.
type AddOrderLineCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	lineID    kernel.UUID
	productID kernel.UUID
	quantity  int

	guard guard.ConstructorGuard
}

func NewAddOrderLineCommand(orderID, lineID, productID kernel.UUID, quantity int) (AddOrderLineCommand, error) {
	cmd := AddOrderLineCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		setUUID(&cmd.orderID, orderID),
		setUUID(&cmd.lineID, lineID),
		setUUID(&cmd.productID, productID),
		cmd.setQuantity(quantity),
	); err != nil {
		return AddOrderLineCommand{}, err
	}

	return cmd, nil
}

func (c AddOrderLineCommand) Validate() error {
	return c.guard.Validate(ErrAddOrderLineCommandIsNotConstructed)
}

func (c AddOrderLineCommand) OrderID() kernel.UUID   { return c.orderID }
func (c AddOrderLineCommand) LineID() kernel.UUID    { return c.lineID }
func (c AddOrderLineCommand) ProductID() kernel.UUID { return c.productID }
func (c AddOrderLineCommand) Quantity() int          { return c.quantity }

func (c *AddOrderLineCommand) setQuantity(quantity int) error {
	if quantity <= 0 {
		return fmt.Errorf("%w: got %d", services.ErrInvalidQuantity, quantity)
	}
	c.quantity = quantity
	return nil
}
