package commands

import (
	"errors"

	"deliveryapi/internal/core/domain/model/kernel"
	"deliveryapi/internal/core/domain/model/order"
	"deliveryapi/internal/pkg/guard"
)

var (
	ErrUpdateOrderStatusCommandIsNotConstructed = errors.New(
		"UpdateOrderStatusCommand must be created via NewUpdateOrderStatusCommand constructor",
	)
)

// UpdateOrderStatusCommand requests an explicit status transition.
//
// The status label is parsed here, so an unknown label fails with
// order.ErrUnknownStatus before any order is loaded:
//
//	cmd, err := NewUpdateOrderStatusCommand(orderID, "out for delivery")
type UpdateOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	status  order.Status

	guard guard.ConstructorGuard
}

func NewUpdateOrderStatusCommand(orderID kernel.UUID, statusLabel string) (UpdateOrderStatusCommand, error) {
	cmd := UpdateOrderStatusCommand{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		setUUID(&cmd.orderID, orderID),
		cmd.setStatus(statusLabel),
	); err != nil {
		return UpdateOrderStatusCommand{}, err
	}

	return cmd, nil
}

func (c UpdateOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderStatusCommandIsNotConstructed)
}

func (c UpdateOrderStatusCommand) OrderID() kernel.UUID { return c.orderID }
func (c UpdateOrderStatusCommand) Status() order.Status { return c.status }

func (c *UpdateOrderStatusCommand) setStatus(label string) error {
	status, err := order.ParseStatus(label)
	if err != nil {
		return err
	}
	c.status = status
	return nil
}
