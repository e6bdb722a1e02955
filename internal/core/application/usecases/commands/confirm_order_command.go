package commands

import (
	"errors"

	"deliveryapi/internal/core/domain/model/kernel"
	"deliveryapi/internal/pkg/guard"
)

var (
	ErrConfirmOrderCommandIsNotConstructed = errors.New(
		"ConfirmOrderCommand must be created via NewConfirmOrderCommand constructor",
	)
)

type ConfirmOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewConfirmOrderCommand(orderID kernel.UUID) (ConfirmOrderCommand, error) {
	cmd := ConfirmOrderCommand{guard: guard.NewConstructorGuard()}
	if err := setUUID(&cmd.orderID, orderID); err != nil {
		return ConfirmOrderCommand{}, err
	}
	return cmd, nil
}

func (c ConfirmOrderCommand) Validate() error {
	return c.guard.Validate(ErrConfirmOrderCommandIsNotConstructed)
}

func (c ConfirmOrderCommand) OrderID() kernel.UUID { return c.orderID }
