package commands

import (
	"errors"

	"deliveryapi/internal/core/domain/model/kernel"
	"deliveryapi/internal/pkg/guard"
)

var (
	ErrSetProductAvailabilityCommandIsNotConstructed = errors.New(
		"SetProductAvailabilityCommand must be created via NewSetProductAvailabilityCommand constructor",
	)
)

type SetProductAvailabilityCommand struct { //nolint:recvcheck //using for validation
	productID kernel.UUID
	available bool

	guard guard.ConstructorGuard
}

func NewSetProductAvailabilityCommand(productID kernel.UUID, available bool) (SetProductAvailabilityCommand, error) {
	cmd := SetProductAvailabilityCommand{available: available, guard: guard.NewConstructorGuard()}
	if err := setUUID(&cmd.productID, productID); err != nil {
		return SetProductAvailabilityCommand{}, err
	}
	return cmd, nil
}

func (c SetProductAvailabilityCommand) Validate() error {
	return c.guard.Validate(ErrSetProductAvailabilityCommandIsNotConstructed)
}

func (c SetProductAvailabilityCommand) ProductID() kernel.UUID { return c.productID }
func (c SetProductAvailabilityCommand) Available() bool        { return c.available }
