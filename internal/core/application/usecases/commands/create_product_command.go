package commands

import (
	"errors"

	"deliveryapi/internal/core/domain/model/kernel"
	"deliveryapi/internal/pkg/guard"
)

var (
	ErrCreateProductCommandIsNotConstructed = errors.New(
		"CreateProductCommand must be created via NewCreateProductCommand constructor",
	)
)

type CreateProductCommand struct { //nolint:recvcheck //using for validation
	productID    kernel.UUID
	restaurantID kernel.UUID
	name         string
	category     string
	description  string
	price        kernel.Money

	guard guard.ConstructorGuard
}

func NewCreateProductCommand(
	productID, restaurantID kernel.UUID,
	name, category, description string,
	price kernel.Money,
) (CreateProductCommand, error) {
	cmd := CreateProductCommand{
		name:        name,
		category:    category,
		description: description,
		price:       price,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		setUUID(&cmd.productID, productID),
		setUUID(&cmd.restaurantID, restaurantID),
	); err != nil {
		return CreateProductCommand{}, err
	}

	return cmd, nil
}

func (c CreateProductCommand) Validate() error {
	return c.guard.Validate(ErrCreateProductCommandIsNotConstructed)
}

func (c CreateProductCommand) ProductID() kernel.UUID    { return c.productID }
func (c CreateProductCommand) RestaurantID() kernel.UUID { return c.restaurantID }
func (c CreateProductCommand) Name() string              { return c.name }
func (c CreateProductCommand) Category() string          { return c.category }
func (c CreateProductCommand) Description() string       { return c.description }
func (c CreateProductCommand) Price() kernel.Money       { return c.price }
