package commands

import (
	"errors"

	"deliveryapi/internal/core/domain/model/kernel"
	"deliveryapi/internal/pkg/guard"
)

var (
	ErrCreateRestaurantCommandIsNotConstructed = errors.New(
		"CreateRestaurantCommand must be created via NewCreateRestaurantCommand constructor",
	)
)

type CreateRestaurantCommand struct { //nolint:recvcheck //using for validation
	restaurantID        kernel.UUID
	name                string
	category            string
	phone               string
	deliveryFee         kernel.Money
	deliveryTimeMinutes int

	guard guard.ConstructorGuard
}

func NewCreateRestaurantCommand(
	restaurantID kernel.UUID,
	name, category, phone string,
	deliveryFee kernel.Money,
	deliveryTimeMinutes int,
) (CreateRestaurantCommand, error) {
	cmd := CreateRestaurantCommand{
		name:                name,
		category:            category,
		phone:               phone,
		deliveryFee:         deliveryFee,
		deliveryTimeMinutes: deliveryTimeMinutes,
		guard:               guard.NewConstructorGuard(),
	}

	if err := setUUID(&cmd.restaurantID, restaurantID); err != nil {
		return CreateRestaurantCommand{}, err
	}

	return cmd, nil
}

func (c CreateRestaurantCommand) Validate() error {
	return c.guard.Validate(ErrCreateRestaurantCommandIsNotConstructed)
}

func (c CreateRestaurantCommand) RestaurantID() kernel.UUID { return c.restaurantID }
func (c CreateRestaurantCommand) Name() string              { return c.name }
func (c CreateRestaurantCommand) Category() string          { return c.category }
func (c CreateRestaurantCommand) Phone() string             { return c.phone }
func (c CreateRestaurantCommand) DeliveryFee() kernel.Money { return c.deliveryFee }
func (c CreateRestaurantCommand) DeliveryTimeMinutes() int  { return c.deliveryTimeMinutes }
