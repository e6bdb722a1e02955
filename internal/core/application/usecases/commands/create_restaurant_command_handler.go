package commands

import (
	"context"

	"deliveryapi/internal/core/domain/model/catalog"
)

type CreateRestaurantCommandHandler struct {
	uowFactory CatalogUoWFactory
}

func NewCreateRestaurantCommandHandler(uowFactory CatalogUoWFactory) CreateRestaurantCommandHandler {
	return CreateRestaurantCommandHandler{uowFactory: uowFactory}
}

func (h *CreateRestaurantCommandHandler) Handle(ctx context.Context, cmd CreateRestaurantCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	restaurant, err := catalog.NewRestaurant(
		cmd.RestaurantID(), cmd.Name(), cmd.Category(), cmd.Phone(), cmd.DeliveryFee(), cmd.DeliveryTimeMinutes(),
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.RestaurantRepository().Add(ctx, restaurant); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
