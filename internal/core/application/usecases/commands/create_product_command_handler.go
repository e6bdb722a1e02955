package commands

import (
	"context"

	"deliveryapi/internal/core/domain/model/catalog"
)

// CreateProductCommandHandler adds a product to an existing restaurant menu.
type CreateProductCommandHandler struct {
	uowFactory CatalogUoWFactory
}

func NewCreateProductCommandHandler(uowFactory CatalogUoWFactory) CreateProductCommandHandler {
	return CreateProductCommandHandler{uowFactory: uowFactory}
}

// Handle fails with errs.ErrObjectNotFound when the restaurant does not exist.
func (h *CreateProductCommandHandler) Handle(ctx context.Context, cmd CreateProductCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	product, err := catalog.NewProduct(
		cmd.ProductID(), cmd.RestaurantID(), cmd.Name(), cmd.Category(), cmd.Description(), cmd.Price(),
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

	if _, err = uow.RestaurantRepository().Get(ctx, cmd.RestaurantID()); err != nil {
		return err
	}

	if err = uow.ProductRepository().Add(ctx, product); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
