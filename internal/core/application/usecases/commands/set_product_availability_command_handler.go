package commands

import (
	"context"
)

// SetProductAvailabilityCommandHandler toggles a product on or off the menu.
// Existing order lines keep their captured price either way.
type SetProductAvailabilityCommandHandler struct {
	uowFactory CatalogUoWFactory
}

func NewSetProductAvailabilityCommandHandler(uowFactory CatalogUoWFactory) SetProductAvailabilityCommandHandler {
	return SetProductAvailabilityCommandHandler{uowFactory: uowFactory}
}

func (h *SetProductAvailabilityCommandHandler) Handle(ctx context.Context, cmd SetProductAvailabilityCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	productRepo := uow.ProductRepository()
	product, err := productRepo.Get(ctx, cmd.ProductID())
	if err != nil {
		return err
	}

	product.SetAvailable(cmd.Available())

	if err = productRepo.Update(ctx, product); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
