package commands

import (
	"context"

	"deliveryapi/internal/core/domain/model/order"
)

// AddOrderLineCommandHandler captures the product's current name and price
// into a new line and lets the order recompute its totals. The order status
// is not checked.
type AddOrderLineCommandHandler struct {
	uowFactory OrderingUoWFactory
}

func NewAddOrderLineCommandHandler(uowFactory OrderingUoWFactory) AddOrderLineCommandHandler {
	return AddOrderLineCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle fails with errs.ErrObjectNotFound when the order or the product does
// not exist.
func (h *AddOrderLineCommandHandler) Handle(ctx context.Context, cmd AddOrderLineCommand) error {
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

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	product, err := uow.ProductRepository().Get(ctx, cmd.ProductID())
	if err != nil {
		return err
	}

	line, err := order.NewLine(cmd.LineID(), product.ID(), product.Name(), product.Price(), cmd.Quantity())
	if err != nil {
		return err
	}

	if err = o.AddLine(line); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
