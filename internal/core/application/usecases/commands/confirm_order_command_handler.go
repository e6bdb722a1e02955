package commands

import (
	"context"
	"time"

	"deliveryapi/internal/core/domain/model/order"
)

// ConfirmOrderCommandHandler moves a Created order with lines to Confirmed.
// It surfaces order.ErrEmptyOrder and *order.InvalidTransitionError unchanged.
type ConfirmOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewConfirmOrderCommandHandler(uowFactory OrderUoWFactory) ConfirmOrderCommandHandler {
	return ConfirmOrderCommandHandler{uowFactory: uowFactory}
}

func (h *ConfirmOrderCommandHandler) Handle(ctx context.Context, cmd ConfirmOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return mutateOrder(ctx, h.uowFactory, cmd.OrderID(), func(o *order.Order) error {
		return o.Confirm(time.Now())
	})
}
