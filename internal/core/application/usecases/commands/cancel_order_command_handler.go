package commands

import (
	"context"
	"time"

	"deliveryapi/internal/core/domain/model/order"
)

// CancelOrderCommandHandler cancels an order. Cancellation is a status change;
// the order and its lines stay stored.
type CancelOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewCancelOrderCommandHandler(uowFactory OrderUoWFactory) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{uowFactory: uowFactory}
}

func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return mutateOrder(ctx, h.uowFactory, cmd.OrderID(), func(o *order.Order) error {
		return o.Cancel(time.Now())
	})
}
