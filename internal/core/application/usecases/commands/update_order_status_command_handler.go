package commands

import (
	"context"
	"time"

	"deliveryapi/internal/core/domain/model/order"
)

// UpdateOrderStatusCommandHandler applies a status through the transition
// table. It surfaces *order.InvalidTransitionError, *order.TerminalStateError
// and errs.ErrObjectNotFound unchanged.
type UpdateOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewUpdateOrderStatusCommandHandler(uowFactory OrderUoWFactory) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{uowFactory: uowFactory}
}

func (h *UpdateOrderStatusCommandHandler) Handle(ctx context.Context, cmd UpdateOrderStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return mutateOrder(ctx, h.uowFactory, cmd.OrderID(), func(o *order.Order) error {
		return o.ChangeStatus(cmd.Status(), time.Now())
	})
}
