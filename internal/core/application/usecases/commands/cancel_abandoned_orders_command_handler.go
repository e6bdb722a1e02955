package commands

import (
	"context"

	"deliveryapi/internal/core/domain/model/order"
)

// CancelAbandonedOrdersCommandHandler cancels every Created or Pending order
// older than the cutoff in one transaction and returns how many it canceled.
type CancelAbandonedOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewCancelAbandonedOrdersCommandHandler(uowFactory OrderUoWFactory) CancelAbandonedOrdersCommandHandler {
	return CancelAbandonedOrdersCommandHandler{uowFactory: uowFactory}
}

func (h *CancelAbandonedOrdersCommandHandler) Handle(
	ctx context.Context,
	cmd CancelAbandonedOrdersCommand,
) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	cutoff := cmd.CreatedBefore()
	orderRepo := uow.OrderRepository()
	orders, err := orderRepo.Find(ctx, order.Filter{
		Statuses:  []order.Status{order.Created, order.Pending},
		CreatedAt: &order.TimeRange{To: &cutoff},
	})
	if err != nil {
		return 0, err
	}

	if len(orders) == 0 {
		return 0, nil
	}

	for _, o := range orders {
		if err = o.Cancel(cmd.CanceledAt()); err != nil {
			return 0, err
		}
		if err = orderRepo.Update(ctx, o); err != nil {
			return 0, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return len(orders), nil
}
