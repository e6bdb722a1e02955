package commands

import (
	"errors"
	"time"

	"deliveryapi/internal/pkg/errs"
	"deliveryapi/internal/pkg/guard"
)

var (
	ErrCancelAbandonedOrdersCommandIsNotConstructed = errors.New(
		"CancelAbandonedOrdersCommand must be created via NewCancelAbandonedOrdersCommand constructor",
	)
)

// CancelAbandonedOrdersCommand targets orders never confirmed and created at
// or before createdBefore. CanceledAt stamps the resulting status changes.
type CancelAbandonedOrdersCommand struct { //nolint:recvcheck //using for validation
	createdBefore time.Time
	canceledAt    time.Time

	guard guard.ConstructorGuard
}

func NewCancelAbandonedOrdersCommand(createdBefore, canceledAt time.Time) (CancelAbandonedOrdersCommand, error) {
	var errList []error
	if createdBefore.IsZero() {
		errList = append(errList, errs.NewValueIsRequiredError("createdBefore"))
	}
	if canceledAt.IsZero() {
		errList = append(errList, errs.NewValueIsRequiredError("canceledAt"))
	}
	if err := errors.Join(errList...); err != nil {
		return CancelAbandonedOrdersCommand{}, err
	}
	return CancelAbandonedOrdersCommand{
		createdBefore: createdBefore.UTC(),
		canceledAt:    canceledAt.UTC(),
		guard:         guard.NewConstructorGuard(),
	}, nil
}

func (c CancelAbandonedOrdersCommand) Validate() error {
	return c.guard.Validate(ErrCancelAbandonedOrdersCommandIsNotConstructed)
}

func (c CancelAbandonedOrdersCommand) CreatedBefore() time.Time { return c.createdBefore }
func (c CancelAbandonedOrdersCommand) CanceledAt() time.Time    { return c.canceledAt }
