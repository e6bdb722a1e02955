package order

import (
	"errors"
	"fmt"
	"time"

	"deliveryapi/internal/core/domain/model/kernel"
	"deliveryapi/internal/pkg/errs"
)

// Filter selects stored orders. Fields combine with AND; Statuses match any
// of the listed statuses. The zero Filter matches every order.
type Filter struct {
	Statuses     []Status
	CustomerID   *kernel.UUID
	RestaurantID *kernel.UUID
	CreatedAt    *TimeRange
}

func (f Filter) Validate() error {
	var errList []error
	for _, s := range f.Statuses {
		errList = append(errList, s.Validate())
	}
	if f.CustomerID != nil {
		errList = append(errList, f.CustomerID.Validate())
	}
	if f.RestaurantID != nil {
		errList = append(errList, f.RestaurantID.Validate())
	}
	if f.CreatedAt != nil {
		if err := f.CreatedAt.Validate(); err != nil {
			errList = append(errList, fmt.Errorf("createdAt: %w", err))
		}
	}
	return errors.Join(errList...)
}

// TimeRange is inclusive at both ends. Either end may be open.
type TimeRange struct {
	From *time.Time
	To   *time.Time
}

func (r TimeRange) Validate() error {
	if r.From != nil && r.To != nil && r.To.Before(*r.From) {
		return errs.NewValueIsInvalidErrorWithCause("time range",
			fmt.Errorf("%s is before %s", r.To.Format(time.RFC3339), r.From.Format(time.RFC3339)))
	}
	return nil
}

// Contains reports whether t falls inside the range.
func (r TimeRange) Contains(t time.Time) bool {
	if r.From != nil && t.Before(*r.From) {
		return false
	}
	if r.To != nil && t.After(*r.To) {
		return false
	}
	return true
}
