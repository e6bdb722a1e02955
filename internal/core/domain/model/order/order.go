package order

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"deliveryapi/internal/core/domain/model/kernel"
	"deliveryapi/internal/core/domain/services"
	"deliveryapi/internal/pkg/guard"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order is the aggregate root of the ordering context. It owns its lines and
// the status state machine, and derives its subtotal and total from the lines
// and the delivery fee captured from the restaurant at creation.
//
// Order follows these invariants:
//   - Must have valid order, customer and restaurant identifiers
//   - Must have a valid delivery address
//   - total == 0 while there are no lines
//   - total == sum(line subtotals) + deliveryFee once a line exists
//   - Status changes only through ValidateTransition
//
// There is no setter for subtotal or total; both are recomputed after every
// line mutation.
type Order struct {
	id              kernel.UUID
	customerID      kernel.UUID
	restaurantID    kernel.UUID
	deliveryAddress kernel.Address
	deliveryFee     kernel.Money
	lines           []*Line
	subtotal        kernel.Money
	total           kernel.Money
	status          Status
	createdAt       time.Time

	events []StatusChanged
	guard  guard.ConstructorGuard
}

// NewOrder creates an order in Created status with no lines and a zero total.
//
// Example:
//
//	o, err := order.NewOrder(kernel.NewUUID(), customer.ID(), restaurant.ID(),
//	    address, restaurant.DeliveryFee(), time.Now())
//	if err != nil {
//	    // Handle validation error
//	}
func NewOrder(
	id, customerID, restaurantID kernel.UUID,
	deliveryAddress kernel.Address,
	deliveryFee kernel.Money,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		status:    Created,
		subtotal:  kernel.ZeroMoney(),
		total:     kernel.ZeroMoney(),
		createdAt: createdAt.UTC(),
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		setID(&o.id, id),
		setID(&o.customerID, customerID),
		setID(&o.restaurantID, restaurantID),
		o.setDeliveryAddress(deliveryAddress),
		o.setDeliveryFee(deliveryFee),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder rebuilds an order loaded from storage. Any stored status is
// accepted, including the legacy Pending. Totals are recomputed from lines.
func RestoreOrder(
	id, customerID, restaurantID kernel.UUID,
	deliveryAddress kernel.Address,
	deliveryFee kernel.Money,
	lines []*Line,
	status Status,
	createdAt time.Time,
) (*Order, error) {
	o, err := NewOrder(id, customerID, restaurantID, deliveryAddress, deliveryFee, createdAt)
	if err != nil {
		return nil, err
	}

	if err := status.Validate(); err != nil {
		return nil, err
	}
	o.status = status

	for _, l := range lines {
		if err := l.Validate(); err != nil {
			return nil, err
		}
	}
	o.lines = slices.Clone(lines)

	if err := o.recalculate(); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by their identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID                 { return o.id }
func (o *Order) CustomerID() kernel.UUID         { return o.customerID }
func (o *Order) RestaurantID() kernel.UUID       { return o.restaurantID }
func (o *Order) DeliveryAddress() kernel.Address { return o.deliveryAddress }
func (o *Order) DeliveryFee() kernel.Money       { return o.deliveryFee }
func (o *Order) Subtotal() kernel.Money          { return o.subtotal }
func (o *Order) Total() kernel.Money             { return o.total }
func (o *Order) Status() Status                  { return o.status }
func (o *Order) CreatedAt() time.Time            { return o.createdAt }

// Lines returns the lines in insertion order. The slice is a copy.
func (o *Order) Lines() []*Line {
	return slices.Clone(o.lines)
}

// HasLines reports whether at least one line was added.
func (o *Order) HasLines() bool {
	return len(o.lines) > 0
}

// AddLine appends a priced line and recomputes subtotal and total. Lines may
// be added regardless of status.
func (o *Order) AddLine(line *Line) error {
	if err := line.Validate(); err != nil {
		return err
	}

	o.lines = append(o.lines, line)
	if err := o.recalculate(); err != nil {
		o.lines = o.lines[:len(o.lines)-1]
		return err
	}
	return nil
}

// ChangeStatus moves the order to next if the transition table allows it.
// On failure the order is left untouched.
func (o *Order) ChangeStatus(next Status, at time.Time) error {
	newStatus, err := o.status.TransitionTo(next)
	if err != nil {
		return err
	}

	o.apply(newStatus, at)
	return nil
}

// Confirm moves a Created (or legacy Pending) order with at least one line
// to Confirmed. The status is checked before the lines.
func (o *Order) Confirm(at time.Time) error {
	if o.status != Created && o.status != Pending {
		return &InvalidTransitionError{From: o.status, To: Confirmed}
	}
	if !o.HasLines() {
		return fmt.Errorf("%w: %s", ErrEmptyOrder, o.id)
	}

	return o.ChangeStatus(Confirmed, at)
}

// Cancel moves the order to Canceled.
//
// Cancel fails with:
//   - ErrAlreadyCanceled if the order is already Canceled
//   - *TerminalStateError if the order was Delivered
//   - *InvalidTransitionError if the order is OutForDelivery
func (o *Order) Cancel(at time.Time) error {
	switch o.status {
	case Canceled:
		return fmt.Errorf("%w: %s", ErrAlreadyCanceled, o.id)
	case Delivered:
		return &TerminalStateError{State: o.status}
	default:
		return o.ChangeStatus(Canceled, at)
	}
}

// DomainEvents returns the events recorded since the last ClearDomainEvents.
func (o *Order) DomainEvents() []StatusChanged {
	return slices.Clone(o.events)
}

func (o *Order) ClearDomainEvents() {
	o.events = nil
}

func (o *Order) apply(next Status, at time.Time) {
	prev := o.status
	o.status = next
	o.events = append(o.events, StatusChanged{
		OrderID:      o.id,
		CustomerID:   o.customerID,
		RestaurantID: o.restaurantID,
		From:         prev,
		To:           next,
		Total:        o.total,
		OccurredAt:   at.UTC(),
	})
}

// recalculate derives subtotal and total from the current lines.
func (o *Order) recalculate() error {
	calc := services.NewTotalCalculator()

	amounts := make([]services.LineAmount, 0, len(o.lines))
	for _, l := range o.lines {
		amounts = append(amounts, l.amount())
	}

	subtotal, err := calc.OrderSubtotal(amounts)
	if err != nil {
		return err
	}

	total := kernel.ZeroMoney()
	if len(o.lines) > 0 {
		if total, err = calc.OrderTotal(subtotal, o.deliveryFee); err != nil {
			return err
		}
	}

	o.subtotal = subtotal
	o.total = total
	return nil
}

func setID(dst *kernel.UUID, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	*dst = id
	return nil
}

func (o *Order) setDeliveryAddress(address kernel.Address) error {
	if err := address.Validate(); err != nil {
		return err
	}
	o.deliveryAddress = address
	return nil
}

func (o *Order) setDeliveryFee(fee kernel.Money) error {
	if fee.IsNegative() {
		return fmt.Errorf("%w: got %s", services.ErrInvalidDeliveryFee, fee)
	}
	o.deliveryFee = fee
	return nil
}
