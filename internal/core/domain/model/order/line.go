package order

import (
	"errors"

	"deliveryapi/internal/core/domain/model/kernel"
	"deliveryapi/internal/core/domain/services"
	"deliveryapi/internal/pkg/errs"
	"deliveryapi/internal/pkg/guard"
)

var ErrLineIsNotConstructed = errors.New("Line must be created via NewLine constructor")

// Line is one product of an order. ProductName and UnitPrice are copied from
// the product when the line is added and are never re-read from the catalog.
type Line struct {
	id          kernel.UUID
	productID   kernel.UUID
	productName string
	unitPrice   kernel.Money
	quantity    int
	subtotal    kernel.Money

	guard guard.ConstructorGuard
}

// NewLine prices a line with the calculator. Quantity must be positive and
// unitPrice non-negative.
func NewLine(id, productID kernel.UUID, productName string, unitPrice kernel.Money, quantity int) (*Line, error) {
	l := &Line{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		l.setID(id),
		l.setProduct(productID, productName),
		l.setAmount(unitPrice, quantity),
	); err != nil {
		return nil, err
	}

	return l, nil
}

// RestoreLine rebuilds a stored line. The subtotal is recomputed, never read.
func RestoreLine(id, productID kernel.UUID, productName string, unitPrice kernel.Money, quantity int) (*Line, error) {
	return NewLine(id, productID, productName, unitPrice, quantity)
}

func (l *Line) Validate() error {
	if l == nil {
		return ErrLineIsNotConstructed
	}
	return l.guard.Validate(ErrLineIsNotConstructed)
}

func (l *Line) ID() kernel.UUID          { return l.id }
func (l *Line) ProductID() kernel.UUID   { return l.productID }
func (l *Line) ProductName() string      { return l.productName }
func (l *Line) UnitPrice() kernel.Money  { return l.unitPrice }
func (l *Line) Quantity() int            { return l.quantity }
func (l *Line) Subtotal() kernel.Money   { return l.subtotal }
func (l *Line) IsEqual(other *Line) bool { return other != nil && l.id.IsEqual(other.id) }

func (l *Line) amount() services.LineAmount {
	return services.LineAmount{UnitPrice: l.unitPrice, Quantity: l.quantity}
}

func (l *Line) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	l.id = id
	return nil
}

func (l *Line) setProduct(productID kernel.UUID, productName string) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	if productName == "" {
		return errs.NewValueIsRequiredError("product name")
	}
	l.productID = productID
	l.productName = productName
	return nil
}

// setAmount keeps subtotal in step with unitPrice and quantity.
func (l *Line) setAmount(unitPrice kernel.Money, quantity int) error {
	subtotal, err := services.NewTotalCalculator().LineSubtotal(unitPrice, quantity)
	if err != nil {
		return err
	}
	l.unitPrice = unitPrice
	l.quantity = quantity
	l.subtotal = subtotal
	return nil
}
