package services

import (
	"errors"
	"fmt"

	"deliveryapi/internal/core/domain/model/catalog"
	"deliveryapi/internal/core/domain/model/kernel"
	"deliveryapi/internal/pkg/errs"
)

// Pricing errors. They are returned wrapped, so callers
// match them with errors.Is.
var (
	ErrInvalidQuantity    = errors.New("quantity must be a positive integer")
	ErrInvalidPrice       = errors.New("unit price must not be negative")
	ErrInvalidDeliveryFee = errors.New("delivery fee must not be negative")
	ErrProductUnavailable = errors.New("product is unavailable")
)

// ProductUnavailableError reports an inactive product referenced by a quote.
type ProductUnavailableError struct {
	ProductID kernel.UUID
}

func (e *ProductUnavailableError) Error() string {
	return fmt.Sprintf("%s: %s", ErrProductUnavailable, e.ProductID)
}

func (e *ProductUnavailableError) Unwrap() error {
	return ErrProductUnavailable
}

// LineAmount is the priced part of an order line.
type LineAmount struct {
	UnitPrice kernel.Money
	Quantity  int
}

// QuoteLine is a requested product and quantity.
type QuoteLine struct {
	ProductID kernel.UUID
	Quantity  int
}

// QuotedLine is a QuoteLine priced at the product's current price.
type QuotedLine struct {
	ProductID   kernel.UUID
	ProductName string
	UnitPrice   kernel.Money
	Quantity    int
	Subtotal    kernel.Money
}

// Quote is the price of hypothetical lines from one restaurant.
type Quote struct {
	Lines       []QuotedLine
	Subtotal    kernel.Money
	DeliveryFee kernel.Money
	Total       kernel.Money
}

// ProductLookup resolves a product by id. It returns an error wrapping
// errs.ErrObjectNotFound when the id does not resolve.
type ProductLookup func(id kernel.UUID) (*catalog.Product, error)

// TotalCalculator is a stateless domain service that prices orders and quotes.
//
// Key responsibilities:
//   - Pricing a single line from its unit price and quantity
//   - Summing line subtotals into an order subtotal
//   - Adding the restaurant delivery fee to obtain the total
//   - Quoting hypothetical lines against the current catalog
//
// Business rules:
//   - Quantities must be positive; prices and fees must not be negative
//   - All arithmetic is decimal and unrounded; rounding to two places
//     happens only when amounts are presented
//   - Unavailable products cannot be quoted
//
// Example usage:
//
//	calc := services.NewTotalCalculator()
//	subtotal, err := calc.OrderSubtotal([]services.LineAmount{
//	    {UnitPrice: kernel.MustMoney("12.50"), Quantity: 2},
//	    {UnitPrice: kernel.MustMoney("3.75"), Quantity: 1},
//	})
//	if err != nil {
//	    return err
//	}
//	total, err := calc.OrderTotal(subtotal, restaurant.DeliveryFee()) // 28.75 + fee
type TotalCalculator struct{}

// NewTotalCalculator creates a TotalCalculator.
//
// Returns:
//   - TotalCalculator: a value ready to use; it holds no state
func NewTotalCalculator() TotalCalculator {
	return TotalCalculator{}
}

// LineSubtotal prices one line.
//
// Parameters:
//   - unitPrice: the product price captured on the line; must not be negative
//   - quantity: number of units; must be positive
//
// Returns:
//   - kernel.Money: unitPrice * quantity, unrounded
//   - error: ErrInvalidQuantity or ErrInvalidPrice, wrapped with the value
func (TotalCalculator) LineSubtotal(unitPrice kernel.Money, quantity int) (kernel.Money, error) {
	if quantity <= 0 {
		return kernel.Money{}, fmt.Errorf("%w: got %d", ErrInvalidQuantity, quantity)
	}
	if unitPrice.IsNegative() {
		return kernel.Money{}, fmt.Errorf("%w: got %s", ErrInvalidPrice, unitPrice)
	}
	return unitPrice.Multiply(quantity), nil
}

// OrderSubtotal sums the subtotals of lines.
//
// Parameters:
//   - lines: priced lines; nil or empty is allowed
//
// Returns:
//   - kernel.Money: the sum of every line subtotal, zero for no lines
//   - error: the first line error (ErrInvalidQuantity or ErrInvalidPrice)
func (c TotalCalculator) OrderSubtotal(lines []LineAmount) (kernel.Money, error) {
	subtotal := kernel.ZeroMoney()
	for _, l := range lines {
		s, err := c.LineSubtotal(l.UnitPrice, l.Quantity)
		if err != nil {
			return kernel.Money{}, err
		}
		subtotal = subtotal.Add(s)
	}
	return subtotal, nil
}

// OrderTotal adds the delivery fee to a subtotal. Callers decide whether a
// fee applies at all; an order without lines has a total of zero.
//
// Parameters:
//   - subtotal: the order subtotal from OrderSubtotal
//   - deliveryFee: the restaurant fee; must not be negative
//
// Returns:
//   - kernel.Money: subtotal + deliveryFee
//   - error: ErrInvalidDeliveryFee, wrapped with the fee
func (TotalCalculator) OrderTotal(subtotal, deliveryFee kernel.Money) (kernel.Money, error) {
	if deliveryFee.IsNegative() {
		return kernel.Money{}, fmt.Errorf("%w: got %s", ErrInvalidDeliveryFee, deliveryFee)
	}
	return subtotal.Add(deliveryFee), nil
}

// Quote prices the requested lines at each product's current price and adds
// the restaurant's delivery fee. Nothing is persisted.
//
// Parameters:
//   - restaurant: the restaurant whose fee applies (must be valid)
//   - requested: product ids and quantities, in display order
//   - lookup: resolves product ids, usually a repository Get bound to a context
//
// Returns:
//   - Quote: priced lines, subtotal, delivery fee and total
//   - error: errs.ErrObjectNotFound for an unknown product, *ProductUnavailableError
//     for an unavailable one, or a pricing error from LineSubtotal
//
// Example:
//
//	q, err := services.NewTotalCalculator().Quote(restaurant, []services.QuoteLine{
//	    {ProductID: pizzaID, Quantity: 2},
//	}, productRepository.GetByID)
func (c TotalCalculator) Quote(
	restaurant *catalog.Restaurant,
	requested []QuoteLine,
	lookup ProductLookup,
) (Quote, error) {
	if err := restaurant.Validate(); err != nil {
		return Quote{}, err
	}
	if lookup == nil {
		return Quote{}, errs.NewValueIsRequiredError("product lookup")
	}

	quote := Quote{
		Lines:    make([]QuotedLine, 0, len(requested)),
		Subtotal: kernel.ZeroMoney(),
	}

	for _, r := range requested {
		product, err := lookup(r.ProductID)
		if err != nil {
			return Quote{}, err
		}
		if product == nil {
			return Quote{}, errs.NewObjectNotFoundError("product", r.ProductID)
		}
		if !product.IsAvailable() {
			return Quote{}, &ProductUnavailableError{ProductID: product.ID()}
		}

		subtotal, err := c.LineSubtotal(product.Price(), r.Quantity)
		if err != nil {
			return Quote{}, err
		}

		quote.Lines = append(quote.Lines, QuotedLine{
			ProductID:   product.ID(),
			ProductName: product.Name(),
			UnitPrice:   product.Price(),
			Quantity:    r.Quantity,
			Subtotal:    subtotal,
		})
		quote.Subtotal = quote.Subtotal.Add(subtotal)
	}

	total, err := c.OrderTotal(quote.Subtotal, restaurant.DeliveryFee())
	if err != nil {
		return Quote{}, err
	}
	quote.DeliveryFee = restaurant.DeliveryFee()
	quote.Total = total

	return quote, nil
}
