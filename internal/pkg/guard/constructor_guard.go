// Package guard detects zero-value structs that bypassed their constructor.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the guard is a zero
// value and the caller supplied no error of its own.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is embedded into commands, queries and value objects.
// Only NewConstructorGuard produces a guard that passes Validate, so a struct
// literal such as commands.CreateOrderCommand{} is rejected by its handler.
//
// Handlers call Validate on every command or query before opening a unit of
// work. A zero value therefore never reaches a repository, even when all of
// its other fields happen to look plausible.
//
// Example usage:
//
//	var ErrQuoteOrderQueryIsNotConstructed = errors.New(
//	    "QuoteOrderQuery must be created via NewQuoteOrderQuery constructor",
//	)
//
//	type QuoteOrderQuery struct {
//	    lines []QuoteLine
//	    guard guard.ConstructorGuard
//	}
//
//	func (q QuoteOrderQuery) Validate() error {
//	    return q.guard.Validate(ErrQuoteOrderQueryIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marked as constructed. Call it only
// from the constructor, after every field has been validated.
//
// Example:
//
//	func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
//	    if err := orderID.Validate(); err != nil {
//	        return GetOrderQuery{}, err
//	    }
//	    return GetOrderQuery{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
//	}
//
// Returns:
//   - A ConstructorGuard that passes Validate
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate reports whether the guarded value came from its constructor.
//
// Parameters:
//   - validationError: the error to return for a zero value; nil selects
//     ErrDefaultConstructorGuard
//
// Example:
//
//	func (c ConfirmOrderCommand) Validate() error {
//	    return c.guard.Validate(ErrConfirmOrderCommandIsNotConstructed)
//	}
//
// Returns:
//   - nil if the guard was created by NewConstructorGuard
//   - validationError if the guard is a zero value
//   - ErrDefaultConstructorGuard if the guard is a zero value and validationError is nil
func (g ConstructorGuard) Validate(validationError error) error {
	if g.isConstructed {
		return nil
	}
	if validationError == nil {
		return ErrDefaultConstructorGuard
	}
	return validationError
}
