// Package errs provides the error kinds shared by the domain, the use cases and
// the adapters of the delivery API.
//
// Every kind follows the same shape:
//   - a sentinel (ErrObjectNotFound, ErrValueIsInvalid, ...) usable with errors.Is
//   - a struct type carrying the failing parameter and an optional cause
//   - constructors with and without cause
//
// The HTTP adapter maps ErrObjectNotFound to 404 and the value kinds to 400,
// so every not-found in the system is reported through ObjectNotFoundError with
// the entity kind in ParamName and the identifier in ID.
package errs
