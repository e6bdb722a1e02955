// Package kernel provides the value objects shared by every aggregate of the
// delivery API.
//
// The package includes:
//   - UUID: identifier of orders, order lines, catalog entities and users
//   - Money: fixed-point monetary amount backed by shopspring/decimal
//   - Address: structured delivery address with a normalized postal code
//
// Value objects are immutable. Their zero values are invalid and are rejected
// by Validate, so they must be obtained from the constructors.
package kernel
