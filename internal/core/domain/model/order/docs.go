// Package order provides the Order aggregate of the delivery API: its line
// items, its derived monetary totals and the status state machine that governs
// its lifecycle.
//
// The package includes:
//   - Order: aggregate root owning its lines, delivery address and status
//   - Line: one product and quantity with the unit price captured when added
//   - Status: lifecycle state with the allowed transition table
//   - StatusChanged: domain event recorded on every successful transition
//
// Key business rules:
//   - New orders start in Created with a total of zero
//   - Lifecycle: Created -> Confirmed -> Preparing -> OutForDelivery -> Delivered
//   - Created, Confirmed and Preparing may be canceled; OutForDelivery may not
//   - Delivered and Canceled are terminal
//   - Pending is a legacy state accepted from storage and leaves like Created
//   - Subtotal and total are derived from the lines and never set directly
package order
