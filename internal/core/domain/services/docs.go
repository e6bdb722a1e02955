// Package services provides domain services that compute values spanning
// more than one entity of the delivery system.
//
// The package includes:
//   - TotalCalculator: line, order and quote totals in fixed-point decimal
//
// TotalCalculator is pure. It never rounds mid-computation; rounding to two
// places happens only when a kernel.Money is presented.
package services
