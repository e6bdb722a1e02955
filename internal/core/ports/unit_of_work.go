// Package ports defines the contracts between the core and its adapters:
// repositories, the unit of work and the order event publisher.
package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// Repositories it returns after Begin share its transaction. Domain events of
// aggregates saved through them are published once Commit succeeds.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction and then publishes the
	// recorded domain events.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction and drops recorded events.
	Rollback(ctx context.Context) error

	OrderRepository() OrderRepository
	CustomerRepository() CustomerRepository
	RestaurantRepository() RestaurantRepository
	ProductRepository() ProductRepository
	UserRepository() UserRepository
}
