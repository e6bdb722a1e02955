// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"deliveryapi/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler asks only for the repositories it touches.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	CatalogRepoFactory interface {
		CustomerRepository() ports.CustomerRepository
		RestaurantRepository() ports.RestaurantRepository
		ProductRepository() ports.ProductRepository
	}

	UserRepoFactory interface {
		UserRepository() ports.UserRepository
	}

	// OrderUoW manages transactions for commands that only touch orders
	// already stored: status changes, cancellation and deletion.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// OrderingUoW manages transactions that read the catalog to build or
	// extend an order.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   product, err := uow.ProductRepository().Get(ctx, productID)
	//   o, err := uow.OrderRepository().Get(ctx, orderID)
	//   // ... add the line
	//
	//   err = uow.Commit(ctx)
	OrderingUoW interface {
		TxManager
		OrderRepoFactory
		CatalogRepoFactory
	}

	OrderingUoWFactory interface {
		Create() OrderingUoW
	}

	// CatalogUoW manages transactions for customers, restaurants and products.
	CatalogUoW interface {
		TxManager
		CatalogRepoFactory
	}

	CatalogUoWFactory interface {
		Create() CatalogUoW
	}

	// UserUoW manages transactions for user accounts.
	UserUoW interface {
		TxManager
		UserRepoFactory
	}

	UserUoWFactory interface {
		Create() UserUoW
	}
)
