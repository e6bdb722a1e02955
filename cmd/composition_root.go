package cmd

import (
	"log/slog"

	"deliveryapi/internal/adapters/in/http"
	"deliveryapi/internal/adapters/out/postgres"
	"deliveryapi/internal/adapters/out/postgres/catalogrepo"
	"deliveryapi/internal/adapters/out/postgres/orderrepo"
	"deliveryapi/internal/adapters/out/postgres/userrepo"
	"deliveryapi/internal/core/application/usecases/commands"
	"deliveryapi/internal/core/application/usecases/queries"
	"deliveryapi/internal/core/ports"
	"deliveryapi/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	cfg        Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	logger     *slog.Logger
}

// NewCompositionRoot wires the use cases to postgres. Events of committed
// order changes go to publisher.
func NewCompositionRoot(
	cfg Config,
	gormDB *gorm.DB,
	publisher ports.OrderEventPublisher,
	logger *slog.Logger,
) CompositionRoot {
	return CompositionRoot{
		cfg:        cfg,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB, publisher, logger),
		logger:     logger,
	}
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) orderingUoWFactory() commands.OrderingUoWFactory {
	return FuncOrderingUoWFactory(func() commands.OrderingUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) catalogUoWFactory() commands.CatalogUoWFactory {
	return FuncCatalogUoWFactory(func() commands.CatalogUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) userUoWFactory() commands.UserUoWFactory {
	return FuncUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.Create()
	})
}

// HTTPHandlers builds every use case served over HTTP. Queries read outside
// any unit of work, so their repositories track nothing.
func (c *CompositionRoot) HTTPHandlers() http.Handlers {
	orders := orderrepo.NewGormOrderRepository(c.gormDB, nil)
	customers := catalogrepo.NewGormCustomerRepository(c.gormDB)
	restaurants := catalogrepo.NewGormRestaurantRepository(c.gormDB)
	products := catalogrepo.NewGormProductRepository(c.gormDB)
	users := userrepo.NewGormUserRepository(c.gormDB)

	return http.Handlers{
		CreateOrder:       commands.NewCreateOrderCommandHandler(c.orderingUoWFactory()),
		AddOrderLine:      commands.NewAddOrderLineCommandHandler(c.orderingUoWFactory()),
		ConfirmOrder:      commands.NewConfirmOrderCommandHandler(c.orderUoWFactory()),
		CancelOrder:       commands.NewCancelOrderCommandHandler(c.orderUoWFactory()),
		UpdateOrderStatus: commands.NewUpdateOrderStatusCommandHandler(c.orderUoWFactory()),
		DeleteOrder:       commands.NewDeleteOrderCommandHandler(c.orderUoWFactory()),

		CreateCustomer:         commands.NewCreateCustomerCommandHandler(c.catalogUoWFactory()),
		CreateRestaurant:       commands.NewCreateRestaurantCommandHandler(c.catalogUoWFactory()),
		CreateProduct:          commands.NewCreateProductCommandHandler(c.catalogUoWFactory()),
		SetProductAvailability: commands.NewSetProductAvailabilityCommandHandler(c.catalogUoWFactory()),
		RegisterUser:           commands.NewRegisterUserCommandHandler(c.userUoWFactory()),

		GetOrder:         queries.NewGetOrderQueryHandler(orders),
		ListOrders:       queries.NewListOrdersQueryHandler(orders),
		QuoteOrder:       queries.NewQuoteOrderQueryHandler(restaurants, products),
		GetCatalog:       queries.NewGetCatalogQueryHandler(customers, restaurants, products),
		GetSalesSummary:  queries.NewGetSalesSummaryQueryHandler(c.gormDB),
		AuthenticateUser: queries.NewAuthenticateUserQueryHandler(users),
	}
}

// TokenIssuer signs and verifies API tokens with the configured secret.
func (c *CompositionRoot) TokenIssuer() (*http.TokenIssuer, error) {
	return http.NewTokenIssuer(c.cfg.JWTSecret, c.cfg.JWTTTL)
}

func (c *CompositionRoot) Jobs() (*jobs.JobManager, error) {
	handler := commands.NewCancelAbandonedOrdersCommandHandler(c.orderUoWFactory())

	abandoned, err := jobs.NewAbandonedOrdersJob(&handler, jobs.AbandonedOrdersConfig{
		Schedule: c.cfg.AbandonedOrderSchedule,
		TTL:      c.cfg.AbandonedOrderTTL,
	}, c.logger)
	if err != nil {
		return nil, err
	}

	return jobs.NewJobManager(c.logger, abandoned), nil
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncOrderingUoWFactory func() commands.OrderingUoW

func (f FuncOrderingUoWFactory) Create() commands.OrderingUoW {
	return f()
}

type FuncCatalogUoWFactory func() commands.CatalogUoW

func (f FuncCatalogUoWFactory) Create() commands.CatalogUoW {
	return f()
}

type FuncUserUoWFactory func() commands.UserUoW

func (f FuncUserUoWFactory) Create() commands.UserUoW {
	return f()
}
