// Package http exposes the order, catalog, account and report use cases over
// a JSON REST API built on echo. Every /api/v1 request is validated against
// the embedded OpenAPI document; every route except /auth/* requires a
// bearer token.
package http

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"deliveryapi/internal/core/application/usecases/commands"
	"deliveryapi/internal/core/application/usecases/queries"
	"deliveryapi/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/oapi-codegen/runtime"
)

// Handlers are the use cases served over HTTP.
type Handlers struct {
	CreateOrder       commands.CreateOrderCommandHandler
	AddOrderLine      commands.AddOrderLineCommandHandler
	ConfirmOrder      commands.ConfirmOrderCommandHandler
	CancelOrder       commands.CancelOrderCommandHandler
	UpdateOrderStatus commands.UpdateOrderStatusCommandHandler
	DeleteOrder       commands.DeleteOrderCommandHandler

	CreateCustomer         commands.CreateCustomerCommandHandler
	CreateRestaurant       commands.CreateRestaurantCommandHandler
	CreateProduct          commands.CreateProductCommandHandler
	SetProductAvailability commands.SetProductAvailabilityCommandHandler
	RegisterUser           commands.RegisterUserCommandHandler

	GetOrder         queries.GetOrderQueryHandler
	ListOrders       queries.ListOrdersQueryHandler
	QuoteOrder       queries.QuoteOrderQueryHandler
	GetCatalog       queries.GetCatalogQueryHandler
	GetSalesSummary  queries.GetSalesSummaryQueryHandler
	AuthenticateUser queries.AuthenticateUserQueryHandler
}

// Server routes HTTP requests to the use cases.
type Server struct {
	h      Handlers
	tokens *TokenIssuer
	logger *slog.Logger
}

func NewServer(h Handlers, tokens *TokenIssuer, logger *slog.Logger) *Server {
	return &Server{
		h:      h,
		tokens: tokens,
		logger: logger.With("component", "http_server"),
	}
}

// Echo builds the router with its middleware chain.
func (s *Server) Echo(ctx context.Context) (*echo.Echo, error) {
	doc, err := OpenAPI(ctx)
	if err != nil {
		return nil, err
	}
	validate, err := requestValidator(doc)
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = errorHandler(s.logger)

	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(s.requestLogger())

	e.GET("/health", s.Health)

	api := e.Group("/api/v1")

	auth := api.Group("/auth", validate)
	auth.POST("/register", s.RegisterUser)
	auth.POST("/login", s.Login)

	private := api.Group("", s.tokens.Middleware(), validate)

	private.POST("/customers", s.CreateCustomer)
	private.GET("/customers/:id", s.GetCustomer)
	private.GET("/customers/:id/orders", s.GetCustomerOrders)

	private.POST("/restaurants", s.CreateRestaurant)
	private.GET("/restaurants/:id", s.GetRestaurant)
	private.GET("/restaurants/:id/orders", s.GetRestaurantOrders)
	private.POST("/restaurants/:id/products", s.CreateProduct)

	private.GET("/products/:id", s.GetProduct)
	private.PATCH("/products/:id/availability", s.SetProductAvailability)

	private.POST("/orders", s.CreateOrder)
	private.GET("/orders", s.ListOrders)
	private.POST("/orders/quote", s.QuoteOrder)
	private.GET("/orders/:id", s.GetOrder)
	private.DELETE("/orders/:id", s.DeleteOrder)
	private.POST("/orders/:id/lines", s.AddOrderLine)
	private.POST("/orders/:id/confirm", s.ConfirmOrder)
	private.POST("/orders/:id/cancel", s.CancelOrder)
	private.PATCH("/orders/:id/status", s.UpdateOrderStatus)

	private.GET("/reports/sales", s.GetSalesSummary)

	return e, nil
}

// Health handles GET /health.
func (s *Server) Health(c echo.Context) error {
	return c.String(http.StatusOK, "Healthy")
}

func (s *Server) requestLogger() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []slog.Attr{
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
				slog.String("request_id", v.RequestID),
			}
			if claims, ok := claimsFrom(c); ok {
				attrs = append(attrs, slog.String("user_id", claims.Subject))
			}

			level := slog.LevelInfo
			if v.Error != nil {
				attrs = append(attrs, slog.String("error", v.Error.Error()))
				if v.Status >= http.StatusInternalServerError {
					level = slog.LevelError
				}
			}

			s.logger.LogAttrs(c.Request().Context(), level, "request", attrs...)
			return nil
		},
	})
}

// pathID binds the :id path parameter.
func pathID(c echo.Context) (kernel.UUID, error) {
	var id uuid.UUID
	err := runtime.BindStyledParameterWithOptions("simple", "id", c.Param("id"), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return kernel.UUID{}, badRequest(err)
	}
	return kernel.UUIDFromGoogle(id)
}

// periodParams binds the optional from and to query parameters.
func periodParams(c echo.Context) (*time.Time, *time.Time, error) {
	var from, to *time.Time

	if err := runtime.BindQueryParameter("form", true, false, "from", c.QueryParams(), &from); err != nil {
		return nil, nil, badRequest(err)
	}
	if err := runtime.BindQueryParameter("form", true, false, "to", c.QueryParams(), &to); err != nil {
		return nil, nil, badRequest(err)
	}

	return from, to, nil
}

func bindBody(c echo.Context, dst any) error {
	if err := c.Bind(dst); err != nil {
		return badRequest(err)
	}
	return nil
}
