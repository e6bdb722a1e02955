package http

import (
	"net/http"
	"strings"

	"deliveryapi/internal/core/application/usecases/commands"
	"deliveryapi/internal/core/application/usecases/queries"
	"deliveryapi/internal/core/domain/model/kernel"
	"deliveryapi/internal/core/domain/services"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// RegisterUser handles POST /auth/register.
func (s *Server) RegisterUser(c echo.Context) error {
	var req registerRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	cmd, err := commands.NewRegisterUserCommand(kernel.NewUUID(), req.Email, req.Password, req.Role)
	if err != nil {
		return err
	}
	if err := s.h.RegisterUser.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, userJSON{
		ID:    cmd.UserID().Bytes(),
		Email: strings.ToLower(strings.TrimSpace(cmd.Email())),
		Role:  string(cmd.Role()),
	})
}

// Login handles POST /auth/login.
func (s *Server) Login(c echo.Context) error {
	var req loginRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	query, err := queries.NewAuthenticateUserQuery(req.Email, req.Password)
	if err != nil {
		return err
	}
	user, err := s.h.AuthenticateUser.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	token, expiresAt, err := s.tokens.Issue(user)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, tokenJSON{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresAt:   expiresAt,
	})
}

// CreateCustomer handles POST /customers.
func (s *Server) CreateCustomer(c echo.Context) error {
	var req newCustomerRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}
	address, err := req.Address.toDomain()
	if err != nil {
		return err
	}

	cmd, err := commands.NewCreateCustomerCommand(kernel.NewUUID(), req.Name, req.Email, req.Phone, address)
	if err != nil {
		return err
	}
	if err := s.h.CreateCustomer.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return s.respondCustomer(c, http.StatusCreated, cmd.CustomerID())
}

// GetCustomer handles GET /customers/:id.
func (s *Server) GetCustomer(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	return s.respondCustomer(c, http.StatusOK, id)
}

func (s *Server) respondCustomer(c echo.Context, status int, id kernel.UUID) error {
	query, err := queries.NewGetCatalogItemQuery(id)
	if err != nil {
		return err
	}
	customer, err := s.h.GetCatalog.HandleCustomer(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(status, newCustomerJSON(customer))
}

// CreateRestaurant handles POST /restaurants.
func (s *Server) CreateRestaurant(c echo.Context) error {
	var req newRestaurantRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}
	fee, err := kernel.MoneyFromString(req.DeliveryFee)
	if err != nil {
		return err
	}

	cmd, err := commands.NewCreateRestaurantCommand(
		kernel.NewUUID(), req.Name, req.Category, req.Phone, fee, req.DeliveryTimeMinutes,
	)
	if err != nil {
		return err
	}
	if err := s.h.CreateRestaurant.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return s.respondRestaurant(c, http.StatusCreated, cmd.RestaurantID())
}

// GetRestaurant handles GET /restaurants/:id.
func (s *Server) GetRestaurant(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	return s.respondRestaurant(c, http.StatusOK, id)
}

func (s *Server) respondRestaurant(c echo.Context, status int, id kernel.UUID) error {
	query, err := queries.NewGetCatalogItemQuery(id)
	if err != nil {
		return err
	}
	restaurant, err := s.h.GetCatalog.HandleRestaurant(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(status, newRestaurantJSON(restaurant))
}

// CreateProduct handles POST /restaurants/:id/products.
func (s *Server) CreateProduct(c echo.Context) error {
	restaurantID, err := pathID(c)
	if err != nil {
		return err
	}
	var req newProductRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}
	price, err := kernel.MoneyFromString(req.Price)
	if err != nil {
		return err
	}

	cmd, err := commands.NewCreateProductCommand(
		kernel.NewUUID(), restaurantID, req.Name, req.Category, req.Description, price,
	)
	if err != nil {
		return err
	}
	if err := s.h.CreateProduct.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return s.respondProduct(c, http.StatusCreated, cmd.ProductID())
}

// GetProduct handles GET /products/:id.
func (s *Server) GetProduct(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	return s.respondProduct(c, http.StatusOK, id)
}

// SetProductAvailability handles PATCH /products/:id/availability.
func (s *Server) SetProductAvailability(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req availabilityRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	cmd, err := commands.NewSetProductAvailabilityCommand(id, req.Available)
	if err != nil {
		return err
	}
	if err := s.h.SetProductAvailability.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return s.respondProduct(c, http.StatusOK, id)
}

func (s *Server) respondProduct(c echo.Context, status int, id kernel.UUID) error {
	query, err := queries.NewGetCatalogItemQuery(id)
	if err != nil {
		return err
	}
	product, err := s.h.GetCatalog.HandleProduct(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(status, newProductJSON(product))
}

// CreateOrder handles POST /orders.
func (s *Server) CreateOrder(c echo.Context) error {
	var req newOrderRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}
	customerID, err := kernel.UUIDFromGoogle(req.CustomerID)
	if err != nil {
		return err
	}
	restaurantID, err := kernel.UUIDFromGoogle(req.RestaurantID)
	if err != nil {
		return err
	}
	address, err := req.DeliveryAddress.toDomain()
	if err != nil {
		return err
	}

	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), customerID, restaurantID, address)
	if err != nil {
		return err
	}
	if err := s.h.CreateOrder.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return s.respondOrder(c, http.StatusCreated, cmd.OrderID())
}

// GetOrder handles GET /orders/:id.
func (s *Server) GetOrder(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	return s.respondOrder(c, http.StatusOK, id)
}

// ListOrders handles GET /orders with optional status, from and to filters.
func (s *Server) ListOrders(c echo.Context) error {
	var status *string
	if err := runtime.BindQueryParameter("form", true, false, "status", c.QueryParams(), &status); err != nil {
		return badRequest(err)
	}
	from, to, err := periodParams(c)
	if err != nil {
		return err
	}

	label := ""
	if status != nil {
		label = *status
	}
	query, err := queries.NewListOrdersQuery(label, from, to)
	if err != nil {
		return err
	}

	return s.respondOrders(c, query)
}

// GetCustomerOrders handles GET /customers/:id/orders.
func (s *Server) GetCustomerOrders(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	query, err := queries.NewCustomerOrdersQuery(id)
	if err != nil {
		return err
	}
	return s.respondOrders(c, query)
}

// GetRestaurantOrders handles GET /restaurants/:id/orders.
func (s *Server) GetRestaurantOrders(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	query, err := queries.NewRestaurantOrdersQuery(id)
	if err != nil {
		return err
	}
	return s.respondOrders(c, query)
}

// DeleteOrder handles DELETE /orders/:id.
func (s *Server) DeleteOrder(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	cmd, err := commands.NewDeleteOrderCommand(id)
	if err != nil {
		return err
	}
	if err := s.h.DeleteOrder.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// AddOrderLine handles POST /orders/:id/lines.
func (s *Server) AddOrderLine(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req newLineRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}
	productID, err := kernel.UUIDFromGoogle(req.ProductID)
	if err != nil {
		return err
	}

	cmd, err := commands.NewAddOrderLineCommand(id, kernel.NewUUID(), productID, req.Quantity)
	if err != nil {
		return err
	}
	if err := s.h.AddOrderLine.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return s.respondOrder(c, http.StatusCreated, id)
}

// ConfirmOrder handles POST /orders/:id/confirm.
func (s *Server) ConfirmOrder(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	cmd, err := commands.NewConfirmOrderCommand(id)
	if err != nil {
		return err
	}
	if err := s.h.ConfirmOrder.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return s.respondOrder(c, http.StatusOK, id)
}

// CancelOrder handles POST /orders/:id/cancel.
func (s *Server) CancelOrder(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	cmd, err := commands.NewCancelOrderCommand(id)
	if err != nil {
		return err
	}
	if err := s.h.CancelOrder.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return s.respondOrder(c, http.StatusOK, id)
}

// UpdateOrderStatus handles PATCH /orders/:id/status.
func (s *Server) UpdateOrderStatus(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req statusRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(id, req.Status)
	if err != nil {
		return err
	}
	if err := s.h.UpdateOrderStatus.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return s.respondOrder(c, http.StatusOK, id)
}

// QuoteOrder handles POST /orders/quote. Nothing is persisted.
func (s *Server) QuoteOrder(c echo.Context) error {
	var req quoteRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}
	restaurantID, err := kernel.UUIDFromGoogle(req.RestaurantID)
	if err != nil {
		return err
	}

	lines := make([]services.QuoteLine, 0, len(req.Lines))
	for _, l := range req.Lines {
		productID, err := kernel.UUIDFromGoogle(l.ProductID)
		if err != nil {
			return err
		}
		lines = append(lines, services.QuoteLine{ProductID: productID, Quantity: l.Quantity})
	}

	query, err := queries.NewQuoteOrderQuery(restaurantID, lines)
	if err != nil {
		return err
	}
	quote, err := s.h.QuoteOrder.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, newQuoteJSON(quote))
}

// GetSalesSummary handles GET /reports/sales.
func (s *Server) GetSalesSummary(c echo.Context) error {
	from, to, err := periodParams(c)
	if err != nil {
		return err
	}
	query, err := queries.NewGetSalesSummaryQuery(from, to)
	if err != nil {
		return err
	}
	rows, err := s.h.GetSalesSummary.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, newSalesSummaryJSON(rows))
}

func (s *Server) respondOrder(c echo.Context, status int, id kernel.UUID) error {
	query, err := queries.NewGetOrderQuery(id)
	if err != nil {
		return err
	}
	o, err := s.h.GetOrder.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(status, newOrderJSON(o))
}

func (s *Server) respondOrders(c echo.Context, query queries.ListOrdersQuery) error {
	orders, err := s.h.ListOrders.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, newOrdersJSON(orders))
}
