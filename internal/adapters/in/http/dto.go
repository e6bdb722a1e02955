package http

import (
	"time"

	"deliveryapi/internal/core/application/usecases/queries"
	"deliveryapi/internal/core/domain/model/kernel"
	"deliveryapi/internal/core/domain/services"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

// Money crosses the wire as a string with two decimals so clients never
// round through binary floats.

type addressJSON struct {
	Street       string `json:"street"`
	Number       string `json:"number"`
	Neighborhood string `json:"neighborhood"`
	City         string `json:"city"`
	State        string `json:"state"`
	PostalCode   string `json:"postal_code"`
}

func (a addressJSON) toDomain() (kernel.Address, error) {
	return kernel.NewAddress(a.Street, a.Number, a.Neighborhood, a.City, a.State, a.PostalCode)
}

func newAddressJSON(a kernel.Address) addressJSON {
	return addressJSON{
		Street:       a.Street(),
		Number:       a.Number(),
		Neighborhood: a.Neighborhood(),
		City:         a.City(),
		State:        a.State(),
		PostalCode:   a.PostalCode(),
	}
}

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type userJSON struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
	Role  string    `json:"role"`
}

type tokenJSON struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresAt   time.Time `json:"expires_at"`
}

type newCustomerRequest struct {
	Name    string      `json:"name"`
	Email   string      `json:"email"`
	Phone   string      `json:"phone"`
	Address addressJSON `json:"address"`
}

type customerJSON struct {
	ID        uuid.UUID   `json:"id"`
	Name      string      `json:"name"`
	Email     string      `json:"email"`
	Phone     string      `json:"phone"`
	Address   addressJSON `json:"address"`
	Active    bool        `json:"active"`
	CreatedAt time.Time   `json:"created_at"`
}

func newCustomerJSON(c queries.CustomerResponse) customerJSON {
	return customerJSON{
		ID:        c.ID.Bytes(),
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		Address:   newAddressJSON(c.Address),
		Active:    c.Active,
		CreatedAt: c.CreatedAt,
	}
}

type newRestaurantRequest struct {
	Name                string `json:"name"`
	Category            string `json:"category"`
	Phone               string `json:"phone"`
	DeliveryFee         string `json:"delivery_fee"`
	DeliveryTimeMinutes int    `json:"delivery_time_minutes"`
}

type restaurantJSON struct {
	ID                  uuid.UUID `json:"id"`
	Name                string    `json:"name"`
	Category            string    `json:"category"`
	Phone               string    `json:"phone"`
	DeliveryFee         string    `json:"delivery_fee"`
	DeliveryTimeMinutes int       `json:"delivery_time_minutes"`
	Active              bool      `json:"active"`
}

func newRestaurantJSON(r queries.RestaurantResponse) restaurantJSON {
	return restaurantJSON{
		ID:                  r.ID.Bytes(),
		Name:                r.Name,
		Category:            r.Category,
		Phone:               r.Phone,
		DeliveryFee:         r.DeliveryFee.String(),
		DeliveryTimeMinutes: r.DeliveryTimeMinutes,
		Active:              r.Active,
	}
}

type newProductRequest struct {
	Name        string `json:"name"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Price       string `json:"price"`
}

type availabilityRequest struct {
	Available bool `json:"available"`
}

type productJSON struct {
	ID           uuid.UUID `json:"id"`
	RestaurantID uuid.UUID `json:"restaurant_id"`
	Name         string    `json:"name"`
	Category     string    `json:"category"`
	Description  string    `json:"description"`
	Price        string    `json:"price"`
	Available    bool      `json:"available"`
}

func newProductJSON(p queries.ProductResponse) productJSON {
	return productJSON{
		ID:           p.ID.Bytes(),
		RestaurantID: p.RestaurantID.Bytes(),
		Name:         p.Name,
		Category:     p.Category,
		Description:  p.Description,
		Price:        p.Price.String(),
		Available:    p.Available,
	}
}

type newOrderRequest struct {
	CustomerID      uuid.UUID   `json:"customer_id"`
	RestaurantID    uuid.UUID   `json:"restaurant_id"`
	DeliveryAddress addressJSON `json:"delivery_address"`
}

type newLineRequest struct {
	ProductID uuid.UUID `json:"product_id"`
	Quantity  int       `json:"quantity"`
}

type statusRequest struct {
	Status string `json:"status"`
}

type quoteRequest struct {
	RestaurantID uuid.UUID        `json:"restaurant_id"`
	Lines        []newLineRequest `json:"lines"`
}

type orderLineJSON struct {
	ID          *uuid.UUID `json:"id,omitempty"`
	ProductID   uuid.UUID  `json:"product_id"`
	ProductName string     `json:"product_name"`
	UnitPrice   string     `json:"unit_price"`
	Quantity    int        `json:"quantity"`
	Subtotal    string     `json:"subtotal"`
}

type orderJSON struct {
	ID                uuid.UUID       `json:"id"`
	CustomerID        uuid.UUID       `json:"customer_id"`
	RestaurantID      uuid.UUID       `json:"restaurant_id"`
	DeliveryAddress   addressJSON     `json:"delivery_address"`
	Lines             []orderLineJSON `json:"lines"`
	Subtotal          string          `json:"subtotal"`
	DeliveryFee       string          `json:"delivery_fee"`
	Total             string          `json:"total"`
	Status            string          `json:"status"`
	StatusDescription string          `json:"status_description"`
	CreatedAt         time.Time       `json:"created_at"`
}

func newOrderJSON(o queries.OrderResponse) orderJSON {
	return orderJSON{
		ID:              o.ID.Bytes(),
		CustomerID:      o.CustomerID.Bytes(),
		RestaurantID:    o.RestaurantID.Bytes(),
		DeliveryAddress: newAddressJSON(o.DeliveryAddress),
		Lines: lo.Map(o.Lines, func(l queries.OrderLineResponse, _ int) orderLineJSON {
			return orderLineJSON{
				ID:          lo.ToPtr(l.ID.Bytes()),
				ProductID:   l.ProductID.Bytes(),
				ProductName: l.ProductName,
				UnitPrice:   l.UnitPrice.String(),
				Quantity:    l.Quantity,
				Subtotal:    l.Subtotal.String(),
			}
		}),
		Subtotal:          o.Subtotal.String(),
		DeliveryFee:       o.DeliveryFee.String(),
		Total:             o.Total.String(),
		Status:            o.Status.String(),
		StatusDescription: o.Status.Description(),
		CreatedAt:         o.CreatedAt,
	}
}

func newOrdersJSON(orders []queries.OrderResponse) []orderJSON {
	return lo.Map(orders, func(o queries.OrderResponse, _ int) orderJSON {
		return newOrderJSON(o)
	})
}

type quoteJSON struct {
	Lines       []orderLineJSON `json:"lines"`
	Subtotal    string          `json:"subtotal"`
	DeliveryFee string          `json:"delivery_fee"`
	Total       string          `json:"total"`
}

func newQuoteJSON(q services.Quote) quoteJSON {
	return quoteJSON{
		Lines: lo.Map(q.Lines, func(l services.QuotedLine, _ int) orderLineJSON {
			return orderLineJSON{
				ProductID:   l.ProductID.Bytes(),
				ProductName: l.ProductName,
				UnitPrice:   l.UnitPrice.String(),
				Quantity:    l.Quantity,
				Subtotal:    l.Subtotal.String(),
			}
		}),
		Subtotal:    q.Subtotal.String(),
		DeliveryFee: q.DeliveryFee.String(),
		Total:       q.Total.String(),
	}
}

type salesSummaryRowJSON struct {
	RestaurantID   uuid.UUID `json:"restaurant_id"`
	RestaurantName string    `json:"restaurant_name"`
	OrdersCount    int64     `json:"orders_count"`
	Revenue        string    `json:"revenue"`
}

func newSalesSummaryJSON(rows []queries.SalesSummaryResponse) []salesSummaryRowJSON {
	return lo.Map(rows, func(r queries.SalesSummaryResponse, _ int) salesSummaryRowJSON {
		return salesSummaryRowJSON{
			RestaurantID:   r.RestaurantID.Bytes(),
			RestaurantName: r.RestaurantName,
			OrdersCount:    r.OrdersCount,
			Revenue:        r.Revenue.String(),
		}
	})
}
