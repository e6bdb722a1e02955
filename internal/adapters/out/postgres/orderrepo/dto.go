// Package orderrepo persists order aggregates with gorm. An order row owns
// its line rows; both are always written and read together.
package orderrepo

import (
	"time"

	"deliveryapi/internal/core/domain/model/kernel"
	"deliveryapi/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO is the orders table. Subtotal and total are derived from the
// lines on every save and never read back; reporting queries sum them.
type OrderDTO struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CustomerID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	RestaurantID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	DeliveryAddress AddressDTO      `gorm:"embedded;embeddedPrefix:delivery_"`
	DeliveryFee     decimal.Decimal `gorm:"type:numeric(14,4);not null"`
	Subtotal        decimal.Decimal `gorm:"type:numeric(14,4);not null"`
	Total           decimal.Decimal `gorm:"type:numeric(14,4);not null"`
	Status          string          `gorm:"type:varchar(32);not null;index"`
	CreatedAt       time.Time       `gorm:"not null;index"`
	Lines           []OrderLineDTO  `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

// AddressDTO is the delivery address embedded in the orders table.
type AddressDTO struct {
	Street       string `gorm:"type:varchar(255);not null"`
	Number       string `gorm:"type:varchar(32);not null"`
	Neighborhood string `gorm:"type:varchar(255);not null"`
	City         string `gorm:"type:varchar(255);not null"`
	State        string `gorm:"type:char(2);not null"`
	PostalCode   string `gorm:"type:char(9);not null"`
}

// OrderLineDTO is one row of order_lines. Position keeps the order in which
// lines were added.
type OrderLineDTO struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	Position    int             `gorm:"not null"`
	ProductID   uuid.UUID       `gorm:"type:uuid;not null"`
	ProductName string          `gorm:"type:varchar(255);not null"`
	UnitPrice   decimal.Decimal `gorm:"type:numeric(14,4);not null"`
	Quantity    int             `gorm:"not null"`
	Subtotal    decimal.Decimal `gorm:"type:numeric(14,4);not null"`
}

func (OrderLineDTO) TableName() string {
	return "order_lines"
}

func fromDomain(o *order.Order) OrderDTO {
	orderID := o.ID().Bytes()
	addr := o.DeliveryAddress()

	lines := make([]OrderLineDTO, 0, len(o.Lines()))
	for i, l := range o.Lines() {
		lines = append(lines, OrderLineDTO{
			ID:          l.ID().Bytes(),
			OrderID:     orderID,
			Position:    i,
			ProductID:   l.ProductID().Bytes(),
			ProductName: l.ProductName(),
			UnitPrice:   l.UnitPrice().Decimal(),
			Quantity:    l.Quantity(),
			Subtotal:    l.Subtotal().Decimal(),
		})
	}

	return OrderDTO{
		ID:           orderID,
		CustomerID:   o.CustomerID().Bytes(),
		RestaurantID: o.RestaurantID().Bytes(),
		DeliveryAddress: AddressDTO{
			Street:       addr.Street(),
			Number:       addr.Number(),
			Neighborhood: addr.Neighborhood(),
			City:         addr.City(),
			State:        addr.State(),
			PostalCode:   addr.PostalCode(),
		},
		DeliveryFee: o.DeliveryFee().Decimal(),
		Subtotal:    o.Subtotal().Decimal(),
		Total:       o.Total().Decimal(),
		Status:      o.Status().String(),
		CreatedAt:   o.CreatedAt().UTC(),
		Lines:       lines,
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}
	restaurantID, err := kernel.UUIDFromBytes(dto.RestaurantID[:])
	if err != nil {
		return nil, err
	}

	addr, err := kernel.NewAddress(
		dto.DeliveryAddress.Street,
		dto.DeliveryAddress.Number,
		dto.DeliveryAddress.Neighborhood,
		dto.DeliveryAddress.City,
		dto.DeliveryAddress.State,
		dto.DeliveryAddress.PostalCode,
	)
	if err != nil {
		return nil, err
	}

	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	lines := make([]*order.Line, 0, len(dto.Lines))
	for _, l := range dto.Lines {
		line, lineErr := lineToDomain(l)
		if lineErr != nil {
			return nil, lineErr
		}
		lines = append(lines, line)
	}

	return order.RestoreOrder(id, customerID, restaurantID, addr,
		kernel.NewMoney(dto.DeliveryFee), lines, status, dto.CreatedAt)
}

func lineToDomain(dto OrderLineDTO) (*order.Line, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return nil, err
	}

	return order.RestoreLine(id, productID, dto.ProductName, kernel.NewMoney(dto.UnitPrice), dto.Quantity)
}
