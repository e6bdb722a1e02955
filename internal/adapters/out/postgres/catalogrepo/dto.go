// Package catalogrepo persists customers, restaurants and products with gorm.
package catalogrepo

import (
	"time"

	"deliveryapi/internal/core/domain/model/catalog"
	"deliveryapi/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CustomerDTO struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Name      string     `gorm:"type:varchar(255);not null"`
	Email     string     `gorm:"type:varchar(320);not null;index"`
	Phone     string     `gorm:"type:varchar(32)"`
	Address   AddressDTO `gorm:"embedded;embeddedPrefix:address_"`
	Active    bool       `gorm:"not null"`
	CreatedAt time.Time  `gorm:"not null"`
}

func (CustomerDTO) TableName() string {
	return "customers"
}

// AddressDTO is the customer address embedded in the customers table.
type AddressDTO struct {
	Street       string `gorm:"type:varchar(255);not null"`
	Number       string `gorm:"type:varchar(32);not null"`
	Neighborhood string `gorm:"type:varchar(255);not null"`
	City         string `gorm:"type:varchar(255);not null"`
	State        string `gorm:"type:char(2);not null"`
	PostalCode   string `gorm:"type:char(9);not null"`
}

type RestaurantDTO struct {
	ID                  uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name                string          `gorm:"type:varchar(255);not null"`
	Category            string          `gorm:"type:varchar(64);not null"`
	Phone               string          `gorm:"type:varchar(32)"`
	DeliveryFee         decimal.Decimal `gorm:"type:numeric(14,4);not null"`
	DeliveryTimeMinutes int             `gorm:"not null"`
	Active              bool            `gorm:"not null"`
}

func (RestaurantDTO) TableName() string {
	return "restaurants"
}

type ProductDTO struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	RestaurantID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name         string          `gorm:"type:varchar(255);not null"`
	Category     string          `gorm:"type:varchar(64);not null"`
	Description  string          `gorm:"type:text"`
	Price        decimal.Decimal `gorm:"type:numeric(14,4);not null"`
	Available    bool            `gorm:"not null"`
}

func (ProductDTO) TableName() string {
	return "products"
}

func customerFromDomain(c *catalog.Customer) CustomerDTO {
	addr := c.Address()
	return CustomerDTO{
		ID:    c.ID().Bytes(),
		Name:  c.Name(),
		Email: c.Email(),
		Phone: c.Phone(),
		Address: AddressDTO{
			Street:       addr.Street(),
			Number:       addr.Number(),
			Neighborhood: addr.Neighborhood(),
			City:         addr.City(),
			State:        addr.State(),
			PostalCode:   addr.PostalCode(),
		},
		Active:    c.IsActive(),
		CreatedAt: c.CreatedAt().UTC(),
	}
}

func customerToDomain(dto CustomerDTO) (*catalog.Customer, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	addr, err := kernel.NewAddress(
		dto.Address.Street,
		dto.Address.Number,
		dto.Address.Neighborhood,
		dto.Address.City,
		dto.Address.State,
		dto.Address.PostalCode,
	)
	if err != nil {
		return nil, err
	}

	return catalog.RestoreCustomer(id, dto.Name, dto.Email, dto.Phone, addr, dto.Active, dto.CreatedAt)
}

func restaurantFromDomain(r *catalog.Restaurant) RestaurantDTO {
	return RestaurantDTO{
		ID:                  r.ID().Bytes(),
		Name:                r.Name(),
		Category:            r.Category(),
		Phone:               r.Phone(),
		DeliveryFee:         r.DeliveryFee().Decimal(),
		DeliveryTimeMinutes: r.DeliveryTimeMinutes(),
		Active:              r.IsActive(),
	}
}

func restaurantToDomain(dto RestaurantDTO) (*catalog.Restaurant, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return catalog.RestoreRestaurant(id, dto.Name, dto.Category, dto.Phone,
		kernel.NewMoney(dto.DeliveryFee), dto.DeliveryTimeMinutes, dto.Active)
}

func productFromDomain(p *catalog.Product) ProductDTO {
	return ProductDTO{
		ID:           p.ID().Bytes(),
		RestaurantID: p.RestaurantID().Bytes(),
		Name:         p.Name(),
		Category:     p.Category(),
		Description:  p.Description(),
		Price:        p.Price().Decimal(),
		Available:    p.IsAvailable(),
	}
}

func productToDomain(dto ProductDTO) (*catalog.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	restaurantID, err := kernel.UUIDFromBytes(dto.RestaurantID[:])
	if err != nil {
		return nil, err
	}

	return catalog.RestoreProduct(id, restaurantID, dto.Name, dto.Category, dto.Description,
		kernel.NewMoney(dto.Price), dto.Available)
}
