package postgres

import (
	"deliveryapi/internal/adapters/out/postgres/catalogrepo"
	"deliveryapi/internal/adapters/out/postgres/orderrepo"
	"deliveryapi/internal/adapters/out/postgres/userrepo"

	"gorm.io/gorm"
)

// Tables lists every table owned by the service, in truncation-safe order.
var Tables = []string{"order_lines", "orders", "products", "restaurants", "customers", "users"}

// Migrate creates or alters the service tables to match the DTOs.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&catalogrepo.CustomerDTO{},
		&catalogrepo.RestaurantDTO{},
		&catalogrepo.ProductDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderLineDTO{},
		&userrepo.UserDTO{},
	)
}
