package catalogrepo

import (
	"context"
	"errors"

	"deliveryapi/internal/core/domain/model/catalog"
	"deliveryapi/internal/core/domain/model/kernel"
	"deliveryapi/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormCustomerRepository implements ports.CustomerRepository using GORM.
type GormCustomerRepository struct {
	db *gorm.DB
}

func NewGormCustomerRepository(db *gorm.DB) *GormCustomerRepository {
	return &GormCustomerRepository{db: db}
}

func (r *GormCustomerRepository) Add(ctx context.Context, customer *catalog.Customer) error {
	if err := customer.Validate(); err != nil {
		return err
	}

	dto := customerFromDomain(customer)
	return r.db.WithContext(ctx).Create(&dto).Error
}

func (r *GormCustomerRepository) Get(ctx context.Context, id kernel.UUID) (*catalog.Customer, error) {
	var dto CustomerDTO
	if err := first(ctx, r.db, &dto, "customer", id); err != nil {
		return nil, err
	}
	return customerToDomain(dto)
}

// GormRestaurantRepository implements ports.RestaurantRepository using GORM.
type GormRestaurantRepository struct {
	db *gorm.DB
}

func NewGormRestaurantRepository(db *gorm.DB) *GormRestaurantRepository {
	return &GormRestaurantRepository{db: db}
}

func (r *GormRestaurantRepository) Add(ctx context.Context, restaurant *catalog.Restaurant) error {
	if err := restaurant.Validate(); err != nil {
		return err
	}

	dto := restaurantFromDomain(restaurant)
	return r.db.WithContext(ctx).Create(&dto).Error
}

func (r *GormRestaurantRepository) Get(ctx context.Context, id kernel.UUID) (*catalog.Restaurant, error) {
	var dto RestaurantDTO
	if err := first(ctx, r.db, &dto, "restaurant", id); err != nil {
		return nil, err
	}
	return restaurantToDomain(dto)
}

// GormProductRepository implements ports.ProductRepository using GORM.
type GormProductRepository struct {
	db *gorm.DB
}

func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

func (r *GormProductRepository) Add(ctx context.Context, product *catalog.Product) error {
	if err := product.Validate(); err != nil {
		return err
	}

	dto := productFromDomain(product)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Update rewrites every column, so availability can be switched off.
func (r *GormProductRepository) Update(ctx context.Context, product *catalog.Product) error {
	if err := product.Validate(); err != nil {
		return err
	}

	dto := productFromDomain(product)
	result := r.db.WithContext(ctx).Model(&ProductDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Omit("ID").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("product", product.ID().String())
	}

	return nil
}

func (r *GormProductRepository) Get(ctx context.Context, id kernel.UUID) (*catalog.Product, error) {
	var dto ProductDTO
	if err := first(ctx, r.db, &dto, "product", id); err != nil {
		return nil, err
	}
	return productToDomain(dto)
}

func first(ctx context.Context, db *gorm.DB, dest any, name string, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	if err := db.WithContext(ctx).First(dest, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errs.NewObjectNotFoundError(name, id.String())
		}
		return err
	}

	return nil
}
