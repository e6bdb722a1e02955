package userrepo

import (
	"context"
	"errors"
	"strings"

	"deliveryapi/internal/core/domain/model/account"
	"deliveryapi/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormUserRepository implements ports.UserRepository using GORM.
type GormUserRepository struct {
	db *gorm.DB
}

func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

// Add fails with account.ErrEmailAlreadyTaken when the email is registered.
// The unique index catches concurrent registrations that pass the lookup;
// gorm reports them as gorm.ErrDuplicatedKey when opened with TranslateError.
func (r *GormUserRepository) Add(ctx context.Context, user *account.User) error {
	if err := user.Validate(); err != nil {
		return err
	}

	db := r.db.WithContext(ctx)

	var taken int64
	if err := db.Model(&UserDTO{}).Where("email = ?", user.Email()).Count(&taken).Error; err != nil {
		return err
	}
	if taken > 0 {
		return account.ErrEmailAlreadyTaken
	}

	dto := fromDomain(user)
	if err := db.Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return account.ErrEmailAlreadyTaken
		}
		return err
	}

	return nil
}

func (r *GormUserRepository) GetByEmail(ctx context.Context, email string) (*account.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var dto UserDTO
	if err := r.db.WithContext(ctx).First(&dto, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("user", email)
		}
		return nil, err
	}

	return toDomain(dto)
}
