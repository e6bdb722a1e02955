// Package userrepo persists API users with gorm.
package userrepo

import (
	"deliveryapi/internal/core/domain/model/account"
	"deliveryapi/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

type UserDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email        string    `gorm:"type:varchar(320);not null;uniqueIndex"`
	PasswordHash []byte    `gorm:"type:bytea;not null"`
	Role         string    `gorm:"type:varchar(16);not null"`
	Active       bool      `gorm:"not null"`
}

func (UserDTO) TableName() string {
	return "users"
}

func fromDomain(u *account.User) UserDTO {
	return UserDTO{
		ID:           u.ID().Bytes(),
		Email:        u.Email(),
		PasswordHash: u.PasswordHash(),
		Role:         string(u.Role()),
		Active:       u.IsActive(),
	}
}

func toDomain(dto UserDTO) (*account.User, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	role, err := account.ParseRole(dto.Role)
	if err != nil {
		return nil, err
	}

	return account.RestoreUser(id, dto.Email, dto.PasswordHash, role, dto.Active)
}
