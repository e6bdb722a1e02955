package ports

import (
	"context"

	"deliveryapi/internal/core/domain/model/account"
)

// UserRepository stores API users keyed by their lower-case email.
type UserRepository interface {
	// Add returns account.ErrEmailAlreadyTaken when the email is taken.
	Add(ctx context.Context, user *account.User) error

	// GetByEmail returns errs.ErrObjectNotFound for unknown emails.
	GetByEmail(ctx context.Context, email string) (*account.User, error)
}
