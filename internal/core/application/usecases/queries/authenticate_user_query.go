package queries

import (
	"context"
	"errors"
	"strings"

	"deliveryapi/internal/core/domain/model/account"
	"deliveryapi/internal/core/domain/model/kernel"
	"deliveryapi/internal/core/ports"
	"deliveryapi/internal/pkg/errs"
	"deliveryapi/internal/pkg/guard"
)

var (
	ErrAuthenticateUserQueryIsNotConstructed = errors.New(
		"AuthenticateUserQuery must be created via NewAuthenticateUserQuery constructor",
	)
)

type AuthenticateUserQuery struct {
	email    string
	password string

	guard guard.ConstructorGuard
}

func NewAuthenticateUserQuery(email, password string) (AuthenticateUserQuery, error) {
	if strings.TrimSpace(email) == "" || password == "" {
		return AuthenticateUserQuery{}, account.ErrInvalidCredentials
	}
	return AuthenticateUserQuery{
		email:    strings.ToLower(strings.TrimSpace(email)),
		password: password,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (q AuthenticateUserQuery) Validate() error {
	return q.guard.Validate(ErrAuthenticateUserQueryIsNotConstructed)
}

// AuthenticatedUser is what the HTTP layer puts into a token.
type AuthenticatedUser struct {
	ID    kernel.UUID
	Email string
	Role  account.Role
}

type AuthenticateUserQueryHandler struct {
	users ports.UserRepository
}

func NewAuthenticateUserQueryHandler(users ports.UserRepository) AuthenticateUserQueryHandler {
	return AuthenticateUserQueryHandler{users: users}
}

// Handle returns account.ErrInvalidCredentials for an unknown email as well
// as for a wrong password, so callers cannot tell which emails exist.
func (h AuthenticateUserQueryHandler) Handle(ctx context.Context, query AuthenticateUserQuery) (AuthenticatedUser, error) {
	if err := query.Validate(); err != nil {
		return AuthenticatedUser{}, err
	}

	user, err := h.users.GetByEmail(ctx, query.email)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return AuthenticatedUser{}, account.ErrInvalidCredentials
	}
	if err != nil {
		return AuthenticatedUser{}, err
	}

	if err = user.Authenticate(query.password); err != nil {
		return AuthenticatedUser{}, err
	}

	return AuthenticatedUser{ID: user.ID(), Email: user.Email(), Role: user.Role()}, nil
}
