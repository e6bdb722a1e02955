// Package account holds the users that authenticate against the API.
package account

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"unicode/utf8"

	"deliveryapi/internal/core/domain/model/kernel"
	"deliveryapi/internal/pkg/errs"
	"deliveryapi/internal/pkg/guard"

	"golang.org/x/crypto/bcrypt"
)

const MinPasswordLength = 8

var (
	ErrUserIsNotConstructed = errors.New("User must be created via NewUser constructor")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrUserIsInactive       = errors.New("user is inactive")
	ErrEmailAlreadyTaken    = errors.New("email is already registered")
)

type Role string

const (
	RoleCustomer   Role = "CUSTOMER"
	RoleRestaurant Role = "RESTAURANT"
	RoleAdmin      Role = "ADMIN"
)

// ParseRole is case-insensitive; an empty value yields RoleCustomer.
func ParseRole(s string) (Role, error) {
	switch r := Role(strings.ToUpper(strings.TrimSpace(s))); r {
	case "":
		return RoleCustomer, nil
	case RoleCustomer, RoleRestaurant, RoleAdmin:
		return r, nil
	default:
		return "", errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a role", s))
	}
}

// User is an API principal. Only the bcrypt hash of the password is kept.
type User struct {
	id           kernel.UUID
	email        string
	passwordHash []byte
	role         Role
	active       bool

	guard guard.ConstructorGuard
}

// NewUser hashes password with bcrypt.DefaultCost.
func NewUser(id kernel.UUID, email, password string, role Role) (*User, error) {
	u := &User{role: role, active: true, guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		u.setID(id),
		u.setEmail(email),
		u.setPassword(password),
		u.setRole(role),
	); err != nil {
		return nil, err
	}

	return u, nil
}

// RestoreUser rebuilds a stored user from its password hash.
func RestoreUser(id kernel.UUID, email string, passwordHash []byte, role Role, active bool) (*User, error) {
	u := &User{active: active, guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		u.setID(id),
		u.setEmail(email),
		u.setRole(role),
	); err != nil {
		return nil, err
	}
	if len(passwordHash) == 0 {
		return nil, errs.NewValueIsRequiredError("password hash")
	}
	u.passwordHash = passwordHash

	return u, nil
}

func (u *User) Validate() error {
	if u == nil {
		return ErrUserIsNotConstructed
	}
	return u.guard.Validate(ErrUserIsNotConstructed)
}

func (u *User) ID() kernel.UUID      { return u.id }
func (u *User) Email() string        { return u.email }
func (u *User) PasswordHash() []byte { return u.passwordHash }
func (u *User) Role() Role           { return u.role }
func (u *User) IsActive() bool       { return u.active }

// Authenticate compares password with the stored hash. Inactive users never
// authenticate.
func (u *User) Authenticate(password string) error {
	if err := bcrypt.CompareHashAndPassword(u.passwordHash, []byte(password)); err != nil {
		return ErrInvalidCredentials
	}
	if !u.active {
		return ErrUserIsInactive
	}
	return nil
}

func (u *User) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	u.id = id
	return nil
}

func (u *User) setEmail(email string) error {
	addr, err := mail.ParseAddress(strings.TrimSpace(email))
	if err != nil || addr.Name != "" {
		return errs.NewValueIsInvalidErrorWithCause("email", fmt.Errorf("%q is not an email address", email))
	}
	u.email = strings.ToLower(addr.Address)
	return nil
}

func (u *User) setPassword(password string) error {
	if utf8.RuneCountInString(password) < MinPasswordLength {
		return errs.NewValueIsOutOfRangeError("password length", utf8.RuneCountInString(password), MinPasswordLength, 72)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return errs.NewValueIsInvalidErrorWithCause("password", err)
	}
	u.passwordHash = hash
	return nil
}

func (u *User) setRole(role Role) error {
	if _, err := ParseRole(string(role)); err != nil || role == "" {
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a role", role))
	}
	u.role = role
	return nil
}
