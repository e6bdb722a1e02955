package commands

import (
	"errors"

	"deliveryapi/internal/core/domain/model/account"
	"deliveryapi/internal/core/domain/model/kernel"
	"deliveryapi/internal/pkg/guard"
)

var (
	ErrRegisterUserCommandIsNotConstructed = errors.New(
		"RegisterUserCommand must be created via NewRegisterUserCommand constructor",
	)
)

// RegisterUserCommand carries the plain password only until the handler
// hashes it.
type RegisterUserCommand struct { //nolint:recvcheck //using for validation
	userID   kernel.UUID
	email    string
	password string
	role     account.Role

	guard guard.ConstructorGuard
}

func NewRegisterUserCommand(userID kernel.UUID, email, password, role string) (RegisterUserCommand, error) {
	cmd := RegisterUserCommand{email: email, password: password, guard: guard.NewConstructorGuard()}

	parsedRole, roleErr := account.ParseRole(role)
	if err := errors.Join(
		setUUID(&cmd.userID, userID),
		roleErr,
	); err != nil {
		return RegisterUserCommand{}, err
	}
	cmd.role = parsedRole

	return cmd, nil
}

func (c RegisterUserCommand) Validate() error {
	return c.guard.Validate(ErrRegisterUserCommandIsNotConstructed)
}

func (c RegisterUserCommand) UserID() kernel.UUID { return c.userID }
func (c RegisterUserCommand) Email() string       { return c.email }
func (c RegisterUserCommand) Password() string    { return c.password }
func (c RegisterUserCommand) Role() account.Role  { return c.role }
