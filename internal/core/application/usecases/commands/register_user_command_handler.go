package commands

import (
	"context"

	"deliveryapi/internal/core/domain/model/account"
)

// RegisterUserCommandHandler stores a new user with a bcrypt password hash.
// A taken email fails with account.ErrEmailAlreadyTaken.
type RegisterUserCommandHandler struct {
	uowFactory UserUoWFactory
}

func NewRegisterUserCommandHandler(uowFactory UserUoWFactory) RegisterUserCommandHandler {
	return RegisterUserCommandHandler{uowFactory: uowFactory}
}

func (h *RegisterUserCommandHandler) Handle(ctx context.Context, cmd RegisterUserCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	user, err := account.NewUser(cmd.UserID(), cmd.Email(), cmd.Password(), cmd.Role())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.UserRepository().Add(ctx, user); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
