package usecases

import (
	"context"

	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/authorization"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type RegisterCommand struct {
	Username        string
	Email           string
	Password        string
	PasswordConfirm string
}

type RegisterResult struct {
	UserID   uint
	Username string
}

type RegisterExecutor interface {
	Execute(ctx context.Context, cmd RegisterCommand) (*RegisterResult, error)
}

type RegisterUseCase struct {
	userRepo user.Repository
	hasher   user.PasswordHasher
	logger   logger.Interface
}

func NewRegisterUseCase(userRepo user.Repository, hasher user.PasswordHasher, logger logger.Interface) *RegisterUseCase {
	return &RegisterUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		logger:   logger,
	}
}

func (uc *RegisterUseCase) Execute(ctx context.Context, cmd RegisterCommand) (*RegisterResult, error) {
	if err := uc.validateCommand(cmd); err != nil {
		return nil, err
	}

	existing, err := uc.userRepo.GetByUsername(ctx, cmd.Username)
	if err != nil {
		uc.logger.Errorw("failed to check username uniqueness", "error", err)
		return nil, errors.NewInternalError("failed to register")
	}
	if existing != nil {
		return nil, errors.NewValidationError("please use a different username")
	}

	existing, err = uc.userRepo.GetByEmail(ctx, cmd.Email)
	if err != nil {
		uc.logger.Errorw("failed to check email uniqueness", "error", err)
		return nil, errors.NewInternalError("failed to register")
	}
	if existing != nil {
		return nil, errors.NewValidationError("please use a different email address")
	}

	hash, err := uc.hasher.Hash(cmd.Password)
	if err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return nil, errors.NewInternalError("failed to register")
	}

	newUser, err := user.NewUser(cmd.Username, cmd.Email, hash, authorization.RoleUser)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.userRepo.Create(ctx, newUser); err != nil {
		uc.logger.Errorw("failed to create user", "error", err)
		return nil, err
	}

	uc.logger.Infow("user registered", "user_id", newUser.ID(), "username", newUser.Username())

	return &RegisterResult{
		UserID:   newUser.ID(),
		Username: newUser.Username(),
	}, nil
}

func (uc *RegisterUseCase) validateCommand(cmd RegisterCommand) error {
	if err := user.ValidateUsername(cmd.Username); err != nil {
		return errors.NewValidationError(err.Error())
	}
	if err := user.ValidateEmail(cmd.Email); err != nil {
		return errors.NewValidationError(err.Error())
	}
	if err := user.ValidatePassword(cmd.Password); err != nil {
		return errors.NewValidationError(err.Error())
	}
	if cmd.Password != cmd.PasswordConfirm {
		return errors.NewValidationError("passwords do not match")
	}
	return nil
}
