package usecases

import (
	"context"
	"crypto/subtle"

	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/authorization"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type BootstrapAdminCommand struct {
	Username string
	Email    string
	Password string
	// SetupToken authorizes bootstrap when no admin session is present.
	SetupToken string
	// ActorIsAdmin is true when the request carries an admin identity.
	ActorIsAdmin bool
}

type BootstrapAdminResult struct {
	UserID   uint
	Username string
}

type BootstrapAdminExecutor interface {
	Execute(ctx context.Context, cmd BootstrapAdminCommand) (*BootstrapAdminResult, error)
}

// BootstrapAdminUseCase creates an administrator account. It succeeds only
// for an existing admin, or with the configured setup token while no admin
// account exists yet.
type BootstrapAdminUseCase struct {
	userRepo   user.Repository
	hasher     user.PasswordHasher
	setupToken string
	logger     logger.Interface
}

func NewBootstrapAdminUseCase(userRepo user.Repository, hasher user.PasswordHasher, setupToken string, logger logger.Interface) *BootstrapAdminUseCase {
	return &BootstrapAdminUseCase{
		userRepo:   userRepo,
		hasher:     hasher,
		setupToken: setupToken,
		logger:     logger,
	}
}

func (uc *BootstrapAdminUseCase) Execute(ctx context.Context, cmd BootstrapAdminCommand) (*BootstrapAdminResult, error) {
	if err := uc.authorize(ctx, cmd); err != nil {
		return nil, err
	}

	if err := user.ValidateUsername(cmd.Username); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := user.ValidateEmail(cmd.Email); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := user.ValidatePassword(cmd.Password); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	existing, err := uc.userRepo.GetByUsername(ctx, cmd.Username)
	if err != nil {
		uc.logger.Errorw("failed to check username uniqueness", "error", err)
		return nil, errors.NewInternalError("failed to create admin")
	}
	if existing != nil {
		return nil, errors.NewValidationError("please use a different username")
	}

	existing, err = uc.userRepo.GetByEmail(ctx, cmd.Email)
	if err != nil {
		uc.logger.Errorw("failed to check email uniqueness", "error", err)
		return nil, errors.NewInternalError("failed to create admin")
	}
	if existing != nil {
		return nil, errors.NewValidationError("please use a different email address")
	}

	hash, err := uc.hasher.Hash(cmd.Password)
	if err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return nil, errors.NewInternalError("failed to create admin")
	}

	admin, err := user.NewUser(cmd.Username, cmd.Email, hash, authorization.RoleAdmin)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := uc.userRepo.Create(ctx, admin); err != nil {
		uc.logger.Errorw("failed to create admin user", "error", err)
		return nil, err
	}

	uc.logger.Infow("admin account created", "user_id", admin.ID(), "username", admin.Username(), "bootstrapped_by_token", !cmd.ActorIsAdmin)

	return &BootstrapAdminResult{
		UserID:   admin.ID(),
		Username: admin.Username(),
	}, nil
}

func (uc *BootstrapAdminUseCase) authorize(ctx context.Context, cmd BootstrapAdminCommand) error {
	if cmd.ActorIsAdmin {
		return nil
	}

	if uc.setupToken == "" ||
		subtle.ConstantTimeCompare([]byte(cmd.SetupToken), []byte(uc.setupToken)) != 1 {
		return errors.NewForbiddenError("admin access required")
	}

	// The setup token only works while the system has no admin at all.
	adminCount, err := uc.userRepo.CountByRole(ctx, authorization.RoleAdmin.String())
	if err != nil {
		uc.logger.Errorw("failed to count admin accounts", "error", err)
		return errors.NewInternalError("failed to create admin")
	}
	if adminCount > 0 {
		return errors.NewForbiddenError("admin account already exists")
	}
	return nil
}
