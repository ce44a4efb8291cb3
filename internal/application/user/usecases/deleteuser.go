package usecases

import (
	"context"

	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/logger"
)

type DeleteUserCommand struct {
	UserID uint
}

type DeleteUserExecutor interface {
	Execute(ctx context.Context, cmd DeleteUserCommand) error
}

// DeleteUserUseCase removes a user account and its sessions. Tickets the user
// created are left in place (they keep their creator reference).
type DeleteUserUseCase struct {
	userRepo    user.Repository
	sessionRepo user.SessionRepository
	logger      logger.Interface
}

func NewDeleteUserUseCase(userRepo user.Repository, sessionRepo user.SessionRepository, logger logger.Interface) *DeleteUserUseCase {
	return &DeleteUserUseCase{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		logger:      logger,
	}
}

func (uc *DeleteUserUseCase) Execute(ctx context.Context, cmd DeleteUserCommand) error {
	if err := uc.userRepo.Delete(ctx, cmd.UserID); err != nil {
		return err
	}

	if err := uc.sessionRepo.DeleteByUserID(ctx, cmd.UserID); err != nil {
		uc.logger.Errorw("failed to delete sessions for removed user", "error", err, "user_id", cmd.UserID)
		return err
	}

	uc.logger.Infow("user deleted", "user_id", cmd.UserID)
	return nil
}
