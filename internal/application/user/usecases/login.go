package usecases

import (
	"context"
	"time"

	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/authorization"
	"helpdesk/internal/shared/config"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

// SessionTokenGenerator signs the token placed in the auth cookie.
type SessionTokenGenerator interface {
	Generate(userID uint, sessionID string, role authorization.UserRole, expiresAt time.Time) (string, error)
}

type LoginCommand struct {
	Username   string
	Password   string
	RememberMe bool
	IPAddress  string
	UserAgent  string
}

type LoginResult struct {
	User      *user.User
	SessionID string
	Token     string
	ExpiresAt time.Time
}

type LoginExecutor interface {
	Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error)
}

type LoginUseCase struct {
	userRepo      user.Repository
	sessionRepo   user.SessionRepository
	hasher        user.PasswordHasher
	tokens        SessionTokenGenerator
	sessionConfig config.SessionConfig
	logger        logger.Interface
}

func NewLoginUseCase(
	userRepo user.Repository,
	sessionRepo user.SessionRepository,
	hasher user.PasswordHasher,
	tokens SessionTokenGenerator,
	sessionConfig config.SessionConfig,
	logger logger.Interface,
) *LoginUseCase {
	return &LoginUseCase{
		userRepo:      userRepo,
		sessionRepo:   sessionRepo,
		hasher:        hasher,
		tokens:        tokens,
		sessionConfig: sessionConfig,
		logger:        logger,
	}
}

func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error) {
	existingUser, err := uc.userRepo.GetByUsername(ctx, cmd.Username)
	if err != nil {
		uc.logger.Errorw("failed to get user by username", "error", err)
		return nil, errors.NewInternalError("failed to login")
	}

	// Same failure for an unknown username and a wrong password, so the
	// response does not reveal whether the account exists.
	if existingUser == nil {
		return nil, errors.NewUnauthorizedError("invalid username or password")
	}
	if err := existingUser.VerifyPassword(cmd.Password, uc.hasher); err != nil {
		uc.logger.Warnw("failed login attempt", "username", cmd.Username, "ip", cmd.IPAddress)
		return nil, errors.NewUnauthorizedError("invalid username or password")
	}

	sessionDuration := time.Duration(uc.sessionConfig.DefaultExpDays) * 24 * time.Hour
	if cmd.RememberMe {
		sessionDuration = time.Duration(uc.sessionConfig.RememberExpDays) * 24 * time.Hour
	}
	expiresAt := time.Now().UTC().Add(sessionDuration)

	session, err := user.NewSession(existingUser.ID(), cmd.IPAddress, cmd.UserAgent, expiresAt)
	if err != nil {
		uc.logger.Errorw("failed to create session", "error", err)
		return nil, errors.NewInternalError("failed to login")
	}
	if err := uc.sessionRepo.Create(ctx, session); err != nil {
		uc.logger.Errorw("failed to persist session", "error", err)
		return nil, errors.NewInternalError("failed to login")
	}

	token, err := uc.tokens.Generate(existingUser.ID(), session.ID, existingUser.Role(), expiresAt)
	if err != nil {
		uc.logger.Errorw("failed to generate session token", "error", err)
		return nil, errors.NewInternalError("failed to login")
	}

	uc.logger.Infow("user logged in", "user_id", existingUser.ID(), "session_id", session.ID, "remember_me", cmd.RememberMe)

	return &LoginResult{
		User:      existingUser,
		SessionID: session.ID,
		Token:     token,
		ExpiresAt: expiresAt,
	}, nil
}
