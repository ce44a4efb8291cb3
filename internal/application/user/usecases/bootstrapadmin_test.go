package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/authorization"
	"helpdesk/internal/shared/errors"
)

func validBootstrapCommand() BootstrapAdminCommand {
	return BootstrapAdminCommand{
		Username: "root-admin",
		Email:    "admin@example.com",
		Password: "secret-password",
	}
}

func TestBootstrapAdminUseCase_Execute(t *testing.T) {
	t.Run("admin actor can always create admins", func(t *testing.T) {
		var created *user.User
		userRepo := &mockUserRepository{
			CreateFunc: func(ctx context.Context, u *user.User) error {
				created = u
				return u.SetID(5)
			},
			CountByRoleFunc: func(ctx context.Context, role string) (int64, error) {
				t.Fatal("admin count must not be consulted for an admin actor")
				return 0, nil
			},
		}
		uc := NewBootstrapAdminUseCase(userRepo, &mockHasher{}, "setup-token", nopLogger{})

		cmd := validBootstrapCommand()
		cmd.ActorIsAdmin = true

		result, err := uc.Execute(context.Background(), cmd)

		require.NoError(t, err)
		assert.Equal(t, uint(5), result.UserID)
		require.NotNil(t, created)
		assert.Equal(t, authorization.RoleAdmin, created.Role())
	})

	t.Run("setup token works while no admin exists", func(t *testing.T) {
		userRepo := &mockUserRepository{
			CreateFunc: func(ctx context.Context, u *user.User) error {
				return u.SetID(1)
			},
			CountByRoleFunc: func(ctx context.Context, role string) (int64, error) {
				return 0, nil
			},
		}
		uc := NewBootstrapAdminUseCase(userRepo, &mockHasher{}, "setup-token", nopLogger{})

		cmd := validBootstrapCommand()
		cmd.SetupToken = "setup-token"

		_, err := uc.Execute(context.Background(), cmd)
		assert.NoError(t, err)
	})

	t.Run("setup token is rejected once an admin exists", func(t *testing.T) {
		userRepo := &mockUserRepository{
			CountByRoleFunc: func(ctx context.Context, role string) (int64, error) {
				return 1, nil
			},
		}
		uc := NewBootstrapAdminUseCase(userRepo, &mockHasher{}, "setup-token", nopLogger{})

		cmd := validBootstrapCommand()
		cmd.SetupToken = "setup-token"

		_, err := uc.Execute(context.Background(), cmd)

		require.Error(t, err)
		assert.Equal(t, 403, errors.GetAppError(err).Code)
	})

	t.Run("wrong setup token is rejected", func(t *testing.T) {
		uc := NewBootstrapAdminUseCase(&mockUserRepository{}, &mockHasher{}, "setup-token", nopLogger{})

		cmd := validBootstrapCommand()
		cmd.SetupToken = "guessed-token"

		_, err := uc.Execute(context.Background(), cmd)

		require.Error(t, err)
		assert.Equal(t, 403, errors.GetAppError(err).Code)
	})

	t.Run("empty configured token disables bootstrap", func(t *testing.T) {
		uc := NewBootstrapAdminUseCase(&mockUserRepository{}, &mockHasher{}, "", nopLogger{})

		cmd := validBootstrapCommand()
		cmd.SetupToken = ""

		_, err := uc.Execute(context.Background(), cmd)

		require.Error(t, err)
		assert.Equal(t, 403, errors.GetAppError(err).Code)
	})
}

func TestDeleteUserUseCase_Execute(t *testing.T) {
	var deletedUser uint
	var deletedSessionsFor uint
	userRepo := &mockUserRepository{
		DeleteFunc: func(ctx context.Context, id uint) error {
			deletedUser = id
			return nil
		},
	}
	sessionRepo := &mockSessionRepository{
		DeleteByUserIDFunc: func(ctx context.Context, userID uint) error {
			deletedSessionsFor = userID
			return nil
		},
	}
	uc := NewDeleteUserUseCase(userRepo, sessionRepo, nopLogger{})

	require.NoError(t, uc.Execute(context.Background(), DeleteUserCommand{UserID: 9}))
	assert.Equal(t, uint(9), deletedUser)
	assert.Equal(t, uint(9), deletedSessionsFor)
}
