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

func validRegisterCommand() RegisterCommand {
	return RegisterCommand{
		Username:        "alice",
		Email:           "alice@example.com",
		Password:        "secret-password",
		PasswordConfirm: "secret-password",
	}
}

func TestRegisterUseCase_Execute(t *testing.T) {
	t.Run("creates user with hashed password", func(t *testing.T) {
		var created *user.User
		userRepo := &mockUserRepository{
			CreateFunc: func(ctx context.Context, u *user.User) error {
				created = u
				return u.SetID(1)
			},
		}
		uc := NewRegisterUseCase(userRepo, &mockHasher{}, nopLogger{})

		result, err := uc.Execute(context.Background(), validRegisterCommand())

		require.NoError(t, err)
		assert.Equal(t, uint(1), result.UserID)
		assert.Equal(t, "alice", result.Username)
		require.NotNil(t, created)
		assert.Equal(t, "hashed:secret-password", created.PasswordHash())
		assert.Equal(t, authorization.RoleUser, created.Role())
	})

	t.Run("rejects taken username", func(t *testing.T) {
		userRepo := &mockUserRepository{
			GetByUsernameFunc: func(ctx context.Context, username string) (*user.User, error) {
				return testUser(1, "alice", authorization.RoleUser), nil
			},
		}
		uc := NewRegisterUseCase(userRepo, &mockHasher{}, nopLogger{})

		_, err := uc.Execute(context.Background(), validRegisterCommand())

		require.Error(t, err)
		assert.True(t, errors.IsValidation(err))
		assert.Contains(t, err.Error(), "please use a different username")
	})

	t.Run("rejects taken email", func(t *testing.T) {
		userRepo := &mockUserRepository{
			GetByEmailFunc: func(ctx context.Context, email string) (*user.User, error) {
				return testUser(2, "other", authorization.RoleUser), nil
			},
		}
		uc := NewRegisterUseCase(userRepo, &mockHasher{}, nopLogger{})

		_, err := uc.Execute(context.Background(), validRegisterCommand())

		require.Error(t, err)
		assert.True(t, errors.IsValidation(err))
		assert.Contains(t, err.Error(), "please use a different email address")
	})

	t.Run("rejects password mismatch", func(t *testing.T) {
		cmd := validRegisterCommand()
		cmd.PasswordConfirm = "something-else"
		uc := NewRegisterUseCase(&mockUserRepository{}, &mockHasher{}, nopLogger{})

		_, err := uc.Execute(context.Background(), cmd)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "passwords do not match")
	})

	t.Run("rejects short password", func(t *testing.T) {
		cmd := validRegisterCommand()
		cmd.Password = "short"
		cmd.PasswordConfirm = "short"
		uc := NewRegisterUseCase(&mockUserRepository{}, &mockHasher{}, nopLogger{})

		_, err := uc.Execute(context.Background(), cmd)

		require.Error(t, err)
		assert.True(t, errors.IsValidation(err))
	})

	t.Run("rejects short username", func(t *testing.T) {
		cmd := validRegisterCommand()
		cmd.Username = "al"
		uc := NewRegisterUseCase(&mockUserRepository{}, &mockHasher{}, nopLogger{})

		_, err := uc.Execute(context.Background(), cmd)

		require.Error(t, err)
		assert.True(t, errors.IsValidation(err))
	})
}
