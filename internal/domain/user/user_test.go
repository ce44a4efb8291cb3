package user

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helpdesk/internal/shared/authorization"
)

type stubHasher struct {
	password string
}

func (s *stubHasher) Hash(password string) (string, error) {
	return "hashed:" + password, nil
}

func (s *stubHasher) Verify(password, hash string) error {
	if "hashed:"+password != hash {
		return fmt.Errorf("password verification failed")
	}
	return nil
}

func TestNewUser(t *testing.T) {
	t.Run("creates user with valid fields", func(t *testing.T) {
		u, err := NewUser("alice", "alice@example.com", "hashed:secret", authorization.RoleUser)

		require.NoError(t, err)
		assert.Equal(t, "alice", u.Username())
		assert.Equal(t, "alice@example.com", u.Email())
		assert.Equal(t, authorization.RoleUser, u.Role())
		assert.False(t, u.IsAdmin())
	})

	t.Run("rejects short username", func(t *testing.T) {
		_, err := NewUser("bob", "bob@example.com", "hash", authorization.RoleUser)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "username must be at least")
	})

	t.Run("rejects empty password hash", func(t *testing.T) {
		_, err := NewUser("alice", "alice@example.com", "", authorization.RoleUser)
		assert.Error(t, err)
	})

	t.Run("admin role reports admin", func(t *testing.T) {
		u, err := NewUser("admin-user", "admin@example.com", "hash", authorization.RoleAdmin)

		require.NoError(t, err)
		assert.True(t, u.IsAdmin())
	})
}

func TestValidateUsername(t *testing.T) {
	assert.NoError(t, ValidateUsername("abcd"))
	assert.NoError(t, ValidateUsername(strings.Repeat("x", MaxUsernameLength)))
	assert.Error(t, ValidateUsername("abc"))
	assert.Error(t, ValidateUsername(strings.Repeat("x", MaxUsernameLength+1)))
}

func TestValidateEmail(t *testing.T) {
	assert.NoError(t, ValidateEmail("a@b"))
	assert.Error(t, ValidateEmail(""))
	assert.Error(t, ValidateEmail("no-at-sign"))
	assert.Error(t, ValidateEmail("@example.com"))
	assert.Error(t, ValidateEmail("alice@"))
	assert.Error(t, ValidateEmail(strings.Repeat("x", MaxEmailLength)+"@example.com"))
}

func TestValidatePassword(t *testing.T) {
	assert.NoError(t, ValidatePassword("12345678"))
	assert.NoError(t, ValidatePassword(strings.Repeat("x", MaxPasswordLength)))
	assert.Error(t, ValidatePassword("1234567"))
	assert.Error(t, ValidatePassword(strings.Repeat("x", MaxPasswordLength+1)))
}

func TestVerifyPassword(t *testing.T) {
	hasher := &stubHasher{}
	hash, err := hasher.Hash("correct-horse")
	require.NoError(t, err)

	u, err := NewUser("alice", "alice@example.com", hash, authorization.RoleUser)
	require.NoError(t, err)

	assert.NoError(t, u.VerifyPassword("correct-horse", hasher))
	assert.Error(t, u.VerifyPassword("wrong-horse", hasher))
}
