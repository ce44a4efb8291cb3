package mappers

import (
	"helpdesk/internal/domain/user"
	"helpdesk/internal/infrastructure/persistence/models"
	"helpdesk/internal/shared/authorization"
	"helpdesk/internal/shared/biztime"
)

type UserMapper struct{}

func NewUserMapper() UserMapper {
	return UserMapper{}
}

func (UserMapper) ToModel(u *user.User) *models.UserModel {
	return &models.UserModel{
		ID:           u.ID(),
		Username:     u.Username(),
		Email:        u.Email(),
		PasswordHash: u.PasswordHash(),
		Role:         u.Role().String(),
		CreatedAt:    biztime.TimeToUnixMilli(u.CreatedAt()),
		UpdatedAt:    biztime.TimeToUnixMilli(u.UpdatedAt()),
	}
}

func (UserMapper) ToDomain(m *models.UserModel) (*user.User, error) {
	return user.ReconstructUser(
		m.ID,
		m.Username,
		m.Email,
		m.PasswordHash,
		authorization.ParseUserRole(m.Role),
		biztime.UnixMilliToTime(m.CreatedAt),
		biztime.UnixMilliToTime(m.UpdatedAt),
	)
}

type SessionMapper struct{}

func NewSessionMapper() SessionMapper {
	return SessionMapper{}
}

func (SessionMapper) ToModel(s *user.Session) *models.SessionModel {
	return &models.SessionModel{
		ID:             s.ID,
		UserID:         s.UserID,
		IPAddress:      s.IPAddress,
		UserAgent:      s.UserAgent,
		ExpiresAt:      biztime.TimeToUnixMilli(s.ExpiresAt),
		LastActivityAt: biztime.TimeToUnixMilli(s.LastActivityAt),
		CreatedAt:      biztime.TimeToUnixMilli(s.CreatedAt),
	}
}

func (SessionMapper) ToDomain(m *models.SessionModel) *user.Session {
	return &user.Session{
		ID:             m.ID,
		UserID:         m.UserID,
		IPAddress:      m.IPAddress,
		UserAgent:      m.UserAgent,
		ExpiresAt:      biztime.UnixMilliToTime(m.ExpiresAt),
		LastActivityAt: biztime.UnixMilliToTime(m.LastActivityAt),
		CreatedAt:      biztime.UnixMilliToTime(m.CreatedAt),
	}
}
