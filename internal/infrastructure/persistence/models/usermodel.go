package models

type UserModel struct {
	ID           uint   `gorm:"primaryKey"`
	Username     string `gorm:"uniqueIndex;size:64;not null"`
	Email        string `gorm:"uniqueIndex;size:120;not null"`
	PasswordHash string `gorm:"size:128;not null"`
	Role         string `gorm:"size:20;not null;index"`
	CreatedAt    int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt    int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (UserModel) TableName() string {
	return "users"
}

type SessionModel struct {
	ID             string `gorm:"primaryKey;size:64"`
	UserID         uint   `gorm:"not null;index"`
	IPAddress      string `gorm:"size:45"`
	UserAgent      string `gorm:"size:255"`
	ExpiresAt      int64  `gorm:"not null;index"`
	LastActivityAt int64  `gorm:"not null"`
	CreatedAt      int64  `gorm:"autoCreateTime:milli;not null"`
}

func (SessionModel) TableName() string {
	return "sessions"
}
