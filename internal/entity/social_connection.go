package entity

import (
	"database/sql"
	"time"
)

// SocialConnection is one OAuth grant between a user and a platform. The
// composite primary key enforces at most one connection per pair; token
// refreshes go through an upsert targeting it.
type SocialConnection struct {
	CreatedAt time.Time
	UpdatedAt time.Time

	UserID string `gorm:"primaryKey"`
	User   User   `gorm:"foreignKey:UserID"`

	Platform string `gorm:"primaryKey"`

	AccessToken  string `gorm:"type:text"`
	RefreshToken sql.NullString
	ExpiresAt    sql.NullTime

	PlatformUserID   string
	PlatformUsername string

	ConnectedAt time.Time
	LastSyncAt  sql.NullTime
}

func (SocialConnection) TableName() string {
	return "social_connections"
}
