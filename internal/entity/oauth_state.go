package entity

import (
	"database/sql"
	"time"
)

// OAuthState is a single-use handshake record created at /social/connect
// and consumed at /social/callback. Rows are trusted only while
// ExpiresAt is in the future; a cron sweep reclaims expired ones. This
// table is the sole source of truth for in-flight handshakes; there is
// no in-process mirror of it.
type OAuthState struct {
	State string `gorm:"primaryKey"`

	UserID string `gorm:"index"`
	User   User   `gorm:"foreignKey:UserID"`

	Platform     string
	CodeVerifier sql.NullString

	CreatedAt time.Time
	ExpiresAt time.Time `gorm:"index"`
}

func (OAuthState) TableName() string {
	return "oauth_states"
}
