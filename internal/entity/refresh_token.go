package entity

import "time"

// RefreshToken tracks one token family for rotation. Counter increases on
// every refresh; a presented token whose counter lags the row means the
// family leaked and gets revoked as a whole.
type RefreshToken struct {
	Family string `gorm:"primaryKey"`

	UserID string `gorm:"index"`
	User   User   `gorm:"foreignKey:UserID"`

	Counter    uint64
	Expiration time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (RefreshToken) TableName() string {
	return "refresh_tokens"
}
