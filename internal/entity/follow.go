package entity

import (
	"time"

	"gorm.io/gorm"
)

type Follow struct {
	CreatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`

	FollowerID string `gorm:"primaryKey"`
	Follower   User   `gorm:"foreignKey:FollowerID"`

	FollowingID string `gorm:"primaryKey"`
	Following   User   `gorm:"foreignKey:FollowingID"`
}

func (Follow) TableName() string {
	return "follows"
}
