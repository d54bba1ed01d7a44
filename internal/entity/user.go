package entity

type User struct {
	Base

	Username       string `gorm:"unique"`
	Email          string `gorm:"unique"`
	HashedPassword string

	DisplayName string
	Bio         string
	AvatarURL   string

	Role string `gorm:"default:USER"`
}

const (
	AdminRole = "ADMIN"
	UserRole  = "USER"
)
