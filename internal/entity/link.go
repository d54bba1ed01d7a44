package entity

import (
	"database/sql"
)

// Link is one outbound reference on a user's profile. DisplayOrder is the
// persisted 0-based position; the read path additionally pulls featured
// links to the front without touching it. AiScore is advisory sort input
// for batch reorders, never the position itself.
type Link struct {
	Base

	UserID string `gorm:"index"`
	User   User   `gorm:"foreignKey:UserID"`

	Platform    string
	Title       string
	URL         string
	Description string
	Color       string

	ClickCount uint64
	ViewCount  uint64

	IsFeatured   bool
	DisplayOrder int
	AiScore      sql.NullInt64

	LastClickedAt sql.NullTime
}
