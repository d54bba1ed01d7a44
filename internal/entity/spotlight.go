package entity

import (
	"time"

	"github.com/mylinked/backend/pkg/enum"
)

type SpotlightProject struct {
	Base

	UserID string `gorm:"index"`
	User   User   `gorm:"foreignKey:UserID"`

	Title        string
	Description  string
	URL          string
	ThumbnailURL string

	IsPinned  bool
	ViewCount uint64
}

func (SpotlightProject) TableName() string {
	return "spotlight_projects"
}

type ContributorRole string

var (
	ContributorOwner  = enum.New(ContributorRole("owner"))
	ContributorEditor = enum.New(ContributorRole("editor"))
	ContributorViewer = enum.New(ContributorRole("viewer"))
)

type SpotlightContributor struct {
	CreatedAt time.Time

	ProjectID string           `gorm:"primaryKey"`
	Project   SpotlightProject `gorm:"foreignKey:ProjectID"`

	UserID string `gorm:"primaryKey"`
	User   User   `gorm:"foreignKey:UserID"`

	Role ContributorRole

	AddedBy     string
	AddedByUser User `gorm:"foreignKey:AddedBy"`
}

func (SpotlightContributor) TableName() string {
	return "spotlight_contributors"
}
