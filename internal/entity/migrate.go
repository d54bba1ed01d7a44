package entity

import (
	"context"

	"github.com/mylinked/backend/pkg/xcontext"
)

type Migration struct {
	Version string `gorm:"primaryKey"`
}

func (Migration) TableName() string {
	return "migrations"
}

// MigrateTable creates every table from the current model definitions.
// Tests use it directly; production goes through the migration package.
func MigrateTable(ctx context.Context) error {
	return xcontext.DB(ctx).AutoMigrate(
		&User{},
		&Link{},
		&SocialConnection{},
		&OAuthState{},
		&Follow{},
		&ReferralRequest{},
		&CollaborationRequest{},
		&SpotlightProject{},
		&SpotlightContributor{},
		&RefreshToken{},
		&EmailTemplate{},
		&EmailLog{},
		&Migration{},
	)
}
