package migration

import (
	"context"

	"github.com/mylinked/backend/internal/entity"
	"github.com/mylinked/backend/pkg/xcontext"
)

// migrate0001 backfills the welcome email template.
func migrate0001(ctx context.Context) error {
	return xcontext.DB(ctx).FirstOrCreate(&entity.EmailTemplate{
		Base:     entity.Base{ID: "00000000-0000-0000-0000-000000000001"},
		Name:     "welcome",
		Subject:  "Welcome to MyLinked",
		HTMLBody: "<p>Your profile is live. Add your first link to get started.</p>",
	}, entity.EmailTemplate{Name: "welcome"}).Error
}
