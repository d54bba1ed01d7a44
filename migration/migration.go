package migration

import (
	"context"
	"errors"
	"fmt"

	"github.com/mylinked/backend/internal/entity"
	"github.com/mylinked/backend/pkg/xcontext"
	"gorm.io/gorm"
)

// Migrations run in order. Every migrator must be idempotent against the
// version row, never edit or reorder a released entry.
var migrators = []func(context.Context) error{
	migrate0000,
	migrate0001,
}

func Migrate(ctx context.Context) error {
	if err := xcontext.DB(ctx).AutoMigrate(&entity.Migration{}); err != nil {
		return err
	}

	current := -1
	var record entity.Migration
	err := xcontext.DB(ctx).Order("version DESC").Take(&record).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	if err == nil {
		if _, scanErr := fmt.Sscanf(record.Version, "%04d", &current); scanErr != nil {
			return fmt.Errorf("invalid migration version %s: %w", record.Version, scanErr)
		}
	}

	for version := current + 1; version < len(migrators); version++ {
		xcontext.Logger(ctx).Infof("Migrating to version %04d", version)
		if err := migrators[version](ctx); err != nil {
			return err
		}

		err := xcontext.DB(ctx).Create(&entity.Migration{
			Version: fmt.Sprintf("%04d", version),
		}).Error
		if err != nil {
			return err
		}
	}

	return nil
}
