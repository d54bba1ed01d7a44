package repository

import (
	"context"
	"time"

	"github.com/mylinked/backend/internal/entity"
	"github.com/mylinked/backend/pkg/xcontext"
	"gorm.io/gorm/clause"
)

type SocialConnectionRepository interface {
	Upsert(ctx context.Context, data *entity.SocialConnection) error
	Get(ctx context.Context, userID, platform string) (*entity.SocialConnection, error)
	GetByUserID(ctx context.Context, userID string) ([]entity.SocialConnection, error)
	UpdateLastSync(ctx context.Context, userID, platform string, at time.Time) error
	Delete(ctx context.Context, userID, platform string) error
}

type socialConnectionRepository struct{}

func NewSocialConnectionRepository() *socialConnectionRepository {
	return &socialConnectionRepository{}
}

// Upsert targets the (user_id, platform) composite key, so reconnecting a
// platform refreshes the tokens in place instead of duplicating the row.
func (r *socialConnectionRepository) Upsert(ctx context.Context, data *entity.SocialConnection) error {
	return xcontext.DB(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "platform"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"access_token",
			"refresh_token",
			"expires_at",
			"platform_user_id",
			"platform_username",
			"connected_at",
		}),
	}).Create(data).Error
}

func (r *socialConnectionRepository) Get(
	ctx context.Context, userID, platform string,
) (*entity.SocialConnection, error) {
	var record entity.SocialConnection
	err := xcontext.DB(ctx).
		Where("user_id=? AND platform=?", userID, platform).
		Take(&record).Error
	if err != nil {
		return nil, err
	}

	return &record, nil
}

func (r *socialConnectionRepository) GetByUserID(
	ctx context.Context, userID string,
) ([]entity.SocialConnection, error) {
	var records []entity.SocialConnection
	err := xcontext.DB(ctx).
		Where("user_id=?", userID).
		Order("connected_at ASC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}

	return records, nil
}

func (r *socialConnectionRepository) UpdateLastSync(
	ctx context.Context, userID, platform string, at time.Time,
) error {
	return xcontext.DB(ctx).Model(&entity.SocialConnection{}).
		Where("user_id=? AND platform=?", userID, platform).
		Update("last_sync_at", at).Error
}

func (r *socialConnectionRepository) Delete(ctx context.Context, userID, platform string) error {
	return xcontext.DB(ctx).
		Where("user_id=? AND platform=?", userID, platform).
		Delete(&entity.SocialConnection{}).Error
}
