package repository

import (
	"context"

	"github.com/mylinked/backend/internal/entity"
	"github.com/mylinked/backend/pkg/xcontext"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type FollowRepository interface {
	Create(ctx context.Context, data *entity.Follow) error
	Get(ctx context.Context, followerID, followingID string) (*entity.Follow, error)
	GetListByFollowerID(ctx context.Context, followerID string) ([]entity.Follow, error)
	GetListByFollowingID(ctx context.Context, followingID string) ([]entity.Follow, error)
	Count(ctx context.Context, followingID string) (int64, error)
	Delete(ctx context.Context, followerID, followingID string) error
}

type followRepository struct{}

func NewFollowRepository() *followRepository {
	return &followRepository{}
}

func (r *followRepository) Create(ctx context.Context, data *entity.Follow) error {
	return xcontext.DB(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "follower_id"}, {Name: "following_id"}},
		DoNothing: true,
	}).Create(data).Error
}

func (r *followRepository) Get(
	ctx context.Context, followerID, followingID string,
) (*entity.Follow, error) {
	var record entity.Follow
	err := xcontext.DB(ctx).
		Where("follower_id=? AND following_id=?", followerID, followingID).
		Take(&record).Error
	if err != nil {
		return nil, err
	}

	return &record, nil
}

func (r *followRepository) GetListByFollowerID(
	ctx context.Context, followerID string,
) ([]entity.Follow, error) {
	var records []entity.Follow
	err := xcontext.DB(ctx).
		Where("follower_id=?", followerID).
		Order("created_at DESC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}

	return records, nil
}

func (r *followRepository) GetListByFollowingID(
	ctx context.Context, followingID string,
) ([]entity.Follow, error) {
	var records []entity.Follow
	err := xcontext.DB(ctx).
		Where("following_id=?", followingID).
		Order("created_at DESC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}

	return records, nil
}

func (r *followRepository) Count(ctx context.Context, followingID string) (int64, error) {
	var count int64
	err := xcontext.DB(ctx).Model(&entity.Follow{}).
		Where("following_id=?", followingID).
		Count(&count).Error
	if err != nil {
		return 0, err
	}

	return count, nil
}

func (r *followRepository) Delete(ctx context.Context, followerID, followingID string) error {
	tx := xcontext.DB(ctx).
		Where("follower_id=? AND following_id=?", followerID, followingID).
		Delete(&entity.Follow{})
	if tx.Error != nil {
		return tx.Error
	}

	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}
