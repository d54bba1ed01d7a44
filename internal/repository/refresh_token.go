package repository

import (
	"context"

	"github.com/mylinked/backend/internal/entity"
	"github.com/mylinked/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type RefreshTokenRepository interface {
	Create(ctx context.Context, data *entity.RefreshToken) error
	Get(ctx context.Context, family string) (*entity.RefreshToken, error)
	Rotate(ctx context.Context, family string, currentCounter uint64) error
	Delete(ctx context.Context, family string) error
	DeleteByUserID(ctx context.Context, userID string) error
}

type refreshTokenRepository struct{}

func NewRefreshTokenRepository() *refreshTokenRepository {
	return &refreshTokenRepository{}
}

func (r *refreshTokenRepository) Create(ctx context.Context, data *entity.RefreshToken) error {
	return xcontext.DB(ctx).Create(data).Error
}

func (r *refreshTokenRepository) Get(ctx context.Context, family string) (*entity.RefreshToken, error) {
	var record entity.RefreshToken
	if err := xcontext.DB(ctx).Take(&record, "family=?", family).Error; err != nil {
		return nil, err
	}

	return &record, nil
}

// Rotate bumps the family counter only if it still equals currentCounter. A
// zero rows-affected result means the presented token was already rotated,
// which the caller treats as a stolen token.
func (r *refreshTokenRepository) Rotate(ctx context.Context, family string, currentCounter uint64) error {
	tx := xcontext.DB(ctx).Model(&entity.RefreshToken{}).
		Where("family=? AND counter=?", family, currentCounter).
		Update("counter", gorm.Expr("counter+1"))
	if tx.Error != nil {
		return tx.Error
	}

	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

func (r *refreshTokenRepository) Delete(ctx context.Context, family string) error {
	return xcontext.DB(ctx).Delete(&entity.RefreshToken{}, "family=?", family).Error
}

func (r *refreshTokenRepository) DeleteByUserID(ctx context.Context, userID string) error {
	return xcontext.DB(ctx).Delete(&entity.RefreshToken{}, "user_id=?", userID).Error
}
