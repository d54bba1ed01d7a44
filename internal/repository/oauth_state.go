package repository

import (
	"context"
	"time"

	"github.com/mylinked/backend/internal/entity"
	"github.com/mylinked/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type OAuthStateRepository interface {
	Create(ctx context.Context, data *entity.OAuthState) error
	Consume(ctx context.Context, state string) (*entity.OAuthState, error)
	DeleteExpired(ctx context.Context, before time.Time) (int64, error)
}

type oauthStateRepository struct{}

func NewOAuthStateRepository() *oauthStateRepository {
	return &oauthStateRepository{}
}

func (r *oauthStateRepository) Create(ctx context.Context, data *entity.OAuthState) error {
	return xcontext.DB(ctx).Create(data).Error
}

// Consume returns the row for state and deletes it in the same call, so a
// replayed callback finds nothing. The expiry check stays with the
// caller; a consumed-but-expired row must still be rejected.
func (r *oauthStateRepository) Consume(ctx context.Context, state string) (*entity.OAuthState, error) {
	var record entity.OAuthState
	if err := xcontext.DB(ctx).Where("state=?", state).Take(&record).Error; err != nil {
		return nil, err
	}

	tx := xcontext.DB(ctx).Where("state=?", state).Delete(&entity.OAuthState{})
	if tx.Error != nil {
		return nil, tx.Error
	}

	// Someone else consumed it between the read and the delete.
	if tx.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}

	return &record, nil
}

func (r *oauthStateRepository) DeleteExpired(ctx context.Context, before time.Time) (int64, error) {
	tx := xcontext.DB(ctx).
		Where("expires_at < ?", before).
		Delete(&entity.OAuthState{})
	if tx.Error != nil {
		return 0, tx.Error
	}

	return tx.RowsAffected, nil
}
