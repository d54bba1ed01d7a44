package repository

import (
	"context"
	"time"

	"github.com/mylinked/backend/internal/entity"
	"github.com/mylinked/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type LinkRepository interface {
	Create(ctx context.Context, data *entity.Link) error
	GetByID(ctx context.Context, id string) (*entity.Link, error)
	GetByUserID(ctx context.Context, userID string) ([]entity.Link, error)
	UpdateByID(ctx context.Context, id string, data *entity.Link) error
	UpdateAiScore(ctx context.Context, id string, score int) error
	UpdateDisplayOrder(ctx context.Context, id string, order int) error
	SetFeatured(ctx context.Context, id string, featured bool) error
	IncreaseClicks(ctx context.Context, id string) error
	IncreaseViews(ctx context.Context, id string) error
	DeleteByID(ctx context.Context, id string) error
	Count(ctx context.Context, userID string) (int64, error)
	SumClicks(ctx context.Context, userID string) (int64, error)
	SumViews(ctx context.Context, userID string) (int64, error)
}

type linkRepository struct{}

func NewLinkRepository() *linkRepository {
	return &linkRepository{}
}

func (r *linkRepository) Create(ctx context.Context, data *entity.Link) error {
	return xcontext.DB(ctx).Create(data).Error
}

func (r *linkRepository) GetByID(ctx context.Context, id string) (*entity.Link, error) {
	var record entity.Link
	if err := xcontext.DB(ctx).Where("id=?", id).Take(&record).Error; err != nil {
		return nil, err
	}

	return &record, nil
}

// GetByUserID returns the user's links in display order, featured links
// first. The featured pull-to-front happens only here on the read path;
// the persisted order is never rewritten by feature toggles.
func (r *linkRepository) GetByUserID(ctx context.Context, userID string) ([]entity.Link, error) {
	var records []entity.Link
	err := xcontext.DB(ctx).
		Where("user_id=?", userID).
		Order("is_featured DESC, display_order ASC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}

	return records, nil
}

func (r *linkRepository) UpdateByID(ctx context.Context, id string, data *entity.Link) error {
	updateMap := map[string]any{}
	if data.Title != "" {
		updateMap["title"] = data.Title
	}

	if data.URL != "" {
		updateMap["url"] = data.URL
	}

	if data.Platform != "" {
		updateMap["platform"] = data.Platform
	}

	if data.Description != "" {
		updateMap["description"] = data.Description
	}

	if data.Color != "" {
		updateMap["color"] = data.Color
	}

	if len(updateMap) == 0 {
		return nil
	}

	return xcontext.DB(ctx).Model(&entity.Link{}).Where("id=?", id).Updates(updateMap).Error
}

func (r *linkRepository) UpdateAiScore(ctx context.Context, id string, score int) error {
	return xcontext.DB(ctx).Model(&entity.Link{}).
		Where("id=?", id).
		Update("ai_score", score).Error
}

func (r *linkRepository) UpdateDisplayOrder(ctx context.Context, id string, order int) error {
	return xcontext.DB(ctx).Model(&entity.Link{}).
		Where("id=?", id).
		Update("display_order", order).Error
}

func (r *linkRepository) SetFeatured(ctx context.Context, id string, featured bool) error {
	tx := xcontext.DB(ctx).Model(&entity.Link{}).
		Where("id=?", id).
		Update("is_featured", featured)
	if tx.Error != nil {
		return tx.Error
	}

	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

// IncreaseClicks bumps the counter inside the database so concurrent
// visitors never lose an increment to a read-modify-write race.
func (r *linkRepository) IncreaseClicks(ctx context.Context, id string) error {
	tx := xcontext.DB(ctx).Model(&entity.Link{}).
		Where("id=?", id).
		Updates(map[string]any{
			"click_count":     gorm.Expr("click_count+1"),
			"last_clicked_at": time.Now(),
		})
	if tx.Error != nil {
		return tx.Error
	}

	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

func (r *linkRepository) IncreaseViews(ctx context.Context, id string) error {
	tx := xcontext.DB(ctx).Model(&entity.Link{}).
		Where("id=?", id).
		Update("view_count", gorm.Expr("view_count+1"))
	if tx.Error != nil {
		return tx.Error
	}

	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

func (r *linkRepository) DeleteByID(ctx context.Context, id string) error {
	return xcontext.DB(ctx).Where("id=?", id).Delete(&entity.Link{}).Error
}

func (r *linkRepository) Count(ctx context.Context, userID string) (int64, error) {
	var count int64
	err := xcontext.DB(ctx).Model(&entity.Link{}).
		Where("user_id=?", userID).
		Count(&count).Error
	if err != nil {
		return 0, err
	}

	return count, nil
}

func (r *linkRepository) SumClicks(ctx context.Context, userID string) (int64, error) {
	var sum int64
	err := xcontext.DB(ctx).Model(&entity.Link{}).
		Where("user_id=?", userID).
		Select("COALESCE(SUM(click_count), 0)").
		Scan(&sum).Error
	if err != nil {
		return 0, err
	}

	return sum, nil
}

func (r *linkRepository) SumViews(ctx context.Context, userID string) (int64, error) {
	var sum int64
	err := xcontext.DB(ctx).Model(&entity.Link{}).
		Where("user_id=?", userID).
		Select("COALESCE(SUM(view_count), 0)").
		Scan(&sum).Error
	if err != nil {
		return 0, err
	}

	return sum, nil
}
