package repository

import (
	"context"

	"github.com/mylinked/backend/internal/entity"
	"github.com/mylinked/backend/pkg/xcontext"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SpotlightRepository interface {
	CreateProject(ctx context.Context, data *entity.SpotlightProject) error
	GetProjectByID(ctx context.Context, id string) (*entity.SpotlightProject, error)
	GetProjectsByUserID(ctx context.Context, userID string) ([]entity.SpotlightProject, error)
	UpdateProjectByID(ctx context.Context, id string, data *entity.SpotlightProject) error
	SetPinned(ctx context.Context, id string, pinned bool) error
	IncreaseViews(ctx context.Context, id string) error
	DeleteProjectByID(ctx context.Context, id string) error

	UpsertContributor(ctx context.Context, data *entity.SpotlightContributor) error
	GetContributors(ctx context.Context, projectID string) ([]entity.SpotlightContributor, error)
	GetContributor(ctx context.Context, projectID, userID string) (*entity.SpotlightContributor, error)
	DeleteContributor(ctx context.Context, projectID, userID string) error
}

type spotlightRepository struct{}

func NewSpotlightRepository() *spotlightRepository {
	return &spotlightRepository{}
}

func (r *spotlightRepository) CreateProject(ctx context.Context, data *entity.SpotlightProject) error {
	return xcontext.DB(ctx).Create(data).Error
}

func (r *spotlightRepository) GetProjectByID(
	ctx context.Context, id string,
) (*entity.SpotlightProject, error) {
	var record entity.SpotlightProject
	if err := xcontext.DB(ctx).Take(&record, "id=?", id).Error; err != nil {
		return nil, err
	}

	return &record, nil
}

// GetProjectsByUserID orders pinned projects first, then newest first.
func (r *spotlightRepository) GetProjectsByUserID(
	ctx context.Context, userID string,
) ([]entity.SpotlightProject, error) {
	var records []entity.SpotlightProject
	err := xcontext.DB(ctx).
		Where("user_id=?", userID).
		Order("is_pinned DESC, created_at DESC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}

	return records, nil
}

func (r *spotlightRepository) UpdateProjectByID(
	ctx context.Context, id string, data *entity.SpotlightProject,
) error {
	updateMap := map[string]any{}
	if data.Title != "" {
		updateMap["title"] = data.Title
	}

	if data.Description != "" {
		updateMap["description"] = data.Description
	}

	if data.URL != "" {
		updateMap["url"] = data.URL
	}

	if data.ThumbnailURL != "" {
		updateMap["thumbnail_url"] = data.ThumbnailURL
	}

	if len(updateMap) == 0 {
		return nil
	}

	return xcontext.DB(ctx).Model(&entity.SpotlightProject{}).
		Where("id=?", id).
		Updates(updateMap).Error
}

func (r *spotlightRepository) SetPinned(ctx context.Context, id string, pinned bool) error {
	tx := xcontext.DB(ctx).Model(&entity.SpotlightProject{}).
		Where("id=?", id).
		Update("is_pinned", pinned)
	if tx.Error != nil {
		return tx.Error
	}

	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

func (r *spotlightRepository) IncreaseViews(ctx context.Context, id string) error {
	return xcontext.DB(ctx).Model(&entity.SpotlightProject{}).
		Where("id=?", id).
		Update("view_count", gorm.Expr("view_count+1")).Error
}

func (r *spotlightRepository) DeleteProjectByID(ctx context.Context, id string) error {
	return xcontext.DB(ctx).Delete(&entity.SpotlightProject{}, "id=?", id).Error
}

func (r *spotlightRepository) UpsertContributor(
	ctx context.Context, data *entity.SpotlightContributor,
) error {
	return xcontext.DB(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "project_id"}, {Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"role"}),
	}).Create(data).Error
}

func (r *spotlightRepository) GetContributors(
	ctx context.Context, projectID string,
) ([]entity.SpotlightContributor, error) {
	var records []entity.SpotlightContributor
	err := xcontext.DB(ctx).
		Where("project_id=?", projectID).
		Order("created_at ASC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}

	return records, nil
}

func (r *spotlightRepository) GetContributor(
	ctx context.Context, projectID, userID string,
) (*entity.SpotlightContributor, error) {
	var record entity.SpotlightContributor
	err := xcontext.DB(ctx).
		Where("project_id=? AND user_id=?", projectID, userID).
		Take(&record).Error
	if err != nil {
		return nil, err
	}

	return &record, nil
}

func (r *spotlightRepository) DeleteContributor(ctx context.Context, projectID, userID string) error {
	tx := xcontext.DB(ctx).
		Where("project_id=? AND user_id=?", projectID, userID).
		Delete(&entity.SpotlightContributor{})
	if tx.Error != nil {
		return tx.Error
	}

	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}
