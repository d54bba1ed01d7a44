package repository

import (
	"context"
	"time"

	"github.com/mylinked/backend/internal/entity"
	"github.com/mylinked/backend/pkg/xcontext"
	"gorm.io/gorm/clause"
)

type EmailRepository interface {
	UpsertTemplate(ctx context.Context, data *entity.EmailTemplate) error
	GetTemplateByName(ctx context.Context, name string) (*entity.EmailTemplate, error)
	GetTemplateByID(ctx context.Context, id string) (*entity.EmailTemplate, error)

	CreateLog(ctx context.Context, data *entity.EmailLog) error
	GetQueuedLogs(ctx context.Context, limit int) ([]entity.EmailLog, error)
	MarkSent(ctx context.Context, id string, at time.Time) error
	MarkFailed(ctx context.Context, id string, reason string) error
}

type emailRepository struct{}

func NewEmailRepository() *emailRepository {
	return &emailRepository{}
}

func (r *emailRepository) UpsertTemplate(ctx context.Context, data *entity.EmailTemplate) error {
	return xcontext.DB(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"subject", "html_body"}),
	}).Create(data).Error
}

func (r *emailRepository) GetTemplateByName(
	ctx context.Context, name string,
) (*entity.EmailTemplate, error) {
	var record entity.EmailTemplate
	if err := xcontext.DB(ctx).Take(&record, "name=?", name).Error; err != nil {
		return nil, err
	}

	return &record, nil
}

func (r *emailRepository) GetTemplateByID(
	ctx context.Context, id string,
) (*entity.EmailTemplate, error) {
	var record entity.EmailTemplate
	if err := xcontext.DB(ctx).Take(&record, "id=?", id).Error; err != nil {
		return nil, err
	}

	return &record, nil
}

func (r *emailRepository) CreateLog(ctx context.Context, data *entity.EmailLog) error {
	return xcontext.DB(ctx).Create(data).Error
}

func (r *emailRepository) GetQueuedLogs(ctx context.Context, limit int) ([]entity.EmailLog, error) {
	var records []entity.EmailLog
	err := xcontext.DB(ctx).
		Where("status=?", entity.EmailQueued).
		Order("created_at ASC").
		Limit(limit).
		Find(&records).Error
	if err != nil {
		return nil, err
	}

	return records, nil
}

func (r *emailRepository) MarkSent(ctx context.Context, id string, at time.Time) error {
	return xcontext.DB(ctx).Model(&entity.EmailLog{}).
		Where("id=?", id).
		Updates(map[string]any{
			"status":  entity.EmailSent,
			"sent_at": at,
		}).Error
}

func (r *emailRepository) MarkFailed(ctx context.Context, id string, reason string) error {
	return xcontext.DB(ctx).Model(&entity.EmailLog{}).
		Where("id=?", id).
		Updates(map[string]any{
			"status":     entity.EmailFailed,
			"last_error": reason,
		}).Error
}
