package repository

import (
	"context"

	"github.com/mylinked/backend/internal/entity"
	"github.com/mylinked/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type CollaborationRequestRepository interface {
	Create(ctx context.Context, data *entity.CollaborationRequest) error
	GetByID(ctx context.Context, id string) (*entity.CollaborationRequest, error)
	GetByReceiverID(ctx context.Context, receiverID string) ([]entity.CollaborationRequest, error)
	GetPendingByReceiverID(ctx context.Context, receiverID string) ([]entity.CollaborationRequest, error)
	UpdateStatus(ctx context.Context, id string, status entity.CollaborationStatus) error
	CountPending(ctx context.Context, receiverID string) (int64, error)
}

type collaborationRequestRepository struct{}

func NewCollaborationRequestRepository() *collaborationRequestRepository {
	return &collaborationRequestRepository{}
}

func (r *collaborationRequestRepository) Create(
	ctx context.Context, data *entity.CollaborationRequest,
) error {
	return xcontext.DB(ctx).Create(data).Error
}

func (r *collaborationRequestRepository) GetByID(
	ctx context.Context, id string,
) (*entity.CollaborationRequest, error) {
	var record entity.CollaborationRequest
	if err := xcontext.DB(ctx).Take(&record, "id=?", id).Error; err != nil {
		return nil, err
	}

	return &record, nil
}

func (r *collaborationRequestRepository) GetByReceiverID(
	ctx context.Context, receiverID string,
) ([]entity.CollaborationRequest, error) {
	var records []entity.CollaborationRequest
	err := xcontext.DB(ctx).
		Where("receiver_id=?", receiverID).
		Order("created_at DESC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}

	return records, nil
}

func (r *collaborationRequestRepository) GetPendingByReceiverID(
	ctx context.Context, receiverID string,
) ([]entity.CollaborationRequest, error) {
	var records []entity.CollaborationRequest
	err := xcontext.DB(ctx).
		Where("receiver_id=? AND status=?", receiverID, entity.CollaborationPending).
		Order("created_at DESC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}

	return records, nil
}

func (r *collaborationRequestRepository) UpdateStatus(
	ctx context.Context, id string, status entity.CollaborationStatus,
) error {
	tx := xcontext.DB(ctx).Model(&entity.CollaborationRequest{}).
		Where("id=?", id).
		Update("status", status)
	if tx.Error != nil {
		return tx.Error
	}

	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

func (r *collaborationRequestRepository) CountPending(
	ctx context.Context, receiverID string,
) (int64, error) {
	var count int64
	err := xcontext.DB(ctx).Model(&entity.CollaborationRequest{}).
		Where("receiver_id=? AND status=?", receiverID, entity.CollaborationPending).
		Count(&count).Error
	if err != nil {
		return 0, err
	}

	return count, nil
}
