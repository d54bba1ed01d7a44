package repository

import (
	"context"

	"github.com/mylinked/backend/internal/entity"
	"github.com/mylinked/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type ReferralRequestRepository interface {
	Create(ctx context.Context, data *entity.ReferralRequest) error
	GetByID(ctx context.Context, id string) (*entity.ReferralRequest, error)
	GetByTargetUserID(ctx context.Context, targetUserID string) ([]entity.ReferralRequest, error)
	GetPendingByTargetUserID(ctx context.Context, targetUserID string) ([]entity.ReferralRequest, error)
	UpdateStatus(ctx context.Context, id string, status entity.ReferralStatus) error
	CountPending(ctx context.Context, targetUserID string) (int64, error)
}

type referralRequestRepository struct{}

func NewReferralRequestRepository() *referralRequestRepository {
	return &referralRequestRepository{}
}

func (r *referralRequestRepository) Create(ctx context.Context, data *entity.ReferralRequest) error {
	return xcontext.DB(ctx).Create(data).Error
}

func (r *referralRequestRepository) GetByID(
	ctx context.Context, id string,
) (*entity.ReferralRequest, error) {
	var record entity.ReferralRequest
	if err := xcontext.DB(ctx).Take(&record, "id=?", id).Error; err != nil {
		return nil, err
	}

	return &record, nil
}

func (r *referralRequestRepository) GetByTargetUserID(
	ctx context.Context, targetUserID string,
) ([]entity.ReferralRequest, error) {
	var records []entity.ReferralRequest
	err := xcontext.DB(ctx).
		Where("target_user_id=?", targetUserID).
		Order("created_at DESC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}

	return records, nil
}

func (r *referralRequestRepository) GetPendingByTargetUserID(
	ctx context.Context, targetUserID string,
) ([]entity.ReferralRequest, error) {
	var records []entity.ReferralRequest
	err := xcontext.DB(ctx).
		Where("target_user_id=? AND status=?", targetUserID, entity.ReferralPending).
		Order("created_at DESC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}

	return records, nil
}

func (r *referralRequestRepository) UpdateStatus(
	ctx context.Context, id string, status entity.ReferralStatus,
) error {
	tx := xcontext.DB(ctx).Model(&entity.ReferralRequest{}).
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

func (r *referralRequestRepository) CountPending(
	ctx context.Context, targetUserID string,
) (int64, error) {
	var count int64
	err := xcontext.DB(ctx).Model(&entity.ReferralRequest{}).
		Where("target_user_id=? AND status=?", targetUserID, entity.ReferralPending).
		Count(&count).Error
	if err != nil {
		return 0, err
	}

	return count, nil
}
