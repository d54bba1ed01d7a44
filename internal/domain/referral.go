package domain

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/mylinked/backend/internal/entity"
	"github.com/mylinked/backend/internal/model"
	"github.com/mylinked/backend/internal/repository"
	"github.com/mylinked/backend/pkg/enum"
	"github.com/mylinked/backend/pkg/errorx"
	"github.com/mylinked/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type ReferralDomain interface {
	Create(context.Context, *model.CreateReferralRequest) (*model.CreateReferralResponse, error)
	Get(context.Context, *model.GetReferralsRequest) (*model.GetReferralsResponse, error)
	Review(context.Context, *model.ReviewReferralRequest) (*model.ReviewReferralResponse, error)
}

type referralDomain struct {
	referralRepo repository.ReferralRequestRepository
	userRepo     repository.UserRepository
	linkRepo     repository.LinkRepository
	emailRepo    repository.EmailRepository
}

func NewReferralDomain(
	referralRepo repository.ReferralRequestRepository,
	userRepo repository.UserRepository,
	linkRepo repository.LinkRepository,
	emailRepo repository.EmailRepository,
) *referralDomain {
	return &referralDomain{
		referralRepo: referralRepo,
		userRepo:     userRepo,
		linkRepo:     linkRepo,
		emailRepo:    emailRepo,
	}
}

func (d *referralDomain) Create(
	ctx context.Context, req *model.CreateReferralRequest,
) (*model.CreateReferralResponse, error) {
	if req.RequesterName == "" || req.RequesterEmail == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow empty requester name or email")
	}

	if req.LinkTitle == "" || req.LinkURL == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow empty link title or url")
	}

	target, err := d.userRepo.GetByUsername(ctx, req.TargetUsername)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found user")
		}

		xcontext.Logger(ctx).Errorf("Cannot get user: %v", err)
		return nil, errorx.Unknown
	}

	request := &entity.ReferralRequest{
		Base:           entity.Base{ID: uuid.NewString()},
		TargetUserID:   target.ID,
		RequesterName:  req.RequesterName,
		RequesterEmail: req.RequesterEmail,
		LinkTitle:      req.LinkTitle,
		LinkURL:        req.LinkURL,
		Description:    req.Description,
		Status:         entity.ReferralPending,
	}

	if err := d.referralRepo.Create(ctx, request); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create referral request: %v", err)
		return nil, errorx.Unknown
	}

	QueueEmail(ctx, d.emailRepo, target.ID, target.Email, "referral_received")

	return &model.CreateReferralResponse{ID: request.ID}, nil
}

func (d *referralDomain) Get(
	ctx context.Context, req *model.GetReferralsRequest,
) (*model.GetReferralsResponse, error) {
	requestUserID := xcontext.RequestUserID(ctx)

	statusFilter := entity.ReferralStatus("")
	if req.Status != "" {
		parsed, err := enum.ToEnum[entity.ReferralStatus](req.Status)
		if err != nil {
			return nil, errorx.New(errorx.BadRequest, "Invalid status %s", req.Status)
		}
		statusFilter = parsed
	}

	requests, err := d.referralRepo.GetByTargetUserID(ctx, requestUserID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get referral requests: %v", err)
		return nil, errorx.Unknown
	}

	converted := []model.ReferralRequest{}
	for i := range requests {
		if statusFilter != "" && requests[i].Status != statusFilter {
			continue
		}

		converted = append(converted, model.ConvertReferralRequest(&requests[i]))
	}

	return &model.GetReferralsResponse{Requests: converted}, nil
}

// Review moves a pending request to approved or rejected. Approval also
// creates the suggested link at the tail of the owner's list, both writes in
// one transaction.
func (d *referralDomain) Review(
	ctx context.Context, req *model.ReviewReferralRequest,
) (*model.ReviewReferralResponse, error) {
	request, err := d.referralRepo.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found referral request")
		}

		xcontext.Logger(ctx).Errorf("Cannot get referral request: %v", err)
		return nil, errorx.Unknown
	}

	if request.TargetUserID != xcontext.RequestUserID(ctx) {
		return nil, errorx.New(errorx.PermissionDenied, "Permission denied")
	}

	if request.Status != entity.ReferralPending {
		return nil, errorx.New(errorx.BadRequest, "This request was already reviewed")
	}

	if !req.Approved {
		err := d.referralRepo.UpdateStatus(ctx, request.ID, entity.ReferralRejected)
		if err != nil {
			xcontext.Logger(ctx).Errorf("Cannot update referral status: %v", err)
			return nil, errorx.Unknown
		}

		return &model.ReviewReferralResponse{}, nil
	}

	ctx = xcontext.WithDBTransaction(ctx)
	defer xcontext.WithRollbackDBTransaction(ctx)

	count, err := d.linkRepo.Count(ctx, request.TargetUserID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot count links: %v", err)
		return nil, errorx.Unknown
	}

	err = d.linkRepo.Create(ctx, &entity.Link{
		Base:         entity.Base{ID: uuid.NewString()},
		UserID:       request.TargetUserID,
		Title:        request.LinkTitle,
		URL:          request.LinkURL,
		Description:  request.Description,
		DisplayOrder: int(count),
	})
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create link from referral: %v", err)
		return nil, errorx.Unknown
	}

	err = d.referralRepo.UpdateStatus(ctx, request.ID, entity.ReferralApproved)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot update referral status: %v", err)
		return nil, errorx.Unknown
	}

	xcontext.WithCommitDBTransaction(ctx)

	return &model.ReviewReferralResponse{}, nil
}
