package domain

import (
	"context"
	"database/sql"
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

type CollaborationDomain interface {
	Create(context.Context, *model.CreateCollaborationRequest) (*model.CreateCollaborationResponse, error)
	Get(context.Context, *model.GetCollaborationsRequest) (*model.GetCollaborationsResponse, error)
	Review(context.Context, *model.ReviewCollaborationRequest) (*model.ReviewCollaborationResponse, error)
}

type collaborationDomain struct {
	collaborationRepo repository.CollaborationRequestRepository
	userRepo          repository.UserRepository
	spotlightRepo     repository.SpotlightRepository
}

func NewCollaborationDomain(
	collaborationRepo repository.CollaborationRequestRepository,
	userRepo repository.UserRepository,
	spotlightRepo repository.SpotlightRepository,
) *collaborationDomain {
	return &collaborationDomain{
		collaborationRepo: collaborationRepo,
		userRepo:          userRepo,
		spotlightRepo:     spotlightRepo,
	}
}

func (d *collaborationDomain) Create(
	ctx context.Context, req *model.CreateCollaborationRequest,
) (*model.CreateCollaborationResponse, error) {
	if req.SenderName == "" || req.SenderEmail == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow empty sender name or email")
	}

	receiver, err := d.userRepo.GetByUsername(ctx, req.ReceiverUsername)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found user")
		}

		xcontext.Logger(ctx).Errorf("Cannot get user: %v", err)
		return nil, errorx.Unknown
	}

	projectID := sql.NullString{}
	if req.ProjectID != "" {
		project, err := d.spotlightRepo.GetProjectByID(ctx, req.ProjectID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, errorx.New(errorx.NotFound, "Not found project")
			}

			xcontext.Logger(ctx).Errorf("Cannot get project: %v", err)
			return nil, errorx.Unknown
		}

		if project.UserID != receiver.ID {
			return nil, errorx.New(errorx.BadRequest, "Project does not belong to this user")
		}

		projectID = sql.NullString{Valid: true, String: req.ProjectID}
	}

	request := &entity.CollaborationRequest{
		Base:        entity.Base{ID: uuid.NewString()},
		ReceiverID:  receiver.ID,
		SenderName:  req.SenderName,
		SenderEmail: req.SenderEmail,
		Message:     req.Message,
		ProjectID:   projectID,
		Status:      entity.CollaborationPending,
	}

	if err := d.collaborationRepo.Create(ctx, request); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create collaboration request: %v", err)
		return nil, errorx.Unknown
	}

	return &model.CreateCollaborationResponse{ID: request.ID}, nil
}

func (d *collaborationDomain) Get(
	ctx context.Context, req *model.GetCollaborationsRequest,
) (*model.GetCollaborationsResponse, error) {
	statusFilter := entity.CollaborationStatus("")
	if req.Status != "" {
		parsed, err := enum.ToEnum[entity.CollaborationStatus](req.Status)
		if err != nil {
			return nil, errorx.New(errorx.BadRequest, "Invalid status %s", req.Status)
		}
		statusFilter = parsed
	}

	requests, err := d.collaborationRepo.GetByReceiverID(ctx, xcontext.RequestUserID(ctx))
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get collaboration requests: %v", err)
		return nil, errorx.Unknown
	}

	converted := []model.CollaborationRequest{}
	for i := range requests {
		if statusFilter != "" && requests[i].Status != statusFilter {
			continue
		}

		converted = append(converted, model.ConvertCollaborationRequest(&requests[i]))
	}

	return &model.GetCollaborationsResponse{Requests: converted}, nil
}

// Review moves a pending request to accepted or declined. Acceptance of a
// project-scoped request also records the sender as a viewer contributor if
// they already have an account.
func (d *collaborationDomain) Review(
	ctx context.Context, req *model.ReviewCollaborationRequest,
) (*model.ReviewCollaborationResponse, error) {
	request, err := d.collaborationRepo.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found collaboration request")
		}

		xcontext.Logger(ctx).Errorf("Cannot get collaboration request: %v", err)
		return nil, errorx.Unknown
	}

	requestUserID := xcontext.RequestUserID(ctx)
	if request.ReceiverID != requestUserID {
		return nil, errorx.New(errorx.PermissionDenied, "Permission denied")
	}

	if request.Status != entity.CollaborationPending {
		return nil, errorx.New(errorx.BadRequest, "This request was already reviewed")
	}

	status := entity.CollaborationDeclined
	if req.Accepted {
		status = entity.CollaborationAccepted
	}

	ctx = xcontext.WithDBTransaction(ctx)
	defer xcontext.WithRollbackDBTransaction(ctx)

	if err := d.collaborationRepo.UpdateStatus(ctx, request.ID, status); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot update collaboration status: %v", err)
		return nil, errorx.Unknown
	}

	if req.Accepted && request.ProjectID.Valid {
		sender, err := d.userRepo.GetByEmail(ctx, request.SenderEmail)
		if err == nil {
			err = d.spotlightRepo.UpsertContributor(ctx, &entity.SpotlightContributor{
				ProjectID: request.ProjectID.String,
				UserID:    sender.ID,
				Role:      entity.ContributorViewer,
				AddedBy:   requestUserID,
			})
			if err != nil {
				xcontext.Logger(ctx).Errorf("Cannot add contributor: %v", err)
				return nil, errorx.Unknown
			}
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			xcontext.Logger(ctx).Errorf("Cannot get sender: %v", err)
			return nil, errorx.Unknown
		}
	}

	xcontext.WithCommitDBTransaction(ctx)

	return &model.ReviewCollaborationResponse{}, nil
}
