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

type SpotlightDomain interface {
	CreateProject(context.Context, *model.CreateSpotlightProjectRequest) (*model.CreateSpotlightProjectResponse, error)
	GetProjects(context.Context, *model.GetSpotlightProjectsRequest) (*model.GetSpotlightProjectsResponse, error)
	UpdateProject(context.Context, *model.UpdateSpotlightProjectRequest) (*model.UpdateSpotlightProjectResponse, error)
	PinProject(context.Context, *model.PinSpotlightProjectRequest) (*model.PinSpotlightProjectResponse, error)
	DeleteProject(context.Context, *model.DeleteSpotlightProjectRequest) (*model.DeleteSpotlightProjectResponse, error)
	ViewProject(context.Context, *model.ViewSpotlightProjectRequest) (*model.ViewSpotlightProjectResponse, error)
	AddContributor(context.Context, *model.AddSpotlightContributorRequest) (*model.AddSpotlightContributorResponse, error)
	RemoveContributor(context.Context, *model.RemoveSpotlightContributorRequest) (*model.RemoveSpotlightContributorResponse, error)
}

type spotlightDomain struct {
	spotlightRepo repository.SpotlightRepository
	userRepo      repository.UserRepository
}

func NewSpotlightDomain(
	spotlightRepo repository.SpotlightRepository,
	userRepo repository.UserRepository,
) *spotlightDomain {
	return &spotlightDomain{
		spotlightRepo: spotlightRepo,
		userRepo:      userRepo,
	}
}

func (d *spotlightDomain) CreateProject(
	ctx context.Context, req *model.CreateSpotlightProjectRequest,
) (*model.CreateSpotlightProjectResponse, error) {
	if req.Title == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow empty title")
	}

	requestUserID := xcontext.RequestUserID(ctx)
	project := &entity.SpotlightProject{
		Base:         entity.Base{ID: uuid.NewString()},
		UserID:       requestUserID,
		Title:        req.Title,
		Description:  req.Description,
		URL:          req.URL,
		ThumbnailURL: req.ThumbnailURL,
	}

	ctx = xcontext.WithDBTransaction(ctx)
	defer xcontext.WithRollbackDBTransaction(ctx)

	if err := d.spotlightRepo.CreateProject(ctx, project); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create project: %v", err)
		return nil, errorx.Unknown
	}

	// The creator is always the owner contributor.
	err := d.spotlightRepo.UpsertContributor(ctx, &entity.SpotlightContributor{
		ProjectID: project.ID,
		UserID:    requestUserID,
		Role:      entity.ContributorOwner,
		AddedBy:   requestUserID,
	})
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot add owner contributor: %v", err)
		return nil, errorx.Unknown
	}

	xcontext.WithCommitDBTransaction(ctx)

	resp := model.CreateSpotlightProjectResponse(model.ConvertSpotlightProject(project, nil))
	return &resp, nil
}

func (d *spotlightDomain) GetProjects(
	ctx context.Context, req *model.GetSpotlightProjectsRequest,
) (*model.GetSpotlightProjectsResponse, error) {
	userID := req.UserID
	if userID == "" {
		userID = xcontext.RequestUserID(ctx)
	}

	if userID == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow empty user id")
	}

	projects, err := d.spotlightRepo.GetProjectsByUserID(ctx, userID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get projects: %v", err)
		return nil, errorx.Unknown
	}

	converted := []model.SpotlightProject{}
	for i := range projects {
		contributors, err := d.spotlightRepo.GetContributors(ctx, projects[i].ID)
		if err != nil {
			xcontext.Logger(ctx).Errorf("Cannot get contributors: %v", err)
			return nil, errorx.Unknown
		}

		converted = append(converted, model.ConvertSpotlightProject(&projects[i], contributors))
	}

	return &model.GetSpotlightProjectsResponse{Projects: converted}, nil
}

func (d *spotlightDomain) UpdateProject(
	ctx context.Context, req *model.UpdateSpotlightProjectRequest,
) (*model.UpdateSpotlightProjectResponse, error) {
	if _, err := d.getEditableProject(ctx, req.ID); err != nil {
		return nil, err
	}

	err := d.spotlightRepo.UpdateProjectByID(ctx, req.ID, &entity.SpotlightProject{
		Title:        req.Title,
		Description:  req.Description,
		URL:          req.URL,
		ThumbnailURL: req.ThumbnailURL,
	})
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot update project: %v", err)
		return nil, errorx.Unknown
	}

	project, err := d.spotlightRepo.GetProjectByID(ctx, req.ID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get project: %v", err)
		return nil, errorx.Unknown
	}

	resp := model.UpdateSpotlightProjectResponse(model.ConvertSpotlightProject(project, nil))
	return &resp, nil
}

func (d *spotlightDomain) PinProject(
	ctx context.Context, req *model.PinSpotlightProjectRequest,
) (*model.PinSpotlightProjectResponse, error) {
	project, err := d.getOwnedProject(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	if err := d.spotlightRepo.SetPinned(ctx, project.ID, req.IsPinned); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot pin project: %v", err)
		return nil, errorx.Unknown
	}

	return &model.PinSpotlightProjectResponse{}, nil
}

func (d *spotlightDomain) DeleteProject(
	ctx context.Context, req *model.DeleteSpotlightProjectRequest,
) (*model.DeleteSpotlightProjectResponse, error) {
	project, err := d.getOwnedProject(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	if err := d.spotlightRepo.DeleteProjectByID(ctx, project.ID); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot delete project: %v", err)
		return nil, errorx.Unknown
	}

	return &model.DeleteSpotlightProjectResponse{}, nil
}

func (d *spotlightDomain) ViewProject(
	ctx context.Context, req *model.ViewSpotlightProjectRequest,
) (*model.ViewSpotlightProjectResponse, error) {
	if err := d.spotlightRepo.IncreaseViews(ctx, req.ID); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot increase project views: %v", err)
		return nil, errorx.Unknown
	}

	return &model.ViewSpotlightProjectResponse{}, nil
}

func (d *spotlightDomain) AddContributor(
	ctx context.Context, req *model.AddSpotlightContributorRequest,
) (*model.AddSpotlightContributorResponse, error) {
	role, err := enum.ToEnum[entity.ContributorRole](req.Role)
	if err != nil {
		return nil, errorx.New(errorx.BadRequest, "Invalid role %s", req.Role)
	}

	if role == entity.ContributorOwner {
		return nil, errorx.New(errorx.BadRequest, "Not allow adding another owner")
	}

	if _, err := d.getOwnedProject(ctx, req.ProjectID); err != nil {
		return nil, err
	}

	if _, err := d.userRepo.GetByID(ctx, req.UserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found user")
		}

		xcontext.Logger(ctx).Errorf("Cannot get user: %v", err)
		return nil, errorx.Unknown
	}

	err = d.spotlightRepo.UpsertContributor(ctx, &entity.SpotlightContributor{
		ProjectID: req.ProjectID,
		UserID:    req.UserID,
		Role:      role,
		AddedBy:   xcontext.RequestUserID(ctx),
	})
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot add contributor: %v", err)
		return nil, errorx.Unknown
	}

	return &model.AddSpotlightContributorResponse{}, nil
}

func (d *spotlightDomain) RemoveContributor(
	ctx context.Context, req *model.RemoveSpotlightContributorRequest,
) (*model.RemoveSpotlightContributorResponse, error) {
	project, err := d.getOwnedProject(ctx, req.ProjectID)
	if err != nil {
		return nil, err
	}

	if req.UserID == project.UserID {
		return nil, errorx.New(errorx.BadRequest, "Not allow removing the owner")
	}

	err = d.spotlightRepo.DeleteContributor(ctx, req.ProjectID, req.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found contributor")
		}

		xcontext.Logger(ctx).Errorf("Cannot delete contributor: %v", err)
		return nil, errorx.Unknown
	}

	return &model.RemoveSpotlightContributorResponse{}, nil
}

func (d *spotlightDomain) getOwnedProject(
	ctx context.Context, id string,
) (*entity.SpotlightProject, error) {
	if id == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow empty project id")
	}

	project, err := d.spotlightRepo.GetProjectByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found project")
		}

		xcontext.Logger(ctx).Errorf("Cannot get project: %v", err)
		return nil, errorx.Unknown
	}

	if project.UserID != xcontext.RequestUserID(ctx) {
		return nil, errorx.New(errorx.PermissionDenied, "Permission denied")
	}

	return project, nil
}

// getEditableProject allows the owner and editor contributors through.
func (d *spotlightDomain) getEditableProject(
	ctx context.Context, id string,
) (*entity.SpotlightProject, error) {
	if id == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow empty project id")
	}

	project, err := d.spotlightRepo.GetProjectByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found project")
		}

		xcontext.Logger(ctx).Errorf("Cannot get project: %v", err)
		return nil, errorx.Unknown
	}

	requestUserID := xcontext.RequestUserID(ctx)
	if project.UserID == requestUserID {
		return project, nil
	}

	contributor, err := d.spotlightRepo.GetContributor(ctx, id, requestUserID)
	if err != nil || contributor.Role == entity.ContributorViewer {
		return nil, errorx.New(errorx.PermissionDenied, "Permission denied")
	}

	return project, nil
}
