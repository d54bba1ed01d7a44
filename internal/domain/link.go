package domain

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/mylinked/backend/internal/entity"
	"github.com/mylinked/backend/internal/model"
	"github.com/mylinked/backend/internal/repository"
	"github.com/mylinked/backend/pkg/errorx"
	"github.com/mylinked/backend/pkg/xcontext"
	"github.com/mylinked/backend/pkg/xredis"
	"gorm.io/gorm"
)

type LinkDomain interface {
	Create(context.Context, *model.CreateLinkRequest) (*model.CreateLinkResponse, error)
	Get(context.Context, *model.GetLinksRequest) (*model.GetLinksResponse, error)
	Update(context.Context, *model.UpdateLinkRequest) (*model.UpdateLinkResponse, error)
	Delete(context.Context, *model.DeleteLinkRequest) (*model.DeleteLinkResponse, error)
	Reorder(context.Context, *model.ReorderLinksRequest) (*model.ReorderLinksResponse, error)
	SetFeatured(context.Context, *model.SetFeaturedLinkRequest) (*model.SetFeaturedLinkResponse, error)
	Click(context.Context, *model.ClickLinkRequest) (*model.ClickLinkResponse, error)
	View(context.Context, *model.ViewLinkRequest) (*model.ViewLinkResponse, error)
}

func linkLeaderboardKey(userID string) string {
	return fmt.Sprintf("leaderboard:links:%s", userID)
}

type linkDomain struct {
	linkRepo    repository.LinkRepository
	userRepo    repository.UserRepository
	redisClient xredis.Client
}

func NewLinkDomain(
	linkRepo repository.LinkRepository,
	userRepo repository.UserRepository,
	redisClient xredis.Client,
) *linkDomain {
	return &linkDomain{
		linkRepo:    linkRepo,
		userRepo:    userRepo,
		redisClient: redisClient,
	}
}

func (d *linkDomain) Create(
	ctx context.Context, req *model.CreateLinkRequest,
) (*model.CreateLinkResponse, error) {
	if req.Title == "" || req.URL == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow empty title or url")
	}

	requestUserID := xcontext.RequestUserID(ctx)
	count, err := d.linkRepo.Count(ctx, requestUserID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot count links: %v", err)
		return nil, errorx.Unknown
	}

	link := &entity.Link{
		Base:        entity.Base{ID: uuid.NewString()},
		UserID:      requestUserID,
		Platform:    req.Platform,
		Title:       req.Title,
		URL:         req.URL,
		Description: req.Description,
		Color:       req.Color,

		// New links land at the tail of the current order.
		DisplayOrder: int(count),
	}

	if err := d.linkRepo.Create(ctx, link); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create link: %v", err)
		return nil, errorx.Unknown
	}

	resp := model.CreateLinkResponse(model.ConvertLink(link))
	return &resp, nil
}

func (d *linkDomain) Get(
	ctx context.Context, req *model.GetLinksRequest,
) (*model.GetLinksResponse, error) {
	userID := req.UserID
	if userID == "" {
		userID = xcontext.RequestUserID(ctx)
	}

	if userID == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow empty user id")
	}

	links, err := d.linkRepo.GetByUserID(ctx, userID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get links: %v", err)
		return nil, errorx.Unknown
	}

	return &model.GetLinksResponse{Links: model.ConvertLinks(links)}, nil
}

func (d *linkDomain) Update(
	ctx context.Context, req *model.UpdateLinkRequest,
) (*model.UpdateLinkResponse, error) {
	link, err := d.getOwnedLink(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	err = d.linkRepo.UpdateByID(ctx, link.ID, &entity.Link{
		Platform:    req.Platform,
		Title:       req.Title,
		URL:         req.URL,
		Description: req.Description,
		Color:       req.Color,
	})
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot update link: %v", err)
		return nil, errorx.Unknown
	}

	link, err = d.linkRepo.GetByID(ctx, req.ID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get link: %v", err)
		return nil, errorx.Unknown
	}

	resp := model.UpdateLinkResponse(model.ConvertLink(link))
	return &resp, nil
}

func (d *linkDomain) Delete(
	ctx context.Context, req *model.DeleteLinkRequest,
) (*model.DeleteLinkResponse, error) {
	link, err := d.getOwnedLink(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	if err := d.linkRepo.DeleteByID(ctx, link.ID); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot delete link: %v", err)
		return nil, errorx.Unknown
	}

	err = d.redisClient.ZRem(ctx, linkLeaderboardKey(link.UserID), link.ID)
	if err != nil {
		xcontext.Logger(ctx).Warnf("Cannot remove link from leaderboard: %v", err)
	}

	return &model.DeleteLinkResponse{}, nil
}

// Reorder persists the supplied scores, then rewrites the display order of
// the user's whole link set in one transaction. Links never given a score
// keep their relative position through the existing display order. Entries
// referencing a foreign or deleted link are skipped without error.
func (d *linkDomain) Reorder(
	ctx context.Context, req *model.ReorderLinksRequest,
) (*model.ReorderLinksResponse, error) {
	requestUserID := xcontext.RequestUserID(ctx)

	ctx = xcontext.WithDBTransaction(ctx)
	defer xcontext.WithRollbackDBTransaction(ctx)

	links, err := d.linkRepo.GetByUserID(ctx, requestUserID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get links: %v", err)
		return nil, errorx.Unknown
	}

	owned := map[string]bool{}
	for i := range links {
		owned[links[i].ID] = true
	}

	for _, linkScore := range req.Scores {
		if !owned[linkScore.LinkID] {
			continue
		}

		err := d.linkRepo.UpdateAiScore(ctx, linkScore.LinkID, int(linkScore.Score))
		if err != nil {
			xcontext.Logger(ctx).Errorf("Cannot update link score: %v", err)
			return nil, errorx.Unknown
		}
	}

	// Re-read so the sort observes the scores written above.
	links, err = d.linkRepo.GetByUserID(ctx, requestUserID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get links: %v", err)
		return nil, errorx.Unknown
	}

	// Start from the persisted display order, ignoring the featured-first
	// read sort, so ties and unscored links keep their prior position.
	sort.SliceStable(links, func(i, j int) bool {
		return links[i].DisplayOrder < links[j].DisplayOrder
	})

	// Scored links sort descending by score and come before unscored
	// ones, which keep their current display order. The sort is stable so
	// equal scores preserve their prior relative position.
	sort.SliceStable(links, func(i, j int) bool {
		a, b := links[i], links[j]
		switch {
		case a.AiScore.Valid && b.AiScore.Valid:
			return a.AiScore.Int64 > b.AiScore.Int64
		case a.AiScore.Valid:
			return true
		case b.AiScore.Valid:
			return false
		default:
			return a.DisplayOrder < b.DisplayOrder
		}
	})

	for i := range links {
		if links[i].DisplayOrder == i {
			continue
		}

		if err := d.linkRepo.UpdateDisplayOrder(ctx, links[i].ID, i); err != nil {
			xcontext.Logger(ctx).Errorf("Cannot update display order: %v", err)
			return nil, errorx.Unknown
		}

		links[i].DisplayOrder = i
	}

	xcontext.WithCommitDBTransaction(ctx)

	// Return in the read-path order, featured first.
	sort.SliceStable(links, func(i, j int) bool {
		if links[i].IsFeatured != links[j].IsFeatured {
			return links[i].IsFeatured
		}
		return links[i].DisplayOrder < links[j].DisplayOrder
	})

	return &model.ReorderLinksResponse{Links: model.ConvertLinks(links)}, nil
}

// SetFeatured only flips the flag. Featured links are pulled to the front by
// the read-path sort, the persisted display order is untouched.
func (d *linkDomain) SetFeatured(
	ctx context.Context, req *model.SetFeaturedLinkRequest,
) (*model.SetFeaturedLinkResponse, error) {
	link, err := d.getOwnedLink(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	if err := d.linkRepo.SetFeatured(ctx, link.ID, req.IsFeatured); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot set featured flag: %v", err)
		return nil, errorx.Unknown
	}

	return &model.SetFeaturedLinkResponse{}, nil
}

func (d *linkDomain) Click(
	ctx context.Context, req *model.ClickLinkRequest,
) (*model.ClickLinkResponse, error) {
	link, err := d.linkRepo.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found link")
		}

		xcontext.Logger(ctx).Errorf("Cannot get link: %v", err)
		return nil, errorx.Unknown
	}

	if err := d.linkRepo.IncreaseClicks(ctx, link.ID); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot increase clicks: %v", err)
		return nil, errorx.Unknown
	}

	err = d.redisClient.ZIncrBy(ctx, linkLeaderboardKey(link.UserID), 1, link.ID)
	if err != nil {
		xcontext.Logger(ctx).Warnf("Cannot update leaderboard: %v", err)
	}

	return &model.ClickLinkResponse{}, nil
}

func (d *linkDomain) View(
	ctx context.Context, req *model.ViewLinkRequest,
) (*model.ViewLinkResponse, error) {
	if err := d.linkRepo.IncreaseViews(ctx, req.ID); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot increase views: %v", err)
		return nil, errorx.Unknown
	}

	return &model.ViewLinkResponse{}, nil
}

func (d *linkDomain) getOwnedLink(ctx context.Context, id string) (*entity.Link, error) {
	if id == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow empty link id")
	}

	link, err := d.linkRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found link")
		}

		xcontext.Logger(ctx).Errorf("Cannot get link: %v", err)
		return nil, errorx.Unknown
	}

	if link.UserID != xcontext.RequestUserID(ctx) {
		return nil, errorx.New(errorx.PermissionDenied, "Permission denied")
	}

	return link, nil
}
