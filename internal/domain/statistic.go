package domain

import (
	"context"
	"errors"

	"github.com/mylinked/backend/internal/model"
	"github.com/mylinked/backend/internal/repository"
	"github.com/mylinked/backend/pkg/errorx"
	"github.com/mylinked/backend/pkg/xcontext"
	"github.com/mylinked/backend/pkg/xredis"
	"gorm.io/gorm"
)

type StatisticDomain interface {
	GetProfileStats(context.Context, *model.GetProfileStatsRequest) (*model.GetProfileStatsResponse, error)
	GetLinkLeaderboard(context.Context, *model.GetLinkLeaderboardRequest) (*model.GetLinkLeaderboardResponse, error)
}

type statisticDomain struct {
	linkRepo    repository.LinkRepository
	followRepo  repository.FollowRepository
	redisClient xredis.Client
}

func NewStatisticDomain(
	linkRepo repository.LinkRepository,
	followRepo repository.FollowRepository,
	redisClient xredis.Client,
) *statisticDomain {
	return &statisticDomain{
		linkRepo:    linkRepo,
		followRepo:  followRepo,
		redisClient: redisClient,
	}
}

func (d *statisticDomain) GetProfileStats(
	ctx context.Context, req *model.GetProfileStatsRequest,
) (*model.GetProfileStatsResponse, error) {
	userID := req.UserID
	if userID == "" {
		userID = xcontext.RequestUserID(ctx)
	}

	if userID == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow empty user id")
	}

	totalLinks, err := d.linkRepo.Count(ctx, userID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot count links: %v", err)
		return nil, errorx.Unknown
	}

	totalClicks, err := d.linkRepo.SumClicks(ctx, userID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot sum clicks: %v", err)
		return nil, errorx.Unknown
	}

	totalViews, err := d.linkRepo.SumViews(ctx, userID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot sum views: %v", err)
		return nil, errorx.Unknown
	}

	followers, err := d.followRepo.Count(ctx, userID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot count followers: %v", err)
		return nil, errorx.Unknown
	}

	return &model.GetProfileStatsResponse{
		TotalLinks:  totalLinks,
		TotalClicks: totalClicks,
		TotalViews:  totalViews,
		Followers:   followers,
	}, nil
}

// GetLinkLeaderboard serves the top clicked links from the redis sorted set
// the click path maintains. Members whose link has been deleted since are
// dropped from the result and reclaimed from the set.
func (d *statisticDomain) GetLinkLeaderboard(
	ctx context.Context, req *model.GetLinkLeaderboardRequest,
) (*model.GetLinkLeaderboardResponse, error) {
	userID := req.UserID
	if userID == "" {
		userID = xcontext.RequestUserID(ctx)
	}

	if userID == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow empty user id")
	}

	limit := req.Limit
	if limit <= 0 {
		limit = xcontext.Configs(ctx).ApiServer.DefaultLimit
	}

	if limit > xcontext.Configs(ctx).ApiServer.MaxLimit {
		return nil, errorx.New(errorx.BadRequest, "Exceeded the maximum limit of %d",
			xcontext.Configs(ctx).ApiServer.MaxLimit)
	}

	key := linkLeaderboardKey(userID)
	zs, err := d.redisClient.ZRevRangeWithScores(ctx, key, 0, limit)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot read leaderboard: %v", err)
		return nil, errorx.Unknown
	}

	entries := []model.LeaderboardEntry{}
	for _, z := range zs {
		linkID, ok := z.Member.(string)
		if !ok {
			continue
		}

		link, err := d.linkRepo.GetByID(ctx, linkID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				if err := d.redisClient.ZRem(ctx, key, linkID); err != nil {
					xcontext.Logger(ctx).Warnf("Cannot reclaim leaderboard member: %v", err)
				}
				continue
			}

			xcontext.Logger(ctx).Errorf("Cannot get link: %v", err)
			return nil, errorx.Unknown
		}

		entries = append(entries, model.LeaderboardEntry{
			LinkID: linkID,
			Title:  link.Title,
			Clicks: z.Score,
		})
	}

	return &model.GetLinkLeaderboardResponse{Entries: entries}, nil
}
