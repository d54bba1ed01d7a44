package domain

import (
	"context"
	"errors"

	"github.com/mylinked/backend/internal/entity"
	"github.com/mylinked/backend/internal/model"
	"github.com/mylinked/backend/internal/repository"
	"github.com/mylinked/backend/pkg/errorx"
	"github.com/mylinked/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type UserDomain interface {
	GetMe(context.Context, *model.GetMeRequest) (*model.GetMeResponse, error)
	GetUser(context.Context, *model.GetUserRequest) (*model.GetUserResponse, error)
	Update(context.Context, *model.UpdateUserRequest) (*model.UpdateUserResponse, error)
	Follow(context.Context, *model.FollowUserRequest) (*model.FollowUserResponse, error)
	Unfollow(context.Context, *model.UnfollowUserRequest) (*model.UnfollowUserResponse, error)
	GetFollowers(context.Context, *model.GetFollowersRequest) (*model.GetFollowersResponse, error)
	GetFollowing(context.Context, *model.GetFollowingRequest) (*model.GetFollowingResponse, error)
}

type userDomain struct {
	userRepo   repository.UserRepository
	followRepo repository.FollowRepository
}

func NewUserDomain(
	userRepo repository.UserRepository,
	followRepo repository.FollowRepository,
) *userDomain {
	return &userDomain{
		userRepo:   userRepo,
		followRepo: followRepo,
	}
}

func (d *userDomain) GetMe(
	ctx context.Context, _ *model.GetMeRequest,
) (*model.GetMeResponse, error) {
	user, err := d.userRepo.GetByID(ctx, xcontext.RequestUserID(ctx))
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get user: %v", err)
		return nil, errorx.Unknown
	}

	followerNum, err := d.followRepo.Count(ctx, user.ID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot count followers: %v", err)
		return nil, errorx.Unknown
	}

	resp := model.GetMeResponse(model.ConvertUser(user, followerNum))
	resp.Email = user.Email
	return &resp, nil
}

func (d *userDomain) GetUser(
	ctx context.Context, req *model.GetUserRequest,
) (*model.GetUserResponse, error) {
	if req.Username == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow empty username")
	}

	user, err := d.userRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found user")
		}

		xcontext.Logger(ctx).Errorf("Cannot get user: %v", err)
		return nil, errorx.Unknown
	}

	followerNum, err := d.followRepo.Count(ctx, user.ID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot count followers: %v", err)
		return nil, errorx.Unknown
	}

	converted := model.ConvertUser(user, followerNum)
	converted.Role = ""
	resp := model.GetUserResponse(converted)
	return &resp, nil
}

func (d *userDomain) Update(
	ctx context.Context, req *model.UpdateUserRequest,
) (*model.UpdateUserResponse, error) {
	requestUserID := xcontext.RequestUserID(ctx)
	err := d.userRepo.UpdateByID(ctx, requestUserID, &entity.User{
		DisplayName: req.DisplayName,
		Bio:         req.Bio,
		AvatarURL:   req.AvatarURL,
	})
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot update user: %v", err)
		return nil, errorx.Unknown
	}

	user, err := d.userRepo.GetByID(ctx, requestUserID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get user: %v", err)
		return nil, errorx.Unknown
	}

	resp := model.UpdateUserResponse(model.ConvertUser(user, 0))
	return &resp, nil
}

func (d *userDomain) Follow(
	ctx context.Context, req *model.FollowUserRequest,
) (*model.FollowUserResponse, error) {
	requestUserID := xcontext.RequestUserID(ctx)
	if req.UserID == requestUserID {
		return nil, errorx.New(errorx.BadRequest, "Not allow following yourself")
	}

	if _, err := d.userRepo.GetByID(ctx, req.UserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found user")
		}

		xcontext.Logger(ctx).Errorf("Cannot get user: %v", err)
		return nil, errorx.Unknown
	}

	err := d.followRepo.Create(ctx, &entity.Follow{
		FollowerID:  requestUserID,
		FollowingID: req.UserID,
	})
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create follow: %v", err)
		return nil, errorx.Unknown
	}

	return &model.FollowUserResponse{}, nil
}

func (d *userDomain) Unfollow(
	ctx context.Context, req *model.UnfollowUserRequest,
) (*model.UnfollowUserResponse, error) {
	err := d.followRepo.Delete(ctx, xcontext.RequestUserID(ctx), req.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "You are not following this user")
		}

		xcontext.Logger(ctx).Errorf("Cannot delete follow: %v", err)
		return nil, errorx.Unknown
	}

	return &model.UnfollowUserResponse{}, nil
}

func (d *userDomain) GetFollowers(
	ctx context.Context, _ *model.GetFollowersRequest,
) (*model.GetFollowersResponse, error) {
	follows, err := d.followRepo.GetListByFollowingID(ctx, xcontext.RequestUserID(ctx))
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get followers: %v", err)
		return nil, errorx.Unknown
	}

	userIDs := []string{}
	for _, f := range follows {
		userIDs = append(userIDs, f.FollowerID)
	}

	users, err := d.getShortUsers(ctx, userIDs)
	if err != nil {
		return nil, err
	}

	return &model.GetFollowersResponse{Users: users}, nil
}

func (d *userDomain) GetFollowing(
	ctx context.Context, _ *model.GetFollowingRequest,
) (*model.GetFollowingResponse, error) {
	follows, err := d.followRepo.GetListByFollowerID(ctx, xcontext.RequestUserID(ctx))
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get following list: %v", err)
		return nil, errorx.Unknown
	}

	userIDs := []string{}
	for _, f := range follows {
		userIDs = append(userIDs, f.FollowingID)
	}

	users, err := d.getShortUsers(ctx, userIDs)
	if err != nil {
		return nil, err
	}

	return &model.GetFollowingResponse{Users: users}, nil
}

func (d *userDomain) getShortUsers(ctx context.Context, userIDs []string) ([]model.ShortUser, error) {
	if len(userIDs) == 0 {
		return []model.ShortUser{}, nil
	}

	users, err := d.userRepo.GetByIDs(ctx, userIDs)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get users: %v", err)
		return nil, errorx.Unknown
	}

	converted := []model.ShortUser{}
	for i := range users {
		converted = append(converted, model.ConvertShortUser(&users[i]))
	}

	return converted, nil
}
