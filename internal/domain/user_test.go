package domain

import (
	"testing"

	"github.com/mylinked/backend/internal/model"
	"github.com/mylinked/backend/internal/repository"
	"github.com/mylinked/backend/pkg/errorx"
	"github.com/mylinked/backend/pkg/testutil"
	"github.com/mylinked/backend/pkg/xcontext"
	"github.com/stretchr/testify/require"
)

func newUserDomainForTest() UserDomain {
	return NewUserDomain(
		repository.NewUserRepository(),
		repository.NewFollowRepository(),
	)
}

func Test_userDomain_GetUser_hidesPrivateFields(t *testing.T) {
	ctx := testutil.MockContext()
	user, err := testutil.SampleUser(ctx, nil)
	require.NoError(t, err)

	domain := newUserDomainForTest()

	resp, err := domain.GetUser(ctx, &model.GetUserRequest{Username: user.Username})
	require.NoError(t, err)
	require.Equal(t, user.ID, resp.ID)
	require.Empty(t, resp.Email)
	require.Empty(t, resp.Role)

	me, err := domain.GetMe(xcontext.WithRequestUserID(ctx, user.ID), &model.GetMeRequest{})
	require.NoError(t, err)
	require.Equal(t, user.Email, me.Email)

	_, err = domain.GetUser(ctx, &model.GetUserRequest{Username: "nobody"})
	require.Error(t, err)
	require.Equal(t, errorx.NotFound, err.(errorx.Error).Code)
}

func Test_userDomain_Follow_and_Unfollow(t *testing.T) {
	ctx := testutil.MockContext()
	alice, err := testutil.SampleUser(ctx, nil)
	require.NoError(t, err)
	bob, err := testutil.SampleUser(ctx, nil)
	require.NoError(t, err)

	domain := newUserDomainForTest()
	aliceCtx := xcontext.WithRequestUserID(ctx, alice.ID)

	_, err = domain.Follow(aliceCtx, &model.FollowUserRequest{UserID: alice.ID})
	require.Error(t, err)
	require.Equal(t, errorx.BadRequest, err.(errorx.Error).Code)

	_, err = domain.Follow(aliceCtx, &model.FollowUserRequest{UserID: bob.ID})
	require.NoError(t, err)

	// Following twice stays a single follow.
	_, err = domain.Follow(aliceCtx, &model.FollowUserRequest{UserID: bob.ID})
	require.NoError(t, err)

	bobCtx := xcontext.WithRequestUserID(ctx, bob.ID)
	followers, err := domain.GetFollowers(bobCtx, &model.GetFollowersRequest{})
	require.NoError(t, err)
	require.Len(t, followers.Users, 1)
	require.Equal(t, alice.ID, followers.Users[0].ID)

	following, err := domain.GetFollowing(aliceCtx, &model.GetFollowingRequest{})
	require.NoError(t, err)
	require.Len(t, following.Users, 1)
	require.Equal(t, bob.ID, following.Users[0].ID)

	_, err = domain.Unfollow(aliceCtx, &model.UnfollowUserRequest{UserID: bob.ID})
	require.NoError(t, err)

	_, err = domain.Unfollow(aliceCtx, &model.UnfollowUserRequest{UserID: bob.ID})
	require.Error(t, err)
	require.Equal(t, errorx.NotFound, err.(errorx.Error).Code)
}

func Test_userDomain_Update(t *testing.T) {
	ctx := testutil.MockContext()
	user, err := testutil.SampleUser(ctx, nil)
	require.NoError(t, err)

	domain := newUserDomainForTest()

	resp, err := domain.Update(xcontext.WithRequestUserID(ctx, user.ID), &model.UpdateUserRequest{
		DisplayName: "New Name",
		Bio:         "Building things",
	})
	require.NoError(t, err)
	require.Equal(t, "New Name", resp.DisplayName)
	require.Equal(t, "Building things", resp.Bio)
	require.Equal(t, user.Username, resp.Username)
}
