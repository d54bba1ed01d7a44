package domain

import (
	"database/sql"
	"testing"

	"github.com/google/uuid"
	"github.com/mylinked/backend/internal/entity"
	"github.com/mylinked/backend/internal/model"
	"github.com/mylinked/backend/internal/repository"
	"github.com/mylinked/backend/pkg/testutil"
	"github.com/mylinked/backend/pkg/xcontext"
	"github.com/stretchr/testify/require"
)

func Test_linkDomain_Create_appendsToTail(t *testing.T) {
	ctx := testutil.MockContext()
	user, err := testutil.SampleUser(ctx, nil)
	require.NoError(t, err)

	ctx = xcontext.WithRequestUserID(ctx, user.ID)
	domain := NewLinkDomain(
		repository.NewLinkRepository(),
		repository.NewUserRepository(),
		testutil.NewMockRedisClient(),
	)

	first, err := domain.Create(ctx, &model.CreateLinkRequest{Title: "Blog", URL: "https://blog.example.com"})
	require.NoError(t, err)
	require.Equal(t, 0, first.DisplayOrder)

	second, err := domain.Create(ctx, &model.CreateLinkRequest{Title: "Shop", URL: "https://shop.example.com"})
	require.NoError(t, err)
	require.Equal(t, 1, second.DisplayOrder)

	_, err = domain.Create(ctx, &model.CreateLinkRequest{URL: "https://no-title.example.com"})
	require.Error(t, err)
}

func Test_linkDomain_Reorder(t *testing.T) {
	ctx := testutil.MockContext()
	user, err := testutil.SampleUser(ctx, nil)
	require.NoError(t, err)

	linkRepo := repository.NewLinkRepository()
	domain := NewLinkDomain(linkRepo, repository.NewUserRepository(), testutil.NewMockRedisClient())

	linkIDs := make([]string, 3)
	for i := range linkIDs {
		link, err := testutil.SampleLink(ctx, &entity.Link{
			Base:         entity.Base{ID: uuid.NewString()},
			UserID:       user.ID,
			DisplayOrder: i,
		})
		require.NoError(t, err)
		linkIDs[i] = link.ID
	}

	ctx = xcontext.WithRequestUserID(ctx, user.ID)
	resp, err := domain.Reorder(ctx, &model.ReorderLinksRequest{
		Scores: []model.LinkScore{
			{LinkID: linkIDs[0], Score: 10},
			{LinkID: linkIDs[1], Score: 90},
			{LinkID: linkIDs[2], Score: 50},
		},
	})
	require.NoError(t, err)
	require.Len(t, resp.Links, 3)
	require.Equal(t, linkIDs[1], resp.Links[0].ID)
	require.Equal(t, linkIDs[2], resp.Links[1].ID)
	require.Equal(t, linkIDs[0], resp.Links[2].ID)

	// The new order is persisted, not just reflected in the response.
	links, err := linkRepo.GetByUserID(ctx, user.ID)
	require.NoError(t, err)
	require.Equal(t, linkIDs[1], links[0].ID)
	require.Equal(t, 0, links[0].DisplayOrder)
	require.Equal(t, 2, links[2].DisplayOrder)

	// Applying the same scores again changes nothing.
	resp, err = domain.Reorder(ctx, &model.ReorderLinksRequest{
		Scores: []model.LinkScore{
			{LinkID: linkIDs[0], Score: 10},
			{LinkID: linkIDs[1], Score: 90},
			{LinkID: linkIDs[2], Score: 50},
		},
	})
	require.NoError(t, err)
	require.Equal(t, linkIDs[1], resp.Links[0].ID)
	require.Equal(t, linkIDs[2], resp.Links[1].ID)
	require.Equal(t, linkIDs[0], resp.Links[2].ID)
}

func Test_linkDomain_Reorder_preservesTiesAndUnscored(t *testing.T) {
	ctx := testutil.MockContext()
	user, err := testutil.SampleUser(ctx, nil)
	require.NoError(t, err)

	domain := NewLinkDomain(
		repository.NewLinkRepository(),
		repository.NewUserRepository(),
		testutil.NewMockRedisClient(),
	)

	linkIDs := make([]string, 4)
	for i := range linkIDs {
		link, err := testutil.SampleLink(ctx, &entity.Link{
			Base:         entity.Base{ID: uuid.NewString()},
			UserID:       user.ID,
			DisplayOrder: i,
		})
		require.NoError(t, err)
		linkIDs[i] = link.ID
	}

	// Only the two middle links get a score, and it is the same score.
	// They move to the front keeping their prior relative order, the
	// unscored links follow in their prior order.
	ctx = xcontext.WithRequestUserID(ctx, user.ID)
	resp, err := domain.Reorder(ctx, &model.ReorderLinksRequest{
		Scores: []model.LinkScore{
			{LinkID: linkIDs[2], Score: 7},
			{LinkID: linkIDs[1], Score: 7},
		},
	})
	require.NoError(t, err)
	require.Len(t, resp.Links, 4)
	require.Equal(t, linkIDs[1], resp.Links[0].ID)
	require.Equal(t, linkIDs[2], resp.Links[1].ID)
	require.Equal(t, linkIDs[0], resp.Links[2].ID)
	require.Equal(t, linkIDs[3], resp.Links[3].ID)
}

func Test_linkDomain_Reorder_skipsForeignLinks(t *testing.T) {
	ctx := testutil.MockContext()
	user, err := testutil.SampleUser(ctx, nil)
	require.NoError(t, err)
	other, err := testutil.SampleUser(ctx, nil)
	require.NoError(t, err)

	mine, err := testutil.SampleLink(ctx, &entity.Link{
		Base:   entity.Base{ID: uuid.NewString()},
		UserID: user.ID,
	})
	require.NoError(t, err)

	foreign, err := testutil.SampleLink(ctx, &entity.Link{
		Base:   entity.Base{ID: uuid.NewString()},
		UserID: other.ID,
	})
	require.NoError(t, err)

	linkRepo := repository.NewLinkRepository()
	domain := NewLinkDomain(linkRepo, repository.NewUserRepository(), testutil.NewMockRedisClient())

	ctx = xcontext.WithRequestUserID(ctx, user.ID)
	resp, err := domain.Reorder(ctx, &model.ReorderLinksRequest{
		Scores: []model.LinkScore{
			{LinkID: foreign.ID, Score: 100},
			{LinkID: uuid.NewString(), Score: 50},
			{LinkID: mine.ID, Score: 1},
		},
	})
	require.NoError(t, err)
	require.Len(t, resp.Links, 1)
	require.Equal(t, mine.ID, resp.Links[0].ID)

	// The other user's link never got a score.
	record, err := linkRepo.GetByID(ctx, foreign.ID)
	require.NoError(t, err)
	require.False(t, record.AiScore.Valid)
}

func Test_linkDomain_Reorder_featuredComesFirstInResponse(t *testing.T) {
	ctx := testutil.MockContext()
	user, err := testutil.SampleUser(ctx, nil)
	require.NoError(t, err)

	plain, err := testutil.SampleLink(ctx, &entity.Link{
		Base:         entity.Base{ID: uuid.NewString()},
		UserID:       user.ID,
		DisplayOrder: 0,
	})
	require.NoError(t, err)

	featured, err := testutil.SampleLink(ctx, &entity.Link{
		Base:         entity.Base{ID: uuid.NewString()},
		UserID:       user.ID,
		DisplayOrder: 1,
		IsFeatured:   true,
	})
	require.NoError(t, err)

	domain := NewLinkDomain(
		repository.NewLinkRepository(),
		repository.NewUserRepository(),
		testutil.NewMockRedisClient(),
	)

	// The plain link scores higher, so it owns display order 0, but the
	// featured link is still presented first.
	ctx = xcontext.WithRequestUserID(ctx, user.ID)
	resp, err := domain.Reorder(ctx, &model.ReorderLinksRequest{
		Scores: []model.LinkScore{
			{LinkID: plain.ID, Score: 100},
			{LinkID: featured.ID, Score: 1},
		},
	})
	require.NoError(t, err)
	require.Equal(t, featured.ID, resp.Links[0].ID)
	require.Equal(t, plain.ID, resp.Links[1].ID)
	require.Equal(t, 0, resp.Links[1].DisplayOrder)
	require.Equal(t, 1, resp.Links[0].DisplayOrder)
}

func Test_linkDomain_Click(t *testing.T) {
	ctx := testutil.MockContext()
	user, err := testutil.SampleUser(ctx, nil)
	require.NoError(t, err)

	link, err := testutil.SampleLink(ctx, &entity.Link{
		Base:   entity.Base{ID: uuid.NewString()},
		UserID: user.ID,
	})
	require.NoError(t, err)

	linkRepo := repository.NewLinkRepository()
	redisClient := testutil.NewMockRedisClient()
	domain := NewLinkDomain(linkRepo, repository.NewUserRepository(), redisClient)

	_, err = domain.Click(ctx, &model.ClickLinkRequest{ID: link.ID})
	require.NoError(t, err)
	_, err = domain.Click(ctx, &model.ClickLinkRequest{ID: link.ID})
	require.NoError(t, err)

	record, err := linkRepo.GetByID(ctx, link.ID)
	require.NoError(t, err)
	require.Equal(t, uint64(2), record.ClickCount)
	require.True(t, record.LastClickedAt.Valid)

	zs, err := redisClient.ZRevRangeWithScores(ctx, linkLeaderboardKey(user.ID), 0, 10)
	require.NoError(t, err)
	require.Len(t, zs, 1)
	require.Equal(t, link.ID, zs[0].Member)
	require.Equal(t, float64(2), zs[0].Score)

	_, err = domain.Click(ctx, &model.ClickLinkRequest{ID: uuid.NewString()})
	require.Error(t, err)
}

func Test_linkDomain_Delete_requiresOwnership(t *testing.T) {
	ctx := testutil.MockContext()
	user, err := testutil.SampleUser(ctx, nil)
	require.NoError(t, err)
	other, err := testutil.SampleUser(ctx, nil)
	require.NoError(t, err)

	link, err := testutil.SampleLink(ctx, &entity.Link{
		Base:    entity.Base{ID: uuid.NewString()},
		UserID:  user.ID,
		AiScore: sql.NullInt64{Int64: 3, Valid: true},
	})
	require.NoError(t, err)

	redisClient := testutil.NewMockRedisClient()
	require.NoError(t, redisClient.ZIncrBy(ctx, linkLeaderboardKey(user.ID), 3, link.ID))

	domain := NewLinkDomain(repository.NewLinkRepository(), repository.NewUserRepository(), redisClient)

	_, err = domain.Delete(xcontext.WithRequestUserID(ctx, other.ID), &model.DeleteLinkRequest{ID: link.ID})
	require.Error(t, err)

	_, err = domain.Delete(xcontext.WithRequestUserID(ctx, user.ID), &model.DeleteLinkRequest{ID: link.ID})
	require.NoError(t, err)

	zs, err := redisClient.ZRevRangeWithScores(ctx, linkLeaderboardKey(user.ID), 0, 10)
	require.NoError(t, err)
	require.Empty(t, zs)
}
