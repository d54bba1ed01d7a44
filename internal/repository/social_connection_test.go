package repository

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/mylinked/backend/internal/entity"
	"github.com/mylinked/backend/pkg/testutil"
	"github.com/stretchr/testify/require"
)

func Test_socialConnectionRepository_Upsert(t *testing.T) {
	ctx := testutil.MockContext()
	repo := NewSocialConnectionRepository()

	userID := uuid.NewString()
	require.NoError(t, repo.Upsert(ctx, &entity.SocialConnection{
		UserID:           userID,
		Platform:         "github",
		AccessToken:      "token-1",
		PlatformUserID:   "gh-1",
		PlatformUsername: "alice",
		ConnectedAt:      time.Now(),
	}))

	// Reconnecting replaces the grant instead of adding a second row.
	require.NoError(t, repo.Upsert(ctx, &entity.SocialConnection{
		UserID:           userID,
		Platform:         "github",
		AccessToken:      "token-2",
		PlatformUserID:   "gh-1",
		PlatformUsername: "alice-renamed",
		ConnectedAt:      time.Now(),
	}))

	connections, err := repo.GetByUserID(ctx, userID)
	require.NoError(t, err)
	require.Len(t, connections, 1)
	require.Equal(t, "token-2", connections[0].AccessToken)
	require.Equal(t, "alice-renamed", connections[0].PlatformUsername)

	require.NoError(t, repo.Delete(ctx, userID, "github"))

	connections, err = repo.GetByUserID(ctx, userID)
	require.NoError(t, err)
	require.Empty(t, connections)
}
