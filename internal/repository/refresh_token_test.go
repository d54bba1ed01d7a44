package repository

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/mylinked/backend/internal/entity"
	"github.com/mylinked/backend/pkg/testutil"
	"github.com/stretchr/testify/require"
)

func Test_refreshTokenRepository_Rotate_guardsOnCounter(t *testing.T) {
	ctx := testutil.MockContext()
	repo := NewRefreshTokenRepository()

	family := uuid.NewString()
	require.NoError(t, repo.Create(ctx, &entity.RefreshToken{
		Family:     family,
		UserID:     uuid.NewString(),
		Counter:    0,
		Expiration: time.Now().Add(time.Hour),
	}))

	require.NoError(t, repo.Rotate(ctx, family, 0))

	record, err := repo.Get(ctx, family)
	require.NoError(t, err)
	require.Equal(t, uint64(1), record.Counter)

	// Rotating with a stale counter touches no row.
	require.Error(t, repo.Rotate(ctx, family, 0))

	record, err = repo.Get(ctx, family)
	require.NoError(t, err)
	require.Equal(t, uint64(1), record.Counter)
}

func Test_refreshTokenRepository_DeleteByUserID(t *testing.T) {
	ctx := testutil.MockContext()
	repo := NewRefreshTokenRepository()

	userID := uuid.NewString()
	for i := 0; i < 2; i++ {
		require.NoError(t, repo.Create(ctx, &entity.RefreshToken{
			Family:     uuid.NewString(),
			UserID:     userID,
			Expiration: time.Now().Add(time.Hour),
		}))
	}

	keep := &entity.RefreshToken{
		Family:     uuid.NewString(),
		UserID:     uuid.NewString(),
		Expiration: time.Now().Add(time.Hour),
	}
	require.NoError(t, repo.Create(ctx, keep))

	require.NoError(t, repo.DeleteByUserID(ctx, userID))

	_, err := repo.Get(ctx, keep.Family)
	require.NoError(t, err)
}
