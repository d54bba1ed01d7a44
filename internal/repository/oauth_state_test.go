package repository

import (
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/mylinked/backend/internal/entity"
	"github.com/mylinked/backend/pkg/testutil"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func Test_oauthStateRepository_Consume_isSingleUse(t *testing.T) {
	ctx := testutil.MockContext()
	repo := NewOAuthStateRepository()

	state := &entity.OAuthState{
		State:        uuid.NewString(),
		UserID:       uuid.NewString(),
		Platform:     "twitter",
		CodeVerifier: sql.NullString{Valid: true, String: "verifier"},
		ExpiresAt:    time.Now().Add(time.Hour),
	}
	require.NoError(t, repo.Create(ctx, state))

	consumed, err := repo.Consume(ctx, state.State)
	require.NoError(t, err)
	require.Equal(t, state.UserID, consumed.UserID)
	require.Equal(t, "verifier", consumed.CodeVerifier.String)

	_, err = repo.Consume(ctx, state.State)
	require.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func Test_oauthStateRepository_DeleteExpired(t *testing.T) {
	ctx := testutil.MockContext()
	repo := NewOAuthStateRepository()

	expired := &entity.OAuthState{
		State:     uuid.NewString(),
		UserID:    uuid.NewString(),
		Platform:  "github",
		ExpiresAt: time.Now().Add(-time.Minute),
	}
	require.NoError(t, repo.Create(ctx, expired))

	live := &entity.OAuthState{
		State:     uuid.NewString(),
		UserID:    uuid.NewString(),
		Platform:  "github",
		ExpiresAt: time.Now().Add(time.Hour),
	}
	require.NoError(t, repo.Create(ctx, live))

	deleted, err := repo.DeleteExpired(ctx, time.Now())
	require.NoError(t, err)
	require.Equal(t, int64(1), deleted)

	_, err = repo.Consume(ctx, live.State)
	require.NoError(t, err)
}
