package domain

import (
	"context"
	"testing"

	"github.com/mylinked/backend/internal/model"
	"github.com/mylinked/backend/internal/repository"
	"github.com/mylinked/backend/pkg/authenticator"
	"github.com/mylinked/backend/pkg/errorx"
	"github.com/mylinked/backend/pkg/testutil"
	"github.com/stretchr/testify/require"
)

func newAuthDomainForTest(oidcServices ...authenticator.IOIDCService) AuthDomain {
	return NewAuthDomain(
		repository.NewUserRepository(),
		repository.NewRefreshTokenRepository(),
		repository.NewEmailRepository(),
		oidcServices,
	)
}

func Test_authDomain_Register_and_Login(t *testing.T) {
	ctx := testutil.MockContext()
	domain := newAuthDomainForTest()

	resp, err := domain.Register(ctx, &model.RegisterRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "correct horse",
	})
	require.NoError(t, err)
	require.Equal(t, "alice", resp.User.Username)
	require.Equal(t, "alice", resp.User.DisplayName)

	_, err = domain.Register(ctx, &model.RegisterRequest{
		Username: "alice",
		Email:    "alice2@example.com",
		Password: "correct horse",
	})
	require.Error(t, err)
	require.Equal(t, errorx.AlreadyExists, err.(errorx.Error).Code)

	_, err = domain.Register(ctx, &model.RegisterRequest{
		Username: "bob",
		Email:    "bob@example.com",
		Password: "short",
	})
	require.Error(t, err)
	require.Equal(t, errorx.BadRequest, err.(errorx.Error).Code)

	loginResp, err := domain.Login(ctx, &model.LoginRequest{
		Email:    "alice@example.com",
		Password: "correct horse",
	})
	require.NoError(t, err)
	require.NotEmpty(t, loginResp.AccessToken)
	require.NotEmpty(t, loginResp.RefreshToken)

	_, err = domain.Login(ctx, &model.LoginRequest{
		Email:    "alice@example.com",
		Password: "wrong horse",
	})
	require.Error(t, err)
	require.Equal(t, errorx.Unauthenticated, err.(errorx.Error).Code)
}

func Test_authDomain_Refresh_rotation(t *testing.T) {
	ctx := testutil.MockContext()
	domain := newAuthDomainForTest()

	_, err := domain.Register(ctx, &model.RegisterRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "correct horse",
	})
	require.NoError(t, err)

	loginResp, err := domain.Login(ctx, &model.LoginRequest{
		Email:    "alice@example.com",
		Password: "correct horse",
	})
	require.NoError(t, err)

	// First refresh rotates the family and hands out a new pair.
	refreshResp, err := domain.Refresh(ctx, &model.RefreshTokenRequest{
		RefreshToken: loginResp.RefreshToken,
	})
	require.NoError(t, err)
	require.NotEmpty(t, refreshResp.AccessToken)
	require.NotEqual(t, loginResp.RefreshToken, refreshResp.RefreshToken)

	// The rotated token keeps working.
	_, err = domain.Refresh(ctx, &model.RefreshTokenRequest{
		RefreshToken: refreshResp.RefreshToken,
	})
	require.NoError(t, err)

	// Replaying the stale first token reveals the family as stolen and
	// revokes it entirely.
	_, err = domain.Refresh(ctx, &model.RefreshTokenRequest{
		RefreshToken: loginResp.RefreshToken,
	})
	require.Error(t, err)
	require.Equal(t, errorx.StolenDetected, err.(errorx.Error).Code)
}

func Test_authDomain_VerifyOAuth2(t *testing.T) {
	ctx := testutil.MockContext()
	domain := newAuthDomainForTest(&testutil.MockOIDCService{
		Name: "google",
		VerifyIDTokenFunc: func(ctx context.Context, rawIDToken string) (authenticator.OAuth2User, error) {
			return authenticator.OAuth2User{ID: "google-1", Username: "carol@example.com"}, nil
		},
	})

	resp, err := domain.VerifyOAuth2(ctx, &model.OAuth2VerifyRequest{IDToken: "id-token"})
	require.NoError(t, err)
	require.Equal(t, "carol", resp.User.Username)
	require.NotEmpty(t, resp.AccessToken)

	// Signing in again reuses the account instead of creating another.
	again, err := domain.VerifyOAuth2(ctx, &model.OAuth2VerifyRequest{IDToken: "id-token"})
	require.NoError(t, err)
	require.Equal(t, resp.User.ID, again.User.ID)
}
