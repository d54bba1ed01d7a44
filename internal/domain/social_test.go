package domain

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/mylinked/backend/internal/entity"
	"github.com/mylinked/backend/internal/model"
	"github.com/mylinked/backend/internal/repository"
	"github.com/mylinked/backend/pkg/authenticator"
	"github.com/mylinked/backend/pkg/testutil"
	"github.com/mylinked/backend/pkg/xcontext"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
)

func Test_socialDomain_Connect_and_Callback(t *testing.T) {
	ctx := testutil.MockContext()
	user, err := testutil.SampleUser(ctx, nil)
	require.NoError(t, err)

	connectionRepo := repository.NewSocialConnectionRepository()
	domain := NewSocialDomain(
		connectionRepo,
		repository.NewOAuthStateRepository(),
		[]authenticator.IOAuth2Service{
			&testutil.MockOAuth2Service{
				Name: "github",
				GetUserProfileFunc: func(ctx context.Context, accessToken string) (authenticator.OAuth2User, error) {
					return authenticator.OAuth2User{ID: "gh-1", Username: "alice-gh"}, nil
				},
			},
		},
	)

	connectResp, err := domain.Connect(
		xcontext.WithRequestUserID(ctx, user.ID),
		&model.ConnectSocialRequest{Platform: "github"},
	)
	require.NoError(t, err)
	require.NotEmpty(t, connectResp.State)
	require.Contains(t, connectResp.RedirectURL, connectResp.State)

	_, err = domain.Connect(ctx, &model.ConnectSocialRequest{Platform: "myspace"})
	require.Error(t, err)

	// The callback arrives unauthenticated. The connection owner comes
	// from the stored handshake, not from the request context.
	callbackResp, err := domain.Callback(ctx, &model.SocialCallbackRequest{
		Platform: "github",
		State:    connectResp.State,
		Code:     "auth-code",
	})
	require.NoError(t, err)
	require.Contains(t, callbackResp.RedirectURL, "connected=github")

	connection, err := connectionRepo.Get(ctx, user.ID, "github")
	require.NoError(t, err)
	require.Equal(t, "gh-1", connection.PlatformUserID)
	require.Equal(t, "alice-gh", connection.PlatformUsername)

	// States are single use. Replaying the same one fails.
	callbackResp, err = domain.Callback(ctx, &model.SocialCallbackRequest{
		Platform: "github",
		State:    connectResp.State,
		Code:     "auth-code",
	})
	require.NoError(t, err)
	require.Contains(t, callbackResp.RedirectURL, "error=invalid_state")
}

func Test_socialDomain_Callback_rejectsExpiredState(t *testing.T) {
	ctx := testutil.MockContext()
	user, err := testutil.SampleUser(ctx, nil)
	require.NoError(t, err)

	state, err := testutil.SampleOAuthState(ctx, &entity.OAuthState{
		UserID:    user.ID,
		Platform:  "github",
		ExpiresAt: time.Now().Add(-time.Minute),
	})
	require.NoError(t, err)

	domain := NewSocialDomain(
		repository.NewSocialConnectionRepository(),
		repository.NewOAuthStateRepository(),
		[]authenticator.IOAuth2Service{&testutil.MockOAuth2Service{Name: "github"}},
	)

	resp, err := domain.Callback(ctx, &model.SocialCallbackRequest{
		Platform: "github",
		State:    state.State,
		Code:     "auth-code",
	})
	require.NoError(t, err)
	require.Contains(t, resp.RedirectURL, "error=expired_state")
}

func Test_socialDomain_Callback_failureRedirects(t *testing.T) {
	ctx := testutil.MockContext()
	user, err := testutil.SampleUser(ctx, nil)
	require.NoError(t, err)

	domain := NewSocialDomain(
		repository.NewSocialConnectionRepository(),
		repository.NewOAuthStateRepository(),
		[]authenticator.IOAuth2Service{
			&testutil.MockOAuth2Service{
				Name: "github",
				ExchangeAuthorizationCodeFunc: func(ctx context.Context, code, codeVerifier string) (*oauth2.Token, error) {
					return nil, errors.New("upstream down")
				},
			},
		},
	)

	// The user canceled on the platform side.
	resp, err := domain.Callback(ctx, &model.SocialCallbackRequest{
		Platform: "github",
		Error:    "access_denied",
	})
	require.NoError(t, err)
	require.Contains(t, resp.RedirectURL, "error=access_denied")

	// Missing parameters.
	resp, err = domain.Callback(ctx, &model.SocialCallbackRequest{Platform: "github"})
	require.NoError(t, err)
	require.Contains(t, resp.RedirectURL, "error=invalid_request")

	// Exchange failure after a valid handshake.
	state, err := testutil.SampleOAuthState(ctx, &entity.OAuthState{
		UserID:   user.ID,
		Platform: "github",
	})
	require.NoError(t, err)

	resp, err = domain.Callback(ctx, &model.SocialCallbackRequest{
		Platform: "github",
		State:    state.State,
		Code:     "auth-code",
	})
	require.NoError(t, err)
	require.Contains(t, resp.RedirectURL, "error=exchange_failed")
}

func Test_socialDomain_Connect_recordsCodeVerifierForPKCE(t *testing.T) {
	ctx := testutil.MockContext()
	user, err := testutil.SampleUser(ctx, nil)
	require.NoError(t, err)

	var exchangedVerifier string
	domain := NewSocialDomain(
		repository.NewSocialConnectionRepository(),
		repository.NewOAuthStateRepository(),
		[]authenticator.IOAuth2Service{
			&testutil.MockOAuth2Service{
				Name:    "twitter",
				UsePKCE: true,
				AuthCodeURLFunc: func(state, codeChallenge string) string {
					return "https://twitter.example.com/authorize?state=" + state +
						"&code_challenge=" + codeChallenge
				},
				ExchangeAuthorizationCodeFunc: func(ctx context.Context, code, codeVerifier string) (*oauth2.Token, error) {
					exchangedVerifier = codeVerifier
					return &oauth2.Token{AccessToken: "token"}, nil
				},
			},
		},
	)

	connectResp, err := domain.Connect(
		xcontext.WithRequestUserID(ctx, user.ID),
		&model.ConnectSocialRequest{Platform: "twitter"},
	)
	require.NoError(t, err)
	require.Contains(t, connectResp.RedirectURL, "code_challenge=")
	require.False(t, strings.Contains(connectResp.RedirectURL, "code_verifier"))

	_, err = domain.Callback(ctx, &model.SocialCallbackRequest{
		Platform: "twitter",
		State:    connectResp.State,
		Code:     "auth-code",
	})
	require.NoError(t, err)
	require.NotEmpty(t, exchangedVerifier)
}
