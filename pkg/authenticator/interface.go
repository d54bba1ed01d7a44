package authenticator

import (
	"context"

	"golang.org/x/oauth2"
)

type OAuth2User struct {
	ID       string
	Username string
}

// IOAuth2Service drives the authorization-code handshake against one
// external platform.
type IOAuth2Service interface {
	Service() string
	RequiresPKCE() bool
	AuthCodeURL(state, codeChallenge string) string
	ExchangeAuthorizationCode(ctx context.Context, code, codeVerifier string) (*oauth2.Token, error)
	GetUserProfile(ctx context.Context, accessToken string) (OAuth2User, error)
}

// IOIDCService verifies identity tokens from an OpenID Connect provider,
// used for sign-in rather than account connections.
type IOIDCService interface {
	Service() string
	VerifyIDToken(ctx context.Context, rawIDToken string) (OAuth2User, error)
}
