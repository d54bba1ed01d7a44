package testutil

import (
	"context"
	"fmt"

	"github.com/mylinked/backend/pkg/authenticator"
	"golang.org/x/oauth2"
)

type MockOAuth2Service struct {
	Name    string
	UsePKCE bool

	AuthCodeURLFunc               func(state, codeChallenge string) string
	ExchangeAuthorizationCodeFunc func(ctx context.Context, code, codeVerifier string) (*oauth2.Token, error)
	GetUserProfileFunc            func(ctx context.Context, accessToken string) (authenticator.OAuth2User, error)
}

func (s *MockOAuth2Service) Service() string {
	return s.Name
}

func (s *MockOAuth2Service) RequiresPKCE() bool {
	return s.UsePKCE
}

func (s *MockOAuth2Service) AuthCodeURL(state, codeChallenge string) string {
	if s.AuthCodeURLFunc != nil {
		return s.AuthCodeURLFunc(state, codeChallenge)
	}

	return fmt.Sprintf("https://%s.example.com/authorize?state=%s", s.Name, state)
}

func (s *MockOAuth2Service) ExchangeAuthorizationCode(
	ctx context.Context, code, codeVerifier string,
) (*oauth2.Token, error) {
	if s.ExchangeAuthorizationCodeFunc != nil {
		return s.ExchangeAuthorizationCodeFunc(ctx, code, codeVerifier)
	}

	return &oauth2.Token{AccessToken: "mock-access-token"}, nil
}

func (s *MockOAuth2Service) GetUserProfile(
	ctx context.Context, accessToken string,
) (authenticator.OAuth2User, error) {
	if s.GetUserProfileFunc != nil {
		return s.GetUserProfileFunc(ctx, accessToken)
	}

	return authenticator.OAuth2User{ID: "mock-platform-id", Username: "mockuser"}, nil
}

type MockOIDCService struct {
	Name              string
	VerifyIDTokenFunc func(ctx context.Context, rawIDToken string) (authenticator.OAuth2User, error)
}

func (s *MockOIDCService) Service() string {
	return s.Name
}

func (s *MockOIDCService) VerifyIDToken(
	ctx context.Context, rawIDToken string,
) (authenticator.OAuth2User, error) {
	if s.VerifyIDTokenFunc != nil {
		return s.VerifyIDTokenFunc(ctx, rawIDToken)
	}

	return authenticator.OAuth2User{ID: "mock-oidc-id", Username: "mockuser@example.com"}, nil
}
