package authenticator

import (
	"context"
	"fmt"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/mylinked/backend/config"
)

type oidcService struct {
	provider *oidc.Provider

	name     string
	clientID string
	idField  string
}

// NewOIDCService discovers the provider configuration from the issuer.
// Used for "sign in with" flows where the platform hands the SPA a raw ID
// token instead of an authorization code.
func NewOIDCService(ctx context.Context, cfg config.OIDCConfigs) (IOIDCService, error) {
	provider, err := oidc.NewProvider(ctx, cfg.Issuer)
	if err != nil {
		return nil, err
	}

	return &oidcService{
		provider: provider,
		name:     cfg.Name,
		clientID: cfg.ClientID,
		idField:  cfg.IDField,
	}, nil
}

func (s *oidcService) Service() string {
	return s.name
}

func (s *oidcService) VerifyIDToken(ctx context.Context, rawIDToken string) (OAuth2User, error) {
	idToken, err := s.provider.Verifier(&oidc.Config{ClientID: s.clientID}).Verify(ctx, rawIDToken)
	if err != nil {
		return OAuth2User{}, err
	}

	var profile map[string]any
	if err := idToken.Claims(&profile); err != nil {
		return OAuth2User{}, fmt.Errorf("invalid id token: %w", err)
	}

	id, ok := profile[s.idField].(string)
	if !ok {
		return OAuth2User{}, fmt.Errorf("invalid id field %s", s.idField)
	}

	username, _ := profile["email"].(string)
	if username == "" {
		username = id
	}

	return OAuth2User{ID: id, Username: username}, nil
}
