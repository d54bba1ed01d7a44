package authenticator

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/mylinked/backend/config"
	"golang.org/x/oauth2"
)

// PlatformSpec is one entry of the closed registry of connectable
// platforms. Adding a platform means adding one entry here; everything
// else (handshake, persistence, routes) is shared.
type PlatformSpec struct {
	Name          string
	AuthURL       string
	TokenURL      string
	UserInfoURL   string
	IDField       string
	UsernameField string
	Scopes        []string
	UsePKCE       bool
}

var platformRegistry = []PlatformSpec{
	{
		Name:          "twitter",
		AuthURL:       "https://twitter.com/i/oauth2/authorize",
		TokenURL:      "https://api.twitter.com/2/oauth2/token",
		UserInfoURL:   "https://api.twitter.com/2/users/me",
		IDField:       "data.id",
		UsernameField: "data.username",
		Scopes:        []string{"tweet.read", "users.read", "offline.access"},
		UsePKCE:       true,
	},
	{
		Name:          "linkedin",
		AuthURL:       "https://www.linkedin.com/oauth/v2/authorization",
		TokenURL:      "https://www.linkedin.com/oauth/v2/accessToken",
		UserInfoURL:   "https://api.linkedin.com/v2/userinfo",
		IDField:       "sub",
		UsernameField: "name",
		Scopes:        []string{"openid", "profile", "email"},
	},
	{
		Name:          "instagram",
		AuthURL:       "https://api.instagram.com/oauth/authorize",
		TokenURL:      "https://api.instagram.com/oauth/access_token",
		UserInfoURL:   "https://graph.instagram.com/me?fields=id,username",
		IDField:       "id",
		UsernameField: "username",
		Scopes:        []string{"user_profile"},
	},
	{
		Name:          "github",
		AuthURL:       "https://github.com/login/oauth/authorize",
		TokenURL:      "https://github.com/login/oauth/access_token",
		UserInfoURL:   "https://api.github.com/user",
		IDField:       "id",
		UsernameField: "login",
		Scopes:        []string{"read:user"},
	},
}

func PlatformSpecs() []PlatformSpec {
	return platformRegistry
}

type platformOAuth2 struct {
	spec PlatformSpec
	cfg  oauth2.Config
}

// NewPlatformOAuth2 builds the connector for one registry entry. The
// redirect URI is pinned to this API's public endpoint so the value sent
// at authorization time always matches the one sent at exchange time.
func NewPlatformOAuth2(spec PlatformSpec, oauth2Cfg config.OAuth2Configs, serverEndpoint string) *platformOAuth2 {
	return &platformOAuth2{
		spec: spec,
		cfg: oauth2.Config{
			ClientID:     oauth2Cfg.ClientID,
			ClientSecret: oauth2Cfg.ClientSecret,
			Endpoint: oauth2.Endpoint{
				AuthURL:  spec.AuthURL,
				TokenURL: spec.TokenURL,
				// Token endpoints authenticate us with HTTP Basic.
				AuthStyle: oauth2.AuthStyleInHeader,
			},
			RedirectURL: fmt.Sprintf("%s/social/callback?platform=%s", serverEndpoint, spec.Name),
			Scopes:      spec.Scopes,
		},
	}
}

func (p *platformOAuth2) Service() string {
	return p.spec.Name
}

func (p *platformOAuth2) RequiresPKCE() bool {
	return p.spec.UsePKCE
}

func (p *platformOAuth2) AuthCodeURL(state, codeChallenge string) string {
	opts := []oauth2.AuthCodeOption{}
	if p.spec.UsePKCE {
		opts = append(opts,
			oauth2.SetAuthURLParam("code_challenge", codeChallenge),
			oauth2.SetAuthURLParam("code_challenge_method", "S256"),
		)
	}

	return p.cfg.AuthCodeURL(state, opts...)
}

func (p *platformOAuth2) ExchangeAuthorizationCode(
	ctx context.Context, code, codeVerifier string,
) (*oauth2.Token, error) {
	opts := []oauth2.AuthCodeOption{}
	if p.spec.UsePKCE {
		if codeVerifier == "" {
			return nil, fmt.Errorf("%s requires pkce but no code verifier was recorded", p.spec.Name)
		}

		opts = append(opts, oauth2.SetAuthURLParam("code_verifier", codeVerifier))
	}

	token, err := p.cfg.Exchange(ctx, code, opts...)
	if err != nil {
		return nil, err
	}

	return token, nil
}

func (p *platformOAuth2) GetUserProfile(
	ctx context.Context, accessToken string,
) (OAuth2User, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.spec.UserInfoURL, nil)
	if err != nil {
		return OAuth2User{}, err
	}

	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("Accept", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return OAuth2User{}, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return OAuth2User{}, err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return OAuth2User{}, fmt.Errorf("%s profile request got status %d", p.spec.Name, resp.StatusCode)
	}

	var profile map[string]any
	if err := json.Unmarshal(body, &profile); err != nil {
		return OAuth2User{}, err
	}

	id := lookupField(profile, p.spec.IDField)
	if id == "" {
		return OAuth2User{}, fmt.Errorf("no %s field in %s profile", p.spec.IDField, p.spec.Name)
	}

	username := lookupField(profile, p.spec.UsernameField)
	if username == "" {
		username = id
	}

	return OAuth2User{ID: id, Username: username}, nil
}

// lookupField resolves a dotted path inside a decoded JSON object and
// renders the leaf as a string. Numeric ids (github, instagram) are kept
// in their integral form.
func lookupField(profile map[string]any, path string) string {
	parts := strings.Split(path, ".")
	var current any = profile
	for _, part := range parts {
		obj, ok := current.(map[string]any)
		if !ok {
			return ""
		}

		current, ok = obj[part]
		if !ok {
			return ""
		}
	}

	switch v := current.(type) {
	case string:
		return v
	case float64:
		if v == float64(int64(v)) {
			return fmt.Sprintf("%d", int64(v))
		}
		return fmt.Sprintf("%v", v)
	default:
		return ""
	}
}
