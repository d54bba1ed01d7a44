package domain

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/mylinked/backend/internal/entity"
	"github.com/mylinked/backend/internal/model"
	"github.com/mylinked/backend/internal/repository"
	"github.com/mylinked/backend/pkg/authenticator"
	"github.com/mylinked/backend/pkg/crypto"
	"github.com/mylinked/backend/pkg/errorx"
	"github.com/mylinked/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type SocialDomain interface {
	Connect(context.Context, *model.ConnectSocialRequest) (*model.ConnectSocialResponse, error)
	Callback(context.Context, *model.SocialCallbackRequest) (*model.SocialCallbackResponse, error)
	GetConnections(context.Context, *model.GetSocialConnectionsRequest) (*model.GetSocialConnectionsResponse, error)
	Disconnect(context.Context, *model.DisconnectSocialRequest) (*model.DisconnectSocialResponse, error)
}

type socialDomain struct {
	connectionRepo repository.SocialConnectionRepository
	oauthStateRepo repository.OAuthStateRepository
	oauth2Services map[string]authenticator.IOAuth2Service
}

func NewSocialDomain(
	connectionRepo repository.SocialConnectionRepository,
	oauthStateRepo repository.OAuthStateRepository,
	oauth2Services []authenticator.IOAuth2Service,
) *socialDomain {
	serviceMap := map[string]authenticator.IOAuth2Service{}
	for _, s := range oauth2Services {
		serviceMap[s.Service()] = s
	}

	return &socialDomain{
		connectionRepo: connectionRepo,
		oauthStateRepo: oauthStateRepo,
		oauth2Services: serviceMap,
	}
}

func (d *socialDomain) Connect(
	ctx context.Context, req *model.ConnectSocialRequest,
) (*model.ConnectSocialResponse, error) {
	service, ok := d.oauth2Services[req.Platform]
	if !ok {
		return nil, errorx.New(errorx.NotFound, "Unsupported platform %s", req.Platform)
	}

	state, err := crypto.GenerateRandomString()
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot generate state: %v", err)
		return nil, errorx.Unknown
	}

	codeVerifier := sql.NullString{}
	codeChallenge := ""
	if service.RequiresPKCE() {
		verifier, err := crypto.GenerateRandomString()
		if err != nil {
			xcontext.Logger(ctx).Errorf("Cannot generate code verifier: %v", err)
			return nil, errorx.Unknown
		}

		codeVerifier = sql.NullString{Valid: true, String: verifier}
		codeChallenge = crypto.S256Challenge(verifier)
	}

	now := time.Now()
	err = d.oauthStateRepo.Create(ctx, &entity.OAuthState{
		State:        state,
		UserID:       xcontext.RequestUserID(ctx),
		Platform:     req.Platform,
		CodeVerifier: codeVerifier,
		CreatedAt:    now,
		ExpiresAt:    now.Add(xcontext.Configs(ctx).Social.StateExpiration),
	})
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot store oauth state: %v", err)
		return nil, errorx.Unknown
	}

	return &model.ConnectSocialResponse{
		RedirectURL: service.AuthCodeURL(state, codeChallenge),
		State:       state,
	}, nil
}

// Callback lands on a browser redirect from the platform, so every failure
// degrades to a redirect carrying a short error code rather than a JSON
// error envelope.
func (d *socialDomain) Callback(
	ctx context.Context, req *model.SocialCallbackRequest,
) (*model.SocialCallbackResponse, error) {
	if req.Error != "" {
		xcontext.Logger(ctx).Infof("Platform %s denied the grant: %s", req.Platform, req.Error)
		return d.callbackError(ctx, "access_denied"), nil
	}

	if req.Code == "" || req.State == "" {
		return d.callbackError(ctx, "invalid_request"), nil
	}

	state, err := d.oauthStateRepo.Consume(ctx, req.State)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			xcontext.Logger(ctx).Errorf("Cannot consume oauth state: %v", err)
		}

		return d.callbackError(ctx, "invalid_state"), nil
	}

	if time.Now().After(state.ExpiresAt) {
		return d.callbackError(ctx, "expired_state"), nil
	}

	if state.Platform != req.Platform {
		return d.callbackError(ctx, "invalid_state"), nil
	}

	// The session echo is only checked when present. The redirect may land
	// on another instance with a fresh session, where the durable row is
	// the source of truth.
	if req.SessionState != "" && !crypto.ConstantTimeEqual(req.SessionState, req.State) {
		return d.callbackError(ctx, "invalid_state"), nil
	}

	service, ok := d.oauth2Services[req.Platform]
	if !ok {
		return d.callbackError(ctx, "invalid_request"), nil
	}

	token, err := service.ExchangeAuthorizationCode(ctx, req.Code, state.CodeVerifier.String)
	if err != nil {
		xcontext.Logger(ctx).Warnf("Cannot exchange authorization code: %v", err)
		return d.callbackError(ctx, "exchange_failed"), nil
	}

	profile, err := service.GetUserProfile(ctx, token.AccessToken)
	if err != nil {
		xcontext.Logger(ctx).Warnf("Cannot fetch platform profile: %v", err)
		return d.callbackError(ctx, "profile_failed"), nil
	}

	refreshToken := sql.NullString{}
	if token.RefreshToken != "" {
		refreshToken = sql.NullString{Valid: true, String: token.RefreshToken}
	}

	expiresAt := sql.NullTime{}
	if !token.Expiry.IsZero() {
		expiresAt = sql.NullTime{Valid: true, Time: token.Expiry}
	}

	err = d.connectionRepo.Upsert(ctx, &entity.SocialConnection{
		UserID:           state.UserID,
		Platform:         req.Platform,
		AccessToken:      token.AccessToken,
		RefreshToken:     refreshToken,
		ExpiresAt:        expiresAt,
		PlatformUserID:   profile.ID,
		PlatformUsername: profile.Username,
		ConnectedAt:      time.Now(),
	})
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot upsert social connection: %v", err)
		return d.callbackError(ctx, "storage_failed"), nil
	}

	return &model.SocialCallbackResponse{
		RedirectURL: fmt.Sprintf("%s/settings?connected=%s",
			xcontext.Configs(ctx).ApiServer.FrontendEndpoint, req.Platform),
	}, nil
}

func (d *socialDomain) GetConnections(
	ctx context.Context, _ *model.GetSocialConnectionsRequest,
) (*model.GetSocialConnectionsResponse, error) {
	connections, err := d.connectionRepo.GetByUserID(ctx, xcontext.RequestUserID(ctx))
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get social connections: %v", err)
		return nil, errorx.Unknown
	}

	converted := []model.SocialConnection{}
	for i := range connections {
		converted = append(converted, model.ConvertSocialConnection(&connections[i]))
	}

	return &model.GetSocialConnectionsResponse{Connections: converted}, nil
}

func (d *socialDomain) Disconnect(
	ctx context.Context, req *model.DisconnectSocialRequest,
) (*model.DisconnectSocialResponse, error) {
	if _, ok := d.oauth2Services[req.Platform]; !ok {
		return nil, errorx.New(errorx.NotFound, "Unsupported platform %s", req.Platform)
	}

	err := d.connectionRepo.Delete(ctx, xcontext.RequestUserID(ctx), req.Platform)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot delete social connection: %v", err)
		return nil, errorx.Unknown
	}

	return &model.DisconnectSocialResponse{}, nil
}

func (d *socialDomain) callbackError(ctx context.Context, code string) *model.SocialCallbackResponse {
	return &model.SocialCallbackResponse{
		RedirectURL: fmt.Sprintf("%s/settings?error=%s",
			xcontext.Configs(ctx).ApiServer.FrontendEndpoint, code),
	}
}
