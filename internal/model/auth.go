package model

import (
	"context"
	"net/http"
	"time"

	"github.com/mylinked/backend/pkg/xcontext"
)

type RegisterRequest struct {
	Username    string `json:"username"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	DisplayName string `json:"display_name"`
}

type RegisterResponse struct {
	User User `json:"user"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

func (r LoginResponse) CookieInfo(ctx context.Context) []http.Cookie {
	cfg := xcontext.Configs(ctx)
	return []http.Cookie{
		{
			Name:     cfg.Auth.AccessToken.Name,
			Value:    r.AccessToken,
			Path:     "/",
			Expires:  time.Now().Add(cfg.Auth.AccessToken.Expiration),
			Secure:   true,
			HttpOnly: false,
		},
		{
			Name:     cfg.Auth.RefreshToken.Name,
			Value:    r.RefreshToken,
			Path:     "/",
			Expires:  time.Now().Add(cfg.Auth.RefreshToken.Expiration),
			Secure:   true,
			HttpOnly: false,
		},
	}
}

// Google sign-in with an OIDC id token issued to the frontend.
type OAuth2VerifyRequest struct {
	IDToken string `json:"id_token"`
}

type OAuth2VerifyResponse struct {
	User         User   `json:"user"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type RefreshTokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type LogoutRequest struct{}

type LogoutResponse struct{}
