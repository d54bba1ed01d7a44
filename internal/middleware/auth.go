package middleware

import (
	"context"
	"strings"

	"github.com/mylinked/backend/internal/model"
	"github.com/mylinked/backend/pkg/errorx"
	"github.com/mylinked/backend/pkg/router"
	"github.com/mylinked/backend/pkg/xcontext"
)

// ParseToken resolves the request user id from a bearer token or the access
// token cookie. It never fails, authorization is decided downstream.
func ParseToken() router.MiddlewareFunc {
	return func(ctx context.Context) (context.Context, error) {
		rawToken := ""
		authorization := xcontext.HTTPRequest(ctx).Header.Get("Authorization")
		if token, ok := strings.CutPrefix(authorization, "Bearer "); ok {
			rawToken = token
		} else {
			cookie, err := xcontext.HTTPRequest(ctx).Cookie(
				xcontext.Configs(ctx).Auth.AccessToken.Name)
			if err == nil {
				rawToken = cookie.Value
			}
		}

		if rawToken == "" {
			return nil, nil
		}

		accessToken := model.AccessToken{}
		if err := xcontext.TokenEngine(ctx).Verify(rawToken, &accessToken); err != nil {
			xcontext.Logger(ctx).Debugf("Failed to verify access token: %v", err)
			return nil, nil
		}

		return xcontext.WithRequestUserID(ctx, accessToken.ID), nil
	}
}

func Authenticate() router.MiddlewareFunc {
	return func(ctx context.Context) (context.Context, error) {
		if xcontext.RequestUserID(ctx) == "" {
			return nil, errorx.New(errorx.Unauthenticated, "You need to authenticate before")
		}

		return nil, nil
	}
}
