package middleware

import (
	"context"
	"net/http"

	"github.com/mylinked/backend/pkg/router"
	"github.com/mylinked/backend/pkg/xcontext"
)

type CookieResponse interface {
	CookieInfo(ctx context.Context) []http.Cookie
}

func HandleSetCookie() router.MiddlewareFunc {
	return func(ctx context.Context) (context.Context, error) {
		cookieResp, ok := xcontext.GetResponse(ctx).(CookieResponse)
		if ok {
			for _, cookie := range cookieResp.CookieInfo(ctx) {
				http.SetCookie(xcontext.HTTPWriter(ctx), &cookie)
			}
		}

		return nil, nil
	}
}
