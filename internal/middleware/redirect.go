package middleware

import (
	"context"
	"net/http"

	"github.com/mylinked/backend/pkg/router"
	"github.com/mylinked/backend/pkg/xcontext"
)

type RedirectResponse interface {
	RedirectInfo() (int, string)
}

func HandleRedirect() router.MiddlewareFunc {
	return func(ctx context.Context) (context.Context, error) {
		redirectResp, ok := xcontext.GetResponse(ctx).(RedirectResponse)
		if !ok {
			return nil, nil
		}

		code, uri := redirectResp.RedirectInfo()
		http.Redirect(xcontext.HTTPWriter(ctx), xcontext.HTTPRequest(ctx), uri, code)

		// After rendering redirect response, do not render another response
		// to client.
		xcontext.SetResponse(ctx, nil)

		return nil, nil
	}
}
