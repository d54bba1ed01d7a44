package router

import (
	"net/http"

	"github.com/mylinked/backend/pkg/errorx"
	"github.com/mylinked/backend/pkg/xcontext"
)

func wrapHandler[Request, Response any](
	router *Router,
	method string,
	handler HandlerFunc[Request, Response],
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := xcontext.WithHTTPRequest(router.ctx, r)
		ctx = xcontext.WithHTTPWriter(ctx, w)
		ctx = xcontext.WithResponseHolder(ctx)

		func() {
			if r.Method != method {
				xcontext.SetError(ctx, errorx.New(errorx.BadRequest,
					"Not supported method %s for %s", r.Method, r.URL.Path))
				return
			}

			for _, before := range router.befores {
				newCtx, err := before(ctx)
				if err != nil {
					xcontext.SetError(ctx, err)
					return
				}

				if newCtx != nil {
					ctx = newCtx
				}
			}

			var err error
			var req Request
			switch method {
			case http.MethodGet, http.MethodDelete:
				err = bindQuery(r, &req)
			case http.MethodPost:
				err = bindJSON(r, &req)
			}
			if err != nil {
				xcontext.SetError(ctx, errorx.New(errorx.BadRequest, "Cannot bind the request"))
				return
			}

			if err := bindSession(ctx, &req); err != nil {
				xcontext.Logger(ctx).Warnf("Cannot bind the session: %v", err)
			}

			resp, err := handler(ctx, &req)
			if err != nil {
				xcontext.SetError(ctx, err)
				return
			}

			xcontext.SetResponse(ctx, resp)

			for _, after := range router.afters {
				newCtx, err := after(ctx)
				if err != nil {
					xcontext.SetError(ctx, err)
					return
				}

				if newCtx != nil {
					ctx = newCtx
				}
			}
		}()

		for _, closer := range router.closers {
			closer(ctx)
		}
	}
}
