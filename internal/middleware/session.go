package middleware

import (
	"context"
	"errors"

	"github.com/mylinked/backend/pkg/router"
	"github.com/mylinked/backend/pkg/xcontext"
)

type SessionResponse interface {
	SessionInfo() map[string]any
}

func HandleSaveSession() router.MiddlewareFunc {
	return func(ctx context.Context) (context.Context, error) {
		sessionResp, ok := xcontext.GetResponse(ctx).(SessionResponse)
		if !ok {
			return nil, nil
		}

		sessionInfo := sessionResp.SessionInfo()
		if sessionInfo == nil {
			return nil, errors.New("no session info")
		}

		session, err := xcontext.SessionStore(ctx).Get(xcontext.HTTPRequest(ctx))
		if err != nil {
			return nil, err
		}

		for k, v := range sessionInfo {
			session.Values[k] = v
		}

		err = xcontext.SessionStore(ctx).Save(
			xcontext.HTTPRequest(ctx), xcontext.HTTPWriter(ctx), session)
		if err != nil {
			return nil, err
		}

		return nil, nil
	}
}
