package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/mylinked/backend/internal/model"
	"github.com/mylinked/backend/pkg/errorx"
	"github.com/mylinked/backend/pkg/testutil"
	"github.com/mylinked/backend/pkg/xcontext"
	"github.com/stretchr/testify/require"
)

func TestParseToken(t *testing.T) {
	ctx := testutil.MockContext()

	token, err := xcontext.TokenEngine(ctx).Generate(
		time.Minute, model.AccessToken{ID: "user-1", Username: "alice"})
	require.NoError(t, err)

	// Bearer header.
	r := httptest.NewRequest("GET", "/", nil)
	r.Header.Set("Authorization", "Bearer "+token)
	newCtx, err := ParseToken()(xcontext.WithHTTPRequest(ctx, r))
	require.NoError(t, err)
	require.NotNil(t, newCtx)
	require.Equal(t, "user-1", xcontext.RequestUserID(newCtx))

	// Cookie fallback.
	r = httptest.NewRequest("GET", "/", nil)
	r.AddCookie(&http.Cookie{
		Name:  xcontext.Configs(ctx).Auth.AccessToken.Name,
		Value: token,
	})
	newCtx, err = ParseToken()(xcontext.WithHTTPRequest(ctx, r))
	require.NoError(t, err)
	require.NotNil(t, newCtx)
	require.Equal(t, "user-1", xcontext.RequestUserID(newCtx))

	// A garbage token is ignored rather than rejected.
	r = httptest.NewRequest("GET", "/", nil)
	r.Header.Set("Authorization", "Bearer garbage")
	newCtx, err = ParseToken()(xcontext.WithHTTPRequest(ctx, r))
	require.NoError(t, err)
	require.Nil(t, newCtx)
}

func TestAuthenticate(t *testing.T) {
	ctx := testutil.MockContext()

	_, err := Authenticate()(ctx)
	require.Error(t, err)
	require.Equal(t, errorx.Unauthenticated, err.(errorx.Error).Code)

	_, err = Authenticate()(xcontext.WithRequestUserID(ctx, "user-1"))
	require.NoError(t, err)
}
