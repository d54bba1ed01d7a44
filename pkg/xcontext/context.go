package xcontext

import (
	"context"
	"net/http"

	"github.com/mylinked/backend/config"
	"github.com/mylinked/backend/pkg/authenticator"
	"github.com/mylinked/backend/pkg/logger"
	"github.com/mylinked/backend/pkg/session"
	"gorm.io/gorm"
)

type (
	configsKey      struct{}
	loggerKey       struct{}
	dbKey           struct{}
	tokenEngineKey  struct{}
	sessionStoreKey struct{}
	httpRequestKey  struct{}
	httpWriterKey   struct{}
	requestUserKey  struct{}
	responseKey     struct{}
	errorKey        struct{}
	httpClientKey   struct{}
)

func WithHTTPClient(ctx context.Context, client *http.Client) context.Context {
	return context.WithValue(ctx, httpClientKey{}, client)
}

// HTTPClient returns the outbound client, falling back to the default
// one. Tests inject a client whose transport talks to a local stub.
func HTTPClient(ctx context.Context) *http.Client {
	if client, ok := ctx.Value(httpClientKey{}).(*http.Client); ok {
		return client
	}

	return http.DefaultClient
}

func WithConfigs(ctx context.Context, cfg config.Configs) context.Context {
	return context.WithValue(ctx, configsKey{}, cfg)
}

func Configs(ctx context.Context) config.Configs {
	cfg, ok := ctx.Value(configsKey{}).(config.Configs)
	if !ok {
		panic("no configs in context")
	}

	return cfg
}

func WithLogger(ctx context.Context, l logger.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, l)
}

func Logger(ctx context.Context) logger.Logger {
	l, ok := ctx.Value(loggerKey{}).(logger.Logger)
	if !ok {
		panic("no logger in context")
	}

	return l
}

func WithDB(ctx context.Context, db *gorm.DB) context.Context {
	return context.WithValue(ctx, dbKey{}, db)
}

func WithTokenEngine(ctx context.Context, engine *authenticator.TokenEngine) context.Context {
	return context.WithValue(ctx, tokenEngineKey{}, engine)
}

func TokenEngine(ctx context.Context) *authenticator.TokenEngine {
	engine, ok := ctx.Value(tokenEngineKey{}).(*authenticator.TokenEngine)
	if !ok {
		panic("no token engine in context")
	}

	return engine
}

func WithSessionStore(ctx context.Context, store *session.Store) context.Context {
	return context.WithValue(ctx, sessionStoreKey{}, store)
}

func SessionStore(ctx context.Context) *session.Store {
	store, ok := ctx.Value(sessionStoreKey{}).(*session.Store)
	if !ok {
		panic("no session store in context")
	}

	return store
}

func WithHTTPRequest(ctx context.Context, r *http.Request) context.Context {
	return context.WithValue(ctx, httpRequestKey{}, r)
}

func HTTPRequest(ctx context.Context) *http.Request {
	r, _ := ctx.Value(httpRequestKey{}).(*http.Request)
	return r
}

func WithHTTPWriter(ctx context.Context, w http.ResponseWriter) context.Context {
	return context.WithValue(ctx, httpWriterKey{}, w)
}

func HTTPWriter(ctx context.Context) http.ResponseWriter {
	w, _ := ctx.Value(httpWriterKey{}).(http.ResponseWriter)
	return w
}

func WithRequestUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, requestUserKey{}, userID)
}

// RequestUserID returns the authenticated user of the current request, or
// an empty string for anonymous requests.
func RequestUserID(ctx context.Context) string {
	id, _ := ctx.Value(requestUserKey{}).(string)
	return id
}

// SetResponse and SetError hand values to After middlewares and closers
// through a request-scoped holder, so handlers can keep returning plain
// values while redirect/cookie/session middlewares still observe them.
type responseHolder struct {
	resp any
	err  error
}

func WithResponseHolder(ctx context.Context) context.Context {
	return context.WithValue(ctx, responseKey{}, &responseHolder{})
}

func SetResponse(ctx context.Context, resp any) {
	if holder, ok := ctx.Value(responseKey{}).(*responseHolder); ok {
		holder.resp = resp
	}
}

func GetResponse(ctx context.Context) any {
	if holder, ok := ctx.Value(responseKey{}).(*responseHolder); ok {
		return holder.resp
	}

	return nil
}

func SetError(ctx context.Context, err error) {
	if holder, ok := ctx.Value(responseKey{}).(*responseHolder); ok {
		holder.err = err
	}
}

func GetError(ctx context.Context) error {
	if holder, ok := ctx.Value(responseKey{}).(*responseHolder); ok {
		return holder.err
	}

	return nil
}
