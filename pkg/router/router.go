package router

import (
	"context"
	"net/http"

	"github.com/mylinked/backend/pkg/xcontext"
	"github.com/rs/cors"
)

type HandlerFunc[Request, Response any] func(ctx context.Context, req *Request) (*Response, error)

// MiddlewareFunc runs before the handler and may derive a new context
// (authentication stores the request user id this way). Returning an error
// aborts the request.
type MiddlewareFunc func(ctx context.Context) (context.Context, error)

// CloserFunc runs after everything else, whether or not the handler
// failed. Response rendering and request logging are closers.
type CloserFunc func(ctx context.Context)

type Router struct {
	mux *http.ServeMux
	ctx context.Context

	befores []MiddlewareFunc
	afters  []MiddlewareFunc
	closers []CloserFunc
}

// New creates a root router. The given context carries the application
// objects (configs, logger, database, token engine, session store) and is
// the parent of every request context.
func New(ctx context.Context) *Router {
	return &Router{mux: http.NewServeMux(), ctx: ctx}
}

// Branch returns a router sharing the same mux but with an independent
// middleware chain, so route groups can differ in authentication.
func (r *Router) Branch() *Router {
	branch := &Router{mux: r.mux, ctx: r.ctx}
	branch.befores = append(branch.befores, r.befores...)
	branch.afters = append(branch.afters, r.afters...)
	branch.closers = append(branch.closers, r.closers...)
	return branch
}

func (r *Router) Before(f MiddlewareFunc) {
	r.befores = append(r.befores, f)
}

func (r *Router) After(f MiddlewareFunc) {
	r.afters = append(r.afters, f)
}

func (r *Router) AddCloser(f CloserFunc) {
	r.closers = append(r.closers, f)
}

func (r *Router) Handler() http.Handler {
	cfg := xcontext.Configs(r.ctx).ApiServer
	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "Authorization"},
		AllowCredentials: true,
	})

	return c.Handler(r.mux)
}

func GET[Request, Response any](r *Router, pattern string, handler HandlerFunc[Request, Response]) {
	r.mux.HandleFunc(pattern, wrapHandler(r, http.MethodGet, handler))
}

func POST[Request, Response any](r *Router, pattern string, handler HandlerFunc[Request, Response]) {
	r.mux.HandleFunc(pattern, wrapHandler(r, http.MethodPost, handler))
}

func DELETE[Request, Response any](r *Router, pattern string, handler HandlerFunc[Request, Response]) {
	r.mux.HandleFunc(pattern, wrapHandler(r, http.MethodDelete, handler))
}
