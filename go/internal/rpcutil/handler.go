package rpcutil

import (
	"context"
	"net/http"
	"strings"
	"time"

	"connectrpc.com/connect"
	"github.com/rs/zerolog/log"
)

// Package is the RPC namespace every service lives under.
const Package = "castaway.v1"

// ServicePath returns the mount path of a service, e.g. "/castaway.v1.DraftService/".
func ServicePath(service string) string {
	return "/" + Package + "." + service + "/"
}

// Procedure returns the full procedure name of a method.
func Procedure(service, method string) string {
	return ServicePath(service) + method
}

// HandlerOptions are applied to every handler: the JSON codec and request logging.
func HandlerOptions(extra ...connect.HandlerOption) []connect.HandlerOption {
	opts := []connect.HandlerOption{
		connect.WithCodec(JSONCodec{}),
		connect.WithInterceptors(NewLoggingInterceptor()),
	}
	return append(opts, extra...)
}

// Router collects the unary methods of one service behind its mount path.
type Router struct {
	service string
	mux     *http.ServeMux
	opts    []connect.HandlerOption
}

func NewRouter(service string, opts ...connect.HandlerOption) *Router {
	return &Router{service: service, mux: http.NewServeMux(), opts: HandlerOptions(opts...)}
}

// Unary registers fn as method on r.
func Unary[Req, Res any](r *Router, method string, fn func(context.Context, *connect.Request[Req]) (*connect.Response[Res], error)) {
	procedure := Procedure(r.service, method)
	r.mux.Handle(procedure, connect.NewUnaryHandler(procedure, fn, r.opts...))
}

// Handler returns the mount path and handler, in the shape http.ServeMux.Handle expects.
func (r *Router) Handler() (string, http.Handler) {
	return ServicePath(r.service), r.mux
}

// NewLoggingInterceptor logs every unary call with its duration and resulting code.
func NewLoggingInterceptor() connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			start := time.Now()
			res, err := next(ctx, req)

			event := log.Info()
			if err != nil {
				code := connect.CodeOf(err)
				if code == connect.CodeInternal || code == connect.CodeUnavailable {
					event = log.Error().Err(err)
				} else {
					event = log.Warn().Err(err)
				}
				event = event.Str("code", code.String())
			}
			event.
				Str("procedure", strings.TrimPrefix(req.Spec().Procedure, "/")).
				Dur("duration", time.Since(start)).
				Msg("rpc")
			return res, err
		}
	}
}
