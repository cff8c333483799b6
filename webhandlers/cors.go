package webhandlers

import (
	"context"
	"net/http"
	"slices"
	"strconv"
	"strings"

	"github.com/stradahq/strada/web"
)

// CORSConfig configures the CORS middleware behaviour.
//
// Spec references:
//   - CORS protocol: https://fetch.spec.whatwg.org/#http-cors-protocol
//   - Web Origin:    https://www.rfc-editor.org/rfc/rfc6454
type CORSConfig struct {
	// AllowedOrigins is a list of exact origin strings, or "*" for any
	// origin. Defaults to ["*"] when empty.
	AllowedOrigins []string

	// AllowedMethods is the set of methods advertised in preflight
	// responses. Defaults to GET, POST, PUT, DELETE, PATCH.
	AllowedMethods []string

	// AllowedHeaders lists the headers the client may send in the actual
	// request. When empty the middleware reflects the
	// Access-Control-Request-Headers value from the preflight request.
	AllowedHeaders []string

	// MaxAge is the duration in seconds a preflight result may be cached.
	// When zero the header is omitted.
	MaxAge int
}

// defaultCORSMethods is advertised when AllowedMethods is empty.
var defaultCORSMethods = []string{
	http.MethodGet, http.MethodPost, http.MethodPut,
	http.MethodDelete, http.MethodPatch,
}

// CORSMiddleware returns middleware that sets CORS response headers and
// answers preflight OPTIONS requests by short-circuiting the chain with
// 204 No Content. Requests without an Origin header, or with an origin
// that is not allowed, pass through untouched.
//
// Dispatch resolves the route before the middleware chain runs, so a
// preflight OPTIONS request only reaches this middleware when an OPTIONS
// route is registered for the path. Register one per cross-origin path,
// for example:
//
//	app.Router().Handle(http.MethodOptions, "/users", handler)
//
// The handler itself never runs for preflights; the middleware answers
// first.
func CORSMiddleware(cfg CORSConfig) web.Middleware {
	origins := cfg.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	methods := cfg.AllowedMethods
	if len(methods) == 0 {
		methods = defaultCORSMethods
	}
	allowMethods := strings.Join(methods, ", ")

	allowHeaders := strings.Join(cfg.AllowedHeaders, ", ")
	wildcard := slices.Contains(origins, "*")
	maxAge := cfg.MaxAge

	return web.MiddlewareFunc(func(ctx context.Context, req *web.Request, next *web.Next) (*web.Response, error) {
		origin := req.Header().Get("Origin")
		if origin == "" || (!wildcard && !slices.Contains(origins, origin)) {
			return next.Run(ctx, req)
		}

		allowOrigin := origin
		if wildcard {
			allowOrigin = "*"
		}

		if req.Method() == http.MethodOptions && req.Header().Get("Access-Control-Request-Method") != "" {
			resp := web.NewResponse().
				Status(http.StatusNoContent).
				Header("Access-Control-Allow-Origin", allowOrigin).
				Header("Access-Control-Allow-Methods", allowMethods)

			headers := allowHeaders
			if headers == "" {
				headers = req.Header().Get("Access-Control-Request-Headers")
			}
			if headers != "" {
				resp.Header("Access-Control-Allow-Headers", headers)
			}

			if maxAge > 0 {
				resp.Header("Access-Control-Max-Age", strconv.Itoa(maxAge))
			}

			if !wildcard {
				resp.Header("Vary", "Origin")
			}

			return resp, nil
		}

		resp, err := next.Run(ctx, req)
		if err != nil {
			return nil, err
		}

		resp.Header("Access-Control-Allow-Origin", allowOrigin)
		if !wildcard {
			resp.Header("Vary", "Origin")
		}

		return resp, nil
	})
}
