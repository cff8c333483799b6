package webhandlers

import (
	"context"
	"errors"
	"mime"
	"net/http"
	"strings"

	"github.com/stradahq/strada/web"
)

// ErrNoAllowedTypes is returned when ContentTypeCheckConfig.AllowedTypes is
// empty.
var ErrNoAllowedTypes = errors.New("content type check: at least one allowed content type is required")

// ContentTypeCheckConfig configures the Content-Type Check middleware
// behaviour.
type ContentTypeCheckConfig struct {
	// AllowedTypes is the set of acceptable Content-Type values.
	// Matching is case-insensitive and ignores parameters
	// (e.g. "application/json" matches "application/json; charset=utf-8").
	// Required; at least one must be provided.
	AllowedTypes []string

	// Methods is the set of HTTP methods that require Content-Type
	// validation. When nil, defaults to POST, PUT, PATCH.
	Methods []string
}

// defaultCheckedMethods is the set of HTTP methods that require
// Content-Type validation when Methods is nil.
var defaultCheckedMethods = []string{
	http.MethodPost,
	http.MethodPut,
	http.MethodPatch,
}

// ContentTypeCheckMiddleware returns middleware that validates the
// Content-Type header on requests with matching methods. It short-circuits
// with a 415-class error when the Content-Type is missing or does not
// match any of the allowed types.
//
// It returns ErrNoAllowedTypes if AllowedTypes is empty.
func ContentTypeCheckMiddleware(cfg ContentTypeCheckConfig) (web.Middleware, error) {
	if len(cfg.AllowedTypes) == 0 {
		return nil, ErrNoAllowedTypes
	}

	methods := cfg.Methods
	if methods == nil {
		methods = defaultCheckedMethods
	}

	methodSet := make(map[string]struct{}, len(methods))
	for _, m := range methods {
		methodSet[m] = struct{}{}
	}

	allowedSet := make(map[string]struct{}, len(cfg.AllowedTypes))
	for _, t := range cfg.AllowedTypes {
		allowedSet[strings.ToLower(strings.TrimSpace(t))] = struct{}{}
	}

	return web.MiddlewareFunc(func(ctx context.Context, req *web.Request, next *web.Next) (*web.Response, error) {
		if _, check := methodSet[req.Method()]; check {
			ct := req.Header().Get("Content-Type")
			if ct == "" {
				return nil, unsupportedMediaType()
			}

			mediaType, _, err := mime.ParseMediaType(ct)
			if err != nil {
				return nil, unsupportedMediaType()
			}

			if _, ok := allowedSet[strings.ToLower(mediaType)]; !ok {
				return nil, unsupportedMediaType()
			}
		}

		return next.Run(ctx, req)
	}), nil
}

func unsupportedMediaType() *web.Error {
	return web.CustomError(
		http.StatusUnsupportedMediaType,
		http.StatusText(http.StatusUnsupportedMediaType),
	)
}
