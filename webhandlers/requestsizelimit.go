package webhandlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/stradahq/strada/web"
)

// ErrInvalidMaxSize is returned when RequestSizeLimitConfig.MaxBytes is not
// greater than zero.
var ErrInvalidMaxSize = errors.New("request size limit: max size must be greater than zero")

// RequestSizeLimitConfig configures the Request Size Limit middleware
// behaviour.
type RequestSizeLimitConfig struct {
	// MaxBytes is the maximum allowed request body size in bytes.
	// Must be greater than zero.
	MaxBytes int64
}

// RequestSizeLimitMiddleware returns middleware that rejects requests whose
// body exceeds the limit with 413 Content Too Large (RFC 9110 Section
// 15.5.14) before the rest of the chain runs.
//
// The body has already been read in full by the time the chain starts, so
// for defence against unbounded reads pair this with a transport-level cap
// such as the httpserver MaxBodyBytes setting; this middleware enforces
// tighter per-route limits below that cap.
//
// It returns ErrInvalidMaxSize if MaxBytes is not greater than zero.
func RequestSizeLimitMiddleware(cfg RequestSizeLimitConfig) (web.Middleware, error) {
	if cfg.MaxBytes <= 0 {
		return nil, ErrInvalidMaxSize
	}

	maxBytes := cfg.MaxBytes

	return web.MiddlewareFunc(func(ctx context.Context, req *web.Request, next *web.Next) (*web.Response, error) {
		if int64(len(req.Body())) > maxBytes {
			return nil, web.CustomError(
				http.StatusRequestEntityTooLarge,
				"request body too large",
			)
		}

		return next.Run(ctx, req)
	}), nil
}
