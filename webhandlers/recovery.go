package webhandlers

import (
	"context"
	"fmt"

	"github.com/stradahq/strada/web"
)

// RecoveryConfig configures the Recovery middleware behaviour.
type RecoveryConfig struct {
	// LogFunc is an optional callback invoked with the request and the
	// recovered value when a panic occurs. When nil, no logging is performed.
	LogFunc func(req *web.Request, err any)
}

// RecoveryMiddleware returns middleware that recovers from panics in
// downstream layers. When a panic occurs it converts it into an internal
// server error and optionally invokes LogFunc, so the boundary still
// writes the standard JSON error envelope.
func RecoveryMiddleware(cfg RecoveryConfig) web.Middleware {
	return web.MiddlewareFunc(func(ctx context.Context, req *web.Request, next *web.Next) (resp *web.Response, err error) {
		defer func() {
			if r := recover(); r != nil {
				if cfg.LogFunc != nil {
					cfg.LogFunc(req, r)
				}

				resp = nil
				err = web.InternalServerError(fmt.Sprintf("panic: %v", r))
			}
		}()

		return next.Run(ctx, req)
	})
}
