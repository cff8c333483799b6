package webhandlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/stradahq/strada/web"
)

// ErrInvalidTimeout is returned when TimeoutConfig.Duration is not greater
// than zero.
var ErrInvalidTimeout = errors.New("timeout: duration must be greater than zero")

// TimeoutConfig configures the Timeout middleware behaviour.
type TimeoutConfig struct {
	// Duration is the maximum time allowed for the downstream chain to
	// complete. Must be greater than zero.
	Duration time.Duration

	// Message is the error message returned when the deadline is
	// exceeded. When empty, a default message is used.
	Message string
}

// TimeoutMiddleware returns middleware that bounds downstream execution
// time with a context deadline. Cancellation is cooperative: the chain is
// interrupted at its next suspension point, and the deadline failure is
// converted into a 503-class error.
//
// It returns ErrInvalidTimeout if Duration is not greater than zero.
func TimeoutMiddleware(cfg TimeoutConfig) (web.Middleware, error) {
	if cfg.Duration <= 0 {
		return nil, ErrInvalidTimeout
	}

	message := cfg.Message
	if message == "" {
		message = "request timed out"
	}

	duration := cfg.Duration

	return web.MiddlewareFunc(func(ctx context.Context, req *web.Request, next *web.Next) (*web.Response, error) {
		ctx, cancel := context.WithTimeout(ctx, duration)
		defer cancel()

		resp, err := next.Run(ctx, req)
		if err != nil && errors.Is(err, context.DeadlineExceeded) {
			return nil, web.CustomError(http.StatusServiceUnavailable, message)
		}

		return resp, err
	}), nil
}
