package webhandlers

import (
	"context"
	"log/slog"
	"time"

	"github.com/stradahq/strada/web"
)

// LoggingConfig configures the Logging middleware behaviour.
type LoggingConfig struct {
	// Logger is the structured logger to write to. Defaults to
	// slog.Default when nil.
	Logger *slog.Logger

	// Level is the log level used for completed requests.
	// Defaults to slog.LevelInfo.
	Level slog.Level

	// Skip is an optional predicate; requests for which it returns true
	// are not logged. Useful for health-check endpoints.
	Skip func(req *web.Request) bool
}

// LoggingMiddleware returns middleware that logs one structured line per
// request: method, path, status, duration, and the error if the chain
// failed. Errors are logged at error level and re-propagated unchanged.
func LoggingMiddleware(cfg LoggingConfig) web.Middleware {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	level := cfg.Level
	skip := cfg.Skip

	return web.MiddlewareFunc(func(ctx context.Context, req *web.Request, next *web.Next) (*web.Response, error) {
		if skip != nil && skip(req) {
			return next.Run(ctx, req)
		}

		start := time.Now()
		resp, err := next.Run(ctx, req)
		duration := time.Since(start)

		attrs := []any{
			slog.String("method", req.Method()),
			slog.String("path", req.Path()),
			slog.Duration("duration", duration),
		}

		if err != nil {
			attrs = append(attrs, slog.Any("error", err))
			logger.ErrorContext(ctx, "request failed", attrs...)
			return nil, err
		}

		attrs = append(attrs, slog.Int("status", resp.StatusCode()))
		logger.Log(ctx, level, "request completed", attrs...)

		return resp, nil
	})
}
