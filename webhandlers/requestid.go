package webhandlers

import (
	"context"

	"github.com/google/uuid"
	"github.com/stradahq/strada/web"
)

type requestIDKey struct{}

// RequestIDFrom returns the request ID attached to the request by
// RequestIDMiddleware. Returns an empty string if no ID is present.
func RequestIDFrom(req *web.Request) string {
	if id, ok := req.Value(requestIDKey{}).(string); ok {
		return id
	}

	return ""
}

// RequestIDConfig configures the Request ID middleware behaviour.
type RequestIDConfig struct {
	// HeaderName overrides the header used to propagate the request ID.
	// Defaults to "X-Request-ID" when empty.
	HeaderName string

	// GenerateFunc is an optional callback that returns a new unique ID.
	// It receives the current request, allowing ID generation based on
	// request data. Defaults to GenerateUUIDv4.
	GenerateFunc func(req *web.Request) string

	// TrustIncoming, when true, reuses an existing request ID from the
	// incoming request header instead of generating a new one.
	TrustIncoming bool
}

// RequestIDMiddleware returns middleware that generates or propagates a
// request ID header. The ID is attached to the request (for downstream
// layers) and set on the response header (for the caller).
func RequestIDMiddleware(cfg RequestIDConfig) web.Middleware {
	headerName := cfg.HeaderName
	if headerName == "" {
		headerName = "X-Request-ID"
	}

	generate := cfg.GenerateFunc
	if generate == nil {
		generate = GenerateUUIDv4
	}

	trustIncoming := cfg.TrustIncoming

	return web.MiddlewareFunc(func(ctx context.Context, req *web.Request, next *web.Next) (*web.Response, error) {
		id := ""
		if trustIncoming {
			id = req.Header().Get(headerName)
		}

		if id == "" {
			id = generate(req)
		}

		if id != "" {
			req.Header().Set(headerName, id)
			req.SetValue(requestIDKey{}, id)
		}

		resp, err := next.Run(ctx, req)
		if err != nil {
			return nil, err
		}

		if id != "" {
			resp.Header(headerName, id)
		}

		return resp, nil
	})
}

// GenerateUUIDv4 returns a new UUID v4 string.
//
// Spec reference: https://www.rfc-editor.org/rfc/rfc9562#section-5.4
func GenerateUUIDv4(_ *web.Request) string {
	return uuid.New().String()
}

// GenerateUUIDv7 returns a new UUID v7 string. UUIDs are time-ordered:
// IDs generated later sort lexicographically after earlier ones.
//
// Spec reference: https://www.rfc-editor.org/rfc/rfc9562#section-5.7
func GenerateUUIDv7(_ *web.Request) string {
	return uuid.Must(uuid.NewV7()).String()
}
