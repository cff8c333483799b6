package webhandlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stradahq/strada/web"
)

func newTestRequest(t *testing.T, method, target string) *web.Request {
	t.Helper()
	req, err := web.NewRequest(method, target, nil, nil)
	require.NoError(t, err)
	return req
}

func runMiddleware(t *testing.T, mw web.Middleware, req *web.Request, handler web.HandlerFunc) (*web.Response, error) {
	t.Helper()
	if handler == nil {
		handler = func(_ context.Context, _ *web.Request) (*web.Response, error) {
			return web.Text("ok"), nil
		}
	}
	return web.NewNext([]web.Middleware{mw}, handler).Run(context.Background(), req)
}

func TestRequestIDMiddleware(t *testing.T) {
	t.Run("generates a UUID by default", func(t *testing.T) {
		req := newTestRequest(t, http.MethodGet, "/")
		mw := RequestIDMiddleware(RequestIDConfig{})

		resp, err := runMiddleware(t, mw, req, nil)
		require.NoError(t, err)

		id := resp.Headers().Get("X-Request-ID")
		require.NotEmpty(t, id)
		_, parseErr := uuid.Parse(id)
		assert.NoError(t, parseErr)
	})

	t.Run("downstream layers can read the ID", func(t *testing.T) {
		req := newTestRequest(t, http.MethodGet, "/")
		mw := RequestIDMiddleware(RequestIDConfig{})

		var seen string
		_, err := runMiddleware(t, mw, req, func(_ context.Context, req *web.Request) (*web.Response, error) {
			seen = RequestIDFrom(req)
			return web.Text("ok"), nil
		})
		require.NoError(t, err)
		assert.NotEmpty(t, seen)
		assert.Equal(t, req.Header().Get("X-Request-ID"), seen)
	})

	t.Run("trusts the incoming header when configured", func(t *testing.T) {
		req := newTestRequest(t, http.MethodGet, "/")
		req.Header().Set("X-Request-ID", "incoming-id")
		mw := RequestIDMiddleware(RequestIDConfig{TrustIncoming: true})

		resp, err := runMiddleware(t, mw, req, nil)
		require.NoError(t, err)
		assert.Equal(t, "incoming-id", resp.Headers().Get("X-Request-ID"))
	})

	t.Run("ignores the incoming header by default", func(t *testing.T) {
		req := newTestRequest(t, http.MethodGet, "/")
		req.Header().Set("X-Request-ID", "incoming-id")
		mw := RequestIDMiddleware(RequestIDConfig{})

		resp, err := runMiddleware(t, mw, req, nil)
		require.NoError(t, err)
		assert.NotEqual(t, "incoming-id", resp.Headers().Get("X-Request-ID"))
	})

	t.Run("custom header and generator", func(t *testing.T) {
		req := newTestRequest(t, http.MethodGet, "/")
		mw := RequestIDMiddleware(RequestIDConfig{
			HeaderName:   "X-Trace-ID",
			GenerateFunc: func(_ *web.Request) string { return "fixed" },
		})

		resp, err := runMiddleware(t, mw, req, nil)
		require.NoError(t, err)
		assert.Equal(t, "fixed", resp.Headers().Get("X-Trace-ID"))
	})

	t.Run("no ID attached without middleware", func(t *testing.T) {
		req := newTestRequest(t, http.MethodGet, "/")
		assert.Empty(t, RequestIDFrom(req))
	})

	t.Run("errors pass through untouched", func(t *testing.T) {
		req := newTestRequest(t, http.MethodGet, "/")
		mw := RequestIDMiddleware(RequestIDConfig{})

		wantErr := web.BadRequest("nope")
		_, err := runMiddleware(t, mw, req, func(_ context.Context, _ *web.Request) (*web.Response, error) {
			return nil, wantErr
		})
		assert.Same(t, wantErr, err.(*web.Error))
	})
}

func TestGenerateUUIDv7Ordering(t *testing.T) {
	a := GenerateUUIDv7(nil)
	b := GenerateUUIDv7(nil)
	assert.NotEqual(t, a, b)
}
