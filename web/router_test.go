package web

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func echoHandler(body string) HandlerFunc {
	return func(_ context.Context, _ *Request) (*Response, error) {
		return Text(body), nil
	}
}

func TestRouterRegistration(t *testing.T) {
	t.Run("registers one route per method helper", func(t *testing.T) {
		r := NewRouter("")
		r.Get("/a", echoHandler("get")).
			Post("/a", echoHandler("post")).
			Put("/a", echoHandler("put")).
			Delete("/a", echoHandler("delete")).
			Patch("/a", echoHandler("patch"))

		require.Len(t, r.Routes(), 5)

		methods := []string{
			http.MethodGet, http.MethodPost, http.MethodPut,
			http.MethodDelete, http.MethodPatch,
		}
		for i, m := range methods {
			assert.Equal(t, m, r.Routes()[i].Method())
		}
	})

	t.Run("prefix is concatenated into the pattern", func(t *testing.T) {
		r := NewRouter("/api")
		r.Get("/users", echoHandler("ok"))

		_, _, found := r.FindRoute(http.MethodGet, "/api/users")
		assert.True(t, found)
		_, _, found = r.FindRoute(http.MethodGet, "/users")
		assert.False(t, found)
	})
}

func TestRouterFindRoute(t *testing.T) {
	t.Run("returns match with params", func(t *testing.T) {
		r := NewRouter("")
		r.Get("/users/:id", echoHandler("ok"))

		route, params, found := r.FindRoute(http.MethodGet, "/users/42")
		require.True(t, found)
		assert.Equal(t, http.MethodGet, route.Method())
		assert.Equal(t, map[string]string{"id": "42"}, params)
	})

	t.Run("method must match", func(t *testing.T) {
		r := NewRouter("")
		r.Get("/users/:id", echoHandler("ok"))

		_, _, found := r.FindRoute(http.MethodPost, "/users/42")
		assert.False(t, found)
	})

	t.Run("first structural match wins", func(t *testing.T) {
		r := NewRouter("")
		r.Get("/users/:id", echoHandler("dynamic"))
		r.Get("/users/all", echoHandler("static"))

		route, _, found := r.FindRoute(http.MethodGet, "/users/all")
		require.True(t, found)

		resp, err := route.Handle(context.Background(), nil)
		require.NoError(t, err)
		assert.Equal(t, "dynamic", string(resp.Body()))
	})

	t.Run("no match for unregistered path", func(t *testing.T) {
		r := NewRouter("")
		r.Get("/users", echoHandler("ok"))

		_, _, found := r.FindRoute(http.MethodGet, "/orders")
		assert.False(t, found)
	})
}

func TestRouterPathExists(t *testing.T) {
	r := NewRouter("")
	r.Get("/users/:id", echoHandler("ok"))
	r.Post("/orders", echoHandler("ok"))

	t.Run("true regardless of method", func(t *testing.T) {
		assert.True(t, r.PathExists("/users/42"))
		assert.True(t, r.PathExists("/orders"))
	})

	t.Run("false for unknown path", func(t *testing.T) {
		assert.False(t, r.PathExists("/unknown"))
	})
}

func TestRouterAllowedMethods(t *testing.T) {
	t.Run("collects methods of all matching routes, sorted", func(t *testing.T) {
		r := NewRouter("")
		r.Post("/users/:id", echoHandler("ok"))
		r.Get("/users/:id", echoHandler("ok"))
		r.Delete("/users/:id", echoHandler("ok"))

		assert.Equal(t,
			[]string{http.MethodDelete, http.MethodGet, http.MethodPost},
			r.AllowedMethods("/users/42"))
	})

	t.Run("deduplicates methods", func(t *testing.T) {
		r := NewRouter("")
		r.Get("/users/:id", echoHandler("a"))
		r.Get("/users/:name", echoHandler("b"))

		assert.Equal(t, []string{http.MethodGet}, r.AllowedMethods("/users/42"))
	})

	t.Run("empty for unknown path", func(t *testing.T) {
		r := NewRouter("")
		r.Get("/users", echoHandler("ok"))
		assert.Empty(t, r.AllowedMethods("/orders"))
	})
}

func TestRouterMount(t *testing.T) {
	t.Run("no routes or middleware are lost", func(t *testing.T) {
		parent := NewRouter("")
		parent.Get("/own", echoHandler("own"))
		parent.Use(noopMiddleware("p"))

		child := NewRouter("")
		child.Get("/a", echoHandler("a"))
		child.Post("/b", echoHandler("b"))
		child.Use(noopMiddleware("c1"), noopMiddleware("c2"))

		parent.Mount("/child", child)

		assert.Len(t, parent.Routes(), 3)
		assert.Len(t, parent.Middleware(), 3)
		assert.Empty(t, child.Routes())
		assert.Empty(t, child.Middleware())
	})

	t.Run("prefixes compose outer to inner", func(t *testing.T) {
		a := NewRouter("/a")
		b := NewRouter("/b")
		b.Get("/c", echoHandler("ok"))
		a.Mount("", b)

		_, _, found := a.FindRoute(http.MethodGet, "/a/b/c")
		assert.True(t, found)
	})

	t.Run("triple-nested mounting composes all prefixes", func(t *testing.T) {
		inner := NewRouter("/v1")
		inner.Get("/users/:id", echoHandler("ok"))

		mid := NewRouter("/api")
		mid.Mount("", inner)

		root := NewRouter("")
		root.Mount("/svc", mid)

		route, params, found := root.FindRoute(http.MethodGet, "/svc/api/v1/users/7")
		require.True(t, found)
		assert.Equal(t, "7", params["id"])
		assert.Equal(t, "/svc/api/v1/users/:id", route.Pattern().Raw())
	})

	t.Run("mount order does not change the composed path", func(t *testing.T) {
		// Mount B into A before B has acquired a route.
		b := NewRouter("/b")
		a := NewRouter("/a")
		b.Get("/c", echoHandler("ok"))
		a.Mount("", b)

		// Versus registering first, mounting after.
		b2 := NewRouter("/b")
		b2.Get("/c", echoHandler("ok"))
		a2 := NewRouter("/a")
		a2.Mount("", b2)

		_, _, found := a.FindRoute(http.MethodGet, "/a/b/c")
		assert.True(t, found)
		_, _, found = a2.FindRoute(http.MethodGet, "/a/b/c")
		assert.True(t, found)
	})

	t.Run("handler identity is preserved", func(t *testing.T) {
		child := NewRouter("")
		child.Get("/x", echoHandler("original"))

		parent := NewRouter("")
		parent.Mount("/m", child)

		route, _, found := parent.FindRoute(http.MethodGet, "/m/x")
		require.True(t, found)
		resp, err := route.Handle(context.Background(), nil)
		require.NoError(t, err)
		assert.Equal(t, "original", string(resp.Body()))
	})

	t.Run("mounting an empty child is a no-op", func(t *testing.T) {
		parent := NewRouter("")
		parent.Get("/a", echoHandler("a"))
		parent.Mount("/empty", NewRouter(""))

		assert.Len(t, parent.Routes(), 1)
		assert.Empty(t, parent.Middleware())
	})

	t.Run("child middleware is appended after parent middleware", func(t *testing.T) {
		var order []string
		parent := NewRouter("")
		parent.Use(recordMiddleware("parent", &order))

		child := NewRouter("")
		child.Use(recordMiddleware("child", &order))
		parent.Mount("", child)

		require.Len(t, parent.Middleware(), 2)
		_, err := NewNext(parent.Middleware(), echoHandler("ok")).Run(context.Background(), nil)
		require.NoError(t, err)
		assert.Equal(t, []string{"parent", "child"}, order)
	})
}

func TestRouteMatches(t *testing.T) {
	t.Run("rejects on method before pattern", func(t *testing.T) {
		route := NewRoute(http.MethodGet, "/users/:id", echoHandler("ok"))
		_, ok := route.Matches(http.MethodPost, "/users/42")
		assert.False(t, ok)
	})

	t.Run("matches method and pattern together", func(t *testing.T) {
		route := NewRoute(http.MethodGet, "/users/:id", echoHandler("ok"))
		params, ok := route.Matches(http.MethodGet, "/users/42")
		require.True(t, ok)
		assert.Equal(t, "42", params["id"])
	})
}

// noopMiddleware returns middleware that passes straight through.
func noopMiddleware(string) Middleware {
	return MiddlewareFunc(func(ctx context.Context, req *Request, next *Next) (*Response, error) {
		return next.Run(ctx, req)
	})
}

// recordMiddleware appends name to order when executed, then continues.
func recordMiddleware(name string, order *[]string) Middleware {
	return MiddlewareFunc(func(ctx context.Context, req *Request, next *Next) (*Response, error) {
		*order = append(*order, name)
		return next.Run(ctx, req)
	})
}
