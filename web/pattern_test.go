package web

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePattern(t *testing.T) {
	t.Run("classifies static and dynamic segments", func(t *testing.T) {
		p := ParsePattern("/users/:id/posts")
		segs := p.Segments()
		require.Len(t, segs, 3)
		assert.False(t, segs[0].Dynamic())
		assert.Equal(t, "users", segs[0].Value())
		assert.True(t, segs[1].Dynamic())
		assert.Equal(t, "id", segs[1].Value())
		assert.False(t, segs[2].Dynamic())
		assert.Equal(t, "posts", segs[2].Value())
	})

	t.Run("tolerates duplicate and trailing slashes", func(t *testing.T) {
		p := ParsePattern("//users///:id/")
		require.Len(t, p.Segments(), 2)
		assert.Equal(t, "//users///:id/", p.Raw())
	})

	t.Run("empty pattern has no segments", func(t *testing.T) {
		assert.Empty(t, ParsePattern("").Segments())
		assert.Empty(t, ParsePattern("/").Segments())
	})

	t.Run("bare colon yields empty parameter name", func(t *testing.T) {
		p := ParsePattern("/a/:")
		segs := p.Segments()
		require.Len(t, segs, 2)
		assert.True(t, segs[1].Dynamic())
		assert.Empty(t, segs[1].Value())
	})

	t.Run("param names in pattern order", func(t *testing.T) {
		p := ParsePattern("/a/:x/b/:y")
		assert.Equal(t, []string{"x", "y"}, p.ParamNames())
	})
}

func TestPathPatternMatches(t *testing.T) {
	t.Run("static pattern matches exactly", func(t *testing.T) {
		p := ParsePattern("/users/all")
		params, ok := p.Matches("/users/all")
		require.True(t, ok)
		assert.Empty(t, params)
	})

	t.Run("segment count mismatch fails", func(t *testing.T) {
		p := ParsePattern("/users/:id")
		_, ok := p.Matches("/users")
		assert.False(t, ok)
		_, ok = p.Matches("/users/42/posts")
		assert.False(t, ok)
	})

	t.Run("dynamic segment binds value", func(t *testing.T) {
		p := ParsePattern("/users/:id")
		params, ok := p.Matches("/users/42")
		require.True(t, ok)
		assert.Equal(t, map[string]string{"id": "42"}, params)
	})

	t.Run("static comparison is case-sensitive", func(t *testing.T) {
		p := ParsePattern("/Users")
		_, ok := p.Matches("/users")
		assert.False(t, ok)
	})

	t.Run("candidate slashes are normalized by splitting", func(t *testing.T) {
		p := ParsePattern("/users/:id")
		params, ok := p.Matches("//users//42/")
		require.True(t, ok)
		assert.Equal(t, "42", params["id"])
	})

	t.Run("dynamic value is percent-decoded", func(t *testing.T) {
		p := ParsePattern("/files/:name")
		params, ok := p.Matches("/files/hello%20world")
		require.True(t, ok)
		assert.Equal(t, "hello world", params["name"])
	})

	t.Run("undecodable value falls back to raw segment", func(t *testing.T) {
		p := ParsePattern("/files/:name")
		params, ok := p.Matches("/files/bad%zzescape")
		require.True(t, ok)
		assert.Equal(t, "bad%zzescape", params["name"])
	})

	t.Run("duplicate parameter names keep the last value", func(t *testing.T) {
		p := ParsePattern("/:id/:id")
		params, ok := p.Matches("/first/second")
		require.True(t, ok)
		assert.Equal(t, "second", params["id"])
	})

	t.Run("mixed static and dynamic", func(t *testing.T) {
		p := ParsePattern("/api/:version/users/:id")
		params, ok := p.Matches("/api/v2/users/7")
		require.True(t, ok)
		assert.Equal(t, map[string]string{"version": "v2", "id": "7"}, params)

		_, ok = p.Matches("/api/v2/accounts/7")
		assert.False(t, ok)
	})
}
