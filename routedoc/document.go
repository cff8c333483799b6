package routedoc

import (
	"sort"
	"strings"

	"github.com/stradahq/strada/web"
)

// Info carries application metadata included in the generated Document.
type Info struct {
	// Title is the human-readable application name.
	Title string `json:"title" yaml:"title"`

	// Version is the application version string.
	Version string `json:"version" yaml:"version"`

	// Description is an optional longer description. Supports Markdown.
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// RouteEntry describes a single registered route.
type RouteEntry struct {
	// Method is the HTTP method the route is registered for.
	Method string `json:"method" yaml:"method"`

	// Path is the canonical route template, with dynamic segments in
	// ":name" form (e.g. "/users/:id").
	Path string `json:"path" yaml:"path"`

	// Params lists the names of the dynamic segments in pattern order.
	Params []string `json:"params,omitempty" yaml:"params,omitempty"`
}

// Document is the machine-readable route inventory served by Handle.
type Document struct {
	Info   Info         `json:"info" yaml:"info"`
	Routes []RouteEntry `json:"routes" yaml:"routes"`
}

// Describe walks the application's root router and assembles a Document
// listing every registered route. Entries are sorted by path, then method,
// so the output is stable across process restarts.
//
// Call Describe after all routes are registered, including mounted routers;
// routes added later are not reflected in the returned document.
func Describe(app *web.App, info Info) *Document {
	routes := app.Router().Routes()
	entries := make([]RouteEntry, 0, len(routes))

	for _, route := range routes {
		entries = append(entries, RouteEntry{
			Method: route.Method(),
			Path:   canonicalPath(route.Pattern()),
			Params: route.Pattern().ParamNames(),
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Path != entries[j].Path {
			return entries[i].Path < entries[j].Path
		}
		return entries[i].Method < entries[j].Method
	})

	return &Document{Info: info, Routes: entries}
}

// canonicalPath renders a compiled pattern back to a normalized template.
// Registration-time prefix concatenation can leave duplicate slashes in the
// raw template; rebuilding from the compiled segments removes them.
func canonicalPath(pattern *web.PathPattern) string {
	segments := pattern.Segments()
	if len(segments) == 0 {
		return "/"
	}

	var b strings.Builder
	for _, seg := range segments {
		b.WriteByte('/')
		if seg.Dynamic() {
			b.WriteByte(':')
		}
		b.WriteString(seg.Value())
	}

	return b.String()
}
