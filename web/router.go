package web

import (
	"net/http"
	"sort"
)

// Router is an ordered collection of routes plus a middleware list and a
// string prefix applied to every registered path.
//
// Routers are assembled during the single-threaded configuration phase and
// treated as immutable, read-only state for the lifetime of the server;
// no locking is needed to share them across concurrent requests.
type Router struct {
	prefix     string
	routes     []*Route
	middleware []Middleware
}

// NewRouter returns a router whose registered paths are all prefixed with
// prefix. The prefix is plain string concatenation; pattern parsing
// tolerates any duplicate slashes it produces.
func NewRouter(prefix string) *Router {
	return &Router{prefix: prefix}
}

// Prefix returns the router's path prefix.
func (r *Router) Prefix() string {
	return r.prefix
}

// Routes returns the registered routes in registration order.
func (r *Router) Routes() []*Route {
	return r.routes
}

// Middleware returns the router's middleware in registration order.
func (r *Router) Middleware() []Middleware {
	return r.middleware
}

// Handle registers a route for the given method under prefix+path.
// It returns the router for fluent chaining.
func (r *Router) Handle(method, path string, handler HandlerFunc) *Router {
	r.routes = append(r.routes, NewRoute(method, r.prefix+path, handler))
	return r
}

// Get registers a GET route.
func (r *Router) Get(path string, handler HandlerFunc) *Router {
	return r.Handle(http.MethodGet, path, handler)
}

// Post registers a POST route.
func (r *Router) Post(path string, handler HandlerFunc) *Router {
	return r.Handle(http.MethodPost, path, handler)
}

// Put registers a PUT route.
func (r *Router) Put(path string, handler HandlerFunc) *Router {
	return r.Handle(http.MethodPut, path, handler)
}

// Delete registers a DELETE route.
func (r *Router) Delete(path string, handler HandlerFunc) *Router {
	return r.Handle(http.MethodDelete, path, handler)
}

// Patch registers a PATCH route.
func (r *Router) Patch(path string, handler HandlerFunc) *Router {
	return r.Handle(http.MethodPatch, path, handler)
}

// Use appends middleware to the router's chain.
func (r *Router) Use(middleware ...Middleware) *Router {
	r.middleware = append(r.middleware, middleware...)
	return r
}

// FindRoute scans routes in registration order and returns the first one
// matching both method and path, together with the extracted path
// parameters. Full (method, path) combinations are unique in well-formed
// applications, so first-match is effectively unique-match.
func (r *Router) FindRoute(method, path string) (*Route, map[string]string, bool) {
	for _, route := range r.routes {
		if params, ok := route.Matches(method, path); ok {
			return route, params, true
		}
	}
	return nil, nil, false
}

// PathExists reports whether any route's pattern matches the path,
// regardless of method. The dispatcher uses this to distinguish
// 404 Not Found from 405 Method Not Allowed.
func (r *Router) PathExists(path string) bool {
	for _, route := range r.routes {
		if _, ok := route.pattern.Matches(path); ok {
			return true
		}
	}
	return false
}

// AllowedMethods returns the methods of every route whose pattern matches
// the path, deduplicated and sorted. Used to build the Allow set carried
// by a 405 response (RFC 9110 Section 15.5.6).
func (r *Router) AllowedMethods(path string) []string {
	seen := make(map[string]struct{})
	var allowed []string

	for _, route := range r.routes {
		if _, ok := route.pattern.Matches(path); !ok {
			continue
		}
		if _, dup := seen[route.method]; dup {
			continue
		}
		seen[route.method] = struct{}{}
		allowed = append(allowed, route.method)
	}

	sort.Strings(allowed)
	return allowed
}

// Mount merges child's routes and middleware into the router under the
// combined prefix r.prefix + prefix. Each child route keeps its original
// handler; only its pattern is rebuilt, as combined prefix + the child
// route's raw template, and reparsed. Child middleware is appended after
// any middleware already on the router, preserving order.
//
// Because every Mount call fully resolves prefixes at merge time, nested
// mounting composes prefixes outer to inner regardless of the order the
// mounts happen in. Mounting an empty child is a no-op. The child's
// routes and middleware are consumed by the merge.
func (r *Router) Mount(prefix string, child *Router) *Router {
	combined := r.prefix + prefix

	for _, route := range child.routes {
		r.routes = append(r.routes, &Route{
			method:  route.method,
			pattern: ParsePattern(combined + route.pattern.Raw()),
			handler: route.handler,
		})
	}

	r.middleware = append(r.middleware, child.middleware...)

	child.routes = nil
	child.middleware = nil

	return r
}
