package web

import "context"

// Route binds one HTTP method and one path pattern to a handler.
//
// Routes are immutable after creation and cheap to copy: the handler is
// shared by reference, so rewriting a route's pattern during mounting
// preserves handler identity.
type Route struct {
	method  string
	pattern *PathPattern
	handler HandlerFunc
}

// NewRoute builds a route from a method, an uncompiled path template, and
// a handler.
func NewRoute(method, pattern string, handler HandlerFunc) *Route {
	return &Route{
		method:  method,
		pattern: ParsePattern(pattern),
		handler: handler,
	}
}

// Method returns the HTTP method the route is registered for.
func (r *Route) Method() string {
	return r.method
}

// Pattern returns the compiled path pattern.
func (r *Route) Pattern() *PathPattern {
	return r.pattern
}

// Matches matches the route against a method and path. The method check
// comes first so pattern matching is skipped entirely on a method
// mismatch.
func (r *Route) Matches(method, path string) (map[string]string, bool) {
	if r.method != method {
		return nil, false
	}
	return r.pattern.Matches(path)
}

// Handle invokes the bound handler. It performs no parameter injection;
// the dispatcher writes path parameter bindings into the request before
// calling Handle.
func (r *Route) Handle(ctx context.Context, req *Request) (*Response, error) {
	return r.handler(ctx, req)
}
