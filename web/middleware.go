package web

import "context"

// HandlerFunc is the terminal request handler: it consumes the request and
// produces a response or an error. Handlers may block on downstream work;
// the context carries cancellation from the surrounding request task.
type HandlerFunc func(ctx context.Context, req *Request) (*Response, error)

// Middleware intercepts a request on its way to the handler. An
// implementation may mutate the request before calling next.Run, transform
// the response or error returned by next.Run, or return its own response
// without calling next.Run at all, which short-circuits everything
// downstream.
//
// Errors returned by next.Run propagate upward unchanged unless a
// middleware inspects and recovers them; converting a downstream error
// into a successful response is the supported way to build error-handling
// middleware.
type Middleware interface {
	Handle(ctx context.Context, req *Request, next *Next) (*Response, error)
}

// MiddlewareFunc adapts a plain function to the Middleware interface.
type MiddlewareFunc func(ctx context.Context, req *Request, next *Next) (*Response, error)

// Handle implements Middleware.
func (f MiddlewareFunc) Handle(ctx context.Context, req *Request, next *Next) (*Response, error) {
	return f(ctx, req, next)
}

// Next is the continuation representing the remainder of a middleware
// chain: the middleware after the current position, followed by the
// terminal handler.
//
// A Next is single-use. Run consumes it; the cursor only ever advances,
// so each middleware in a chain executes at most once per request and
// execution order is exactly registration order.
type Next struct {
	middleware []Middleware
	index      int
	handler    HandlerFunc
	used       bool
}

// NewNext builds the continuation for a middleware chain terminating in
// handler. The middleware slice is shared by reference across positions,
// never copied.
func NewNext(middleware []Middleware, handler HandlerFunc) *Next {
	return &Next{middleware: middleware, handler: handler}
}

// Run advances the chain by one position: it invokes the middleware at the
// current cursor with a fresh continuation, or the terminal handler once
// the middleware list is exhausted. A chain constructed without a handler
// fails with ErrRouteNotFound when it runs off the end.
//
// Running a consumed Next is an error; the dispatcher never reuses a
// continuation, so hitting this indicates a middleware invoked its
// continuation twice.
func (n *Next) Run(ctx context.Context, req *Request) (*Response, error) {
	if n.used {
		return nil, InternalServerError("middleware continuation already consumed")
	}
	n.used = true

	if n.index < len(n.middleware) {
		next := &Next{
			middleware: n.middleware,
			index:      n.index + 1,
			handler:    n.handler,
		}
		return n.middleware[n.index].Handle(ctx, req, next)
	}

	if n.handler != nil {
		return n.handler(ctx, req)
	}

	return nil, ErrRouteNotFound
}
