package web

import "context"

// App is the application dispatcher: one root router plus a global
// middleware list. Configure it during setup, then hand requests to
// HandleRequest from the transport adapter.
type App struct {
	router     *Router
	middleware []Middleware
}

// NewApp returns an application with an empty root router.
func NewApp() *App {
	return &App{router: NewRouter("")}
}

// Get registers a GET route on the root router.
func (a *App) Get(path string, handler HandlerFunc) *App {
	a.router.Get(path, handler)
	return a
}

// Post registers a POST route on the root router.
func (a *App) Post(path string, handler HandlerFunc) *App {
	a.router.Post(path, handler)
	return a
}

// Put registers a PUT route on the root router.
func (a *App) Put(path string, handler HandlerFunc) *App {
	a.router.Put(path, handler)
	return a
}

// Delete registers a DELETE route on the root router.
func (a *App) Delete(path string, handler HandlerFunc) *App {
	a.router.Delete(path, handler)
	return a
}

// Patch registers a PATCH route on the root router.
func (a *App) Patch(path string, handler HandlerFunc) *App {
	a.router.Patch(path, handler)
	return a
}

// Use appends global middleware, executed for every matched route in
// registration order, before any middleware merged into the root router
// by mounting.
func (a *App) Use(middleware ...Middleware) *App {
	a.middleware = append(a.middleware, middleware...)
	return a
}

// Mount merges a router into the root router under the given prefix.
func (a *App) Mount(prefix string, router *Router) *App {
	a.router.Mount(prefix, router)
	return a
}

// Router returns the root router.
func (a *App) Router() *Router {
	return a.router
}

// Middleware returns the global middleware list.
func (a *App) Middleware() []Middleware {
	return a.middleware
}

// HandleRequest routes the request and executes the matched handler behind
// the full middleware chain: global middleware first, then middleware
// merged into the root router, then the handler.
//
// If no route matches, it fails with MethodNotAllowed when some pattern
// matches the path under a different method, and ErrRouteNotFound
// otherwise. Routing errors are produced here, never by handlers; errors
// escaping the chain are returned unchanged for the transport boundary to
// convert into the JSON error envelope.
func (a *App) HandleRequest(ctx context.Context, req *Request) (*Response, error) {
	route, params, ok := a.router.FindRoute(req.Method(), req.Path())
	if !ok {
		if a.router.PathExists(req.Path()) {
			return nil, MethodNotAllowed(a.router.AllowedMethods(req.Path()))
		}
		return nil, ErrRouteNotFound
	}

	for name, value := range params {
		req.SetParam(name, value)
	}

	chain := a.chain()
	if len(chain) == 0 {
		// Fast path, observably identical to running an empty chain.
		return route.Handle(ctx, req)
	}

	return NewNext(chain, route.handler).Run(ctx, req)
}

// chain returns the effective middleware list for a request: global
// middleware followed by the root router's.
func (a *App) chain() []Middleware {
	if len(a.router.middleware) == 0 {
		return a.middleware
	}

	chain := make([]Middleware, 0, len(a.middleware)+len(a.router.middleware))
	chain = append(chain, a.middleware...)
	return append(chain, a.router.middleware...)
}
