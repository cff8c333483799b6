// Package web implements a minimalist HTTP application core: a
// path-pattern router, a middleware dispatch chain, and a typed
// request/response pipeline.
//
// The package routes an inbound request value to a registered handler and
// produces a response value. It does not open sockets or speak the wire
// protocol; a transport adapter (see the httpserver package) converts
// between net/http and the Request/Response value types at the boundary.
//
// Routing semantics follow:
//   - RFC 9110 (HTTP Semantics): 404/405 distinction, Allow sets
//   - RFC 3986 (URIs): percent-decoding of path segments and query pairs
//
// # Routes
//
// Create an application and register handlers per method:
//
//	app := web.NewApp()
//	app.Get("/users/:id", func(ctx context.Context, req *web.Request) (*web.Response, error) {
//	    id, _ := req.Param("id")
//	    return web.Text("user " + id), nil
//	})
//
// # Path patterns
//
// Patterns are templates like "/literal/:param/literal2". Colon-prefixed
// segments are parameters and bind the percent-decoded path segment under
// their name; all other segments must match literally, case-sensitively.
// There is no wildcard segment, so matching is a single linear pass with
// no backtracking.
//
// # Routers and mounting
//
// A Router groups routes under a common prefix and can be mounted into
// another router or an App. Mounting rewrites each route's pattern with
// the composed prefix and keeps the original handler:
//
//	api := web.NewRouter("/api")
//	api.Get("/users/:id", getUser)
//	app.Mount("/v1", api) // matches /v1/api/users/:id
//
// # Middleware
//
// Middleware receives the request and a continuation representing
// everything after it in the chain:
//
//	app.Use(web.MiddlewareFunc(func(ctx context.Context, req *web.Request, next *web.Next) (*web.Response, error) {
//	    resp, err := next.Run(ctx, req)
//	    if err != nil {
//	        return web.ErrorResponse(err), nil // recover downstream errors
//	    }
//	    return resp.Header("X-Frame-Options", "DENY"), nil
//	}))
//
// Returning without calling next.Run short-circuits the chain. A Next is
// single-use: each chain position is advanced through at most once.
//
// # Errors
//
// Failures are *Error values with a fixed taxonomy (404, 405 with the
// allowed method set, 400, 500, custom). ErrorResponse converts any error
// into the JSON envelope {"error":{"status":...,"message":...}} that
// clients observe at the boundary.
//
// # Binding
//
// BindPath, BindQuery, and BindJSON deserialize path parameters, query
// parameters, and the JSON body into caller-declared struct types,
// coercing string values to numbers and booleans where they look like one:
//
//	var params struct {
//	    ID uint32 `json:"id"`
//	}
//	if err := web.BindPath(req, &params); err != nil {
//	    return nil, err // 400-class error
//	}
package web
