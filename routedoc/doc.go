// Package routedoc generates a machine-readable inventory of an
// application's registered routes and serves it as JSON or YAML.
//
// Describe builds the Document directly:
//
//	doc := routedoc.Describe(app, routedoc.Info{
//	    Title:   "orders",
//	    Version: "1.4.0",
//	})
//
// Handle registers ready-made endpoints on the application itself:
//
//	routedoc.Handle(app, "/meta", routedoc.Info{Title: "orders"}, nil)
//	// GET /meta/routes.json
//	// GET /meta/routes.yaml
//
// The document lists every route's method, canonical path template, and
// path parameter names, sorted for stable output.
package routedoc
