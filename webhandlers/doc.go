// Package webhandlers provides ready-made middleware for the web package's
// continuation-based middleware chain.
//
// Each middleware is built from a config struct with sensible zero-value
// defaults. Constructors that can be misconfigured return an error
// alongside the middleware:
//
//	auth, err := webhandlers.BasicAuthMiddleware(webhandlers.BasicAuthConfig{
//	    Credentials: map[string]string{"admin": "secret"},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	app := web.NewApp()
//	app.Use(
//	    webhandlers.RecoveryMiddleware(webhandlers.RecoveryConfig{}),
//	    webhandlers.RequestIDMiddleware(webhandlers.RequestIDConfig{}),
//	    webhandlers.LoggingMiddleware(webhandlers.LoggingConfig{}),
//	    auth,
//	)
//
// Available middleware:
//
//	RequestIDMiddleware        - generates/propagates X-Request-ID (UUID)
//	RecoveryMiddleware         - converts panics into 500 errors
//	LoggingMiddleware          - structured request logging via log/slog
//	BasicAuthMiddleware        - HTTP Basic Authentication (RFC 7617)
//	CORSMiddleware             - CORS headers and preflight handling
//	SecurityHeadersMiddleware  - common security response headers
//	TimeoutMiddleware          - per-request context deadline
//	ContentTypeCheckMiddleware - request Content-Type validation
//	CacheControlMiddleware     - Cache-Control/Expires by content type
//	RequestSizeLimitMiddleware - per-route request body size cap
//
// Ordering matters: middleware executes in registration order, so
// RecoveryMiddleware should usually be registered first so it also
// catches panics from the middleware below it.
package webhandlers
