// Package httpserver bridges the web package's application core to
// net/http.
//
// Handler adapts an application to any net/http server:
//
//	http.ListenAndServe(":8080", httpserver.Handler(app))
//
// Server adds environment-driven configuration, an optional connection
// limit, and graceful shutdown:
//
//	cfg, err := httpserver.LoadConfig()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	srv, err := httpserver.New(cfg, httpserver.WithLogger(logger))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	if err := srv.Run(ctx, app); err != nil {
//	    log.Fatal(err)
//	}
//
// Run blocks until the context is canceled, then drains in-flight
// requests within the configured shutdown timeout.
package httpserver
