package httpserver

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/stradahq/strada/web"
)

// NewRequest converts a net/http request into the dispatch core's request
// type. The body is read fully; exceeding a limit installed by
// http.MaxBytesReader (the Server's MaxBodyBytes setting) is reported as
// 413 Content Too Large, any other read failure as a bad request.
func NewRequest(r *http.Request) (*web.Request, error) {
	var body []byte
	if r.Body != nil {
		var err error
		body, err = io.ReadAll(r.Body)
		if err != nil {
			var maxBytesErr *http.MaxBytesError
			if errors.As(err, &maxBytesErr) {
				return nil, web.CustomError(
					http.StatusRequestEntityTooLarge,
					"request body too large",
				)
			}
			return nil, web.BadRequest("failed to read request body: " + err.Error())
		}
	}

	return web.NewRequest(r.Method, r.URL.RequestURI(), r.Header, body)
}

// Handler adapts an application to net/http. Every inbound request is
// converted, dispatched through the application's middleware chain, and the
// resulting response (or error envelope) is written back.
//
// For 405 failures the Allow header is set from the methods carried by the
// error, per RFC 9110 Section 15.5.6.
func Handler(app *web.App) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		req, err := NewRequest(r)
		if err != nil {
			writeResponse(w, web.ErrorResponse(err))
			return
		}

		resp, err := app.HandleRequest(r.Context(), req)
		if err != nil {
			writeError(w, err)
			return
		}

		writeResponse(w, resp)
	})
}

// writeError converts a dispatch error into its response, attaching the
// Allow header for method-not-allowed failures.
func writeError(w http.ResponseWriter, err error) {
	resp := web.ErrorResponse(err)

	var webErr *web.Error
	if errors.As(err, &webErr) && len(webErr.Allowed()) > 0 {
		resp.Header("Allow", strings.Join(webErr.Allowed(), ", "))
	}

	writeResponse(w, resp)
}

// writeResponse copies the response headers, status, and body onto the
// net/http response writer.
func writeResponse(w http.ResponseWriter, resp *web.Response) {
	header := w.Header()
	for key, values := range resp.Headers() {
		for _, value := range values {
			header.Add(key, value)
		}
	}

	w.WriteHeader(resp.StatusCode())
	_, _ = w.Write(resp.Body())
}
