package web

import (
	"net/http"
	"net/url"
	"strings"
)

// Request is an incoming HTTP request as seen by the dispatch core.
//
// It is constructed once per inbound request by the transport adapter and
// mutated in place as it flows through the middleware chain: the dispatcher
// writes path parameters into it before the chain starts, and middleware
// may attach typed values for downstream layers.
type Request struct {
	method string
	url    *url.URL
	header http.Header
	body   []byte

	params map[string]string
	query  map[string]string
	values map[any]any
}

// NewRequest builds a Request from its components. The target is parsed as
// a request URI; the query string is not parsed until first use.
func NewRequest(method, target string, header http.Header, body []byte) (*Request, error) {
	u, err := url.Parse(target)
	if err != nil {
		return nil, BadRequest("invalid request target: " + err.Error())
	}

	if header == nil {
		header = make(http.Header)
	}

	return &Request{
		method: method,
		url:    u,
		header: header,
		body:   body,
		params: make(map[string]string),
	}, nil
}

// Method returns the HTTP request method.
func (r *Request) Method() string {
	return r.method
}

// URL returns the parsed request URL.
func (r *Request) URL() *url.URL {
	return r.url
}

// Path returns the request URL path.
func (r *Request) Path() string {
	return r.url.Path
}

// Header returns the request headers.
func (r *Request) Header() http.Header {
	return r.header
}

// Body returns the raw request body bytes.
func (r *Request) Body() []byte {
	return r.body
}

// Param returns the path parameter bound under name, if present.
func (r *Request) Param(name string) (string, bool) {
	v, ok := r.params[name]
	return v, ok
}

// Params returns all bound path parameters.
func (r *Request) Params() map[string]string {
	return r.params
}

// SetParam binds a path parameter. The router calls this during dispatch
// before the request enters the middleware chain.
func (r *Request) SetParam(name, value string) {
	r.params[name] = value
}

// Query returns the query parameter under name, if present. Keys without
// a value ("?flag") are present with an empty string value.
func (r *Request) Query(name string) (string, bool) {
	v, ok := r.QueryParams()[name]
	return v, ok
}

// QueryParams returns all query parameters. The query string is parsed on
// first call and cached; keys and values are percent-decoded, and pairs
// that fail decoding are skipped.
func (r *Request) QueryParams() map[string]string {
	if r.query == nil {
		r.query = parseQuery(r.url.RawQuery)
	}
	return r.query
}

// SetValue attaches an arbitrary typed value to the request, keyed the
// same way as context values. Middleware uses this to hand data to
// downstream layers.
func (r *Request) SetValue(key, value any) {
	if r.values == nil {
		r.values = make(map[any]any)
	}
	r.values[key] = value
}

// Value returns the value attached under key, or nil.
func (r *Request) Value(key any) any {
	return r.values[key]
}

// parseQuery parses a raw query string into a flat map. Later duplicate
// keys overwrite earlier ones.
func parseQuery(rawQuery string) map[string]string {
	params := make(map[string]string)
	if rawQuery == "" {
		return params
	}

	for _, pair := range strings.Split(rawQuery, "&") {
		if pair == "" {
			continue
		}

		key, value, found := strings.Cut(pair, "=")
		decodedKey, err := url.QueryUnescape(key)
		if err != nil {
			continue
		}

		if !found {
			params[decodedKey] = ""
			continue
		}

		decodedValue, err := url.QueryUnescape(value)
		if err != nil {
			continue
		}
		params[decodedKey] = decodedValue
	}

	return params
}
