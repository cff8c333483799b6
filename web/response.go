package web

import (
	"encoding/json"
	"net/http"
)

// Response is an outgoing HTTP response value: status code, headers, and
// body bytes. Responses are built fresh by each handler or middleware
// layer and passed back up the chain; a layer may inspect the response it
// received from downstream and replace it entirely.
type Response struct {
	status int
	header http.Header
	body   []byte
}

// NewResponse returns an empty 200 OK response.
func NewResponse() *Response {
	return &Response{
		status: http.StatusOK,
		header: make(http.Header),
	}
}

// Text returns a 200 OK response with a plain text body.
func Text(body string) *Response {
	return NewResponse().
		Header("Content-Type", "text/plain; charset=utf-8").
		SetBody([]byte(body))
}

// JSON returns a 200 OK response with v encoded as the JSON body and the
// Content-Type header set to "application/json". Encoding failure is
// reported as a serialization error (500 class).
func JSON(v any) (*Response, error) {
	body, err := json.Marshal(v)
	if err != nil {
		return nil, JSONSerializeError(err)
	}

	return NewResponse().
		Header("Content-Type", "application/json").
		SetBody(body), nil
}

// Status sets the response status code.
func (r *Response) Status(code int) *Response {
	r.status = code
	return r
}

// Header sets a response header, replacing any existing value.
func (r *Response) Header(key, value string) *Response {
	r.header.Set(key, value)
	return r
}

// SetBody replaces the response body.
func (r *Response) SetBody(body []byte) *Response {
	r.body = body
	return r
}

// StatusCode returns the response status code.
func (r *Response) StatusCode() int {
	return r.status
}

// Headers returns the response header map.
func (r *Response) Headers() http.Header {
	return r.header
}

// Body returns the response body bytes.
func (r *Response) Body() []byte {
	return r.body
}
