package web

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
)

// ErrorKind classifies an Error into the taxonomy the dispatcher maps to
// HTTP status codes.
type ErrorKind int

const (
	// KindRouteNotFound means no registered pattern matched the path (404).
	KindRouteNotFound ErrorKind = iota

	// KindMethodNotAllowed means the path matched some pattern, but not
	// with the request method (405). The error carries the methods that
	// would have matched.
	KindMethodNotAllowed

	// KindBadRequest covers malformed input and failed typed extraction (400).
	KindBadRequest

	// KindInternal covers unexpected downstream failures (500).
	KindInternal

	// KindJSONParse means the inbound body was not valid JSON (400).
	KindJSONParse

	// KindJSONSerialize means an outbound value could not be encoded (500).
	KindJSONSerialize

	// KindCustom carries an application-chosen status and message.
	KindCustom
)

// Error is the structured error type produced by the dispatch core.
// Every kind maps deterministically to an HTTP status code and a JSON
// error envelope, which is the contract clients observe on failure.
type Error struct {
	kind    ErrorKind
	status  int
	message string
	allowed []string
	cause   error
}

// ErrRouteNotFound is returned when no registered pattern matches the
// request path. Maps to 404 Not Found (RFC 9110 Section 15.5.5).
var ErrRouteNotFound = &Error{kind: KindRouteNotFound, status: http.StatusNotFound}

// MethodNotAllowed returns a 405 error carrying the methods that would
// match the request path (RFC 9110 Section 15.5.6).
func MethodNotAllowed(allowed []string) *Error {
	return &Error{
		kind:    KindMethodNotAllowed,
		status:  http.StatusMethodNotAllowed,
		allowed: allowed,
	}
}

// BadRequest returns a 400 error with the given message.
func BadRequest(message string) *Error {
	return &Error{kind: KindBadRequest, status: http.StatusBadRequest, message: message}
}

// InternalServerError returns a 500 error with the given message.
func InternalServerError(message string) *Error {
	return &Error{kind: KindInternal, status: http.StatusInternalServerError, message: message}
}

// JSONParseError wraps a JSON decoding failure of an inbound body (400).
func JSONParseError(cause error) *Error {
	return &Error{kind: KindJSONParse, status: http.StatusBadRequest, cause: cause}
}

// JSONSerializeError wraps a JSON encoding failure of an outbound value (500).
func JSONSerializeError(cause error) *Error {
	return &Error{kind: KindJSONSerialize, status: http.StatusInternalServerError, cause: cause}
}

// CustomError returns an error with a caller-chosen status and message.
func CustomError(status int, message string) *Error {
	return &Error{kind: KindCustom, status: status, message: message}
}

// Error implements the error interface.
func (e *Error) Error() string {
	switch e.kind {
	case KindRouteNotFound:
		return "route not found"
	case KindMethodNotAllowed:
		return "method not allowed, allowed methods: " + strings.Join(e.allowed, ", ")
	case KindBadRequest:
		return "bad request: " + e.message
	case KindInternal:
		return "internal server error: " + e.message
	case KindJSONParse:
		return "json parse error: " + e.cause.Error()
	case KindJSONSerialize:
		return "json serialize error: " + e.cause.Error()
	default:
		return e.message
	}
}

// Kind returns the error classification.
func (e *Error) Kind() ErrorKind {
	return e.kind
}

// StatusCode returns the HTTP status code the error maps to.
func (e *Error) StatusCode() int {
	return e.status
}

// Allowed returns the methods carried by a 405 error, if any.
func (e *Error) Allowed() []string {
	return e.allowed
}

// Unwrap returns the underlying cause for JSON parse/serialize errors.
func (e *Error) Unwrap() error {
	return e.cause
}

// errorEnvelope is the JSON error body written at the dispatcher boundary.
type errorEnvelope struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

// fallbackEnvelope is written when the envelope itself fails to encode.
const fallbackEnvelope = `{"error":{"status":500,"message":"internal server error"}}`

// Response converts the error into its HTTP response: the mapped status
// code and the JSON error envelope {"error":{"status":...,"message":...}}.
func (e *Error) Response() *Response {
	body, err := json.Marshal(errorEnvelope{
		Error: errorDetail{Status: e.status, Message: e.Error()},
	})
	if err != nil {
		body = []byte(fallbackEnvelope)
	}

	return NewResponse().
		Status(e.status).
		Header("Content-Type", "application/json").
		SetBody(body)
}

// ErrorResponse converts any error reaching the dispatcher boundary into
// its HTTP response. Errors that are not *Error values are treated as
// internal server errors.
func ErrorResponse(err error) *Response {
	var webErr *Error
	if !errors.As(err, &webErr) {
		webErr = InternalServerError(err.Error())
	}
	return webErr.Response()
}
