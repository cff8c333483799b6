package web

import (
	"encoding/json"
	"strconv"
)

// BindPath builds a structured value from the request's path parameters
// and deserializes it into v, which must be a pointer.
//
// Each parameter value is reinterpreted opportunistically before
// deserialization: integer first, then float, then boolean, else it stays
// a string. A value that cannot be coerced into the target field type
// fails with a 400-class error naming the failure.
func BindPath(r *Request, v any) error {
	return bindCoerced(r.Params(), v, "path")
}

// BindQuery builds a structured value from the request's query parameters
// and deserializes it into v, applying the same string coercion as
// BindPath.
func BindQuery(r *Request, v any) error {
	return bindCoerced(r.QueryParams(), v, "query")
}

// BindJSON deserializes the raw request body as JSON into v. A malformed
// body fails with a parse-class error (400), distinguishable from other
// bad-request failures via errors.As and Kind.
func BindJSON(r *Request, v any) error {
	if err := json.Unmarshal(r.Body(), v); err != nil {
		return JSONParseError(err)
	}
	return nil
}

// bindCoerced routes a string map through a JSON object so the target's
// field types drive deserialization.
func bindCoerced(values map[string]string, v any, source string) error {
	object := make(map[string]any, len(values))
	for name, value := range values {
		object[name] = coerceValue(value)
	}

	raw, err := json.Marshal(object)
	if err != nil {
		return BadRequest("failed to encode " + source + " parameters: " + err.Error())
	}

	if err := json.Unmarshal(raw, v); err != nil {
		return BadRequest("failed to parse " + source + " parameters: " + err.Error())
	}

	return nil
}

// coerceValue reinterprets a string as the most specific JSON type it
// parses as: signed integer, unsigned integer, float, boolean, then
// string. The unsigned step keeps values above the int64 range exact
// instead of degrading them to float64. Only the literals "true" and
// "false" count as booleans so that "1" stays numeric and "t" stays a
// string.
func coerceValue(s string) any {
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n
	}
	if n, err := strconv.ParseUint(s, 10, 64); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	if s == "true" {
		return true
	}
	if s == "false" {
		return false
	}
	return s
}
