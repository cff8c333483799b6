package web

import (
	"net/url"
	"strings"
)

// Segment is a single element of a path pattern: either a static literal
// that must match exactly, or a dynamic segment that binds the candidate
// path segment to a named parameter.
type Segment struct {
	value   string
	dynamic bool
}

// Dynamic reports whether the segment binds a parameter instead of
// matching a literal.
func (s Segment) Dynamic() bool {
	return s.dynamic
}

// Value returns the literal text for a static segment, or the parameter
// name for a dynamic one.
func (s Segment) Value() string {
	return s.value
}

// PathPattern is a compiled route template such as "/users/:id".
// Segments prefixed with a colon are dynamic and capture the corresponding
// path segment as a named parameter; all other segments match literally.
//
// Patterns are compiled once at registration time and never mutated, so a
// single PathPattern may be shared across concurrently executing requests.
type PathPattern struct {
	raw      string
	segments []Segment
}

// ParsePattern compiles a route template into a PathPattern.
//
// The template is split on "/" and empty segments are discarded, so
// leading, trailing, and duplicate slashes are tolerated. A segment
// starting with ":" is dynamic; the remainder of the segment is the
// parameter name. No character-set validation is performed: a bare ":"
// produces a dynamic segment with an empty name rather than an error.
func ParsePattern(pattern string) *PathPattern {
	parts := splitPath(pattern)
	segments := make([]Segment, 0, len(parts))

	for _, part := range parts {
		if name, ok := strings.CutPrefix(part, ":"); ok {
			segments = append(segments, Segment{value: name, dynamic: true})
		} else {
			segments = append(segments, Segment{value: part})
		}
	}

	return &PathPattern{raw: pattern, segments: segments}
}

// Raw returns the original template string the pattern was parsed from.
func (p *PathPattern) Raw() string {
	return p.raw
}

// Segments returns a copy of the compiled segments.
func (p *PathPattern) Segments() []Segment {
	out := make([]Segment, len(p.segments))
	copy(out, p.segments)
	return out
}

// ParamNames returns the names of the dynamic segments in pattern order.
func (p *PathPattern) ParamNames() []string {
	var names []string
	for _, s := range p.segments {
		if s.dynamic {
			names = append(names, s.value)
		}
	}
	return names
}

// Matches matches a candidate path against the pattern.
//
// The candidate is split the same way as the template. A differing segment
// count is an immediate non-match. Otherwise segments are compared
// pairwise: static segments require exact, case-sensitive equality, and
// dynamic segments always succeed, binding their name to the
// percent-decoded candidate segment. If percent-decoding fails, the raw
// undecoded segment is bound instead of failing the match.
//
// When a pattern repeats a parameter name, the last occurrence wins.
func (p *PathPattern) Matches(path string) (map[string]string, bool) {
	parts := splitPath(path)
	if len(parts) != len(p.segments) {
		return nil, false
	}

	params := make(map[string]string)
	for i, seg := range p.segments {
		if !seg.dynamic {
			if seg.value != parts[i] {
				return nil, false
			}
			continue
		}

		value, err := url.PathUnescape(parts[i])
		if err != nil {
			value = parts[i]
		}
		params[seg.value] = value
	}

	return params, true
}

// splitPath splits a path on "/" and drops empty segments.
func splitPath(path string) []string {
	raw := strings.Split(path, "/")
	parts := raw[:0]
	for _, p := range raw {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return parts
}
