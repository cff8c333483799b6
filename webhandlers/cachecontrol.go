package webhandlers

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/stradahq/strada/web"
)

// ErrNoCacheControlRules is returned when CacheControlConfig.Rules is empty.
var ErrNoCacheControlRules = errors.New("cache control: at least one rule is required")

// CacheControlRule maps a Content-Type prefix to Cache-Control and Expires
// header values.
type CacheControlRule struct {
	// ContentType is a content type prefix to match against the response
	// Content-Type (e.g. "image/", "application/json"). Matching is
	// case-insensitive via strings.HasPrefix on the lowercased value.
	ContentType string

	// Value is the Cache-Control header value to set when this rule
	// matches (e.g. "public, max-age=86400").
	Value string

	// Expires is the duration added to the current time to compute the
	// Expires header value (formatted as HTTP-date per RFC 7231). A zero
	// duration sets Expires to the current time, marking the response as
	// already expired. A negative duration means no Expires header is set
	// for this rule. Positive values produce a future date
	// (e.g. 24*time.Hour sets Expires to 24 hours from now).
	Expires time.Duration
}

// CacheControlConfig configures the Cache Control middleware behaviour.
type CacheControlConfig struct {
	// Rules is the ordered list of content type rules. The first matching
	// rule wins. Required; at least one must be provided.
	Rules []CacheControlRule

	// DefaultValue is the Cache-Control header value for responses that
	// don't match any rule. When empty, no header is set for unmatched
	// types.
	DefaultValue string

	// DefaultExpires is the duration added to the current time to compute
	// the Expires header for responses that don't match any rule. A zero
	// duration sets Expires to the current time. A negative duration means
	// no Expires header is set for unmatched types.
	DefaultExpires time.Duration
}

// cacheControlRule is a pre-normalized copy of CacheControlRule used at
// runtime so that the lowercase conversion happens once at factory time.
type cacheControlRule struct {
	contentType string
	value       string
	expires     time.Duration
	hasExpires  bool
}

// CacheControlMiddleware returns middleware that sets Cache-Control and
// Expires headers on the response produced downstream, based on its
// Content-Type. Rules are evaluated in order; the first rule whose
// ContentType prefix matches wins. If no rule matches and
// DefaultValue/DefaultExpires is set, it is used. When the handler already
// set a Cache-Control or Expires header, the middleware does not overwrite
// the respective header.
//
// It returns ErrNoCacheControlRules if Rules is empty.
func CacheControlMiddleware(cfg CacheControlConfig) (web.Middleware, error) {
	if len(cfg.Rules) == 0 {
		return nil, ErrNoCacheControlRules
	}

	rules := make([]cacheControlRule, len(cfg.Rules))
	for i, r := range cfg.Rules {
		rules[i] = cacheControlRule{
			contentType: strings.ToLower(r.ContentType),
			value:       r.Value,
			expires:     r.Expires,
			hasExpires:  r.Expires >= 0,
		}
	}

	defaultValue := cfg.DefaultValue
	defaultExpires := cfg.DefaultExpires
	hasDefaultExpires := cfg.DefaultExpires >= 0

	return web.MiddlewareFunc(func(ctx context.Context, req *web.Request, next *web.Next) (*web.Response, error) {
		resp, err := next.Run(ctx, req)
		if err != nil {
			return nil, err
		}

		ccSet := resp.Headers().Get("Cache-Control") != ""
		exSet := resp.Headers().Get("Expires") != ""
		if ccSet && exSet {
			return resp, nil
		}

		ct := strings.ToLower(resp.Headers().Get("Content-Type"))

		var matchedValue string
		var matchedExpires time.Duration
		var setExpires bool

		matched := false
		for _, rule := range rules {
			if strings.HasPrefix(ct, rule.contentType) {
				matchedValue = rule.value
				matchedExpires = rule.expires
				setExpires = rule.hasExpires
				matched = true

				break
			}
		}

		if !matched {
			matchedValue = defaultValue
			matchedExpires = defaultExpires
			setExpires = hasDefaultExpires
		}

		if !ccSet && matchedValue != "" {
			resp.Header("Cache-Control", matchedValue)
		}

		if !exSet && setExpires {
			resp.Header("Expires", time.Now().UTC().Add(matchedExpires).Format(http.TimeFormat))
		}

		return resp, nil
	}), nil
}
