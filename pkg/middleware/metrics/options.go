package metrics

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

// Option tunes the HTTP collector.
type Option func(*collector)

type collector struct {
	skipPaths    map[string]struct{}
	skipPrefixes []string
	normalize    func(*http.Request) string
}

func newCollector(opts []Option) *collector {
	c := &collector{
		skipPaths: map[string]struct{}{"/metrics": {}, "/ping": {}},
		normalize: routePattern,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// WithSkipPaths excludes exact request paths from the HTTP counters.
func WithSkipPaths(paths ...string) Option {
	return func(c *collector) {
		for _, p := range paths {
			if p = strings.TrimSpace(p); p != "" {
				c.skipPaths[p] = struct{}{}
			}
		}
	}
}

// WithSkipPrefix excludes every path under prefix, e.g. static assets.
func WithSkipPrefix(prefix string) Option {
	return func(c *collector) {
		if prefix = strings.TrimSpace(prefix); prefix != "" {
			c.skipPrefixes = append(c.skipPrefixes, prefix)
		}
	}
}

// WithNormalizer replaces the uri label function.
func WithNormalizer(fn func(*http.Request) string) Option {
	return func(c *collector) {
		if fn != nil {
			c.normalize = fn
		}
	}
}

// routePattern labels requests by the matched chi pattern so that activity
// names in the path do not become label values. Unmatched requests share one
// label.
func routePattern(r *http.Request) string {
	if rc := chi.RouteContext(r.Context()); rc != nil {
		if p := rc.RoutePattern(); p != "" {
			return p
		}
	}
	return "unmatched"
}

func (c *collector) skip(r *http.Request) bool {
	p := r.URL.Path
	if _, ok := c.skipPaths[p]; ok {
		return true
	}
	for _, pre := range c.skipPrefixes {
		if p == pre || strings.HasPrefix(p, strings.TrimSuffix(pre, "/")+"/") {
			return true
		}
	}
	return false
}
