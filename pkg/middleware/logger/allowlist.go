package logger

import (
	"net/url"
	"sort"
	"strings"
)

const redacted = "[redacted]"

// Option tunes the access-log middleware.
type Option func(*Middleware)

// WithQueryKeys allowlists query parameters whose values are logged as sent.
// Every other parameter is logged with its value redacted.
func WithQueryKeys(keys ...string) Option {
	return func(m *Middleware) {
		for _, k := range keys {
			if k = strings.TrimSpace(k); k != "" {
				m.queryKeys[k] = struct{}{}
			}
		}
	}
}

// redactQuery renders q with every non-allowlisted value replaced.
// Participant emails travel in the query string and stay out of the log.
func (m *Middleware) redactQuery(q url.Values) string {
	if len(q) == 0 {
		return ""
	}
	keys := make([]string, 0, len(q))
	for k := range q {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		_, keep := m.queryKeys[k]
		for _, v := range q[k] {
			if b.Len() > 0 {
				b.WriteByte('&')
			}
			b.WriteString(url.QueryEscape(k))
			b.WriteByte('=')
			if keep {
				b.WriteString(url.QueryEscape(v))
			} else {
				b.WriteString(redacted)
			}
		}
	}
	return b.String()
}
