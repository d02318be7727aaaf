package logger

import (
	"net/http"
	"time"

	chimd "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// Middleware writes one access-log entry per request.
type Middleware struct {
	access    *zap.Logger
	queryKeys map[string]struct{}
}

// New returns an access-log middleware writing to l.
func New(l *zap.Logger, opts ...Option) *Middleware {
	if l == nil {
		l = zap.NewNop()
	}
	m := &Middleware{access: l, queryKeys: map[string]struct{}{}}
	for _, o := range opts {
		o(m)
	}
	return m
}

func (m *Middleware) Middleware() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := chimd.NewWrapResponseWriter(w, r.ProtoMajor)

			scheme := "http"
			if r.TLS != nil {
				scheme = "https"
			}

			start := time.Now()
			defer func() {
				fields := []zap.Field{
					zap.String("dateTime", start.UTC().Format(time.RFC1123)),
					zap.String("requestId", chimd.GetReqID(r.Context())),
					zap.String("httpScheme", scheme),
					zap.String("httpProto", r.Proto),
					zap.String("httpMethod", r.Method),
					zap.String("remoteAddr", r.RemoteAddr),
					zap.String("uri", r.URL.Path),
					zap.Duration("lat", time.Since(start)),
					zap.Int("responseSize", ww.BytesWritten()),
					zap.Int("status", ww.Status()),
				}
				if q := m.redactQuery(r.URL.Query()); q != "" {
					fields = append(fields, zap.String("query", q))
				}
				m.access.Info("access", fields...)
			}()

			next.ServeHTTP(ww, r)
		})
	}
}
