package httpx

import (
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
)

// Params returns the decoded path parameters matched for r.
//
// chi matches against RawPath when the request carried escapes that do not
// round-trip (e.g. %2F), in which case the captured values are still encoded.
func Params(r *http.Request) map[string]string {
	rc := chi.RouteContext(r.Context())
	if rc == nil {
		return map[string]string{}
	}
	out := make(map[string]string, len(rc.URLParams.Keys))
	for i, k := range rc.URLParams.Keys {
		v := rc.URLParams.Values[i]
		if r.URL.RawPath != "" {
			if dec, err := url.PathUnescape(v); err == nil {
				v = dec
			}
		}
		out[k] = v
	}
	return out
}
