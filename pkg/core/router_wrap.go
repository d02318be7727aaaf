package core

import (
	"errors"
	"io"
	"net/http"

	chimd "github.com/go-chi/chi/v5/middleware"
	manifest "github.com/joeydtaylor/steeze-activities/pkg/manifest"
	httpx "github.com/joeydtaylor/steeze-activities/pkg/transport/httpx"
	"go.uber.org/zap"
)

const maxBodyBytes = 1 << 20

func wrapRoute(rt manifest.Route, d BuildDeps) http.HandlerFunc {
	switch rt.Handler.Type {
	case manifest.HandlerInproc:
		h, ok := d.Handlers.Lookup(rt.Handler.Name)
		if !ok {
			d.Log.Error("inproc handler not registered",
				zap.String("handler", rt.Handler.Name),
				zap.String("method", rt.Method),
				zap.String("path", rt.Path),
			)
			return func(w http.ResponseWriter, _ *http.Request) {
				writeDetail(w, http.StatusInternalServerError, "handler not found")
			}
		}
		return func(w http.ResponseWriter, r *http.Request) {
			body, err := readBody(r)
			if err != nil {
				var he *HTTPError
				if errors.As(err, &he) {
					writeDetail(w, he.Status, he.Detail)
					return
				}
				writeDetail(w, http.StatusBadRequest, "Invalid request body")
				return
			}
			out, status, err := h(r.Context(), Request{
				Params: httpx.Params(r),
				Query:  r.URL.Query(),
				Body:   body,
			})
			if err != nil {
				writeError(w, r, d.Log, rt, err, status)
				return
			}
			writeJSON(w, out, statusIf(status, http.StatusOK))
		}

	case manifest.HandlerRedirect:
		target := rt.Handler.Target
		return func(w http.ResponseWriter, r *http.Request) {
			http.Redirect(w, r, target, http.StatusTemporaryRedirect)
		}

	default:
		return func(w http.ResponseWriter, _ *http.Request) {
			writeDetail(w, http.StatusInternalServerError, "unknown handler type")
		}
	}
}

// readBody reads at most maxBodyBytes. Larger bodies are refused rather than
// truncated.
func readBody(r *http.Request) ([]byte, error) {
	if r.Body == nil || r.Body == http.NoBody {
		return nil, nil
	}
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes+1))
	if err != nil {
		return nil, err
	}
	if len(body) > maxBodyBytes {
		return nil, NewHTTPError(http.StatusRequestEntityTooLarge, "Request body too large")
	}
	return body, nil
}

func writeError(w http.ResponseWriter, r *http.Request, l *zap.Logger, rt manifest.Route, err error, status int) {
	var he *HTTPError
	if errors.As(err, &he) {
		writeDetail(w, statusIf(he.Status, http.StatusInternalServerError), he.Detail)
		return
	}
	l.Error("inproc handler failed",
		zap.String("handler", rt.Handler.Name),
		zap.String("requestId", chimd.GetReqID(r.Context())),
		zap.Error(err),
	)
	writeDetail(w, statusIf(status, http.StatusInternalServerError), "Internal Server Error")
}
