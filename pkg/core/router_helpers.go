package core

import (
	"net/http"

	"github.com/joeydtaylor/steeze-activities/pkg/codec"
)

func writeJSON(w http.ResponseWriter, payload []byte, status int) {
	w.Header().Set("Content-Type", codec.JSONStrict.ContentType())
	w.WriteHeader(status)
	if len(payload) > 0 {
		_, _ = w.Write(payload)
		return
	}
	_, _ = w.Write([]byte(`{}`))
}

// writeDetail renders the {"detail": ...} error body.
func writeDetail(w http.ResponseWriter, status int, detail any) {
	b, err := codec.JSONStrict.Marshal(map[string]any{"detail": detail})
	if err != nil {
		b = []byte(`{"detail":"Internal Server Error"}`)
		status = http.StatusInternalServerError
	}
	writeJSON(w, b, status)
}

func statusIf(s, def int) int {
	if s > 0 {
		return s
	}
	return def
}

func notFound(w http.ResponseWriter, _ *http.Request) {
	writeDetail(w, http.StatusNotFound, "Not Found")
}

func methodNotAllowed(w http.ResponseWriter, _ *http.Request) {
	writeDetail(w, http.StatusMethodNotAllowed, "Method Not Allowed")
}
