package httpx

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParams_Decoded(t *testing.T) {
	var got map[string]string
	r := NewChi()
	r.Handle(http.MethodPost, "/activities/{activity_name}/signup", http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		got = Params(req)
	}))

	cases := map[string]string{
		"/activities/Chess%20Club/signup":  "Chess Club",
		"/activities/Chess+Club/signup":    "Chess+Club",
		"/activities/Arts%2FCrafts/signup": "Arts/Crafts",
		"/activities/100%25%20Fun/signup":  "100% Fun",
	}
	for target, want := range cases {
		got = nil
		rec := httptest.NewRecorder()
		r.Mux().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, target, nil))
		assert.Equal(t, http.StatusOK, rec.Code, target)
		assert.Equal(t, want, got["activity_name"], target)
	}
}

func TestParams_NoRouteContext(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Empty(t, Params(req))
}

func TestNotFoundAndMethodNotAllowed(t *testing.T) {
	r := NewChi()
	r.Handle(http.MethodGet, "/activities", http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {}))
	r.NotFound(func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusTeapot) })
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusConflict) })

	rec := httptest.NewRecorder()
	r.Mux().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))
	assert.Equal(t, http.StatusTeapot, rec.Code)

	rec = httptest.NewRecorder()
	r.Mux().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/activities", nil))
	assert.Equal(t, http.StatusConflict, rec.Code)
}
