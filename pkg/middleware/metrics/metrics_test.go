package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestCollect_LabelsByRoutePattern(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Collect())
	r.Post("/activities/{activity_name}/signup", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	r.Get("/metrics", func(w http.ResponseWriter, _ *http.Request) {})

	before := testutil.ToFloat64(totalHttpRequestsToUri.WithLabelValues("200", "/activities/{activity_name}/signup", "POST"))
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/activities/Chess%20Club/signup", nil))
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/activities/Art%20Club/signup", nil))
	after := testutil.ToFloat64(totalHttpRequestsToUri.WithLabelValues("200", "/activities/{activity_name}/signup", "POST"))
	assert.Equal(t, 2.0, after-before)

	skipped := testutil.ToFloat64(totalHttpRequestsToUri.WithLabelValues("200", "/metrics", "GET"))
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, skipped, testutil.ToFloat64(totalHttpRequestsToUri.WithLabelValues("200", "/metrics", "GET")))
}

func TestCollect_Options(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Collect(
		WithSkipPrefix("/static"),
		WithSkipPaths("/health"),
		WithNormalizer(func(*http.Request) string { return "fixed" }),
	))
	r.Get("/*", func(w http.ResponseWriter, _ *http.Request) {})

	counted := totalHttpRequestsToUri.WithLabelValues("200", "fixed", "GET")
	before := testutil.ToFloat64(counted)

	for _, p := range []string{"/static", "/static/app.js", "/health", "/staticky", "/"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, p, nil))
	}
	assert.Equal(t, 2.0, testutil.ToFloat64(counted)-before)
}

func TestObserveRosterChange(t *testing.T) {
	ok := rosterChanges.WithLabelValues("Chess Club", OpSignup, OutcomeOK)
	before := testutil.ToFloat64(ok)
	ObserveRosterChange("Chess Club", OpSignup, OutcomeOK)
	assert.Equal(t, 1.0, testutil.ToFloat64(ok)-before)

	unknown := rosterChanges.WithLabelValues("_unknown", OpUnregister, OutcomeNotFound)
	before = testutil.ToFloat64(unknown)
	ObserveRosterChange("Does Not Exist", OpUnregister, OutcomeNotFound)
	assert.Equal(t, 1.0, testutil.ToFloat64(unknown)-before)
}

func TestSetParticipants(t *testing.T) {
	SetParticipants("Math Club", 3)
	assert.Equal(t, 3.0, testutil.ToFloat64(participants.WithLabelValues("Math Club")))
}

func TestProvideMetrics_ServesExposition(t *testing.T) {
	SetParticipants("Drama Club", 2)

	rec := httptest.NewRecorder()
	ProvideMetrics().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `activity_participants{activity="Drama Club"} 2`)
}
