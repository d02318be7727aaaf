package serverfx

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"
)

func testOptions(t *testing.T, manifestBody string) Options {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("LOG_DIR", filepath.Join(dir, "log"))
	t.Setenv("ELECTRICIAN_TARGET", "")
	t.Setenv("TEST_LISTEN", "127.0.0.1:0")

	path := filepath.Join(dir, "manifest.toml")
	if manifestBody != "" {
		require.NoError(t, os.WriteFile(path, []byte(manifestBody), 0o644))
	}
	t.Setenv("TEST_MANIFEST", path)

	opts := DefaultOptions()
	opts.ManifestEnv = "TEST_MANIFEST"
	opts.ListenAddrEnv = "TEST_LISTEN"
	return opts
}

func startApp(t *testing.T, opts Options) http.Handler {
	t.Helper()
	var app http.Handler
	fxApp := fxtest.New(t,
		Module(opts),
		fx.Invoke(fx.Annotate(func(h http.Handler) { app = h }, fx.ParamTags(`name:"app"`))),
	)
	fxApp.RequireStart()
	t.Cleanup(fxApp.RequireStop)
	require.NotNil(t, app)
	return app
}

func serve(h http.Handler, method, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(method, target, nil))
	return rec
}

func TestModule_DefaultManifest(t *testing.T) {
	app := startApp(t, testOptions(t, ""))

	rec := serve(app, http.MethodGet, "/activities")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"Chess Club"`)

	rec = serve(app, http.MethodPost, "/activities/Chess%20Club/signup?email=new.student@mergington.edu")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = serve(app, http.MethodPost, "/activities/Chess%20Club/signup?email=new.student@mergington.edu")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = serve(app, http.MethodGet, "/")
	assert.Equal(t, http.StatusTemporaryRedirect, rec.Code)

	rec = serve(app, http.MethodGet, "/static/index.html")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = serve(app, http.MethodGet, "/metrics")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "activity_participants")
}

func TestModule_ManifestSeed(t *testing.T) {
	app := startApp(t, testOptions(t, `
service = "robotics"

[[route]]
path = "/activities"
handler = { type = "inproc", name = "activities.list" }

[[activity]]
name = "Robotics"
description = "Build robots"
schedule = "Saturdays"
max_participants = 4
participants = []
`))

	rec := serve(app, http.MethodGet, "/activities")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t,
		`{"Robotics":{"description":"Build robots","schedule":"Saturdays","max_participants":4,"participants":[]}}`,
		rec.Body.String())

	rec = serve(app, http.MethodGet, "/static/index.html")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestModule_BadSeedFailsStartup(t *testing.T) {
	opts := testOptions(t, `
[[route]]
path = "/activities"
handler = { type = "inproc", name = "activities.list" }

[[activity]]
name = "Twice"
max_participants = 1

[[activity]]
name = "Twice"
max_participants = 1
`)
	app := fx.New(Module(opts))
	assert.Error(t, app.Err())
}

func TestEnvOr(t *testing.T) {
	t.Setenv("SERVERFX_TEST_KEY", "")
	assert.Equal(t, "def", envOr("SERVERFX_TEST_KEY", "def"))
	t.Setenv("SERVERFX_TEST_KEY", "set")
	assert.Equal(t, "set", envOr("SERVERFX_TEST_KEY", "def"))
}

func TestFileExists(t *testing.T) {
	assert.False(t, fileExists(""))
	assert.False(t, fileExists(filepath.Join(t.TempDir(), "missing.crt")))

	f := filepath.Join(t.TempDir(), "present.crt")
	require.NoError(t, os.WriteFile(f, []byte("x"), 0o600))
	assert.True(t, fileExists(f))
}
