package core

import (
	"net/http"
	"strings"

	chimd "github.com/go-chi/chi/v5/middleware"
	manifest "github.com/joeydtaylor/steeze-activities/pkg/manifest"
	hmetrics "github.com/joeydtaylor/steeze-activities/pkg/middleware/metrics"
	"go.uber.org/zap"
)

// BuildRouter mounts every manifest route on d.Router. Routes naming an
// unregistered inproc handler are still mounted and answer 500, and are
// logged at build time.
func BuildRouter(cfg manifest.Config, d BuildDeps) http.Handler {
	if d.Log == nil {
		d.Log = zap.NewNop()
	}
	r := d.Router
	r.Use(chimd.RequestID, chimd.Recoverer, chimd.Heartbeat("/ping"))
	if d.LogMW != nil {
		r.Use(d.LogMW.Middleware())
	}
	var mopts []hmetrics.Option
	if cfg.Static.Enable {
		mopts = append(mopts, hmetrics.WithSkipPrefix(cfg.Static.Mount))
	}
	r.Use(hmetrics.Collect(mopts...))

	r.NotFound(notFound)
	r.MethodNotAllowed(methodNotAllowed)

	if d.Metrics != nil {
		r.Handle(http.MethodGet, "/metrics", d.Metrics)
	}
	if cfg.Static.Enable && d.Static != nil {
		r.Mount(cfg.Static.Mount, http.StripPrefix(cfg.Static.Mount, d.Static))
	}

	for _, rt := range cfg.Routes {
		h := applyPolicy(wrapRoute(rt, d), rt.Policy)
		r.Handle(strings.ToUpper(rt.Method), rt.Path, h)
	}
	return r.Mux()
}
