package serverfx

import (
	"context"
	"crypto/tls"
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/joeydtaylor/steeze-activities/pkg/activities"
	"github.com/joeydtaylor/steeze-activities/pkg/bundlefx"
	"github.com/joeydtaylor/steeze-activities/pkg/core"
	"github.com/joeydtaylor/steeze-activities/pkg/electrician"
	"github.com/joeydtaylor/steeze-activities/pkg/manifest"
	"github.com/joeydtaylor/steeze-activities/pkg/middleware/logger"
	"github.com/joeydtaylor/steeze-activities/pkg/registry"
	"github.com/joeydtaylor/steeze-activities/pkg/transport/httpx"
	"github.com/joeydtaylor/steeze-activities/pkg/web"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Options allow per-deployment env keys/defaults.
type Options struct {
	Service         string // for logs only
	ManifestEnv     string // e.g. "ACTIVITIES_MANIFEST"
	DefaultManifest string // e.g. "manifest.toml"
	ListenAddrEnv   string // e.g. "SERVER_LISTEN_ADDRESS"
	DefaultListen   string // e.g. ":8000"
	TLSCertEnv      string // e.g. "SSL_SERVER_CERTIFICATE"
	TLSKeyEnv       string // e.g. "SSL_SERVER_KEY"
}

func DefaultOptions() Options {
	return Options{
		Service:         "activities",
		ManifestEnv:     "ACTIVITIES_MANIFEST",
		DefaultManifest: "manifest.toml",
		ListenAddrEnv:   "SERVER_LISTEN_ADDRESS",
		DefaultListen:   ":8000",
		TLSCertEnv:      "SSL_SERVER_CERTIFICATE",
		TLSKeyEnv:       "SSL_SERVER_KEY",
	}
}

// ---- Manifest + registry ----

func provideManifest(opts Options, log *zap.Logger) (manifest.Config, error) {
	path := envOr(opts.ManifestEnv, opts.DefaultManifest)
	cfg, found, err := core.LoadConfig(path)
	if err != nil {
		log.Error("manifest load failed", zap.Error(err), zap.String("path", path))
		return manifest.Config{}, err
	}
	if !found {
		log.Info("manifest not found, using built-in default", zap.String("path", path))
	}
	return cfg, nil
}

func provideRegistry(cfg manifest.Config, log *zap.Logger) (*registry.Registry, error) {
	reg, err := registry.New(cfg.Seed())
	if err != nil {
		log.Error("registry seed invalid", zap.Error(err))
		return nil, err
	}
	log.Info("registry seeded", zap.Int("activities", reg.List().Len()))
	return reg, nil
}

// ---- Roster event relay ----

func provideRelay(lc fx.Lifecycle, log *zap.Logger) (electrician.RelayClient, error) {
	ec, err := electrician.NewRelayFromEnv()
	if err != nil {
		return nil, err
	}
	if electrician.IsNoop(ec) {
		log.Info("relay disabled (ELECTRICIAN_TARGET unset)")
	} else {
		log.Info("relay enabled", zap.String("ELECTRICIAN_TARGET", os.Getenv("ELECTRICIAN_TARGET")))
	}
	lc.Append(fx.Hook{OnStop: func(context.Context) error { return ec.Close() }})
	return ec, nil
}

func provideNotifier(rel electrician.RelayClient, cfg manifest.Config, log *zap.Logger) *activities.Notifier {
	return activities.NewNotifier(rel, cfg.Events, log)
}

func provideHandlers(api *activities.API) (*core.Handlers, error) {
	hs := core.NewHandlers()
	if err := api.Register(hs); err != nil {
		return nil, err
	}
	return hs, nil
}

// ---- Router ----

type routerDeps struct {
	fx.In

	Cfg      manifest.Config
	LogMW    *logger.Middleware
	Metrics  http.Handler `name:"metrics"`
	R        httpx.Router
	Handlers *core.Handlers
	Log      *zap.Logger
}

func provideRouter(d routerDeps) http.Handler {
	return core.BuildRouter(d.Cfg, core.BuildDeps{
		LogMW:    d.LogMW,
		Metrics:  d.Metrics,
		Router:   d.R,
		Handlers: d.Handlers,
		Static:   web.Handler(),
		Log:      d.Log,
	})
}

// ---- Server lifecycle ----

type serverDeps struct {
	fx.In
	Opts   Options
	Logger *zap.Logger
	App    http.Handler `name:"app"`
}

func registerHooks(lc fx.Lifecycle, sh fx.Shutdowner, d serverDeps) {
	addr := envOr(d.Opts.ListenAddrEnv, d.Opts.DefaultListen)
	cert := os.Getenv(d.Opts.TLSCertEnv)
	key := os.Getenv(d.Opts.TLSKeyEnv)

	srv := &http.Server{
		Addr:         addr,
		Handler:      d.App,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
		TLSConfig:    &tls.Config{MinVersion: tls.VersionTLS13, MaxVersion: tls.VersionTLS13},
	}
	useTLS := fileExists(cert) && fileExists(key)

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			serve := func() error {
				srv.TLSConfig = nil
				return srv.ListenAndServe()
			}
			if useTLS {
				d.Logger.Info("server starting (TLS)",
					zap.String("service", d.Opts.Service),
					zap.String("addr", addr),
					zap.String("cert", cert),
				)
				serve = func() error { return srv.ListenAndServeTLS(cert, key) }
			} else {
				d.Logger.Info("server starting (PLAINTEXT)",
					zap.String("service", d.Opts.Service),
					zap.String("addr", addr),
				)
			}
			go func() {
				if err := serve(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					d.Logger.Error("server failed", zap.Error(err))
					_ = sh.Shutdown(fx.ExitCode(1))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			d.Logger.Info("server stopping", zap.String("service", d.Opts.Service))
			return srv.Shutdown(ctx)
		},
	})
}

// ---- Public Fx module ----

func Module(opts Options) fx.Option {
	return fx.Options(
		// Supply options to DI.
		fx.Supply(opts),

		// Logger, access log, metrics
		bundlefx.Module,

		// Router implementation
		fx.Provide(httpx.NewChi),

		// Domain
		fx.Provide(provideManifest),
		fx.Provide(provideRegistry),
		fx.Provide(provideRelay),
		fx.Provide(provideNotifier),
		fx.Provide(activities.New),
		fx.Provide(provideHandlers),

		// Router (named "app")
		fx.Provide(
			fx.Annotate(
				provideRouter,
				fx.ResultTags(`name:"app"`),
			),
		),

		// HTTP server lifecycle
		fx.Invoke(registerHooks),
	)
}

// ---- helpers ----

func fileExists(path string) bool {
	if path == "" {
		return false
	}
	_, err := os.Stat(path)
	return err == nil
}

func envOr(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
