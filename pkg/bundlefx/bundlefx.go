// bundlefx/bundlefx.go
package bundlefx

import (
	"github.com/joeydtaylor/steeze-activities/pkg/middleware/logger"
	"github.com/joeydtaylor/steeze-activities/pkg/middleware/metrics"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
)

// Module provides the ambient middleware: system logger, access-log
// middleware and the named "metrics" handler. fx's own events go to the
// system logger.
var Module = fx.Options(
	logger.Module,
	metrics.Module,
	fx.WithLogger(func(l *zap.Logger) fxevent.Logger {
		return &fxevent.ZapLogger{Logger: l}
	}),
)
