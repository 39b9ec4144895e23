// Package clzap provides logging using the zap logging library
package clzap

import (
	"context"
	"fmt"
	"io"

	"github.com/crewlinker/clinfra/clconfig"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// Config configures the logging package.
type Config struct {
	// Level configures the minium logging level that will be captured.
	Level zapcore.Level `env:"LEVEL" envDefault:"info"`
	// FxLevel configures the level at which fx lifecycle events are logged.
	FxLevel zapcore.Level `env:"FX_LEVEL" envDefault:"debug"`
	// Outputs configures the zap outputs that will be opened for logging.
	Outputs []string `env:"OUTPUTS" envDefault:"stderr"`
	// ConsoleEncoding switches from JSON lines to human readable console output.
	ConsoleEncoding bool `env:"CONSOLE_ENCODING" envDefault:"false"`
}

// Fx is a convenient option that configures fx to use the zap logger.
func Fx() fx.Option {
	return fx.WithLogger(func(cfg Config, l *zap.Logger) fxevent.Logger {
		zl := &fxevent.ZapLogger{Logger: l.Named("fx")}
		zl.UseLogLevel(cfg.FxLevel)

		return zl
	})
}

// moduleName for naming conventions.
const moduleName = "clzap"

// newEncoder picks the encoder based on configuration. Console output is meant for running the
// provisioner by hand.
func newEncoder(cfg Config) zapcore.Encoder {
	if cfg.ConsoleEncoding {
		return zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	}

	return zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
}

// syncOnStop makes sure everything is flushed on shutdown.
func syncOnStop(_ context.Context, l *zap.Logger) error {
	_ = l.Sync() // ignore to support TTY: https://github.com/uber-go/zap/issues/880

	return nil
}

// Prod logging module. It can be used as a fx Module in production binaries to provide
// high-performance structured logging.
func Prod() fx.Option {
	return fx.Module(moduleName,
		// provide the environment configuration
		clconfig.Provide[Config](clconfig.Prefix(moduleName)),
		// allow environmental config to configure the level at which to log
		fx.Provide(func(cfg Config) zapcore.LevelEnabler { return cfg.Level }),
		// provide the zapper, make sure everything is synced on shutdown
		fx.Provide(fx.Annotate(zap.New, fx.OnStop(syncOnStop))),
		// provide dependencies to build the prod logger
		fx.Provide(zapcore.NewCore, newEncoder),
		// allow environment to configure where logs are being synced to
		fx.Provide(func(cfg Config) (zapcore.WriteSyncer, error) {
			sync, _, err := zap.Open(cfg.Outputs...)
			if err != nil {
				return nil, fmt.Errorf("failed to zap-open: %w", err)
			}

			return sync, nil
		}),
	)
}

// newObservedAndConsole outputs a tee logging core that writes to an observed underlying core and also writes
// console output to the configured writer.
func newObservedAndConsole(lvl zapcore.LevelEnabler, gw io.Writer) (zapcore.Core, *observer.ObservedLogs) {
	core, obs := observer.New(lvl)
	core = zapcore.NewTee(core,
		zapcore.NewCore(
			zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
			zapcore.AddSync(gw),
			lvl,
		))

	return core, obs
}

// Observed configures a logging module that allows for observing while also writing console output to
// a io.Writer that needs to be supplied.
func Observed() fx.Option {
	return fx.Module(moduleName+"-observed",
		// provide the environment configuration
		clconfig.Provide[Config](clconfig.Prefix(moduleName)),
		fx.Provide(func(cfg Config) zapcore.LevelEnabler { return cfg.Level }),
		fx.Provide(newObservedAndConsole),
		fx.Provide(fx.Annotate(zap.New, fx.OnStop(func(ctx context.Context, l *zap.Logger) error {
			if err := l.Sync(); err != nil {
				return fmt.Errorf("failed to sync: %w", err)
			}

			return nil
		}))),
	)
}
