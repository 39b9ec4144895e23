// Package clbuildinfo provides build-time and per-process information about the running binary.
package clbuildinfo

import (
	"crypto/rand"
	"fmt"

	"github.com/crewlinker/clinfra/clconfig"
	"github.com/crewlinker/clinfra/clid"
	"github.com/oklog/ulid/v2"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// RunIDPrefix prefixes every run id.
const RunIDPrefix = "run"

// Config configures this package.
type Config struct{}

// Info provides build-time information to the rest of the application.
type Info struct {
	cfg Config

	version string
	runID   clid.ID
}

// New initializes the build info component. Every process gets a fresh run id so log lines, spans
// and created resources of one provisioning run can be correlated.
func New(cfg Config, logs *zap.Logger, version string) (*Info, error) {
	runID, err := clid.NewFromParts(RunIDPrefix, ulid.Now(), rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("failed to init run id: %w", err)
	}

	logs.Info("build info", zap.String("version", version), zap.Stringer("run_id", runID))

	return &Info{
		cfg:     cfg,
		version: version,
		runID:   runID,
	}, nil
}

// Version as determined at build time.
func (in Info) Version() string {
	return in.version
}

// RunID identifies this process.
func (in Info) RunID() string {
	return in.runID.String()
}

// moduleName for naming conventions.
const moduleName = "clbuildinfo"

// Prod configures the DI for providing build information.
func Prod(version string) fx.Option {
	return fx.Module(moduleName,
		// provide the environment configuration
		clconfig.Provide[Config](clconfig.Prefix(moduleName)),
		// the incoming logger will be named after the module
		fx.Decorate(func(l *zap.Logger) *zap.Logger { return l.Named(moduleName) }),
		// supply the version that is set with -ldflags
		fx.Supply(fx.Annotate(version, fx.ResultTags(`name:"version"`))),
		// provide the build info
		fx.Provide(fx.Annotate(New, fx.ParamTags(``, ``, `name:"version"`))),
	)
}

// Test provides di for testing where no specific version is required to be provided.
func Test() fx.Option {
	return Prod("v0.0.0-test")
}
