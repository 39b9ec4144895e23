package clprovision

import (
	"github.com/crewlinker/clinfra/clconfig"
	"github.com/crewlinker/clinfra/clec2"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// moduleName for naming conventions.
const moduleName = "clprovision"

// Prod provides the orchestrator of a complete provisioning run.
func Prod() fx.Option {
	return fx.Module(moduleName,
		// provide the environment configuration
		clconfig.Provide[Config](clconfig.Prefix(moduleName)),
		// resolve the bootstrap script once
		fx.Decorate(WithUserData),
		// the incoming logger will be named after the module
		fx.Decorate(func(l *zap.Logger) *zap.Logger { return l.Named(moduleName) }),
		// the ec2 provisioner creates the resources
		fx.Provide(func(p *clec2.Provisioner) Provisioner { return p }),
		// the fixed order of steps
		fx.Provide(Steps),
		// provide the orchestrator, tracing is optional
		fx.Provide(fx.Annotate(New, fx.ParamTags(``, ``, ``, `optional:"true"`))),
	)
}
