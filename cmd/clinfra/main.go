// Command clinfra provisions the wecloud network and its master and worker instances in one run.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/crewlinker/clinfra/claws"
	"github.com/crewlinker/clinfra/clbuildinfo"
	"github.com/crewlinker/clinfra/clec2"
	"github.com/crewlinker/clinfra/clenv"
	"github.com/crewlinker/clinfra/clotel"
	"github.com/crewlinker/clinfra/clprovision"
	"github.com/crewlinker/clinfra/clzap"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Version is set at build time with -ldflags.
var Version = "v0.0.0-dev"

func main() {
	os.Exit(run(context.Background()))
}

// run starts the dependencies, performs a single provisioning run and stops again. It returns the exit
// code. A failed run is already logged by the orchestrator.
func run(ctx context.Context) int {
	if _, err := clenv.LoadOptional(".env"); err != nil {
		fmt.Fprintf(os.Stderr, "failed to load env file: %v\n", err)

		return 1
	}

	var (
		orch *clprovision.Orchestrator
		logs *zap.Logger
	)

	app := fx.New(
		clzap.Fx(), clzap.Prod(),
		clbuildinfo.Prod(Version),
		clotel.Prod(),
		claws.Prod(),
		clec2.Prod(),
		clprovision.Prod(),
		fx.Populate(&orch, &logs))
	if err := app.Start(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "failed to start: %v\n", err)

		return 1
	}

	code := 0
	if _, err := orch.Run(ctx); err != nil {
		code = 1
	}

	if err := app.Stop(ctx); err != nil {
		logs.Error("failed to stop", zap.Error(err))
	}

	return code
}
