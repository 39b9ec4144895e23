// Package clprovision runs the provisioning steps in their fixed order against a shared state.
package clprovision

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/crewlinker/clinfra/clbuildinfo"
	"github.com/crewlinker/clinfra/clzap"
	"github.com/samber/lo"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
	"go.uber.org/zap"
)

// ErrMissingInput is returned when a step runs before the identifiers it consumes are known.
var ErrMissingInput = errors.New("missing input")

// Orchestrator runs the steps of a provisioning run.
type Orchestrator struct {
	steps  []Step
	logs   *zap.Logger
	info   *clbuildinfo.Info
	tracer trace.Tracer
}

// New inits the orchestrator. The tracer provider is optional.
func New(logs *zap.Logger, steps []Step, info *clbuildinfo.Info, trp trace.TracerProvider) *Orchestrator {
	if trp == nil {
		trp = noop.NewTracerProvider()
	}

	return &Orchestrator{
		steps:  steps,
		logs:   logs,
		info:   info,
		tracer: trp.Tracer("github.com/crewlinker/clinfra/clprovision"),
	}
}

// Run executes all steps sequentially and stops at the first failure. The state is returned in all
// cases, on failure it holds what was created before the failing step. Nothing is rolled back.
func (o *Orchestrator) Run(ctx context.Context) (*State, error) {
	ctx, span := o.tracer.Start(ctx, "provision", trace.WithAttributes(
		attribute.String("clinfra.run_id", o.info.RunID()),
		attribute.String("clinfra.version", o.info.Version()),
		attribute.Int("clinfra.steps", len(o.steps))))
	defer span.End()

	logs := o.logs.With(zap.String("run_id", o.info.RunID()))
	ctx = clzap.WithLogger(ctx, logs)

	start, state := time.Now(), NewState()
	logs.Info("starting provisioning", zap.Int("steps", len(o.steps)))

	for i, step := range o.steps {
		if err := o.runStep(ctx, i, step, state); err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			logs.Error("provisioning failed", zap.Error(err), zap.Object("state", state))

			return state, err
		}
	}

	logs.Info("provisioning completed",
		zap.Duration("duration", time.Since(start)),
		zap.Object("state", state))

	return state, nil
}

// runStep runs a single step in its own span.
func (o *Orchestrator) runStep(ctx context.Context, idx int, step Step, state *State) (err error) {
	ctx, span := o.tracer.Start(ctx, step.Name(), trace.WithAttributes(
		attribute.Int("clinfra.step.index", idx),
		attribute.StringSlice("clinfra.step.consumes", step.Consumes()),
		attribute.StringSlice("clinfra.step.produces", step.Produces())))
	defer span.End()

	logs := clzap.Log(ctx, o.logs).With(
		zap.String("step", step.Name()),
		zap.String("progress", fmt.Sprintf("%d/%d", idx+1, len(o.steps))))

	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
	}()

	if missing := lo.Filter(step.Consumes(), func(key string, _ int) bool {
		return state.Lookup(key) == ""
	}); len(missing) > 0 {
		return fmt.Errorf("step %s: %w: %s", step.Name(), ErrMissingInput, strings.Join(missing, ", "))
	}

	start := time.Now()
	logs.Info("step starting")

	if err := step.Run(clzap.WithLogger(ctx, logs), state); err != nil {
		logs.Error("step failed", zap.Error(err), zap.Duration("duration", time.Since(start)))

		return fmt.Errorf("step %s: %w", step.Name(), err)
	}

	logs.Info("step completed", zap.Duration("duration", time.Since(start)),
		zap.Strings("produced", lo.Map(step.Produces(), func(key string, _ int) string {
			return key + "=" + state.Lookup(key)
		})))

	return nil
}
