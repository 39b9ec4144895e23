// Package clotel provides OpenTelemetry tracing and metrics for the provisioner.
package clotel

import (
	"context"

	"github.com/crewlinker/clinfra/clconfig"
	"go.opentelemetry.io/contrib/propagators/aws/xray"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// moduleName for naming conventions.
const moduleName = "clotel"

// base module with di setup shared between test and prod environment.
func base() fx.Option {
	return fx.Module(moduleName,
		// the incoming logger will be named after the module
		fx.Decorate(func(l *zap.Logger) *zap.Logger { return l.Named(moduleName) }),
		// provide the environment configuration
		clconfig.Provide[Config](clconfig.Prefix(moduleName)),
		// we can use the xray id generator in all cases
		fx.Provide(fx.Annotate(xray.NewIDGenerator, fx.As(new(sdktrace.IDGenerator)))),
		// we also provide an xray propagator for anywhere in code we need this
		fx.Provide(func() propagation.TextMapPropagator { return xray.Propagator{} }),
		fx.Provide(NewResource),
		// provide the tracer provider, flush everything on shutdown
		fx.Provide(fx.Annotate(NewTracerProvider,
			fx.OnStop(func(ctx context.Context, tp *sdktrace.TracerProvider) error { return tp.Shutdown(ctx) }),
		)),
		// provide the meter provider, flush everything on shutdown
		fx.Provide(fx.Annotate(NewMeterProvider,
			fx.OnStop(func(ctx context.Context, mp *sdkmetric.MeterProvider) error { return mp.Shutdown(ctx) }),
		)),
		// also provide as more generic interfaces
		fx.Provide(func(tp *sdktrace.TracerProvider) trace.TracerProvider { return tp }),
		fx.Provide(func(mp *sdkmetric.MeterProvider) metric.MeterProvider { return mp }),
	)
}

// Prod provides telemetry that is exported to a collector over grpc, if enabled.
func Prod() fx.Option {
	return fx.Options(base(),
		fx.Provide(NewSpanExporter),
		fx.Provide(NewMetricReader),
	)
}

// Test configures the DI for a test environment. Spans are kept in memory and metrics can be collected
// through the manual reader.
func Test() fx.Option {
	return fx.Options(base(),
		fx.Provide(tracetest.NewInMemoryExporter),
		fx.Provide(func(e *tracetest.InMemoryExporter) sdktrace.SpanExporter { return e }),
		fx.Provide(sdkmetric.NewManualReader),
		fx.Provide(func(r *sdkmetric.ManualReader) sdkmetric.Reader { return r }),
	)
}
