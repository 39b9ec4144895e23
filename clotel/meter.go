package clotel

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
)

// NewMeterProvider initializes otel provider for metrics throughout the application.
func NewMeterProvider(res *resource.Resource, mtr metric.Reader) *metric.MeterProvider {
	mtp := metric.NewMeterProvider(
		metric.WithReader(mtr),
		metric.WithResource(res))

	// set globally in case libraries don't allow injecting
	otel.SetMeterProvider(mtp)

	return mtp
}

// NewMetricReader inits a periodic reader that pushes to the collector when telemetry is enabled. Otherwise
// a manual reader is returned that is never collected.
func NewMetricReader(cfg Config) (metric.Reader, error) {
	if !cfg.Enabled {
		return metric.NewManualReader(), nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.MetricExporterConnectTimeout)
	defer cancel()

	exp, err := otlpmetricgrpc.New(ctx, otlpmetricgrpc.WithInsecure(),
		otlpmetricgrpc.WithEndpoint(cfg.ExporterEndpoint))
	if err != nil {
		return nil, fmt.Errorf("failed to init exporter: %w", err)
	}

	return metric.NewPeriodicReader(exp), nil
}
