package clzap_test

import (
	"context"
	"fmt"

	"github.com/crewlinker/clinfra/clotel"
	"github.com/crewlinker/clinfra/clzap"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

var _ = Describe("run logger in context", func() {
	var logs *zap.Logger
	var obs *observer.ObservedLogs
	var trp *sdktrace.TracerProvider

	BeforeEach(func(ctx context.Context) {
		app := fx.New(clzap.Test(), clotel.Test(), fx.Populate(&logs, &obs, &trp))
		Expect(app.Start(ctx)).To(Succeed())
		DeferCleanup(app.Stop)
	})

	It("should report a missing logger", func(ctx context.Context) {
		found, ok := clzap.LoggerFromContext(ctx)
		Expect(ok).To(BeFalse())
		Expect(found).To(BeNil())
	})

	It("should discard without logger or fallback", func(ctx context.Context) {
		Expect(clzap.Log(ctx)).To(Equal(zap.NewNop()))
		Expect(clzap.Log(ctx, nil)).To(Equal(zap.NewNop()))
	})

	It("should use the provisioner's own logger as fallback", func(ctx context.Context) {
		clzap.Log(ctx, logs).Info("vpc created")
		Expect(obs.FilterMessage("vpc created").Len()).To(Equal(1))
	})

	It("should prefer the run logger over the fallback", func(ctx context.Context) {
		ctx = clzap.WithLogger(ctx, logs.With(zap.String("run_id", "run-01HGWKKAWGABYZR1S1G9JMY5HZ")))

		clzap.Log(ctx, logs.Named("clec2")).Info("subnet created")

		entries := obs.FilterMessage("subnet created").All()
		Expect(entries).To(HaveLen(1))
		Expect(entries[0].LoggerName).To(BeEmpty())
		Expect(entries[0].ContextMap()).To(HaveKeyWithValue("run_id", "run-01HGWKKAWGABYZR1S1G9JMY5HZ"))
		Expect(entries[0].ContextMap()).ToNot(HaveKey("span_id"))
	})

	It("should correlate with the span of the step", func(ctx context.Context) {
		ctx = clzap.WithLogger(ctx, logs.With(zap.String("run_id", "run-01HGWKKAWGABYZR1S1G9JMY5HZ")))
		ctx, span := trp.Tracer("test").Start(ctx, "network")
		defer span.End()

		clzap.Log(ctx).Info("step starting")

		sc := span.SpanContext()
		tid := sc.TraceID().String()
		Expect(obs.FilterMessage("step starting").All()[0].ContextMap()).To(SatisfyAll(
			HaveKeyWithValue("run_id", "run-01HGWKKAWGABYZR1S1G9JMY5HZ"),
			HaveKeyWithValue("span_id", sc.SpanID().String()),
			HaveKeyWithValue("trace_id", fmt.Sprintf("1-%s-%s", tid[:8], tid[8:])),
		))
	})

	It("should log trace ids in the xray format", func(ctx context.Context) {
		ctx = clzap.WithLogger(ctx, logs)
		ctx = trace.ContextWithSpanContext(ctx, trace.NewSpanContext(trace.SpanContextConfig{
			TraceID: trace.TraceID{0x01},
			SpanID:  trace.SpanID{0x02},
		}))

		clzap.Log(ctx).Info("route created")
		Expect(obs.FilterMessage("route created").All()[0].ContextMap()).To(SatisfyAll(
			HaveKeyWithValue("trace_id", "1-01000000-000000000000000000000000"),
			HaveKeyWithValue("span_id", "0200000000000000"),
		))
	})
})
