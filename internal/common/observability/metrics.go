package observability

import (
	"context"
	"log"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/prometheus"
	otelmetric "go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/sdk/metric"
)

type Observability struct {
	meterProvider     *metric.MeterProvider
	meter             otelmetric.Meter
	requestCounter    otelmetric.Int64Counter
	requestDuration   otelmetric.Float64Histogram
	universitiesGauge otelmetric.Int64UpDownCounter
}

func New(serviceName string) *Observability {
	exporter, err := prometheus.New()
	if err != nil {
		log.Printf("Failed to create Prometheus exporter: %v", err)
		return &Observability{}
	}

	provider := metric.NewMeterProvider(metric.WithReader(exporter))
	otel.SetMeterProvider(provider)

	meter := provider.Meter(serviceName)

	requestCounter, _ := meter.Int64Counter(
		"predictions.processed",
		otelmetric.WithDescription("Number of prediction requests processed"),
	)

	requestDuration, _ := meter.Float64Histogram(
		"predictions.duration",
		otelmetric.WithDescription("Prediction processing duration"),
		otelmetric.WithUnit("ms"),
	)

	universitiesGauge, _ := meter.Int64UpDownCounter(
		"catalog.universities",
		otelmetric.WithDescription("Number of universities loaded in the catalog"),
	)

	return &Observability{
		meterProvider:     provider,
		meter:             meter,
		requestCounter:    requestCounter,
		requestDuration:   requestDuration,
		universitiesGauge: universitiesGauge,
	}
}

func (o *Observability) RecordRequestProcessed(ctx context.Context, operation, status string) {
	if o.requestCounter != nil {
		o.requestCounter.Add(ctx, 1, otelmetric.WithAttributes(
			attribute.String("operation", operation),
			attribute.String("status", status),
		))
	}
}

func (o *Observability) RecordRequestDuration(ctx context.Context, duration time.Duration, operation string) {
	if o.requestDuration != nil {
		o.requestDuration.Record(ctx, float64(duration.Milliseconds()), otelmetric.WithAttributes(
			attribute.String("operation", operation),
		))
	}
}

func (o *Observability) RecordCatalogSize(ctx context.Context, n int) {
	if o.universitiesGauge != nil {
		o.universitiesGauge.Add(ctx, int64(n))
	}
}

func (o *Observability) Shutdown() {
	if o.meterProvider != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		o.meterProvider.Shutdown(ctx)
	}
}
