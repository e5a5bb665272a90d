// Package observe provides the observability primitives of kupu:
// OpenTelemetry metrics, tracing spans, a trace-aware structured logger,
// and HTTP middleware for the metrics endpoint.
//
// Metrics are recorded through the OpenTelemetry Metrics API and exported to
// Prometheus by [InitProvider]. A package-level [Metrics] instance
// ([DefaultMetrics]) serves the CLI; tests should use [NewMetrics] with
// their own [metric.MeterProvider] to avoid cross-test pollution.
package observe

import (
	"context"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/MrWong99/kupu/pkg/types"
)

// meterName is the instrumentation scope name used for all kupu metrics.
const meterName = "github.com/MrWong99/kupu"

// Metrics holds the metric instruments of the engine. All fields are safe
// for concurrent use.
type Metrics struct {
	// CorrectDuration tracks the latency of one correction run.
	CorrectDuration metric.Float64Histogram

	// CorrectionsApplied counts applied corrections. Attribute: tier.
	CorrectionsApplied metric.Int64Counter

	// CorrectionsSuggested counts corrections withheld below the confidence
	// threshold. Attribute: tier.
	CorrectionsSuggested metric.Int64Counter

	// ValidationViolations counts safety violations. Attribute: severity.
	ValidationViolations metric.Int64Counter

	// CommercialTiers counts commercial classifications. Attribute: tier.
	CommercialTiers metric.Int64Counter

	// BatchInFlight tracks texts currently being corrected by batch workers.
	BatchInFlight metric.Int64UpDownCounter

	// HTTPRequestDuration tracks requests to the metrics endpoint.
	// Attributes: method, path.
	HTTPRequestDuration metric.Float64Histogram
}

// latencyBuckets are histogram bucket boundaries in seconds, sized for
// in-memory text scanning.
var latencyBuckets = []float64{
	0.0001, 0.00025, 0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1,
}

// NewMetrics creates a fully initialised [Metrics] using mp.
func NewMetrics(mp metric.MeterProvider) (*Metrics, error) {
	m := mp.Meter(meterName)
	var err error
	met := &Metrics{}

	if met.CorrectDuration, err = m.Float64Histogram("kupu.correct.duration",
		metric.WithDescription("Latency of one correction run."),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(latencyBuckets...),
	); err != nil {
		return nil, err
	}
	if met.CorrectionsApplied, err = m.Int64Counter("kupu.corrections.applied",
		metric.WithDescription("Applied corrections by source tier."),
	); err != nil {
		return nil, err
	}
	if met.CorrectionsSuggested, err = m.Int64Counter("kupu.corrections.suggested",
		metric.WithDescription("Corrections withheld for review by source tier."),
	); err != nil {
		return nil, err
	}
	if met.ValidationViolations, err = m.Int64Counter("kupu.validation.violations",
		metric.WithDescription("Cultural safety violations by severity."),
	); err != nil {
		return nil, err
	}
	if met.CommercialTiers, err = m.Int64Counter("kupu.commercial.tier",
		metric.WithDescription("Commercial relevance classifications by tier."),
	); err != nil {
		return nil, err
	}
	if met.BatchInFlight, err = m.Int64UpDownCounter("kupu.batch.in_flight",
		metric.WithDescription("Texts currently being corrected by batch workers."),
	); err != nil {
		return nil, err
	}
	if met.HTTPRequestDuration, err = m.Float64Histogram("kupu.http.request.duration",
		metric.WithDescription("HTTP request latency by method and path."),
		metric.WithUnit("s"),
	); err != nil {
		return nil, err
	}

	return met, nil
}

var (
	defaultMetrics     *Metrics
	defaultMetricsOnce sync.Once
)

// DefaultMetrics returns the package-level [Metrics] instance, creating it on
// first call from [otel.GetMeterProvider]. Panics if instrument creation
// fails, which does not happen with the global provider.
func DefaultMetrics() *Metrics {
	defaultMetricsOnce.Do(func() {
		var err error
		defaultMetrics, err = NewMetrics(otel.GetMeterProvider())
		if err != nil {
			panic("observe: failed to create default metrics: " + err.Error())
		}
	})
	return defaultMetrics
}

// Attr is shorthand for [attribute.String].
func Attr(key, value string) attribute.KeyValue {
	return attribute.String(key, value)
}

// RecordCorrection records one correction run: its latency in seconds and
// one count per applied or suggested correction.
func (m *Metrics) RecordCorrection(ctx context.Context, res types.CorrectionResult, seconds float64) {
	m.CorrectDuration.Record(ctx, seconds)
	for _, rec := range res.Records {
		m.CorrectionsApplied.Add(ctx, 1, metric.WithAttributes(Attr("tier", string(rec.SourceTier))))
	}
	for _, rec := range res.Suggestions {
		m.CorrectionsSuggested.Add(ctx, 1, metric.WithAttributes(Attr("tier", string(rec.SourceTier))))
	}
}

// RecordValidation counts the violations of one safety check.
func (m *Metrics) RecordValidation(ctx context.Context, res types.ValidationResult) {
	for _, v := range res.Details {
		m.ValidationViolations.Add(ctx, 1, metric.WithAttributes(Attr("severity", string(v.Severity))))
	}
}

// RecordCommercial counts one commercial classification.
func (m *Metrics) RecordCommercial(ctx context.Context, score types.CommercialScore) {
	m.CommercialTiers.Add(ctx, 1, metric.WithAttributes(Attr("tier", string(score.Tier))))
}
