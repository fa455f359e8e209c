package telemetry

import (
	"context"
	"strconv"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// HTTPMetrics records request counts and latencies against the global
// meter provider, so it is a no-op until Init installs one. Instrument
// names are prefixed with the configured app name.
type HTTPMetrics struct {
	requests metric.Int64Counter
	duration metric.Float64Histogram
}

func NewHTTPMetrics(cfg Config) (*HTTPMetrics, error) {
	meter := otel.Meter(cfg.MetricName("http"), metric.WithInstrumentationVersion(cfg.AppVersion))

	requests, err := meter.Int64Counter(cfg.MetricName("http.requests"),
		metric.WithDescription("Number of HTTP requests served"))
	if err != nil {
		return nil, err
	}

	duration, err := meter.Float64Histogram(cfg.MetricName("http.duration"),
		metric.WithDescription("HTTP request latency"),
		metric.WithUnit("ms"))
	if err != nil {
		return nil, err
	}

	return &HTTPMetrics{requests: requests, duration: duration}, nil
}

func (m *HTTPMetrics) Record(ctx context.Context, method, route string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}

	attrs := metric.WithAttributes(
		attribute.String("http.method", method),
		attribute.String("http.route", route),
		attribute.String("http.status_code", strconv.Itoa(status)),
	)
	m.requests.Add(ctx, 1, attrs)
	m.duration.Record(ctx, float64(elapsed)/float64(time.Millisecond), attrs)
}
