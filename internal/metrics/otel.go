package metrics

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	promexporter "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
)

const defaultServiceName = "nba-player-stats-service"

var (
	promReaderFactory = prometheusComponents
	otlpReaderFactory = buildOTLPReader
	instrumentFactory = newOtelInstruments
)

// TelemetryConfig controls how metrics are exported.
type TelemetryConfig struct {
	Enabled      bool
	Port         string
	ServiceName  string
	OtlpEndpoint string
	OtlpInsecure bool
}

// Setup configures OpenTelemetry metrics with a Prometheus exporter and optional OTLP exporter.
// It returns a Recorder, the Prometheus HTTP handler, and a shutdown function.
func Setup(ctx context.Context, cfg TelemetryConfig) (*Recorder, http.Handler, func(context.Context) error, error) {
	if !cfg.Enabled {
		return NewRecorder(), nil, func(context.Context) error { return nil }, nil
	}

	if cfg.ServiceName == "" {
		cfg.ServiceName = defaultServiceName
	}

	promReader, promHandler, err := promReaderFactory()
	if err != nil {
		return nil, nil, nil, err
	}

	opts := []sdkmetric.Option{sdkmetric.WithReader(promReader)}

	if cfg.OtlpEndpoint != "" {
		otlpReader, err := otlpReaderFactory(ctx, cfg.OtlpEndpoint, cfg.OtlpInsecure)
		if err != nil {
			return nil, nil, nil, err
		}
		opts = append(opts, sdkmetric.WithReader(otlpReader))
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(semconv.ServiceName(cfg.ServiceName)),
	)
	if err != nil {
		return nil, nil, nil, err
	}

	opts = append(opts, sdkmetric.WithResource(res))

	provider := sdkmetric.NewMeterProvider(opts...)

	otelInst, err := instrumentFactory(provider)
	if err != nil {
		return nil, nil, nil, err
	}

	rec := newRecorder(otelInst)
	shutdown := func(c context.Context) error {
		return provider.Shutdown(c)
	}

	return rec, promHandler, shutdown, nil
}

func buildOTLPReader(ctx context.Context, endpoint string, insecure bool) (sdkmetric.Reader, error) {
	otlpOpts := []otlpmetrichttp.Option{otlpmetrichttp.WithEndpoint(endpoint)}
	if insecure {
		otlpOpts = append(otlpOpts, otlpmetrichttp.WithInsecure())
	}
	otlpExp, err := otlpmetrichttp.New(ctx, otlpOpts...)
	if err != nil {
		return nil, err
	}
	return sdkmetric.NewPeriodicReader(otlpExp, sdkmetric.WithInterval(15*time.Second)), nil
}

// otelInstruments mirrors Recorder events onto OTel instruments.
// Latency histograms are recorded in milliseconds.
type otelInstruments struct {
	ctx context.Context

	requests        metric.Int64Counter
	requestLatency  metric.Float64Histogram
	attempts        metric.Int64Counter
	attemptErrors   metric.Int64Counter
	attemptLatency  metric.Float64Histogram
	rateLimits      metric.Int64Counter
	retryAfter      metric.Float64Histogram
	cacheLookups    metric.Int64Counter
	resolutions     metric.Int64Counter
	resolutionDelay metric.Float64Histogram
}

func prometheusComponents() (sdkmetric.Reader, http.Handler, error) {
	reg := prometheus.NewRegistry()
	promExp, err := promexporter.New(promexporter.WithRegisterer(reg))
	if err != nil {
		return nil, nil, err
	}
	return promExp, promhttp.HandlerFor(reg, promhttp.HandlerOpts{}), nil
}

// instrumentBuilder keeps the first creation error so construction reads flat.
type instrumentBuilder struct {
	meter metric.Meter
	err   error
}

func (b *instrumentBuilder) counter(name, desc string) metric.Int64Counter {
	c, err := b.meter.Int64Counter(name, metric.WithDescription(desc))
	if err != nil && b.err == nil {
		b.err = err
	}
	return c
}

func (b *instrumentBuilder) histogram(name, desc string) metric.Float64Histogram {
	h, err := b.meter.Float64Histogram(name, metric.WithDescription(desc))
	if err != nil && b.err == nil {
		b.err = err
	}
	return h
}

func newOtelInstruments(provider metric.MeterProvider) (*otelInstruments, error) {
	b := &instrumentBuilder{meter: provider.Meter(defaultServiceName)}
	inst := &otelInstruments{
		ctx:             context.Background(),
		requests:        b.counter("http_requests_total", "HTTP requests served"),
		requestLatency:  b.histogram("http_request_duration_ms", "HTTP request latency"),
		attempts:        b.counter("provider_attempts_total", "Upstream fetch attempts"),
		attemptErrors:   b.counter("provider_errors_total", "Failed upstream fetch attempts"),
		attemptLatency:  b.histogram("provider_duration_ms", "Upstream attempt latency"),
		rateLimits:      b.counter("provider_rate_limit_hits_total", "Upstream rate limit responses"),
		retryAfter:      b.histogram("provider_retry_after_ms", "Retry-After advertised by the upstream"),
		cacheLookups:    b.counter("stats_cache_lookups_total", "Monthly cache lookups by result"),
		resolutions:     b.counter("stats_resolutions_total", "Monthly requests by answering source"),
		resolutionDelay: b.histogram("stats_resolution_duration_ms", "Time to answer a monthly request"),
	}
	if b.err != nil {
		return nil, b.err
	}
	return inst, nil
}

func millis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}

func (o *otelInstruments) recordHTTPRequest(method, path string, status int, duration time.Duration) {
	if o == nil {
		return
	}
	attrs := metric.WithAttributes(
		attribute.String(AttrMethod, method),
		attribute.String(AttrPath, path),
		attribute.Int(AttrStatus, status),
	)
	o.requests.Add(o.ctx, 1, attrs)
	o.requestLatency.Record(o.ctx, millis(duration), attrs)
}

func (o *otelInstruments) recordProviderAttempt(provider string, duration time.Duration, err error) {
	if o == nil {
		return
	}
	attrs := metric.WithAttributes(attribute.String(AttrProvider, provider))
	o.attempts.Add(o.ctx, 1, attrs)
	o.attemptLatency.Record(o.ctx, millis(duration), attrs)
	if err != nil {
		o.attemptErrors.Add(o.ctx, 1, attrs)
	}
}

func (o *otelInstruments) recordRateLimit(provider string, retryAfter time.Duration) {
	if o == nil {
		return
	}
	attrs := metric.WithAttributes(attribute.String(AttrProvider, provider))
	o.rateLimits.Add(o.ctx, 1, attrs)
	if retryAfter > 0 {
		o.retryAfter.Record(o.ctx, millis(retryAfter), attrs)
	}
}

func (o *otelInstruments) recordCacheLookup(hit bool) {
	if o == nil {
		return
	}
	result := CacheMiss
	if hit {
		result = CacheHit
	}
	o.cacheLookups.Add(o.ctx, 1, metric.WithAttributes(attribute.String(AttrResult, result)))
}

func (o *otelInstruments) recordResolution(source string, duration time.Duration) {
	if o == nil {
		return
	}
	attrs := metric.WithAttributes(attribute.String(AttrSource, source))
	o.resolutions.Add(o.ctx, 1, attrs)
	o.resolutionDelay.Record(o.ctx, millis(duration), attrs)
}
