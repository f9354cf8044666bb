// Package telemetry starts the OpenTelemetry tracer and meter providers and
// owns the instruments recorded by the stub client and the HTTP layer.
package telemetry

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.39.0"
)

const (
	ExporterStdout = "stdout"
	ExporterOTLP   = "otlp"
)

// Attribute keys shared by spans and metric points.
var (
	AttrHTTPMethod  = attribute.Key("http.method")
	AttrHTTPStatus  = attribute.Key("http.status_code")
	AttrPeerService = attribute.Key("peer.service")
	AttrOperation   = attribute.Key("todo.operation")
	AttrResult      = attribute.Key("result")
)

// Metrics are the instruments the service records into. A nil *Metrics means
// recording is off.
type Metrics struct {
	ServerRequestDuration metric.Float64Histogram
	ServerRequestTotal    metric.Int64Counter
	StubCallDuration      metric.Float64Histogram
	StubCallTotal         metric.Int64Counter
}

// Destination says where spans and metric readings are exported. Endpoint is
// a collector URL and is only read for ExporterOTLP.
type Destination struct {
	Exporter string
	Endpoint string
}

func (d Destination) validate() error {
	switch d.Exporter {
	case ExporterStdout:
		return nil
	case ExporterOTLP:
		if d.Endpoint == "" {
			return errors.New("otlp exporter requires an endpoint")
		}
		return nil
	default:
		return fmt.Errorf("unsupported exporter %q", d.Exporter)
	}
}

// collector splits Endpoint into the host:port the OTLP clients dial and
// whether plain HTTP is used. Anything but an https URL is sent in the clear.
func (d Destination) collector() (host string, insecure bool) {
	u, err := url.Parse(d.Endpoint)
	if err != nil || u.Host == "" {
		return d.Endpoint, true
	}
	return u.Host, u.Scheme != "https"
}

func (d Destination) spanExporter(ctx context.Context) (sdktrace.SpanExporter, error) {
	if d.Exporter == ExporterStdout {
		return stdouttrace.New(stdouttrace.WithPrettyPrint())
	}
	host, insecure := d.collector()
	opts := []otlptracehttp.Option{otlptracehttp.WithEndpoint(host)}
	if insecure {
		opts = append(opts, otlptracehttp.WithInsecure())
	}
	return otlptracehttp.New(ctx, opts...)
}

func (d Destination) metricExporter(ctx context.Context) (sdkmetric.Exporter, error) {
	if d.Exporter == ExporterStdout {
		return stdoutmetric.New()
	}
	host, insecure := d.collector()
	opts := []otlpmetrichttp.Option{otlpmetrichttp.WithEndpoint(host)}
	if insecure {
		opts = append(opts, otlpmetrichttp.WithInsecure())
	}
	return otlpmetrichttp.New(ctx, opts...)
}

// Providers is what Start brought up. The zero value stands for disabled
// telemetry and shuts down as a no-op.
type Providers struct {
	Tracer  *sdktrace.TracerProvider
	Meter   *sdkmetric.MeterProvider
	Metrics *Metrics
}

// Start builds both providers for serviceName, creates the instruments, then
// installs the providers as the otel globals together with W3C trace-context
// and baggage propagation. Nothing is installed when it fails.
func Start(ctx context.Context, serviceName string, dest Destination) (*Providers, error) {
	if err := dest.validate(); err != nil {
		return nil, err
	}

	res, err := resource.Merge(resource.Default(), resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceName(serviceName),
	))
	if err != nil {
		return nil, fmt.Errorf("describing service resource: %w", err)
	}

	spans, err := dest.spanExporter(ctx)
	if err != nil {
		return nil, fmt.Errorf("span exporter %s: %w", dest.Exporter, err)
	}
	p := &Providers{
		Tracer: sdktrace.NewTracerProvider(sdktrace.WithBatcher(spans), sdktrace.WithResource(res)),
	}

	readings, err := dest.metricExporter(ctx)
	if err != nil {
		_ = p.Shutdown(ctx)
		return nil, fmt.Errorf("metric exporter %s: %w", dest.Exporter, err)
	}
	p.Meter = sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(readings)),
		sdkmetric.WithResource(res),
	)

	if p.Metrics, err = NewMetrics(p.Meter, serviceName); err != nil {
		_ = p.Shutdown(ctx)
		return nil, err
	}

	otel.SetTracerProvider(p.Tracer)
	otel.SetMeterProvider(p.Meter)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))
	return p, nil
}

// Shutdown flushes pending spans and readings and stops both providers.
func (p *Providers) Shutdown(ctx context.Context) error {
	if p == nil {
		return nil
	}
	var errs []error
	if p.Tracer != nil {
		if err := p.Tracer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("stopping tracer provider: %w", err))
		}
	}
	if p.Meter != nil {
		if err := p.Meter.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("stopping meter provider: %w", err))
		}
	}
	return errors.Join(errs...)
}

// NewMetrics creates the instruments on a meter named after the service.
func NewMetrics(mp metric.MeterProvider, serviceName string) (*Metrics, error) {
	meter := mp.Meter(serviceName)
	var errs []error

	seconds := func(name, desc string) metric.Float64Histogram {
		h, err := meter.Float64Histogram(name, metric.WithDescription(desc), metric.WithUnit("s"))
		if err != nil {
			errs = append(errs, fmt.Errorf("instrument %s: %w", name, err))
		}
		return h
	}
	count := func(name, desc, unit string) metric.Int64Counter {
		c, err := meter.Int64Counter(name, metric.WithDescription(desc), metric.WithUnit(unit))
		if err != nil {
			errs = append(errs, fmt.Errorf("instrument %s: %w", name, err))
		}
		return c
	}

	m := &Metrics{
		ServerRequestDuration: seconds("http.server.request.duration", "Time spent serving inbound todo API requests"),
		ServerRequestTotal:    count("http.server.request.total", "Inbound todo API requests served", "{request}"),
		StubCallDuration:      seconds("todo.stub.call.duration", "Simulated todo API call time, injected latency included"),
		StubCallTotal:         count("todo.stub.call.total", "Simulated todo API calls", "{call}"),
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return m, nil
}
