// pkg/telemetry/telemetry.go
package telemetry

import (
	"context"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/CodeMonkeyCybersecurity/keysmith/pkg/ks_err"
	"github.com/CodeMonkeyCybersecurity/keysmith/pkg/xdg"
	cerr "github.com/cockroachdb/errors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/metric"
	metricnoop "go.opentelemetry.io/otel/metric/noop"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdkresource "go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.21.0"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// GeneratedCounterName is the metric incremented for every secret produced.
const GeneratedCounterName = "keysmith.secrets.generated"

var (
	mu       sync.RWMutex
	tracer   trace.Tracer = noop.NewTracerProvider().Tracer("keysmith")
	shutdown              = func(context.Context) error { return nil }
	enabled  bool
)

// Init configures OpenTelemetry; call this early in main(). When enabled is
// false noop tracer and meter providers are installed and nothing is
// written. When enabled, spans and metrics are appended as JSON lines to
// path.
func Init(service string, on bool, path string) error {
	mu.Lock()
	defer mu.Unlock()

	if !on {
		tp := noop.NewTracerProvider()
		otel.SetTracerProvider(tp)
		otel.SetMeterProvider(metricnoop.NewMeterProvider())
		tracer = tp.Tracer(service)
		shutdown = func(context.Context) error { return nil }
		enabled = false
		return nil
	}

	if path == "" {
		path = DefaultPath()
	}
	if err := xdg.EnsureDir(path, 0o700); err != nil {
		return cerr.Wrap(err, "failed to create telemetry directory")
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return cerr.Wrap(err, "failed to open telemetry file")
	}

	// both exporters share the file; lockedWriter keeps their lines whole
	out := &lockedWriter{w: file}

	// stdout exporter, pointed at the file
	exp, err := stdouttrace.New(
		stdouttrace.WithWriter(out),
		stdouttrace.WithoutTimestamps(),
	)
	if err != nil {
		_ = file.Close()
		return cerr.Wrap(err, "failed to create file exporter")
	}

	res := sdkresource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceName(service),
		attribute.String("host.name", hostname()),
	)
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exp),
		sdktrace.WithResource(res),
	)

	metricExp, err := stdoutmetric.New(
		stdoutmetric.WithWriter(out),
		stdoutmetric.WithoutTimestamps(),
	)
	if err != nil {
		_ = tp.Shutdown(context.Background())
		_ = file.Close()
		return cerr.Wrap(err, "failed to create metric exporter")
	}
	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(metricExp)),
		sdkmetric.WithResource(res),
	)

	otel.SetTracerProvider(tp)
	otel.SetMeterProvider(mp)
	tracer = tp.Tracer(service)
	enabled = true
	shutdown = func(ctx context.Context) error {
		// the periodic reader exports its final collection on shutdown
		err := cerr.CombineErrors(mp.Shutdown(ctx), tp.Shutdown(ctx))
		if closeErr := file.Close(); err == nil {
			err = closeErr
		}
		return err
	}
	return nil
}

type lockedWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (l *lockedWriter) Write(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.w.Write(p)
}

// Shutdown flushes pending spans and metrics and closes the telemetry file.
func Shutdown(ctx context.Context) error {
	mu.Lock()
	fn := shutdown
	shutdown = func(context.Context) error { return nil }
	mu.Unlock()
	return fn(ctx)
}

// IsEnabled reports whether the last Init turned tracing on.
func IsEnabled() bool {
	mu.RLock()
	defer mu.RUnlock()
	return enabled
}

// Start a telemetry span with optional attributes.
func Start(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	if ctx == nil {
		ctx = context.Background()
	}
	mu.RLock()
	t := tracer
	mu.RUnlock()
	return t.Start(ctx, name, trace.WithAttributes(attrs...))
}

// RecordGenerated adds n to the generated-secrets counter under kind
// (password, pin, passphrase). It goes through the global meter provider,
// which Init points at the telemetry file when enabled.
func RecordGenerated(ctx context.Context, kind string, n int) {
	if n <= 0 {
		return
	}
	counter, err := otel.Meter("keysmith").Int64Counter(
		GeneratedCounterName,
		metric.WithDescription("Number of secrets generated"),
	)
	if err != nil {
		return
	}
	counter.Add(ctx, int64(n), metric.WithAttributes(attribute.String("kind", kind)))
}

// CommandCategory groups a command path for span attributes.
func CommandCategory(cmd string) string {
	switch {
	case strings.HasPrefix(cmd, "create"):
		return "generation"
	case strings.HasPrefix(cmd, "inspect"):
		return "evaluation"
	default:
		return "general"
	}
}

// ClassifyError names the error category for span attributes.
func ClassifyError(err error) string {
	if err == nil {
		return ""
	}
	return ks_err.CategoryOf(err).String()
}

// DefaultPath is the spans file under the user's state directory.
func DefaultPath() string {
	return xdg.StatePath("keysmith", "telemetry.jsonl")
}

func hostname() string {
	if h, err := os.Hostname(); err == nil {
		return h
	}
	return "unknown"
}
