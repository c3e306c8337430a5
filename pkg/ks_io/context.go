// pkg/ks_io/context.go

package ks_io

import (
	"context"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/CodeMonkeyCybersecurity/keysmith/pkg/ks_err"
	"github.com/CodeMonkeyCybersecurity/keysmith/pkg/logger"
	"github.com/CodeMonkeyCybersecurity/keysmith/pkg/shared"
	"github.com/CodeMonkeyCybersecurity/keysmith/pkg/telemetry"
	cerr "github.com/cockroachdb/errors"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// RuntimeContext carries the per-command context, logger and span.
type RuntimeContext struct {
	Ctx        context.Context
	Log        *zap.Logger
	Timestamp  time.Time
	Span       trace.Span
	Command    string
	Component  string
	Attributes map[string]string
}

// NewContext starts the command span and scopes a logger to it. cmdPath is
// the full command path, e.g. "keysmith create password"; its last word is
// the command and the word before it the component.
func NewContext(parent context.Context, cmdPath string) *RuntimeContext {
	if parent == nil {
		parent = context.Background()
	}
	comp, cmdName := splitCommandPath(cmdPath)
	ctx, span := telemetry.Start(parent, comp+"."+cmdName,
		attribute.String("category", telemetry.CommandCategory(comp)))

	log := logger.GetLogger().Named(comp).With(
		zap.String("component", comp),
		zap.String("command", cmdName),
	)
	if sc := span.SpanContext(); sc.IsValid() {
		log = log.With(zap.String("trace_id", sc.TraceID().String()))
	}

	return &RuntimeContext{
		Ctx:        ctx,
		Log:        log,
		Timestamp:  time.Now(),
		Span:       span,
		Command:    cmdName,
		Component:  comp,
		Attributes: make(map[string]string),
	}
}

// HandlePanic recovers panics, logs them, and converts them to an internal
// error. It must be deferred directly.
func (rc *RuntimeContext) HandlePanic(errPtr *error) {
	if r := recover(); r != nil {
		*errPtr = ks_err.NewInternalError("command panicked", cerr.AssertionFailedf("panic: %v", r))
		rc.Log.Error("Panic recovered", zap.Any("panic", r))
	}
}

// End logs the outcome, closes the span with summary attributes, and
// flushes the logger.
func (rc *RuntimeContext) End(errPtr *error) {
	defer rc.Span.End()

	var err error
	if errPtr != nil {
		err = *errPtr
	}
	duration := time.Since(rc.Timestamp)

	switch {
	case err == nil:
		rc.Log.Debug("Command completed", zap.Duration("duration", duration))
	case ks_err.IsExpectedUserError(err):
		rc.Log.Warn("Command rejected", zap.Duration("duration", duration), zap.Error(err))
	default:
		rc.Log.Error("Command failed", zap.Duration("duration", duration), zap.Error(err))
	}

	attrs := []attribute.KeyValue{
		attribute.Bool("success", err == nil),
		attribute.Int64("duration_ms", duration.Milliseconds()),
		attribute.String("os", runtime.GOOS),
		attribute.String("version", shared.Version),
		attribute.String("error_type", telemetry.ClassifyError(err)),
	}
	for k, v := range rc.Attributes {
		attrs = append(attrs, attribute.String(k, v))
	}
	rc.Span.SetAttributes(attrs...)

	if syncErr := logger.Sync(); syncErr != nil {
		_, _ = os.Stderr.WriteString("keysmith: failed to sync logger: " + syncErr.Error() + "\n")
	}
}

func splitCommandPath(path string) (component, command string) {
	fields := strings.Fields(path)
	switch len(fields) {
	case 0:
		return shared.BinaryName, "unknown"
	case 1:
		return shared.BinaryName, fields[0]
	default:
		return fields[len(fields)-2], fields[len(fields)-1]
	}
}
