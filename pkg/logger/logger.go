// pkg/logger/logger.go

// Package logger owns the process-wide zap logger. Console output always goes
// to stderr; stdout is reserved for command results.
package logger

import (
	"io"
	"os"
	"strings"
	"sync"

	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	mu  sync.RWMutex
	log *zap.Logger
)

// Options controls how Init builds the logger.
type Options struct {
	// Level is a zap level name. Empty falls back to LOG_LEVEL, then info.
	Level string
	// File, when set, adds a JSON sink at that path.
	File string
	// Color enables coloured level names on the console.
	Color bool
	// Console overrides stderr. Used by tests.
	Console io.Writer
}

// Init builds the logger described by opts and installs it as the zap and
// otelzap global. A file sink that cannot be opened is reported on the
// console and skipped.
func Init(opts Options) *zap.Logger {
	level := opts.Level
	if level == "" {
		level = os.Getenv("LOG_LEVEL")
	}
	lvl := ParseLogLevel(level)

	console := opts.Console
	if console == nil {
		console = os.Stderr
	}

	encCfg := DefaultConsoleEncoderConfig()
	if !opts.Color {
		encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	}
	cores := []zapcore.Core{
		zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.Lock(zapcore.AddSync(console)), lvl),
	}

	var fileErr error
	if opts.File != "" {
		writer, err := GetLogFileWriter(opts.File)
		if err != nil {
			fileErr = err
		} else {
			cores = append(cores, zapcore.NewCore(zapcore.NewJSONEncoder(DefaultJSONEncoderConfig()), writer, lvl))
		}
	}

	l := zap.New(zapcore.NewTee(cores...), zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel))
	SetLogger(l)

	if fileErr != nil {
		l.Warn("Log file unavailable, logging to console only",
			zap.String("log_path", opts.File),
			zap.Error(fileErr))
	}
	l.Debug("Logger initialized",
		zap.String("log_level", lvl.String()),
		zap.String("log_path", opts.File))
	return l
}

// SetLogger replaces the global loggers.
func SetLogger(l *zap.Logger) {
	mu.Lock()
	defer mu.Unlock()
	log = l
	zap.ReplaceGlobals(l)
	otelzap.ReplaceGlobals(otelzap.New(l))
}

// L returns the installed logger, or nil before Init.
func L() *zap.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return log
}

// GetLogger returns the installed logger, installing the fallback if none is.
func GetLogger() *zap.Logger {
	if l := L(); l != nil {
		return l
	}
	fallback := NewFallbackLogger()
	SetLogger(fallback)
	return fallback
}

// Sync flushes buffered entries. Errors from syncing a terminal are ignored.
func Sync() error {
	l := L()
	if l == nil {
		return nil
	}
	if err := l.Sync(); err != nil && !isIgnorableSyncError(err) {
		return err
	}
	return nil
}

func isIgnorableSyncError(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "invalid argument") ||
		strings.Contains(msg, "inappropriate ioctl for device") ||
		strings.Contains(msg, "bad file descriptor")
}

// ParseLogLevel maps a level name to a zap level, defaulting to info.
func ParseLogLevel(level string) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return zapcore.DebugLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	case "dpanic":
		return zapcore.DPanicLevel
	case "panic":
		return zapcore.PanicLevel
	case "fatal":
		return zapcore.FatalLevel
	default:
		return zapcore.InfoLevel
	}
}
