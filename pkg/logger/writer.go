// pkg/logger/writer.go

package logger

import (
	"os"
	"path/filepath"

	cerr "github.com/cockroachdb/errors"
	"go.uber.org/zap/zapcore"
)

// Log files may hold command metadata, so they are owner-only.
const (
	logDirPerm  os.FileMode = 0o700
	logFilePerm os.FileMode = 0o600
)

// GetLogFileWriter opens path for appending, creating it and its directory
// with owner-only permissions.
func GetLogFileWriter(path string) (zapcore.WriteSyncer, error) {
	if err := EnsureLogPermissions(path); err != nil {
		return nil, cerr.Wrapf(err, "log permission error for %s", path)
	}

	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, logFilePerm)
	if err != nil {
		return nil, cerr.Wrapf(err, "failed to open log file %s", path)
	}
	return zapcore.AddSync(file), nil
}

// EnsureLogPermissions creates the directory and file if missing and
// tightens the file mode.
func EnsureLogPermissions(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), logDirPerm); err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY, logFilePerm)
	if err != nil {
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Chmod(path, logFilePerm)
}
