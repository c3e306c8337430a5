// pkg/ks_err/classification.go
//
// Error classification with exit codes. Generation and evaluation failures
// are always synchronous and never retryable; the category tells the CLI
// how to report them.

package ks_err

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorCategory classifies errors for appropriate handling
type ErrorCategory int

const (
	// CategorySystem - OS/filesystem issues (exit 1)
	CategorySystem ErrorCategory = iota
	// CategoryInvalidRequest - malformed or contradictory generation parameters (exit 2)
	CategoryInvalidRequest
	// CategoryInvalidInput - unusable input to the evaluator (exit 2)
	CategoryInvalidInput
	// CategoryConfig - bad configuration file, env or flag values (exit 2)
	CategoryConfig
	// CategoryInternal - bugs in keysmith itself (exit 3)
	CategoryInternal
)

func (c ErrorCategory) String() string {
	switch c {
	case CategoryInvalidRequest:
		return "invalid_request"
	case CategoryInvalidInput:
		return "invalid_input"
	case CategoryConfig:
		return "config"
	case CategoryInternal:
		return "internal"
	default:
		return "system"
	}
}

// ClassifiedError wraps an error with category and remediation info
type ClassifiedError struct {
	Category    ErrorCategory
	Message     string
	Cause       error
	Remediation []string

	sentinel bool
}

var (
	// ErrInvalidRequest matches every CategoryInvalidRequest error under errors.Is.
	ErrInvalidRequest = &ClassifiedError{Category: CategoryInvalidRequest, Message: "invalid request", sentinel: true}
	// ErrInvalidInput matches every CategoryInvalidInput error under errors.Is.
	ErrInvalidInput = &ClassifiedError{Category: CategoryInvalidInput, Message: "invalid input", sentinel: true}
	// ErrConfig matches every CategoryConfig error under errors.Is.
	ErrConfig = &ClassifiedError{Category: CategoryConfig, Message: "invalid configuration", sentinel: true}
)

// Error implements the error interface
func (e *ClassifiedError) Error() string {
	var sb strings.Builder

	sb.WriteString(e.Message)

	if e.Cause != nil && e.Cause.Error() != e.Message {
		sb.WriteString(fmt.Sprintf(": %v", e.Cause))
	}

	if len(e.Remediation) > 0 {
		sb.WriteString("\n\nHow to fix:")
		for i, step := range e.Remediation {
			sb.WriteString(fmt.Sprintf("\n  %d. %s", i+1, step))
		}
	}

	return sb.String()
}

// Unwrap returns the underlying error
func (e *ClassifiedError) Unwrap() error {
	return e.Cause
}

// Is matches the category sentinels.
func (e *ClassifiedError) Is(target error) bool {
	t, ok := target.(*ClassifiedError)
	if !ok || !t.sentinel {
		return false
	}
	return t.Category == e.Category
}

// ExitCode returns the appropriate exit code for this error category
func (e *ClassifiedError) ExitCode() int {
	switch e.Category {
	case CategoryInvalidRequest, CategoryInvalidInput, CategoryConfig:
		return 2
	case CategoryInternal:
		return 3
	default:
		return 1
	}
}

// GetExitCode extracts exit code from any error
// Returns 0 for nil, appropriate code for classified errors, 1 for others
func GetExitCode(err error) int {
	if err == nil {
		return 0
	}

	var classified *ClassifiedError
	if errors.As(err, &classified) {
		return classified.ExitCode()
	}

	return 1
}

// InvalidRequest reports malformed generation parameters.
func InvalidRequest(message string, remediation ...string) error {
	return &ClassifiedError{
		Category:    CategoryInvalidRequest,
		Message:     message,
		Remediation: remediation,
	}
}

// InvalidRequestf is InvalidRequest with a format string.
func InvalidRequestf(format string, args ...any) error {
	return InvalidRequest(fmt.Sprintf(format, args...))
}

// InvalidInput reports input the evaluator cannot score.
func InvalidInput(message string, remediation ...string) error {
	return &ClassifiedError{
		Category:    CategoryInvalidInput,
		Message:     message,
		Remediation: remediation,
	}
}

// NewConfigError creates an error for configuration problems
func NewConfigError(message string, cause error, remediation ...string) error {
	return &ClassifiedError{
		Category:    CategoryConfig,
		Message:     message,
		Cause:       cause,
		Remediation: remediation,
	}
}

// NewSystemError creates an error for OS or filesystem problems
func NewSystemError(message string, cause error, remediation ...string) error {
	return &ClassifiedError{
		Category:    CategorySystem,
		Message:     message,
		Cause:       cause,
		Remediation: remediation,
	}
}

// NewInternalError creates an error for keysmith bugs
func NewInternalError(message string, cause error) error {
	return &ClassifiedError{
		Category: CategoryInternal,
		Message:  message,
		Cause:    cause,
		Remediation: []string{
			"This is likely a bug in keysmith",
			"Include this error message and steps to reproduce when reporting it",
		},
	}
}

// CategoryOf returns the category of err, or CategorySystem when err is
// not classified.
func CategoryOf(err error) ErrorCategory {
	var classified *ClassifiedError
	if errors.As(err, &classified) {
		return classified.Category
	}
	return CategorySystem
}
