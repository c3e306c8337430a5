// Package output renders command results as text, JSON or YAML. Results go
// to the writer the command hands in, never to the logger.
package output

import (
	"strings"

	"github.com/CodeMonkeyCybersecurity/keysmith/pkg/ks_err"
)

type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat accepts text, json or yaml (and yml), case-insensitively.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "text", "plain":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", ks_err.InvalidRequestf("unknown output format %q", s)
	}
}
