// pkg/crypto/redact.go

package crypto

import (
	"strings"
	"unicode/utf8"
)

// Redact masks a secret for log fields. It keeps only the length, which
// the strength report discloses anyway.
func Redact(s string) string {
	if s == "" {
		return "(empty)"
	}
	return strings.Repeat("*", utf8.RuneCountInString(s))
}

// RedactAll masks every secret in secrets.
func RedactAll(secrets []string) []string {
	out := make([]string, len(secrets))
	for i, s := range secrets {
		out[i] = Redact(s)
	}
	return out
}
