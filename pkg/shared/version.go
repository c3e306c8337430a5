// pkg/shared/version.go

package shared

// Version is overridden at build time with
// -ldflags "-X github.com/CodeMonkeyCybersecurity/keysmith/pkg/shared.Version=..."
var Version = "dev"

const (
	BinaryName  = "keysmith"
	ServiceName = "keysmith"
	// EnvPrefix namespaces environment overrides, e.g. KEYSMITH_PASSWORD_LENGTH.
	EnvPrefix = "KEYSMITH"
)
