// pkg/config/context.go

package config

import "context"

type ctxKey struct{}

// WithContext attaches the resolved configuration to ctx.
func WithContext(ctx context.Context, cfg *Config) context.Context {
	return context.WithValue(ctx, ctxKey{}, cfg)
}

// FromContext returns the configuration attached by WithContext, or the
// defaults when there is none.
func FromContext(ctx context.Context) *Config {
	if ctx != nil {
		if cfg, ok := ctx.Value(ctxKey{}).(*Config); ok && cfg != nil {
			return cfg
		}
	}
	return Defaults()
}

// Defaults is the configuration with no file, env or flags applied.
func Defaults() *Config {
	return &Config{
		Password:   PasswordConfig{Length: defaults[KeyPasswordLength].(int)},
		PIN:        PINConfig{Length: defaults[KeyPINLength].(int)},
		Passphrase: PassphraseConfig{Words: defaults[KeyPassphraseWords].(int), Separator: defaults[KeyPassphraseSeparator].(string)},
		Batch:      BatchConfig{Count: defaults[KeyBatchCount].(int)},
		Output:     OutputConfig{Format: defaults[KeyOutputFormat].(string), Color: defaults[KeyOutputColor].(bool)},
		Log:        LogConfig{Level: defaults[KeyLogLevel].(string)},
	}
}
