// pkg/config/config.go

// Package config resolves keysmith settings from defaults, a YAML file, a
// .env file, KEYSMITH_* environment variables and bound command flags, in
// increasing order of precedence.
package config

import (
	"os"
	"strings"

	"github.com/CodeMonkeyCybersecurity/keysmith/pkg/ks_err"
	"github.com/CodeMonkeyCybersecurity/keysmith/pkg/shared"
	"github.com/CodeMonkeyCybersecurity/keysmith/pkg/verify"
	"github.com/CodeMonkeyCybersecurity/keysmith/pkg/xdg"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Configuration keys.
const (
	KeyPasswordLength           = "password.length"
	KeyPasswordPreset           = "password.preset"
	KeyPasswordExcludeAmbiguous = "password.exclude_ambiguous"
	KeyPINLength                = "pin.length"
	KeyPassphraseWords          = "passphrase.words"
	KeyPassphraseSeparator      = "passphrase.separator"
	KeyBatchCount               = "batch.count"
	KeyOutputFormat             = "output.format"
	KeyOutputColor              = "output.color"
	KeyLogLevel                 = "log.level"
	KeyLogFile                  = "log.file"
	KeyTelemetryEnabled         = "telemetry.enabled"
	KeyTelemetryFile            = "telemetry.file"
)

// DotEnvFile is read from the working directory when present.
const DotEnvFile = ".env"

var defaults = map[string]any{
	KeyPasswordLength:           12,
	KeyPasswordPreset:           "",
	KeyPasswordExcludeAmbiguous: false,
	KeyPINLength:                4,
	KeyPassphraseWords:          4,
	KeyPassphraseSeparator:      "-",
	KeyBatchCount:               5,
	KeyOutputFormat:             "text",
	KeyOutputColor:              true,
	KeyLogLevel:                 "info",
	KeyLogFile:                  "",
	KeyTelemetryEnabled:         false,
	KeyTelemetryFile:            "",
}

type Config struct {
	Password   PasswordConfig   `mapstructure:"password"`
	PIN        PINConfig        `mapstructure:"pin"`
	Passphrase PassphraseConfig `mapstructure:"passphrase"`
	Batch      BatchConfig      `mapstructure:"batch"`
	Output     OutputConfig     `mapstructure:"output"`
	Log        LogConfig        `mapstructure:"log"`
	Telemetry  TelemetryConfig  `mapstructure:"telemetry"`
}

type PasswordConfig struct {
	Length           int    `mapstructure:"length" validate:"gte=4"`
	Preset           string `mapstructure:"preset" validate:"omitempty,oneof=easy medium strong"`
	ExcludeAmbiguous bool   `mapstructure:"exclude_ambiguous"`
}

type PINConfig struct {
	Length int `mapstructure:"length" validate:"gte=4"`
}

type PassphraseConfig struct {
	Words     int    `mapstructure:"words" validate:"gte=1"`
	Separator string `mapstructure:"separator" validate:"required"`
}

// BatchConfig is the default for --count when a batch is requested without
// one; single generation stays the default.
type BatchConfig struct {
	Count int `mapstructure:"count" validate:"gte=1,lte=50"`
}

type OutputConfig struct {
	Format string `mapstructure:"format" validate:"oneof=text json yaml"`
	Color  bool   `mapstructure:"color"`
}

type LogConfig struct {
	Level string `mapstructure:"level" validate:"oneof=debug info warn warning error"`
	File  string `mapstructure:"file"`
}

type TelemetryConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	File    string `mapstructure:"file"`
}

// New returns a viper instance with defaults and environment lookup set up.
func New() *viper.Viper {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	SetViperEnvPrefix(v, shared.EnvPrefix)
	return v
}

// SetViperEnvPrefix makes KEYSMITH_PASSWORD_LENGTH override password.length.
func SetViperEnvPrefix(v *viper.Viper, prefix string) {
	v.SetEnvPrefix(prefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
}

// DefaultPath is $XDG_CONFIG_HOME/keysmith/config.yaml.
func DefaultPath() string {
	return xdg.ConfigPath(shared.BinaryName, "config.yaml")
}

// ReadFile merges a YAML config file into v. An explicit path must exist;
// the default path is optional.
func ReadFile(v *viper.Viper, path string) error {
	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}

	if _, err := os.Stat(path); err != nil {
		if !explicit && os.IsNotExist(err) {
			return nil
		}
		return ks_err.NewConfigError("cannot read config file "+path, err,
			"Check the --config path or remove the flag to use defaults")
	}

	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		return ks_err.NewConfigError("cannot parse config file "+path, err,
			"The config file must be valid YAML")
	}
	return nil
}

// LoadDotEnv exports variables from a .env file that are not already set in
// the environment. A missing file is not an error.
func LoadDotEnv(path string) error {
	if path == "" {
		path = DotEnvFile
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return ks_err.NewConfigError("cannot parse "+path, err)
	}
	return nil
}

// FromViper decodes and validates the resolved configuration.
func FromViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, ks_err.NewConfigError("cannot decode configuration", ks_err.WrapConfigError(err))
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate reports every invalid setting in one config error.
func (c *Config) Validate() error {
	if err := verify.Struct(c); err != nil {
		return ks_err.NewConfigError("invalid configuration", ks_err.WrapValidationError(err),
			"Fix the listed settings in the config file, environment or flags")
	}
	return nil
}
