// pkg/config/flags.go

package config

import (
	"github.com/hashicorp/go-multierror"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// BindFlags binds each named flag to its configuration key. A changed flag
// takes precedence over every other source.
func BindFlags(v *viper.Viper, flags *pflag.FlagSet, keys map[string]string) error {
	var result error
	for name, key := range keys {
		f := flags.Lookup(name)
		if f == nil {
			result = multierror.Append(result, &missingFlagError{name: name})
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			result = multierror.Append(result, err)
		}
	}
	return result
}

type missingFlagError struct{ name string }

func (e *missingFlagError) Error() string { return "no flag named --" + e.name }
