// pkg/verify/verify.go

// Package verify runs go-playground struct validation and reports every
// violation at once.
package verify

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	cerr "github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
	"github.com/hashicorp/go-multierror"
)

var (
	once     sync.Once
	instance *validator.Validate
)

// Validator returns the shared validator. Field names in messages come from
// the mapstructure tag so they match configuration keys.
func Validator() *validator.Validate {
	once.Do(func() {
		instance = validator.New(validator.WithRequiredStructEnabled())
		instance.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("mapstructure"), ",", 2)[0]
			if name == "" || name == "-" {
				return f.Name
			}
			return name
		})
	})
	return instance
}

// Struct validates v. Each failed rule becomes one entry of the returned
// multierror.
func Struct(v any) error {
	err := Validator().Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !cerr.As(err, &verrs) {
		return cerr.Wrap(err, "validation could not run")
	}

	var result *multierror.Error
	for _, fe := range verrs {
		result = multierror.Append(result, fieldError(fe))
	}
	result.ErrorFormat = formatList
	return result.ErrorOrNil()
}

func fieldError(fe validator.FieldError) error {
	field := fieldPath(fe.Namespace())
	switch fe.Tag() {
	case "required":
		return fmt.Errorf("%s is required", field)
	case "gte", "min":
		return fmt.Errorf("%s must be at least %s (got %v)", field, fe.Param(), fe.Value())
	case "lte", "max":
		return fmt.Errorf("%s must be at most %s (got %v)", field, fe.Param(), fe.Value())
	case "oneof":
		return fmt.Errorf("%s must be one of [%s] (got %q)", field, fe.Param(), fe.Value())
	default:
		return fmt.Errorf("%s failed %q validation (got %v)", field, fe.Tag(), fe.Value())
	}
}

// fieldPath drops the leading type name: "Config.password.length" becomes
// "password.length".
func fieldPath(namespace string) string {
	if i := strings.IndexByte(namespace, '.'); i >= 0 {
		return namespace[i+1:]
	}
	return namespace
}

func formatList(errs []error) string {
	parts := make([]string, len(errs))
	for i, e := range errs {
		parts[i] = e.Error()
	}
	return strings.Join(parts, "; ")
}
