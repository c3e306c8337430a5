package verify

import (
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type inner struct {
	Length int `mapstructure:"length" validate:"gte=4"`
}

type sample struct {
	Inner  inner  `mapstructure:"inner"`
	Format string `mapstructure:"format" validate:"oneof=text json"`
	Name   string `validate:"required"`
	Count  int    `mapstructure:"count" validate:"lte=50"`
}

func TestStructValid(t *testing.T) {
	t.Parallel()
	assert.NoError(t, Struct(sample{Inner: inner{Length: 4}, Format: "json", Name: "x", Count: 50}))
}

func TestStructCollectsEveryViolation(t *testing.T) {
	t.Parallel()
	err := Struct(sample{Inner: inner{Length: 2}, Format: "xml", Count: 51})
	require.Error(t, err)

	var merr *multierror.Error
	require.ErrorAs(t, err, &merr)
	assert.Len(t, merr.Errors, 4)

	msg := err.Error()
	assert.Contains(t, msg, "inner.length must be at least 4 (got 2)")
	assert.Contains(t, msg, `format must be one of [text json] (got "xml")`)
	assert.Contains(t, msg, "Name is required")
	assert.Contains(t, msg, "count must be at most 50 (got 51)")
}

func TestStructNonStruct(t *testing.T) {
	t.Parallel()
	assert.Error(t, Struct(42))
}

func TestFieldPath(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "password.length", fieldPath("Config.password.length"))
	assert.Equal(t, "bare", fieldPath("bare"))
}
