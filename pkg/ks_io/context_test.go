package ks_io

import (
	"context"
	"errors"
	"testing"

	"github.com/CodeMonkeyCybersecurity/keysmith/pkg/ks_err"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewContext(t *testing.T) {
	t.Parallel()
	rc := NewContext(context.Background(), "keysmith create password")
	require.NotNil(t, rc.Ctx)
	require.NotNil(t, rc.Log)
	require.NotNil(t, rc.Span)
	assert.Equal(t, "password", rc.Command)
	assert.Equal(t, "create", rc.Component)
	assert.NotNil(t, rc.Attributes)
	assert.False(t, rc.Timestamp.IsZero())

	var err error
	rc.End(&err)
}

func TestSplitCommandPath(t *testing.T) {
	t.Parallel()
	tests := []struct {
		path, component, command string
	}{
		{"keysmith inspect strength", "inspect", "strength"},
		{"keysmith create", "keysmith", "create"},
		{"version", "keysmith", "version"},
		{"", "keysmith", "unknown"},
	}
	for _, tt := range tests {
		comp, cmd := splitCommandPath(tt.path)
		assert.Equal(t, tt.component, comp, tt.path)
		assert.Equal(t, tt.command, cmd, tt.path)
	}
}

func TestHandlePanic(t *testing.T) {
	t.Parallel()
	rc := NewContext(context.Background(), "panics")

	run := func() (err error) {
		defer rc.HandlePanic(&err)
		panic("boom")
	}
	err := run()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")
	assert.Equal(t, 3, ks_err.GetExitCode(err))
}

func TestEndWithErrors(t *testing.T) {
	t.Parallel()
	for _, err := range []error{
		ks_err.InvalidRequest("bad length"),
		errors.New("disk on fire"),
	} {
		rc := NewContext(context.Background(), "end")
		rc.Attributes["kind"] = "pin"
		assert.NotPanics(t, func() { rc.End(&err) })
	}
}
