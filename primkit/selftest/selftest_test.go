package selftest

import (
	"errors"
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltinChecksPass(t *testing.T) {
	var names []string
	err := Run(Checks(), func(name string, err error) {
		names = append(names, name)
		assert.NoError(t, err, name)
	})
	require.NoError(t, err)
	assert.Len(t, names, len(Checks()))
	assert.Contains(t, names, "hex-codec")
}

func TestRunAggregatesFailures(t *testing.T) {
	errA, errB := errors.New("a broke"), errors.New("b broke")
	checks := []Check{
		{"a", func() error { return errA }},
		{"ok", func() error { return nil }},
		{"b", func() error { return errB }},
	}
	err := Run(checks, nil)
	require.Error(t, err)

	var merr *multierror.Error
	require.ErrorAs(t, err, &merr)
	require.Len(t, merr.Errors, 2)
	assert.ErrorIs(t, merr.Errors[0], errA)
	assert.ErrorIs(t, merr.Errors[1], errB)
	assert.Contains(t, err.Error(), "b: b broke")
}
