package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultLoggerIsSafe(t *testing.T) {
	// Package-level helpers must not panic before Initialize is called.
	require.NotNil(t, Logger)
	assert.NotPanics(t, func() {
		Infow("info before init", "key", "value")
		Warnw("warn before init")
		Debugw("debug before init")
		Errorw("error before init")
	})
}

func TestInitialize(t *testing.T) {
	t.Run("console output", func(t *testing.T) {
		err := Initialize(false)
		require.NoError(t, err)
		require.NotNil(t, Logger)
		assert.False(t, JSONOutput)
		Cleanup()
	})

	t.Run("json output", func(t *testing.T) {
		err := Initialize(true)
		require.NoError(t, err)
		require.NotNil(t, Logger)
		assert.True(t, JSONOutput)
		Cleanup()
	})
}
