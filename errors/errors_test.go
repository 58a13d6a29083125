package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := New("test error")
	require.NotNil(t, err)
	assert.Equal(t, "test error", err.Error())
}

func TestWrap(t *testing.T) {
	original := New("original")
	wrapped := Wrap(original, "wrapped")

	assert.Contains(t, wrapped.Error(), "wrapped")
	assert.Contains(t, wrapped.Error(), "original")
	assert.True(t, Is(wrapped, original))
}

func TestIs(t *testing.T) {
	err1 := New("error 1")
	err2 := New("error 2")
	wrapped := Wrap(err1, "wrapped")

	assert.True(t, Is(wrapped, err1))
	assert.False(t, Is(wrapped, err2))
	assert.False(t, Is(nil, err1))
}

func TestIsConfigurationError(t *testing.T) {
	t.Run("detects sentinel", func(t *testing.T) {
		assert.True(t, IsConfigurationError(ErrInvalidConfiguration))
	})

	t.Run("detects wrapped sentinel", func(t *testing.T) {
		err := Wrap(ErrInvalidConfiguration, "config_id may not be empty")
		assert.True(t, IsConfigurationError(err))
	})

	t.Run("detects formatted constructor", func(t *testing.T) {
		err := NewConfigurationError("invalid config_id %q", "1bad")
		assert.True(t, IsConfigurationError(err))
		assert.Contains(t, err.Error(), `"1bad"`)
	})

	t.Run("rejects nil and unrelated errors", func(t *testing.T) {
		assert.False(t, IsConfigurationError(nil))
		assert.False(t, IsConfigurationError(New("other")))
		assert.False(t, IsConfigurationError(fmt.Errorf("plain error")))
	})
}

func TestIsBackendUnavailable(t *testing.T) {
	t.Run("detects sentinel", func(t *testing.T) {
		assert.True(t, IsBackendUnavailable(ErrBackendUnavailable))
	})

	t.Run("detects wrapped cause", func(t *testing.T) {
		cause := New("connection refused")
		err := WrapBackendUnavailable(cause, "reading node data")
		assert.True(t, IsBackendUnavailable(err))
		assert.Contains(t, err.Error(), "connection refused")
		assert.Contains(t, err.Error(), "reading node data")
	})

	t.Run("rejects unrelated errors", func(t *testing.T) {
		assert.False(t, IsBackendUnavailable(nil))
		assert.False(t, IsBackendUnavailable(ErrInvalidConfiguration))
	})
}

func TestStackTraces(t *testing.T) {
	err := New("with stack")
	trace := GetStack(err)
	require.NotNil(t, trace, "errors from this package should carry stack traces")
}
