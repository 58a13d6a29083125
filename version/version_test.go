package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loomworks/loom/errors"
)

func TestLatest(t *testing.T) {
	t.Run("empty manager reports dev version", func(t *testing.T) {
		m := NewManager()
		assert.Equal(t, DevVersion, m.Latest())
	})

	t.Run("latest follows semantic precedence not insertion order", func(t *testing.T) {
		m := NewManager()
		require.NoError(t, m.Register("2.1.0"))
		require.NoError(t, m.Register("2.10.0"))
		require.NoError(t, m.Register("2.2.3"))
		assert.Equal(t, "2.10.0", m.Latest())
	})

	t.Run("prerelease sorts below release", func(t *testing.T) {
		m := NewManager()
		require.NoError(t, m.Register("1.3.0-rc.1"))
		require.NoError(t, m.Register("1.2.9"))
		assert.Equal(t, "1.3.0-rc.1", m.Latest())

		require.NoError(t, m.Register("1.3.0"))
		assert.Equal(t, "1.3.0", m.Latest())
	})

	t.Run("original spelling preserved", func(t *testing.T) {
		m := NewManager()
		require.NoError(t, m.Register("v3.0.1"))
		assert.Equal(t, "v3.0.1", m.Latest())
	})
}

func TestRegister(t *testing.T) {
	t.Run("rejects unparsable versions", func(t *testing.T) {
		m := NewManager()
		err := m.Register("not-a-version")
		require.Error(t, err)
		assert.True(t, errors.IsConfigurationError(err))
	})

	t.Run("re-registering is harmless", func(t *testing.T) {
		m := NewManager()
		require.NoError(t, m.Register("1.0.0"))
		require.NoError(t, m.Register("1.0.0"))
		assert.Len(t, m.Registered(), 1)
	})
}

func TestDefault(t *testing.T) {
	assert.Same(t, Default(), Default())
}
