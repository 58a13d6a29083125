package scope

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loomworks/loom/errors"
)

func TestString(t *testing.T) {
	assert.Equal(t, "pipeline", Pipeline.String())
	assert.Equal(t, "scenario", Scenario.String())
	assert.Equal(t, "cycle", Cycle.String())
	assert.Equal(t, "global", Global.String())
	assert.Equal(t, "unknown", Scope(99).String())
}

func TestOrdering(t *testing.T) {
	// Wider scopes compare greater; orchestrators rely on this when
	// picking the narrowest scope that satisfies every consumer.
	assert.True(t, Pipeline < Scenario)
	assert.True(t, Scenario < Cycle)
	assert.True(t, Cycle < Global)
}

func TestParse(t *testing.T) {
	t.Run("round trips every scope", func(t *testing.T) {
		for _, s := range []Scope{Pipeline, Scenario, Cycle, Global} {
			parsed, err := Parse(s.String())
			require.NoError(t, err)
			assert.Equal(t, s, parsed)
		}
	})

	t.Run("rejects unknown tokens", func(t *testing.T) {
		_, err := Parse("galaxy")
		require.Error(t, err)
		assert.True(t, errors.IsConfigurationError(err))
	})
}

func TestTextMarshalling(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		text, err := Scenario.MarshalText()
		require.NoError(t, err)
		assert.Equal(t, "scenario", string(text))

		var s Scope
		require.NoError(t, s.UnmarshalText(text))
		assert.Equal(t, Scenario, s)
	})

	t.Run("marshal rejects unknown scope", func(t *testing.T) {
		_, err := Scope(0).MarshalText()
		require.Error(t, err)
	})

	t.Run("unmarshal rejects unknown token", func(t *testing.T) {
		var s Scope
		err := s.UnmarshalText([]byte("nope"))
		require.Error(t, err)
		assert.True(t, errors.IsConfigurationError(err))
	})
}
