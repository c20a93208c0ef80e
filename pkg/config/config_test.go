package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	t.Run("Should default to the original list file names", func(t *testing.T) {
		cfg := Default()

		assert.Equal(t, "last-names.txt", cfg.Input)
		assert.Equal(t, "last_names.txt", cfg.Output)
		assert.Empty(t, cfg.Lists)
		assert.Equal(t, "info", cfg.Log.Level)
		assert.False(t, cfg.Log.JSON)
		assert.False(t, cfg.Log.Source)
	})

	t.Run("Should pass validation", func(t *testing.T) {
		require.NoError(t, NewLoader().Validate(Default()))
	})
}

func TestGenerateEnvMappings(t *testing.T) {
	t.Run("Should only map logging keys", func(t *testing.T) {
		assert.Equal(t, map[string]string{
			"CAPNAMES_LOG_LEVEL":  "log.level",
			"CAPNAMES_LOG_JSON":   "log.json",
			"CAPNAMES_LOG_SOURCE": "log.source",
		}, GenerateEnvToConfigMap())
	})
}

func TestFromContext(t *testing.T) {
	t.Run("Should return the stored configuration", func(t *testing.T) {
		cfg := Default()
		cfg.Input = "male-first-names.txt"

		assert.Same(t, cfg, FromContext(ContextWithConfig(t.Context(), cfg)))
	})

	t.Run("Should fall back to defaults", func(t *testing.T) {
		assert.Equal(t, Default(), FromContext(t.Context()))
	})
}
