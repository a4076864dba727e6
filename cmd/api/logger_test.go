package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_NewLogger(t *testing.T) {
	t.Run("production_writes_json", func(t *testing.T) {
		var out bytes.Buffer
		logger := newLogger(&out, "production")

		logger.Info().Str("address", ":4000").Msg("starting server")

		var entry map[string]any
		require.NoError(t, json.Unmarshal(out.Bytes(), &entry))
		assert.Equal(t, "info", entry["level"])
		assert.Equal(t, appVersion, entry["version"])
		assert.Equal(t, ":4000", entry["address"])
		assert.Equal(t, "starting server", entry["message"])
	})

	t.Run("development_writes_console_lines", func(t *testing.T) {
		var out bytes.Buffer
		logger := newLogger(&out, "development")

		logger.Info().Msg("starting server")

		assert.Contains(t, out.String(), "starting server")
		assert.NotContains(t, out.String(), `"message"`)
	})

	t.Run("debug_is_filtered", func(t *testing.T) {
		var out bytes.Buffer
		logger := newLogger(&out, "staging")

		logger.Debug().Msg("noise")

		assert.Empty(t, out.String())
	})
}
