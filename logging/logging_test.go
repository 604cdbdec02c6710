package logging_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/plus3/tetris/logging"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("json to a plain writer", func(t *testing.T) {
		var buf bytes.Buffer
		logger, closer, err := logging.New(logging.Options{Out: &buf})
		require.NoError(t, err)
		defer closer.Close()

		logger.Info().Int("lines", 2).Msg("lines cleared")
		logger.Debug().Msg("hidden")

		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "lines cleared", entry["message"])
		assert.Equal(t, "info", entry["level"])
		assert.EqualValues(t, 2, entry["lines"])
		assert.Contains(t, entry, "time")
	})

	t.Run("level from options", func(t *testing.T) {
		var buf bytes.Buffer
		logger, _, err := logging.New(logging.Options{Out: &buf, Level: "warn"})
		require.NoError(t, err)

		logger.Info().Msg("quiet")
		assert.Zero(t, buf.Len())
		assert.Equal(t, zerolog.WarnLevel, logger.GetLevel())
	})

	t.Run("bad level", func(t *testing.T) {
		_, _, err := logging.New(logging.Options{Level: "loud"})
		assert.Error(t, err)
	})

	t.Run("file sink", func(t *testing.T) {
		var buf bytes.Buffer
		path := filepath.Join(t.TempDir(), "tetris.log")

		logger, closer, err := logging.New(logging.Options{Out: &buf, File: path, Discard: true})
		require.NoError(t, err)
		logger.Info().Msg("game started")
		require.NoError(t, closer.Close())

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), `"message":"game started"`)
		assert.Zero(t, buf.Len())
	})

	t.Run("discard", func(t *testing.T) {
		var buf bytes.Buffer
		logger, _, err := logging.New(logging.Options{Out: &buf, Discard: true})
		require.NoError(t, err)

		logger.Error().Msg("nobody hears this")
		assert.Zero(t, buf.Len())
	})
}

func TestIsTerminal(t *testing.T) {
	assert.False(t, logging.IsTerminal(&bytes.Buffer{}))

	f, err := os.CreateTemp(t.TempDir(), "plain")
	require.NoError(t, err)
	defer f.Close()
	assert.False(t, logging.IsTerminal(f))
}
