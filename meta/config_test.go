package meta

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseConfig(t *testing.T) {
	t.Run("empty document keeps defaults", func(t *testing.T) {
		cfg, err := ParseConfig(nil)

		require.NoError(t, err, "Empty config should parse")
		require.Equal(t, DefaultConfig(), cfg, "Defaults should be kept")
	})

	t.Run("overrides", func(t *testing.T) {
		cfg, err := ParseConfig([]byte("log_level: debug\nseed: 42\nfallback: first\npretty: false\n"))

		require.NoError(t, err, "Config should parse")
		require.Equal(t, "debug", cfg.LogLevel, "Log level should be overridden")
		require.Equal(t, uint64(42), cfg.Seed, "Seed should be overridden")
		require.Equal(t, FallbackFirst, cfg.Fallback, "Fallback should be overridden")
		require.False(t, cfg.Pretty, "Pretty should be overridden")
		require.Equal(t, "experiments/replay", cfg.MetricsDir, "Unset keys keep their default")
	})

	t.Run("unknown key", func(t *testing.T) {
		_, err := ParseConfig([]byte("colour: red\n"))

		require.Error(t, err, "Unknown keys should be rejected")
	})

	t.Run("invalid values", func(t *testing.T) {
		_, err := ParseConfig([]byte("fallback: smart\n"))
		require.ErrorContains(t, err, "invalid fallback", "Unknown fallback should be rejected")

		_, err = ParseConfig([]byte("log_level: loud\n"))
		require.ErrorContains(t, err, "invalid log level", "Unknown level should be rejected")
	})
}

func TestLoadConfig(t *testing.T) {
	t.Run("no path", func(t *testing.T) {
		cfg, err := LoadConfig("")

		require.NoError(t, err, "No path means defaults")
		require.Equal(t, DefaultConfig(), cfg, "Defaults should be returned")
	})

	t.Run("file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "hunt.yaml")
		require.NoError(t, os.WriteFile(path, []byte("seed: 7\n"), 0o644), "Config should be written")

		cfg, err := LoadConfig(path)

		require.NoError(t, err, "Config file should load")
		require.Equal(t, uint64(7), cfg.Seed, "Seed should come from the file")
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))

		require.ErrorIs(t, err, os.ErrNotExist, "Missing file error should be wrapped")
	})
}
