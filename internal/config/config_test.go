package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("Reads values from the config file", func(t *testing.T) {
		// Given: a config file with players and redis settings
		path := filepath.Join(t.TempDir(), "config.yml")
		content := `log-level: debug
players:
  first: Alice
  second: Bob
no-color: true
redis:
  enabled: true
  host: redis
  port: "6380"
  channel: games
`
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		// When: the config is loaded
		conf, err := Load(path)

		// Then: every value comes from the file
		require.NoError(t, err)
		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, "Alice", conf.Players.First)
		assert.Equal(t, "Bob", conf.Players.Second)
		assert.True(t, conf.NoColor)
		assert.True(t, conf.Redis.Enabled)
		assert.Equal(t, "redis:6380", conf.Redis.GetRedisAddr())
		assert.Equal(t, "games", conf.Redis.Channel)
	})

	t.Run("Falls back to the environment when the file is missing", func(t *testing.T) {
		// Given: no config file and a player name in the environment
		t.Setenv("PLAYER_ONE", "Carol")
		path := filepath.Join(t.TempDir(), "missing.yml")

		// When: the config is loaded
		conf, err := Load(path)

		// Then: env values and defaults are used
		require.NoError(t, err)
		assert.Equal(t, "Carol", conf.Players.First)
		assert.Empty(t, conf.Players.Second)
		assert.Equal(t, "info", conf.LogLevel)
		assert.False(t, conf.NoColor)
		assert.False(t, conf.Redis.Enabled)
		assert.Equal(t, "localhost:6379", conf.Redis.GetRedisAddr())
		assert.Equal(t, "tictactoe", conf.Redis.Channel)
	})

	t.Run("Environment overrides the file", func(t *testing.T) {
		// Given: a config file and a conflicting env value
		path := filepath.Join(t.TempDir(), "config.yml")
		require.NoError(t, os.WriteFile(path, []byte("players:\n  second: Bob\n"), 0o600))
		t.Setenv("PLAYER_TWO", "Dave")

		// When: the config is loaded
		conf, err := Load(path)

		// Then: the env value wins
		require.NoError(t, err)
		assert.Equal(t, "Dave", conf.Players.Second)
	})

	t.Run("Colors stay on unless no-color is set", func(t *testing.T) {
		// Given: a file that leaves no-color out and one that sets it
		dir := t.TempDir()
		withColor := filepath.Join(dir, "color.yml")
		withoutColor := filepath.Join(dir, "plain.yml")
		require.NoError(t, os.WriteFile(withColor, []byte("log-level: info\n"), 0o600))
		require.NoError(t, os.WriteFile(withoutColor, []byte("no-color: true\n"), 0o600))

		// When: both are loaded
		colorConf, err := Load(withColor)
		require.NoError(t, err)
		plainConf, err := Load(withoutColor)
		require.NoError(t, err)

		// Then: only the second one turns colors off
		assert.False(t, colorConf.NoColor)
		assert.True(t, plainConf.NoColor)
	})

	t.Run("MustLoad panics on a broken file", func(t *testing.T) {
		// Given: a file that is not valid yaml
		path := filepath.Join(t.TempDir(), "config.yml")
		require.NoError(t, os.WriteFile(path, []byte("players: [\n"), 0o600))

		// Then: MustLoad panics
		assert.Panics(t, func() { MustLoad(path) })
	})
}
