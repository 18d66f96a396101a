//go:build unit

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("FullConfig", func(t *testing.T) {
		path := writeConfig(t, `
logging:
  level: debug
  format: compact
interface: eth0
hostname: device-1
store:
  path: /var/lib/golang-netman/config.db
events:
  buffer: 32
api:
  enabled: true
  listen: 0.0.0.0:8090
`)

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "eth0", cfg.Interface)
		assert.Equal(t, "device-1", cfg.Hostname)
		assert.Equal(t, "/var/lib/golang-netman/config.db", cfg.Store.Path)
		assert.Equal(t, 32, cfg.Events.Buffer)
		assert.True(t, cfg.API.Enabled)
		assert.Equal(t, "0.0.0.0:8090", cfg.API.Listen)
		assert.Equal(t, "debug", cfg.Logging.Level)
	})

	t.Run("DefaultsApplied", func(t *testing.T) {
		path := writeConfig(t, `
interface: eth0
store:
  path: /tmp/netman.db
`)

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, DefaultEventBuffer, cfg.Events.Buffer)
		assert.Equal(t, DefaultAPIListen, cfg.API.Listen)
		assert.False(t, cfg.API.Enabled)
	})

	t.Run("MissingFile", func(t *testing.T) {
		_, err := Load("/nonexistent/config.yaml")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read config file")
	})

	t.Run("InvalidYAML", func(t *testing.T) {
		path := writeConfig(t, "interface: [unclosed")
		_, err := Load(path)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse config file")
	})
}

func TestValidate(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		cfg := &Config{
			Interface: "eth0",
			Store:     StoreConfig{Path: "/tmp/netman.db"},
			Events:    EventsConfig{Buffer: 16},
			API:       APIConfig{Listen: "127.0.0.1:8090"},
		}
		assert.NoError(t, cfg.Validate())
	})

	t.Run("MissingInterface", func(t *testing.T) {
		cfg := &Config{
			Store: StoreConfig{Path: "/tmp/netman.db"},
		}
		assert.Error(t, cfg.Validate())
	})

	t.Run("MissingStorePath", func(t *testing.T) {
		cfg := &Config{Interface: "eth0"}
		assert.Error(t, cfg.Validate())
	})

	t.Run("BadListenAddress", func(t *testing.T) {
		cfg := &Config{
			Interface: "eth0",
			Store:     StoreConfig{Path: "/tmp/netman.db"},
			API:       APIConfig{Listen: "not-a-hostport"},
		}
		assert.Error(t, cfg.Validate())
	})

	t.Run("BadHostname", func(t *testing.T) {
		cfg := &Config{
			Interface: "eth0",
			Store:     StoreConfig{Path: "/tmp/netman.db"},
			Hostname:  "bad_host!",
		}
		assert.Error(t, cfg.Validate())
	})
}
