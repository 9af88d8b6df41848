// SPDX-License-Identifier: MIT

package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/meshchan/config"
)

func TestDefault(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "two_hop", cfg.Interference.Model)
	assert.Equal(t, 2.0, cfg.Interference.COThreshold)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.True(t, cfg.Metrics.Enabled)
}

func TestParse(t *testing.T) {
	cfg, err := config.Parse([]byte(`
log:
  level: debug
  development: true
database:
  url: postgres://mesh@localhost/testbed
  max_conns: 8
  query_timeout: 5s
interference:
  model: channel_occupancy
  co_threshold: 3.5
metrics:
  enabled: false
`))
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.True(t, cfg.Log.Development)
	assert.Equal(t, "postgres://mesh@localhost/testbed", cfg.Database.URL)
	assert.Equal(t, int32(8), cfg.Database.MaxConns)
	assert.Equal(t, 5*time.Second, cfg.Database.QueryTimeout)
	assert.Equal(t, "channel_occupancy", cfg.Interference.Model)
	assert.Equal(t, 3.5, cfg.Interference.COThreshold)
	assert.False(t, cfg.Metrics.Enabled)
}

func TestParse_KeepsDefaults(t *testing.T) {
	cfg, err := config.Parse([]byte("interference:\n  model: two_hop_frac\n"))
	require.NoError(t, err)

	assert.Equal(t, "two_hop_frac", cfg.Interference.Model)
	assert.Equal(t, 2.0, cfg.Interference.COThreshold)
	assert.Equal(t, int32(4), cfg.Database.MaxConns)
	assert.Equal(t, 30*time.Second, cfg.Database.QueryTimeout)
}

func TestParse_Invalid(t *testing.T) {
	cases := map[string]string{
		"unknown model":    "interference:\n  model: ray_tracing\n",
		"bad level":        "log:\n  level: loud\n",
		"threshold range":  "interference:\n  co_threshold: 150\n",
		"zero conns":       "database:\n  max_conns: 0\n",
		"co without db":    "interference:\n  model: channel_occupancy\n",
		"malformed yaml":   "interference: [\n",
		"negative timeout": "database:\n  query_timeout: -1s\n",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := config.Parse([]byte(doc))
			require.ErrorIs(t, err, config.ErrInvalidConfig)
		})
	}
}

func TestParse_EnvOverrides(t *testing.T) {
	t.Setenv(config.EnvDatabaseURL, "postgres://env@db/testbed")
	t.Setenv(config.EnvLogLevel, "WARN")

	cfg, err := config.Parse([]byte("interference:\n  model: channel_occupancy\n"))
	require.NoError(t, err)
	assert.Equal(t, "postgres://env@db/testbed", cfg.Database.URL)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "meshchan.yaml")
	require.NoError(t, os.WriteFile(path, []byte("interference:\n  model: two_hop_frac\n"), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "two_hop_frac", cfg.Interference.Model)

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
