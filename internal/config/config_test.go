package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadAppliesDefaults(t *testing.T) {
	path := writeConfig(t, `
data:
  graphPath: fast_graph.json
  registryPath: schedule_with_directionality.json
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 4000, cfg.Server.Port)
	assert.Equal(t, "development", cfg.Server.Env)
	assert.Equal(t, 2, cfg.Search.MaxTransfers)
	assert.Equal(t, 120, cfg.Search.WindowMinutes)
	assert.Equal(t, "fast_graph.json", cfg.Data.GraphPath)
}

func TestLoadExplicitValues(t *testing.T) {
	path := writeConfig(t, `
server:
  port: 8080
  env: production
  rateLimit: 25
data:
  graphPath: /data/graph.json
  registryPath: /data/schedule.json
search:
  maxTransfers: 1
  windowMinutes: 60
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "production", cfg.Server.Env)
	assert.Equal(t, 25, cfg.Server.RateLimit)
	assert.Equal(t, 1, cfg.Search.MaxTransfers)
	assert.Equal(t, 60, cfg.Search.WindowMinutes)
}

func TestLoadZeroSearchValuesFallBackToDefaults(t *testing.T) {
	// File-level zeros read as absent and take the defaults; a genuine
	// zero bound or window has to come from the flags.
	path := writeConfig(t, `
data:
  graphPath: g.json
  registryPath: s.json
search:
  maxTransfers: 0
  windowMinutes: 0
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Search.MaxTransfers)
	assert.Equal(t, 120, cfg.Search.WindowMinutes)
}

func TestLoadValidationErrors(t *testing.T) {
	tests := []struct {
		name     string
		contents string
	}{
		{
			name: "Missing data paths",
			contents: `
server:
  port: 8080
`,
		},
		{
			name: "Negative port",
			contents: `
server:
  port: -1
data:
  graphPath: g.json
  registryPath: s.json
`,
		},
		{
			name: "Unknown environment",
			contents: `
server:
  env: sandbox
data:
  graphPath: g.json
  registryPath: s.json
`,
		},
		{
			name: "Transfer bound too high",
			contents: `
data:
  graphPath: g.json
  registryPath: s.json
search:
  maxTransfers: 9
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.contents))
			assert.Error(t, err)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yml"))
	assert.Error(t, err)
}

func TestLoadMalformedYAML(t *testing.T) {
	_, err := Load(writeConfig(t, "server: ["))
	assert.Error(t, err)
}
