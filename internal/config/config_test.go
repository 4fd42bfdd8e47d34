package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobscout/internal/config"
)

func TestLoadConfigDefaultsWithoutFile(t *testing.T) {
	cfg, err := config.LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "job_sites.xlsx", cfg.Input.File)
	assert.Equal(t, "A", cfg.Input.Column)
	assert.Equal(t, "found_jobs.xlsx", cfg.Output.File)
	assert.True(t, cfg.Crawler.UseBrowser)
	assert.Equal(t, 3, cfg.Crawler.RenderWait)
	assert.Equal(t, config.DefaultKeyMarkers, cfg.Keys.Markers)
	assert.Contains(t, cfg.Filter.AllowedLocations, "hong kong")
	assert.Contains(t, cfg.Filter.DisallowedLocations, "/fr-fr")
	assert.False(t, cfg.Redis.Enabled)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoadConfigOverrides(t *testing.T) {
	dir := t.TempDir()
	yaml := `
input:
  file: targets.xlsx
  column: CareersURL
crawler:
  use_browser: false
  render_wait: 7
filter:
  allowed_locations: ["new york"]
keys:
  markers: ["/vacancy/"]
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "jobscout.yaml"), []byte(yaml), 0644))

	cfg, err := config.LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "targets.xlsx", cfg.Input.File)
	assert.Equal(t, "CareersURL", cfg.Input.Column)
	assert.False(t, cfg.Crawler.UseBrowser)
	assert.Equal(t, 7, cfg.Crawler.RenderWait)
	assert.Equal(t, []string{"new york"}, cfg.Filter.AllowedLocations)
	assert.Equal(t, []string{"/vacancy/"}, cfg.Keys.Markers)

	// Untouched sections keep their defaults.
	assert.Equal(t, "found_jobs.xlsx", cfg.Output.File)
	assert.NotEmpty(t, cfg.Filter.DisallowedLocations)
}
