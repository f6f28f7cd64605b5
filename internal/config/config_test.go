package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/opencivic/campaign-cli/internal/textclean"
)

// chTempDir moves the test into an empty directory so a developer's local
// config.yaml can't leak into the assertions.
func chTempDir(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	origDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(origDir) })
}

func TestLoadDefaults(t *testing.T) {
	chTempDir(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, 1, cfg.Batch.MaxConcurrentLines)
	assert.Equal(t, "Candidates", cfg.Export.SheetName)
	assert.Equal(t, textclean.PlaceholderTitle, cfg.Clean.TitlePlaceholder)
	assert.Equal(t, textclean.PlaceholderNoSummary, cfg.Clean.NoSummaryPlaceholder)
	assert.Equal(t, textclean.PlaceholderBadSummary, cfg.Clean.BadSummaryPlaceholder)
}

func TestLoadFromYAML(t *testing.T) {
	chTempDir(t)

	yaml := `
log:
  level: debug
  format: console
batch:
  max_concurrent_lines: 8
clean:
  title_placeholder: "Sem título"
`
	dir, _ := os.Getwd()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0644))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, 8, cfg.Batch.MaxConcurrentLines)
	assert.Equal(t, "Sem título", cfg.Clean.TitlePlaceholder)
	// Defaults still apply for unset values
	assert.Equal(t, "Candidates", cfg.Export.SheetName)
	assert.Equal(t, textclean.PlaceholderNoSummary, cfg.Clean.NoSummaryPlaceholder)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	chTempDir(t)

	yaml := `
log:
  level: debug
`
	dir, _ := os.Getwd()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0644))

	t.Setenv("CAMPAIGN_LOG_LEVEL", "warn")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoadEnvOverridesDefaults(t *testing.T) {
	chTempDir(t)

	t.Setenv("CAMPAIGN_BATCH_MAX_CONCURRENT_LINES", "4")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Batch.MaxConcurrentLines)
}

func TestInitLoggerConsole(t *testing.T) {
	err := InitLogger(LogConfig{Level: "debug", Format: "console"})
	require.NoError(t, err)
	assert.NotNil(t, zap.L())
}

func TestInitLoggerJSON(t *testing.T) {
	err := InitLogger(LogConfig{Level: "info", Format: "json"})
	require.NoError(t, err)
	assert.NotNil(t, zap.L())
}

func TestInitLoggerBadLevel(t *testing.T) {
	err := InitLogger(LogConfig{Level: "shouting", Format: "json"})
	require.Error(t, err)
}
