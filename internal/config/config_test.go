package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nitheesb/personal-calorie-tracker/internal/model"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(LoadOptions{})
	require.NoError(t, err)

	assert.Equal(t, "https://world.openfoodfacts.org", cfg.Remote.BaseURL)
	assert.Equal(t, 10, cfg.Remote.PageSize)
	assert.Equal(t, 12*time.Second, cfg.Remote.Timeout)
	assert.Equal(t, 2, cfg.Remote.MaxTries)
	assert.True(t, cfg.Cache.Enabled)
	assert.Equal(t, 7*24*time.Hour, cfg.Cache.SearchTTL)
	assert.Equal(t, 1850.0, cfg.Goals.Calories)
	assert.Equal(t, model.WeightGoalLose, cfg.Goals.WeightGoal)
	assert.Equal(t, 64.0, cfg.Goals.TargetWeight)
}

func TestLoadFileThenEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
remote:
  page_size: 5
goals:
  calories: 2200
  weight_goal: maintain
`), 0o600))

	t.Setenv("NTRITION_REMOTE__PAGE_SIZE", "20")
	t.Setenv("NTRITION_REMOTE__TIMEOUT", "3s")
	t.Setenv("NTRITION_DB_PATH", "/tmp/custom.db")

	cfg, err := Load(LoadOptions{ConfigPath: path})
	require.NoError(t, err)
	assert.Equal(t, 20, cfg.Remote.PageSize, "environment wins over file")
	assert.Equal(t, 3*time.Second, cfg.Remote.Timeout)
	assert.Equal(t, "/tmp/custom.db", cfg.DBPath)
	assert.Equal(t, 2200.0, cfg.Goals.Calories)
	assert.Equal(t, model.WeightGoalMaintain, cfg.Goals.WeightGoal)
	assert.Equal(t, 160.0, cfg.Goals.Protein, "unset keys keep defaults")
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	dotenv := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(dotenv, []byte("NTRITION_REMOTE__OFFLINE=true\n"), 0o600))
	t.Cleanup(func() { _ = os.Unsetenv("NTRITION_REMOTE__OFFLINE") })

	cfg, err := Load(LoadOptions{DotEnvPath: dotenv})
	require.NoError(t, err)
	assert.True(t, cfg.Remote.Offline)
}

func TestLoadMissingFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.yaml")

	_, err := Load(LoadOptions{ConfigPath: missing, DotEnvPath: filepath.Join(t.TempDir(), ".env")})
	require.NoError(t, err)

	_, err = Load(LoadOptions{ConfigPath: missing, Required: true})
	require.Error(t, err)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	t.Setenv("NTRITION_GOALS__WEIGHT_GOAL", "bulk")
	_, err := Load(LoadOptions{})
	require.Error(t, err)
}

func TestYAMLRendersEffectiveConfig(t *testing.T) {
	cfg, err := Load(LoadOptions{})
	require.NoError(t, err)
	out, err := cfg.YAML()
	require.NoError(t, err)
	assert.Contains(t, string(out), "base_url: https://world.openfoodfacts.org")
	assert.Contains(t, string(out), "timeout: 12s")
}
