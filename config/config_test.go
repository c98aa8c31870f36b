package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/space-cannon/parameter"
	"github.com/lixenwraith/space-cannon/score"
)

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	t.Cleanup(viper.Reset)

	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "./logs", cfg.LogDir)
	assert.Equal(t, parameter.DefaultTickRate, cfg.TickRate)
	assert.True(t, cfg.Audio.Enabled)
	assert.True(t, cfg.Audio.Music)
	assert.Equal(t, score.DriverSQLite, cfg.Score.Driver)
	assert.Equal(t, parameter.DefaultTuning(), cfg.Tuning)
	assert.Empty(t, UsedFile())
}

func TestLoad_WithConfigFile(t *testing.T) {
	t.Cleanup(viper.Reset)

	dir := t.TempDir()
	content := `
log_level = "debug"
tick_rate = 30

[audio]
music = false

[score]
driver = "memory"

[tuning]
target_speed = 140.0
halo_interval = "3s"
multishot_burst = 3
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName+".toml"), []byte(content), 0644))

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 30, cfg.TickRate)
	assert.True(t, cfg.Audio.Enabled)
	assert.False(t, cfg.Audio.Music)
	assert.Equal(t, "memory", cfg.Score.Driver)
	assert.Equal(t, 140.0, cfg.Tuning.TargetSpeed)
	assert.Equal(t, 3*time.Second, cfg.Tuning.HaloInterval)
	assert.Equal(t, 3, cfg.Tuning.MultishotBurst)
	assert.Equal(t, parameter.ShootSpeed, cfg.Tuning.ShootSpeed)
	assert.NotEmpty(t, UsedFile())
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Cleanup(viper.Reset)
	t.Setenv("SPACECANNON_LOG_LEVEL", "warn")
	t.Setenv("SPACECANNON_SCORE_DRIVER", "sqlite3")

	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "sqlite3", cfg.Score.Driver)
}

func TestLoad_MalformedFile(t *testing.T) {
	t.Cleanup(viper.Reset)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName+".toml"), []byte("log_level = [unclosed"), 0644))

	_, err := Load(dir)
	assert.Error(t, err)
}

func TestLoad_SanitizesTuning(t *testing.T) {
	t.Cleanup(viper.Reset)

	dir := t.TempDir()
	content := "tick_rate = -1\n[tuning]\nwidth = -5.0\nkills_per_cannon_powerup = 0\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName+".toml"), []byte(content), 0644))

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, parameter.DefaultTickRate, cfg.TickRate)
	assert.Equal(t, parameter.PlayfieldWidth, cfg.Tuning.Width)
	assert.Equal(t, parameter.KillsPerCannonPowerUp, cfg.Tuning.KillsPerCannonPowerUp)
}
