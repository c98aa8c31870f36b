// Package config loads runtime settings from an optional TOML file and SPACECANNON_* variables
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/lixenwraith/space-cannon/parameter"
	"github.com/lixenwraith/space-cannon/score"
)

const (
	// FileName is the config file looked up in the config directory
	FileName  = "space-cannon"
	EnvPrefix = "SPACECANNON"
)

// Config is the fully resolved runtime configuration
type Config struct {
	LogLevel string `mapstructure:"log_level"`
	LogDir   string `mapstructure:"log_dir"`

	TickRate int    `mapstructure:"tick_rate"`
	Seed     uint64 `mapstructure:"seed"` // 0 picks a time-based seed

	Audio   AudioConfig      `mapstructure:"audio"`
	Metrics bool             `mapstructure:"metrics"`
	Score   score.Config     `mapstructure:"score"`
	Tuning  parameter.Tuning `mapstructure:"tuning"`

	// Keys overrides bindings, key name to action name (e.g. "x" = "fire")
	Keys map[string]string `mapstructure:"keys"`
}

// AudioConfig toggles the sound output
type AudioConfig struct {
	Enabled bool `mapstructure:"enabled"`
	Music   bool `mapstructure:"music"`
}

func setDefaults() {
	viper.SetDefault("log_level", "info")
	viper.SetDefault("log_dir", "./logs")
	viper.SetDefault("tick_rate", parameter.DefaultTickRate)
	viper.SetDefault("seed", 0)
	viper.SetDefault("metrics", false)

	viper.SetDefault("audio.enabled", true)
	viper.SetDefault("audio.music", true)

	viper.SetDefault("score.driver", score.DriverSQLite)
	viper.SetDefault("score.path", "./space-cannon.db")
	viper.SetDefault("score.dsn", "")

	t := parameter.DefaultTuning()
	viper.SetDefault("tuning.width", t.Width)
	viper.SetDefault("tuning.height", t.Height)
	viper.SetDefault("tuning.target_speed", t.TargetSpeed)
	viper.SetDefault("tuning.shoot_speed", t.ShootSpeed)
	viper.SetDefault("tuning.powerup_speed", t.PowerUpSpeed)
	viper.SetDefault("tuning.halo_interval", t.HaloInterval)
	viper.SetDefault("tuning.halo_interval_spread", t.HaloIntervalSpread)
	viper.SetDefault("tuning.halo_rate_step", t.HaloRateStep)
	viper.SetDefault("tuning.halo_rate_cap", t.HaloRateCap)
	viper.SetDefault("tuning.shield_powerup_interval", t.ShieldPowerUpInterval)
	viper.SetDefault("tuning.shield_powerup_jitter", t.ShieldPowerUpJitter)
	viper.SetDefault("tuning.kills_per_cannon_powerup", t.KillsPerCannonPowerUp)
	viper.SetDefault("tuning.multishot_burst", t.MultishotBurst)
	viper.SetDefault("tuning.multishot_spacing", t.MultishotSpacing)
	viper.SetDefault("tuning.cannon_sweep_period", t.CannonSweepPeriod)
	viper.SetDefault("tuning.cull_margin", t.CullMargin)
}

// Load reads space-cannon.toml from configDir if present and applies environment overrides
// A missing file is not an error; a malformed one is
func Load(configDir string) (*Config, error) {
	setDefaults()

	viper.SetConfigName(FileName)
	viper.SetConfigType("toml")
	viper.AddConfigPath(configDir)

	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = parameter.DefaultTickRate
	}
	cfg.Tuning = cfg.Tuning.Sanitize()
	return &cfg, nil
}

// UsedFile returns the config file that was read, empty when defaults only
func UsedFile() string {
	return viper.ConfigFileUsed()
}
