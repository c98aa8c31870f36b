package parameter

import "time"

// Tuning holds the gameplay values that may be overridden from configuration
type Tuning struct {
	Width  float64 `mapstructure:"width"`
	Height float64 `mapstructure:"height"`

	TargetSpeed  float64 `mapstructure:"target_speed"`
	ShootSpeed   float64 `mapstructure:"shoot_speed"`
	PowerUpSpeed float64 `mapstructure:"powerup_speed"`

	HaloInterval       time.Duration `mapstructure:"halo_interval"`
	HaloIntervalSpread time.Duration `mapstructure:"halo_interval_spread"`
	HaloRateStep       float64       `mapstructure:"halo_rate_step"`
	HaloRateCap        float64       `mapstructure:"halo_rate_cap"`

	ShieldPowerUpInterval time.Duration `mapstructure:"shield_powerup_interval"`
	ShieldPowerUpJitter   time.Duration `mapstructure:"shield_powerup_jitter"`
	KillsPerCannonPowerUp int           `mapstructure:"kills_per_cannon_powerup"`

	MultishotBurst   int           `mapstructure:"multishot_burst"`
	MultishotSpacing time.Duration `mapstructure:"multishot_spacing"`

	CannonSweepPeriod time.Duration `mapstructure:"cannon_sweep_period"`
	CullMargin        float64       `mapstructure:"cull_margin"`
}

// DefaultTuning returns the stock gameplay values
func DefaultTuning() Tuning {
	return Tuning{
		Width:                 PlayfieldWidth,
		Height:                PlayfieldHeight,
		TargetSpeed:           TargetSpeed,
		ShootSpeed:            ShootSpeed,
		PowerUpSpeed:          PowerUpSpeed,
		HaloInterval:          HaloInterval,
		HaloIntervalSpread:    HaloIntervalSpread,
		HaloRateStep:          HaloRateStep,
		HaloRateCap:           HaloRateCap,
		ShieldPowerUpInterval: ShieldPowerUpInterval,
		ShieldPowerUpJitter:   ShieldPowerUpJitter,
		KillsPerCannonPowerUp: KillsPerCannonPowerUp,
		MultishotBurst:        MultishotBurst,
		MultishotSpacing:      MultishotSpacing,
		CannonSweepPeriod:     CannonSweepPeriod,
		CullMargin:            CullMargin,
	}
}

// Sanitize replaces unusable values with defaults
func (t Tuning) Sanitize() Tuning {
	d := DefaultTuning()
	if t.Width <= 0 || t.Height <= 0 {
		t.Width, t.Height = d.Width, d.Height
	}
	if t.TargetSpeed <= 0 {
		t.TargetSpeed = d.TargetSpeed
	}
	if t.ShootSpeed <= 0 {
		t.ShootSpeed = d.ShootSpeed
	}
	if t.PowerUpSpeed <= 0 {
		t.PowerUpSpeed = d.PowerUpSpeed
	}
	if t.HaloInterval <= 0 {
		t.HaloInterval = d.HaloInterval
	}
	if t.HaloIntervalSpread < 0 || t.HaloIntervalSpread >= 2*t.HaloInterval {
		t.HaloIntervalSpread = 0
	}
	if t.HaloRateStep < 0 {
		t.HaloRateStep = d.HaloRateStep
	}
	if t.HaloRateCap < 1 {
		t.HaloRateCap = d.HaloRateCap
	}
	if t.ShieldPowerUpInterval <= 0 {
		t.ShieldPowerUpInterval = d.ShieldPowerUpInterval
	}
	if t.ShieldPowerUpJitter < 0 || t.ShieldPowerUpJitter >= t.ShieldPowerUpInterval {
		t.ShieldPowerUpJitter = 0
	}
	if t.KillsPerCannonPowerUp <= 0 {
		t.KillsPerCannonPowerUp = d.KillsPerCannonPowerUp
	}
	if t.MultishotBurst <= 0 {
		t.MultishotBurst = d.MultishotBurst
	}
	if t.MultishotSpacing <= 0 {
		t.MultishotSpacing = d.MultishotSpacing
	}
	if t.CannonSweepPeriod <= 0 {
		t.CannonSweepPeriod = d.CannonSweepPeriod
	}
	if t.CullMargin < 0 {
		t.CullMargin = d.CullMargin
	}
	return t
}
