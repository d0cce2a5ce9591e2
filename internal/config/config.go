package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"

	"github.com/Garsondee/gunplay/internal/combat"
	"github.com/Garsondee/gunplay/internal/logger"
)

// Config holds the application configuration
type Config struct {
	LogLevel    string `validate:"oneof=debug info warn warning error"`
	LogFormat   string `validate:"oneof=json text"`
	Environment string `validate:"required"`
	Version     string `validate:"required"`

	DefaultWeapon    string        `validate:"weaponkind"`
	AutoFireInterval time.Duration `validate:"min=0s"`
	PistolAmmo       int           `validate:"min=0,max=10000"`
	RifleAmmo        int           `validate:"min=0,max=10000"`
	PickupCurveTime  time.Duration `validate:"gt=0s"`
	PickupSoundReset time.Duration `validate:"min=0s"`
	EquipSoundReset  time.Duration `validate:"min=0s"`
	ShootSpreadTime  time.Duration `validate:"gt=0s"`
	BaseMoveSpeed    float64       `validate:"gt=0"`
	CrouchMoveSpeed  float64       `validate:"gt=0,ltefield=BaseMoveSpeed"`
	TraceRange       float64       `validate:"gt=0"`

	WindowWidth  int `validate:"min=320,max=7680"`
	WindowHeight int `validate:"min=240,max=4320"`
	Seed         int64
	MetricsAddr  string `validate:"omitempty,hostname_port"`
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:      strings.ToLower(getEnv(EnvLogLevel, DefaultLogLevel)),
		LogFormat:     strings.ToLower(getEnv(EnvLogFormat, DefaultLogFormat)),
		Environment:   getEnv(EnvEnvironment, DefaultEnvironment),
		Version:       getEnv(EnvVersion, DefaultVersion),
		DefaultWeapon: getEnv(EnvDefaultWeapon, DefaultWeapon),
		MetricsAddr:   getEnv(EnvMetricsAddr, ""),
	}

	var errs []error
	durations := []struct {
		key, def string
		dst      *time.Duration
	}{
		{EnvAutoFireInterval, DefaultAutoFireInterval, &cfg.AutoFireInterval},
		{EnvPickupCurveTime, DefaultPickupCurveTime, &cfg.PickupCurveTime},
		{EnvPickupSoundReset, DefaultSoundReset, &cfg.PickupSoundReset},
		{EnvEquipSoundReset, DefaultSoundReset, &cfg.EquipSoundReset},
		{EnvShootSpreadTime, DefaultShootSpreadTime, &cfg.ShootSpreadTime},
	}
	for _, d := range durations {
		v, err := time.ParseDuration(getEnv(d.key, d.def))
		if err != nil {
			errs = append(errs, fmt.Errorf("invalid %s value: %w", d.key, err))
			continue
		}
		*d.dst = v
	}

	ints := []struct {
		key, def string
		dst      *int
	}{
		{EnvPistolAmmo, DefaultPistolAmmo, &cfg.PistolAmmo},
		{EnvRifleAmmo, DefaultRifleAmmo, &cfg.RifleAmmo},
		{EnvWindowWidth, DefaultWindowWidth, &cfg.WindowWidth},
		{EnvWindowHeight, DefaultWindowHeight, &cfg.WindowHeight},
	}
	for _, i := range ints {
		v, err := strconv.Atoi(getEnv(i.key, i.def))
		if err != nil {
			errs = append(errs, fmt.Errorf("invalid %s value: %w", i.key, err))
			continue
		}
		*i.dst = v
	}

	floats := []struct {
		key, def string
		dst      *float64
	}{
		{EnvBaseMoveSpeed, DefaultBaseMoveSpeed, &cfg.BaseMoveSpeed},
		{EnvCrouchMoveSpeed, DefaultCrouchMoveSpeed, &cfg.CrouchMoveSpeed},
		{EnvTraceRange, DefaultTraceRange, &cfg.TraceRange},
	}
	for _, f := range floats {
		v, err := strconv.ParseFloat(getEnv(f.key, f.def), 64)
		if err != nil {
			errs = append(errs, fmt.Errorf("invalid %s value: %w", f.key, err))
			continue
		}
		*f.dst = v
	}

	seed, err := strconv.ParseInt(getEnv(EnvSeed, DefaultSeed), 10, 64)
	if err != nil {
		errs = append(errs, fmt.Errorf("invalid %s value: %w", EnvSeed, err))
	}
	cfg.Seed = seed

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// Validate checks the struct tags.
func (c *Config) Validate() error {
	if err := newValidator().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("weaponkind", func(fl validator.FieldLevel) bool {
		_, ok := combat.ParseWeaponKind(fl.Field().String())
		return ok
	})
	return v
}

// AvatarSettings converts the tunables to avatar settings.
func (c *Config) AvatarSettings() combat.Settings {
	s := combat.DefaultSettings()
	if k, ok := combat.ParseWeaponKind(c.DefaultWeapon); ok {
		s.DefaultWeapon = k
	}
	s.StartingAmmo = map[combat.AmmoType]int{
		combat.AmmoPistol:       c.PistolAmmo,
		combat.AmmoAssaultRifle: c.RifleAmmo,
	}
	s.AutoFireInterval = c.AutoFireInterval
	s.PickupCurveTime = c.PickupCurveTime
	s.PickupSoundReset = c.PickupSoundReset
	s.EquipSoundReset = c.EquipSoundReset
	s.ShootSpreadTime = c.ShootSpreadTime
	s.BaseMoveSpeed = c.BaseMoveSpeed
	s.CrouchMoveSpeed = c.CrouchMoveSpeed
	s.TraceRange = c.TraceRange
	return s
}

// LoggerConfig returns the logger settings.
func (c *Config) LoggerConfig() logger.Config {
	return logger.Config{
		Level:       c.LogLevel,
		Format:      c.LogFormat,
		ServiceName: logger.DefaultServiceName,
		Version:     c.Version,
		Environment: c.Environment,
		AddSource:   c.LogLevel == logger.LogLevelDebug,
	}
}
