package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Garsondee/gunplay/internal/combat"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "smg", cfg.DefaultWeapon)
	assert.Equal(t, 85, cfg.PistolAmmo)
	assert.Equal(t, 120, cfg.RifleAmmo)
	assert.Equal(t, 700*time.Millisecond, cfg.PickupCurveTime)
	assert.Equal(t, time.Duration(0), cfg.AutoFireInterval)
	assert.Equal(t, 1280, cfg.WindowWidth)
	assert.Empty(t, cfg.MetricsAddr)

	s := cfg.AvatarSettings()
	assert.Equal(t, combat.WeaponSubmachineGun, s.DefaultWeapon)
	assert.Equal(t, 85, s.StartingAmmo[combat.AmmoPistol])
	assert.InDelta(t, 300, s.CrouchMoveSpeed, 1e-9)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv(EnvLogLevel, "DEBUG")
	t.Setenv(EnvDefaultWeapon, "pistol")
	t.Setenv(EnvAutoFireInterval, "80ms")
	t.Setenv(EnvRifleAmmo, "10")
	t.Setenv(EnvMetricsAddr, "localhost:9100")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.LoggerConfig().AddSource)
	assert.Equal(t, combat.WeaponPistol, cfg.AvatarSettings().DefaultWeapon)
	assert.Equal(t, 80*time.Millisecond, cfg.AvatarSettings().AutoFireInterval)
	assert.Equal(t, 10, cfg.AvatarSettings().StartingAmmo[combat.AmmoAssaultRifle])
	assert.Equal(t, "localhost:9100", cfg.MetricsAddr)
}

func TestLoad_ParseErrorsAreJoined(t *testing.T) {
	t.Setenv(EnvPistolAmmo, "lots")
	t.Setenv(EnvPickupCurveTime, "soon")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), EnvPistolAmmo)
	assert.Contains(t, err.Error(), EnvPickupCurveTime)
}

func TestLoad_ValidationFails(t *testing.T) {
	tests := map[string]string{
		EnvLogFormat:       "xml",
		EnvDefaultWeapon:   "railgun",
		EnvPistolAmmo:      "-1",
		EnvCrouchMoveSpeed: "900",
		EnvWindowWidth:     "100",
		EnvShootSpreadTime: "0s",
	}
	for key, val := range tests {
		t.Run(key, func(t *testing.T) {
			t.Setenv(key, val)
			_, err := Load()
			require.Error(t, err)
			var verrs validator.ValidationErrors
			assert.ErrorAs(t, err, &verrs)
		})
	}
}

func TestLoad_DotEnvFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte(EnvSeed+"=99\n"), 0o600))
	t.Chdir(dir)
	t.Cleanup(func() { _ = os.Unsetenv(EnvSeed) })

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, int64(99), cfg.Seed)
}
