package config

// Environment variable names
const (
	EnvLogLevel         = "SHOOTER_LOG_LEVEL"
	EnvLogFormat        = "SHOOTER_LOG_FORMAT"
	EnvEnvironment      = "SHOOTER_ENV"
	EnvVersion          = "SHOOTER_VERSION"
	EnvDefaultWeapon    = "SHOOTER_DEFAULT_WEAPON"
	EnvAutoFireInterval = "SHOOTER_AUTO_FIRE_INTERVAL"
	EnvPistolAmmo       = "SHOOTER_PISTOL_AMMO"
	EnvRifleAmmo        = "SHOOTER_RIFLE_AMMO"
	EnvPickupCurveTime  = "SHOOTER_PICKUP_CURVE_TIME"
	EnvPickupSoundReset = "SHOOTER_PICKUP_SOUND_RESET"
	EnvEquipSoundReset  = "SHOOTER_EQUIP_SOUND_RESET"
	EnvShootSpreadTime  = "SHOOTER_SHOOT_SPREAD_TIME"
	EnvBaseMoveSpeed    = "SHOOTER_BASE_MOVE_SPEED"
	EnvCrouchMoveSpeed  = "SHOOTER_CROUCH_MOVE_SPEED"
	EnvTraceRange       = "SHOOTER_TRACE_RANGE"
	EnvWindowWidth      = "SHOOTER_WINDOW_WIDTH"
	EnvWindowHeight     = "SHOOTER_WINDOW_HEIGHT"
	EnvSeed             = "SHOOTER_SEED"
	EnvMetricsAddr      = "SHOOTER_METRICS_ADDR"
)

// Defaults
const (
	DefaultLogLevel         = "info"
	DefaultLogFormat        = "text"
	DefaultEnvironment      = "dev"
	DefaultVersion          = "dev"
	DefaultWeapon           = "smg"
	DefaultAutoFireInterval = "0s" // 0 uses each weapon's cadence
	DefaultPistolAmmo       = "85"
	DefaultRifleAmmo        = "120"
	DefaultPickupCurveTime  = "700ms"
	DefaultSoundReset       = "200ms"
	DefaultShootSpreadTime  = "50ms"
	DefaultBaseMoveSpeed    = "650"
	DefaultCrouchMoveSpeed  = "300"
	DefaultTraceRange       = "50000"
	DefaultWindowWidth      = "1280"
	DefaultWindowHeight     = "720"
	DefaultSeed             = "1"
)
