package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	SRS      SRSConfig      `mapstructure:"srs"`
}

// ServerConfig contains all HTTP server related settings.
type ServerConfig struct {
	Port            int    `mapstructure:"port"             validate:"required,gt=0,lt=65536"`
	LogLevel        string `mapstructure:"log_level"        validate:"required,oneof=debug info warn error"`
	ShutdownTimeout int    `mapstructure:"shutdown_timeout" validate:"gte=0"` // seconds
}

// DatabaseConfig contains all database related settings. The engine runs
// against a local SQLite file by default; pgx selects PostgreSQL.
type DatabaseConfig struct {
	Driver string `mapstructure:"driver" validate:"required,oneof=sqlite3 pgx"`
	DSN    string `mapstructure:"dsn"    validate:"required"`
}

// SRSConfig exposes every scheduling tunable as deployment configuration.
// Zero-valued fields fall back to the algorithm defaults, so an empty
// section is a valid configuration. The ease ceiling is deliberately an
// independent knob: the shipped default equals the starting ease, which
// freezes ease at 2.5, and raising only the ceiling restores classic SM-2
// growth.
type SRSConfig struct {
	MinEaseFactor      float64 `mapstructure:"min_ease_factor"     validate:"gte=0"`
	MaxEaseFactor      float64 `mapstructure:"max_ease_factor"     validate:"gte=0"`
	DefaultEaseFactor  float64 `mapstructure:"default_ease_factor" validate:"gte=0"`
	FailureEasePenalty float64 `mapstructure:"failure_ease_penalty" validate:"gte=0"`
	LearningSteps      []int   `mapstructure:"learning_steps"      validate:"dive,gt=0"`
	GraduatingInterval int     `mapstructure:"graduating_interval" validate:"gte=0"`
	EasyBonus          float64 `mapstructure:"easy_bonus"          validate:"gte=0"`
	MaxInterval        int     `mapstructure:"max_interval"        validate:"gte=0"`
	LearnedThreshold   int     `mapstructure:"learned_threshold"   validate:"gte=0"`
}
