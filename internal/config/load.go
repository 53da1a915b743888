package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// envPrefix is the prefix for environment variable overrides, e.g.
// ENGLISHAPP_SERVER_PORT or ENGLISHAPP_DATABASE_DSN.
const envPrefix = "ENGLISHAPP"

// Load reads configuration from an optional config.yaml in the working
// directory and from environment variables, with the environment taking
// precedence. The result is validated before being returned.
func Load() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// A missing config file is fine; the defaults plus environment
		// variables form a complete configuration.
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// setDefaults registers defaults for every key so viper knows about them
// and environment overrides bind even without a config file.
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("server.shutdown_timeout", 10)

	v.SetDefault("database.driver", "sqlite3")
	v.SetDefault("database.dsn", "englishapp.db")

	// Zero means "use the algorithm default" for every scheduling knob.
	v.SetDefault("srs.min_ease_factor", 0.0)
	v.SetDefault("srs.max_ease_factor", 0.0)
	v.SetDefault("srs.default_ease_factor", 0.0)
	v.SetDefault("srs.failure_ease_penalty", 0.0)
	v.SetDefault("srs.learning_steps", []int{})
	v.SetDefault("srs.graduating_interval", 0)
	v.SetDefault("srs.easy_bonus", 0.0)
	v.SetDefault("srs.max_interval", 0)
	v.SetDefault("srs.learned_threshold", 0)
}
