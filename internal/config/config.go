// Package config reads retool settings from the environment
package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/KirkDiggler/rpg-retool/internal/errors"
)

// Environment variable names
const (
	EnvLogLevel      = "RETOOL_LOG_LEVEL"
	EnvWorkers       = "RETOOL_WORKERS"
	EnvRedisAddr     = "RETOOL_REDIS_ADDR"
	EnvRedisPassword = "RETOOL_REDIS_PASSWORD"
	EnvRedisDB       = "RETOOL_REDIS_DB"
)

// Config holds all configuration for the application
type Config struct {
	LogLevel slog.Level
	Workers  int
	Redis    RedisConfig
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// LoadDotEnv loads variables from the given .env files, or ./.env when none
// are named. It reports whether anything was loaded; a missing file is not an
// error.
func LoadDotEnv(files ...string) bool {
	return godotenv.Load(files...) == nil
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	level, err := parseLevel(getEnvOrDefault(EnvLogLevel, "info"))
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		LogLevel: level,
		Workers:  getEnvAsIntOrDefault(EnvWorkers, 4),
		Redis: RedisConfig{
			Addr:     getEnvOrDefault(EnvRedisAddr, "localhost:6379"),
			Password: os.Getenv(EnvRedisPassword),
			DB:       getEnvAsIntOrDefault(EnvRedisDB, 0),
		},
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRange(EnvWorkers, cfg.Workers, 1, 64, vb)
	if cfg.Redis.DB < 0 {
		vb.Field(EnvRedisDB, "must not be negative")
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func parseLevel(name string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(name))); err != nil {
		return 0, errors.InvalidArgumentf("%s: unknown log level %q", EnvLogLevel, name)
	}
	return level, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
