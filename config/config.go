package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const devSecret = "dev-secret-key"

type Config struct {
	Port     string
	GinMode  string
	LogLevel string
	Database DatabaseConfig
	Auth     AuthConfig
	CORS     CORSConfig
}

type DatabaseConfig struct {
	Driver string // sqlite, mysql or postgres
	DSN    string
}

type AuthConfig struct {
	JWTSecret  string
	TokenTTL   time.Duration
	RatePerMin int // login/register requests per client per minute, 0 disables
	RateBurst  int
}

type CORSConfig struct {
	AllowOrigin string
}

// UsesDevSecret reports whether the signing key is the built-in development
// key.
func (c *Config) UsesDevSecret() bool {
	return c.Auth.JWTSecret == devSecret
}

// Load reads an optional .env file and then the process environment.
func Load() (*Config, error) {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()
	return FromEnv()
}

func FromEnv() (*Config, error) {
	cfg := &Config{
		Port:     getEnv("PORT", "3200"),
		GinMode:  getEnv("GIN_MODE", "debug"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
		Database: DatabaseConfig{
			Driver: getEnv("DB_DRIVER", "sqlite"),
			DSN:    getEnv("DB_DSN", "restaurant.db"),
		},
		Auth: AuthConfig{
			JWTSecret: getEnv("JWT_SECRET_KEY", devSecret),
		},
		CORS: CORSConfig{
			AllowOrigin: getEnv("CORS_ALLOW_ORIGIN", "*"),
		},
	}

	ttl, err := time.ParseDuration(getEnv("JWT_EXPIRES", "1h"))
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_EXPIRES: %w", err)
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("invalid JWT_EXPIRES: must be positive")
	}
	cfg.Auth.TokenTTL = ttl

	if cfg.Auth.RatePerMin, err = getEnvInt("AUTH_RATE_LIMIT", 30); err != nil {
		return nil, err
	}
	if cfg.Auth.RateBurst, err = getEnvInt("AUTH_RATE_BURST", 10); err != nil {
		return nil, err
	}

	switch cfg.Database.Driver {
	case "sqlite", "mysql", "postgres":
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.Database.Driver)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	if n < 0 {
		return 0, fmt.Errorf("invalid %s: must not be negative", key)
	}
	return n, nil
}
