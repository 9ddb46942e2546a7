package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const prodString = "prod"

// Config holds all application configuration loaded from environment.
type Config struct {
	IsProduction bool
	ProdOrigins  string
	HTTPAddr     string
	DBDSN        string

	JWTSecret         string
	JWTAccessTokenTTL time.Duration
	ServiceTokenHash  string

	// Scheduling policy. Buffer hours pad a nominal booking time into its
	// occupied block when an interval carries no explicit buffers; the
	// minimum window suppresses free slots too short to act on.
	DefaultBufferBeforeHours float64
	DefaultBufferAfterHours  float64
	MinWindowHours           float64
}

// Load loads configuration from .env (optional) and environment variables.
func Load() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Printf("failed to load .env file: %v", err)
	}

	cfg := &Config{}

	cfg.ProdOrigins = getEnv("PROD_ORIGINS", "")
	cfg.IsProduction = getEnv("APP_ENV", "dev") == prodString
	cfg.HTTPAddr = getEnv("HTTP_ADDR", ":8080")

	cfg.DBDSN = os.Getenv("DB_DSN")
	if cfg.DBDSN == "" {
		return nil, fmt.Errorf("DB_DSN is required")
	}

	cfg.JWTSecret = os.Getenv("JWT_SECRET")
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	ttlStr := getEnv("JWT_ACCESS_TOKEN_TTL", "15m")
	ttl, err := time.ParseDuration(ttlStr)
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_ACCESS_TOKEN_TTL: %w", err)
	}
	cfg.JWTAccessTokenTTL = ttl

	// Optional; leaving it unset disables service-token access.
	cfg.ServiceTokenHash = getEnv("SERVICE_TOKEN_HASH", "")

	cfg.DefaultBufferBeforeHours, err = getEnvAsFloat("DEFAULT_BUFFER_BEFORE_HOURS", 2)
	if err != nil {
		return nil, err
	}
	cfg.DefaultBufferAfterHours, err = getEnvAsFloat("DEFAULT_BUFFER_AFTER_HOURS", 2)
	if err != nil {
		return nil, err
	}
	if cfg.DefaultBufferBeforeHours < 0 || cfg.DefaultBufferAfterHours < 0 {
		return nil, fmt.Errorf("buffer hours must be non-negative")
	}

	cfg.MinWindowHours, err = getEnvAsFloat("MIN_WINDOW_HOURS", 1)
	if err != nil {
		return nil, err
	}
	if cfg.MinWindowHours < 0 {
		return nil, fmt.Errorf("MIN_WINDOW_HOURS must be non-negative")
	}

	return cfg, nil
}

// MinWindow returns the minimum availability window as a duration.
func (c *Config) MinWindow() time.Duration {
	return time.Duration(c.MinWindowHours * float64(time.Hour))
}

// getEnv returns the value of the environment variable if set,
// otherwise returns the provided default value.
func getEnv(key, defaultValue string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return defaultValue
}

// getEnvAsFloat retrieves an environment variable as a float.
// It returns the default value if the variable is not set.
func getEnvAsFloat(key string, defaultValue float64) (float64, error) {
	valStr := getEnv(key, "")
	if valStr == "" {
		return defaultValue, nil
	}

	val, err := strconv.ParseFloat(valStr, 64)
	if err != nil {
		return 0, fmt.Errorf("env %s value %q is not a valid number: %w", key, valStr, err)
	}

	return val, nil
}
