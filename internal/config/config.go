package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds the server configuration, loaded from environment variables
// with sensible defaults for local use.
type Config struct {
	// Server
	Port string `json:"port"`

	// Data locations
	CatalogDir          string `json:"catalog_dir"`
	ServiceDatabasePath string `json:"service_database_path"`
	ExportDir           string `json:"export_dir"`

	// Login gate. Single hardcoded expert account; this tool runs on the
	// assessor's own machine, not on shared infrastructure.
	LoginUser     string `json:"login_user"`
	LoginPassword string `json:"-"`

	// Export rate limiting
	ExportRatePerSec float64 `json:"export_rate_per_sec"`
	ExportBurst      int     `json:"export_burst"`

	// Connection pooling
	MaxOpenConns    int           `json:"max_open_conns"`
	MaxIdleConns    int           `json:"max_idle_conns"`
	ConnMaxLifetime time.Duration `json:"conn_max_lifetime"`
}

// LoadConfig loads the configuration from environment variables.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		Port: getEnv("SERVER_PORT", "8787"),

		CatalogDir:          getEnv("CATALOG_DIR", "data/catalogs"),
		ServiceDatabasePath: getEnv("SERVICE_DATABASE_PATH", "service.db"),
		ExportDir:           getEnv("EXPORT_DIR", "data/exports"),

		LoginUser:     getEnv("LOGIN_USER", "eksperts"),
		LoginPassword: getEnv("LOGIN_PASSWORD", "tame2024"),

		ExportRatePerSec: getEnvFloat("EXPORT_RATE_PER_SEC", 1),
		ExportBurst:      getEnvInt("EXPORT_BURST", 3),

		MaxOpenConns:    getEnvInt("DB_MAX_OPEN_CONNS", 10),
		MaxIdleConns:    getEnvInt("DB_MAX_IDLE_CONNS", 2),
		ConnMaxLifetime: getEnvDuration("DB_CONN_MAX_LIFETIME", 5*time.Minute),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// getEnv reads an environment variable or returns the default.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt reads an environment variable as int or returns the default.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvFloat reads an environment variable as float64 or returns the default.
func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

// getEnvDuration reads an environment variable as Duration or returns the default.
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
