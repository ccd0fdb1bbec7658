package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	CORS     CORSConfig
	Refresh  RefreshConfig
	Secrets  SecretsConfig
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port string
	Host string
	Addr string // Combined host:port for convenience
}

// DatabaseConfig holds database-specific configuration
type DatabaseConfig struct {
	Path string
}

// CORSConfig holds CORS-specific configuration
type CORSConfig struct {
	AllowedOrigins []string
}

// RefreshConfig controls the market data refresh cycle
type RefreshConfig struct {
	Interval time.Duration
}

// SecretsConfig holds keys read from the environment. EncryptionKey is a
// base64 fernet key protecting stored API keys; AlphaVantageKey seeds the
// AlphaVantage provider until the user saves their own in settings.
type SecretsConfig struct {
	EncryptionKey   string
	AlphaVantageKey string
}

// Load reads configuration from environment variables and .env file
func Load() (*Config, error) {
	// Try to load .env file (ignore error if it doesn't exist)
	_ = godotenv.Load()

	refreshSec, err := strconv.Atoi(getEnv("REFRESH_INTERVAL_SEC", "15"))
	if err != nil || refreshSec < 5 {
		return nil, fmt.Errorf("invalid REFRESH_INTERVAL_SEC: must be an integer >= 5")
	}

	config := &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "5001"),
			Host: getEnv("SERVER_HOST", "localhost"),
		},
		Database: DatabaseConfig{
			Path: getEnv("DB_PATH", "./data/dashboard.db"),
		},
		CORS: CORSConfig{
			AllowedOrigins: []string{
				"http://localhost:3000",
				"http://localhost",
			},
		},
		Refresh: RefreshConfig{
			Interval: time.Duration(refreshSec) * time.Second,
		},
		Secrets: SecretsConfig{
			EncryptionKey:   getEnv("SETTINGS_ENCRYPTION_KEY", ""),
			AlphaVantageKey: getEnv("ALPHA_VANTAGE_KEY", ""),
		},
	}

	// Combine host and port
	config.Server.Addr = fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port)

	return config, nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
