// Package config loads server configuration from the environment,
// with an optional .env file for local development.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App AppConfig
	DB  DBConfig
}

// AppConfig holds HTTP server configuration.
type AppConfig struct {
	Port           int
	Env            string
	AllowedOrigins string
}

// DBConfig holds database configuration.
type DBConfig struct {
	Path string
}

// Load reads configuration from the environment. A .env file is loaded
// first when present; a missing file is not an error.
func Load() (*Config, error) {
	_ = godotenv.Load()

	port, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	return &Config{
		App: AppConfig{
			Port:           port,
			Env:            getEnv("APP_ENV", "development"),
			AllowedOrigins: getEnv("ALLOWED_ORIGINS", "http://localhost:5173"),
		},
		DB: DBConfig{
			Path: getEnv("DB_PATH", "labor.db"),
		},
	}, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
