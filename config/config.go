package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	ServerPort string
	ServerHost string

	// Database configuration
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Redis configuration
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int
	RedisURL      string

	// JWT configuration
	JWTSecret string

	// Plan archive storage
	ArchiveBucket string
}

// LoadConfig creates a new Config instance with values from environment
// variables, falling back to Docker secrets for sensitive values outside CI.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		ServerPort:    getEnv("SERVER_PORT", "8080"),
		ServerHost:    getEnv("SERVER_HOST", "0.0.0.0"),
		DBHost:        getEnv("DB_HOST", "localhost"),
		DBPort:        getEnv("DB_PORT", "5432"),
		DBUser:        getEnv("DB_USER", ""),
		DBName:        getEnv("DB_NAME", "ascend"),
		DBSSLMode:     getEnv("DB_SSL_MODE", "disable"),
		RedisHost:     getEnv("REDIS_HOST", "localhost"),
		RedisPort:     getEnv("REDIS_PORT", "6379"),
		RedisURL:      os.Getenv("REDIS_URL"),
		ArchiveBucket: os.Getenv("S3_ARCHIVE_BUCKET"),
	}

	if db := os.Getenv("REDIS_DB"); db != "" {
		n, err := strconv.Atoi(db)
		if err != nil {
			return nil, fmt.Errorf("invalid REDIS_DB value %q: %w", db, err)
		}
		cfg.RedisDB = n
	}

	// Sensitive values come from the environment in CI and from Docker
	// secrets everywhere else.
	if GetEnvironment() == CI {
		cfg.DBUser = os.Getenv("DB_USER")
		cfg.DBPassword = os.Getenv("TEST_DB_PASSWORD")
		cfg.JWTSecret = os.Getenv("TEST_JWT_SECRET")
		cfg.RedisPassword = os.Getenv("TEST_REDIS_PASSWORD")
	} else {
		cfg.DBUser = readSecretOr("db_user", cfg.DBUser)
		cfg.DBPassword = readSecretOr("db_password", os.Getenv("DB_PASSWORD"))
		cfg.JWTSecret = readSecretOr("jwt_secret", os.Getenv("JWT_SECRET"))
		cfg.RedisPassword = readSecretOr("redis_password", os.Getenv("REDIS_PASSWORD"))
	}

	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// getEnv returns the environment variable value or a default
func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// readSecretOr reads a Docker secret from the secrets directory, falling back
// to the given value when the secret file does not exist.
func readSecretOr(name, fallback string) string {
	secretsDir := os.Getenv("SECRETS_DIR")
	if secretsDir == "" {
		secretsDir = "/run/secrets"
	}
	if data, err := os.ReadFile(filepath.Join(secretsDir, name)); err == nil {
		return strings.TrimSpace(string(data))
	}
	return fallback
}
