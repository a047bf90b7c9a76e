package config

import (
	"fmt"
	"strings"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateConfig checks that the configuration carries everything the server
// needs to start. The archive bucket is optional; plans simply are not
// archived when it is unset.
func ValidateConfig(cfg *Config) error {
	var errors []string

	required := map[string]string{
		"DB_HOST":    cfg.DBHost,
		"DB_PORT":    cfg.DBPort,
		"DB_USER":    cfg.DBUser,
		"DB_NAME":    cfg.DBName,
		"REDIS_HOST": cfg.RedisHost,
		"REDIS_PORT": cfg.RedisPort,
	}
	for field, value := range required {
		if value == "" {
			errors = append(errors, ValidationError{Field: field, Message: "is required"}.Error())
		}
	}

	if cfg.JWTSecret == "" {
		errors = append(errors, ValidationError{Field: "JWT_SECRET", Message: "is required (env or jwt_secret secret)"}.Error())
	}
	if !IsTest() && cfg.DBPassword == "" {
		errors = append(errors, ValidationError{Field: "DB_PASSWORD", Message: "is required (env or db_password secret)"}.Error())
	}

	if len(errors) > 0 {
		return fmt.Errorf("%s", strings.Join(errors, "; "))
	}
	return nil
}
