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

// ValidateConfig checks that every field the service cannot run without
// is present. The upstream API key is validated here rather than at
// first use so a misconfigured deployment fails at startup instead of
// on the first catalog request.
func ValidateConfig(cfg *Config) error {
	var errs []string

	required := map[string]string{
		"SERVER_PORT":   cfg.ServerPort,
		"DB_HOST":       cfg.DBHost,
		"DB_PORT":       cfg.DBPort,
		"DB_USER":       cfg.DBUser,
		"DB_NAME":       cfg.DBName,
		"JWT_SECRET":    cfg.JWTSecret,
		"RAPID_API_KEY": cfg.RecipeAPIKey,
	}

	for field, value := range required {
		if value == "" {
			errs = append(errs, ValidationError{Field: field, Message: "is required"}.Error())
		}
	}

	if cfg.GoogleClientID != "" && cfg.GoogleClientSecret == "" {
		errs = append(errs, ValidationError{
			Field:   "GOOGLE_CLIENT_SECRET",
			Message: "is required when GOOGLE_CLIENT_ID is set",
		}.Error())
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(errs, "; "))
	}
	return nil
}
