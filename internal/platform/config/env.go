// Package config loads and validates process configuration.
//
// Values come from the environment (optionally seeded from a .env file by the
// command entrypoint) and are checked against `validate` struct tags before a
// service starts.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Validate checks target against its `validate` struct tags.
func Validate(target any) error {
	if err := validate.Struct(target); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			return fmt.Errorf("invalid config: %s", describe(fieldErrs))
		}
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

func describe(fieldErrs validator.ValidationErrors) string {
	parts := make([]string, 0, len(fieldErrs))
	for _, fieldErr := range fieldErrs {
		if fieldErr.Param() != "" {
			parts = append(parts, fmt.Sprintf("%s failed %s=%s", fieldErr.Field(), fieldErr.Tag(), fieldErr.Param()))
			continue
		}
		parts = append(parts, fmt.Sprintf("%s failed %s", fieldErr.Field(), fieldErr.Tag()))
	}
	return strings.Join(parts, "; ")
}
