package config

import (
	"fmt"
	"math"
	"path/filepath"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Validate checks a configuration with defaults applied.
func Validate(cfg *Config) error {
	if err := validateConstants(cfg); err != nil {
		return err
	}
	if err := validateGrading(cfg); err != nil {
		return err
	}
	return validateSuites(cfg)
}

func validateConstants(cfg *Config) error {
	if cfg.Constants == nil || cfg.Constants.Gravitational == nil {
		return nil
	}
	g := *cfg.Constants.Gravitational
	if math.IsNaN(g) || math.IsInf(g, 0) || g <= 0 {
		return &ValidationError{
			Field:   "constants.gravitational",
			Message: fmt.Sprintf("must be a positive finite number, got %v", g),
		}
	}
	return nil
}

func validateGrading(cfg *Config) error {
	if err := cfg.Tolerance().Validate(); err != nil {
		return &ValidationError{Field: "grading", Message: err.Error()}
	}
	return nil
}

func validateSuites(cfg *Config) error {
	if cfg.Suites == nil {
		return nil
	}
	if _, err := filepath.Match(cfg.Suites.Pattern, ""); err != nil {
		return &ValidationError{
			Field:   "suites.pattern",
			Message: fmt.Sprintf("invalid pattern %q: %v", cfg.Suites.Pattern, err),
		}
	}
	for name := range cfg.Suites.Units {
		if name == "" {
			return &ValidationError{Field: "suites.units", Message: "suite name must not be empty"}
		}
	}
	return nil
}
