// Package config provides configuration loading and validation for config.json.
package config

// Config represents the complete config.json configuration.
type Config struct {
	Constants *ConstantsConfig `json:"constants,omitempty"`
	Grading   *GradingConfig   `json:"grading,omitempty"`
	Suites    *SuitesConfig    `json:"suites,omitempty"`
}

// ConstantsConfig overrides physical constants used by reference functions.
// A pointer distinguishes an explicit zero, which is invalid, from an unset value.
type ConstantsConfig struct {
	Gravitational *float64 `json:"gravitational,omitempty"` // m^3 kg^-1 s^-2
}

// GradingConfig configures how candidate outputs are compared.
// Pointers distinguish an explicit zero from an unset value.
type GradingConfig struct {
	RelativeTolerance *float64 `json:"relative_tolerance,omitempty"`
	AbsoluteTolerance *float64 `json:"absolute_tolerance,omitempty"`
}

// SuitesConfig configures suite files and per-suite result units.
type SuitesConfig struct {
	Directory string            `json:"directory,omitempty"`
	Pattern   string            `json:"pattern,omitempty"`
	Units     map[string]string `json:"units,omitempty"`
}
