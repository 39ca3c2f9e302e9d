package config

import (
	"github.com/AndreyAkinshin/keplergrade/internal/reference"
	"github.com/AndreyAkinshin/keplergrade/pkg/grade"
)

// Default configuration values.
const (
	DefaultSuitesDirectory = "suites"
	DefaultSuitesPattern   = "*.yaml"
)

// Default returns a configuration with every default applied.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

// applyDefaults fills in default values for unset configuration fields.
func applyDefaults(cfg *Config) {
	applyConstantsDefaults(cfg)
	applyGradingDefaults(cfg)
	applySuitesDefaults(cfg)
}

func applyConstantsDefaults(cfg *Config) {
	if cfg.Constants == nil {
		cfg.Constants = &ConstantsConfig{}
	}
	if cfg.Constants.Gravitational == nil {
		g := reference.Default().G
		cfg.Constants.Gravitational = &g
	}
}

func applyGradingDefaults(cfg *Config) {
	if cfg.Grading == nil {
		cfg.Grading = &GradingConfig{}
	}
	if cfg.Grading.RelativeTolerance == nil {
		v := grade.DefaultRelativeTolerance
		cfg.Grading.RelativeTolerance = &v
	}
	if cfg.Grading.AbsoluteTolerance == nil {
		v := float64(grade.DefaultAbsoluteTolerance)
		cfg.Grading.AbsoluteTolerance = &v
	}
}

func applySuitesDefaults(cfg *Config) {
	if cfg.Suites == nil {
		cfg.Suites = &SuitesConfig{}
	}
	if cfg.Suites.Directory == "" {
		cfg.Suites.Directory = DefaultSuitesDirectory
	}
	if cfg.Suites.Pattern == "" {
		cfg.Suites.Pattern = DefaultSuitesPattern
	}
}

// Tolerance returns the grading tolerance. Unset bounds use the grader
// defaults.
func (c *Config) Tolerance() grade.Tolerance {
	tol := grade.DefaultTolerance()
	if c.Grading == nil {
		return tol
	}
	if c.Grading.RelativeTolerance != nil {
		tol.Relative = *c.Grading.RelativeTolerance
	}
	if c.Grading.AbsoluteTolerance != nil {
		tol.Absolute = *c.Grading.AbsoluteTolerance
	}
	return tol
}

// Library returns the reference library bound to the configured constants.
func (c *Config) Library() *reference.Library {
	if c.Constants == nil || c.Constants.Gravitational == nil {
		return reference.Default()
	}
	return reference.New(*c.Constants.Gravitational)
}
