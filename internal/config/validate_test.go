package config

import (
	"math"
	"strings"
	"testing"
)

func TestValidate(t *testing.T) {
	t.Parallel()
	neg := -1.0
	zero := 0.0
	nan := math.NaN()

	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{"defaults", func(*Config) {}, ""},
		{"zero G", func(c *Config) { c.Constants.Gravitational = &zero }, "constants.gravitational"},
		{"negative G", func(c *Config) { c.Constants.Gravitational = &neg }, "constants.gravitational"},
		{"NaN G", func(c *Config) { c.Constants.Gravitational = &nan }, "constants.gravitational"},
		{"negative rtol", func(c *Config) { c.Grading.RelativeTolerance = &neg }, "grading"},
		{"bad pattern", func(c *Config) { c.Suites.Pattern = "[a-" }, "suites.pattern"},
		{"empty unit key", func(c *Config) { c.Suites.Units = map[string]string{"": "kg"} }, "suites.units"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := Default()
			tt.mutate(cfg)
			err := Validate(cfg)
			if tt.field == "" {
				if err != nil {
					t.Errorf("Validate() error = %v", err)
				}
				return
			}
			ve, ok := err.(*ValidationError)
			if !ok {
				t.Fatalf("Validate() error = %v (%T), want *ValidationError", err, err)
			}
			if ve.Field != tt.field {
				t.Errorf("Field = %q, want %q", ve.Field, tt.field)
			}
			if !strings.HasPrefix(ve.Error(), tt.field+": ") {
				t.Errorf("Error() = %q, want field prefix", ve.Error())
			}
		})
	}
}
