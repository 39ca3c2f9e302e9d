package grade

import (
	"fmt"
	"math"
)

// Default tolerance parameters.
const (
	DefaultRelativeTolerance = 1e-5
	DefaultAbsoluteTolerance = 0
)

// Tolerance defines when two floats are considered close:
//
//	|actual - expected| <= Absolute + Relative*|expected|
//
// The bound scales with expected only, so with a zero Absolute term any
// nonzero actual fails against an expected value of exactly zero.
type Tolerance struct {
	Relative float64
	Absolute float64
}

// DefaultTolerance returns a relative-only tolerance of 1e-5.
func DefaultTolerance() Tolerance {
	return Tolerance{
		Relative: DefaultRelativeTolerance,
		Absolute: DefaultAbsoluteTolerance,
	}
}

// Validate rejects negative or non-finite bounds.
func (t Tolerance) Validate() error {
	if err := checkBound("relative", t.Relative); err != nil {
		return err
	}
	return checkBound("absolute", t.Absolute)
}

func checkBound(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%s tolerance must be finite, got %v", name, v)
	}
	if v < 0 {
		return fmt.Errorf("%s tolerance must not be negative, got %v", name, v)
	}
	return nil
}

// Close reports whether actual is within tolerance of expected.
func (t Tolerance) Close(expected, actual float64) bool {
	// NaN never matches, not even another NaN
	if math.IsNaN(expected) || math.IsNaN(actual) {
		return false
	}
	if math.IsInf(expected, 0) || math.IsInf(actual, 0) {
		return expected == actual
	}
	return math.Abs(actual-expected) <= t.Absolute+t.Relative*math.Abs(expected)
}
