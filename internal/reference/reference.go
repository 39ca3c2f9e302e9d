// Package reference provides the trusted implementations learners are graded
// against.
package reference

import (
	"math"

	"gonum.org/v1/gonum/unit/constant"
)

// Library holds the physical constants used by the reference functions.
type Library struct {
	// G is the gravitational constant in m^3 kg^-1 s^-2.
	G float64
}

// Default returns a Library using the CODATA gravitational constant.
func Default() *Library {
	return &Library{G: float64(constant.Gravitational)}
}

// New returns a Library with an explicit gravitational constant.
func New(g float64) *Library {
	return &Library{G: g}
}

// MassBH returns the central mass in kilograms implied by Kepler's third law
// for an orbit with semi-major axis a (meters) and period t (seconds):
//
//	M = (4*pi^2/G) * (a^3/t^2)
//
// Inputs are expected to be positive and are not validated.
func (l *Library) MassBH(a, t float64) float64 {
	return (4 * math.Pi * math.Pi / l.G) * (a * a * a / (t * t))
}

// Line returns slope*x + intercept.
func Line(x, slope, intercept float64) float64 {
	return slope*x + intercept
}
