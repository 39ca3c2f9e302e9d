package grade

import "fmt"

// Formatter renders the message for a failed test case.
type Formatter interface {
	Format(tc TestCase, expected, actual float64) string
}

// FormatterFunc adapts an ordinary function to the Formatter interface.
type FormatterFunc func(tc TestCase, expected, actual float64) string

// Format calls f.
func (f FormatterFunc) Format(tc TestCase, expected, actual float64) string {
	return f(tc, expected, actual)
}

// DefaultFormatter produces the built-in one-line failure message. Unit, when
// set, is appended to both values (e.g. "kg").
type DefaultFormatter struct {
	Unit string
}

// Format implements Formatter.
func (d DefaultFormatter) Format(tc TestCase, expected, actual float64) string {
	return fmt.Sprintf("Scenario %s failed. Expected result was close to %s, but got %s.",
		tc.Scenario, Sci(expected, d.Unit), Sci(actual, d.Unit))
}

// Sci formats v in scientific notation with two decimals, followed by unit
// when one is given.
func Sci(v float64, unit string) string {
	if unit == "" {
		return fmt.Sprintf("%.2e", v)
	}
	return fmt.Sprintf("%.2e %s", v, unit)
}
