package grade

import (
	"io"
	"strings"

	"github.com/sirupsen/logrus"
)

// AllPassedMessage is the report returned when every case matches.
const AllPassedMessage = "All tests passed! Your implementation appears to be correct."

// failureSeparator separates failure blocks in a report.
const failureSeparator = "\n\n"

// NotImplementedMessage is the report returned when the candidate for the
// named suite reports NotImplemented.
func NotImplementedMessage(name string) string {
	return name + " function not implemented. Skipping tests."
}

// Passed reports whether report is the all-passed message.
func Passed(report string) bool {
	return report == AllPassedMessage
}

// Skipped reports whether report is the not-implemented message for name.
func Skipped(name, report string) bool {
	return report == NotImplementedMessage(name)
}

// TestCase is one labeled argument tuple.
type TestCase struct {
	Scenario string
	Args     []float64
}

// Suite bundles the cases and reference for one graded function. Formatter
// is optional and takes precedence over the Grader's formatter.
type Suite struct {
	Name      string
	Cases     []TestCase
	Reference ReferenceFunc
	Formatter Formatter
}

// Grader grades candidates against suites. The zero value compares exactly
// and uses the default formatter; use New for the standard tolerance.
type Grader struct {
	Tolerance Tolerance
	Formatter Formatter
	Logger    logrus.FieldLogger
}

// New returns a Grader with DefaultTolerance.
func New() *Grader {
	return &Grader{Tolerance: DefaultTolerance()}
}

// Grade runs cand over the cases of name and returns the report text. A nil
// formatter selects DefaultFormatter.
func Grade(name string, cases []TestCase, ref ReferenceFunc, cand CandidateFunc, tol Tolerance, formatter Formatter) string {
	g := Grader{Tolerance: tol, Formatter: formatter}
	return g.Grade(Suite{Name: name, Cases: cases, Reference: ref}, cand)
}

// Grade evaluates s.Reference and cand on every case in order.
//
// The first NotImplemented outcome ends the run with NotImplementedMessage;
// later cases are not evaluated. Mismatches do not end the run. A panic in
// cand is not recovered.
func (g *Grader) Grade(s Suite, cand CandidateFunc) string {
	log := g.logger().WithField("suite", s.Name)
	formatter := g.formatterFor(s)

	var failures []string
	for _, tc := range s.Cases {
		expected := s.Reference(tc.Args...)
		actual, ok := cand(tc.Args...).Value()
		if !ok {
			log.WithField("scenario", tc.Scenario).Debug("candidate not implemented, skipping remaining cases")
			return NotImplementedMessage(s.Name)
		}

		entry := log.WithFields(logrus.Fields{
			"scenario": tc.Scenario,
			"expected": expected,
			"actual":   actual,
		})
		if g.Tolerance.Close(expected, actual) {
			entry.Debug("case passed")
			continue
		}
		entry.Debug("case failed")
		failures = append(failures, formatter.Format(tc, expected, actual))
	}

	if len(failures) == 0 {
		return AllPassedMessage
	}
	return strings.Join(failures, failureSeparator)
}

func (g *Grader) formatterFor(s Suite) Formatter {
	if s.Formatter != nil {
		return s.Formatter
	}
	if g.Formatter != nil {
		return g.Formatter
	}
	return DefaultFormatter{}
}

var discard = &logrus.Logger{
	Out:       io.Discard,
	Formatter: new(logrus.TextFormatter),
	Hooks:     make(logrus.LevelHooks),
	Level:     logrus.PanicLevel,
}

func (g *Grader) logger() logrus.FieldLogger {
	if g.Logger == nil {
		return discard
	}
	return g.Logger
}
