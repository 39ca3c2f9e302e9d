// Package suites defines the graded suites of the exercise and loads
// additional suites from YAML or JSON files.
package suites

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/AndreyAkinshin/keplergrade/internal/reference"
	"github.com/AndreyAkinshin/keplergrade/pkg/grade"
)

// SourceBuiltin marks suites compiled into the binary.
const SourceBuiltin = "builtin"

// Suite is a graded suite bound to a registered reference function.
type Suite struct {
	grade.Suite
	Function string // registry name of the reference function
	Unit     string // unit of the result, may be empty
	Source   string // SourceBuiltin or the path of the suite file
}

// Build creates a suite for fn. An empty name falls back to fn.Title.
func Build(fn reference.Function, name, unit string, cases []grade.TestCase) Suite {
	if name == "" {
		name = fn.Title
	}
	return Suite{
		Suite: grade.Suite{
			Name:      name,
			Cases:     cases,
			Reference: fn.Eval,
			Formatter: detailFormatter{params: fn.Params, unit: unit},
		},
		Function: fn.Name,
		Unit:     unit,
		Source:   SourceBuiltin,
	}
}

// detailFormatter lists the arguments of the failed case with their units.
type detailFormatter struct {
	params []reference.Param
	unit   string
}

func (d detailFormatter) Format(tc grade.TestCase, expected, actual float64) string {
	args := make([]string, 0, len(tc.Args))
	for i, v := range tc.Args {
		arg := strconv.FormatFloat(v, 'g', -1, 64)
		if i < len(d.params) {
			arg = d.params[i].Name + "=" + arg
			if d.params[i].Unit != "" {
				arg += " " + d.params[i].Unit
			}
		}
		args = append(args, arg)
	}

	return fmt.Sprintf("Scenario %s failed:\n%s.\nExpected result was close to %s, but got %s.",
		tc.Scenario, joinArgs(args), grade.Sci(expected, d.unit), grade.Sci(actual, d.unit))
}

// joinArgs lists args as "a, b and c".
func joinArgs(args []string) string {
	if len(args) < 2 {
		return strings.Join(args, "")
	}
	return strings.Join(args[:len(args)-1], ", ") + " and " + args[len(args)-1]
}

// Select returns the suites matching keys, in the order of all. A key matches
// a suite name or function name, case-insensitively. No keys selects all.
func Select(all []Suite, keys []string) ([]Suite, error) {
	if len(keys) == 0 {
		return all, nil
	}

	matched := make([]bool, len(all))
	for _, key := range keys {
		found := false
		for i, s := range all {
			if strings.EqualFold(s.Name, key) || strings.EqualFold(s.Function, key) {
				matched[i] = true
				found = true
			}
		}
		if !found {
			return nil, fmt.Errorf("suite %q not found (available: %s)", key, strings.Join(Names(all), ", "))
		}
	}

	var selected []Suite
	for i, s := range all {
		if matched[i] {
			selected = append(selected, s)
		}
	}
	return selected, nil
}

// Names returns the suite names in order.
func Names(all []Suite) []string {
	names := make([]string, len(all))
	for i, s := range all {
		names[i] = s.Name
	}
	return names
}

func resolveUnit(name string, explicit *string, units map[string]string, fallback string) string {
	if explicit != nil {
		return *explicit
	}
	if u, ok := units[name]; ok {
		return u
	}
	return fallback
}
