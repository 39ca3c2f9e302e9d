package suites

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	kerrors "github.com/AndreyAkinshin/keplergrade/internal/errors"
	"github.com/AndreyAkinshin/keplergrade/internal/reference"
	"github.com/AndreyAkinshin/keplergrade/internal/schema"
	"github.com/AndreyAkinshin/keplergrade/pkg/grade"
)

// File is the on-disk representation of a suite. JSON documents are accepted
// as well since they are valid YAML.
type File struct {
	Name     string     `yaml:"name"`
	Function string     `yaml:"function"`
	Unit     *string    `yaml:"unit,omitempty"`
	Cases    []FileCase `yaml:"cases"`
}

// FileCase is one case of a suite file.
type FileCase struct {
	Scenario string    `yaml:"scenario"`
	Args     []float64 `yaml:"args"`
}

// Loader reads suite files and binds them to reference functions.
type Loader struct {
	Registry *reference.Registry
	// Units overrides result units by suite name when the file sets none.
	Units map[string]string
}

// LoadFile loads a single suite file.
func (l *Loader) LoadFile(path string) (Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Suite{}, err
	}
	s, err := l.Parse(data)
	if err != nil {
		return Suite{}, fmt.Errorf("%s: %w", path, err)
	}
	s.Source = path
	return s, nil
}

// Parse decodes, validates and binds a suite document.
func (l *Loader) Parse(data []byte) (Suite, error) {
	var doc interface{}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Suite{}, fmt.Errorf("invalid YAML: %w", err)
	}
	if doc == nil {
		return Suite{}, fmt.Errorf("empty suite file")
	}
	if err := schema.ValidateSuite(doc); err != nil {
		return Suite{}, err
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return Suite{}, fmt.Errorf("invalid suite: %w", err)
	}

	fn, ok := l.Registry.Lookup(f.Function)
	if !ok {
		return Suite{}, fmt.Errorf("unknown function %q (available: %s)",
			f.Function, strings.Join(l.Registry.Names(), ", "))
	}

	cases := make([]grade.TestCase, 0, len(f.Cases))
	for i, c := range f.Cases {
		if len(c.Args) != fn.Arity() {
			return Suite{}, fmt.Errorf("case %d (%q): %s takes %d arguments, got %d",
				i+1, c.Scenario, fn.Name, fn.Arity(), len(c.Args))
		}
		cases = append(cases, grade.TestCase{Scenario: c.Scenario, Args: c.Args})
	}

	unit := resolveUnit(f.Name, f.Unit, l.Units, fn.Unit)
	return Build(fn, f.Name, unit, cases), nil
}

// LoadDir loads every file under dir whose base name matches pattern, in
// lexical path order. Suite names must be unique.
func (l *Loader) LoadDir(dir, pattern string) ([]Suite, error) {
	if _, err := os.Stat(dir); err != nil {
		return nil, fmt.Errorf("suite directory: %w", err)
	}

	paths, err := findMatches(dir, pattern)
	if err != nil {
		return nil, err
	}

	var out []Suite
	seen := make(map[string]string)
	for _, path := range paths {
		s, err := l.LoadFile(path)
		if err != nil {
			return nil, err
		}
		if prev, dup := seen[strings.ToLower(s.Name)]; dup {
			return nil, kerrors.SuiteError(s.Name, fmt.Sprintf("duplicate suite name in %s and %s", prev, path))
		}
		seen[strings.ToLower(s.Name)] = path
		out = append(out, s)
	}
	return out, nil
}

// findMatches walks dir and returns files whose base name matches pattern.
func findMatches(dir, pattern string) ([]string, error) {
	if _, err := filepath.Match(pattern, ""); err != nil {
		return nil, fmt.Errorf("invalid suite pattern %q: %w", pattern, err)
	}

	var matches []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if ok, _ := filepath.Match(pattern, d.Name()); ok {
			matches = append(matches, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(matches)
	return matches, nil
}
