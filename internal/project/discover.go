package project

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	kerrors "github.com/AndreyAkinshin/keplergrade/internal/errors"
	"github.com/AndreyAkinshin/keplergrade/internal/suites"
)

// discoverSuites loads the suite files of dir. A missing directory yields no
// suites; anything else that is not a directory is an error.
func discoverSuites(loader *suites.Loader, dir, pattern string) ([]suites.Suite, error) {
	exists, err := validateSuitesDirectory(dir)
	if err != nil || !exists {
		return nil, err
	}
	return loader.LoadDir(dir, pattern)
}

// validateSuitesDirectory reports whether dir exists and is a directory.
func validateSuitesDirectory(dir string) (bool, error) {
	info, err := os.Stat(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("cannot access suite directory %q: %w", dir, err)
	}
	if !info.IsDir() {
		return false, fmt.Errorf("suite directory %q is not a directory", dir)
	}
	return true, nil
}

// mergeSuites appends file suites after the built-in ones. Names are unique
// across both sets.
func mergeSuites(builtin, files []suites.Suite) ([]suites.Suite, error) {
	seen := make(map[string]string, len(builtin)+len(files))
	out := make([]suites.Suite, 0, len(builtin)+len(files))
	for _, s := range append(append([]suites.Suite{}, builtin...), files...) {
		key := strings.ToLower(s.Name)
		if prev, dup := seen[key]; dup {
			return nil, kerrors.SuiteError(s.Name, fmt.Sprintf("duplicate suite name in %s and %s", prev, s.Source))
		}
		seen[key] = s.Source
		out = append(out, s)
	}
	return out, nil
}
