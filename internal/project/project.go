package project

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/AndreyAkinshin/keplergrade/internal/config"
	kerrors "github.com/AndreyAkinshin/keplergrade/internal/errors"
	"github.com/AndreyAkinshin/keplergrade/internal/reference"
	"github.com/AndreyAkinshin/keplergrade/internal/suites"
)

// Project represents a loaded keplergrade workspace.
type Project struct {
	Root       string
	ConfigFile string // empty when running on defaults
	Config     *config.Config
	Warnings   []string
	Registry   *reference.Registry
	Suites     []suites.Suite
}

// Load finds the workspace from the current directory. Without a
// configuration file the current directory is used with default settings.
func Load() (*Project, error) {
	root, err := FindRoot()
	if errors.Is(err, ErrNoProjectRoot) {
		cwd, cwdErr := os.Getwd()
		if cwdErr != nil {
			return nil, kerrors.Environment(cwdErr.Error())
		}
		return LoadWithConfig(cwd, "")
	}
	if err != nil {
		return nil, kerrors.Environment(err.Error())
	}
	return LoadFrom(root)
}

// LoadFrom loads the workspace rooted at root.
func LoadFrom(root string) (*Project, error) {
	return LoadWithConfig(root, filepath.Join(root, ConfigDirName, ConfigFileName))
}

// LoadWithConfig loads the workspace rooted at root using the configuration
// file at configPath. An empty configPath selects the defaults.
func LoadWithConfig(root, configPath string) (*Project, error) {
	cfg := config.Default()
	var warnings []string
	if configPath != "" {
		var err error
		cfg, warnings, err = config.LoadAndValidate(configPath)
		if err != nil {
			return nil, kerrors.WrapConfig(err, "failed to load configuration")
		}
	}

	reg := reference.NewRegistry(cfg.Library())
	loader := &suites.Loader{Registry: reg, Units: cfg.Suites.Units}

	files, err := discoverSuites(loader, resolve(root, cfg.Suites.Directory), cfg.Suites.Pattern)
	if err != nil {
		return nil, kerrors.WrapConfig(err, "failed to load suites")
	}
	all, err := mergeSuites(suites.Builtin(reg, cfg.Suites.Units), files)
	if err != nil {
		return nil, kerrors.WrapConfig(err, "failed to load suites")
	}

	return &Project{
		Root:       root,
		ConfigFile: configPath,
		Config:     cfg,
		Warnings:   warnings,
		Registry:   reg,
		Suites:     all,
	}, nil
}

// SuitesDirectory returns the absolute path of the suite directory.
func (p *Project) SuitesDirectory() string {
	return resolve(p.Root, p.Config.Suites.Directory)
}

// Loader returns a suite loader bound to the project's registry and units.
func (p *Project) Loader() *suites.Loader {
	return &suites.Loader{Registry: p.Registry, Units: p.Config.Suites.Units}
}

// Merge returns the built-in suites followed by files, typically the result
// of reloading the suite directory.
func (p *Project) Merge(files []suites.Suite) ([]suites.Suite, error) {
	return mergeSuites(suites.Builtin(p.Registry, p.Config.Suites.Units), files)
}

func resolve(root, dir string) string {
	if filepath.IsAbs(dir) {
		return dir
	}
	return filepath.Join(root, dir)
}
