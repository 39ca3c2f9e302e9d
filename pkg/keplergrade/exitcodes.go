// Package keplergrade provides public constants for tools that drive the
// keplergrade CLI.
package keplergrade

// Exit codes returned by the keplergrade CLI.
const (
	// ExitSuccess indicates every selected suite passed or was skipped as not implemented.
	ExitSuccess = 0

	// ExitFailure indicates a runtime failure or at least one suite with failing cases.
	ExitFailure = 1

	// ExitConfigError indicates an invalid configuration or suite file.
	ExitConfigError = 2

	// ExitEnvError indicates an environment error (file watching unavailable, etc.).
	ExitEnvError = 3
)
