// Package cli provides command-line interface functionality for keplergrade.
package cli

import (
	"fmt"
	"strings"

	"github.com/AndreyAkinshin/keplergrade/internal/errors"
	"github.com/AndreyAkinshin/keplergrade/internal/output"
)

// Version is set at build time.
var Version = "dev"

// wantsHelp returns true if args contain -h or --help.
func wantsHelp(args []string) bool {
	for _, arg := range args {
		if arg == "-h" || arg == "--help" {
			return true
		}
	}
	return false
}

// Run executes the CLI with the given arguments and returns an exit code.
func Run(args []string) int {
	if len(args) == 0 {
		printUsage()
		return 0
	}

	switch args[0] {
	case "-h", "--help", "help":
		printUsage()
		return 0
	case "--version", "version":
		out.Println("keplergrade %s", Version)
		return 0
	}

	opts, remaining, err := parseGlobalFlags(args)
	if err != nil {
		return fail(errors.Config(err.Error()))
	}

	if len(remaining) == 0 {
		printUsage()
		return 0
	}
	cmd := remaining[0]
	cmdArgs := remaining[1:]

	switch cmd {
	case "grade":
		return cmdGrade(cmdArgs, opts)
	case "suites":
		return cmdSuites(cmdArgs, opts)
	case "eval":
		return cmdEval(cmdArgs, opts)
	case "check":
		return cmdCheck(cmdArgs, opts)
	case "config":
		return cmdConfig(cmdArgs, opts)
	case "help":
		printUsage()
		return 0
	case "version":
		out.Println("keplergrade %s", Version)
		return 0
	default:
		code := fail(errors.Configf("unknown command %q", cmd))
		out.Hint("Run 'keplergrade help' for usage.")
		return code
	}
}

// GlobalOptions holds parsed global flags.
type GlobalOptions struct {
	Quiet      bool
	Verbose    bool
	NoColor    bool
	ConfigPath string
}

// parseGlobalFlags manually parses global flags from arguments.
//
// Flags can appear anywhere in the argument list, not just before the
// command. Negative numbers such as "-1.5" are arguments, not flags.
func parseGlobalFlags(args []string) (*GlobalOptions, []string, error) {
	opts := &GlobalOptions{}
	var remaining []string

	i := 0
	for i < len(args) {
		arg := args[i]

		switch {
		case arg == "-q" || arg == "--quiet":
			opts.Quiet = true
			i++
		case arg == "-v" || arg == "--verbose":
			opts.Verbose = true
			i++
		case arg == "--no-color":
			opts.NoColor = true
			i++
		case arg == "--config":
			if i+1 >= len(args) {
				return nil, nil, fmt.Errorf("--config requires a value")
			}
			opts.ConfigPath = args[i+1]
			i += 2
		case strings.HasPrefix(arg, "--config="):
			opts.ConfigPath = strings.TrimPrefix(arg, "--config=")
			if opts.ConfigPath == "" {
				return nil, nil, fmt.Errorf("--config requires a value")
			}
			i++
		default:
			remaining = append(remaining, arg)
			i++
		}
	}

	if opts.Quiet && opts.Verbose {
		return nil, nil, fmt.Errorf("--quiet and --verbose are mutually exclusive")
	}

	applyOptionsToOutput(opts)

	return opts, remaining, nil
}

// applyOptionsToOutput configures the shared output writer from global flags.
func applyOptionsToOutput(opts *GlobalOptions) {
	out.SetQuiet(opts.Quiet)
	if opts.NoColor {
		out.SetColor(false)
	}
}

// Help text alignment widths for consistent formatting.
const (
	helpCommandWidth = 22
	helpFlagWidth    = 16
)

func printUsage() {
	w := out

	w.HelpTitle("keplergrade - grade the Kepler's third law exercise")

	w.HelpSection("Usage:")
	w.HelpUsage("keplergrade [flags] <command> [args]")

	w.HelpSection("Commands:")
	w.HelpCommand("grade [suite...]", "Grade the exercise against the selected suites", helpCommandWidth)
	w.HelpCommand("suites", "List the available suites", helpCommandWidth)
	w.HelpCommand("eval <function> <args>", "Print the reference value for the given arguments", helpCommandWidth)
	w.HelpCommand("check <file>", "Validate a suite file", helpCommandWidth)
	w.HelpCommand("config validate", "Validate the configuration", helpCommandWidth)
	w.HelpCommand("version", "Show version information", helpCommandWidth)

	printGlobalFlags(w)

	w.HelpSection("Examples:")
	w.HelpExample("keplergrade grade", "Grade every suite")
	w.HelpExample("keplergrade grade mass_bh --watch", "Re-grade the black hole suites when suite files change")
	w.HelpExample("keplergrade eval mass_bh 1.1968e14 3.6271e8", "Mass of Sgr A* from the orbit of S4714")
	w.Println("")
}

func printGlobalFlags(w *output.Writer) {
	w.HelpSection("Global Flags:")
	w.HelpFlag("-q, --quiet", "Only print failures and errors", helpFlagWidth)
	w.HelpFlag("-v, --verbose", "Log every graded case", helpFlagWidth)
	w.HelpFlag("--config=<path>", "Use this configuration file", helpFlagWidth)
	w.HelpFlag("--no-color", "Disable colored output", helpFlagWidth)
	w.HelpFlag("-h, --help", "Show this help", helpFlagWidth)
	w.HelpFlag("--version", "Show version", helpFlagWidth)

	w.HelpSection("Environment:")
	w.HelpEnvVar("NO_COLOR=1", "Disable colored output", 10)
}
