package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/sirupsen/logrus"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/AndreyAkinshin/keplergrade/internal/errors"
	"github.com/AndreyAkinshin/keplergrade/internal/exercise"
	"github.com/AndreyAkinshin/keplergrade/internal/output"
	"github.com/AndreyAkinshin/keplergrade/internal/project"
	"github.com/AndreyAkinshin/keplergrade/internal/suites"
	"github.com/AndreyAkinshin/keplergrade/pkg/grade"
)

// out is the shared output writer for CLI commands.
var out = output.New()

// candidates returns the implementations under test, keyed by reference
// function name. Tests replace it.
var candidates = exercise.Candidates

// loadProject loads the workspace and handles errors uniformly.
// Returns the project and exit code 0 on success, or nil and the exit code
// of the error on failure.
func loadProject(opts *GlobalOptions) (*project.Project, int) {
	var (
		proj *project.Project
		err  error
	)
	if opts.ConfigPath != "" {
		cwd, cwdErr := os.Getwd()
		if cwdErr != nil {
			return nil, fail(errors.Environment(cwdErr.Error()))
		}
		proj, err = project.LoadWithConfig(cwd, opts.ConfigPath)
	} else {
		proj, err = project.Load()
	}
	if err != nil {
		return nil, fail(err)
	}
	for _, w := range proj.Warnings {
		out.WarningSimple("%s", w)
	}
	return proj, 0
}

// fail prints err and returns its exit code.
func fail(err error) int {
	out.ErrorPrefix("%v", err)
	return errors.GetExitCode(err)
}

// cmdGrade grades the exercise against the selected suites.
func cmdGrade(args []string, opts *GlobalOptions) int {
	if wantsHelp(args) {
		printGradeUsage()
		return 0
	}

	watch := false
	var keys []string
	for _, arg := range args {
		if arg == "--watch" || arg == "-w" {
			watch = true
			continue
		}
		keys = append(keys, arg)
	}

	proj, exitCode := loadProject(opts)
	if proj == nil {
		return exitCode
	}

	selected, err := suites.Select(proj.Suites, keys)
	if err != nil {
		return fail(errors.WrapConfig(err, "grade"))
	}

	log := newLogger(opts)
	grader := &grade.Grader{
		Tolerance: proj.Config.Tolerance(),
		Logger:    log,
	}

	exitCode = gradeSuites(grader, selected)
	if !watch {
		return exitCode
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return watchSuites(ctx, proj, grader, keys, log, exitCode)
}

// watchSuites re-grades whenever the suite directory changes and returns the
// exit code of the last run once ctx is done.
func watchSuites(ctx context.Context, proj *project.Project, grader *grade.Grader, keys []string, log logrus.FieldLogger, exitCode int) int {
	dir := proj.SuitesDirectory()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fail(errors.Environmentf("cannot create suite directory: %v", err))
	}

	out.Info("")
	out.Info("Watching %s for changes (Ctrl+C to stop)", dir)

	err := proj.Loader().Watch(ctx, dir, proj.Config.Suites.Pattern, log, func(files []suites.Suite) {
		all, err := proj.Merge(files)
		if err != nil {
			log.WithError(err).Error("suite reload failed, keeping previous suites")
			return
		}
		selected, err := suites.Select(all, keys)
		if err != nil {
			log.WithError(err).Error("suite selection failed after reload")
			return
		}
		exitCode = gradeSuites(grader, selected)
	})
	if err != nil {
		return fail(errors.Environmentf("watch: %v", err))
	}
	return exitCode
}

// gradeSuites grades each suite, prints the reports and a summary, and
// returns ExitRuntimeError when any suite reported failures.
func gradeSuites(grader *grade.Grader, selected []suites.Suite) int {
	impls := candidates()
	var passed, failed, skipped int

	for _, s := range selected {
		cand, ok := impls[s.Function]
		if !ok {
			cand = func(...float64) grade.Outcome { return grade.NotImplemented() }
		}

		out.SuiteStart(s.Name)
		report := grader.Grade(s.Suite, cand)

		status := output.StatusFailed
		switch {
		case grade.Passed(report):
			status = output.StatusPassed
			passed++
		case grade.Skipped(s.Name, report):
			status = output.StatusSkipped
			skipped++
		default:
			failed++
		}
		out.SuiteReport(report, status)
	}

	if !out.IsQuiet() {
		out.SummaryHeader("Summary")
		out.SummaryPassed("Passed", strconv.Itoa(passed))
		if failed > 0 {
			out.SummaryFailed("Failed", strconv.Itoa(failed))
		} else {
			out.SummaryItem("Failed", "0")
		}
		out.SummaryItem("Not implemented", strconv.Itoa(skipped))
	}

	if failed > 0 {
		return errors.ExitRuntimeError
	}
	return errors.ExitSuccess
}

// cmdSuites lists the available suites.
func cmdSuites(args []string, opts *GlobalOptions) int {
	if wantsHelp(args) {
		printSuitesUsage()
		return 0
	}

	proj, exitCode := loadProject(opts)
	if proj == nil {
		return exitCode
	}

	caser := cases.Title(language.English)
	rows := make([][]string, 0, len(proj.Suites))
	for _, s := range proj.Suites {
		rows = append(rows, []string{
			caser.String(s.Name),
			s.Function,
			strconv.Itoa(len(s.Cases)),
			s.Unit,
			s.Source,
		})
	}
	out.Table([]string{"SUITE", "FUNCTION", "CASES", "UNIT", "SOURCE"}, rows)
	return 0
}

// cmdEval prints the reference value of a function.
func cmdEval(args []string, opts *GlobalOptions) int {
	if wantsHelp(args) {
		printEvalUsage()
		return 0
	}
	if len(args) == 0 {
		return fail(errors.Config("eval: function name required"))
	}

	proj, exitCode := loadProject(opts)
	if proj == nil {
		return exitCode
	}

	fn, ok := proj.Registry.Lookup(args[0])
	if !ok {
		return fail(errors.NotFound("function", args[0]))
	}

	values := args[1:]
	if len(values) != fn.Arity() {
		return fail(errors.Configf("eval: %s takes %d arguments, got %d", fn.Name, fn.Arity(), len(values)))
	}

	params := make([]float64, len(values))
	for i, v := range values {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fail(errors.Configf("eval: argument %d (%s): invalid number %q", i+1, fn.Params[i].Name, v))
		}
		params[i] = f
	}

	result := strconv.FormatFloat(fn.Eval(params...), 'g', -1, 64)
	if fn.Unit != "" {
		result += " " + fn.Unit
	}
	out.Println("%s", result)
	return 0
}

// cmdCheck validates a suite file.
func cmdCheck(args []string, opts *GlobalOptions) int {
	if wantsHelp(args) {
		printCheckUsage()
		return 0
	}
	if len(args) != 1 {
		return fail(errors.Config("check: exactly one suite file required"))
	}

	proj, exitCode := loadProject(opts)
	if proj == nil {
		return exitCode
	}

	s, err := proj.Loader().LoadFile(args[0])
	if err != nil {
		return fail(errors.WrapConfig(err, "check"))
	}

	out.ValidationSuccess("Suite file is valid.")
	out.SummaryItem("Suite", s.Name)
	out.SummaryItem("Function", s.Function)
	out.SummaryItem("Cases", strconv.Itoa(len(s.Cases)))
	if s.Unit != "" {
		out.SummaryItem("Unit", s.Unit)
	}
	return 0
}

// cmdConfig handles configuration utilities.
func cmdConfig(args []string, opts *GlobalOptions) int {
	if len(args) == 0 {
		return fail(errors.Config("config: subcommand required (validate)"))
	}

	switch args[0] {
	case "validate":
		return cmdConfigValidate(opts)
	case "-h", "--help":
		printConfigUsage()
		return 0
	default:
		return fail(errors.Configf("config: unknown subcommand %q", args[0]))
	}
}

func cmdConfigValidate(opts *GlobalOptions) int {
	proj, exitCode := loadProject(opts)
	if proj == nil {
		return exitCode
	}

	source := proj.ConfigFile
	if source == "" {
		source = "(defaults)"
	}
	tol := proj.Config.Tolerance()

	out.ValidationSuccess("Configuration is valid.")
	out.SummaryItem("Config", source)
	out.SummaryItem("Gravitational constant", strconv.FormatFloat(proj.Config.Library().G, 'g', -1, 64))
	out.SummaryItem("Tolerance", fmt.Sprintf("relative %g, absolute %g", tol.Relative, tol.Absolute))
	out.SummaryItem("Suites", fmt.Sprintf("%d (%s)", len(proj.Suites), proj.SuitesDirectory()))
	if len(proj.Warnings) > 0 {
		out.SummaryItem("Warnings", strconv.Itoa(len(proj.Warnings)))
	}
	return 0
}

func printGradeUsage() {
	w := out

	w.HelpTitle("keplergrade grade - grade the exercise")

	w.HelpSection("Usage:")
	w.HelpUsage("keplergrade grade [suite...] [--watch]")

	w.HelpSection("Arguments:")
	w.HelpFlag("<suite>", "Suite name or function name; all suites when omitted", helpFlagWidth)

	w.HelpSection("Options:")
	w.HelpFlag("-w, --watch", "Re-grade when suite files change", helpFlagWidth)
	w.HelpFlag("-h, --help", "Show this help", helpFlagWidth)

	w.HelpSection("Exit Codes:")
	w.HelpFlag("0", "Every suite passed or is not implemented yet", helpFlagWidth)
	w.HelpFlag("1", "At least one suite reported failures", helpFlagWidth)
	w.HelpFlag("2", "Configuration or suite file error", helpFlagWidth)

	w.HelpSection("Examples:")
	w.HelpExample("keplergrade grade", "Grade every suite")
	w.HelpExample("keplergrade grade line", "Grade the line function only")
	w.Println("")
}

func printSuitesUsage() {
	w := out

	w.HelpTitle("keplergrade suites - list the available suites")

	w.HelpSection("Usage:")
	w.HelpUsage("keplergrade suites")
	w.Println("")
}

func printEvalUsage() {
	w := out

	w.HelpTitle("keplergrade eval - evaluate a reference function")

	w.HelpSection("Usage:")
	w.HelpUsage("keplergrade eval <function> <args...>")

	w.HelpSection("Examples:")
	w.HelpExample("keplergrade eval mass_bh 1.1968e14 3.6271e8", "")
	w.HelpExample("keplergrade eval line 4 5 6", "")
	w.Println("")
}

func printCheckUsage() {
	w := out

	w.HelpTitle("keplergrade check - validate a suite file")

	w.HelpSection("Usage:")
	w.HelpUsage("keplergrade check <file>")
	w.Println("")
}

func printConfigUsage() {
	w := out

	w.HelpTitle("keplergrade config - configuration utilities")

	w.HelpSection("Usage:")
	w.HelpUsage("keplergrade config <subcommand>")

	w.HelpSection("Subcommands:")
	w.HelpCommand("validate", "Validate the configuration", helpFlagWidth)

	w.HelpSection("Examples:")
	w.HelpExample("keplergrade config validate", "Validate .keplergrade/config.json")
	w.Println("")
}
