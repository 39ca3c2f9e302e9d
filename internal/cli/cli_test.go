package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"
	"testing"

	"github.com/AndreyAkinshin/keplergrade/internal/errors"
	"github.com/AndreyAkinshin/keplergrade/internal/output"
	"github.com/AndreyAkinshin/keplergrade/internal/reference"
	"github.com/AndreyAkinshin/keplergrade/pkg/grade"
)

// captureOutput redirects the shared writer and logger for one test and
// runs it from an empty working directory.
func captureOutput(t *testing.T) (stdout, stderr *bytes.Buffer) {
	t.Helper()
	t.Chdir(t.TempDir())

	stdout, stderr = &bytes.Buffer{}, &bytes.Buffer{}
	prevOut, prevLog := out, logOutput
	out = output.NewWithWriters(stdout, stderr, false)
	logOutput = stderr
	t.Cleanup(func() {
		out = prevOut
		logOutput = prevLog
	})
	return stdout, stderr
}

func useCandidates(t *testing.T, impls map[string]grade.CandidateFunc) {
	t.Helper()
	prev := candidates
	candidates = func() map[string]grade.CandidateFunc { return impls }
	t.Cleanup(func() { candidates = prev })
}

func correctCandidates() map[string]grade.CandidateFunc {
	lib := reference.Default()
	return map[string]grade.CandidateFunc{
		reference.NameMassBH: grade.FromReference(grade.Reference2(lib.MassBH)),
		reference.NameLine:   grade.FromReference(grade.Reference3(reference.Line)),
	}
}

func TestParseGlobalFlags(t *testing.T) {
	tests := []struct {
		name          string
		args          []string
		want          GlobalOptions
		wantRemaining []string
		wantErr       bool
	}{
		{
			name:          "no flags",
			args:          []string{"grade"},
			wantRemaining: []string{"grade"},
		},
		{
			name:          "quiet before command",
			args:          []string{"-q", "grade"},
			want:          GlobalOptions{Quiet: true},
			wantRemaining: []string{"grade"},
		},
		{
			name:          "verbose after command",
			args:          []string{"grade", "--verbose", "line"},
			want:          GlobalOptions{Verbose: true},
			wantRemaining: []string{"grade", "line"},
		},
		{
			name:          "config with space",
			args:          []string{"--config", "ci.json", "grade"},
			want:          GlobalOptions{ConfigPath: "ci.json"},
			wantRemaining: []string{"grade"},
		},
		{
			name:          "config with equals",
			args:          []string{"--config=ci.json", "--no-color", "suites"},
			want:          GlobalOptions{ConfigPath: "ci.json", NoColor: true},
			wantRemaining: []string{"suites"},
		},
		{
			name:          "negative numbers are arguments",
			args:          []string{"eval", "line", "-1", "-2.5", "3"},
			wantRemaining: []string{"eval", "line", "-1", "-2.5", "3"},
		},
		{
			name:    "config without value",
			args:    []string{"grade", "--config"},
			wantErr: true,
		},
		{
			name:    "empty config value",
			args:    []string{"--config=", "grade"},
			wantErr: true,
		},
		{
			name:    "quiet and verbose",
			args:    []string{"-q", "-v", "grade"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			captureOutput(t)

			opts, remaining, err := parseGlobalFlags(tt.args)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseGlobalFlags() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if *opts != tt.want {
				t.Errorf("options = %+v, want %+v", *opts, tt.want)
			}
			if !reflect.DeepEqual(remaining, tt.wantRemaining) {
				t.Errorf("remaining = %v, want %v", remaining, tt.wantRemaining)
			}
		})
	}
}

func TestRun_Version(t *testing.T) {
	stdout, _ := captureOutput(t)

	if code := Run([]string{"version"}); code != 0 {
		t.Fatalf("Run(version) = %d, want 0", code)
	}
	if got := stdout.String(); got != "keplergrade dev\n" {
		t.Errorf("output = %q", got)
	}
}

func TestRun_UnknownCommand(t *testing.T) {
	_, stderr := captureOutput(t)

	if code := Run([]string{"build"}); code != errors.ExitConfigError {
		t.Errorf("Run(build) = %d, want %d", code, errors.ExitConfigError)
	}
	if !strings.Contains(stderr.String(), `unknown command "build"`) {
		t.Errorf("stderr = %q", stderr.String())
	}
}

func TestRun_Help(t *testing.T) {
	stdout, _ := captureOutput(t)

	if code := Run(nil); code != 0 {
		t.Fatalf("Run() = %d, want 0", code)
	}
	for _, want := range []string{"grade [suite...]", "eval <function> <args>", "--config=<path>"} {
		if !strings.Contains(stdout.String(), want) {
			t.Errorf("help output missing %q", want)
		}
	}
}

func TestGrade_NotImplemented(t *testing.T) {
	stdout, _ := captureOutput(t)
	useCandidates(t, map[string]grade.CandidateFunc{})

	if code := Run([]string{"grade"}); code != errors.ExitSuccess {
		t.Fatalf("Run(grade) = %d, want %d", code, errors.ExitSuccess)
	}
	for _, name := range []string{"Blackhole Mass", "Line Function"} {
		if !strings.Contains(stdout.String(), grade.NotImplementedMessage(name)) {
			t.Errorf("output missing not-implemented report for %s:\n%s", name, stdout.String())
		}
	}
	if !strings.Contains(stdout.String(), "Not implemented: 2") {
		t.Errorf("summary missing skipped count:\n%s", stdout.String())
	}
}

func TestGrade_AllPassed(t *testing.T) {
	stdout, _ := captureOutput(t)
	useCandidates(t, correctCandidates())

	if code := Run([]string{"grade"}); code != errors.ExitSuccess {
		t.Fatalf("Run(grade) = %d, want %d", code, errors.ExitSuccess)
	}
	if got := strings.Count(stdout.String(), grade.AllPassedMessage); got != 2 {
		t.Errorf("AllPassedMessage count = %d, want 2:\n%s", got, stdout.String())
	}
}

func TestGrade_Failure(t *testing.T) {
	stdout, _ := captureOutput(t)
	impls := correctCandidates()
	impls[reference.NameLine] = grade.Candidate3(func(x, m, b float64) grade.Outcome {
		return grade.Implemented(m*x + b + 1)
	})
	useCandidates(t, impls)

	if code := Run([]string{"grade", "line"}); code != errors.ExitRuntimeError {
		t.Fatalf("Run(grade line) = %d, want %d", code, errors.ExitRuntimeError)
	}
	got := stdout.String()
	if strings.Contains(got, "Blackhole Mass") {
		t.Errorf("unselected suite was graded:\n%s", got)
	}
	if !strings.Contains(got, "Scenario Testing for x = 4, m = 5, b = 6 failed:") {
		t.Errorf("output missing failure for the second case:\n%s", got)
	}
}

func TestGrade_QuietPrintsOnlyFailures(t *testing.T) {
	stdout, _ := captureOutput(t)
	useCandidates(t, correctCandidates())

	if code := Run([]string{"-q", "grade"}); code != errors.ExitSuccess {
		t.Fatalf("Run(-q grade) = %d", code)
	}
	if stdout.Len() != 0 {
		t.Errorf("quiet output = %q, want empty", stdout.String())
	}
}

func TestGrade_VerboseLogsCases(t *testing.T) {
	_, stderr := captureOutput(t)
	useCandidates(t, correctCandidates())

	if code := Run([]string{"-v", "--no-color", "grade", "mass_bh"}); code != errors.ExitSuccess {
		t.Fatalf("Run(-v grade mass_bh) = %d", code)
	}
	if !strings.Contains(stderr.String(), "scenario=") {
		t.Errorf("verbose log missing case entries:\n%s", stderr.String())
	}
}

func TestGrade_UnknownSuite(t *testing.T) {
	_, stderr := captureOutput(t)

	if code := Run([]string{"grade", "orbit"}); code != errors.ExitConfigError {
		t.Errorf("Run(grade orbit) = %d, want %d", code, errors.ExitConfigError)
	}
	if !strings.Contains(stderr.String(), `suite "orbit" not found`) {
		t.Errorf("stderr = %q", stderr.String())
	}
}

func TestGrade_FileSuite(t *testing.T) {
	stdout, _ := captureOutput(t)
	useCandidates(t, correctCandidates())

	if err := os.Mkdir("suites", 0755); err != nil {
		t.Fatal(err)
	}
	suite := "name: Star S2\nfunction: mass_bh\ncases:\n  - scenario: Testing for the star S2\n    args: [1.5e14, 5.0e8]\n"
	if err := os.WriteFile(filepath.Join("suites", "s2.yaml"), []byte(suite), 0644); err != nil {
		t.Fatal(err)
	}

	if code := Run([]string{"grade", "Star S2"}); code != errors.ExitSuccess {
		t.Fatalf("Run(grade) = %d", code)
	}
	if !strings.Contains(stdout.String(), "Star S2") {
		t.Errorf("output missing file suite:\n%s", stdout.String())
	}
}

func TestEval(t *testing.T) {
	massBH := strconv.FormatFloat(reference.Default().MassBH(1.1968e14, 3.6271e8), 'g', -1, 64)

	tests := []struct {
		name     string
		args     []string
		wantCode int
		want     string
	}{
		{"line", []string{"eval", "line", "4", "5", "6"}, 0, "26\n"},
		{"negative arguments", []string{"eval", "line", "-1", "2", "3"}, 0, "1\n"},
		{"mass with unit", []string{"eval", "MASS_BH", "1.1968e14", "3.6271e8"}, 0, massBH + " kg\n"},
		{"unknown function", []string{"eval", "orbit", "1"}, errors.ExitConfigError, ""},
		{"wrong arity", []string{"eval", "line", "1", "2"}, errors.ExitConfigError, ""},
		{"not a number", []string{"eval", "line", "1", "two", "3"}, errors.ExitConfigError, ""},
		{"missing function", []string{"eval"}, errors.ExitConfigError, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, _ := captureOutput(t)

			if code := Run(tt.args); code != tt.wantCode {
				t.Fatalf("Run(%v) = %d, want %d", tt.args, code, tt.wantCode)
			}
			if got := stdout.String(); got != tt.want {
				t.Errorf("output = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCheck(t *testing.T) {
	stdout, stderr := captureOutput(t)

	valid := "name: Origin\nfunction: line\ncases:\n  - scenario: origin\n    args: [0, 1, 0]\n"
	if err := os.WriteFile("valid.yaml", []byte(valid), 0644); err != nil {
		t.Fatal(err)
	}
	invalid := "name: Origin\nfunction: line\ncases:\n  - scenario: origin\n    args: [0, 1]\n"
	if err := os.WriteFile("invalid.yaml", []byte(invalid), 0644); err != nil {
		t.Fatal(err)
	}

	if code := Run([]string{"check", "valid.yaml"}); code != 0 {
		t.Fatalf("Run(check valid.yaml) = %d, stderr = %s", code, stderr.String())
	}
	if !strings.Contains(stdout.String(), "Suite file is valid.") {
		t.Errorf("output = %q", stdout.String())
	}

	if code := Run([]string{"check", "invalid.yaml"}); code != errors.ExitConfigError {
		t.Errorf("Run(check invalid.yaml) = %d, want %d", code, errors.ExitConfigError)
	}
	if !strings.Contains(stderr.String(), "takes 3 arguments, got 2") {
		t.Errorf("stderr = %q", stderr.String())
	}
}

func TestSuites(t *testing.T) {
	stdout, _ := captureOutput(t)

	if code := Run([]string{"suites"}); code != 0 {
		t.Fatalf("Run(suites) = %d", code)
	}
	got := stdout.String()
	for _, want := range []string{"SUITE", "Blackhole Mass", "mass_bh", "Line Function", "builtin"} {
		if !strings.Contains(got, want) {
			t.Errorf("suites output missing %q:\n%s", want, got)
		}
	}
}

func TestConfigValidate(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		stdout, _ := captureOutput(t)

		if code := Run([]string{"config", "validate"}); code != 0 {
			t.Fatalf("Run(config validate) = %d", code)
		}
		if !strings.Contains(stdout.String(), "(defaults)") {
			t.Errorf("output = %q", stdout.String())
		}
	})

	t.Run("explicit invalid config", func(t *testing.T) {
		_, stderr := captureOutput(t)
		if err := os.WriteFile("bad.json", []byte(`{"constants": {"gravitational": -1}}`), 0644); err != nil {
			t.Fatal(err)
		}

		if code := Run([]string{"--config=bad.json", "config", "validate"}); code != errors.ExitConfigError {
			t.Errorf("Run() = %d, want %d", code, errors.ExitConfigError)
		}
		if stderr.Len() == 0 {
			t.Error("expected an error message")
		}
	})

	t.Run("missing subcommand", func(t *testing.T) {
		captureOutput(t)
		if code := Run([]string{"config"}); code != errors.ExitConfigError {
			t.Errorf("Run(config) = %d, want %d", code, errors.ExitConfigError)
		}
	})

	t.Run("unknown subcommand", func(t *testing.T) {
		_, stderr := captureOutput(t)
		if code := Run([]string{"config", "show"}); code != errors.ExitConfigError {
			t.Errorf("Run(config show) = %d, want %d", code, errors.ExitConfigError)
		}
		if got := stderr.String(); got != "keplergrade: config: unknown subcommand \"show\"\n" {
			t.Errorf("stderr = %q", got)
		}
	})
}
