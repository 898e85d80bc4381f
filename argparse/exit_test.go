//nolint:testpackage // using package name 'argparse' to access unexported fields for testing
package argparse

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	snapio "github.com/dzonerzy/go-argparse/io"
)

type customErr struct{}

func (customErr) Error() string { return "custom" }

func TestExitCodeManagerResolve(t *testing.T) {
	m := newExitCodeManager()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, 0},
		{"help", ErrHelpRequested, 0},
		{"unrecognized", NewError(ErrorTypeUnrecognizedArgument, "x"), 2},
		{"missing value", NewError(ErrorTypeMissingValue, "x"), 2},
		{"missing required", NewError(ErrorTypeMissingRequired, "x"), 2},
		{"duplicate alias", NewError(ErrorTypeDuplicateAlias, "x"), 2},
		{"out of range", NewError(ErrorTypeOutOfRange, "x"), 3},
		{"invalid choice", NewError(ErrorTypeInvalidChoice, "x"), 3},
		{"wrapped validation", fmt.Errorf("ctx: %w", NewError(ErrorTypeValidationFailed, "x")), 3},
		{"unmapped category", NewError(ErrorTypeUnknownKey, "x"), 1},
		{"plain error", errors.New("boom"), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := m.Resolve(tt.err); got != tt.want {
				t.Errorf("Resolve = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestExitCodeManagerOverrides(t *testing.T) {
	m := newExitCodeManager().
		Define(ErrorTypeMissingRequired, 64).
		DefineError(customErr{}, 70).
		DefineError(nil, 99)

	if got := m.Resolve(NewError(ErrorTypeMissingRequired, "x")); got != 64 {
		t.Errorf("category override = %d, want 64", got)
	}
	if got := m.Resolve(fmt.Errorf("wrapped: %w", customErr{})); got != 70 {
		t.Errorf("error type mapping = %d, want 70", got)
	}

	m.Default(ExitCodeDefaults{Success: 0, GeneralError: 10, MisusageError: 20, ValidationError: 30})
	if got := m.Resolve(NewError(ErrorTypeOutOfRange, "x")); got != 30 {
		t.Errorf("validation default = %d, want 30", got)
	}
	if got := m.Resolve(errors.New("boom")); got != 10 {
		t.Errorf("general default = %d, want 10", got)
	}
}

// captureExit replaces the process exit hook for the duration of a test
func captureExit(t *testing.T) *int {
	t.Helper()
	code := -1
	previous := exit
	exit = func(c int) { code = c }
	t.Cleanup(func() { exit = previous })
	return &code
}

func TestParseOrExit(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantCode int
		wantOut  string
		wantErr  string
	}{
		{"success", []string{"--port", "80"}, -1, "", ""},
		{"help", []string{"--help"}, 0, "Usage: prog [OPTIONS]", ""},
		{"misuse", []string{"--prot", "80"}, 2, "", "Error: unrecognized argument: --prot\n  Did you mean '--port'?\n"},
		{"validation", []string{"--port", "70000"}, 3, "", "Error: value 70000 for --port must be <= 65535\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code := captureExit(t)

			var stdout, stderr bytes.Buffer
			p := New("prog").
				WithIO(snapio.New().WithOut(&stdout).WithErr(&stderr).NoColor()).
				WithEnv(MapEnvironment{})
			p.AddArgument("--port").TypeInt().Min(1).Max(65535)

			result := p.ParseOrExit(tt.args)

			if *code != tt.wantCode {
				t.Errorf("exit code = %d, want %d", *code, tt.wantCode)
			}
			if (result != nil) != (tt.wantCode == -1) {
				t.Errorf("result = %v with exit code %d", result, *code)
			}
			if !strings.HasPrefix(stdout.String(), tt.wantOut) {
				t.Errorf("stdout = %q, want prefix %q", stdout.String(), tt.wantOut)
			}
			if stderr.String() != tt.wantErr {
				t.Errorf("stderr = %q, want %q", stderr.String(), tt.wantErr)
			}
		})
	}
}

func TestErrorFormat(t *testing.T) {
	err := NewError(ErrorTypeUnrecognizedArgument, "unrecognized argument: --x").
		WithSuggestion("Did you mean '--y'?").
		WithSuggestion("Did you mean '--z'?")

	plain := snapio.New().NoColor()
	want := "Error: unrecognized argument: --x\n  Did you mean '--y'?\n  Did you mean '--z'?"
	if got := err.Format(plain); got != want {
		t.Errorf("Format = %q, want %q", got, want)
	}

	t.Setenv("NO_COLOR", "")
	colored := snapio.New().ForceColor().ForceColorLevel(1)
	if got := err.Format(colored); !strings.HasPrefix(got, "\x1b[") || !strings.Contains(got, "Error:\x1b[0m") {
		t.Errorf("expected styled label, got %q", got)
	}

	if got := err.Format(nil); !strings.HasPrefix(got, "Error: ") {
		t.Errorf("Format(nil) = %q", got)
	}
}

func TestIsType(t *testing.T) {
	cause := errors.New("root")
	err := fmt.Errorf("outer: %w", NewError(ErrorTypeOutOfRange, "x").WithCause(cause))

	if !IsType(err, ErrorTypeOutOfRange) {
		t.Error("IsType should see through wrapping")
	}
	if IsType(err, ErrorTypeInvalidChoice) {
		t.Error("IsType matched the wrong category")
	}
	if IsType(errors.New("plain"), ErrorTypeOutOfRange) {
		t.Error("IsType matched a plain error")
	}
	if !errors.Is(err, cause) {
		t.Error("cause should be reachable through Unwrap")
	}
	if IsType(ErrHelpRequested, ErrorTypeUnknownKey) {
		t.Error("help sentinel is not an ArgumentError")
	}
}
