// Package snapio centralizes output streams and terminal color support for
// go-argparse: help text, formatted errors and the leveled Logger all write
// through an IOManager.
package snapio

import (
	stdio "io"
	"os"
	"strings"
)

// IOManager holds the output streams and color policy
type IOManager struct {
	out stdio.Writer
	err stdio.Writer

	forceColor         bool
	noColor            bool
	forceColorLevel    int
	hasForceColorLevel bool

	getenv func(string) string
}

// New returns a manager bound to process stdout/stderr
func New() *IOManager {
	return &IOManager{out: os.Stdout, err: os.Stderr, getenv: os.Getenv}
}

// WithOut sets the standard output writer and returns the manager for chaining.
func (m *IOManager) WithOut(w stdio.Writer) *IOManager { m.out = w; return m }

// WithErr sets the standard error writer and returns the manager for chaining.
func (m *IOManager) WithErr(w stdio.Writer) *IOManager { m.err = w; return m }

// ForceColor forces color output on, regardless of environment.
func (m *IOManager) ForceColor() *IOManager { m.forceColor = true; m.noColor = false; return m }

// NoColor disables color output, regardless of environment.
func (m *IOManager) NoColor() *IOManager { m.noColor = true; m.forceColor = false; return m }

// ColorAuto uses environment heuristics to determine color support.
func (m *IOManager) ColorAuto() *IOManager { m.noColor = false; m.forceColor = false; return m }

// ForceColorLevel forces a specific color level (0=none, 1=16, 2=256, 3=truecolor).
func (m *IOManager) ForceColorLevel(level int) *IOManager {
	m.forceColorLevel = level
	m.hasForceColorLevel = true
	return m
}

// Out returns the configured standard output writer.
func (m *IOManager) Out() stdio.Writer { return m.out }

// Err returns the configured standard error writer.
func (m *IOManager) Err() stdio.Writer { return m.err }

// IsTTY reports whether the output writer is a terminal.
func (m *IOManager) IsTTY() bool {
	f, ok := m.out.(*os.File)
	if !ok {
		return false
	}
	fi, err := f.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}

// SupportsColor reports whether ANSI colors should be emitted.
// NO_COLOR and FORCE_COLOR are honored; otherwise a TTY with a non-dumb
// TERM is required.
func (m *IOManager) SupportsColor() bool {
	if m.noColor || m.env("NO_COLOR") != "" {
		return false
	}
	if m.forceColor || m.env("FORCE_COLOR") != "" {
		return true
	}
	if !m.IsTTY() {
		return false
	}
	term := m.env("TERM")
	return term != "" && term != "dumb"
}

// ColorLevel returns 0 for none, 1 for basic, 2 for 256 colors, and 3 for truecolor.
func (m *IOManager) ColorLevel() int {
	if m.hasForceColorLevel {
		return m.forceColorLevel
	}
	if !m.SupportsColor() {
		return 0
	}
	colorterm := m.env("COLORTERM")
	if colorterm == "truecolor" || colorterm == "24bit" {
		return 3
	}
	term := m.env("TERM")
	if strings.Contains(term, "truecolor") || strings.Contains(term, "24bit") {
		return 3
	}
	if strings.Contains(term, "256color") {
		return 2
	}
	return 1
}

func (m *IOManager) env(key string) string {
	if m.getenv == nil {
		return ""
	}
	return m.getenv(key)
}

// Colorize wraps s with the given ANSI SGR code (e.g., "31" for red) and a
// trailing reset. If color is not supported, it returns s unchanged.
func (m *IOManager) Colorize(s, code string) string {
	if !m.SupportsColor() {
		return s
	}
	return "\x1b[" + code + "m" + s + "\x1b[0m"
}

// Bold returns s in bold when color is supported; otherwise s unchanged.
func (m *IOManager) Bold(s string) string { return m.Colorize(s, "1") }

// Faint returns s in faint intensity when supported; otherwise s unchanged.
func (m *IOManager) Faint(s string) string { return m.Colorize(s, "2") }
