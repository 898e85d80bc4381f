package snapio

import (
	"fmt"
	"strconv"
	"strings"
)

// ColorSpec represents a color in one of three spaces: basic (16), indexed (256), or truecolor (RGB)
type ColorSpec struct {
	kind    int // 1=basic, 2=indexed, 3=truecolor
	index   int // for basic (0-15) and indexed (0-255)
	r, g, b uint8
}

// Basic color helpers (0-7 normal, 8-15 bright)
var (
	Red     = basic(1)
	Green   = basic(2)
	Yellow  = basic(3)
	Blue    = basic(4)
	Magenta = basic(5)
	Cyan    = basic(6)

	BrightBlack   = basic(8) // Gray
	BrightRed     = basic(9)
	BrightGreen   = basic(10)
	BrightYellow  = basic(11)
	BrightBlue    = basic(12)
	BrightMagenta = basic(13)
	BrightCyan    = basic(14)
)

func basic(i int) ColorSpec { return ColorSpec{kind: 1, index: i} }

// Indexed returns a 256-color palette spec (0–255).
func Indexed(i int) ColorSpec { return ColorSpec{kind: 2, index: i} }

// Truecolor returns a 24-bit RGB color spec.
func Truecolor(r, g, b uint8) ColorSpec { return ColorSpec{kind: 3, r: r, g: g, b: b} }

// Style is a fluent style builder for foreground color and attributes.
type Style struct {
	fg                     *ColorSpec
	bold, faint, underline bool
}

// NewStyle creates a new empty style builder.
func NewStyle() *Style                 { return &Style{} }
func (s *Style) Fg(c ColorSpec) *Style { s.fg = &c; return s }
func (s *Style) Bold() *Style          { s.bold = true; return s }
func (s *Style) Faint() *Style         { s.faint = true; return s }
func (s *Style) Underline() *Style     { s.underline = true; return s }

// Sprint returns a styled string if color is supported; otherwise it returns
// the text unchanged.
func (s *Style) Sprint(io *IOManager, text string) string {
	if io == nil || !io.SupportsColor() {
		return text
	}
	seq := s.ansiPrefix(io.ColorLevel())
	if seq == "" {
		return text
	}
	return "\x1b[" + seq + "m" + text + "\x1b[0m"
}

// Sprintf formats the content with fmt.Sprintf and then applies the style.
func (s *Style) Sprintf(io *IOManager, format string, a ...any) string {
	return s.Sprint(io, fmt.Sprintf(format, a...))
}

func (s *Style) ansiPrefix(level int) string {
	codes := make([]string, 0, 4)
	if s.bold {
		codes = append(codes, "1")
	}
	if s.faint {
		codes = append(codes, "2")
	}
	if s.underline {
		codes = append(codes, "4")
	}
	if s.fg != nil {
		if c := colorCode(*s.fg, level); c != "" {
			codes = append(codes, c)
		}
	}
	return strings.Join(codes, ";")
}

func colorCode(c ColorSpec, level int) string {
	switch c.kind {
	case 1: // basic 16
		idx := min(max(c.index, 0), 15)
		if idx < 8 {
			return strconv.Itoa(30 + idx)
		}
		return strconv.Itoa(90 + idx - 8)
	case 2: // indexed 256
		if level >= 2 {
			return fmt.Sprintf("38;5;%d", c.index)
		}
		return ""
	case 3: // truecolor
		if level >= 3 {
			return fmt.Sprintf("38;2;%d;%d;%d", c.r, c.g, c.b)
		}
		return ""
	default:
		return ""
	}
}

// Theme provides semantic colors
type Theme struct {
	Primary, Success, Warning, Error, Info, Debug, Muted ColorSpec
}

// DefaultTheme16 returns a theme using basic 16 colors.
func DefaultTheme16() Theme {
	return Theme{
		Primary: BrightBlue,
		Success: BrightGreen,
		Warning: BrightYellow,
		Error:   BrightRed,
		Info:    BrightCyan,
		Debug:   BrightMagenta,
		Muted:   BrightBlack,
	}
}

// DefaultThemeTruecolor returns a theme using 24-bit RGB colors.
func DefaultThemeTruecolor() Theme {
	return Theme{
		Primary: Truecolor(92, 148, 252),
		Success: Truecolor(80, 250, 123),
		Warning: Truecolor(255, 184, 108),
		Error:   Truecolor(255, 85, 85),
		Info:    Truecolor(139, 233, 253),
		Debug:   Truecolor(189, 147, 249),
		Muted:   Truecolor(128, 128, 128),
	}
}

// DefaultTheme returns the theme matching the manager's color level.
func DefaultTheme(io *IOManager) Theme {
	if io != nil && io.ColorLevel() >= 3 {
		return DefaultThemeTruecolor()
	}
	return DefaultTheme16()
}
