package argparse

import (
	"errors"
	"fmt"
	"strings"

	snapio "github.com/dzonerzy/go-argparse/io"
)

// ErrHelpRequested is returned by Parse when auto-help fired. The help text
// has already been written to the parser's output; it is not a failure.
var ErrHelpRequested = errors.New("help requested")

// ErrorType represents error categories for argument parsing.
// These categories drive suggestion logic and exit-code mapping (via ExitCodeManager).
type ErrorType string

const (
	ErrorTypeDuplicateAlias       ErrorType = "duplicate_alias"
	ErrorTypeUnrecognizedArgument ErrorType = "unrecognized_argument"
	ErrorTypeMissingValue         ErrorType = "missing_value"
	ErrorTypeInvalidValue         ErrorType = "invalid_value"
	ErrorTypeValueFormat          ErrorType = "value_format"
	ErrorTypeOutOfRange           ErrorType = "out_of_range"
	ErrorTypeInvalidChoice        ErrorType = "invalid_choice"
	ErrorTypeValidationFailed     ErrorType = "validation_failed"
	ErrorTypeMissingRequired      ErrorType = "missing_required"
	ErrorTypeInvalidAlias         ErrorType = "invalid_alias"
	ErrorTypeTypeMismatch         ErrorType = "type_mismatch"
	ErrorTypeUnknownKey           ErrorType = "unknown_key"
)

// ArgumentError is the single error type produced by this package.
type ArgumentError struct {
	Type        ErrorType
	Message     string
	Argument    string // canonical name or raw token the error refers to
	Suggestions []string
	Cause       error
}

func (e *ArgumentError) Error() string {
	return e.Message
}

func (e *ArgumentError) Unwrap() error {
	return e.Cause
}

// NewError creates a new ArgumentError with the given type and message
func NewError(typ ErrorType, message string) *ArgumentError {
	return &ArgumentError{
		Type:    typ,
		Message: message,
	}
}

func newErrorf(typ ErrorType, argument, format string, args ...any) *ArgumentError {
	return &ArgumentError{
		Type:     typ,
		Message:  fmt.Sprintf(format, args...),
		Argument: argument,
	}
}

// WithSuggestion adds a suggestion to the error
func (e *ArgumentError) WithSuggestion(suggestion string) *ArgumentError {
	e.Suggestions = append(e.Suggestions, suggestion)
	return e
}

// WithCause adds an underlying cause to the error
func (e *ArgumentError) WithCause(cause error) *ArgumentError {
	e.Cause = cause
	return e
}

// IsType reports whether err is an *ArgumentError of the given type.
func IsType(err error, typ ErrorType) bool {
	var argErr *ArgumentError
	if errors.As(err, &argErr) {
		return argErr.Type == typ
	}
	return false
}

// Format builds the user-facing error text with suggestions.
// Color is applied only when the IOManager supports it.
func (e *ArgumentError) Format(io *snapio.IOManager) string {
	var builder strings.Builder

	label := "Error:"
	if io != nil {
		label = snapio.NewStyle().Bold().Fg(snapio.DefaultTheme(io).Error).Sprint(io, label)
	}
	builder.WriteString(label)
	builder.WriteString(" ")
	builder.WriteString(e.Message)
	builder.WriteString("\n")

	for _, suggestion := range e.Suggestions {
		builder.WriteString("  ")
		builder.WriteString(suggestion)
		builder.WriteString("\n")
	}

	return strings.TrimRight(builder.String(), "\n")
}
