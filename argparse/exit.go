package argparse

import (
	"errors"
	"fmt"
	"os"
	"reflect"
)

// exit terminates the process; replaced in tests
var exit = os.Exit

// ExitCodeDefaults holds common default codes.
type ExitCodeDefaults struct {
	Success         int // default: 0
	GeneralError    int // default: 1
	MisusageError   int // default: 2
	ValidationError int // default: 3
}

func defaultExitDefaults() ExitCodeDefaults {
	return ExitCodeDefaults{Success: 0, GeneralError: 1, MisusageError: 2, ValidationError: 3}
}

// ExitCodeManager maps parse errors to process exit codes.
type ExitCodeManager struct {
	codesByType  map[ErrorType]int
	codesByError map[reflect.Type]int
	defaults     ExitCodeDefaults
}

func newExitCodeManager() *ExitCodeManager {
	m := &ExitCodeManager{
		codesByType:  make(map[ErrorType]int),
		codesByError: make(map[reflect.Type]int),
		defaults:     defaultExitDefaults(),
	}
	m.prewire()
	return m
}

// prewire maps value problems to ValidationError and usage problems to
// MisusageError
func (e *ExitCodeManager) prewire() {
	for _, typ := range []ErrorType{
		ErrorTypeInvalidValue,
		ErrorTypeValueFormat,
		ErrorTypeOutOfRange,
		ErrorTypeInvalidChoice,
		ErrorTypeValidationFailed,
	} {
		e.codesByType[typ] = e.defaults.ValidationError
	}
	for _, typ := range []ErrorType{
		ErrorTypeDuplicateAlias,
		ErrorTypeInvalidAlias,
		ErrorTypeUnrecognizedArgument,
		ErrorTypeMissingValue,
		ErrorTypeMissingRequired,
	} {
		e.codesByType[typ] = e.defaults.MisusageError
	}
}

// Exit code configuration

// Define overrides the exit code used for one error category.
func (e *ExitCodeManager) Define(typ ErrorType, code int) *ExitCodeManager {
	e.codesByType[typ] = code
	return e
}

// DefineError maps a concrete error value (by its dynamic type) to an exit
// code. It is consulted for errors that are not *ArgumentError, such as a
// failed help write.
func (e *ExitCodeManager) DefineError(err error, code int) *ExitCodeManager {
	if err == nil {
		return e
	}
	e.codesByError[reflect.TypeOf(err)] = code
	return e
}

// Default replaces the default codes and re-applies the built-in category
// mappings. Call it before Define.
func (e *ExitCodeManager) Default(d ExitCodeDefaults) *ExitCodeManager {
	e.defaults = d
	e.prewire()
	return e
}

// Resolve converts an error to an exit code.
// Precedence:
//  1. nil or ErrHelpRequested: Success
//  2. *ArgumentError category mapping
//  3. concrete error type mapping (DefineError)
//  4. GeneralError
func (e *ExitCodeManager) Resolve(err error) int {
	if err == nil || errors.Is(err, ErrHelpRequested) {
		return e.defaults.Success
	}

	var argErr *ArgumentError
	if errors.As(err, &argErr) {
		if code, ok := e.codesByType[argErr.Type]; ok {
			return code
		}
		return e.defaults.GeneralError
	}

	for t, code := range e.codesByError {
		if errors.As(err, reflect.New(t).Interface()) {
			return code
		}
	}

	return e.defaults.GeneralError
}

// ParseOrExit parses args and terminates the process unless parsing
// succeeded: with Success after help, otherwise after printing the error
// and its suggestions to the error writer.
func (p *Parser) ParseOrExit(args []string) *Result {
	result, err := p.Parse(args)
	if err == nil {
		return result
	}

	code := p.ExitCodes().Resolve(err)
	if !errors.Is(err, ErrHelpRequested) {
		var argErr *ArgumentError
		if errors.As(err, &argErr) {
			fmt.Fprintln(p.IO().Err(), argErr.Format(p.IO()))
		} else {
			fmt.Fprintf(p.IO().Err(), "Error: %v\n", err)
		}
	}

	exit(code)
	return nil
}
