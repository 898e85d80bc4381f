package argparse

import (
	"fmt"
	"strings"

	"github.com/dzonerzy/go-argparse/internal/fuzzy"
	"github.com/dzonerzy/go-argparse/internal/pool"
	snapio "github.com/dzonerzy/go-argparse/io"
)

// ParseState represents the current state of the parser state machine
type ParseState int

const (
	StateStart ParseState = iota
	StateIndexBuilt
	StateHelpRequested
	StateScanning
	StateResolving
	StateDone
	StateError
)

// String returns the state name
func (s ParseState) String() string {
	switch s {
	case StateStart:
		return "start"
	case StateIndexBuilt:
		return "index-built"
	case StateHelpRequested:
		return "help-requested"
	case StateScanning:
		return "scanning"
	case StateResolving:
		return "resolving"
	case StateDone:
		return "done"
	case StateError:
		return "error"
	default:
		return "unknown"
	}
}

const (
	helpLong  = "help"
	helpShort = "h"

	suggestionDistance = 2
)

// Parser owns the argument descriptors and turns token lists into Results.
// A Parser is not safe for concurrent use: Parse rebuilds shared state.
type Parser struct {
	program     string
	description string
	args        []*Argument

	// Rebuilt at the start of every Parse call
	index map[string]int
	state ParseState

	autoHelp bool
	suggest  bool

	env       Environment
	ioManager *snapio.IOManager
	logger    *snapio.Logger
	exitCodes *ExitCodeManager
}

// New creates a parser for the named program. Auto-help is enabled.
func New(program string) *Parser {
	return &Parser{
		program:   program,
		args:      make([]*Argument, 0, 8),
		index:     make(map[string]int),
		autoHelp:  true,
		suggest:   true,
		env:       OSEnvironment{},
		ioManager: snapio.New(),
	}
}

// Parser configuration methods

// Description sets a line printed under the usage banner
func (p *Parser) Description(text string) *Parser {
	p.description = text
	return p
}

// AutoHelp toggles the help short-circuit for an empty token list and
// --help / -h
func (p *Parser) AutoHelp(enabled bool) *Parser {
	p.autoHelp = enabled
	return p
}

// SuggestArguments toggles "did you mean" suggestions on unrecognized names
func (p *Parser) SuggestArguments(enabled bool) *Parser {
	p.suggest = enabled
	return p
}

// WithEnv replaces the environment used for fallbacks
func (p *Parser) WithEnv(env Environment) *Parser {
	p.env = env
	return p
}

// WithIO replaces the IOManager used for help and error output
func (p *Parser) WithIO(io *snapio.IOManager) *Parser {
	p.ioManager = io
	return p
}

// WithLogger attaches a logger; parsing decisions are logged at debug level
func (p *Parser) WithLogger(logger *snapio.Logger) *Parser {
	p.logger = logger
	return p
}

// IO returns the parser's IOManager
func (p *Parser) IO() *snapio.IOManager {
	if p.ioManager == nil {
		p.ioManager = snapio.New()
	}
	return p.ioManager
}

// ExitCodes returns the exit code mapping used by ParseOrExit
func (p *Parser) ExitCodes() *ExitCodeManager {
	if p.exitCodes == nil {
		p.exitCodes = newExitCodeManager()
	}
	return p.exitCodes
}

// Program returns the program name shown in the usage banner
func (p *Parser) Program() string { return p.program }

// State returns the state reached by the last Parse call
func (p *Parser) State() ParseState { return p.state }

// AddArgument registers a new argument and returns it for configuration.
// Leading "--" or "-" is stripped from name. Clashes are reported by Parse.
func (p *Parser) AddArgument(name string) *Argument {
	arg := NewArgument(name)
	p.args = append(p.args, arg)
	return arg
}

// Arguments returns the registered arguments in registration order
func (p *Parser) Arguments() []*Argument {
	return append([]*Argument(nil), p.args...)
}

// Parse resolves args (without the program name) into a Result.
// ErrHelpRequested is returned, after writing the help text, when auto-help
// fires. Every other failure is an *ArgumentError and no Result is returned.
func (p *Parser) Parse(args []string) (*Result, error) {
	p.state = StateStart

	if err := p.buildIndex(); err != nil {
		return nil, p.fail(err)
	}
	p.state = StateIndexBuilt

	if p.helpRequested(args) {
		p.state = StateHelpRequested
		if _, err := fmt.Fprint(p.IO().Out(), p.Help()); err != nil {
			return nil, fmt.Errorf("write help: %w", err)
		}
		return nil, ErrHelpRequested
	}

	occurrences := pool.GetStringMap()
	defer pool.PutStringMap(occurrences)

	p.state = StateScanning
	if err := p.scan(args, *occurrences); err != nil {
		return nil, p.fail(err)
	}

	p.state = StateResolving
	result, err := p.resolve(*occurrences)
	if err != nil {
		return nil, p.fail(err)
	}

	p.state = StateDone
	return result, nil
}

func (p *Parser) fail(err error) error {
	p.state = StateError
	return err
}

// buildIndex maps every canonical name and alias to its argument position
func (p *Parser) buildIndex() error {
	clear(p.index)

	for i, arg := range p.args {
		if err := p.claim(arg.name, i); err != nil {
			return err
		}
		for _, alias := range arg.aliases {
			if err := p.claim(alias, i); err != nil {
				return err
			}
		}
	}

	p.logDebug("index built: %d arguments, %d names", len(p.args), len(p.index))
	return nil
}

func (p *Parser) claim(name string, position int) error {
	if owner, exists := p.index[name]; exists {
		return newErrorf(ErrorTypeDuplicateAlias, name, "duplicate alias: -%s (already used by --%s)",
			name, p.args[owner].name)
	}
	p.index[name] = position
	return nil
}

// helpRequested reports whether auto-help should fire. --help and -h only
// trigger when no argument has claimed those names.
func (p *Parser) helpRequested(args []string) bool {
	if !p.autoHelp {
		return false
	}
	if len(args) == 0 {
		return true
	}

	_, longTaken := p.index[helpLong]
	_, shortTaken := p.index[helpShort]
	for _, token := range args {
		if token == "--"+helpLong && !longTaken {
			return true
		}
		if token == "-"+helpShort && !shortTaken {
			return true
		}
	}
	return false
}

// scan walks the tokens left to right and records the raw value of every
// named occurrence. The last occurrence of a name wins.
func (p *Parser) scan(args []string, occurrences map[string]string) error {
	for position := 0; position < len(args); position++ {
		token := args[position]

		if !strings.HasPrefix(token, "-") {
			p.logDebug("ignoring stray token %q", token)
			continue
		}

		key := normalizeName(token)
		i, ok := p.index[key]
		if !ok {
			return p.unrecognized(token, key)
		}
		arg := p.args[i]

		if arg.flag {
			// Flags never consume the following token
			p.record(occurrences, arg.name, "true")
			continue
		}

		if position+1 < len(args) && !strings.HasPrefix(args[position+1], "-") {
			position++
			p.record(occurrences, arg.name, args[position])
			continue
		}

		return newErrorf(ErrorTypeMissingValue, arg.name, "missing value for %s", token)
	}

	return nil
}

func (p *Parser) record(occurrences map[string]string, name, raw string) {
	if previous, seen := occurrences[name]; seen {
		p.logDebug("--%s given more than once, %q replaces %q", name, raw, previous)
	}
	occurrences[name] = raw
}

// unrecognized builds the error for a name token missing from the index
func (p *Parser) unrecognized(token, key string) error {
	err := newErrorf(ErrorTypeUnrecognizedArgument, key, "unrecognized argument: %s", token)
	if !p.suggest {
		return err
	}

	names := make([]string, 0, len(p.index))
	for name := range p.index {
		names = append(names, name)
	}

	if best := fuzzy.FindBestArgument(key, names, suggestionDistance); best != "" {
		canonical := p.args[p.index[best]].name
		_ = err.WithSuggestion(fmt.Sprintf("Did you mean '--%s'?", canonical))
	}
	return err
}

// resolve produces one value per argument in registration order.
// Precedence: command line, then environment, then default.
func (p *Parser) resolve(occurrences map[string]string) (*Result, error) {
	result := newResult(len(p.args))

	for _, arg := range p.args {
		if raw, ok := occurrences[arg.name]; ok {
			if arg.flag {
				result.set(arg.name, Bool(true), SourceCLI)
				continue
			}
			value, err := p.validateAndConvert(arg, raw)
			if err != nil {
				return nil, err
			}
			result.set(arg.name, value, SourceCLI)
			continue
		}

		if arg.flag {
			result.set(arg.name, arg.defaultVal, SourceDefault)
			continue
		}

		if raw, ok := arg.resolveEnv(p.env); ok {
			p.logDebug("--%s resolved from $%s", arg.name, arg.envVar)
			value, err := p.validateAndConvert(arg, raw)
			if err != nil {
				return nil, err
			}
			result.set(arg.name, value, SourceEnv)
			continue
		}

		if arg.required {
			return nil, newErrorf(ErrorTypeMissingRequired, arg.name, "missing required argument: --%s", arg.name)
		}

		result.set(arg.name, arg.defaultVal, SourceDefault)
	}

	return result, nil
}

func (p *Parser) validateAndConvert(arg *Argument, raw string) (Value, error) {
	if err := arg.Validate(raw); err != nil {
		return Value{}, err
	}

	value, err := ConvertValue(raw, arg.kind)
	if err != nil {
		if argErr, ok := err.(*ArgumentError); ok {
			argErr.Argument = arg.name
			argErr.Message = "--" + arg.name + ": " + argErr.Message
		}
		return Value{}, err
	}
	return value, nil
}

func (p *Parser) logDebug(format string, args ...any) {
	if p.logger.Enabled(snapio.LevelDebug) {
		p.logger.Debug(format, args...)
	}
}
