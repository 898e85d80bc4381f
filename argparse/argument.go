package argparse

import (
	"slices"
	"strconv"
	"strings"

	"github.com/dzonerzy/go-argparse/internal/intern"
)

// Argument describes one named command-line argument.
// Configure it through the fluent setters before calling Parser.Parse.
type Argument struct {
	name       string
	aliases    []string
	help       string
	required   bool
	kind       Kind
	defaultVal Value
	defaultSet bool
	flag       bool
	min        *int
	max        *int
	envVar     string
	choices    []string

	customCheck   func(string) bool
	customMessage string
	validator     func(string) error
}

// NewArgument creates a standalone descriptor. Parser.AddArgument is the
// usual entry point.
func NewArgument(name string) *Argument {
	return &Argument{
		name: intern.Intern(normalizeName(name)),
		kind: KindInferred,
	}
}

// normalizeName strips a single leading "--" or "-"
func normalizeName(name string) string {
	if strings.HasPrefix(name, "--") {
		return name[2:]
	}
	if strings.HasPrefix(name, "-") {
		return name[1:]
	}
	return name
}

// Argument modifiers

// Help sets the description shown in the generated help text
func (a *Argument) Help(text string) *Argument {
	a.help = text
	return a
}

// Required marks the argument as required
func (a *Argument) Required(required bool) *Argument {
	a.required = required
	return a
}

// AddAlias registers an alternate name. The alias is normalized like the
// canonical name and rejected if empty or equal to it. Clashes with other
// arguments are detected by Parser.Parse.
func (a *Argument) AddAlias(alias string) error {
	alias = normalizeName(alias)
	if alias == "" || alias == a.name {
		return newErrorf(ErrorTypeInvalidAlias, a.name, "invalid alias %q for argument --%s", alias, a.name)
	}
	if slices.Contains(a.aliases, alias) {
		return nil
	}
	a.aliases = append(a.aliases, intern.Intern(alias))
	return nil
}

// Alias is the chaining form of AddAlias. It panics on an invalid alias,
// which is a programming error in the argument definitions.
func (a *Argument) Alias(alias string) *Argument {
	if err := a.AddAlias(alias); err != nil {
		panic(err)
	}
	return a
}

// Default sets the value used when neither the command line nor the
// environment provides one
func (a *Argument) Default(value Value) *Argument {
	a.defaultVal = value
	a.defaultSet = true
	return a
}

// Flag makes the argument a presence-only switch. A flag never consumes
// the following token and defaults to false.
func (a *Argument) Flag(set bool) *Argument {
	a.flag = set
	if set {
		a.defaultVal = Bool(false)
	}
	return a
}

// Min sets the inclusive lower bound for integer arguments
func (a *Argument) Min(value int) *Argument {
	a.min = &value
	return a
}

// Max sets the inclusive upper bound for integer arguments
func (a *Argument) Max(value int) *Argument {
	a.max = &value
	return a
}

// Env binds the argument to an environment variable consulted at parse time
func (a *Argument) Env(name string) *Argument {
	a.envVar = name
	return a
}

// Choices restricts the accepted raw strings
func (a *Argument) Choices(options ...string) *Argument {
	a.choices = append([]string(nil), options...)
	return a
}

// TypeInt declares an integer argument
func (a *Argument) TypeInt() *Argument { return a.setKind(KindInt) }

// TypeFloat declares a floating point argument
func (a *Argument) TypeFloat() *Argument { return a.setKind(KindFloat) }

// TypeString declares a string argument
func (a *Argument) TypeString() *Argument { return a.setKind(KindString) }

// TypeBool declares a boolean argument
func (a *Argument) TypeBool() *Argument { return a.setKind(KindBool) }

// TypeAuto lets each value pick its kind by trial conversion. The default
// is left untouched.
func (a *Argument) TypeAuto() *Argument {
	a.kind = KindInferred
	return a
}

// setKind switches the declared kind and resets the default to the kind's
// zero value unless it already holds that kind.
func (a *Argument) setKind(kind Kind) *Argument {
	a.kind = kind
	if a.defaultVal.Kind() != kind {
		a.defaultVal = zeroValue(kind)
	}
	return a
}

// CustomValidation adds a predicate over the raw string. message is the
// error text used when the predicate returns false.
func (a *Argument) CustomValidation(fn func(string) bool, message string) *Argument {
	a.customCheck = fn
	a.customMessage = message
	return a
}

// ValidateFunc adds an error-returning validator over the raw string,
// run after CustomValidation. See ValidateRegex, ValidateFile, ValidateDir.
func (a *Argument) ValidateFunc(fn func(string) error) *Argument {
	a.validator = fn
	return a
}

// Accessors

func (a *Argument) Name() string        { return a.name }
func (a *Argument) Aliases() []string   { return slices.Clone(a.aliases) }
func (a *Argument) HelpText() string    { return a.help }
func (a *Argument) IsRequired() bool    { return a.required }
func (a *Argument) Kind() Kind          { return a.kind }
func (a *Argument) DefaultValue() Value { return a.defaultVal }
func (a *Argument) IsFlag() bool        { return a.flag }
func (a *Argument) EnvVar() string      { return a.envVar }
func (a *Argument) ChoiceList() []string {
	return slices.Clone(a.choices)
}

// Bounds returns the configured integer bounds; nil means unbounded.
func (a *Argument) Bounds() (lo, hi *int) { return a.min, a.max }

// Validate checks a raw string against the argument's constraints without
// converting it. Order: integer parse and range, choices, custom predicate,
// validator function.
func (a *Argument) Validate(raw string) error {
	if a.kind == KindInt {
		if raw == "" {
			return newErrorf(ErrorTypeInvalidValue, a.name, "missing integer value for --%s", a.name)
		}
		value, err := strconv.Atoi(raw)
		if err != nil {
			return newErrorf(ErrorTypeInvalidValue, a.name, "invalid integer value for --%s: %s", a.name, raw).
				WithCause(err)
		}
		if a.min != nil && value < *a.min {
			return newErrorf(ErrorTypeOutOfRange, a.name, "value %d for --%s must be >= %d", value, a.name, *a.min)
		}
		if a.max != nil && value > *a.max {
			return newErrorf(ErrorTypeOutOfRange, a.name, "value %d for --%s must be <= %d", value, a.name, *a.max)
		}
	}

	if len(a.choices) > 0 && !slices.Contains(a.choices, raw) {
		return newErrorf(ErrorTypeInvalidChoice, a.name, "invalid choice %q for --%s. Options: %s",
			raw, a.name, strings.Join(a.choices, ", "))
	}

	if a.customCheck != nil && !a.customCheck(raw) {
		message := a.customMessage
		if message == "" {
			message = "validation failed for --" + a.name
		}
		return newErrorf(ErrorTypeValidationFailed, a.name, "%s", message)
	}

	if a.validator != nil {
		if err := a.validator(raw); err != nil {
			return newErrorf(ErrorTypeValidationFailed, a.name, "invalid value for --%s: %v", a.name, err).
				WithCause(err)
		}
	}

	return nil
}

// resolveEnv reads the bound environment variable, if any
func (a *Argument) resolveEnv(env Environment) (string, bool) {
	if a.envVar == "" || env == nil {
		return "", false
	}
	return env.LookupEnv(a.envVar)
}
