package argparse

import "slices"

// Source records where a resolved value came from
type Source int

const (
	SourceDefault Source = iota
	SourceEnv
	SourceCLI
)

// String returns a human-readable source name
func (s Source) String() string {
	switch s {
	case SourceDefault:
		return "default"
	case SourceEnv:
		return "environment"
	case SourceCLI:
		return "command line"
	default:
		return "unknown"
	}
}

// Result maps canonical argument names to their resolved values.
// It is created by Parser.Parse and never modified afterwards.
type Result struct {
	names   []string
	values  map[string]Value
	sources map[string]Source
}

func newResult(capacity int) *Result {
	return &Result{
		names:   make([]string, 0, capacity),
		values:  make(map[string]Value, capacity),
		sources: make(map[string]Source, capacity),
	}
}

func (r *Result) set(name string, value Value, source Source) {
	if _, exists := r.values[name]; !exists {
		r.names = append(r.names, name)
	}
	r.values[name] = value
	r.sources[name] = source
}

// Value returns the stored value. The name may carry a "-" or "--" prefix.
func (r *Result) Value(name string) (Value, error) {
	key := normalizeName(name)
	v, ok := r.values[key]
	if !ok {
		return Value{}, newErrorf(ErrorTypeUnknownKey, key, "unknown argument: %s", key)
	}
	return v, nil
}

// Int returns the integer stored under name
func (r *Result) Int(name string) (int, error) {
	v, err := r.Value(name)
	if err != nil {
		return 0, err
	}
	n, err := v.AsInt()
	return n, r.named(err, name)
}

// Float returns the float stored under name
func (r *Result) Float(name string) (float64, error) {
	v, err := r.Value(name)
	if err != nil {
		return 0, err
	}
	f, err := v.AsFloat()
	return f, r.named(err, name)
}

// String returns the string stored under name
func (r *Result) String(name string) (string, error) {
	v, err := r.Value(name)
	if err != nil {
		return "", err
	}
	s, err := v.AsString()
	return s, r.named(err, name)
}

// Bool returns the boolean stored under name
func (r *Result) Bool(name string) (bool, error) {
	v, err := r.Value(name)
	if err != nil {
		return false, err
	}
	b, err := v.AsBool()
	return b, r.named(err, name)
}

// named attaches the argument name to a type mismatch
func (r *Result) named(err error, name string) error {
	if err == nil {
		return nil
	}
	if argErr, ok := err.(*ArgumentError); ok {
		argErr.Argument = normalizeName(name)
		argErr.Message = "--" + argErr.Argument + ": " + argErr.Message
		return argErr
	}
	return err
}

// MustInt returns the integer stored under name or defaultValue
func (r *Result) MustInt(name string, defaultValue int) int {
	if v, err := r.Int(name); err == nil {
		return v
	}
	return defaultValue
}

// MustFloat returns the float stored under name or defaultValue
func (r *Result) MustFloat(name string, defaultValue float64) float64 {
	if v, err := r.Float(name); err == nil {
		return v
	}
	return defaultValue
}

// MustString returns the string stored under name or defaultValue
func (r *Result) MustString(name, defaultValue string) string {
	if v, err := r.String(name); err == nil {
		return v
	}
	return defaultValue
}

// MustBool returns the boolean stored under name or defaultValue
func (r *Result) MustBool(name string, defaultValue bool) bool {
	if v, err := r.Bool(name); err == nil {
		return v
	}
	return defaultValue
}

// Source reports where the value for name came from
func (r *Result) Source(name string) (Source, bool) {
	s, ok := r.sources[normalizeName(name)]
	return s, ok
}

// Names returns the canonical names in registration order
func (r *Result) Names() []string { return slices.Clone(r.names) }

// Len returns the number of stored values
func (r *Result) Len() int { return len(r.names) }
