package argparse

import "strconv"

// Kind represents the value type an argument is converted to
type Kind int

const (
	KindInt Kind = iota
	KindFloat
	KindString
	KindBool
	// KindInferred decides the concrete kind per value by trial conversion.
	KindInferred
)

// String returns the string representation of the kind
func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindBool:
		return "bool"
	case KindInferred:
		return "auto"
	default:
		return "unknown"
	}
}

// Value holds exactly one of int, float64, string or bool.
// The zero Value is Int(0).
type Value struct {
	kind Kind
	i    int
	f    float64
	s    string
	b    bool
}

// Int returns an integer Value.
func Int(v int) Value { return Value{kind: KindInt, i: v} }

// Float returns a floating point Value.
func Float(v float64) Value { return Value{kind: KindFloat, f: v} }

// String returns a string Value.
func String(v string) Value { return Value{kind: KindString, s: v} }

// Bool returns a boolean Value.
func Bool(v bool) Value { return Value{kind: KindBool, b: v} }

// Kind returns the kind of the stored variant. It is never KindInferred.
func (v Value) Kind() Kind { return v.kind }

// AsInt returns the stored integer, failing if the value is not an Int.
func (v Value) AsInt() (int, error) {
	if v.kind != KindInt {
		return 0, v.mismatch(KindInt)
	}
	return v.i, nil
}

// AsFloat returns the stored float, failing if the value is not a Float.
func (v Value) AsFloat() (float64, error) {
	if v.kind != KindFloat {
		return 0, v.mismatch(KindFloat)
	}
	return v.f, nil
}

// AsString returns the stored string, failing if the value is not a String.
func (v Value) AsString() (string, error) {
	if v.kind != KindString {
		return "", v.mismatch(KindString)
	}
	return v.s, nil
}

// AsBool returns the stored boolean, failing if the value is not a Bool.
func (v Value) AsBool() (bool, error) {
	if v.kind != KindBool {
		return false, v.mismatch(KindBool)
	}
	return v.b, nil
}

func (v Value) mismatch(want Kind) *ArgumentError {
	return newErrorf(ErrorTypeTypeMismatch, "", "type mismatch: value is %s, requested %s", v.kind, want)
}

// String returns the canonical textual form of the value.
func (v Value) String() string {
	switch v.kind {
	case KindFloat:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case KindString:
		return v.s
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindInt, KindInferred:
		return strconv.Itoa(v.i)
	default:
		return strconv.Itoa(v.i)
	}
}

// zeroValue returns the zero-equivalent for a concrete kind
func zeroValue(kind Kind) Value {
	switch kind {
	case KindFloat:
		return Float(0)
	case KindString:
		return String("")
	case KindBool:
		return Bool(false)
	case KindInt, KindInferred:
		return Int(0)
	default:
		return Int(0)
	}
}

// ConvertValue converts a raw string into a Value of the given kind.
// Malformed numeric text fails with ErrorTypeValueFormat; KindBool never fails.
// KindInferred tries boolean literals, then integer, then float, and falls
// back to the raw string.
func ConvertValue(raw string, kind Kind) (Value, error) {
	switch kind {
	case KindInt:
		n, err := strconv.Atoi(raw)
		if err != nil {
			return Value{}, formatError(raw, kind, err)
		}
		return Int(n), nil

	case KindFloat:
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return Value{}, formatError(raw, kind, err)
		}
		return Float(f), nil

	case KindString:
		return String(raw), nil

	case KindBool:
		// Only the exact literals "true" and "1" are true; any other text is false
		return Bool(raw == "true" || raw == "1"), nil

	case KindInferred:
		return inferValue(raw), nil

	default:
		return Value{}, newErrorf(ErrorTypeValueFormat, "", "unsupported value kind %d", int(kind))
	}
}

func inferValue(raw string) Value {
	switch raw {
	case "true", "1":
		return Bool(true)
	case "false", "0":
		return Bool(false)
	}

	// strconv parses the whole input, so partial numeric prefixes never match
	if n, err := strconv.Atoi(raw); err == nil {
		return Int(n)
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		return Float(f)
	}
	return String(raw)
}

func formatError(raw string, kind Kind, cause error) *ArgumentError {
	return newErrorf(ErrorTypeValueFormat, "", "invalid %s value format: %q", kind, raw).WithCause(cause)
}
