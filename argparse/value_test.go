//nolint:testpackage // using package name 'argparse' to access unexported fields for testing
package argparse

import (
	"math"
	"testing"
)

func TestConvertValue(t *testing.T) {
	tests := []struct {
		raw     string
		kind    Kind
		want    Value
		wantErr bool
	}{
		{"42", KindInt, Int(42), false},
		{"-7", KindInt, Int(-7), false},
		{"42abc", KindInt, Value{}, true},
		{"0x10", KindInt, Value{}, true},
		{"", KindInt, Value{}, true},
		{"3.5", KindFloat, Float(3.5), false},
		{"1e3", KindFloat, Float(1000), false},
		{"3.5x", KindFloat, Value{}, true},
		{"", KindString, String(""), false},
		{"hello world", KindString, String("hello world"), false},
		{"true", KindBool, Bool(true), false},
		{"1", KindBool, Bool(true), false},
		{"false", KindBool, Bool(false), false},
		{"0", KindBool, Bool(false), false},
		{"yes", KindBool, Bool(false), false},
		{"on", KindBool, Bool(false), false},
		{"T", KindBool, Bool(false), false},
		{"TRUE", KindBool, Bool(false), false},
		{"maybe", KindBool, Bool(false), false},
		{"2", KindBool, Bool(false), false},
		{"", KindBool, Bool(false), false},
		{"true", KindInferred, Bool(true), false},
		{"1", KindInferred, Bool(true), false},
		{"0", KindInferred, Bool(false), false},
		{"yes", KindInferred, String("yes"), false},
		{"42", KindInferred, Int(42), false},
		{"-3", KindInferred, Int(-3), false},
		{"3.14", KindInferred, Float(3.14), false},
		{"12abc", KindInferred, String("12abc"), false},
		{"1.5.2", KindInferred, String("1.5.2"), false},
		{"hello", KindInferred, String("hello"), false},
	}

	for _, tt := range tests {
		got, err := ConvertValue(tt.raw, tt.kind)
		if tt.wantErr {
			if !IsType(err, ErrorTypeValueFormat) {
				t.Errorf("ConvertValue(%q, %s): expected value_format, got %v", tt.raw, tt.kind, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ConvertValue(%q, %s): unexpected error %v", tt.raw, tt.kind, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ConvertValue(%q, %s) = %#v, want %#v", tt.raw, tt.kind, got, tt.want)
		}
	}
}

func TestConvertValueUnknownKind(t *testing.T) {
	if _, err := ConvertValue("1", Kind(42)); !IsType(err, ErrorTypeValueFormat) {
		t.Errorf("expected value_format, got %v", err)
	}
}

func TestInferredRoundTrip(t *testing.T) {
	tests := []struct {
		raw  string
		want Value
	}{
		{"42", Int(42)},
		{"3.14", Float(3.14)},
		{"true", Bool(true)},
		{"hello", String("hello")},
		{"false", Bool(false)},
		{"-0.25", Float(-0.25)},
	}

	for _, tt := range tests {
		first, err := ConvertValue(tt.raw, KindInferred)
		if err != nil || first != tt.want {
			t.Fatalf("infer %q = %#v, %v; want %#v", tt.raw, first, err, tt.want)
		}

		second, err := ConvertValue(first.String(), KindInferred)
		if err != nil {
			t.Fatalf("re-infer %q: %v", first.String(), err)
		}
		if second != first {
			t.Errorf("round trip of %q changed %#v into %#v", tt.raw, first, second)
		}
	}
}

func TestValueAccessors(t *testing.T) {
	v := Float(2.5)

	if f, err := v.AsFloat(); err != nil || f != 2.5 {
		t.Errorf("AsFloat = %v, %v", f, err)
	}
	if _, err := v.AsInt(); !IsType(err, ErrorTypeTypeMismatch) {
		t.Errorf("AsInt on float: expected type_mismatch, got %v", err)
	}
	if _, err := v.AsString(); !IsType(err, ErrorTypeTypeMismatch) {
		t.Errorf("AsString on float: expected type_mismatch, got %v", err)
	}
	if _, err := v.AsBool(); !IsType(err, ErrorTypeTypeMismatch) {
		t.Errorf("AsBool on float: expected type_mismatch, got %v", err)
	}

	if s, err := String("x").AsString(); err != nil || s != "x" {
		t.Errorf("AsString = %q, %v", s, err)
	}
	if b, err := Bool(true).AsBool(); err != nil || !b {
		t.Errorf("AsBool = %v, %v", b, err)
	}
	if n, err := Int(-3).AsInt(); err != nil || n != -3 {
		t.Errorf("AsInt = %d, %v", n, err)
	}

	var zero Value
	if zero != Int(0) {
		t.Errorf("zero Value = %#v, want Int(0)", zero)
	}
}

func TestValueString(t *testing.T) {
	tests := []struct {
		v    Value
		want string
	}{
		{Int(-12), "-12"},
		{Float(0.1), "0.1"},
		{Float(2), "2"},
		{Float(math.Inf(1)), "+Inf"},
		{String("a b"), "a b"},
		{Bool(false), "false"},
	}
	for _, tt := range tests {
		if got := tt.v.String(); got != tt.want {
			t.Errorf("%#v.String() = %q, want %q", tt.v, got, tt.want)
		}
	}
}

func TestKindString(t *testing.T) {
	kinds := map[Kind]string{
		KindInt:      "int",
		KindFloat:    "float",
		KindString:   "string",
		KindBool:     "bool",
		KindInferred: "auto",
		Kind(9):      "unknown",
	}
	for kind, want := range kinds {
		if got := kind.String(); got != want {
			t.Errorf("Kind(%d).String() = %q, want %q", int(kind), got, want)
		}
	}
}
