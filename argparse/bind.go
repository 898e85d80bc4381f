package argparse

import (
	"fmt"
	"reflect"
	"strings"
)

var valueType = reflect.TypeOf(Value{})

// Bind copies resolved values into the struct pointed to by target.
// Fields are matched by their `arg:"name"` tag, or by the lower-cased field
// name when untagged; `arg:"-"` skips a field. Untagged fields without a
// matching argument are left alone. A tagged name that was never
// registered fails with ErrorTypeUnknownKey; a value whose kind does not
// fit the field fails with ErrorTypeTypeMismatch. Fields of type Value
// accept any kind.
func (r *Result) Bind(target any) error {
	targetValue := reflect.ValueOf(target)
	if targetValue.Kind() != reflect.Ptr || targetValue.IsNil() || targetValue.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("bind target must be a non-nil pointer to struct, got %T", target)
	}

	targetStruct := targetValue.Elem()
	return r.setStructFields(targetStruct, targetStruct.Type())
}

// setStructFields sets exported fields from the result, recursing into
// embedded structs
func (r *Result) setStructFields(structValue reflect.Value, structType reflect.Type) error {
	for i := 0; i < structType.NumField(); i++ {
		field := structType.Field(i)
		fieldValue := structValue.Field(i)

		if !field.IsExported() || !fieldValue.CanSet() {
			continue
		}

		tag, tagged := field.Tag.Lookup("arg")
		if tag == "-" {
			continue
		}

		if field.Anonymous && fieldValue.Kind() == reflect.Struct && !tagged {
			if err := r.setStructFields(fieldValue, field.Type); err != nil {
				return err
			}
			continue
		}

		name := strings.TrimSpace(strings.Split(tag, ",")[0])
		if name == "" {
			name = strings.ToLower(field.Name)
		}
		name = normalizeName(name)

		value, exists := r.values[name]
		if !exists {
			if tagged {
				return newErrorf(ErrorTypeUnknownKey, name, "field %s: unknown argument: %s", field.Name, name)
			}
			continue
		}

		if err := setFieldValue(fieldValue, value); err != nil {
			return newErrorf(ErrorTypeTypeMismatch, name, "field %s: %v", field.Name, err)
		}
	}

	return nil
}

// setFieldValue assigns a Value to a field of a compatible kind
func setFieldValue(fieldValue reflect.Value, value Value) error {
	if fieldValue.Type() == valueType {
		fieldValue.Set(reflect.ValueOf(value))
		return nil
	}

	switch fieldValue.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := value.AsInt()
		if err != nil {
			return err
		}
		if fieldValue.OverflowInt(int64(n)) {
			return fmt.Errorf("value %d overflows %s", n, fieldValue.Type())
		}
		fieldValue.SetInt(int64(n))

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := value.AsInt()
		if err != nil {
			return err
		}
		if n < 0 || fieldValue.OverflowUint(uint64(n)) {
			return fmt.Errorf("value %d overflows %s", n, fieldValue.Type())
		}
		fieldValue.SetUint(uint64(n))

	case reflect.Float32, reflect.Float64:
		f, err := value.AsFloat()
		if err != nil {
			return err
		}
		fieldValue.SetFloat(f)

	case reflect.String:
		s, err := value.AsString()
		if err != nil {
			return err
		}
		fieldValue.SetString(s)

	case reflect.Bool:
		b, err := value.AsBool()
		if err != nil {
			return err
		}
		fieldValue.SetBool(b)

	default:
		return fmt.Errorf("unsupported field type %s", fieldValue.Type())
	}

	return nil
}
