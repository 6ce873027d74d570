package config

import (
	"errors"
	"fmt"
	"net/url"
	"reflect"
	"slices"
	"strconv"
)

// ApplyDefaults sets every zero-valued field that declares a default.
// cfg must be a pointer to the spec's struct type.
func ApplyDefaults(cfg any, spec *ParsedSpec) {
	v := reflect.ValueOf(cfg)
	if v.Kind() != reflect.Ptr {
		return
	}
	v = v.Elem()

	for _, field := range spec.Fields() {
		if field.Default == "" {
			continue
		}
		f := v.FieldByName(field.Name)
		if !f.IsValid() || !f.CanSet() || !f.IsZero() {
			continue
		}
		switch f.Kind() {
		case reflect.String:
			f.SetString(field.Default)
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			if n, err := strconv.ParseInt(field.Default, 10, 64); err == nil {
				f.SetInt(n)
			}
		case reflect.Bool:
			f.SetBool(field.Default == "true" || field.Default == "1")
		}
	}
}

// Decode copies submitted form values into cfg (a pointer to the spec's struct type).
// Fields missing from the form keep their current value, so callers decode on top of
// defaults or stored config. Checkbox fields are cleared when the form sends their name
// without a truthy value: forms pair each checkbox with a hidden "off" input of the same name.
// Every field is decoded before returning so the error lists all problems at once.
// Structs implementing Validatable are validated after decoding.
func Decode(form url.Values, spec *ParsedSpec, cfg any) error {
	v := reflect.ValueOf(cfg)
	if v.Kind() != reflect.Ptr || v.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("config must be a pointer to a struct, got %T", cfg)
	}
	v = v.Elem()

	var errs []error
	for _, field := range spec.Fields() {
		f := v.FieldByName(field.Name)
		if !f.IsValid() || !f.CanSet() {
			continue
		}
		if !form.Has(field.JSONName) {
			if field.Required && f.IsZero() {
				errs = append(errs, &FieldError{Field: field.JSONName, Msg: "is required"})
			}
			continue
		}
		if err := setFieldFromForm(f, form[field.JSONName], field); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalid, errors.Join(errs...))
	}

	if val, ok := cfg.(Validatable); ok {
		if err := val.Validate(); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalid, err)
		}
	}
	return nil
}

func setFieldFromForm(f reflect.Value, values []string, field Field) error {
	if f.Kind() == reflect.Bool {
		f.SetBool(slices.ContainsFunc(values, isTruthy))
		return nil
	}

	value := ""
	if len(values) > 0 {
		value = values[0]
	}
	if value == "" && field.Required {
		return &FieldError{Field: field.JSONName, Msg: "is required"}
	}

	switch f.Kind() {
	case reflect.String:
		if field.Type == FieldTypeSelect && value != "" && !slices.ContainsFunc(field.Options, func(o Option) bool { return o.Value == value }) {
			return &FieldError{Field: field.JSONName, Msg: fmt.Sprintf("%q is not one of the allowed options", value)}
		}
		f.SetString(value)

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if value == "" {
			value = field.Default
		}
		if value == "" {
			f.SetInt(0)
			return nil
		}
		n, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return &FieldError{Field: field.JSONName, Msg: fmt.Sprintf("%q is not a whole number", value)}
		}
		if field.Min != nil && n < int64(*field.Min) {
			return &FieldError{Field: field.JSONName, Msg: fmt.Sprintf("must be at least %d", *field.Min)}
		}
		if field.Max != nil && n > int64(*field.Max) {
			return &FieldError{Field: field.JSONName, Msg: fmt.Sprintf("must be at most %d", *field.Max)}
		}
		f.SetInt(n)
	}
	return nil
}

func isTruthy(v string) bool { return v == "on" || v == "true" || v == "1" }

// Values returns the current value of each field formatted for a form.
func Values(cfg any, spec *ParsedSpec) map[string]string {
	v := reflect.ValueOf(cfg)
	if v.Kind() == reflect.Ptr {
		v = v.Elem()
	}
	out := make(map[string]string)
	if v.Kind() != reflect.Struct {
		return out
	}

	for _, field := range spec.Fields() {
		f := v.FieldByName(field.Name)
		if !f.IsValid() {
			continue
		}
		switch f.Kind() {
		case reflect.String:
			out[field.JSONName] = f.String()
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			out[field.JSONName] = strconv.FormatInt(f.Int(), 10)
		case reflect.Bool:
			out[field.JSONName] = strconv.FormatBool(f.Bool())
		default:
			out[field.JSONName] = fmt.Sprintf("%v", f.Interface())
		}
	}
	return out
}
