package config

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// Parse parses a Spec's Type struct and returns a ParsedSpec with all
// field metadata extracted from struct tags.
func Parse(spec Spec) (*ParsedSpec, error) {
	t := reflect.TypeOf(spec.Type)
	if t == nil {
		return nil, fmt.Errorf("spec.Type is required")
	}
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("spec.Type must be a struct, got %s", t.Kind())
	}

	fields := make([]Field, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if !sf.IsExported() || sf.Tag.Get("config") == "-" {
			continue
		}
		fields = append(fields, parseField(sf))
	}

	return &ParsedSpec{
		Spec:     spec,
		Sections: groupFieldsIntoSections(fields, spec.Sections),
	}, nil
}

// MustParse is Parse but panics on error.
func MustParse(spec Spec) *ParsedSpec {
	p, err := Parse(spec)
	if err != nil {
		panic(err)
	}
	return p
}

// parseField extracts field metadata from struct tags.
func parseField(sf reflect.StructField) Field {
	field := Field{
		Name:   sf.Name,
		GoType: sf.Type,
	}

	jsonTag := sf.Tag.Get("json")
	if jsonTag != "" && jsonTag != "-" {
		parts := strings.Split(jsonTag, ",")
		field.JSONName = parts[0]
	}
	if field.JSONName == "" {
		field.JSONName = strings.ToLower(sf.Name)
	}

	switch sf.Type.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		field.Type = FieldTypeNumber
	case reflect.Bool:
		field.Type = FieldTypeBool
	default:
		field.Type = FieldTypeText
	}

	if tag := sf.Tag.Get("config"); tag != "" {
		parseConfigTag(tag, &field)
	}

	if field.Label == "" {
		field.Label = splitCamelCase(sf.Name)
	}

	return field
}

// parseConfigTag parses the config:"..." struct tag.
func parseConfigTag(tag string, field *Field) {
	for _, part := range splitConfigTag(tag) {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		// Handle boolean flags (no =)
		if !strings.Contains(part, "=") {
			switch part {
			case "required":
				field.Required = true
			case "multiline":
				field.Type = FieldTypeTextarea
			}
			continue
		}

		key, value, _ := strings.Cut(part, "=")
		switch key {
		case "label":
			field.Label = value
		case "help":
			field.Help = value
		case "default":
			field.Default = value
		case "min":
			if v, err := strconv.Atoi(value); err == nil {
				field.Min = &v
			}
		case "max":
			if v, err := strconv.Atoi(value); err == nil {
				field.Max = &v
			}
		case "placeholder":
			field.Placeholder = value
		case "rows":
			if v, err := strconv.Atoi(value); err == nil {
				field.Rows = v
			}
		case "empty":
			field.EmptyOption = value
		case "options":
			// Pipe-separated, each either "value" or "value:Label"
			for _, opt := range strings.Split(value, "|") {
				v, label, ok := strings.Cut(opt, ":")
				if !ok {
					label = v
				}
				field.Options = append(field.Options, Option{Value: v, Label: label})
			}
			field.Type = FieldTypeSelect
		case "section":
			field.Section = value
		}
	}
}

// splitConfigTag splits a config tag on commas that are not nested in parens,
// so help text like "Margin (px, em)" stays in one part.
func splitConfigTag(tag string) []string {
	var parts []string
	var current strings.Builder
	depth := 0

	for i := 0; i < len(tag); i++ {
		c := tag[i]
		switch c {
		case '(':
			depth++
			current.WriteByte(c)
		case ')':
			depth--
			current.WriteByte(c)
		case ',':
			if depth == 0 {
				parts = append(parts, current.String())
				current.Reset()
			} else {
				current.WriteByte(c)
			}
		default:
			current.WriteByte(c)
		}
	}

	if current.Len() > 0 {
		parts = append(parts, current.String())
	}

	return parts
}

// groupFieldsIntoSections organizes fields into sections based on their section tag
// and the SectionDef order specified in the Spec.
func groupFieldsIntoSections(fields []Field, sectionDefs []SectionDef) []Section {
	fieldsBySection := make(map[string][]Field)
	var unsectioned []Field
	for _, field := range fields {
		if field.Section == "" {
			unsectioned = append(unsectioned, field)
		} else {
			fieldsBySection[field.Section] = append(fieldsBySection[field.Section], field)
		}
	}

	var sections []Section
	if len(unsectioned) > 0 {
		sections = append(sections, Section{Fields: unsectioned})
	}

	for _, def := range sectionDefs {
		section := Section{
			Name:        def.Name,
			Title:       def.Title,
			Description: def.Description,
		}

		if len(def.Fields) > 0 {
			for _, name := range def.Fields {
				for _, f := range fields {
					if f.Name == name {
						section.Fields = append(section.Fields, f)
						break
					}
				}
			}
		} else {
			section.Fields = fieldsBySection[def.Name]
		}

		if len(section.Fields) > 0 {
			sections = append(sections, section)
		}
	}

	return sections
}

// splitCamelCase converts "SlideInterval" to "Slide Interval".
func splitCamelCase(s string) string {
	var result strings.Builder
	for i, r := range s {
		if i > 0 && r >= 'A' && r <= 'Z' {
			result.WriteByte(' ')
		}
		result.WriteRune(r)
	}
	return result.String()
}
