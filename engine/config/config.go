// Package config provides a declarative configuration system for modules.
// Modules define their configuration needs using Go structs with tags,
// and admin surfaces use the parsed metadata to build and decode forms.
package config

import (
	"errors"
	"reflect"
)

// FieldType defines the UI input type for a config field.
type FieldType string

const (
	FieldTypeText     FieldType = "text"
	FieldTypeNumber   FieldType = "number"
	FieldTypeTextarea FieldType = "textarea"
	FieldTypeSelect   FieldType = "select"
	FieldTypeBool     FieldType = "bool"
)

// Field represents a single configuration field with metadata.
type Field struct {
	Name        string       `json:"-"`     // Go struct field name
	JSONName    string       `json:"name"`  // JSON/form field name (from json tag or lowercased)
	Label       string       `json:"label"` // Display label
	Help        string       `json:"help,omitempty"`
	Type        FieldType    `json:"type"`
	Required    bool         `json:"required,omitempty"`
	Default     string       `json:"default,omitempty"`
	Min         *int         `json:"min,omitempty"`
	Max         *int         `json:"max,omitempty"`
	Options     []Option     `json:"options,omitempty"`
	EmptyOption string       `json:"emptyOption,omitempty"` // Label of the blank select entry, if any
	Placeholder string       `json:"placeholder,omitempty"`
	Rows        int          `json:"rows,omitempty"`
	Section     string       `json:"-"`
	GoType      reflect.Type `json:"-"`
}

// Option represents a select field option.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Section groups related fields together in the UI.
type Section struct {
	Name        string  `json:"name,omitempty"`
	Title       string  `json:"title,omitempty"`
	Description string  `json:"description,omitempty"`
	Fields      []Field `json:"fields"`
}

// SectionDef defines a section in the Spec.
type SectionDef struct {
	Name        string   // Section identifier
	Title       string   // Display title
	Description string   // Help text for the section
	Fields      []string // Optional: explicit field names (in order) belonging to this section
}

// Spec defines a module's configuration specification.
type Spec struct {
	// Module identifier (used in URL paths)
	Module string

	// Display title for the admin UI
	Title string

	// Description/help text shown at the top of the config page
	Description string

	// Type is a zero value of the config struct.
	// Must be a struct or pointer to struct.
	Type any

	// Sections defines how fields are grouped.
	// If empty, fields are assigned to sections based on their `section` tag.
	Sections []SectionDef

	// Order controls display order in the config sidebar (lower = first).
	Order int
}

// ParsedSpec is a Spec with all fields parsed from struct tags.
type ParsedSpec struct {
	Spec
	Sections []Section
}

// Fields returns every field of every section in display order.
func (p *ParsedSpec) Fields() []Field {
	var fields []Field
	for _, s := range p.Sections {
		fields = append(fields, s.Fields...)
	}
	return fields
}

// Validatable is implemented by config structs that need custom validation.
type Validatable interface {
	Validate() error
}

// FieldError reports a submitted value that could not be decoded into its field.
type FieldError struct {
	Field string
	Msg   string
}

func (e *FieldError) Error() string { return e.Field + ": " + e.Msg }

// ErrInvalid is wrapped by every error returned from Decode.
var ErrInvalid = errors.New("invalid configuration")
