// Package templates renders html/template templates as components that modules
// can hand to an http.ResponseWriter or embed in each other.
package templates

import (
	"context"
	"html/template"
	"io"
	"io/fs"
)

// Component represents a template component that can be rendered
type Component interface {
	Render(ctx context.Context, w io.Writer) error
}

// TemplateComponent implements Component for html/template rendering.
// Name selects a template defined in the set; empty means the set's root.
type TemplateComponent struct {
	Template *template.Template
	Name     string
	Data     any
}

func (tc *TemplateComponent) Render(ctx context.Context, w io.Writer) error {
	if tc.Name == "" {
		return tc.Template.Execute(w, tc.Data)
	}
	return tc.Template.ExecuteTemplate(w, tc.Name, tc.Data)
}

// ComponentFunc adapts a function to the Component interface.
type ComponentFunc func(ctx context.Context, w io.Writer) error

func (f ComponentFunc) Render(ctx context.Context, w io.Writer) error { return f(ctx, w) }

// Empty renders nothing.
var Empty Component = ComponentFunc(func(context.Context, io.Writer) error { return nil })

// MustParseFS parses the named files from fsys, panicking on error.
// It is meant for package-level template vars backed by go:embed.
func MustParseFS(fsys fs.FS, funcs template.FuncMap, patterns ...string) *template.Template {
	return template.Must(template.New("").Funcs(funcs).ParseFS(fsys, patterns...))
}
