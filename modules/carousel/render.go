package carousel

import (
	"embed"
	"html/template"
	"strings"

	"github.com/TheLab-ms/carousel/internal/templates"
)

//go:embed templates/*
var templateFS embed.FS

var templateSet = templates.MustParseFS(templateFS, template.FuncMap{
	"attrs":   attrs,
	"class":   class,
	"heading": heading,
	"control": control,
}, "templates/*.html")

const defaultHeadingTag = "h3"

// Render returns a component rendering the carousel markup. Disabled views render nothing.
func Render(v View) templates.Component {
	if v.Disabled {
		return templates.Empty
	}
	return &templates.TemplateComponent{Template: templateSet, Name: "carousel.html", Data: v}
}

// RenderScriptTag returns a component rendering the carousel's init script.
func RenderScriptTag(c *Carousel) templates.Component {
	// Script values are escaped for a JS string context when the vars are built.
	return &templates.TemplateComponent{Template: templateSet, Name: "script.html", Data: template.JS(c.Script())}
}

type controlData struct {
	Control
	ShowIcon bool
}

func control(c Control, showIcon bool) controlData {
	return controlData{Control: c, ShowIcon: showIcon}
}

func (c controlData) Attributes() Attributes {
	attrs := Attributes{
		{Name: "href", Value: c.Href},
		{Name: "role", Value: "button"},
		{Name: "data-slide", Value: c.Direction},
	}
	if c.ButtonMarginCSS != "" {
		attrs = attrs.Set("style", "margin: "+c.ButtonMarginCSS)
	}
	return attrs
}

// attrs renders an attribute list in tag context. Names that aren't plain
// attribute names are dropped.
func attrs(list Attributes) template.HTMLAttr {
	parts := make([]string, 0, len(list))
	for _, a := range list {
		if !validAttrName(a.Name) {
			continue
		}
		parts = append(parts, a.Name+`="`+template.HTMLEscapeString(a.Value)+`"`)
	}
	return template.HTMLAttr(strings.Join(parts, " "))
}

func class(classes []string) template.HTMLAttr {
	value := ClassAttr(classes)
	if value == "" {
		return ""
	}
	return template.HTMLAttr(`class="` + template.HTMLEscapeString(value) + `"`)
}

func heading(tag, title string) template.HTML {
	switch tag {
	case "h1", "h2", "h3", "h4", "h5", "h6":
	default:
		tag = defaultHeadingTag
	}
	return template.HTML("<" + tag + ">" + template.HTMLEscapeString(title) + "</" + tag + ">")
}

func validAttrName(name string) bool {
	if name == "" {
		return false
	}
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_', r == ':':
		default:
			return false
		}
	}
	return true
}
