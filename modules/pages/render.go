package pages

import (
	"embed"
	"html/template"

	"github.com/TheLab-ms/carousel/internal/templates"
)

//go:embed templates/*
var templateFS embed.FS

var pageTemplate = templates.MustParseFS(templateFS, template.FuncMap{
	"markdown": func(body string) template.HTML { return template.HTML(RenderMarkdown(body)) },
}, "templates/page.html")

func renderPage(p *Page) templates.Component {
	return &templates.TemplateComponent{Template: pageTemplate, Name: "page.html", Data: p}
}
