package pages

import (
	"bytes"
	"strings"

	"github.com/gomarkdown/markdown"
	mdhtml "github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
	"golang.org/x/net/html"
)

const summaryWords = 50

// RenderMarkdown converts a page body to HTML. Raw HTML in the source is dropped.
func RenderMarkdown(body string) []byte {
	p := parser.NewWithExtensions(parser.CommonExtensions)
	r := mdhtml.NewRenderer(mdhtml.RendererOptions{Flags: mdhtml.CommonFlags | mdhtml.SkipHTML})
	return markdown.ToHTML([]byte(body), p, r)
}

// Summarize returns the text of the first paragraph of a markdown body,
// cut to summaryWords words.
func Summarize(body string) string {
	doc, err := html.Parse(bytes.NewReader(RenderMarkdown(body)))
	if err != nil {
		return ""
	}

	p := findFirst(doc, "p")
	if p == nil {
		return ""
	}

	var text strings.Builder
	collectText(p, &text)
	return truncateWords(text.String(), summaryWords)
}

func findFirst(n *html.Node, tag string) *html.Node {
	if n.Type == html.ElementNode && n.Data == tag {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findFirst(c, tag); found != nil {
			return found
		}
	}
	return nil
}

func collectText(n *html.Node, b *strings.Builder) {
	if n.Type == html.TextNode {
		b.WriteString(n.Data)
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, b)
	}
}

func truncateWords(s string, n int) string {
	words := strings.Fields(s)
	if len(words) <= n {
		return strings.Join(words, " ")
	}
	return strings.Join(words[:n], " ") + "…"
}
