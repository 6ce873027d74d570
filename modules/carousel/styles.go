package carousel

import "strings"

// Styles maps abstract style names to CSS class tokens of a front-end framework.
type Styles map[string]string

// Bootstrap maps the carousel's style names to Bootstrap 4 classes.
var Bootstrap = Styles{
	"carousel":                       "carousel",
	"carousel.slide":                 "slide",
	"carousel.inner":                 "carousel-inner",
	"carousel.item":                  "carousel-item",
	"carousel.item-active":           "active",
	"carousel.image":                 "d-block w-100",
	"carousel.caption":               "carousel-caption",
	"carousel.controls":              "carousel-controls",
	"carousel.control-previous":      "carousel-control-prev",
	"carousel.control-previous-icon": "carousel-control-prev-icon",
	"carousel.control-next":          "carousel-control-next",
	"carousel.control-next-icon":     "carousel-control-next-icon",
	"carousel.control-text":          "sr-only",
	"carousel.indicators":            "carousel-indicators",
	"carousel.indicator-active":      "active",
	"image.fluid":                    "img-fluid",
}

// Style returns the token for name, or "" when there isn't one.
func (s Styles) Style(name string) string { return s[name] }

// Styles returns the tokens for names, leaving out the missing ones.
func (s Styles) Styles(names ...string) []string {
	tokens := make([]string, 0, len(names))
	for _, name := range names {
		if token := s.Style(name); token != "" {
			tokens = append(tokens, token)
		}
	}
	return tokens
}

// ClassAttr joins class names into a class attribute value, skipping empties.
func ClassAttr(classes []string) string {
	nonEmpty := make([]string, 0, len(classes))
	for _, c := range classes {
		if c = strings.TrimSpace(c); c != "" {
			nonEmpty = append(nonEmpty, c)
		}
	}
	return strings.Join(nonEmpty, " ")
}
