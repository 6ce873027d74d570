// Package carousel implements a slideshow component: manual slides and slides
// generated from site content are merged into one sequence, then turned into the
// class names, attributes, and script parameters a template needs.
package carousel

import (
	"context"
	"fmt"
	"strings"
)

const (
	DefaultSlideInterval = 5000
	DefaultNumberOfItems = 10
)

// Widget holds the options of the Owl Carousel browser widget.
type Widget struct {
	Nav            bool `json:"nav"`
	Dots           bool `json:"dots"`
	Loop           bool `json:"loop"`
	Center         bool `json:"center"`
	AutoPlay       bool `json:"autoPlay"`
	AutoHeight     bool `json:"autoHeight"`
	NumberOfSlides int  `json:"numberOfSlides"`
}

// ImageResize is passed through to whatever serves the slide images.
type ImageResize struct {
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
	Method string `json:"method,omitempty"`
}

// Style is cosmetic configuration the core only carries for the view layer.
type Style struct {
	ButtonMargin     string      `json:"buttonMargin,omitempty"`
	ButtonMarginUnit string      `json:"buttonMarginUnit,omitempty"`
	RoundedButtons   bool        `json:"roundedButtons"`
	IconPrev         string      `json:"iconPrev,omitempty"`
	IconNext         string      `json:"iconNext,omitempty"`
	AnimationIn      string      `json:"animationIn,omitempty"`
	AnimationOut     string      `json:"animationOut,omitempty"`
	ImageResize      ImageResize `json:"imageResize"`
}

// Carousel is the container component: its configuration, its manual slides,
// and optionally a list source.
type Carousel struct {
	ID    int64  `json:"id"`
	UID   string `json:"uid"`
	Title string `json:"title"`

	HeadingLevel   string    `json:"headingLevel,omitempty"`
	SlideInterval  int       `json:"slideInterval"`
	ShowControls   bool      `json:"showControls"`
	ShowIndicators bool      `json:"showIndicators"`
	ShowIcons      bool      `json:"showIcons"`
	HideTitle      bool      `json:"hideTitle"`
	Placement      Placement `json:"placement"`

	Style  Style  `json:"style"`
	Widget Widget `json:"widget"`

	Slides     []Slide     `json:"slides"`
	ListSource *ListSource `json:"listSource,omitempty"`
}

// NewCarousel returns a carousel with the default configuration.
func NewCarousel() *Carousel {
	return &Carousel{
		SlideInterval:  DefaultSlideInterval,
		ShowControls:   true,
		ShowIndicators: true,
		ShowIcons:      true,
		HideTitle:      true,
		Placement:      DefaultPlacement,
		Style: Style{
			ButtonMargin:     "1",
			ButtonMarginUnit: "rem",
			IconPrev:         "fa-chevron-left",
			IconNext:         "fa-chevron-right",
		},
		Widget: Widget{
			Nav:            true,
			Dots:           true,
			Loop:           true,
			Center:         true,
			AutoPlay:       true,
			AutoHeight:     true,
			NumberOfSlides: 1,
		},
	}
}

// HTMLID is the element ID prefix shared by everything rendered for this carousel.
func (c *Carousel) HTMLID() string { return fmt.Sprintf("CarouselComponent_%d", c.ID) }

// WrapperID is the ID of the outermost element.
func (c *Carousel) WrapperID() string { return c.HTMLID() + "_Wrapper" }

// ElementID is the ID of the element the browser widget is attached to.
func (c *Carousel) ElementID() string { return c.HTMLID() + "_Carousel" }

// HeadingTag returns the configured heading level, or "" when unset.
func (c *Carousel) HeadingTag() string { return strings.ToLower(c.HeadingLevel) }

// ButtonMarginCSS returns the button margin as a CSS length, or "" when unset.
func (c *Carousel) ButtonMarginCSS() string {
	if c.Style.ButtonMargin == "" {
		return ""
	}
	unit := c.Style.ButtonMarginUnit
	if unit == "" {
		unit = "rem"
	}
	return c.Style.ButtonMargin + unit
}

// EnabledSlides merges the enabled manual slides with the slides derived from items.
// List source slides come first when the placement is "before" and last when "after".
// items is ignored when no list source is configured.
func (c *Carousel) EnabledSlides(items []ContentItem) ([]Slide, error) {
	placement, err := ParsePlacement(string(c.Placement))
	if err != nil {
		return nil, err
	}

	var derived []Slide
	if c.ListSource != nil {
		derived = c.ListSource.Slides(c.ID, items)
	}

	manual := make([]Slide, 0, len(c.Slides))
	for _, s := range c.Slides {
		if s.Enabled() {
			manual = append(manual, s)
		}
	}

	slides := make([]Slide, 0, len(derived)+len(manual))
	if placement == PlaceBefore {
		slides = append(slides, derived...)
		slides = append(slides, manual...)
	} else {
		slides = append(slides, manual...)
		slides = append(slides, derived...)
	}
	return slides, nil
}

// Resolve fetches the list source items (if any) from src and returns the enabled slides.
func (c *Carousel) Resolve(ctx context.Context, src ProvidesListItems) ([]Slide, error) {
	var items []ContentItem
	if c.ListSource != nil && src != nil {
		var err error
		items, err = src.ListItems(ctx, *c.ListSource)
		if err != nil {
			return nil, fmt.Errorf("listing items: %w", err)
		}
	}
	return c.EnabledSlides(items)
}

// Disabled reports whether a carousel with the given resolved slides should be hidden.
func Disabled(slides []Slide) bool { return len(slides) == 0 }
