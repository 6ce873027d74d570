package carousel

import "strconv"

// SlideView is everything a template needs to render one slide.
type SlideView struct {
	Slide
	Index    int  `json:"index"`
	IsFirst  bool `json:"isFirst"`
	IsMiddle bool `json:"isMiddle"`
	IsLast   bool `json:"isLast"`

	ClassNames        []string   `json:"classNames"`
	ImageClassNames   []string   `json:"imageClassNames"`
	CaptionClassNames []string   `json:"captionClassNames"`
	LinkAttributes    Attributes `json:"linkAttributes,omitempty"`
	ShowTitle         bool       `json:"showTitle"`
	ShowCaption       bool       `json:"showCaption"`
}

// Indicator is one entry of the indicator list.
type Indicator struct {
	Index  int    `json:"index"`
	Target string `json:"target"`
	Active bool   `json:"active"`
	Class  string `json:"class,omitempty"`
}

// Control is the previous or next button.
type Control struct {
	Direction       string   `json:"direction"`
	Href            string   `json:"href"`
	Text            string   `json:"text"`
	ClassNames      []string `json:"classNames"`
	IconClassNames  []string `json:"iconClassNames"`
	TextClassNames  []string `json:"textClassNames"`
	ButtonMarginCSS string   `json:"buttonMarginCSS,omitempty"`
}

// View is the complete presentation model of a carousel.
type View struct {
	ID         string `json:"id"`
	Disabled   bool   `json:"disabled"`
	Title      string `json:"title,omitempty"`
	HeadingTag string `json:"headingTag,omitempty"`

	ShowControls   bool `json:"showControls"`
	ShowIndicators bool `json:"showIndicators"`
	ShowIcons      bool `json:"showIcons"`

	WrapperClassNames    []string   `json:"wrapperClassNames"`
	WrapperAttributes    Attributes `json:"wrapperAttributes"`
	InnerClassNames      []string   `json:"innerClassNames"`
	ControlsClassNames   []string   `json:"controlsClassNames"`
	IndicatorsClassNames []string   `json:"indicatorsClassNames"`

	Slides     []SlideView `json:"slides"`
	Indicators []Indicator `json:"indicators"`
	Previous   Control     `json:"previous"`
	Next       Control     `json:"next"`
}

// ViewOptions are the collaborators used while building a view. All are optional.
type ViewOptions struct {
	Styles     Styles
	Hooks      *Hooks
	Translator Translator
}

type viewBuilder struct {
	c      *Carousel
	styles Styles
	hooks  *Hooks
	tr     Translator
}

// BuildView derives the presentation model for already resolved slides.
// It has no side effects and performs no escaping.
func BuildView(c *Carousel, slides []Slide, opts ViewOptions) View {
	b := &viewBuilder{c: c, styles: opts.Styles, hooks: opts.Hooks, tr: opts.Translator}
	if b.styles == nil {
		b.styles = Styles{}
	}
	if b.tr == nil {
		b.tr = fallbackTranslator{}
	}

	v := View{
		ID:                   c.WrapperID(),
		Disabled:             Disabled(slides),
		HeadingTag:           c.HeadingTag(),
		ShowControls:         c.ShowControls,
		ShowIndicators:       c.ShowIndicators,
		ShowIcons:            c.ShowIcons,
		WrapperClassNames:    b.classNames(UpdateWrapperClassNames, "carousel", "carousel.slide"),
		InnerClassNames:      b.classNames(UpdateInnerClassNames, "carousel.inner"),
		ControlsClassNames:   b.classNames(UpdateControlsClassNames, "carousel.controls"),
		IndicatorsClassNames: b.classNames(UpdateIndicatorsClassNames, "carousel.indicators"),
		Previous: b.control("prev", KeyPreviousText, "Previous",
			UpdateControlPreviousClassNames, "carousel.control-previous",
			UpdateControlPreviousIconClassNames, "carousel.control-previous-icon"),
		Next: b.control("next", KeyNextText, "Next",
			UpdateControlNextClassNames, "carousel.control-next",
			UpdateControlNextIconClassNames, "carousel.control-next-icon"),
		Slides:     make([]SlideView, len(slides)),
		Indicators: make([]Indicator, len(slides)),
	}
	if !c.HideTitle {
		v.Title = c.Title
	}
	v.WrapperAttributes = b.wrapperAttributes(v.WrapperClassNames)

	for i, s := range slides {
		v.Slides[i] = b.slide(s, i, len(slides))
		v.Indicators[i] = Indicator{
			Index:  i,
			Target: "#" + v.ID,
			Active: i == 0,
			Class:  b.indicatorClass(i == 0),
		}
	}

	return v
}

func (b *viewBuilder) classNames(hook Hook, names ...string) []string {
	return b.hooks.classNames(hook, b.styles.Styles(names...))
}

func (b *viewBuilder) wrapperAttributes(classes []string) Attributes {
	attrs := Attributes{
		{Name: "id", Value: b.c.WrapperID()},
		{Name: "class", Value: ClassAttr(classes)},
	}
	attrs = b.hooks.attributes(UpdateWrapperAttributes, attrs)
	return attrs.Merge(b.wrapperDataAttributes())
}

func (b *viewBuilder) wrapperDataAttributes() Attributes {
	attrs := Attributes{
		{Name: "data-ride", Value: "carousel"},
		{Name: "data-interval", Value: strconv.Itoa(b.c.SlideInterval)},
	}
	return b.hooks.attributes(UpdateWrapperDataAttributes, attrs)
}

func (b *viewBuilder) indicatorClass(isFirst bool) string {
	if isFirst {
		return b.styles.Style("carousel.indicator-active")
	}
	return ""
}

func (b *viewBuilder) control(dir, key, fallback string, hook Hook, style string, iconHook Hook, iconStyle string) Control {
	return Control{
		Direction:       dir,
		Href:            "#" + b.c.WrapperID(),
		Text:            b.tr.T(key, fallback),
		ClassNames:      b.classNames(hook, style),
		IconClassNames:  b.classNames(iconHook, iconStyle),
		TextClassNames:  b.classNames(UpdateControlTextClassNames, "carousel.control-text"),
		ButtonMarginCSS: b.c.ButtonMarginCSS(),
	}
}

func (b *viewBuilder) slide(s Slide, i, n int) SlideView {
	sv := SlideView{
		Slide:       s,
		Index:       i,
		IsFirst:     i == 0,
		IsLast:      i == n-1,
		ShowTitle:   s.TitleShown(),
		ShowCaption: s.CaptionShown(),
	}
	sv.IsMiddle = !sv.IsFirst && !sv.IsLast

	sv.ClassNames = b.styles.Styles("slide", "carousel.item")
	if sv.IsFirst {
		sv.ClassNames = append(sv.ClassNames, b.styles.Styles("carousel.item-active")...)
	}
	sv.ImageClassNames = b.styles.Styles("image.fluid", "carousel.image")
	sv.CaptionClassNames = b.styles.Styles("carousel.caption")

	if link, ok := s.LinkTarget(); ok {
		sv.LinkAttributes = Attributes{{Name: "href", Value: link.Href()}}
		if link.NewTab {
			sv.LinkAttributes = sv.LinkAttributes.Merge(Attributes{
				{Name: "target", Value: "_blank"},
				{Name: "rel", Value: "noopener"},
			})
		}
	}

	return sv
}
