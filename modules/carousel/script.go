package carousel

import (
	"sort"
	"strconv"
	"strings"
)

// scriptTemplate initializes Owl Carousel. $Name placeholders are replaced by ScriptVars.
const scriptTemplate = `$(function(){

    // Initialise Owl Carousel:

    var owl = $('#$CarouselID').owlCarousel({
        nav: $Nav,
        dots: $Dots,
        loop: $Loop,
        items: $NumberOfSlides,
        center: $Center,
        autoplay: $AutoPlay,
        autoHeight: $AutoHeight,
        animateIn: $AnimateIn,
        animateOut: $AnimateOut,
        navContainerClass: $ContainerClass,
        navText: [
            '<i class="fa $IconPrev"></i>',
            '<i class="fa $IconNext"></i>'
        ]
    });

    // Update Height on Resize:

    owl.on('resized.owl.carousel', function() {
        var $this = $(this);
        $this.find('.owl-height').css('height', $this.find('.owl-item.active').height());
    });

});`

var jsStringEscaper = strings.NewReplacer(
	`\`, `\\`,
	`'`, `\'`,
	`"`, `\"`,
	"\n", `\n`,
	"\r", `\r`,
	"<", `\u003c`,
	">", `\u003e`,
)

// NavContainerClass is the class of the element holding the widget's nav buttons.
func (c *Carousel) NavContainerClass() string {
	classes := []string{"owl-nav"}
	if c.Style.RoundedButtons {
		classes = append(classes, "rounded")
	}
	return strings.Join(classes, " ")
}

// ScriptVars returns the values substituted into the init script.
// They are script source fragments: booleans are the literals true/false and
// string options already carry their quotes.
func (c *Carousel) ScriptVars() map[string]string {
	return map[string]string{
		"CarouselID":     c.ElementID(),
		"NumberOfSlides": strconv.Itoa(c.Widget.NumberOfSlides),
		"Nav":            strconv.FormatBool(c.Widget.Nav),
		"Dots":           strconv.FormatBool(c.Widget.Dots),
		"Loop":           strconv.FormatBool(c.Widget.Loop),
		"Center":         strconv.FormatBool(c.Widget.Center),
		"AutoPlay":       strconv.FormatBool(c.Widget.AutoPlay),
		"AutoHeight":     strconv.FormatBool(c.Widget.AutoHeight),
		"AnimateIn":      "'" + jsStringEscaper.Replace(c.Style.AnimationIn) + "'",
		"AnimateOut":     "'" + jsStringEscaper.Replace(c.Style.AnimationOut) + "'",
		"ContainerClass": "'" + c.NavContainerClass() + "'",
		"IconPrev":       jsStringEscaper.Replace(c.Style.IconPrev),
		"IconNext":       jsStringEscaper.Replace(c.Style.IconNext),
	}
}

// RenderScript expands the init script template with vars.
func RenderScript(vars map[string]string) string {
	// Longer names go first so a name is never replaced by a prefix of itself.
	names := make([]string, 0, len(vars))
	for name := range vars {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if len(names[i]) != len(names[j]) {
			return len(names[i]) > len(names[j])
		}
		return names[i] < names[j]
	})

	pairs := make([]string, 0, len(names)*2)
	for _, name := range names {
		pairs = append(pairs, "$"+name, vars[name])
	}
	return strings.NewReplacer(pairs...).Replace(scriptTemplate)
}

// Script renders the init script for the carousel.
func (c *Carousel) Script() string { return RenderScript(c.ScriptVars()) }
