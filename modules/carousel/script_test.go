package carousel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScriptVars(t *testing.T) {
	c := NewCarousel()
	c.ID = 3

	assert.Equal(t, map[string]string{
		"CarouselID":     "CarouselComponent_3_Carousel",
		"NumberOfSlides": "1",
		"Nav":            "true",
		"Dots":           "true",
		"Loop":           "true",
		"Center":         "true",
		"AutoPlay":       "true",
		"AutoHeight":     "true",
		"AnimateIn":      "''",
		"AnimateOut":     "''",
		"ContainerClass": "'owl-nav'",
		"IconPrev":       "fa-chevron-left",
		"IconNext":       "fa-chevron-right",
	}, c.ScriptVars())

	c.Widget.Loop = false
	c.Widget.NumberOfSlides = 3
	c.Style.RoundedButtons = true
	c.Style.AnimationIn = "fadeIn"
	c.Style.AnimationOut = `it's"`
	vars := c.ScriptVars()
	assert.Equal(t, "false", vars["Loop"])
	assert.Equal(t, "3", vars["NumberOfSlides"])
	assert.Equal(t, "'owl-nav rounded'", vars["ContainerClass"])
	assert.Equal(t, "'fadeIn'", vars["AnimateIn"])
	assert.Equal(t, `'it\'s\"'`, vars["AnimateOut"])
}

func TestScriptVarsDeterministic(t *testing.T) {
	c := NewCarousel()
	assert.Equal(t, c.Script(), c.Script())
}

func TestScript(t *testing.T) {
	c := NewCarousel()
	c.ID = 3
	c.Widget.Dots = false
	c.Style.AnimationIn = "zoomIn"

	script := c.Script()
	for _, expect := range []string{
		"var owl = $('#CarouselComponent_3_Carousel').owlCarousel({",
		"nav: true,",
		"dots: false,",
		"items: 1,",
		"autoplay: true,",
		"autoHeight: true,",
		"animateIn: 'zoomIn',",
		"animateOut: '',",
		"navContainerClass: 'owl-nav',",
		`'<i class="fa fa-chevron-left"></i>',`,
		`'<i class="fa fa-chevron-right"></i>'`,
		"owl.on('resized.owl.carousel', function() {",
		"var $this = $(this);",
	} {
		assert.Contains(t, script, expect)
	}

	for name := range c.ScriptVars() {
		assert.NotContains(t, script, "$"+name)
	}
}

func TestRenderScriptEscapesIcons(t *testing.T) {
	c := NewCarousel()
	c.Style.IconPrev = `x"></i><script>`
	script := c.Script()
	assert.NotContains(t, script, "<script>")
	assert.Contains(t, script, `x\"\u003e\u003c/i\u003e\u003cscript\u003e`)
}
