package carousel

import (
	"net/url"
	"testing"

	"github.com/TheLab-ms/carousel/engine/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultAdminConfig(t *testing.T) {
	cfg := DefaultAdminConfig()
	assert.Equal(t, 5000, cfg.SlideInterval)
	assert.True(t, cfg.ShowControls)
	assert.True(t, cfg.ShowIndicators)
	assert.True(t, cfg.ShowIcons)
	assert.True(t, cfg.HideTitle)
	assert.Equal(t, "after", cfg.ShowItems)
	assert.Equal(t, DefaultNumberOfItems, cfg.NumberOfItems)
	assert.Equal(t, SortByCreated, cfg.SortItemsBy)
	assert.Nil(t, cfg.ItemsFirst)
}

func TestAdminConfigApplyDefaults(t *testing.T) {
	cfg := DefaultAdminConfig()
	cfg.Title = "Home"

	c := NewCarousel()
	require.NoError(t, cfg.Apply(c))

	expected := NewCarousel()
	expected.Title = "Home"
	assert.Equal(t, expected, c)
}

func TestAdminConfigApply(t *testing.T) {
	yes := true
	cfg := DefaultAdminConfig()
	cfg.Title = "Home"
	cfg.ShowItems = ""
	cfg.ItemsFirst = &yes
	cfg.ListSource = true
	cfg.NumberOfItems = 4
	cfg.ListOpenLinkInNewTab = true
	cfg.RoundedButtons = true
	cfg.ImageWidth = 800
	cfg.ImageResize = "fill"
	cfg.SlideInterval = -5

	c := NewCarousel()
	require.NoError(t, cfg.Apply(c))
	assert.Equal(t, PlaceBefore, c.Placement)
	assert.Equal(t, 0, c.SlideInterval)
	assert.True(t, c.Style.RoundedButtons)
	assert.Equal(t, ImageResize{Width: 800, Method: "fill"}, c.Style.ImageResize)
	require.NotNil(t, c.ListSource)
	assert.Equal(t, 4, c.ListSource.NumberOfItems)
	assert.True(t, c.ListSource.OpenLinkInNewTab)
	assert.True(t, c.ListSource.ImageItems)

	cfg.ShowItems = "sideways"
	assert.ErrorIs(t, cfg.Apply(c), ErrInvalidPlacement)
}

func TestAdminConfigValidate(t *testing.T) {
	valid := func() AdminConfig {
		cfg := DefaultAdminConfig()
		cfg.Title = "Home"
		return cfg
	}

	tests := []struct {
		name   string
		modify func(*AdminConfig)
		ok     bool
	}{
		{name: "defaults", modify: func(*AdminConfig) {}, ok: true},
		{name: "missing title", modify: func(c *AdminConfig) { c.Title = "" }},
		{name: "negative interval", modify: func(c *AdminConfig) { c.SlideInterval = -1 }},
		{name: "bad heading", modify: func(c *AdminConfig) { c.HeadingLevel = "h7" }},
		{name: "bad placement", modify: func(c *AdminConfig) { c.ShowItems = "sideways" }},
		{name: "bad margin", modify: func(c *AdminConfig) { c.ButtonMargin = "1em" }},
		{name: "zero slides", modify: func(c *AdminConfig) { c.NumberOfSlides = 0 }},
		{name: "legacy placement", modify: func(c *AdminConfig) {
			no := false
			c.ShowItems = ""
			c.ItemsFirst = &no
		}, ok: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.modify(&cfg)
			if tt.ok {
				assert.NoError(t, cfg.Validate())
			} else {
				assert.Error(t, cfg.Validate())
			}
		})
	}
}

func TestAdminSpec(t *testing.T) {
	require.Len(t, adminSpec.Sections, 4)
	assert.Equal(t, "", adminSpec.Sections[0].Name)
	assert.Equal(t, "Style", adminSpec.Sections[1].Title)
	assert.Equal(t, "Options", adminSpec.Sections[2].Title)
	assert.Equal(t, "List Source", adminSpec.Sections[3].Title)

	for _, f := range adminSpec.Fields() {
		assert.NotEqual(t, "items_first", f.JSONName, "the older placement form isn't editable")
		if f.JSONName == "show_items" {
			assert.Equal(t, config.FieldTypeSelect, f.Type)
			assert.Equal(t, []config.Option{{Value: "before", Label: "Before slides"}, {Value: "after", Label: "After slides"}}, f.Options)
		}
	}
}

func TestAdminConfigDecode(t *testing.T) {
	cfg := DefaultAdminConfig()
	err := config.Decode(url.Values{
		"title":          {"Home"},
		"show_items":     {"before"},
		"slide_interval": {"2500"},
		"show_controls":  {"on"},
		"list_source":    {"on"},
	}, adminSpec, &cfg)
	require.NoError(t, err)
	assert.Equal(t, "Home", cfg.Title)
	assert.Equal(t, "before", cfg.ShowItems)
	assert.Equal(t, 2500, cfg.SlideInterval)
	assert.True(t, cfg.ShowControls)
	assert.False(t, cfg.ShowIndicators, "unchecked boxes are false")
	assert.True(t, cfg.ListSource)
	assert.Equal(t, 1, cfg.NumberOfSlides, "empty numbers fall back to the default")

	err = config.Decode(url.Values{"title": {"Home"}, "show_items": {"sideways"}}, adminSpec, &cfg)
	assert.ErrorIs(t, err, config.ErrInvalid)

	err = config.Decode(url.Values{"title": {"Home"}, "heading_level": {"h2"}, "button_margin": {"wide"}}, adminSpec, &cfg)
	assert.ErrorIs(t, err, config.ErrInvalid, "validator errors are reported as invalid config")
}

func TestSlideForm(t *testing.T) {
	form := SlideForm{}
	err := config.Decode(url.Values{
		"title":     {"Hello"},
		"image_url": {"/a.jpg"},
		"link_mode": {"page"},
		"link_page": {"3"},
		"new_tab":   {"on"},
		"sort":      {"2"},
	}, slideSpec, &form)
	require.NoError(t, err)

	assert.Equal(t, Slide{
		Title: "Hello",
		Image: Image{URL: "/a.jpg"},
		Sort:  2,
		Link:  Link{Mode: LinkPage, PageID: 3, NewTab: true},
	}, form.Slide())

	form = SlideForm{}
	err = config.Decode(url.Values{"link_mode": {"url"}}, slideSpec, &form)
	assert.ErrorIs(t, err, config.ErrInvalid, "url links need a url")

	form = SlideForm{}
	err = config.Decode(url.Values{"link_mode": {"page"}}, slideSpec, &form)
	assert.ErrorIs(t, err, config.ErrInvalid, "page links need a page")
}
