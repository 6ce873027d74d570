package carousel

import (
	"github.com/TheLab-ms/carousel/engine/config"
	"github.com/go-playground/validator/v10"
)

// AdminConfig is the editable configuration of a carousel, as submitted by the admin
// form and persisted as JSON. ItemsFirst is the older form of ShowItems and is only
// ever read from stored data.
type AdminConfig struct {
	Title     string `json:"title" config:"label=Title,required" validate:"required,max=255"`
	HideTitle bool   `json:"hide_title" config:"label=Hide title,default=true"`

	HeadingLevel     string `json:"heading_level" config:"label=Heading level,options=h1|h2|h3|h4|h5|h6,empty=(default),section=style" validate:"omitempty,oneof=h1 h2 h3 h4 h5 h6"`
	ButtonMargin     string `json:"button_margin" config:"label=Button margin,default=1,placeholder=Margin,section=style" validate:"omitempty,numeric"`
	ButtonMarginUnit string `json:"button_margin_unit" config:"label=Button margin unit,options=px|em|rem|pt|cm|in,default=rem,section=style" validate:"omitempty,oneof=px em rem pt cm in"`
	IconPrev         string `json:"icon_prev" config:"label=Previous icon,options=fa-chevron-left|fa-angle-left|fa-arrow-left|fa-caret-left,default=fa-chevron-left,section=style"`
	IconNext         string `json:"icon_next" config:"label=Next icon,options=fa-chevron-right|fa-angle-right|fa-arrow-right|fa-caret-right,default=fa-chevron-right,section=style"`
	RoundedButtons   bool   `json:"rounded_buttons" config:"label=Rounded buttons,section=style"`

	SlideInterval  int    `json:"slide_interval" config:"label=Slide interval (in milliseconds),default=5000,min=0,section=options" validate:"min=0"`
	ShowControls   bool   `json:"show_controls" config:"label=Show controls,default=true,section=options"`
	ShowIndicators bool   `json:"show_indicators" config:"label=Show indicators,default=true,section=options"`
	ShowIcons      bool   `json:"show_icons" config:"label=Show icons,default=true,section=options"`
	NumberOfSlides int    `json:"number_of_slides" config:"label=Number of slides,default=1,min=1,help=Determines the number of slides visible on screen at a time.,section=options" validate:"min=1"`
	AnimationIn    string `json:"animation_in" config:"label=Animation (in),options=fadeIn|slideInLeft|slideInRight|zoomIn,empty=(default),section=options"`
	AnimationOut   string `json:"animation_out" config:"label=Animation (out),options=fadeOut|slideOutLeft|slideOutRight|zoomOut,empty=(default),section=options"`
	ImageWidth     int    `json:"image_width" config:"label=Image width,min=0,section=options" validate:"min=0"`
	ImageHeight    int    `json:"image_height" config:"label=Image height,min=0,section=options" validate:"min=0"`
	ImageResize    string `json:"image_resize" config:"label=Image resize,options=scale-width|scale-height|crop-width|crop-height|fill|fit|pad,empty=None,section=options"`
	Loop           bool   `json:"loop" config:"label=Loop,default=true,section=options"`
	Center         bool   `json:"center" config:"label=Center,default=true,section=options"`
	AutoPlay       bool   `json:"auto_play" config:"label=Auto play,default=true,section=options"`
	AutoHeight     bool   `json:"auto_height" config:"label=Auto height,default=true,section=options"`
	Dots           bool   `json:"dots" config:"label=Dot navigation,default=true,section=options"`
	Nav            bool   `json:"nav" config:"label=Button navigation,default=true,section=options"`

	ListSource           bool   `json:"list_source" config:"label=Show items from pages,section=list"`
	ShowItems            string `json:"show_items" config:"label=Show items,options=before:Before slides|after:After slides,default=after,section=list" validate:"omitempty,oneof=before after"`
	ItemsFirst           *bool  `json:"items_first,omitempty" config:"-"`
	NumberOfItems        int    `json:"number_of_items" config:"label=Number of items,default=10,min=0,section=list" validate:"min=0"`
	SortItemsBy          string `json:"sort_items_by" config:"label=Sort items by,options=created:Newest first|title:Title|sort:Sort order,default=created,section=list" validate:"omitempty,oneof=created title sort"`
	ReverseItems         bool   `json:"reverse_items" config:"label=Reverse items,section=list"`
	ImageItems           bool   `json:"image_items" config:"label=Only items with images,default=true,section=list"`
	ListHideTitle        bool   `json:"list_hide_title" config:"label=Hide item titles,section=list"`
	ListHideCaption      bool   `json:"list_hide_caption" config:"label=Hide item captions,section=list"`
	ListLinkDisabled     bool   `json:"list_link_disabled" config:"label=Disable item links,section=list"`
	ListOpenLinkInNewTab bool   `json:"list_open_link_in_new_tab" config:"label=Open item links in a new tab,section=list"`
}

var adminSpec = config.MustParse(configSpec())

var validate = validator.New(validator.WithRequiredStructEnabled())

func configSpec() config.Spec {
	return config.Spec{
		Module:      "carousel",
		Title:       "Carousel",
		Description: "A component which shows a carousel of slides",
		Type:        AdminConfig{},
		Sections: []config.SectionDef{
			{Name: "style", Title: "Style"},
			{Name: "options", Title: "Options"},
			{Name: "list", Title: "List Source"},
		},
	}
}

// DefaultAdminConfig returns the configuration of a newly created carousel.
func DefaultAdminConfig() AdminConfig {
	cfg := AdminConfig{}
	config.ApplyDefaults(&cfg, adminSpec)
	return cfg
}

func (cfg *AdminConfig) Validate() error {
	if err := validate.Struct(cfg); err != nil {
		return err
	}
	_, err := cfg.Placement()
	return err
}

// Placement resolves whichever placement form the config carries.
func (cfg *AdminConfig) Placement() (Placement, error) {
	return NormalizePlacement(cfg.ShowItems, cfg.ItemsFirst)
}

// Apply copies the configuration onto c.
func (cfg *AdminConfig) Apply(c *Carousel) error {
	placement, err := cfg.Placement()
	if err != nil {
		return err
	}

	c.Title = cfg.Title
	c.HideTitle = cfg.HideTitle
	c.HeadingLevel = cfg.HeadingLevel
	c.SlideInterval = max(cfg.SlideInterval, 0)
	c.ShowControls = cfg.ShowControls
	c.ShowIndicators = cfg.ShowIndicators
	c.ShowIcons = cfg.ShowIcons
	c.Placement = placement

	c.Style = Style{
		ButtonMargin:     cfg.ButtonMargin,
		ButtonMarginUnit: cfg.ButtonMarginUnit,
		RoundedButtons:   cfg.RoundedButtons,
		IconPrev:         cfg.IconPrev,
		IconNext:         cfg.IconNext,
		AnimationIn:      cfg.AnimationIn,
		AnimationOut:     cfg.AnimationOut,
		ImageResize: ImageResize{
			Width:  cfg.ImageWidth,
			Height: cfg.ImageHeight,
			Method: cfg.ImageResize,
		},
	}
	c.Widget = Widget{
		Nav:            cfg.Nav,
		Dots:           cfg.Dots,
		Loop:           cfg.Loop,
		Center:         cfg.Center,
		AutoPlay:       cfg.AutoPlay,
		AutoHeight:     cfg.AutoHeight,
		NumberOfSlides: cfg.NumberOfSlides,
	}

	c.ListSource = nil
	if cfg.ListSource {
		c.ListSource = &ListSource{
			NumberOfItems:    cfg.NumberOfItems,
			SortItemsBy:      cfg.SortItemsBy,
			ReverseItems:     cfg.ReverseItems,
			ImageItems:       cfg.ImageItems,
			HideTitle:        cfg.ListHideTitle,
			HideCaption:      cfg.ListHideCaption,
			LinkDisabled:     cfg.ListLinkDisabled,
			OpenLinkInNewTab: cfg.ListOpenLinkInNewTab,
		}
	}
	return nil
}
