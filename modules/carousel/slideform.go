package carousel

import "github.com/TheLab-ms/carousel/engine/config"

// SlideForm is the admin form for a manual slide.
type SlideForm struct {
	Title       string `json:"title" config:"label=Title"`
	Caption     string `json:"caption" config:"label=Caption,multiline,rows=3"`
	ImageURL    string `json:"image_url" config:"label=Image URL,section=image"`
	ImageAlt    string `json:"image_alt" config:"label=Alternative text,section=image"`
	LinkMode    string `json:"link_mode" config:"label=Link,options=url:URL|page:Page,empty=None,section=link"`
	LinkURL     string `json:"link_url" config:"label=Link URL,placeholder=https://,section=link" validate:"required_if=LinkMode url"`
	LinkPage    int    `json:"link_page" config:"label=Linked page,min=0,section=link" validate:"required_if=LinkMode page"`
	NewTab      bool   `json:"new_tab" config:"label=Open link in a new tab,section=link"`
	HideTitle   bool   `json:"hide_title" config:"label=Hide title"`
	HideCaption bool   `json:"hide_caption" config:"label=Hide caption"`
	Disabled    bool   `json:"disabled" config:"label=Disabled"`
	Sort        int    `json:"sort" config:"label=Sort order,min=0"`
}

var slideSpec = config.MustParse(config.Spec{
	Module: "carousel-slide",
	Title:  "Slide",
	Type:   SlideForm{},
	Sections: []config.SectionDef{
		{Name: "image", Title: "Image"},
		{Name: "link", Title: "Link"},
	},
})

func (f *SlideForm) Validate() error { return validate.Struct(f) }

// Slide converts the submitted form into a manual slide.
func (f *SlideForm) Slide() Slide {
	return Slide{
		Title:       f.Title,
		Caption:     f.Caption,
		Image:       Image{URL: f.ImageURL, Alt: f.ImageAlt},
		HideTitle:   f.HideTitle,
		HideCaption: f.HideCaption,
		Disabled:    f.Disabled,
		Sort:        f.Sort,
		Link: Link{
			Mode:   LinkMode(f.LinkMode),
			URL:    f.LinkURL,
			PageID: int64(f.LinkPage),
			NewTab: f.NewTab,
		},
	}
}
