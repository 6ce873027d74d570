package carousel

import "context"

// ContentItem is a page, article, or anything else that can be shown as a slide.
type ContentItem struct {
	Title        string `json:"title"`
	Summary      string `json:"summary,omitempty"`
	ImageURL     string `json:"imageURL,omitempty"`
	ImageCaption string `json:"imageCaption,omitempty"`
	Link         string `json:"link"` // absolute
}

// SortItemsBy values understood by item providers.
const (
	SortByCreated = "created"
	SortByTitle   = "title"
	SortBySort    = "sort"
)

// ListSource describes which content items become slides and how those slides look.
// The selection fields are applied by the ProvidesListItems implementation,
// the presentation flags are copied onto every derived slide.
type ListSource struct {
	NumberOfItems int    `json:"numberOfItems"`
	SortItemsBy   string `json:"sortItemsBy"`
	ReverseItems  bool   `json:"reverseItems"`
	ImageItems    bool   `json:"imageItems"`

	HideTitle        bool `json:"hideTitle"`
	HideCaption      bool `json:"hideCaption"`
	LinkDisabled     bool `json:"linkDisabled"`
	OpenLinkInNewTab bool `json:"openLinkInNewTab"`
}

// ProvidesListItems returns the content items selected by a list source, in display order.
type ProvidesListItems interface {
	ListItems(ctx context.Context, src ListSource) ([]ContentItem, error)
}

// Slides converts items into slides owned by the given carousel.
// Items without an image are skipped.
func (ls ListSource) Slides(carouselID int64, items []ContentItem) []Slide {
	slides := make([]Slide, 0, len(items))
	for _, item := range items {
		if slide, ok := ls.slide(carouselID, item); ok {
			slide.Sort = len(slides)
			slides = append(slides, slide)
		}
	}
	return slides
}

func (ls ListSource) slide(carouselID int64, item ContentItem) (Slide, bool) {
	if item.ImageURL == "" {
		return Slide{}, false
	}

	caption := item.ImageCaption
	if caption == "" {
		caption = item.Summary
	}

	return Slide{
		CarouselID:  carouselID,
		Title:       item.Title,
		Caption:     caption,
		Image:       Image{URL: item.ImageURL, Alt: item.Title},
		HideTitle:   ls.HideTitle,
		HideCaption: ls.HideCaption,
		Derived:     true,
		Link: Link{
			Mode:     LinkURL,
			URL:      item.Link,
			Disabled: ls.LinkDisabled,
			NewTab:   ls.OpenLinkInNewTab,
		},
	}, true
}
