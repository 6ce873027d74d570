package carousel

// LinkMode identifies what a slide links to.
type LinkMode string

const (
	LinkNone LinkMode = ""
	LinkURL  LinkMode = "url"
	LinkPage LinkMode = "page"
)

// Link is the target of a slide. Page links carry the page ID and have their URL
// filled in by a PageLinker before rendering.
type Link struct {
	Mode     LinkMode `json:"mode,omitempty"`
	URL      string   `json:"url,omitempty"`
	PageID   int64    `json:"pageID,omitempty"`
	Disabled bool     `json:"disabled,omitempty"`
	NewTab   bool     `json:"newTab,omitempty"`
}

// Href returns the URL to link to, or "" when the slide shouldn't be a link.
func (l Link) Href() string {
	if l.Disabled || l.Mode == LinkNone {
		return ""
	}
	return l.URL
}

// Image is a reference to an asset managed elsewhere.
type Image struct {
	URL string `json:"url,omitempty"`
	Alt string `json:"alt,omitempty"`
}

// HasImage is implemented by anything that may carry an image.
type HasImage interface {
	SlideImage() (Image, bool)
}

// HasLinkTarget is implemented by anything that may link somewhere.
type HasLinkTarget interface {
	LinkTarget() (Link, bool)
}

// Slide is a single panel of a carousel. Manual slides are stored with their carousel,
// list source slides are built on every resolution and never stored.
type Slide struct {
	ID          int64  `json:"id,omitempty"`
	CarouselID  int64  `json:"carouselID"`
	Title       string `json:"title,omitempty"`
	Caption     string `json:"caption,omitempty"`
	Image       Image  `json:"image"`
	Link        Link   `json:"link"`
	HideTitle   bool   `json:"hideTitle,omitempty"`
	HideCaption bool   `json:"hideCaption,omitempty"`
	Disabled    bool   `json:"disabled,omitempty"`
	Sort        int    `json:"sort"`
	Derived     bool   `json:"derived,omitempty"`
}

var (
	_ HasImage      = Slide{}
	_ HasLinkTarget = Slide{}
)

func (s Slide) SlideImage() (Image, bool) { return s.Image, s.Image.URL != "" }

func (s Slide) LinkTarget() (Link, bool) { return s.Link, s.Link.Href() != "" }

func (s Slide) Enabled() bool { return !s.Disabled }

func (s Slide) TitleShown() bool { return s.Title != "" && !s.HideTitle }

func (s Slide) CaptionShown() bool { return s.Caption != "" && !s.HideCaption }
