package carousel

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Translator looks up user-facing strings. fallback is returned for unknown keys.
type Translator interface {
	T(key, fallback string) string
}

const (
	KeyPreviousText = "CarouselComponent.PREVIOUSTEXT"
	KeyNextText     = "CarouselComponent.NEXTTEXT"
)

// Messages holds the translations shipped with the component.
var Messages = map[language.Tag]map[string]string{
	language.English: {
		KeyPreviousText: "Previous",
		KeyNextText:     "Next",
	},
	language.German: {
		KeyPreviousText: "Zurück",
		KeyNextText:     "Weiter",
	},
	language.French: {
		KeyPreviousText: "Précédent",
		KeyNextText:     "Suivant",
	},
}

// Catalog is a Translator backed by an x/text message catalog.
type Catalog struct {
	printer *message.Printer
}

// NewCatalog builds a Translator for the given language from msgs.
func NewCatalog(tag language.Tag, msgs map[language.Tag]map[string]string) (*Catalog, error) {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for lang, strs := range msgs {
		for key, msg := range strs {
			if err := b.SetString(lang, key, msg); err != nil {
				return nil, err
			}
		}
	}
	return &Catalog{printer: message.NewPrinter(tag, message.Catalog(b))}, nil
}

// MustCatalog is NewCatalog for the built-in messages, parsing the language from a BCP 47 string.
// Unknown languages fall back to English.
func MustCatalog(lang string) *Catalog {
	tag, err := language.Parse(lang)
	if err != nil {
		tag = language.English
	}
	c, err := NewCatalog(tag, Messages)
	if err != nil {
		panic(err)
	}
	return c
}

func (c *Catalog) T(key, fallback string) string {
	// The printer echoes keys it can't find.
	if s := c.printer.Sprintf(key); s != key {
		return s
	}
	return fallback
}

type fallbackTranslator struct{}

func (fallbackTranslator) T(_, fallback string) string { return fallback }
