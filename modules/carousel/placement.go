package carousel

import (
	"errors"
	"fmt"
)

// Placement controls whether list source slides are shown before or after the manual slides.
type Placement string

const (
	PlaceBefore Placement = "before"
	PlaceAfter  Placement = "after"

	DefaultPlacement = PlaceAfter
)

var ErrInvalidPlacement = errors.New("invalid list source placement")

// ParsePlacement accepts "before" or "after". The empty string means the default.
func ParsePlacement(s string) (Placement, error) {
	switch Placement(s) {
	case PlaceBefore, PlaceAfter:
		return Placement(s), nil
	case "":
		return DefaultPlacement, nil
	default:
		return "", fmt.Errorf("%w: %q (expected %q or %q)", ErrInvalidPlacement, s, PlaceBefore, PlaceAfter)
	}
}

// NormalizePlacement reconciles the two stored forms of the placement setting:
// the enumerated "show items" field and the older "items first" toggle.
// The enumerated field wins when both are present.
func NormalizePlacement(showItems string, itemsFirst *bool) (Placement, error) {
	if showItems != "" || itemsFirst == nil {
		return ParsePlacement(showItems)
	}
	if *itemsFirst {
		return PlaceBefore, nil
	}
	return PlaceAfter, nil
}
