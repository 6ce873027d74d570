package carousel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePlacement(t *testing.T) {
	p, err := ParsePlacement("before")
	assert.NoError(t, err)
	assert.Equal(t, PlaceBefore, p)

	p, err = ParsePlacement("after")
	assert.NoError(t, err)
	assert.Equal(t, PlaceAfter, p)

	p, err = ParsePlacement("")
	assert.NoError(t, err)
	assert.Equal(t, DefaultPlacement, p)

	_, err = ParsePlacement("Before")
	assert.ErrorIs(t, err, ErrInvalidPlacement)
}

func TestNormalizePlacement(t *testing.T) {
	yes, no := true, false

	tests := []struct {
		name       string
		showItems  string
		itemsFirst *bool
		expect     Placement
		err        bool
	}{
		{name: "neither", expect: PlaceAfter},
		{name: "enum before", showItems: "before", expect: PlaceBefore},
		{name: "enum after", showItems: "after", expect: PlaceAfter},
		{name: "legacy first", itemsFirst: &yes, expect: PlaceBefore},
		{name: "legacy last", itemsFirst: &no, expect: PlaceAfter},
		{name: "enum wins over legacy", showItems: "after", itemsFirst: &yes, expect: PlaceAfter},
		{name: "invalid enum", showItems: "middle", err: true},
		{name: "invalid enum with legacy", showItems: "middle", itemsFirst: &yes, err: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NormalizePlacement(tt.showItems, tt.itemsFirst)
			if tt.err {
				assert.ErrorIs(t, err, ErrInvalidPlacement)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expect, p)
		})
	}
}
