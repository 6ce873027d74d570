package carousel

import (
	"context"
	"testing"

	"github.com/TheLab-ms/carousel/engine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	return NewStore(engine.OpenTestDB(t))
}

func createCarousel(t *testing.T, s *Store, title string) string {
	cfg := DefaultAdminConfig()
	cfg.Title = title
	uid, err := s.Create(context.Background(), cfg)
	require.NoError(t, err)
	return uid
}

func TestStoreCreateAndLoad(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	uid := createCarousel(t, s, "Home")
	assert.Len(t, uid, 36)

	c, err := s.Load(ctx, uid)
	require.NoError(t, err)
	assert.NotZero(t, c.ID)
	assert.Equal(t, uid, c.UID)
	assert.Equal(t, "Home", c.Title)
	assert.Equal(t, DefaultSlideInterval, c.SlideInterval)
	assert.Equal(t, PlaceAfter, c.Placement)
	assert.Empty(t, c.Slides)

	other := createCarousel(t, s, "Other")
	assert.NotEqual(t, uid, other)

	_, err = s.Load(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStoreSlides(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	uid := createCarousel(t, s, "Home")

	_, err := s.AddSlide(ctx, uid, Slide{Title: "second", Sort: 2})
	require.NoError(t, err)
	_, err = s.AddSlide(ctx, uid, Slide{
		Title:       "first",
		Caption:     "caption",
		Sort:        1,
		Image:       Image{URL: "/a.jpg", Alt: "alt"},
		Link:        Link{Mode: LinkPage, PageID: 42, NewTab: true},
		HideCaption: true,
	})
	require.NoError(t, err)
	offID, err := s.AddSlide(ctx, uid, Slide{Title: "off", Sort: 3, Disabled: true})
	require.NoError(t, err)

	// Slides of other carousels stay separate
	other := createCarousel(t, s, "Other")
	_, err = s.AddSlide(ctx, other, Slide{Title: "elsewhere"})
	require.NoError(t, err)

	c, err := s.Load(ctx, uid)
	require.NoError(t, err)
	assert.Equal(t, []string{"first", "second", "off"}, slideTitles(c.Slides))

	first := c.Slides[0]
	assert.Equal(t, c.ID, first.CarouselID)
	assert.Equal(t, Image{URL: "/a.jpg", Alt: "alt"}, first.Image)
	assert.Equal(t, Link{Mode: LinkPage, PageID: 42, NewTab: true}, first.Link)
	assert.True(t, first.HideCaption)
	assert.False(t, first.HideTitle)
	assert.True(t, c.Slides[2].Disabled)

	slides, err := c.EnabledSlides(nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"first", "second"}, slideTitles(slides))

	require.NoError(t, s.SetSlideDisabled(ctx, offID, false))
	c, err = s.Load(ctx, uid)
	require.NoError(t, err)
	slides, err = c.EnabledSlides(nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"first", "second", "off"}, slideTitles(slides))

	_, err = s.AddSlide(ctx, "missing", Slide{Title: "x"})
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, s.SetSlideDisabled(ctx, 9999, true), ErrNotFound)
}

func TestStoreSaveConfig(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	uid := createCarousel(t, s, "Home")

	yes := true
	cfg, err := s.LoadConfig(ctx, uid)
	require.NoError(t, err)
	cfg.Title = "Renamed"
	cfg.ShowItems = ""
	cfg.ItemsFirst = &yes
	cfg.SlideInterval = 1200
	require.NoError(t, s.SaveConfig(ctx, uid, cfg))

	cfg, err = s.LoadConfig(ctx, uid)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", cfg.Title)
	assert.Equal(t, "before", cfg.ShowItems, "placement is stored in its enumerated form")
	assert.Nil(t, cfg.ItemsFirst)
	assert.Equal(t, 1200, cfg.SlideInterval)

	var raw string
	require.NoError(t, s.db.QueryRow("SELECT config_json FROM carousels WHERE uid = $1", uid).Scan(&raw))
	assert.NotContains(t, raw, "items_first")

	cfg.ShowItems = "sideways"
	assert.ErrorIs(t, s.SaveConfig(ctx, uid, cfg), ErrInvalidPlacement)
	cfg.ShowItems = "after"
	assert.ErrorIs(t, s.SaveConfig(ctx, "missing", cfg), ErrNotFound)
}

func TestStoreLegacyConfig(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	tests := []struct {
		name   string
		raw    string
		expect Placement
		err    error
	}{
		{name: "items first", raw: `{"title":"Old","items_first":true}`, expect: PlaceBefore},
		{name: "items last", raw: `{"title":"Old","items_first":false}`, expect: PlaceAfter},
		{name: "no placement", raw: `{"title":"Old"}`, expect: PlaceAfter},
		{name: "both", raw: `{"title":"Old","show_items":"after","items_first":true}`, expect: PlaceAfter},
		{name: "invalid", raw: `{"title":"Old","show_items":"sideways"}`, err: ErrInvalidPlacement},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uid := "legacy-" + tt.name
			_, err := s.db.Exec("INSERT INTO carousels (uid, config_json) VALUES ($1, $2)", uid, tt.raw)
			require.NoError(t, err)

			c, err := s.Load(ctx, uid)
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expect, c.Placement)
			assert.Equal(t, "Old", c.Title)
			assert.Equal(t, DefaultSlideInterval, c.SlideInterval, "missing keys keep their defaults")
			assert.True(t, c.ShowControls)
		})
	}
}

func TestStoreDelete(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	uid := createCarousel(t, s, "Home")
	_, err := s.AddSlide(ctx, uid, Slide{Title: "x"})
	require.NoError(t, err)

	require.NoError(t, s.Delete(ctx, uid))
	assert.ErrorIs(t, s.Delete(ctx, uid), ErrNotFound)

	var count int
	require.NoError(t, s.db.QueryRow("SELECT COUNT(*) FROM carousel_slides").Scan(&count))
	assert.Zero(t, count, "slides are removed with their carousel")
}
