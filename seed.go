package main

import (
	"context"
	"errors"
	"log/slog"

	"github.com/TheLab-ms/carousel/modules/carousel"
	"github.com/TheLab-ms/carousel/modules/pages"
)

var demoPages = []*pages.Page{
	{
		Path:         "welcome",
		Title:        "Welcome",
		Body:         "Come and see what we're building.\n\nOpen every Tuesday evening.",
		ImageURL:     "/static/img/welcome.jpg",
		ImageCaption: "The front room",
		Sort:         1,
	},
	{
		Path:     "events/open-house",
		Title:    "Open House",
		Body:     "Tours, demos, and snacks for the whole neighborhood. Bring a friend!",
		ImageURL: "/static/img/open-house.jpg",
		Sort:     2,
	},
	{
		Path:  "about",
		Title: "About",
		Body:  "A page without an image never becomes a slide.",
		Sort:  3,
	},
}

// seed populates an empty database with demo content.
// It does nothing once the welcome page exists.
func seed(ctx context.Context, p *pages.Module, store *carousel.Store) error {
	_, err := p.Get(ctx, "welcome")
	if err == nil {
		return nil
	}
	if !errors.Is(err, pages.ErrNotFound) {
		return err
	}

	ids := map[string]int64{}
	for _, page := range demoPages {
		id, err := p.Create(ctx, page)
		if err != nil {
			return err
		}
		ids[page.Path] = id
	}

	cfg := carousel.DefaultAdminConfig()
	cfg.Title = "Home"
	cfg.ListSource = true
	cfg.ShowItems = string(carousel.PlaceBefore)
	cfg.SortItemsBy = carousel.SortBySort
	cfg.NumberOfItems = 3
	uid, err := store.Create(ctx, cfg)
	if err != nil {
		return err
	}

	_, err = store.AddSlide(ctx, uid, carousel.Slide{
		Title:   "Visit us",
		Caption: "Find out when we're open",
		Image:   carousel.Image{URL: "/static/img/visit.jpg", Alt: "Our front door"},
		Link:    carousel.Link{Mode: carousel.LinkPage, PageID: ids["welcome"]},
	})
	if err != nil {
		return err
	}

	slog.Info("seeded demo content", "carousel", uid)
	return nil
}
