package carousel

import (
	"context"
	"database/sql"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/TheLab-ms/carousel/engine"
	"github.com/google/uuid"
)

//go:embed schema.sql
var migration string

var ErrNotFound = errors.New("carousel not found")

// Store persists carousels and their manual slides in sqlite.
type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	engine.MustMigrate(db, migration)
	return &Store{db: db}
}

// Create stores a new carousel and returns its public ID.
func (s *Store) Create(ctx context.Context, cfg AdminConfig) (string, error) {
	raw, err := encodeConfig(cfg)
	if err != nil {
		return "", err
	}

	uid := uuid.NewString()
	_, err = s.db.ExecContext(ctx, "INSERT INTO carousels (uid, config_json) VALUES ($1, $2)", uid, raw)
	if err != nil {
		return "", fmt.Errorf("inserting carousel: %w", err)
	}
	return uid, nil
}

// Delete removes a carousel along with its slides.
func (s *Store) Delete(ctx context.Context, uid string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM carousels WHERE uid = $1", uid)
	if err != nil {
		return err
	}
	return expectRow(res)
}

// LoadConfig returns the stored configuration of a carousel.
func (s *Store) LoadConfig(ctx context.Context, uid string) (AdminConfig, error) {
	_, cfg, err := s.loadConfig(ctx, uid)
	return cfg, err
}

func (s *Store) loadConfig(ctx context.Context, uid string) (int64, AdminConfig, error) {
	var id int64
	var raw string
	err := s.db.QueryRowContext(ctx, "SELECT id, config_json FROM carousels WHERE uid = $1", uid).Scan(&id, &raw)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, AdminConfig{}, ErrNotFound
	}
	if err != nil {
		return 0, AdminConfig{}, err
	}

	cfg, err := decodeConfig(raw)
	return id, cfg, err
}

// SaveConfig replaces the configuration of a carousel.
// The placement is always written in its enumerated form.
func (s *Store) SaveConfig(ctx context.Context, uid string, cfg AdminConfig) error {
	raw, err := encodeConfig(cfg)
	if err != nil {
		return err
	}

	res, err := s.db.ExecContext(ctx, "UPDATE carousels SET config_json = $1, updated = unixepoch() WHERE uid = $2", raw, uid)
	if err != nil {
		return err
	}
	return expectRow(res)
}

// AddSlide appends a manual slide to the carousel and returns its ID.
func (s *Store) AddSlide(ctx context.Context, uid string, slide Slide) (int64, error) {
	var page sql.NullInt64
	if slide.Link.Mode == LinkPage {
		page = sql.NullInt64{Int64: slide.Link.PageID, Valid: true}
	}

	var id int64
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO carousel_slides (carousel, sort, title, caption, image_url, image_alt, link_mode, link_url, link_page, link_disabled, new_tab, hide_title, hide_caption, disabled)
		SELECT id, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14 FROM carousels WHERE uid = $1
		RETURNING id`,
		uid, slide.Sort, slide.Title, slide.Caption, slide.Image.URL, slide.Image.Alt,
		string(slide.Link.Mode), slide.Link.URL, page, boolInt(slide.Link.Disabled), boolInt(slide.Link.NewTab),
		boolInt(slide.HideTitle), boolInt(slide.HideCaption), boolInt(slide.Disabled)).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, ErrNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("inserting slide: %w", err)
	}
	return id, nil
}

// SetSlideDisabled enables or disables a slide without removing it.
func (s *Store) SetSlideDisabled(ctx context.Context, slideID int64, disabled bool) error {
	res, err := s.db.ExecContext(ctx, "UPDATE carousel_slides SET disabled = $1 WHERE id = $2", boolInt(disabled), slideID)
	if err != nil {
		return err
	}
	return expectRow(res)
}

// Load returns the carousel with its configuration applied and all of its manual slides.
func (s *Store) Load(ctx context.Context, uid string) (*Carousel, error) {
	id, cfg, err := s.loadConfig(ctx, uid)
	if err != nil {
		return nil, err
	}

	c := NewCarousel()
	c.ID = id
	c.UID = uid
	if err := cfg.Apply(c); err != nil {
		return nil, fmt.Errorf("carousel %s: %w", uid, err)
	}

	c.Slides, err = s.slides(ctx, id)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (s *Store) slides(ctx context.Context, carouselID int64) ([]Slide, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, sort, title, caption, image_url, image_alt, link_mode, link_url, link_page, link_disabled, new_tab, hide_title, hide_caption, disabled
		FROM carousel_slides WHERE carousel = $1 ORDER BY sort, id`, carouselID)
	if err != nil {
		return nil, fmt.Errorf("querying slides: %w", err)
	}
	defer rows.Close()

	slides := []Slide{}
	for rows.Next() {
		slide := Slide{CarouselID: carouselID}
		var mode string
		var page sql.NullInt64
		err := rows.Scan(&slide.ID, &slide.Sort, &slide.Title, &slide.Caption, &slide.Image.URL, &slide.Image.Alt,
			&mode, &slide.Link.URL, &page, &slide.Link.Disabled, &slide.Link.NewTab,
			&slide.HideTitle, &slide.HideCaption, &slide.Disabled)
		if err != nil {
			return nil, fmt.Errorf("scanning slide: %w", err)
		}
		slide.Link.Mode = LinkMode(mode)
		slide.Link.PageID = page.Int64
		slides = append(slides, slide)
	}
	return slides, rows.Err()
}

func encodeConfig(cfg AdminConfig) (string, error) {
	placement, err := cfg.Placement()
	if err != nil {
		return "", err
	}
	cfg.ShowItems = string(placement)
	cfg.ItemsFirst = nil

	raw, err := json.Marshal(cfg)
	if err != nil {
		return "", fmt.Errorf("encoding config: %w", err)
	}
	return string(raw), nil
}

// decodeConfig reads stored JSON on top of the defaults so that missing keys keep
// their default values.
func decodeConfig(raw string) (AdminConfig, error) {
	cfg := DefaultAdminConfig()
	// Older rows only carry items_first, which must not be shadowed by the default.
	cfg.ShowItems = ""
	if err := json.Unmarshal([]byte(raw), &cfg); err != nil {
		return AdminConfig{}, fmt.Errorf("decoding config: %w", err)
	}
	return cfg, nil
}

func expectRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
