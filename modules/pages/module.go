// Package pages stores simple site pages and serves them as carousel content.
package pages

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/TheLab-ms/carousel/engine"
	"github.com/TheLab-ms/carousel/modules/carousel"
)

//go:embed schema.sql
var migration string

var ErrNotFound = errors.New("page not found")

// Page is a piece of site content.
type Page struct {
	ID           int64
	Created      time.Time
	Path         string
	Title        string
	MetaTitle    string
	Summary      string
	Body         string // markdown
	ImageURL     string
	ImageCaption string
	Sort         int
}

// DisplayTitle prefers the meta title.
func (p *Page) DisplayTitle() string {
	if p.MetaTitle != "" {
		return p.MetaTitle
	}
	return p.Title
}

// MetaSummary is the explicit summary, or one derived from the body.
func (p *Page) MetaSummary() string {
	if p.Summary != "" {
		return p.Summary
	}
	return Summarize(p.Body)
}

type Module struct {
	db   *sql.DB
	self *url.URL
}

var _ carousel.Content = (*Module)(nil)

func New(db *sql.DB, self *url.URL) *Module {
	engine.MustMigrate(db, migration)
	return &Module{db: db, self: self}
}

func (m *Module) AttachRoutes(router *engine.Router) {
	router.HandleFunc("GET /p/{path...}", m.renderPage)
}

// Create stores a page and returns its ID.
func (m *Module) Create(ctx context.Context, p *Page) (int64, error) {
	path := cleanPath(p.Path)
	if path == "" {
		return 0, errors.New("page path is required")
	}

	var id int64
	err := m.db.QueryRowContext(ctx, `
		INSERT INTO pages (path, title, meta_title, summary, body, image_url, image_caption, sort)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`,
		path, p.Title, p.MetaTitle, p.Summary, p.Body, p.ImageURL, p.ImageCaption, p.Sort).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("inserting page: %w", err)
	}
	return id, nil
}

const pageColumns = "id, created, path, title, meta_title, summary, body, image_url, image_caption, sort"

// Get returns the page at path.
func (m *Module) Get(ctx context.Context, path string) (*Page, error) {
	row := m.db.QueryRowContext(ctx, "SELECT "+pageColumns+" FROM pages WHERE path = $1", cleanPath(path))
	p, err := scanPage(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	return p, err
}

var orderings = map[string][2]string{
	carousel.SortByCreated: {"created DESC, id DESC", "created ASC, id ASC"},
	carousel.SortByTitle:   {"title ASC, id ASC", "title DESC, id DESC"},
	carousel.SortBySort:    {"sort ASC, id ASC", "sort DESC, id DESC"},
}

// ListItems returns the pages selected by src as carousel content.
func (m *Module) ListItems(ctx context.Context, src carousel.ListSource) ([]carousel.ContentItem, error) {
	order, ok := orderings[src.SortItemsBy]
	if !ok {
		order = orderings[carousel.SortByCreated]
	}
	orderBy := order[0]
	if src.ReverseItems {
		orderBy = order[1]
	}

	where := ""
	if src.ImageItems {
		where = "WHERE image_url != ''"
	}

	limit := src.NumberOfItems
	if limit <= 0 {
		limit = -1
	}

	rows, err := m.db.QueryContext(ctx, "SELECT "+pageColumns+" FROM pages "+where+" ORDER BY "+orderBy+" LIMIT $1", limit)
	if err != nil {
		return nil, fmt.Errorf("querying pages: %w", err)
	}
	defer rows.Close()

	items := []carousel.ContentItem{}
	for rows.Next() {
		p, err := scanPage(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, carousel.ContentItem{
			Title:        p.DisplayTitle(),
			Summary:      p.MetaSummary(),
			ImageURL:     p.ImageURL,
			ImageCaption: p.ImageCaption,
			Link:         m.link(p.Path),
		})
	}
	return items, rows.Err()
}

// PageURL returns the absolute URL of the page with the given ID.
func (m *Module) PageURL(ctx context.Context, id int64) (string, error) {
	var path string
	err := m.db.QueryRowContext(ctx, "SELECT path FROM pages WHERE id = $1", id).Scan(&path)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return m.link(path), nil
}

func (m *Module) link(path string) string {
	return m.self.JoinPath("p", path).String()
}

func (m *Module) renderPage(w http.ResponseWriter, r *http.Request) {
	p, err := m.Get(r.Context(), r.PathValue("path"))
	if errors.Is(err, ErrNotFound) {
		engine.ClientError(w, "Not Found", "Page not found", 404)
		return
	}
	if engine.HandleError(w, err) {
		return
	}

	w.Header().Set("Content-Type", "text/html")
	renderPage(p).Render(r.Context(), w)
}

type scanner interface {
	Scan(dest ...any) error
}

func scanPage(row scanner) (*Page, error) {
	p := &Page{}
	var created engine.UnixTime
	err := row.Scan(&p.ID, &created, &p.Path, &p.Title, &p.MetaTitle, &p.Summary, &p.Body, &p.ImageURL, &p.ImageCaption, &p.Sort)
	if err != nil {
		return nil, err
	}
	p.Created = created.Time
	return p, nil
}

func cleanPath(path string) string { return strings.Trim(path, "/") }
