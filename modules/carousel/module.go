package carousel

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/TheLab-ms/carousel/engine"
	"github.com/TheLab-ms/carousel/engine/config"
)

// PageLinker resolves the URL of a page referenced by a slide link.
type PageLinker interface {
	PageURL(ctx context.Context, id int64) (string, error)
}

// Content is the site content a carousel can draw from.
type Content interface {
	ProvidesListItems
	PageLinker
}

type Module struct {
	store   *Store
	content Content

	Styles     Styles
	Hooks      *Hooks
	Translator Translator
}

// New creates the module. content may be nil, in which case list sources
// produce no slides and page links are left empty.
func New(db *sql.DB, content Content, tr Translator) *Module {
	return &Module{
		store:      NewStore(db),
		content:    content,
		Styles:     Bootstrap,
		Hooks:      NewHooks(),
		Translator: tr,
	}
}

func (m *Module) Store() *Store { return m.store }

func (m *Module) ConfigSpec() config.Spec { return configSpec() }

func (m *Module) AttachRoutes(router *engine.Router) {
	router.HandleFunc("GET /carousels/{uid}", m.renderCarousel)
	router.HandleFunc("GET /carousels/{uid}/init.js", m.renderScript)
	router.HandleFunc("GET /carousels/{uid}/view.json", m.renderViewJSON)
	router.HandleFunc("POST /admin/carousels", m.handleCreate)
	router.HandleFunc("GET /admin/carousels/{uid}/fields", m.renderFields)
	router.HandleFunc("POST /admin/carousels/{uid}", m.handleSaveConfig)
	router.HandleFunc("DELETE /admin/carousels/{uid}", m.handleDelete)
	router.HandleFunc("POST /admin/carousels/{uid}/slides", m.handleAddSlide)
}

// View loads a carousel and builds its presentation model.
func (m *Module) View(ctx context.Context, uid string) (*Carousel, View, error) {
	c, err := m.store.Load(ctx, uid)
	if err != nil {
		return nil, View{}, err
	}
	m.resolvePageLinks(ctx, c)

	slides, err := c.Resolve(ctx, m.content)
	if err != nil {
		return nil, View{}, err
	}

	return c, BuildView(c, slides, ViewOptions{Styles: m.Styles, Hooks: m.Hooks, Translator: m.Translator}), nil
}

func (m *Module) resolvePageLinks(ctx context.Context, c *Carousel) {
	for i, s := range c.Slides {
		if s.Link.Mode != LinkPage || s.Link.Disabled {
			continue
		}
		if m.content == nil {
			slog.Warn("slide links to a page but no page source is configured", "carousel", c.UID, "slide", s.ID)
			continue
		}
		url, err := m.content.PageURL(ctx, s.Link.PageID)
		if err != nil {
			slog.Warn("unable to resolve slide page link", "carousel", c.UID, "slide", s.ID, "page", s.Link.PageID, "error", err)
			continue
		}
		c.Slides[i].Link.URL = url
	}
}

func (m *Module) loadView(w http.ResponseWriter, r *http.Request) (*Carousel, View, bool) {
	uid := r.PathValue("uid")
	c, v, err := m.View(r.Context(), uid)
	if errors.Is(err, ErrNotFound) {
		engine.ClientError(w, "Not Found", "Carousel not found", 404)
		return nil, View{}, false
	}
	if err != nil {
		engine.SystemError(w, "unable to build carousel view", "carousel", uid, "error", err)
		return nil, View{}, false
	}
	return c, v, true
}

func (m *Module) renderCarousel(w http.ResponseWriter, r *http.Request) {
	c, v, ok := m.loadView(w, r)
	if !ok {
		return
	}
	if v.Disabled {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	w.Header().Set("Content-Type", "text/html")
	if err := Render(v).Render(r.Context(), w); err != nil {
		slog.Error("rendering carousel", "carousel", c.UID, "error", err)
		return
	}
	if err := RenderScriptTag(c).Render(r.Context(), w); err != nil {
		slog.Error("rendering carousel script", "carousel", c.UID, "error", err)
	}
}

func (m *Module) renderScript(w http.ResponseWriter, r *http.Request) {
	c, err := m.store.Load(r.Context(), r.PathValue("uid"))
	if errors.Is(err, ErrNotFound) {
		engine.ClientError(w, "Not Found", "Carousel not found", 404)
		return
	}
	if engine.HandleError(w, err) {
		return
	}

	w.Header().Set("Content-Type", "text/javascript")
	w.Write([]byte(c.Script()))
}

func (m *Module) renderViewJSON(w http.ResponseWriter, r *http.Request) {
	c, v, ok := m.loadView(w, r)
	if !ok {
		return
	}
	engine.WriteJSON(w, struct {
		View       View              `json:"view"`
		ScriptVars map[string]string `json:"scriptVars"`
	}{View: v, ScriptVars: c.ScriptVars()})
}

func (m *Module) renderFields(w http.ResponseWriter, r *http.Request) {
	cfg, err := m.store.LoadConfig(r.Context(), r.PathValue("uid"))
	if errors.Is(err, ErrNotFound) {
		engine.ClientError(w, "Not Found", "Carousel not found", 404)
		return
	}
	if engine.HandleError(w, err) {
		return
	}

	// Show the placement in its current form even for older rows.
	if placement, err := cfg.Placement(); err == nil {
		cfg.ShowItems = string(placement)
	}

	engine.WriteJSON(w, struct {
		Module   string            `json:"module"`
		Title    string            `json:"title"`
		Sections []config.Section  `json:"sections"`
		Values   map[string]string `json:"values"`
	}{
		Module:   adminSpec.Module,
		Title:    adminSpec.Title,
		Sections: adminSpec.Sections,
		Values:   config.Values(&cfg, adminSpec),
	})
}

func (m *Module) handleCreate(w http.ResponseWriter, r *http.Request) {
	cfg := DefaultAdminConfig()
	if !decodeForm(w, r, adminSpec, &cfg) {
		return
	}

	uid, err := m.store.Create(r.Context(), cfg)
	if engine.HandleError(w, err) {
		return
	}
	slog.Info("created carousel", "carousel", uid)
	http.Redirect(w, r, "/admin/carousels/"+uid+"/fields", http.StatusSeeOther)
}

func (m *Module) handleSaveConfig(w http.ResponseWriter, r *http.Request) {
	uid := r.PathValue("uid")
	cfg, err := m.store.LoadConfig(r.Context(), uid)
	if errors.Is(err, ErrNotFound) {
		engine.ClientError(w, "Not Found", "Carousel not found", 404)
		return
	}
	if engine.HandleError(w, err) {
		return
	}

	// Saved configs only carry the enumerated placement.
	if placement, err := cfg.Placement(); err == nil {
		cfg.ShowItems = string(placement)
	}
	cfg.ItemsFirst = nil
	if !decodeForm(w, r, adminSpec, &cfg) {
		return
	}

	if engine.HandleError(w, m.store.SaveConfig(r.Context(), uid, cfg)) {
		return
	}
	http.Redirect(w, r, "/admin/carousels/"+uid+"/fields", http.StatusSeeOther)
}

func (m *Module) handleDelete(w http.ResponseWriter, r *http.Request) {
	err := m.store.Delete(r.Context(), r.PathValue("uid"))
	if errors.Is(err, ErrNotFound) {
		engine.ClientError(w, "Not Found", "Carousel not found", 404)
		return
	}
	if engine.HandleError(w, err) {
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (m *Module) handleAddSlide(w http.ResponseWriter, r *http.Request) {
	form := SlideForm{}
	if !decodeForm(w, r, slideSpec, &form) {
		return
	}

	uid := r.PathValue("uid")
	id, err := m.store.AddSlide(r.Context(), uid, form.Slide())
	if errors.Is(err, ErrNotFound) {
		engine.ClientError(w, "Not Found", "Carousel not found", 404)
		return
	}
	if engine.HandleError(w, err) {
		return
	}

	w.Header().Set("Location", "/carousels/"+uid+"/view.json")
	w.WriteHeader(http.StatusCreated)
	w.Write([]byte(strconv.FormatInt(id, 10)))
}

func decodeForm(w http.ResponseWriter, r *http.Request, spec *config.ParsedSpec, dst any) bool {
	if err := r.ParseForm(); err != nil {
		engine.ClientError(w, "Invalid Form", err.Error(), 400)
		return false
	}
	err := config.Decode(r.PostForm, spec, dst)
	if errors.Is(err, config.ErrInvalid) {
		engine.ClientError(w, "Invalid Configuration", err.Error(), 400)
		return false
	}
	return !engine.HandleError(w, err)
}
