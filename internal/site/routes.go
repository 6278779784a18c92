// Package site serves the notes site: the home page, the note view, the
// language switch and the sidebar as JSON.
package site

import (
	"fmt"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/imnaval/webnotes/internal/markdown"
	"github.com/imnaval/webnotes/internal/sidebar"
)

// Fallback fragments shown when content cannot be loaded.
const (
	homeErrorHTML   = `<p>Error loading home content.</p>`
	noteErrorHTML   = `<p>Error loading content.</p>`
	notFoundHTML    = `<p>Topic not found.</p>`
	selectTopicHTML = `<p>Select a topic to view notes.</p>`
)

// Options configures a Site.
type Options struct {
	HomeFile  string
	SiteTitle string
	Logger    *slog.Logger
}

// Site renders pages from a sidebar controller and a markdown renderer.
type Site struct {
	ctrl     *sidebar.Controller
	md       *markdown.Renderer
	tmpl     *template.Template
	homeFile string
	title    string
	logger   *slog.Logger
}

// New creates a Site.
func New(ctrl *sidebar.Controller, md *markdown.Renderer, opts Options) (*Site, error) {
	tmpl, err := template.New("page").Parse(pageTemplate)
	if err != nil {
		return nil, fmt.Errorf("parsing page template: %w", err)
	}
	if opts.HomeFile == "" {
		opts.HomeFile = "home.md"
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	return &Site{
		ctrl:     ctrl,
		md:       md,
		tmpl:     tmpl,
		homeFile: opts.HomeFile,
		title:    opts.SiteTitle,
		logger:   opts.Logger,
	}, nil
}

// RegisterRoutes mounts the site's routes on r.
func (s *Site) RegisterRoutes(r chi.Router) {
	r.Get("/", s.handleHome)
	r.Get("/index.html", s.handleHome)
	r.Get("/notes.html", s.handleNote)
	r.Get("/switch-lang", s.handleSwitchLang)
	r.Get("/api/sidebar", s.handleSidebarAPI)
	r.Get("/style.css", staticHandler("text/css; charset=utf-8", cssContent))
	r.Get("/script.js", staticHandler("application/javascript; charset=utf-8", jsContent))
}

func staticHandler(contentType, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", contentType)
		w.Header().Set("Cache-Control", "public, max-age=300")
		w.Write([]byte(body))
	}
}
