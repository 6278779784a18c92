package site

import (
	"context"
	"errors"
	"html/template"
	"net/http"
	"net/url"

	"github.com/imnaval/webnotes/internal/content"
	"github.com/imnaval/webnotes/internal/lang"
	"github.com/imnaval/webnotes/internal/markdown"
	"github.com/imnaval/webnotes/internal/sidebar"
)

// pageData holds the data passed to the page template.
type pageData struct {
	Title       string
	SiteTitle   string
	Language    lang.Language
	LangTag     string
	ToggleLabel string
	ToggleHref  string
	SidebarHTML template.HTML
	Content     template.HTML
	IsHome      bool
}

// populate builds the sidebar for the request. A superseded population still
// yields a complete sidebar, which is what this request needs.
func (s *Site) populate(ctx context.Context, q url.Values) *sidebar.Sidebar {
	sb, err := s.ctrl.Populate(ctx, q)
	if err != nil && !errors.Is(err, sidebar.ErrSuperseded) {
		s.logger.Error("populating sidebar", "error", err)
	}
	return sb
}

func (s *Site) handleHome(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	sb := s.populate(r.Context(), q)
	acc := sidebar.NewAccordion(sb)

	body := homeErrorHTML
	data, err := s.ctrl.Fetcher().Fetch(r.Context(), s.homeFile)
	if err != nil {
		s.logger.Error("error loading home content", "file", s.homeFile, "error", err)
	} else if html, err := s.md.Render(data); err != nil {
		s.logger.Error("error rendering home content", "file", s.homeFile, "error", err)
	} else {
		body = html
	}

	s.render(w, r, http.StatusOK, sb, acc, pageData{
		Content: template.HTML(body),
		IsHome:  true,
	})
}

// requestedEntry returns the kind and identifier named by the query; topic
// takes precedence over interview.
func requestedEntry(q url.Values) (content.Kind, string) {
	if id := q.Get(content.KindNotes.QueryKey()); id != "" {
		return content.KindNotes, id
	}
	if id := q.Get(content.KindInterview.QueryKey()); id != "" {
		return content.KindInterview, id
	}
	return "", ""
}

func (s *Site) handleNote(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	sb := s.populate(r.Context(), q)
	acc := sidebar.NewAccordion(sb)

	kind, id := requestedEntry(q)
	if id == "" {
		s.render(w, r, http.StatusOK, sb, acc, pageData{Content: selectTopicHTML})
		return
	}

	entry, ok := sb.Catalog.Table(kind).Lookup(id)
	if !ok {
		s.render(w, r, http.StatusNotFound, sb, acc, pageData{Content: notFoundHTML})
		return
	}
	acc.Reveal(kind, id)

	page := pageData{Title: entry.Name, Content: noteErrorHTML}
	data, err := s.ctrl.Fetcher().Fetch(r.Context(), entry.File)
	if err != nil {
		s.logger.Error("error loading note", "file", entry.File, "error", err)
	} else if html, err := s.md.Render(data); err != nil {
		s.logger.Error("error rendering note", "file", entry.File, "error", err)
	} else {
		page.Title = markdown.Title(string(data), entry.Name)
		page.Content = template.HTML(html)
	}
	s.render(w, r, http.StatusOK, sb, acc, page)
}

// switchTarget is where the language toggle leads from a page with query q:
// the same topic or interview page in the other language, or the home page.
func switchTarget(q url.Values) string {
	other := sidebar.ResolveLanguage(q).Other()
	kind, id := requestedEntry(q)
	if id != "" {
		return sidebar.NoteURL(kind, id, other)
	}
	return "index.html?" + lang.QueryKey + "=" + other.String()
}

func (s *Site) handleSwitchLang(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, switchTarget(r.URL.Query()), http.StatusFound)
}

func (s *Site) handleSidebarAPI(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	sb := s.populate(r.Context(), q)
	acc := sidebar.NewAccordion(sb)
	if kind, id := requestedEntry(q); id != "" {
		acc.Reveal(kind, id)
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Language", sb.Language.Tag().String())
	if err := (sidebar.JSONRenderer{}).Render(w, sb, acc); err != nil {
		s.logger.Error("encoding sidebar", "error", err)
	}
}

// render fills in the sidebar and language fields of page and executes the template.
func (s *Site) render(w http.ResponseWriter, r *http.Request, status int, sb *sidebar.Sidebar, acc *sidebar.Accordion, page pageData) {
	l := sb.Language
	page.SiteTitle = s.title
	page.Language = l
	page.LangTag = l.Tag().String()
	page.ToggleLabel = l.ToggleLabel()
	page.ToggleHref = "switch-lang"
	if r.URL.RawQuery != "" {
		page.ToggleHref += "?" + r.URL.RawQuery
	}
	page.SidebarHTML = template.HTML(sidebar.HTMLRenderer{}.HTML(sb, acc))

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Content-Language", page.LangTag)
	w.WriteHeader(status)
	if err := s.tmpl.Execute(w, page); err != nil {
		s.logger.Error("executing page template", "error", err)
	}
}
