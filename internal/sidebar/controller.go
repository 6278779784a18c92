// Package sidebar builds the topic/interview sidebar: it rewrites the content
// index for the active language, fetches every note to discover subtopics,
// and produces a render tree plus the accordion state that drives it.
package sidebar

import (
	"context"
	"errors"
	"log/slog"
	"net/url"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/imnaval/webnotes/internal/content"
	"github.com/imnaval/webnotes/internal/lang"
	"github.com/imnaval/webnotes/internal/markdown"
	"github.com/imnaval/webnotes/internal/source"
)

// ErrSuperseded reports that a newer population committed before this one
// finished. The returned sidebar is complete but was not made current.
var ErrSuperseded = errors.New("sidebar population superseded")

// DefaultMaxConcurrency bounds parallel fetches when no limit is configured.
const DefaultMaxConcurrency = 8

// Report is the outcome of fetching one entry's file.
type Report struct {
	Kind       content.Kind
	ID         string
	File       string
	Declared   []string
	Discovered []string
	Err        error
}

// Controller populates sidebars from a catalog and a document source.
type Controller struct {
	catalog        *content.Catalog
	fetcher        source.Fetcher
	logger         *slog.Logger
	maxConcurrency int
	observe        func(Report)

	mu         sync.Mutex
	generation uint64
	committed  uint64
	current    *Sidebar
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the logger used for fetch diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(c *Controller) { c.logger = l }
}

// WithMaxConcurrency limits how many files are fetched at once.
func WithMaxConcurrency(n int) Option {
	return func(c *Controller) {
		if n > 0 {
			c.maxConcurrency = n
		}
	}
}

// WithObserver registers fn to be called after each file fetch settles.
// fn may be called from several goroutines at once.
func WithObserver(fn func(Report)) Option {
	return func(c *Controller) { c.observe = fn }
}

// NewController creates a Controller.
func NewController(catalog *content.Catalog, fetcher source.Fetcher, opts ...Option) *Controller {
	c := &Controller{
		catalog:        catalog,
		fetcher:        fetcher,
		logger:         slog.Default(),
		maxConcurrency: DefaultMaxConcurrency,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Catalog returns the controller's base catalog, before any rewriting.
func (c *Controller) Catalog() *content.Catalog { return c.catalog }

// Fetcher returns the document source.
func (c *Controller) Fetcher() source.Fetcher { return c.fetcher }

// ResolveLanguage reads the lang parameter; missing or unknown values give English.
func ResolveLanguage(q url.Values) lang.Language {
	return lang.FromQuery(q)
}

// RewritePaths returns idx with every file moved into the folder of l.
func RewritePaths(idx *content.Index, l lang.Language) *content.Index {
	return idx.WithLanguage(l)
}

// Populate builds the sidebar for the language in q and makes it current
// unless a newer population has already committed, in which case the sidebar
// is still returned together with ErrSuperseded.
func (c *Controller) Populate(ctx context.Context, q url.Values) (*Sidebar, error) {
	c.mu.Lock()
	c.generation++
	gen := c.generation
	c.mu.Unlock()

	sb := c.Build(ctx, ResolveLanguage(q))
	sb.Generation = gen

	c.mu.Lock()
	defer c.mu.Unlock()
	if gen < c.committed {
		c.logger.Debug("discarding superseded sidebar", "generation", gen, "current", c.committed)
		return sb, ErrSuperseded
	}
	c.committed = gen
	c.current = sb
	return sb, nil
}

// Current returns the most recently committed sidebar, or nil.
func (c *Controller) Current() *Sidebar {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

// Build gathers a sidebar for l without touching the controller's current
// state. Fetch failures are logged and leave the affected entry with its
// pre-declared subtopics.
func (c *Controller) Build(ctx context.Context, l lang.Language) *Sidebar {
	cat := c.catalog.WithLanguage(l)
	notes := cat.Notes.Entries()
	interview := cat.Interview.Entries()

	reports := make([]Report, 0, len(notes)+len(interview))
	for _, e := range notes {
		reports = append(reports, Report{Kind: content.KindNotes, ID: e.ID(), File: e.File, Declared: e.Subtopics})
	}
	for _, e := range interview {
		reports = append(reports, Report{Kind: content.KindInterview, ID: e.ID(), File: e.File, Declared: e.Subtopics})
	}

	var g errgroup.Group
	g.SetLimit(c.maxConcurrency)
	for i := range reports {
		r := &reports[i]
		g.Go(func() error {
			c.logger.Debug("fetching file", "file", r.File)
			data, err := c.fetcher.Fetch(ctx, r.File)
			if err != nil {
				r.Err = err
				c.logger.Warn("error loading file", "file", r.File, "error", err)
			} else {
				r.Discovered = markdown.Subtopics(string(data))
			}
			if c.observe != nil {
				c.observe(*r)
			}
			return nil
		})
	}
	_ = g.Wait()

	discovered := map[content.Kind]map[string][]string{
		content.KindNotes:     {},
		content.KindInterview: {},
	}
	for _, r := range reports {
		if r.Err == nil {
			discovered[r.Kind][r.ID] = r.Discovered
		}
	}

	merged := &content.Catalog{
		Notes:     cat.Notes.WithDiscovered(discovered[content.KindNotes]),
		Interview: cat.Interview.WithDiscovered(discovered[content.KindInterview]),
	}
	return &Sidebar{
		Language:  l,
		Topics:    buildNodes(merged.Notes, l),
		Interview: buildNodes(merged.Interview, l),
		Catalog:   merged,
		Reports:   reports,
	}
}
