package content

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/imnaval/webnotes/internal/lang"
)

// Catalog pairs the notes table with the interview questions table.
type Catalog struct {
	Notes     *Index
	Interview *Index
}

// catalogFile is the on-disk YAML shape of a catalog.
type catalogFile struct {
	Notes     []TopicEntry `yaml:"notes"`
	Interview []TopicEntry `yaml:"interview"`
}

// NewCatalog builds both tables.
func NewCatalog(notes, interview []TopicEntry) (*Catalog, error) {
	n, err := NewIndex(KindNotes, notes)
	if err != nil {
		return nil, err
	}
	iq, err := NewIndex(KindInterview, interview)
	if err != nil {
		return nil, err
	}
	return &Catalog{Notes: n, Interview: iq}, nil
}

// DefaultCatalog returns the built-in notes and interview tables.
func DefaultCatalog() *Catalog {
	c, err := NewCatalog(DefaultNotes(), DefaultInterview())
	if err != nil {
		panic(err)
	}
	return c
}

// LoadCatalog reads a catalog from a YAML file. An empty path or a missing
// file yields the default catalog.
func LoadCatalog(path string) (*Catalog, error) {
	if path == "" {
		return DefaultCatalog(), nil
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return DefaultCatalog(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading catalog %s: %w", path, err)
	}
	var cf catalogFile
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, fmt.Errorf("parsing catalog %s: %w", path, err)
	}
	c, err := NewCatalog(cf.Notes, cf.Interview)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return c, nil
}

// Save writes the catalog to path as YAML.
func (c *Catalog) Save(path string) error {
	cf := catalogFile{Notes: c.Notes.Entries(), Interview: c.Interview.Entries()}
	data, err := yaml.Marshal(&cf)
	if err != nil {
		return fmt.Errorf("marshalling catalog: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing catalog to %s: %w", path, err)
	}
	return nil
}

// Table returns the table for kind.
func (c *Catalog) Table(kind Kind) *Index {
	if kind == KindInterview {
		return c.Interview
	}
	return c.Notes
}

// WithLanguage rewrites both tables for l.
func (c *Catalog) WithLanguage(l lang.Language) *Catalog {
	return &Catalog{
		Notes:     c.Notes.WithLanguage(l),
		Interview: c.Interview.WithLanguage(l),
	}
}
