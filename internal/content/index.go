// Package content holds the ordered content index: the notes and interview
// question tables the sidebar is built from.
package content

import (
	"fmt"
	"path"
	"sync/atomic"

	"github.com/imnaval/webnotes/internal/lang"
)

var versionCounter atomic.Uint64

// Index is an immutable, ordered table of entries of one kind. Every derived
// table gets a new, strictly larger version.
type Index struct {
	kind     Kind
	version  uint64
	language lang.Language
	entries  []TopicEntry
	byID     map[string]int
}

// NewIndex builds a table from entries in display order. Identifiers must be
// unique within a table.
func NewIndex(kind Kind, entries []TopicEntry) (*Index, error) {
	idx := &Index{
		kind:    kind,
		version: versionCounter.Add(1),
		entries: make([]TopicEntry, 0, len(entries)),
		byID:    make(map[string]int, len(entries)),
	}
	for _, e := range entries {
		if e.Name == "" {
			return nil, fmt.Errorf("%s entry with file %q has no name", kind, e.File)
		}
		if e.File == "" {
			return nil, fmt.Errorf("%s entry %q has no file", kind, e.Name)
		}
		id := e.ID()
		if _, dup := idx.byID[id]; dup {
			return nil, fmt.Errorf("duplicate %s identifier %q", kind, id)
		}
		idx.byID[id] = len(idx.entries)
		idx.entries = append(idx.entries, e.clone())
	}
	return idx, nil
}

// Kind returns the table's kind.
func (x *Index) Kind() Kind { return x.kind }

// Version identifies this table snapshot.
func (x *Index) Version() uint64 { return x.version }

// Language is the folder the paths currently point into, or "" if the table
// has never been rewritten.
func (x *Index) Language() lang.Language { return x.language }

// Len returns the number of entries.
func (x *Index) Len() int { return len(x.entries) }

// Entries returns a copy of the entries in display order.
func (x *Index) Entries() []TopicEntry {
	out := make([]TopicEntry, len(x.entries))
	for i, e := range x.entries {
		out[i] = e.clone()
	}
	return out
}

// Lookup finds an entry by identifier.
func (x *Index) Lookup(id string) (TopicEntry, bool) {
	i, ok := x.byID[id]
	if !ok {
		return TopicEntry{}, false
	}
	return x.entries[i].clone(), true
}

// WithLanguage returns a copy whose paths all point into the folder of l.
// The receiver is left untouched.
func (x *Index) WithLanguage(l lang.Language) *Index {
	out := x.derive()
	out.language = l
	for i := range out.entries {
		out.entries[i].File = RewritePath(out.entries[i].File, l)
	}
	return out
}

// WithDiscovered returns a copy where every entry lacking pre-declared
// subtopics takes the discovered labels for its identifier. Entries that
// already have subtopics keep them.
func (x *Index) WithDiscovered(discovered map[string][]string) *Index {
	out := x.derive()
	for i, e := range out.entries {
		if e.HasSubtopics() {
			continue
		}
		if labels := discovered[e.ID()]; len(labels) > 0 {
			out.entries[i].Subtopics = append([]string(nil), labels...)
		}
	}
	return out
}

func (x *Index) derive() *Index {
	out := &Index{
		kind:     x.kind,
		version:  versionCounter.Add(1),
		language: x.language,
		entries:  make([]TopicEntry, len(x.entries)),
		byID:     x.byID,
	}
	for i, e := range x.entries {
		out.entries[i] = e.clone()
	}
	return out
}

// RewritePath moves file into the language folder of l, keeping the file name:
// "notes/dom_api.md" and "notes/english/dom_api.md" both become
// "notes/hinglish/dom_api.md" for Hinglish.
func RewritePath(file string, l lang.Language) string {
	dir, name := path.Split(file)
	dir = path.Clean(dir)
	if isLanguageFolder(path.Base(dir)) {
		dir = path.Dir(dir)
	}
	return path.Join(dir, l.Folder(), name)
}

func isLanguageFolder(s string) bool {
	return s == string(lang.English) || s == string(lang.Hinglish)
}
