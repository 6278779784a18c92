package sidebar

import (
	"fmt"
	"net/url"

	"github.com/imnaval/webnotes/internal/content"
	"github.com/imnaval/webnotes/internal/lang"
	"github.com/imnaval/webnotes/internal/markdown"
)

// NotesPage is the note view every sidebar link targets.
const NotesPage = "notes.html"

// Node is one link in the sidebar. Top-level nodes carry the entry identifier
// and kind; subtopic nodes only a label and href.
type Node struct {
	Label      string       `json:"label"`
	Href       string       `json:"href"`
	ID         string       `json:"id,omitempty"`
	Kind       content.Kind `json:"kind,omitempty"`
	Expandable bool         `json:"expandable,omitempty"`
	Children   []Node       `json:"children,omitempty"`
}

// Sidebar is the render tree produced by one population.
type Sidebar struct {
	Language   lang.Language
	Generation uint64
	Topics     []Node
	Interview  []Node
	// Catalog holds the rewritten tables with discovered subtopics merged in.
	Catalog *content.Catalog
	// Reports has one entry per fetched file, notes first, in display order.
	Reports []Report
}

// Section returns the nodes of one sidebar list.
func (s *Sidebar) Section(kind content.Kind) []Node {
	if kind == content.KindInterview {
		return s.Interview
	}
	return s.Topics
}

// Find returns the top-level node for kind and id.
func (s *Sidebar) Find(kind content.Kind, id string) (Node, bool) {
	for _, n := range s.Section(kind) {
		if n.ID == id {
			return n, true
		}
	}
	return Node{}, false
}

// NoteURL links to the note view of an entry.
func NoteURL(kind content.Kind, id string, l lang.Language) string {
	return fmt.Sprintf("%s?%s=%s&%s=%s", NotesPage, kind.QueryKey(), url.QueryEscape(id), lang.QueryKey, l)
}

// SubtopicURL links to a heading within an entry's note view.
func SubtopicURL(kind content.Kind, id string, l lang.Language, label string) string {
	return NoteURL(kind, id, l) + "#" + markdown.Anchor(label)
}

// buildNodes turns one table into sidebar nodes.
func buildNodes(idx *content.Index, l lang.Language) []Node {
	entries := idx.Entries()
	nodes := make([]Node, 0, len(entries))
	for _, e := range entries {
		id := e.ID()
		n := Node{
			Label:      e.Name,
			Href:       NoteURL(idx.Kind(), id, l),
			ID:         id,
			Kind:       idx.Kind(),
			Expandable: e.HasSubtopics(),
		}
		for _, sub := range e.Subtopics {
			n.Children = append(n.Children, Node{
				Label: sub,
				Href:  SubtopicURL(idx.Kind(), id, l, sub),
			})
		}
		nodes = append(nodes, n)
	}
	return nodes
}
