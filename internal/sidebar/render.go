package sidebar

import (
	"encoding/json"
	"fmt"
	"html"
	"io"
	"strings"

	"github.com/imnaval/webnotes/internal/content"
)

// Renderer writes a sidebar to a render target.
type Renderer interface {
	Render(w io.Writer, sb *Sidebar, acc *Accordion) error
}

// HTMLRenderer emits the two sidebar lists as nested <ul> markup. Expandable
// links carry class has-subtopics; sublists start hidden unless open in acc.
type HTMLRenderer struct{}

func (HTMLRenderer) Render(w io.Writer, sb *Sidebar, acc *Accordion) error {
	var b strings.Builder
	b.WriteString(`<h3 id="topics">Topics</h3>` + "\n")
	renderSection(&b, "topic-list", content.KindNotes, sb.Topics, acc)
	b.WriteString(`<h3 id="interview">Interview Questions</h3>` + "\n")
	renderSection(&b, "interview-list", content.KindInterview, sb.Interview, acc)
	_, err := io.WriteString(w, b.String())
	return err
}

// HTML renders sb to a string.
func (r HTMLRenderer) HTML(sb *Sidebar, acc *Accordion) string {
	var b strings.Builder
	_ = r.Render(&b, sb, acc)
	return b.String()
}

// dataAttr is the element attribute carrying an entry identifier.
func dataAttr(kind content.Kind) string {
	if kind == content.KindInterview {
		return "data-interview-id"
	}
	return "data-topic-id"
}

func renderSection(b *strings.Builder, listID string, kind content.Kind, nodes []Node, acc *Accordion) {
	attr := dataAttr(kind)
	fmt.Fprintf(b, `<ul id="%s">`+"\n", listID)
	for _, n := range nodes {
		id := html.EscapeString(n.ID)
		expanded := acc != nil && acc.State(kind, n.ID) == Expanded

		b.WriteString("<li>")
		var classes []string
		if n.Expandable {
			classes = append(classes, "has-subtopics")
		}
		if expanded {
			classes = append(classes, "active")
		}
		class := ""
		if len(classes) > 0 {
			class = fmt.Sprintf(` class="%s"`, strings.Join(classes, " "))
		}
		fmt.Fprintf(b, `<a href="%s" %s="%s"%s>%s</a>`, html.EscapeString(n.Href), attr, id, class, html.EscapeString(n.Label))

		if n.Expandable {
			visibility := "hidden"
			if expanded {
				visibility = "show"
			}
			fmt.Fprintf(b, "\n"+`<ul class="subtopics %s" %s="%s">`+"\n", visibility, attr, id)
			for _, c := range n.Children {
				fmt.Fprintf(b, `<li><a href="%s">%s</a></li>`+"\n", html.EscapeString(c.Href), html.EscapeString(c.Label))
			}
			b.WriteString("</ul>\n")
		}
		b.WriteString("</li>\n")
	}
	b.WriteString("</ul>\n")
}

// JSONRenderer emits the render tree as JSON.
type JSONRenderer struct {
	Indent bool
}

type jsonSidebar struct {
	Language   string    `json:"language"`
	Generation uint64    `json:"generation,omitempty"`
	Open       *GroupKey `json:"open,omitempty"`
	Topics     []Node    `json:"topics"`
	Interview  []Node    `json:"interview"`
}

func (r JSONRenderer) Render(w io.Writer, sb *Sidebar, acc *Accordion) error {
	out := jsonSidebar{
		Language:   sb.Language.String(),
		Generation: sb.Generation,
		Topics:     nonNil(sb.Topics),
		Interview:  nonNil(sb.Interview),
	}
	if acc != nil {
		if key, ok := acc.Open(); ok {
			out.Open = &key
		}
	}
	enc := json.NewEncoder(w)
	if r.Indent {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(out)
}

func nonNil(nodes []Node) []Node {
	if nodes == nil {
		return []Node{}
	}
	return nodes
}
