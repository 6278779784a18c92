package markdown

import (
	"strings"
	"testing"
)

func TestSubtopics(t *testing.T) {
	src := strings.Join([]string{
		"# Fetch API",
		"intro text",
		"## Response Object",
		"some text ## not a heading",
		"### Headers",
		"#### Too Deep",
		"##NoSpace",
		"##   Padded Heading   ",
		"## CRLF Heading\r",
		"  ## indented",
	}, "\n")

	got := Subtopics(src)
	want := []string{"Response Object", "Headers", "Padded Heading", "CRLF Heading"}
	if len(got) != len(want) {
		t.Fatalf("Subtopics() = %q, want %q", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Subtopics()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestSubtopicsNone(t *testing.T) {
	if got := Subtopics("# Title\n\nplain body\n"); len(got) != 0 {
		t.Errorf("Subtopics() = %q, want none", got)
	}
	if got := Subtopics(""); len(got) != 0 {
		t.Errorf("Subtopics(\"\") = %q, want none", got)
	}
}

func TestAnchor(t *testing.T) {
	tests := []struct {
		label string
		want  string
	}{
		{"Response Object", "response-object"},
		{"Headers", "headers"},
		{"innerHTML vs textContent vs innerText", "innerhtml-vs-textcontent-vs-innertext"},
		{"event bubbling vs. capturing", "event-bubbling-vs.-capturing"},
		{"multiple   spaces\there", "multiple-spaces-here"},
		{"getElementById", "getelementbyid"},
	}
	for _, tt := range tests {
		if got := Anchor(tt.label); got != tt.want {
			t.Errorf("Anchor(%q) = %q, want %q", tt.label, got, tt.want)
		}
	}
}

func TestTitle(t *testing.T) {
	if got := Title("intro\n# Fetch API\n## Sub", "fallback"); got != "Fetch API" {
		t.Errorf("Title() = %q", got)
	}
	if got := Title("## Only sub", "fallback"); got != "fallback" {
		t.Errorf("Title() = %q, want fallback", got)
	}
}

func TestRenderHeadingIDsMatchAnchors(t *testing.T) {
	r := NewRenderer()
	out, err := r.Render([]byte("# Events\n\n## event bubbling vs. capturing\n\n### Headers\n\n### Headers\n"))
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	for _, id := range []string{`id="events"`, `id="event-bubbling-vs.-capturing"`, `id="headers"`, `id="headers-1"`} {
		if !strings.Contains(out, id) {
			t.Errorf("rendered HTML missing %s:\n%s", id, out)
		}
	}
}

func TestRenderGFM(t *testing.T) {
	r := NewRenderer()
	out, err := r.Render([]byte("| a | b |\n|---|---|\n| 1 | 2 |\n\n```js\nfetch(url)\n```\n"))
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(out, "<table>") {
		t.Errorf("expected GFM table, got:\n%s", out)
	}
	if !strings.Contains(out, "<pre") {
		t.Errorf("expected code block, got:\n%s", out)
	}
}

func TestRenderIsolatedIDsPerCall(t *testing.T) {
	r := NewRenderer()
	for i := 0; i < 2; i++ {
		out, err := r.Render([]byte("## Intro\n"))
		if err != nil {
			t.Fatalf("Render: %v", err)
		}
		if !strings.Contains(out, `id="intro"`) {
			t.Errorf("call %d: expected id=\"intro\", got:\n%s", i, out)
		}
	}
}
