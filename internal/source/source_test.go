package source

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"testing/fstest"
	"time"
)

func TestDirSourceFetch(t *testing.T) {
	s := &DirSource{FS: fstest.MapFS{
		"notes/english/fetch_api.md": {Data: []byte("## Response Object\n")},
	}}

	data, err := s.Fetch(context.Background(), "notes/english/fetch_api.md")
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if string(data) != "## Response Object\n" {
		t.Errorf("data = %q", data)
	}

	_, err = s.Fetch(context.Background(), "notes/english/missing.md")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("missing file error = %v, want ErrNotFound", err)
	}
}

func TestDirSourceRejectsEscape(t *testing.T) {
	s := &DirSource{FS: fstest.MapFS{}}
	if _, err := s.Fetch(context.Background(), "../secret.md"); err == nil {
		t.Error("expected error for path escaping the root")
	}
}

func TestDirSourceCancelled(t *testing.T) {
	s := &DirSource{FS: fstest.MapFS{"a.md": {Data: []byte("x")}}}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := s.Fetch(ctx, "a.md"); !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}

func TestHTTPSourceFetch(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/site/notes/hinglish/fetch_api.md":
			w.Write([]byte("### Headers\n"))
		case "/site/broken.md":
			w.WriteHeader(http.StatusInternalServerError)
		default:
			http.NotFound(w, r)
		}
	}))
	defer ts.Close()

	s, err := NewHTTPSource(ts.URL+"/site", 5*time.Second)
	if err != nil {
		t.Fatalf("NewHTTPSource: %v", err)
	}

	data, err := s.Fetch(context.Background(), "notes/hinglish/fetch_api.md")
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if string(data) != "### Headers\n" {
		t.Errorf("data = %q", data)
	}

	if _, err := s.Fetch(context.Background(), "nope.md"); !errors.Is(err, ErrNotFound) {
		t.Errorf("404 error = %v, want ErrNotFound", err)
	}
	if _, err := s.Fetch(context.Background(), "broken.md"); err == nil || errors.Is(err, ErrNotFound) {
		t.Errorf("500 error = %v, want non-NotFound error", err)
	}
}

func TestNewHTTPSourceRejectsScheme(t *testing.T) {
	if _, err := NewHTTPSource("ftp://example.com", time.Second); err == nil {
		t.Error("expected error for ftp scheme")
	}
}

func TestNewPicksSource(t *testing.T) {
	f, err := New(t.TempDir(), "", time.Second)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, ok := f.(*DirSource); !ok {
		t.Errorf("New without base url = %T, want *DirSource", f)
	}

	f, err = New("", "https://example.com/notes", time.Second)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, ok := f.(*HTTPSource); !ok {
		t.Errorf("New with base url = %T, want *HTTPSource", f)
	}

	if _, err := New("/does/not/exist", "", time.Second); err == nil {
		t.Error("expected error for missing content dir")
	}
}

func TestMarkdownFiles(t *testing.T) {
	fsys := fstest.MapFS{
		"home.md":                         {Data: []byte("# Home")},
		"notes/english/dom_api.md":        {Data: []byte("")},
		"notes/hinglish/dom_api.md":       {Data: []byte("")},
		"notes/english/image.png":         {Data: []byte("")},
		"node_modules/pkg/README.md":      {Data: []byte("")},
		"drafts/wip.md":                   {Data: []byte("")},
		"interviewQuestions/english/x.md": {Data: []byte("")},
	}

	got, err := MarkdownFiles(fsys, []string{"**"}, []string{"drafts/**"})
	if err != nil {
		t.Fatalf("MarkdownFiles: %v", err)
	}
	want := []string{
		"home.md",
		"interviewQuestions/english/x.md",
		"notes/english/dom_api.md",
		"notes/hinglish/dom_api.md",
	}
	if len(got) != len(want) {
		t.Fatalf("MarkdownFiles() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("[%d] = %q, want %q", i, got[i], want[i])
		}
	}

	only, err := MarkdownFiles(fsys, []string{"notes/hinglish/*.md"}, nil)
	if err != nil {
		t.Fatalf("MarkdownFiles: %v", err)
	}
	if len(only) != 1 || only[0] != "notes/hinglish/dom_api.md" {
		t.Errorf("include-filtered = %v", only)
	}
}
