package site

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/go-chi/chi/v5"

	"github.com/imnaval/webnotes/internal/content"
	"github.com/imnaval/webnotes/internal/markdown"
	"github.com/imnaval/webnotes/internal/sidebar"
	"github.com/imnaval/webnotes/internal/source"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"home.md":                             {Data: []byte("# Welcome\n\nStart with the **DOM API**.\n")},
		"notes/english/dom_api.md":            {Data: []byte("# DOM API\n## getElementById\ntext\n")},
		"notes/english/fetch_api.md":          {Data: []byte("# Fetch API\n## Request\n")},
		"notes/hinglish/fetch_api.md":         {Data: []byte("# Fetch API (Hinglish)\n## Response Object\n### Headers\n")},
		"interviewQuestions/english/html.md":  {Data: []byte("# HTML Questions\n## What is HTML?\n")},
		"interviewQuestions/hinglish/html.md": {Data: []byte("# HTML Sawaal\n## HTML kya hai?\n")},
	}
}

func newTestRouter(t *testing.T, fsys fstest.MapFS) http.Handler {
	t.Helper()
	cat, err := content.NewCatalog(
		[]content.TopicEntry{
			{Name: "DOM API", File: "notes/dom_api.md", Subtopics: []string{"getElementById", "querySelector"}},
			{Name: "Fetch API", File: "notes/fetch_api.md"},
			{Name: "Canvas API", File: "notes/canvas_api.md"},
		},
		[]content.TopicEntry{
			{Name: "HTML", File: "interviewQuestions/html.md"},
		},
	)
	if err != nil {
		t.Fatalf("NewCatalog: %v", err)
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ctrl := sidebar.NewController(cat, &source.DirSource{FS: fsys}, sidebar.WithLogger(logger))
	s, err := New(ctrl, markdown.NewRenderer(), Options{SiteTitle: "Web APIs Learning Notes", Logger: logger})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	r := chi.NewRouter()
	s.RegisterRoutes(r)
	return r
}

func get(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func assertContains(t *testing.T, body string, wants ...string) {
	t.Helper()
	for _, want := range wants {
		if !strings.Contains(body, want) {
			t.Errorf("body missing %q", want)
		}
	}
}

func TestHomePage(t *testing.T) {
	h := newTestRouter(t, testFS())
	rec := get(t, h, "/")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if got := rec.Header().Get("Content-Language"); got != "en" {
		t.Errorf("Content-Language = %q", got)
	}
	body := rec.Body.String()
	assertContains(t, body,
		`<html lang="en">`,
		`<article class="home-note-container">`,
		`<strong>DOM API</strong>`,
		`Switch to Hinglish`,
		`<ul id="topic-list">`,
		`<ul id="interview-list">`,
		`data-topic-id="fetch_api" class="has-subtopics"`,
	)
}

func TestHomePageFallback(t *testing.T) {
	fsys := testFS()
	delete(fsys, "home.md")
	h := newTestRouter(t, fsys)
	rec := get(t, h, "/index.html?lang=hinglish")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	assertContains(t, rec.Body.String(),
		homeErrorHTML,
		`<html lang="hi-Latn">`,
		`Switch to English`,
		`<ul id="topic-list">`,
	)
}

func TestNotePageHinglish(t *testing.T) {
	h := newTestRouter(t, testFS())
	rec := get(t, h, "/notes.html?topic=fetch_api&lang=hinglish")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	body := rec.Body.String()
	assertContains(t, body,
		`<title>Fetch API (Hinglish) | Web APIs Learning Notes</title>`,
		`<h2 id="response-object">Response Object</h2>`,
		`<h3 id="headers">Headers</h3>`,
		`<ul class="subtopics show" data-topic-id="fetch_api">`,
		`href="notes.html?topic=fetch_api&amp;lang=hinglish#response-object"`,
		`href="switch-lang?topic=fetch_api&amp;lang=hinglish"`,
	)
	if strings.Contains(body, "Request") {
		t.Error("english content leaked into the hinglish page")
	}
}

func TestNotePageInterview(t *testing.T) {
	h := newTestRouter(t, testFS())
	rec := get(t, h, "/notes.html?interview=html")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	assertContains(t, rec.Body.String(),
		`<h2 id="what-is-html?">What is HTML?</h2>`,
		`<ul class="subtopics show" data-interview-id="html">`,
	)
}

func TestNotePageFetchFailure(t *testing.T) {
	h := newTestRouter(t, testFS())
	rec := get(t, h, "/notes.html?topic=canvas_api&lang=english")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	body := rec.Body.String()
	assertContains(t, body, noteErrorHTML, `<title>Canvas API | Web APIs Learning Notes</title>`)
	// The rest of the sidebar still renders.
	assertContains(t, body, `data-topic-id="dom_api"`, `data-interview-id="html"`)
}

func TestNotePageUnknownTopic(t *testing.T) {
	h := newTestRouter(t, testFS())
	rec := get(t, h, "/notes.html?topic=nope")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	assertContains(t, rec.Body.String(), notFoundHTML, `<ul id="topic-list">`)
}

func TestNotePageNoSelection(t *testing.T) {
	h := newTestRouter(t, testFS())
	rec := get(t, h, "/notes.html")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	assertContains(t, rec.Body.String(), selectTopicHTML)
}

func TestSwitchLang(t *testing.T) {
	h := newTestRouter(t, testFS())
	tests := []struct {
		target string
		want   string
	}{
		{"/switch-lang?topic=dom_api", "/notes.html?topic=dom_api&lang=hinglish"},
		{"/switch-lang?topic=dom_api&lang=hinglish", "/notes.html?topic=dom_api&lang=english"},
		{"/switch-lang?interview=css&lang=english", "/notes.html?interview=css&lang=hinglish"},
		{"/switch-lang?lang=hinglish", "/index.html?lang=english"},
		{"/switch-lang", "/index.html?lang=hinglish"},
	}
	for _, tt := range tests {
		rec := get(t, h, tt.target)
		if rec.Code != http.StatusFound {
			t.Errorf("%s: status = %d, want 302", tt.target, rec.Code)
			continue
		}
		if got := rec.Header().Get("Location"); got != tt.want {
			t.Errorf("%s: Location = %q, want %q", tt.target, got, tt.want)
		}
	}
}

func TestSidebarAPI(t *testing.T) {
	h := newTestRouter(t, testFS())
	rec := get(t, h, "/api/sidebar?lang=hinglish&topic=fetch_api")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var got struct {
		Language string            `json:"language"`
		Open     *sidebar.GroupKey `json:"open"`
		Topics   []sidebar.Node    `json:"topics"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decoding: %v", err)
	}
	if got.Language != "hinglish" {
		t.Errorf("language = %q", got.Language)
	}
	if got.Open == nil || got.Open.ID != "fetch_api" {
		t.Errorf("open = %+v", got.Open)
	}
	if len(got.Topics) != 3 {
		t.Fatalf("topics = %d", len(got.Topics))
	}
	fetch := got.Topics[1]
	if fetch.Href != "notes.html?topic=fetch_api&lang=hinglish" || len(fetch.Children) != 2 {
		t.Errorf("fetch node = %+v", fetch)
	}
	if fetch.Children[0].Href != "notes.html?topic=fetch_api&lang=hinglish#response-object" {
		t.Errorf("first child href = %q", fetch.Children[0].Href)
	}
}

func TestStaticAssets(t *testing.T) {
	h := newTestRouter(t, testFS())

	rec := get(t, h, "/script.js")
	if !strings.HasPrefix(rec.Header().Get("Content-Type"), "application/javascript") {
		t.Errorf("script content type = %q", rec.Header().Get("Content-Type"))
	}
	assertContains(t, rec.Body.String(), "has-subtopics", "collapseAll")

	rec = get(t, h, "/style.css")
	if !strings.HasPrefix(rec.Header().Get("Content-Type"), "text/css") {
		t.Errorf("style content type = %q", rec.Header().Get("Content-Type"))
	}
	assertContains(t, rec.Body.String(), ".subtopics.hidden")
}

func TestSwitchTarget(t *testing.T) {
	q := map[string][]string{"topic": {"a b"}, "interview": {"css"}}
	if got := switchTarget(q); got != "notes.html?topic=a+b&lang=hinglish" {
		t.Errorf("switchTarget = %q", got)
	}
}
