// Package source fetches markdown documents by relative path, either from a
// local content directory or from a remote site.
package source

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"net/url"
	"os"
	"path"
	"strings"
	"time"
)

// ErrNotFound is returned when a document does not exist.
var ErrNotFound = errors.New("document not found")

// Fetcher loads a document by its slash-separated relative path.
type Fetcher interface {
	Fetch(ctx context.Context, relPath string) ([]byte, error)
}

// DirSource reads documents from a file system, usually os.DirFS(contentDir).
type DirSource struct {
	FS fs.FS
}

// NewDirSource returns a DirSource rooted at dir.
func NewDirSource(dir string) *DirSource {
	return &DirSource{FS: os.DirFS(dir)}
}

func (s *DirSource) Fetch(ctx context.Context, relPath string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	name := strings.TrimPrefix(path.Clean(relPath), "/")
	if !fs.ValidPath(name) {
		return nil, fmt.Errorf("invalid document path %q", relPath)
	}
	data, err := fs.ReadFile(s.FS, name)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%s: %w", relPath, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", relPath, err)
	}
	return data, nil
}

// HTTPSource fetches documents relative to a base URL.
type HTTPSource struct {
	base   *url.URL
	client *http.Client
}

// maxDocumentBytes caps how much of a remote response is read.
const maxDocumentBytes = 4 << 20

// NewHTTPSource parses baseURL and returns a source using a client with the
// given timeout.
func NewHTTPSource(baseURL string, timeout time.Duration) (*HTTPSource, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parsing base url %q: %w", baseURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("base url %q must be http or https", baseURL)
	}
	if !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	return &HTTPSource{
		base:   u,
		client: &http.Client{Timeout: timeout},
	}, nil
}

func (s *HTTPSource) Fetch(ctx context.Context, relPath string) ([]byte, error) {
	ref, err := url.Parse(strings.TrimPrefix(relPath, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid document path %q: %w", relPath, err)
	}
	target := s.base.ResolveReference(ref)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", target, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("%s: %w", relPath, ErrNotFound)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("fetching %s: unexpected status %d", target, resp.StatusCode)
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, maxDocumentBytes))
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", target, err)
	}
	return data, nil
}

// New picks an HTTPSource when baseURL is set, otherwise a DirSource on contentDir.
func New(contentDir, baseURL string, timeout time.Duration) (Fetcher, error) {
	if baseURL != "" {
		return NewHTTPSource(baseURL, timeout)
	}
	if _, err := os.Stat(contentDir); err != nil {
		return nil, fmt.Errorf("content dir %s: %w", contentDir, err)
	}
	return NewDirSource(contentDir), nil
}
