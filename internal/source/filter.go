package source

import (
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// skipDirs are never descended into when listing documents.
var skipDirs = map[string]bool{
	".git":         true,
	"node_modules": true,
	"vendor":       true,
}

// MarkdownFiles lists every .md file in fsys matching include and not exclude,
// sorted. An empty include list matches everything.
func MarkdownFiles(fsys fs.FS, include, exclude []string) ([]string, error) {
	var files []string
	err := fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if p != "." && skipDirs[d.Name()] {
				return fs.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(p, ".md") {
			return nil
		}
		if len(include) > 0 && !matchesAny(p, include) {
			return nil
		}
		if matchesAny(p, exclude) {
			return nil
		}
		files = append(files, p)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("listing markdown files: %w", err)
	}
	sort.Strings(files)
	return files, nil
}

// matchesAny reports whether p, or its base name, matches one of patterns.
func matchesAny(p string, patterns []string) bool {
	for _, pattern := range patterns {
		if ok, err := doublestar.Match(pattern, p); err == nil && ok {
			return true
		}
		if ok, err := doublestar.Match(pattern, path.Base(p)); err == nil && ok {
			return true
		}
	}
	return false
}
