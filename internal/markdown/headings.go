// Package markdown discovers sidebar subtopics in note files and renders
// notes to HTML with heading ids that match the sidebar anchors.
package markdown

import (
	"strings"
	"unicode"
)

// Subtopics returns the labels of every "## " and "### " line in text, in
// document order. Deeper headings and the "# " title are ignored.
func Subtopics(text string) []string {
	var labels []string
	for _, line := range strings.Split(text, "\n") {
		if !strings.HasPrefix(line, "## ") && !strings.HasPrefix(line, "### ") {
			continue
		}
		label := strings.TrimSpace(strings.TrimLeft(line, "#"))
		if label == "" {
			continue
		}
		labels = append(labels, label)
	}
	return labels
}

// Anchor derives a heading anchor from a label: whitespace runs become a
// single hyphen and the result is lowercased. Punctuation is kept.
func Anchor(label string) string {
	var b strings.Builder
	b.Grow(len(label))
	inSpace := false
	for _, r := range label {
		if unicode.IsSpace(r) {
			if !inSpace {
				b.WriteByte('-')
			}
			inSpace = true
			continue
		}
		inSpace = false
		b.WriteRune(r)
	}
	return strings.ToLower(b.String())
}

// Title returns the text of the first "# " heading, or fallback.
func Title(text, fallback string) string {
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "# ") {
			return strings.TrimSpace(strings.TrimPrefix(line, "# "))
		}
	}
	return fallback
}
