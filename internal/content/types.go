package content

import (
	"path"
	"strings"
)

// Kind distinguishes the two sidebar sections.
type Kind string

const (
	KindNotes     Kind = "notes"
	KindInterview Kind = "interview"
)

// QueryKey returns the URL parameter that carries an entry identifier of this kind.
func (k Kind) QueryKey() string {
	if k == KindInterview {
		return "interview"
	}
	return "topic"
}

// TopicEntry is one documentation page: display name, relative file path and
// author-curated subtopics.
type TopicEntry struct {
	Name      string   `yaml:"name" json:"name"`
	File      string   `yaml:"file" json:"file"`
	Subtopics []string `yaml:"subtopics,omitempty" json:"subtopics"`
}

// ID is the file name without its .md suffix. It is the value of the topic or
// interview query parameter.
func (e TopicEntry) ID() string {
	return strings.TrimSuffix(path.Base(e.File), ".md")
}

// HasSubtopics reports whether the entry renders as an expandable group.
func (e TopicEntry) HasSubtopics() bool {
	return len(e.Subtopics) > 0
}

func (e TopicEntry) clone() TopicEntry {
	c := e
	if e.Subtopics != nil {
		c.Subtopics = append([]string(nil), e.Subtopics...)
	}
	return c
}
