package markdown

import (
	"strconv"

	"github.com/yuin/goldmark/ast"
)

// anchorIDs is a goldmark parser.IDs that names headings with Anchor, so
// rendered ids line up with the sidebar's subtopic links. Repeats get -1, -2...
type anchorIDs struct {
	seen map[string]struct{}
}

func newAnchorIDs() *anchorIDs {
	return &anchorIDs{seen: make(map[string]struct{})}
}

func (s *anchorIDs) Generate(value []byte, kind ast.NodeKind) []byte {
	base := Anchor(string(value))
	if base == "" {
		base = "heading"
	}
	id := base
	for i := 1; ; i++ {
		if _, taken := s.seen[id]; !taken {
			break
		}
		id = base + "-" + strconv.Itoa(i)
	}
	s.seen[id] = struct{}{}
	return []byte(id)
}

func (s *anchorIDs) Put(value []byte) {
	s.seen[string(value)] = struct{}{}
}
