package sidebar

import (
	"sync"

	"github.com/imnaval/webnotes/internal/content"
)

// State of one sidebar group.
type State int

const (
	Collapsed State = iota
	Expanded
)

func (s State) String() string {
	if s == Expanded {
		return "expanded"
	}
	return "collapsed"
}

// ActionKind says what a click on a top-level link results in.
type ActionKind int

const (
	// ActionExpand opens the clicked group's subtopics in place.
	ActionExpand ActionKind = iota
	// ActionNavigate follows the link to the entry's note view.
	ActionNavigate
)

// Action is the outcome of a toggle.
type Action struct {
	Kind ActionKind
	Href string
}

// GroupKey identifies a sidebar group across both sections.
type GroupKey struct {
	Kind content.Kind `json:"kind"`
	ID   string       `json:"id"`
}

// Accordion tracks which group of a sidebar is open. At most one group is
// expanded at a time, across both sections.
type Accordion struct {
	sb *Sidebar

	mu   sync.Mutex
	open *GroupKey
}

// NewAccordion returns an accordion with every group collapsed.
func NewAccordion(sb *Sidebar) *Accordion {
	return &Accordion{sb: sb}
}

// ToggleSubtopics handles a click on a notes entry.
func (a *Accordion) ToggleSubtopics(id string) Action {
	return a.toggle(GroupKey{Kind: content.KindNotes, ID: id})
}

// ToggleInterviewSubtopics handles a click on an interview entry.
func (a *Accordion) ToggleInterviewSubtopics(id string) Action {
	return a.toggle(GroupKey{Kind: content.KindInterview, ID: id})
}

// toggle collapses every group, then expands key unless it was already open
// or has no subtopics; in those cases the click navigates instead.
func (a *Accordion) toggle(key GroupKey) Action {
	a.mu.Lock()
	defer a.mu.Unlock()

	wasOpen := a.open != nil && *a.open == key
	a.open = nil

	node, ok := a.sb.Find(key.Kind, key.ID)
	if ok && node.Expandable && !wasOpen {
		a.open = &key
		return Action{Kind: ActionExpand}
	}
	return Action{Kind: ActionNavigate, Href: NoteURL(key.Kind, key.ID, a.sb.Language)}
}

// Reveal opens the group of the entry being viewed, if it has subtopics.
func (a *Accordion) Reveal(kind content.Kind, id string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if node, ok := a.sb.Find(kind, id); ok && node.Expandable {
		a.open = &GroupKey{Kind: kind, ID: id}
	}
}

// State returns the state of one group.
func (a *Accordion) State(kind content.Kind, id string) State {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.open != nil && *a.open == (GroupKey{Kind: kind, ID: id}) {
		return Expanded
	}
	return Collapsed
}

// Open returns the expanded group, if any.
func (a *Accordion) Open() (GroupKey, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.open == nil {
		return GroupKey{}, false
	}
	return *a.open, true
}
