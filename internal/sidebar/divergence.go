package sidebar

// Drift describes an entry whose pre-declared subtopics differ from the
// headings in its file. Declared subtopics still win; this is informational.
type Drift struct {
	Report
	// NotInFile are declared subtopics with no matching heading.
	NotInFile []string
	// NotDeclared are headings missing from the declared list.
	NotDeclared []string
}

// Divergence lists every successfully fetched entry with pre-declared
// subtopics that do not match its file's headings.
func (s *Sidebar) Divergence() []Drift {
	var out []Drift
	for _, r := range s.Reports {
		if r.Err != nil || len(r.Declared) == 0 {
			continue
		}
		notInFile := difference(r.Declared, r.Discovered)
		notDeclared := difference(r.Discovered, r.Declared)
		if len(notInFile) == 0 && len(notDeclared) == 0 {
			continue
		}
		out = append(out, Drift{Report: r, NotInFile: notInFile, NotDeclared: notDeclared})
	}
	return out
}

// Failures returns the reports whose fetch failed.
func (s *Sidebar) Failures() []Report {
	var out []Report
	for _, r := range s.Reports {
		if r.Err != nil {
			out = append(out, r)
		}
	}
	return out
}

// difference returns the elements of a not present in b, keeping a's order.
func difference(a, b []string) []string {
	in := make(map[string]bool, len(b))
	for _, s := range b {
		in[s] = true
	}
	var out []string
	for _, s := range a {
		if !in[s] {
			out = append(out, s)
		}
	}
	return out
}
