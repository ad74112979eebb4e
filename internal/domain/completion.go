package domain

// CompletionMap maps a question title to its completed state. Absence is
// equivalent to false; the map is never required to contain every catalog
// title. Titles are the only cross-referencing key in the system: the same
// title appearing in multiple subcategories or parts is the same question.
type CompletionMap map[string]bool

// Completed reports whether the title is marked done.
func (m CompletionMap) Completed(title string) bool {
	return m[title]
}

// Clone returns an independent copy of the map.
func (m CompletionMap) Clone() CompletionMap {
	out := make(CompletionMap, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
