package reconcile

import "github.com/mvillan/patterndrill/internal/domain"

// CountImplied sums the question-list lengths of every full-catalog
// subcategory referenced by the filter's emphasis phrases.
//
// A subcategory matched by two distinct phrases is counted once per phrase.
// The over-count is deliberate, inherited behavior: totals skew high rather
// than silently deduplicating what two phrases both ask for.
func (r *Reconciler) CountImplied(filter domain.FilterID) int {
	return r.tally(filter, nil)
}

// CountCompleted is CountImplied restricted to titles the completion map
// marks true. For every map m, CountCompleted(f, m) <= CountImplied(f).
func (r *Reconciler) CountCompleted(filter domain.FilterID, m domain.CompletionMap) int {
	if m == nil {
		return 0
	}
	return r.tally(filter, m)
}

// tally walks the filter part once. A nil completion map counts every
// question; otherwise only completed ones. Unresolvable sections, empty
// emphasis lists and flat source sections all contribute zero; nothing here
// is fatal.
func (r *Reconciler) tally(filter domain.FilterID, m domain.CompletionMap) int {
	if r == nil || r.catalog == nil {
		return 0
	}
	b, ok := bindings[filter]
	if !ok {
		return 0
	}
	filterPart := r.catalog.Part(b.filterPart)
	sourcePart := r.catalog.Part(b.sourcePart)
	if filterPart == nil || sourcePart == nil {
		return 0
	}

	total := 0
	for i := range filterPart.Sections {
		fs := &filterPart.Sections[i]
		ss := findSourceSection(sourcePart, fs.Name, b)
		if ss == nil {
			continue
		}
		for _, phrase := range emphasisPhrases(fs, b.synonyms) {
			np := normalize(phrase)
			for j := range ss.Subcategories {
				sc := &ss.Subcategories[j]
				if !phraseMatches(np, normalize(sc.Name)) {
					continue
				}
				if m == nil {
					total += len(sc.Questions)
					continue
				}
				for _, q := range sc.Questions {
					if m[q] {
						total++
					}
				}
			}
		}
	}
	return total
}

// findSourceSection locates the full-catalog section a filter section refers
// to, using the binding's correspondence rule. First match wins.
func findSourceSection(sourcePart *domain.Part, filterSectionName string, b binding) *domain.Section {
	for i := range sourcePart.Sections {
		if b.sectionsCorrespond(filterSectionName, sourcePart.Sections[i].Name) {
			return &sourcePart.Sections[i]
		}
	}
	return nil
}

// TotalQuestions counts the literal titles in the two pattern libraries.
// Filter-part phrases are never questions and never counted.
func (r *Reconciler) TotalQuestions() int {
	if r == nil || r.catalog == nil {
		return 0
	}
	total := 0
	for _, b := range bindings {
		if p := r.catalog.Part(b.sourcePart); p != nil {
			total += p.QuestionCount()
		}
	}
	return total
}

// TotalCompleted counts titles in the two pattern libraries that the map
// marks done. Duplicate titles across parts count once per appearance,
// mirroring TotalQuestions.
func (r *Reconciler) TotalCompleted(m domain.CompletionMap) int {
	if r == nil || r.catalog == nil || m == nil {
		return 0
	}
	total := 0
	for _, b := range bindings {
		p := r.catalog.Part(b.sourcePart)
		if p == nil {
			continue
		}
		for i := range p.Sections {
			s := &p.Sections[i]
			for _, q := range s.Questions {
				if m[q] {
					total++
				}
			}
			for j := range s.Subcategories {
				for _, q := range s.Subcategories[j].Questions {
					if m[q] {
						total++
					}
				}
			}
		}
	}
	return total
}

// PartCounts returns total and completed counts for one catalog part,
// counting every literal title it holds. Useful for per-part progress in the
// stats view; filter parts report their phrase lists' sizes, which callers
// normally exclude.
func (r *Reconciler) PartCounts(partName string, m domain.CompletionMap) (total, completed int) {
	if r == nil || r.catalog == nil {
		return 0, 0
	}
	p := r.catalog.Part(partName)
	if p == nil {
		return 0, 0
	}
	for i := range p.Sections {
		s := &p.Sections[i]
		for _, q := range s.Questions {
			total++
			if m[q] {
				completed++
			}
		}
		for j := range s.Subcategories {
			for _, q := range s.Subcategories[j].Questions {
				total++
				if m[q] {
					completed++
				}
			}
		}
	}
	return total, completed
}
