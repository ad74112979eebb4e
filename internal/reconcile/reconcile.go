package reconcile

import (
	"strings"

	"github.com/mvillan/patterndrill/internal/domain"
)

// emphasisSynonyms is the recognized set of emphasis-bucket names in filter
// sections, in priority order: the first non-empty bucket wins and the rest
// are ignored.
var emphasisSynonyms = []string{
	"DO",
	"DO (IMPORTANT)",
	"DO (VERY IMPORTANT)",
	"DO (HIGH PRIORITY)",
	"DO (MUST DO ALL)",
	"DO (EXTREMELY IMPORTANT)",
}

// binding ties a filter part to the pattern library it references and fixes
// how their section names correspond.
type binding struct {
	filterPart string
	sourcePart string
	synonyms   []string
	// looseSections tolerates casing differences and "A. "-style heading
	// markers when pairing section names. The solo catalogs share exact
	// section names; the hybrid ones do not.
	looseSections bool
}

var bindings = map[domain.FilterID]binding{
	domain.FilterSolo: {
		filterPart: domain.PartSoloFilter,
		sourcePart: domain.PartSoloPatterns,
		synonyms:   emphasisSynonyms,
	},
	domain.FilterHybrid: {
		filterPart: domain.PartHybridFilter,
		sourcePart: domain.PartHybridPatterns,
		synonyms:   append(append([]string{}, emphasisSynonyms...), "DO (LIMITED)"),
		looseSections: true,
	},
}

// Reconciler answers which full-catalog subcategories a filter part's
// emphasis phrases refer to. It is pure: no state beyond the injected
// catalog, safe for concurrent use.
type Reconciler struct {
	catalog *domain.Catalog
}

// New builds a Reconciler over an immutable catalog.
func New(catalog *domain.Catalog) *Reconciler {
	return &Reconciler{catalog: catalog}
}

// IsRecommended reports whether the named subcategory of a full-catalog
// section is referenced by the filter's emphasis list. Empty or unresolvable
// inputs yield false, never an error.
func (r *Reconciler) IsRecommended(filter domain.FilterID, sectionName, subcategoryName string) bool {
	if r == nil || r.catalog == nil || sectionName == "" || subcategoryName == "" {
		return false
	}
	b, ok := bindings[filter]
	if !ok {
		return false
	}
	filterPart := r.catalog.Part(b.filterPart)
	if filterPart == nil {
		return false
	}

	candidate := normalize(subcategoryName)
	for i := range filterPart.Sections {
		fs := &filterPart.Sections[i]
		if !b.sectionsCorrespond(fs.Name, sectionName) {
			continue
		}
		for _, phrase := range emphasisPhrases(fs, b.synonyms) {
			if phraseMatches(normalize(phrase), candidate) {
				return true
			}
		}
	}
	return false
}

// sectionsCorrespond pairs a filter section name with a full-catalog section
// name. Exact match for solo; the hybrid catalogs additionally tolerate a
// letter/period heading marker on either side and substring containment
// after stripping it.
func (b binding) sectionsCorrespond(filterName, sourceName string) bool {
	if !b.looseSections {
		return filterName == sourceName
	}
	nf, ns := normalize(filterName), normalize(sourceName)
	if nf == ns {
		return true
	}
	sf, ss := stripLetterPrefix(nf), stripLetterPrefix(ns)
	if sf == ss {
		return true
	}
	return strings.Contains(nf, ss) || strings.Contains(ns, sf)
}

// emphasisPhrases resolves a filter section's emphasis list: the first
// synonym bucket holding any phrases wins. A section with no recognized
// bucket contributes nothing.
func emphasisPhrases(fs *domain.Section, synonyms []string) []string {
	for _, syn := range synonyms {
		if sc := fs.Subcategory(syn); sc != nil && len(sc.Questions) > 0 {
			return sc.Questions
		}
	}
	return nil
}

// FilterForSource returns the filter reconciled against the named full
// catalog part, if any. The presentation layer uses this to decide which
// filter drives recommendation badges for a part.
func FilterForSource(partName string) (domain.FilterID, bool) {
	for id, b := range bindings {
		if b.sourcePart == partName {
			return id, true
		}
	}
	return "", false
}

// IsFilterPart reports whether the named part is one of the interview
// filters rather than a pattern library.
func IsFilterPart(partName string) bool {
	for _, b := range bindings {
		if b.filterPart == partName {
			return true
		}
	}
	return false
}
