package reconcile

import (
	"regexp"
	"strings"
)

// The two catalogs were authored independently with inconsistent casing,
// punctuation and compound naming, so phrase matching is a fixed priority
// list of named heuristics, short-circuiting on the first hit. False
// positives are acceptable; the output is advisory.
type matchRule struct {
	name  string
	match func(phrase, candidate string) bool
}

var matchRules = []matchRule{
	{"exact", matchExact},
	{"substring", matchSubstring},
	{"qualifier-keyword", matchQualifierKeyword},
	{"separator-base", matchSeparatorBase},
	{"hybrid-components", matchHybridComponents},
}

// phraseMatches reports whether a normalized emphasis phrase refers to a
// normalized subcategory name under any rule.
func phraseMatches(phrase, candidate string) bool {
	if phrase == "" || candidate == "" {
		return false
	}
	for _, r := range matchRules {
		if r.match(phrase, candidate) {
			return true
		}
	}
	return false
}

func matchExact(phrase, candidate string) bool {
	return phrase == candidate
}

// matchSubstring accepts containment in either direction. A "+"-joined label
// is never satisfied by a plain fragment: "sliding window + prefix sum" does
// not recommend "sliding window" on containment alone; that case belongs to
// the hybrid-components rule, which requires every component.
func matchSubstring(phrase, candidate string) bool {
	return containsWhole(candidate, phrase) || containsWhole(phrase, candidate)
}

func containsWhole(container, containee string) bool {
	if !strings.Contains(container, containee) {
		return false
	}
	if strings.Contains(container, "+") && !strings.Contains(containee, "+") {
		return false
	}
	return true
}

// qualifierKeywords is the recognized vocabulary of parenthetical qualifiers
// used by combined emphasis phrases like "Two Pointers (Opposite, Same,
// Partitioning)". Catalog-specific, not a general taxonomy.
var qualifierKeywords = regexp.MustCompile(`\b(opposite|same|partitioning|fixed|variable|max|min|count|frequency|counting|lookup|prefix|grouping|bucketing|classic|lower|upper|rotated|peak|valley|matching|monotonic|increasing|decreasing|index|top|kth|streaming|online|scheduling|interval|operations|overlap|greedy)\b`)

// matchQualifierKeyword handles combined phrases: the phrase base before the
// parenthetical must appear in the candidate, and at least one recognized
// qualifier from the phrase must also appear in the candidate. This lets
// "Two Pointers (Opposite, Same, Partitioning)" recommend
// "Two Pointers - Opposite Ends".
func matchQualifierKeyword(phrase, candidate string) bool {
	base := phraseBase(phrase)
	if base == "" || !strings.Contains(candidate, base) {
		return false
	}
	for _, kw := range qualifierKeywords.FindAllString(phrase, -1) {
		if strings.Contains(candidate, kw) {
			return true
		}
	}
	return false
}

// matchSeparatorBase strips the candidate at its first dash-like separator
// and accepts when the phrase mentions that base, covering subcategory names
// like "Binary Search - Rotated Array" against a phrase naming the family.
func matchSeparatorBase(phrase, candidate string) bool {
	base := candidateBase(candidate)
	if base == "" || base == candidate {
		return false
	}
	return strings.Contains(phrase, base)
}

// matchHybridComponents decomposes "+"-joined labels and requires every
// component of one side to appear in the other, in either order. This lets
// "Sliding Window + Prefix Sum" match "Prefix Sum + Sliding Window".
func matchHybridComponents(phrase, candidate string) bool {
	if strings.Contains(phrase, "+") && componentsContained(phrase, candidate) {
		return true
	}
	if strings.Contains(candidate, "+") && componentsContained(candidate, phrase) {
		return true
	}
	return false
}

func componentsContained(hybrid, target string) bool {
	for _, c := range splitComponents(hybrid) {
		if c == "" || !strings.Contains(target, c) {
			return false
		}
	}
	return true
}
