package reconcile

import (
	"regexp"
	"strings"
)

// normalize lowercases and trims surrounding whitespace. Every comparison in
// this package happens on normalized strings.
func normalize(s string) string {
	return strings.TrimSpace(strings.ToLower(s))
}

// letterPrefix matches a leading heading marker like "a. " on a normalized
// section name. The two catalogs disagree on whether the marker is present.
var letterPrefix = regexp.MustCompile(`^[a-z]\.\s*`)

// stripLetterPrefix removes a leading "a. "-style marker from a normalized
// section name.
func stripLetterPrefix(s string) string {
	return strings.TrimSpace(letterPrefix.ReplaceAllString(s, ""))
}

// phraseBase returns the part of an emphasis phrase before any parenthetical
// or comma, e.g. "two pointers" from "two pointers (opposite, same)".
func phraseBase(phrase string) string {
	base := strings.FieldsFunc(phrase, func(r rune) bool {
		return r == '(' || r == ')' || r == ','
	})
	if len(base) == 0 {
		return ""
	}
	return strings.TrimSpace(base[0])
}

// candidateBase returns the part of a subcategory name before the first
// dash-like separator, e.g. "two pointers" from "two pointers - opposite ends".
func candidateBase(candidate string) string {
	idx := strings.IndexAny(candidate, "-–—")
	if idx < 0 {
		return candidate
	}
	return strings.TrimSpace(candidate[:idx])
}

// splitComponents splits a hybrid label on "+" and trims each component.
func splitComponents(s string) []string {
	raw := strings.Split(s, "+")
	out := make([]string, 0, len(raw))
	for _, c := range raw {
		out = append(out, strings.TrimSpace(c))
	}
	return out
}
