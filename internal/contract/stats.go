package contract

import "github.com/mvillan/patterndrill/internal/domain"

// PartProgress is the completion tally of one catalog part.
type PartProgress struct {
	Part      string
	Total     int
	Completed int
}

// FilterProgress is the recommended-study tally for one interview filter.
// Implied counts once per matching emphasis phrase, so it can exceed the
// number of distinct questions.
type FilterProgress struct {
	Filter    domain.FilterID
	Implied   int
	Completed int
}

// StatsOverview drives the stats view: overall progress across the two
// pattern libraries plus the per-part and per-filter breakdowns.
type StatsOverview struct {
	Account            string
	TotalQuestions     int
	CompletedQuestions int
	Parts              []PartProgress
	Filters            []FilterProgress
}
