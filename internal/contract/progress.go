package contract

import "github.com/mvillan/patterndrill/internal/domain"

// ProgressSnapshot is the wire shape of one account's completion map, also
// used by the import/export files.
type ProgressSnapshot struct {
	CompletedQuestions domain.CompletionMap `json:"completedQuestions"`
}

// ToggleResult echoes a toggle: the title, its new state, and the full
// updated map so the caller can refresh its cached copy in one round trip.
type ToggleResult struct {
	Question           string               `json:"question"`
	Completed          bool                 `json:"completed"`
	CompletedQuestions domain.CompletionMap `json:"completedQuestions"`
}
