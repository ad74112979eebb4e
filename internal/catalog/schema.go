package catalog

// Document is the top-level JSON structure of a catalog file. Parts,
// sections and questions are arrays of named objects so the authored order
// survives the round trip.
type Document struct {
	Parts []PartDoc `json:"parts"`
}

// PartDoc defines one top-level part in the catalog file.
type PartDoc struct {
	Name     string       `json:"name"`
	Sections []SectionDoc `json:"sections"`
}

// SectionDoc defines a section: flat sections set "questions", nested ones
// set "subcategories". Setting both, or neither, is an editorial mistake the
// loader tolerates by treating the section as empty.
type SectionDoc struct {
	Name          string           `json:"name"`
	Questions     []string         `json:"questions,omitempty"`
	Subcategories []SubcategoryDoc `json:"subcategories,omitempty"`
}

// SubcategoryDoc defines a named question list within a nested section.
type SubcategoryDoc struct {
	Name      string   `json:"name"`
	Questions []string `json:"questions"`
}
