package catalog

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/mvillan/patterndrill/internal/domain"
)

// Warning describes an editorial inconsistency in a catalog document. The
// catalog is trusted deploy-time content: inconsistencies degrade to empty
// sections rather than failing the load.
type Warning struct {
	Part    string
	Section string
	Message string
}

func (w Warning) String() string {
	if w.Section == "" {
		return fmt.Sprintf("part %q: %s", w.Part, w.Message)
	}
	return fmt.Sprintf("part %q, section %q: %s", w.Part, w.Section, w.Message)
}

// Load reads and parses a catalog file.
func Load(path string) (*domain.Catalog, []Warning, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("reading catalog file: %w", err)
	}
	return Parse(data)
}

// Parse builds a catalog from raw JSON. Only unparseable JSON is an error;
// shape problems become warnings and the offending section stays in place,
// empty, so rendering order is preserved.
func Parse(data []byte) (*domain.Catalog, []Warning, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, nil, fmt.Errorf("parsing catalog: %w", err)
	}

	var warnings []Warning
	cat := &domain.Catalog{}
	seenParts := make(map[string]bool)

	for _, pd := range doc.Parts {
		if pd.Name == "" {
			warnings = append(warnings, Warning{Part: pd.Name, Message: "part with empty name skipped"})
			continue
		}
		if seenParts[pd.Name] {
			warnings = append(warnings, Warning{Part: pd.Name, Message: "duplicate part name skipped"})
			continue
		}
		seenParts[pd.Name] = true

		part := domain.Part{Name: pd.Name}
		seenSections := make(map[string]bool)
		for _, sd := range pd.Sections {
			if sd.Name == "" {
				warnings = append(warnings, Warning{Part: pd.Name, Message: "section with empty name skipped"})
				continue
			}
			if seenSections[sd.Name] {
				warnings = append(warnings, Warning{Part: pd.Name, Section: sd.Name, Message: "duplicate section name skipped"})
				continue
			}
			seenSections[sd.Name] = true
			part.Sections = append(part.Sections, convertSection(pd.Name, sd, &warnings))
		}
		cat.Parts = append(cat.Parts, part)
	}

	return cat, warnings, nil
}

func convertSection(partName string, sd SectionDoc, warnings *[]Warning) domain.Section {
	sec := domain.Section{Name: sd.Name}
	switch {
	case len(sd.Questions) > 0 && len(sd.Subcategories) > 0:
		*warnings = append(*warnings, Warning{
			Part: partName, Section: sd.Name,
			Message: "section is both flat and nested; treated as empty",
		})
	case len(sd.Questions) > 0:
		sec.Questions = append(sec.Questions, sd.Questions...)
	case len(sd.Subcategories) > 0:
		for _, sub := range sd.Subcategories {
			if sub.Name == "" {
				*warnings = append(*warnings, Warning{
					Part: partName, Section: sd.Name,
					Message: "subcategory with empty name skipped",
				})
				continue
			}
			sec.Subcategories = append(sec.Subcategories, domain.Subcategory{
				Name:      sub.Name,
				Questions: append([]string{}, sub.Questions...),
			})
		}
	default:
		*warnings = append(*warnings, Warning{
			Part: partName, Section: sd.Name,
			Message: "section has neither questions nor subcategories",
		})
	}
	return sec
}
