package formatter

import (
	"fmt"
	"strings"

	"github.com/mvillan/patterndrill/internal/domain"
	"github.com/mvillan/patterndrill/internal/reconcile"
)

// ChecklistData bundles what the list view needs: the part to render, the
// account's completion map, and the reconciler for recommendation badges.
type ChecklistData struct {
	Part       *domain.Part
	Completion domain.CompletionMap
	Reconciler *reconcile.Reconciler
}

// FormatPartChecklist renders one part as an indented checklist. Pattern
// library subcategories referenced by their interview filter get a badge;
// filter parts render their emphasis phrases as study topics instead of
// checkboxes.
func FormatPartChecklist(data ChecklistData) string {
	var b strings.Builder
	b.WriteString(Header(data.Part.Name))
	b.WriteString("\n")

	if reconcile.IsFilterPart(data.Part.Name) {
		formatFilterPart(&b, data.Part)
		return b.String()
	}

	filter, hasFilter := reconcile.FilterForSource(data.Part.Name)

	for i := range data.Part.Sections {
		sec := &data.Part.Sections[i]
		done, total := sectionTally(sec, data.Completion)
		fmt.Fprintf(&b, "\n%s %s\n", Bold(sec.Name), Dim(fmt.Sprintf("(%d/%d)", done, total)))

		for _, q := range sec.Questions {
			fmt.Fprintf(&b, "  %s %s\n", Checkbox(data.Completion.Completed(q)), q)
		}
		for j := range sec.Subcategories {
			sub := &sec.Subcategories[j]
			label := StyleBlue.Render(sub.Name)
			if hasFilter && data.Reconciler.IsRecommended(filter, sec.Name, sub.Name) {
				label += "  " + RecommendedBadge()
			}
			fmt.Fprintf(&b, "  %s\n", label)
			for _, q := range sub.Questions {
				fmt.Fprintf(&b, "    %s %s\n", Checkbox(data.Completion.Completed(q)), q)
			}
		}
	}
	return b.String()
}

func formatFilterPart(b *strings.Builder, part *domain.Part) {
	for i := range part.Sections {
		sec := &part.Sections[i]
		fmt.Fprintf(b, "\n%s\n", Bold(sec.Name))
		for j := range sec.Subcategories {
			sub := &sec.Subcategories[j]
			bucket := StylePurple.Render(sub.Name)
			if strings.HasPrefix(strings.ToUpper(sub.Name), "DO") {
				bucket = StyleYellow.Render(sub.Name)
			}
			fmt.Fprintf(b, "  %s\n", bucket)
			for _, topic := range sub.Questions {
				fmt.Fprintf(b, "    • %s\n", topic)
			}
		}
	}
}

func sectionTally(sec *domain.Section, m domain.CompletionMap) (done, total int) {
	for _, q := range sec.Questions {
		total++
		if m.Completed(q) {
			done++
		}
	}
	for i := range sec.Subcategories {
		for _, q := range sec.Subcategories[i].Questions {
			total++
			if m.Completed(q) {
				done++
			}
		}
	}
	return done, total
}
