package formatter

import (
	"fmt"
	"strings"

	"github.com/mvillan/patterndrill/internal/contract"
	"github.com/mvillan/patterndrill/internal/domain"
)

const statsBarWidth = 24

// FormatStats renders the stats overview: overall progress, per-part bars,
// and the interview-filter counters.
func FormatStats(o *contract.StatsOverview) string {
	var b strings.Builder

	b.WriteString(Header(fmt.Sprintf("Progress - %s", o.Account)))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "%s %s\n", Bold("Overall"), Ratio(o.CompletedQuestions, o.TotalQuestions, statsBarWidth))

	if len(o.Parts) > 0 {
		b.WriteString("\n")
		for _, p := range o.Parts {
			fmt.Fprintf(&b, "%-28s %s\n", p.Part, Ratio(p.Completed, p.Total, statsBarWidth))
		}
	}

	if len(o.Filters) > 0 {
		b.WriteString("\n")
		b.WriteString(Bold("Interview filters (recommended study)"))
		b.WriteString("\n")
		for _, f := range o.Filters {
			fmt.Fprintf(&b, "%-28s %s %s\n",
				filterLabel(f.Filter),
				Ratio(f.Completed, f.Implied, statsBarWidth),
				Dim("implied"))
		}
	}

	return b.String()
}

func filterLabel(f domain.FilterID) string {
	switch f {
	case domain.FilterSolo:
		return "Solo filter"
	case domain.FilterHybrid:
		return "Hybrid filter"
	default:
		return string(f)
	}
}
