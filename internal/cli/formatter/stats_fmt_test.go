package formatter

import (
	"testing"

	"github.com/mvillan/patterndrill/internal/contract"
	"github.com/mvillan/patterndrill/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestFormatStats(t *testing.T) {
	out := FormatStats(&contract.StatsOverview{
		Account:            "tester",
		TotalQuestions:     60,
		CompletedQuestions: 15,
		Parts: []contract.PartProgress{
			{Part: domain.PartSoloPatterns, Total: 44, Completed: 10},
			{Part: domain.PartHybridPatterns, Total: 16, Completed: 5},
		},
		Filters: []contract.FilterProgress{
			{Filter: domain.FilterSolo, Implied: 20, Completed: 4},
			{Filter: domain.FilterHybrid, Implied: 8, Completed: 1},
		},
	})

	assert.Contains(t, out, "TESTER")
	assert.Contains(t, out, "15/60")
	assert.Contains(t, out, domain.PartSoloPatterns)
	assert.Contains(t, out, "10/44")
	assert.Contains(t, out, "Solo filter")
	assert.Contains(t, out, "4/20")
	assert.Contains(t, out, "Hybrid filter")
	assert.Contains(t, out, "implied")
}

func TestFormatStats_NoFilters(t *testing.T) {
	out := FormatStats(&contract.StatsOverview{Account: "tester", TotalQuestions: 1})

	assert.NotContains(t, out, "Interview filters")
}
