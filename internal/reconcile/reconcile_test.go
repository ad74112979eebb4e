package reconcile

import (
	"testing"

	"github.com/mvillan/patterndrill/internal/domain"
	"github.com/mvillan/patterndrill/internal/testutil"
	"github.com/stretchr/testify/assert"
)

func TestIsRecommended_Solo(t *testing.T) {
	r := New(testutil.NewTestCatalog())

	assert.True(t, r.IsRecommended(domain.FilterSolo, "Two Pointers", "Opposite Ends"))
	assert.False(t, r.IsRecommended(domain.FilterSolo, "Two Pointers", "Same Direction"))

	// "Fixed size window" phrase covers the Fixed Size subcategory only.
	assert.True(t, r.IsRecommended(domain.FilterSolo, "Sliding Window", "Fixed Size"))
	assert.False(t, r.IsRecommended(domain.FilterSolo, "Sliding Window", "Variable Size"))
}

func TestIsRecommended_SoloSectionNamesAreExact(t *testing.T) {
	r := New(testutil.NewTestCatalog())

	// The solo catalogs share section names verbatim, so correspondence is
	// strict; a case difference means no filter section pairs up.
	assert.False(t, r.IsRecommended(domain.FilterSolo, "two pointers", "Opposite Ends"))
}

func TestIsRecommended_HybridLooseSections(t *testing.T) {
	r := New(testutil.NewTestCatalog())

	// Filter section "A. ARRAY / WINDOW / SUM HYBRIDS" pairs with the
	// library's "A. Array / Window / Sum Hybrids" despite the casing, and
	// the phrase components match regardless of "+" order.
	assert.True(t, r.IsRecommended(domain.FilterHybrid, "A. Array / Window / Sum Hybrids", "Sliding Window + Hashing"))
	assert.False(t, r.IsRecommended(domain.FilterHybrid, "A. Array / Window / Sum Hybrids", "Two Pointers + Binary Search"))
}

func TestIsRecommended_UnresolvableInputs(t *testing.T) {
	r := New(testutil.NewTestCatalog())

	assert.False(t, r.IsRecommended(domain.FilterSolo, "", "Opposite Ends"))
	assert.False(t, r.IsRecommended(domain.FilterSolo, "Two Pointers", ""))
	assert.False(t, r.IsRecommended(domain.FilterID("bogus"), "Two Pointers", "Opposite Ends"))
	assert.False(t, r.IsRecommended(domain.FilterSolo, "No Such Section", "Opposite Ends"))
}

func TestIsRecommended_MissingFilterPart(t *testing.T) {
	cat := &domain.Catalog{Parts: []domain.Part{{Name: domain.PartSoloPatterns}}}
	r := New(cat)

	assert.False(t, r.IsRecommended(domain.FilterSolo, "Two Pointers", "Opposite Ends"))
}

func TestEmphasisPhrases_FirstNonEmptySynonymWins(t *testing.T) {
	sec := &domain.Section{
		Name: "Heaps",
		Subcategories: []domain.Subcategory{
			{Name: "SKIP", Questions: []string{"ignored"}},
			{Name: "DO (IMPORTANT)", Questions: []string{"second choice"}},
			{Name: "DO", Questions: []string{"first choice"}},
		},
	}

	got := emphasisPhrases(sec, emphasisSynonyms)
	assert.Equal(t, []string{"first choice"}, got)
}

func TestEmphasisPhrases_EmptyBucketIsSkipped(t *testing.T) {
	sec := &domain.Section{
		Name: "Heaps",
		Subcategories: []domain.Subcategory{
			{Name: "DO"},
			{Name: "DO (IMPORTANT)", Questions: []string{"fallback"}},
		},
	}

	got := emphasisPhrases(sec, emphasisSynonyms)
	assert.Equal(t, []string{"fallback"}, got)
}

func TestEmphasisPhrases_NoRecognizedBucket(t *testing.T) {
	sec := &domain.Section{
		Name:          "Heaps",
		Subcategories: []domain.Subcategory{{Name: "SKIP", Questions: []string{"x"}}},
	}

	assert.Nil(t, emphasisPhrases(sec, emphasisSynonyms))
}

func TestFilterForSource(t *testing.T) {
	id, ok := FilterForSource(domain.PartSoloPatterns)
	assert.True(t, ok)
	assert.Equal(t, domain.FilterSolo, id)

	id, ok = FilterForSource(domain.PartHybridPatterns)
	assert.True(t, ok)
	assert.Equal(t, domain.FilterHybrid, id)

	_, ok = FilterForSource(domain.PartSoloFilter)
	assert.False(t, ok)
}

func TestIsFilterPart(t *testing.T) {
	assert.True(t, IsFilterPart(domain.PartSoloFilter))
	assert.True(t, IsFilterPart(domain.PartHybridFilter))
	assert.False(t, IsFilterPart(domain.PartSoloPatterns))
	assert.False(t, IsFilterPart("PART 5: UNKNOWN"))
}
