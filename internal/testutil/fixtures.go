package testutil

import "github.com/mvillan/patterndrill/internal/domain"

// NewTestCatalog builds a small four-part catalog exercising every shape the
// loader can produce: flat sections, nested subcategories, emphasis buckets
// in the filter parts, and plus-joined hybrid names.
func NewTestCatalog() *domain.Catalog {
	return &domain.Catalog{
		Parts: []domain.Part{
			{
				Name: domain.PartSoloPatterns,
				Sections: []domain.Section{
					{
						Name:      "Warmup",
						Questions: []string{"Reverse String", "FizzBuzz"},
					},
					{
						Name: "Two Pointers",
						Subcategories: []domain.Subcategory{
							{Name: "Opposite Ends", Questions: []string{"Two Sum II", "Valid Palindrome"}},
							{Name: "Same Direction", Questions: []string{"Remove Duplicates"}},
						},
					},
					{
						Name: "Sliding Window",
						Subcategories: []domain.Subcategory{
							{Name: "Fixed Size", Questions: []string{"Max Sum Subarray of Size K"}},
							{Name: "Variable Size", Questions: []string{"Longest Substring Without Repeating Characters"}},
						},
					},
				},
			},
			{
				Name: domain.PartHybridPatterns,
				Sections: []domain.Section{
					{
						Name: "A. Array / Window / Sum Hybrids",
						Subcategories: []domain.Subcategory{
							{Name: "Sliding Window + Hashing", Questions: []string{"Longest Repeating Character Replacement"}},
							{Name: "Two Pointers + Binary Search", Questions: []string{"3Sum Closest"}},
						},
					},
				},
			},
			{
				Name: domain.PartSoloFilter,
				Sections: []domain.Section{
					{
						Name: "Two Pointers",
						Subcategories: []domain.Subcategory{
							{Name: "DO", Questions: []string{"Opposite ends pattern"}},
							{Name: "SKIP", Questions: []string{"Exotic variants"}},
						},
					},
					{
						Name: "Sliding Window",
						Subcategories: []domain.Subcategory{
							{Name: "DO (IMPORTANT)", Questions: []string{"Fixed size window"}},
						},
					},
				},
			},
			{
				Name: domain.PartHybridFilter,
				Sections: []domain.Section{
					{
						Name: "A. ARRAY / WINDOW / SUM HYBRIDS",
						Subcategories: []domain.Subcategory{
							{Name: "DO", Questions: []string{"Hashing + Sliding Window"}},
						},
					},
				},
			},
		},
	}
}
