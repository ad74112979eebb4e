package domain

// FilterID names one of the two interview-filter reconciliations.
type FilterID string

const (
	// FilterSolo reconciles the solo interview filter against the solo
	// pattern library.
	FilterSolo FilterID = "solo"
	// FilterHybrid reconciles the hybrid interview filter against the
	// hybrid pattern library.
	FilterHybrid FilterID = "hybrid"
)

// Well-known part names in the shipped catalog.
const (
	PartSoloPatterns   = "PART 1: SOLO PATTERNS"
	PartHybridPatterns = "PART 2: HYBRID PATTERNS"
	PartSoloFilter     = "PART 3: SOLO INTERVIEW FILTER"
	PartHybridFilter   = "PART 4: HYBRID INTERVIEW FILTER"
)
