package catalog

import (
	_ "embed"

	"github.com/mvillan/patterndrill/internal/domain"
)

//go:embed data/catalog.json
var defaultCatalog []byte

// Default returns the catalog shipped with the binary.
func Default() (*domain.Catalog, []Warning, error) {
	return Parse(defaultCatalog)
}
