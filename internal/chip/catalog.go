package chip

import (
	_ "embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"
)

// The catalog ships as an embedded YAML document with one dataset per top
// level key. The basic dataset contains the coarse memory map of each chip,
// the expert dataset splits chips into finer grained sub regions where the
// data is available.
//
//go:embed catalog.yaml
var catalogData []byte

var loadCatalog = sync.OnceValues(func() (map[string][]Chip, error) {
	catalogs := map[string][]Chip{}
	if err := yaml.Unmarshal(catalogData, &catalogs); err != nil {
		return nil, fmt.Errorf("parsing chip catalog: %w", err)
	}
	return catalogs, nil
})

// CatalogNames returns the names of the available datasets.
func CatalogNames() []string {
	return []string{"basic", "expert"}
}

func catalogChips(catalog string) ([]Chip, error) {
	catalogs, err := loadCatalog()
	if err != nil {
		return nil, err
	}

	chips, ok := catalogs[catalog]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCatalog, catalog)
	}
	return chips, nil
}
