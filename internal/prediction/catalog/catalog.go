// internal/prediction/catalog/catalog.go
package catalog

import (
	"fmt"
	"strings"

	"prediction-service/internal/common/errors"
	"prediction-service/internal/models"
)

// Catalog is the immutable, ordered set of universities predictions run
// against. It is loaded once at startup; lookups are case-insensitive.
type Catalog struct {
	universities []models.UniversityRequirement
	index        map[string]int
}

// New validates the entries and builds the lookup index. Catalog order is
// preserved; it is the deterministic tie-breaker for ranking.
func New(entries []models.UniversityRequirement) (*Catalog, error) {
	index := make(map[string]int, len(entries))
	for i, u := range entries {
		if strings.TrimSpace(u.Name) == "" {
			return nil, errors.NewCatalogLoadError("validate", fmt.Errorf("entry %d has an empty name", i))
		}
		if u.Selectivity < 0.0 || u.Selectivity > 1.0 {
			return nil, errors.NewCatalogLoadError("validate", fmt.Errorf("university %q selectivity %v out of [0,1]", u.Name, u.Selectivity))
		}
		key := strings.ToLower(u.Name)
		if _, dup := index[key]; dup {
			return nil, errors.NewCatalogLoadError("validate", fmt.Errorf("duplicate university %q", u.Name))
		}
		index[key] = i
	}

	return &Catalog{universities: entries, index: index}, nil
}

// All returns the universities in catalog order. Callers must not mutate the
// returned slice.
func (c *Catalog) All() []models.UniversityRequirement {
	return c.universities
}

// FindByName looks a university up by case-insensitive name.
func (c *Catalog) FindByName(name string) (*models.UniversityRequirement, bool) {
	i, ok := c.index[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, false
	}
	return &c.universities[i], true
}

// Size returns the number of universities loaded.
func (c *Catalog) Size() int {
	return len(c.universities)
}
