// internal/prediction/catalog/file.go
package catalog

import (
	"encoding/json"
	"os"

	"prediction-service/internal/common/errors"
	"prediction-service/internal/models"
)

// LoadFromFile builds the catalog from a JSON file holding an array of
// university entries in the same shape as the static database.
func LoadFromFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.NewCatalogLoadError("file", err)
	}

	var entries []models.UniversityRequirement
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, errors.NewCatalogLoadError("file", err)
	}

	return New(entries)
}
