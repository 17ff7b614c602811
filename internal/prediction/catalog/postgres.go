// internal/prediction/catalog/postgres.go
package catalog

import (
	"context"
	"database/sql"

	"github.com/lib/pq"

	"prediction-service/internal/common/config"
	"prediction-service/internal/common/errors"
	"prediction-service/internal/models"
)

const selectUniversitiesQuery = `
SELECT name, ranking, min_gpa, min_gre_total, min_toefl, min_ielts,
       acceptance_rate, selectivity, location, type, programs
FROM university_requirements
ORDER BY ranking ASC`

// LoadFromPostgres builds the catalog from the university_requirements table.
// Entries come back in ranking order, which becomes the catalog order.
func LoadFromPostgres(ctx context.Context, db *sql.DB) (*Catalog, error) {
	rows, err := db.QueryContext(ctx, selectUniversitiesQuery)
	if err != nil {
		return nil, errors.NewCatalogLoadError("postgres", err)
	}
	defer rows.Close()

	var entries []models.UniversityRequirement
	for rows.Next() {
		var u models.UniversityRequirement
		if err := rows.Scan(
			&u.Name, &u.Ranking, &u.MinGPA, &u.MinGRETotal, &u.MinTOEFL, &u.MinIELTS,
			&u.AcceptanceRate, &u.Selectivity, &u.Location, &u.Type, pq.Array(&u.Programs),
		); err != nil {
			return nil, errors.NewCatalogLoadError("postgres", err)
		}
		entries = append(entries, u)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.NewCatalogLoadError("postgres", err)
	}

	return New(entries)
}

// Load selects the configured source. The postgres handle is only required
// for source=postgres.
func Load(ctx context.Context, cfg config.CatalogConfig, db *sql.DB) (*Catalog, error) {
	switch cfg.Source {
	case "file":
		return LoadFromFile(cfg.Path)
	case "postgres":
		return LoadFromPostgres(ctx, db)
	default:
		return LoadStatic()
	}
}
