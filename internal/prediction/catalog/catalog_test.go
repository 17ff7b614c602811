// internal/prediction/catalog/catalog_test.go
package catalog

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"prediction-service/internal/common/errors"
	"prediction-service/internal/models"
)

func createTestEntries() []models.UniversityRequirement {
	return []models.UniversityRequirement{
		{Name: "Alpha University", Ranking: 1, MinGPA: 3.5, MinGRETotal: 320, MinTOEFL: 100, MinIELTS: 7.0, AcceptanceRate: 0.10, Selectivity: 0.90, Location: "Boston, MA", Type: "Private", Programs: []string{"computer science"}},
		{Name: "Beta State", Ranking: 2, MinGPA: 3.0, MinGRETotal: 300, MinTOEFL: 85, MinIELTS: 6.5, AcceptanceRate: 0.40, Selectivity: 0.60, Location: "Austin, TX", Type: "Public", Programs: []string{"engineering", "business"}},
	}
}

func TestNew_ValidEntries(t *testing.T) {
	c, err := New(createTestEntries())
	require.NoError(t, err)

	assert.Equal(t, 2, c.Size())
	assert.Equal(t, "Alpha University", c.All()[0].Name)
}

func TestNew_RejectsEmptyName(t *testing.T) {
	entries := createTestEntries()
	entries[1].Name = "   "

	_, err := New(entries)
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeCatalogLoadFailed, errors.AsStandardError(err).Code)
}

func TestNew_RejectsSelectivityOutOfRange(t *testing.T) {
	entries := createTestEntries()
	entries[0].Selectivity = 1.2

	_, err := New(entries)
	require.Error(t, err)
}

func TestNew_RejectsDuplicateNames(t *testing.T) {
	entries := createTestEntries()
	entries[1].Name = "alpha university"

	_, err := New(entries)
	require.Error(t, err)
}

func TestFindByName_CaseInsensitive(t *testing.T) {
	c, err := New(createTestEntries())
	require.NoError(t, err)

	u, ok := c.FindByName("ALPHA university")
	require.True(t, ok)
	assert.Equal(t, "Alpha University", u.Name)

	u, ok = c.FindByName("  Beta State ")
	require.True(t, ok)
	assert.Equal(t, 2, u.Ranking)

	_, ok = c.FindByName("Gamma Tech")
	assert.False(t, ok)
}

func TestLoadStatic(t *testing.T) {
	c, err := LoadStatic()
	require.NoError(t, err)

	assert.Equal(t, 30, c.Size())

	mit, ok := c.FindByName("mit")
	require.True(t, ok)
	assert.Equal(t, 1, mit.Ranking)
	assert.Equal(t, 3.8, mit.MinGPA)
	assert.Equal(t, 325, mit.MinGRETotal)
	assert.Contains(t, mit.Programs, "computer science")

	for _, u := range c.All() {
		assert.GreaterOrEqual(t, u.Selectivity, 0.0)
		assert.LessOrEqual(t, u.Selectivity, 1.0)
		assert.NotEmpty(t, u.Programs)
	}
}

func TestLoadFromFile(t *testing.T) {
	entries := createTestEntries()
	data, err := json.Marshal(entries)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "universities.json")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	c, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, 2, c.Size())
}

func TestLoadFromFile_MissingFile(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeCatalogLoadFailed, errors.AsStandardError(err).Code)
}

func TestLoadFromPostgres(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	rows := sqlmock.NewRows([]string{
		"name", "ranking", "min_gpa", "min_gre_total", "min_toefl", "min_ielts",
		"acceptance_rate", "selectivity", "location", "type", "programs",
	}).
		AddRow("Alpha University", 1, 3.5, 320, 100, 7.0, 0.10, 0.90, "Boston, MA", "Private", "{\"computer science\"}").
		AddRow("Beta State", 2, 3.0, 300, 85, 6.5, 0.40, 0.60, "Austin, TX", "Public", "{engineering,business}")

	mock.ExpectQuery("SELECT name, ranking").WillReturnRows(rows)

	c, err := LoadFromPostgres(context.Background(), db)
	require.NoError(t, err)
	assert.Equal(t, 2, c.Size())

	u, ok := c.FindByName("beta state")
	require.True(t, ok)
	assert.Equal(t, []string{"engineering", "business"}, u.Programs)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoadFromPostgres_QueryError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT name, ranking").WillReturnError(assert.AnError)

	_, err = LoadFromPostgres(context.Background(), db)
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeCatalogLoadFailed, errors.AsStandardError(err).Code)
}
