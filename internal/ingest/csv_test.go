// internal/ingest/csv_test.go
package ingest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"leadscore/internal/common/logger"
)

func writeTempCSV(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFile_MapsAliasedHeaders(t *testing.T) {
	path := writeTempCSV(t, "leads.csv",
		"Business Name,Address,Zip,City,Phone,Email,Website URL,gmaps_url\n"+
			"Acme Fitness,123 Main St,75205,Dallas,214-555-0100,owner@acme.com,https://acme.com,https://maps.google.com/acme\n")

	loader := NewLoader(logger.NewNoOpLogger())
	leads, err := loader.LoadFile(path)
	require.NoError(t, err)
	require.Len(t, leads, 1)

	lead := leads[0]
	assert.NotEmpty(t, lead.ID)
	assert.Equal(t, "Acme Fitness", lead.BusinessName)
	assert.Equal(t, "123 Main St", lead.Address)
	assert.Equal(t, "75205", lead.ZipCode)
	assert.Equal(t, "Dallas", lead.City)
	assert.Equal(t, "214-555-0100", lead.Phone)
	assert.Equal(t, "owner@acme.com", lead.Email)
	assert.Equal(t, "https://acme.com", lead.Website)
	assert.Equal(t, "https://maps.google.com/acme", lead.MapsURL)
	assert.Equal(t, "leads.csv", lead.SourceFile)
}

func TestLoadFile_ShortRowsAndUnknownColumns(t *testing.T) {
	path := writeTempCSV(t, "partial.csv",
		"name,mystery_column,email\n"+
			"Iron Works Gym,ignored,info@ironworks.com\n"+
			"Short Row Gym\n")

	loader := NewLoader(logger.NewNoOpLogger())
	leads, err := loader.LoadFile(path)
	require.NoError(t, err)
	require.Len(t, leads, 2)

	assert.Equal(t, "info@ironworks.com", leads[0].Email)
	assert.Equal(t, "Short Row Gym", leads[1].BusinessName)
	assert.Empty(t, leads[1].Email)
}

func TestLoadFile_MissingFile(t *testing.T) {
	loader := NewLoader(logger.NewNoOpLogger())
	_, err := loader.LoadFile(filepath.Join(t.TempDir(), "nope.csv"))
	assert.Error(t, err)
}

func TestBatchLoad_SkipsBadFilesAndCombines(t *testing.T) {
	good1 := writeTempCSV(t, "a.csv", "name\nAlpha Gym\n")
	good2 := writeTempCSV(t, "b.csv", "name\nBeta Gym\nGamma Gym\n")
	missing := filepath.Join(t.TempDir(), "missing.csv")

	loader := NewLoader(logger.NewNoOpLogger())
	leads := loader.BatchLoad([]string{good1, missing, good2})

	require.Len(t, leads, 3)
	assert.Equal(t, "Alpha Gym", leads[0].BusinessName)
	assert.Equal(t, "a.csv", leads[0].SourceFile)
	assert.Equal(t, "Beta Gym", leads[1].BusinessName)
	assert.Equal(t, "b.csv", leads[2].SourceFile)
}
