package dataset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCSV = `company_name,website,industry,revenue,scraped_content
"Summit Plastics, Inc.",summitplastics.com,Plastics,$12M,"About us. We make extruded parts.
Founded in 1998."
Acme Staffing LLC,acmestaffing.com,Staffing,,Staffing services for light industrial clients.
,,,,
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadRecords(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "scraped_companies_20260801_120000.csv", sampleCSV)

	records, err := LoadRecords(path)
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "Summit Plastics, Inc.", records[0].CompanyName)
	assert.Contains(t, records[0].ScrapedContent, "Founded in 1998")
	assert.Equal(t, "Acme Staffing LLC", records[1].CompanyName)
	assert.Equal(t, "", records[1].Revenue)
}

func TestLoadRecords_ShortRows(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "scraped_companies_1.csv",
		"company_name,website,industry,revenue,scraped_content\nBare Name\n")

	records, err := LoadRecords(path)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Bare Name", records[0].CompanyName)
	assert.Equal(t, "", records[0].Website)
}

func TestLoadRecords_MissingRequiredColumn(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "bad.csv", "name,notes\nfoo,bar\n")

	_, err := LoadRecords(path)
	var le *LoadError
	require.ErrorAs(t, err, &le)
	assert.Contains(t, le.Message, "company_name")
}

func TestFindLatest(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "scraped_companies_20260701_090000.csv", "company_name\n")
	newest := writeFile(t, dir, "scraped_companies_20260815_090000.csv", "company_name\n")
	writeFile(t, dir, "unrelated.csv", "company_name\n")

	path, err := FindLatest(dir)
	require.NoError(t, err)
	assert.Equal(t, newest, path)
}

func TestFindLatest_Empty(t *testing.T) {
	_, err := FindLatest(t.TempDir())
	var le *LoadError
	require.ErrorAs(t, err, &le)
}
