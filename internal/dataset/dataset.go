// Package dataset loads scraped company records produced by the scraping
// collaborator. Files are CSVs named scraped_companies_<timestamp>.csv; the
// lexicographically last file in a directory is the most recent run.
package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/jonathan/outreach-agent/internal/types"
)

// FilePattern matches output files from the scraper.
const FilePattern = "scraped_companies_*.csv"

// LoadError indicates a dataset could not be located or read.
type LoadError struct {
	Path    string
	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("dataset %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("dataset %s: %s", e.Path, e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}

// FindLatest returns the path of the newest scraped dataset in dir. The
// timestamp is embedded in the filename, so lexicographic order is
// chronological order.
func FindLatest(dir string) (string, error) {
	matches, err := filepath.Glob(filepath.Join(dir, FilePattern))
	if err != nil {
		return "", &LoadError{Path: dir, Message: "bad glob pattern", Cause: err}
	}
	if len(matches) == 0 {
		return "", &LoadError{Path: dir, Message: "no scraped dataset found; run the scraper first"}
	}
	sort.Strings(matches)
	return matches[len(matches)-1], nil
}

// LoadRecords reads every company row from a scraped CSV. Rows are taken
// as-is, partial or garbled included; normalization decides what is usable.
func LoadRecords(path string) ([]types.RawCompanyRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Path: path, Message: "failed to open", Cause: err}
	}
	defer func() { _ = f.Close() }()

	reader := csv.NewReader(f)
	// Scraped content contains commas, quotes, and newlines; row widths vary
	// when the scraper was interrupted.
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, &LoadError{Path: path, Message: "file is empty"}
		}
		return nil, &LoadError{Path: path, Message: "failed to read header", Cause: err}
	}
	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.ToLower(strings.TrimSpace(name))] = i
	}
	if _, ok := columns["company_name"]; !ok {
		return nil, &LoadError{Path: path, Message: "missing company_name column"}
	}

	var records []types.RawCompanyRecord
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, &LoadError{Path: path, Message: "failed to read row", Cause: err}
		}
		record := types.RawCompanyRecord{
			CompanyName:    field(row, columns, "company_name"),
			Website:        field(row, columns, "website"),
			Industry:       field(row, columns, "industry"),
			Revenue:        field(row, columns, "revenue"),
			ScrapedContent: field(row, columns, "scraped_content"),
		}
		if record.CompanyName == "" && record.ScrapedContent == "" {
			continue
		}
		records = append(records, record)
	}
	return records, nil
}

func field(row []string, columns map[string]int, name string) string {
	idx, ok := columns[name]
	if !ok || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}
