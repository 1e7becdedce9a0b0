// Package refdata loads the two external reference files every run needs:
// the target output column list and the ledger-code catalog. Both are
// loaded once before processing begins and never reloaded.
package refdata

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gocarina/gocsv"
	"github.com/xuri/excelize/v2"
)

// fieldNameLabel is the banner cell some header workbooks carry in row one.
const fieldNameLabel = "Field Name"

type headerRow struct {
	Name string `csv:"Field Name"`
}

// LoadHeaders reads the ordered target column list from the first column
// of the reference workbook (.xlsx) or a one-column CSV with a
// "Field Name" header. The exact names drive the output schema; nothing
// is hardcoded downstream.
func LoadHeaders(path string) ([]string, error) {
	var names []string
	var err error
	if strings.EqualFold(filepath.Ext(path), ".csv") {
		names, err = headersFromCSV(path)
	} else {
		names, err = headersFromXLSX(path)
	}
	if err != nil {
		return nil, err
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("headers reference %s contains no column names", path)
	}
	return names, nil
}

func headersFromXLSX(path string) ([]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open headers workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("headers workbook %s has no sheets", path)
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read headers sheet: %w", err)
	}

	var names []string
	for _, row := range rows {
		if len(row) == 0 {
			continue
		}
		name := strings.TrimSpace(row[0])
		if name == "" {
			continue
		}
		if len(names) == 0 && name == fieldNameLabel {
			continue
		}
		names = append(names, name)
	}
	return names, nil
}

func headersFromCSV(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open headers csv: %w", err)
	}
	defer f.Close()

	var rows []headerRow
	if err := gocsv.Unmarshal(f, &rows); err != nil {
		return nil, fmt.Errorf("parse headers csv: %w", err)
	}

	var names []string
	for _, r := range rows {
		if name := strings.TrimSpace(r.Name); name != "" {
			names = append(names, name)
		}
	}
	return names, nil
}
