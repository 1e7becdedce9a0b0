package refdata

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gocarina/gocsv"
	"github.com/xuri/excelize/v2"
)

// Chart-of-accounts column names as exported from the accounting system.
const (
	chartSheetName = "ChartofAccounts"
	numberColumn   = "Number"
	accountColumn  = "Account (invoices)"
)

// Account is one row of the ledger-code catalog.
type Account struct {
	Number string // GL code
	Name   string // invoice-facing account name
}

type chartRow struct {
	Number  string `csv:"Number"`
	Account string `csv:"Account (invoices)"`
}

// LoadChart reads the ledger-code catalog from the ChartofAccounts sheet
// (falling back to the first sheet) of the workbook, or from a CSV with
// the same columns. Rows missing either value are dropped.
func LoadChart(path string) ([]Account, error) {
	var accounts []Account
	var err error
	if strings.EqualFold(filepath.Ext(path), ".csv") {
		accounts, err = chartFromCSV(path)
	} else {
		accounts, err = chartFromXLSX(path)
	}
	if err != nil {
		return nil, err
	}
	if len(accounts) == 0 {
		return nil, fmt.Errorf("chart of accounts %s contains no usable rows", path)
	}
	return accounts, nil
}

func chartFromXLSX(path string) ([]Account, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open chart workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("chart workbook %s has no sheets", path)
	}
	sheet := sheets[0]
	for _, s := range sheets {
		if s == chartSheetName {
			sheet = s
			break
		}
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read chart sheet %s: %w", sheet, err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	numberCol, accountCol := -1, -1
	for i, h := range rows[0] {
		switch strings.TrimSpace(h) {
		case numberColumn:
			numberCol = i
		case accountColumn:
			accountCol = i
		}
	}
	if numberCol < 0 || accountCol < 0 {
		return nil, fmt.Errorf("chart sheet %s is missing %q or %q columns", sheet, numberColumn, accountColumn)
	}

	cell := func(row []string, idx int) string {
		if idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	var accounts []Account
	for _, row := range rows[1:] {
		number := cell(row, numberCol)
		name := cell(row, accountCol)
		if number == "" || name == "" {
			continue
		}
		accounts = append(accounts, Account{Number: number, Name: name})
	}
	return accounts, nil
}

func chartFromCSV(path string) ([]Account, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open chart csv: %w", err)
	}
	defer f.Close()

	var rows []chartRow
	if err := gocsv.Unmarshal(f, &rows); err != nil {
		return nil, fmt.Errorf("parse chart csv: %w", err)
	}

	var accounts []Account
	for _, r := range rows {
		number := strings.TrimSpace(r.Number)
		name := strings.TrimSpace(r.Account)
		if number == "" || name == "" {
			continue
		}
		accounts = append(accounts, Account{Number: number, Name: name})
	}
	return accounts, nil
}
