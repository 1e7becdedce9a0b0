package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

const sheetName = "Invoices"

// WriteXLSX writes the dataset as a single-sheet workbook with the same
// headers and cell values as the CSV output.
func WriteXLSX(path string, ds *Dataset) error {
	if err := ensureDir(path); err != nil {
		return err
	}

	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return fmt.Errorf("create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("drop default sheet: %w", err)
	}

	write := func(col, row int, v string) error {
		cell, err := excelize.CoordinatesToCellName(col, row)
		if err != nil {
			return err
		}
		return f.SetCellValue(sheetName, cell, v)
	}

	for i, h := range ds.Headers {
		if err := write(i+1, 1, h); err != nil {
			return fmt.Errorf("write header cell: %w", err)
		}
	}
	for r, row := range ds.Rows {
		for c, v := range row {
			if err := write(c+1, r+2, v); err != nil {
				return fmt.Errorf("write cell: %w", err)
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save xlsx %s: %w", path, err)
	}
	return nil
}
