package export

import (
	"encoding/csv"
	"fmt"
	"os"
)

// WriteCSV writes the dataset as a delimited-text file: one header row,
// then one record per normalized row.
func WriteCSV(path string, ds *Dataset) error {
	if err := ensureDir(path); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(ds.Headers); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, row := range ds.Rows {
		if err := w.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush csv %s: %w", path, err)
	}
	return f.Close()
}
