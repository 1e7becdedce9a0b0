// Package export serializes one run's normalized rows. Both sinks consume
// the same Dataset, so the CSV and the workbook always contain the same
// logical rows in the same order.
package export

import (
	"fmt"
	"os"
	"path/filepath"
)

// Dataset is the fully rendered output of a run: the ordered target
// headers and one string slice per row, nulls already rendered as empty
// cells.
type Dataset struct {
	Headers []string
	Rows    [][]string
}

// Append adds one rendered row.
func (d *Dataset) Append(values []string) {
	d.Rows = append(d.Rows, values)
}

// ensureDir creates the parent directory of path when it does not exist.
func ensureDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "" || dir == "." {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output directory %s: %w", dir, err)
	}
	return nil
}
