// Package config holds the run configuration for invoice2ledger.
// Values are resolved by the CLI layer (flags > env > defaults) and
// validated here before a run starts.
package config

import (
	"errors"
	"fmt"
	"os"
)

// Defaults for fields the original weekly batches almost never override.
const (
	DefaultVendor          = "Big Geyser Inc."
	DefaultTerms           = "CHAIN 30"
	DefaultFreeGoodsPhrase = "FREE GOODS"
)

// Config holds all settings for one batch run.
type Config struct {
	InvoicesDir string // folder containing source PDFs
	HeadersPath string // target-headers reference workbook (.xlsx or .csv)
	ChartPath   string // chart-of-accounts reference workbook (.xlsx or .csv)
	OutCSV      string // CSV output path (required)
	OutXLSX     string // XLSX output path (optional, empty = skip)

	Vendor          string // vendorRef value stamped on every row
	Terms           string // termsRef value stamped on every row
	FreeGoodsPhrase string // case-insensitive marker forcing rate to zero

	Recursive bool // recurse into subfolders of InvoicesDir
	FuzzyGL   bool // enable fuzzy chart-of-accounts fallback for unmapped rows
	Verbose   bool // debug-level logging
}

// Validate checks that required inputs exist before any output is produced.
// Reference files are load-bearing: without them neither the output schema
// nor the GL table can be built, so a missing one aborts the run.
func (c *Config) Validate() error {
	if c.InvoicesDir == "" {
		return errors.New("invoices folder is required")
	}
	if info, err := os.Stat(c.InvoicesDir); err != nil || !info.IsDir() {
		return fmt.Errorf("invoices folder %q is not a readable directory", c.InvoicesDir)
	}
	if c.HeadersPath == "" {
		return errors.New("target headers reference file is required")
	}
	if _, err := os.Stat(c.HeadersPath); err != nil {
		return fmt.Errorf("headers reference %q: %w", c.HeadersPath, err)
	}
	if c.ChartPath == "" {
		return errors.New("chart of accounts reference file is required")
	}
	if _, err := os.Stat(c.ChartPath); err != nil {
		return fmt.Errorf("chart of accounts %q: %w", c.ChartPath, err)
	}
	if c.OutCSV == "" {
		return errors.New("CSV output path is required")
	}
	if c.FreeGoodsPhrase == "" {
		c.FreeGoodsPhrase = DefaultFreeGoodsPhrase
	}
	return nil
}
