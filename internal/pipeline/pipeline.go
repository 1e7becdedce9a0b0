// Package pipeline wires the run together: walk PDFs, extract text,
// segment into invoice blocks, parse line items, classify, normalize,
// and write both outputs. Strictly sequential; documents share nothing
// but the immutable GL table.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/rmartins/invoice2ledger/internal/export"
	"github.com/rmartins/invoice2ledger/internal/extract"
	"github.com/rmartins/invoice2ledger/internal/glmap"
	"github.com/rmartins/invoice2ledger/internal/invoice"
	"github.com/rmartins/invoice2ledger/internal/normalize"
	"github.com/rmartins/invoice2ledger/internal/refdata"
	"github.com/rmartins/invoice2ledger/internal/segment"
	"github.com/rmartins/invoice2ledger/pkg/config"
)

// Stats summarizes one run.
type Stats struct {
	Files    int
	Invoices int
	Rows     int
}

// Runner executes one batch run over a folder of invoice PDFs.
type Runner struct {
	cfg        *config.Config
	source     extract.TextSource
	parser     *invoice.Parser
	table      *glmap.Table
	normalizer *normalize.Normalizer
	headers    []string
	logger     *slog.Logger
}

// New loads both reference files and builds an immutable GL table before
// any document is touched. A missing or empty reference file fails here,
// so a broken run produces no output at all.
func New(cfg *config.Config, source extract.TextSource, logger *slog.Logger) (*Runner, error) {
	if logger == nil {
		logger = slog.Default()
	}

	headers, err := refdata.LoadHeaders(cfg.HeadersPath)
	if err != nil {
		return nil, fmt.Errorf("load target headers: %w", err)
	}

	accounts, err := refdata.LoadChart(cfg.ChartPath)
	if err != nil {
		return nil, fmt.Errorf("load chart of accounts: %w", err)
	}
	chart := make([]glmap.ChartAccount, len(accounts))
	for i, a := range accounts {
		chart[i] = glmap.ChartAccount{Code: a.Number, Name: a.Name}
	}

	var fuzzy *glmap.FuzzyMatcher
	if cfg.FuzzyGL {
		fuzzy = glmap.NewFuzzyMatcher(chart)
	}

	return &Runner{
		cfg:        cfg,
		source:     source,
		parser:     invoice.NewParser(cfg.FreeGoodsPhrase, logger),
		table:      glmap.NewTable(glmap.DefaultRules(), chart, fuzzy, logger),
		normalizer: normalize.NewNormalizer(cfg.Vendor, cfg.Terms),
		headers:    headers,
		logger:     logger,
	}, nil
}

// Run processes every PDF under the invoices folder and writes the CSV
// and, when configured, the XLSX output. Documents that parse to zero
// invoices are not errors; the run fails only on I/O.
func (r *Runner) Run(ctx context.Context) (Stats, error) {
	var stats Stats

	paths, err := extract.ListPDFs(r.cfg.InvoicesDir, r.cfg.Recursive)
	if err != nil {
		return stats, fmt.Errorf("scan invoices folder: %w", err)
	}

	ds := &export.Dataset{Headers: r.headers}

	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return stats, err
		}
		stats.Files++

		text, err := r.source.Extract(path)
		if err != nil {
			r.logger.Warn("text extraction failed, skipping file",
				"file", filepath.Base(path), "error", err)
			continue
		}
		if text == "" {
			r.logger.Warn("no text extracted", "file", filepath.Base(path))
			continue
		}
		if segment.Count(text) == 0 {
			r.logger.Warn("no invoice anchors found", "file", filepath.Base(path))
			continue
		}

		invoices, rows := r.processDocument(text, ds)
		stats.Invoices += invoices
		stats.Rows += rows
		r.logger.Info("parsed file",
			"file", filepath.Base(path), "invoices", invoices, "rows", rows)
	}

	if err := export.WriteCSV(r.cfg.OutCSV, ds); err != nil {
		return stats, err
	}
	if r.cfg.OutXLSX != "" {
		if err := export.WriteXLSX(r.cfg.OutXLSX, ds); err != nil {
			return stats, err
		}
	}

	if stats.Rows == 0 {
		r.logger.Warn("no rows parsed; check that the invoices are text-based PDFs")
	}
	r.logger.Info("run complete",
		"files", stats.Files, "invoices", stats.Invoices, "rows", stats.Rows)
	return stats, nil
}

// processDocument appends every normalized row of one document to the
// dataset and reports how many invoices and rows it contributed.
func (r *Runner) processDocument(text string, ds *export.Dataset) (invoices, rows int) {
	for block := range segment.Blocks(text) {
		invoices++
		inv := r.parser.ParseBlock(block)
		for _, item := range inv.Items {
			cls := r.table.Classify(item.Description)
			if item.FreeGoods {
				cls = r.table.FreeGoods()
			}
			row := r.normalizer.Normalize(inv.Header, item, cls)
			ds.Append(row.Values(r.headers))
			rows++
		}
	}
	return invoices, rows
}
