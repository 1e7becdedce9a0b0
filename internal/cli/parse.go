package cli

import (
	"context"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/rmartins/invoice2ledger/internal/extract"
	"github.com/rmartins/invoice2ledger/internal/pipeline"
	"github.com/rmartins/invoice2ledger/pkg/config"
)

// parseCmd runs one batch over a folder of invoice PDFs.
var parseCmd = &cobra.Command{
	Use:   "parse",
	Short: "Parse a folder of invoice PDFs into CSV/XLSX",
	Long: `Parse every PDF in the invoices folder, classify line items against the
chart of accounts, and write the normalized rows to CSV (and optionally XLSX).

The headers and chart-of-accounts references are required; without them the
output schema and GL table cannot be built and the run aborts before any
output is produced.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := &config.Config{
			InvoicesDir:     viper.GetString("invoices"),
			HeadersPath:     viper.GetString("headers"),
			ChartPath:       viper.GetString("gl"),
			OutCSV:          viper.GetString("out-csv"),
			OutXLSX:         viper.GetString("out-xlsx"),
			Vendor:          viper.GetString("vendor"),
			Terms:           viper.GetString("terms"),
			FreeGoodsPhrase: viper.GetString("free-goods-phrase"),
			Recursive:       viper.GetBool("recursive"),
			FuzzyGL:         viper.GetBool("fuzzy-gl"),
			Verbose:         viper.GetBool("verbose"),
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		level := slog.LevelInfo
		if cfg.Verbose {
			level = slog.LevelDebug
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
		logger = logger.With("run_id", uuid.New().String())

		runner, err := pipeline.New(cfg, extract.NewPDFSource(), logger)
		if err != nil {
			return err
		}
		_, err = runner.Run(context.Background())
		return err
	},
}

func init() {
	flags := parseCmd.Flags()
	flags.String("invoices", "", "folder containing PDF invoices")
	flags.String("headers", "", "target headers reference (.xlsx or .csv)")
	flags.String("gl", "", "chart of accounts reference (.xlsx or .csv)")
	flags.String("out-csv", "", "output CSV path")
	flags.String("out-xlsx", "", "output XLSX path (optional)")
	flags.String("vendor", config.DefaultVendor, "vendor name stamped on every row")
	flags.String("terms", config.DefaultTerms, "payment terms stamped on every row")
	flags.String("free-goods-phrase", config.DefaultFreeGoodsPhrase, "marker phrase forcing a zero rate")
	flags.Bool("recursive", false, "recurse into subfolders")
	flags.Bool("fuzzy-gl", false, "fuzzy-match unmapped descriptions against chart account names")

	_ = viper.BindPFlags(flags)

	rootCmd.AddCommand(parseCmd)
}
