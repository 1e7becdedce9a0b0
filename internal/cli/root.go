// Package cli defines the invoice2ledger command tree.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var verbose bool

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "invoice2ledger",
	Short: "Parse distributor invoice PDFs into GL-coded CSV/XLSX",
	Long: `invoice2ledger parses distributor invoice PDFs (Big Geyser style weekly
statements) into a normalized vendor-bill dataset, maps every line item to a
general-ledger code via an ordered keyword rule table, and writes the result
as CSV and XLSX with identical rows.

Unknown fields are left blank rather than guessed; documents without invoice
anchors simply contribute zero rows.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("invoice2ledger v0.2.0")
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))

	// Environment variables that match INVOICE2LEDGER_* override defaults.
	viper.SetEnvPrefix("INVOICE2LEDGER")
	viper.AutomaticEnv()

	rootCmd.AddCommand(versionCmd)
}
