package main

import (
	"fmt"
	"os"

	// Load environment variables from .env files when present.
	_ "github.com/joho/godotenv/autoload"

	"github.com/rmartins/invoice2ledger/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
