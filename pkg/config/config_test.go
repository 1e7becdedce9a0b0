package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig(t *testing.T) *Config {
	t.Helper()
	dir := t.TempDir()
	headers := filepath.Join(dir, "headers.csv")
	chart := filepath.Join(dir, "chart.csv")
	require.NoError(t, os.WriteFile(headers, []byte("Field Name\ntranId\n"), 0o644))
	require.NoError(t, os.WriteFile(chart, []byte("Number,Account (invoices)\n6520,Samples\n"), 0o644))
	return &Config{
		InvoicesDir: dir,
		HeadersPath: headers,
		ChartPath:   chart,
		OutCSV:      filepath.Join(dir, "out.csv"),
	}
}

func TestValidate(t *testing.T) {
	t.Run("complete config passes", func(t *testing.T) {
		assert.NoError(t, validConfig(t).Validate())
	})

	t.Run("missing invoices folder fails", func(t *testing.T) {
		cfg := validConfig(t)
		cfg.InvoicesDir = filepath.Join(cfg.InvoicesDir, "nope")
		assert.Error(t, cfg.Validate())
	})

	t.Run("missing reference files fail", func(t *testing.T) {
		cfg := validConfig(t)
		cfg.HeadersPath = filepath.Join(t.TempDir(), "missing.xlsx")
		assert.Error(t, cfg.Validate())

		cfg = validConfig(t)
		cfg.ChartPath = ""
		assert.Error(t, cfg.Validate())
	})

	t.Run("output path is required", func(t *testing.T) {
		cfg := validConfig(t)
		cfg.OutCSV = ""
		assert.Error(t, cfg.Validate())
	})

	t.Run("empty free goods phrase falls back to default", func(t *testing.T) {
		cfg := validConfig(t)
		require.NoError(t, cfg.Validate())
		assert.Equal(t, DefaultFreeGoodsPhrase, cfg.FreeGoodsPhrase)
	})
}
