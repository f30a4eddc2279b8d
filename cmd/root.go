package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	cfgpkg "github.com/systematikdata/ordermix-cli/internal/config"
)

var (
	// Global flags
	cfgFile string
	debug   bool

	// Loaded configuration
	cfg *cfgpkg.Global
)

var rootCmd = &cobra.Command{
	Use:   "ordermix",
	Short: "Ordermix: turn raw order exports into product-mix insights",
	Long: `Ordermix ingests a raw e-commerce order export (CSV or XLSX, one row per
line item, from Shopify, BigCommerce, WooCommerce and similar) and derives
two reports: the distinct product mix per order with counts and revenue
shares, and the product mix of each customer's first order.`,
}

// Execute is the entry point called by main.main()
func Execute() {
	cobra.OnInitialize(loadConfig)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "✗ Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.ordermix/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug output")
}

func loadConfig() {
	c, err := cfgpkg.Load(cfgFile)
	if err != nil {
		// Non-fatal: fall back to built-in defaults
		fmt.Fprintf(os.Stderr, "⚠ Warning: failed to load config: %v\n", err)
		return
	}
	cfg = c
}

// effectiveConfig returns the loaded config, loading defaults on demand for
// commands that run before OnInitialize fires (tests drive Execute directly).
func effectiveConfig() *cfgpkg.Global {
	if cfg != nil {
		return cfg
	}
	c, err := cfgpkg.Load(cfgFile)
	if err != nil {
		return &cfgpkg.Global{
			IDMode:          "sku",
			PaymentStatuses: []string{"paid", "partially_paid"},
			OutputFormat:    "table",
		}
	}
	cfg = c
	return cfg
}
