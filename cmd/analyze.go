package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/systematikdata/ordermix-cli/internal/dataset"
	"github.com/systematikdata/ordermix-cli/internal/export"
	"github.com/systematikdata/ordermix-cli/internal/mix"
)

var (
	anaIDMode       string
	anaQuantity     bool
	anaIgnoreSKUs   string
	anaIgnoreTitles string
	anaIgnoreVars   string
	anaDelimiter    string
	anaSheetName    string
	anaSheetIndex   int
	anaFormat       string
	anaOutputPath   string
	anaCSVDir       string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <file>",
	Short: "Analyze an order export and produce the two product-mix reports",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		conf := effectiveConfig()

		settings := mix.DefaultSettings()
		if len(conf.PaymentStatuses) > 0 {
			settings.PaymentStatuses = conf.PaymentStatuses
		}
		modeInput := conf.IDMode
		if cmd.Flags().Changed("id-mode") {
			modeInput = anaIDMode
		}
		if modeInput != "" {
			mode, err := mix.ParseIDMode(modeInput)
			if err != nil {
				return err
			}
			settings.IDMode = mode
		}
		settings.DifferentiateQuantity = conf.DifferentiateQuantity
		if cmd.Flags().Changed("quantity") {
			settings.DifferentiateQuantity = anaQuantity
		}

		var err error
		if settings.IgnoreSKUs, err = loadSKURules(anaIgnoreSKUs); err != nil {
			return err
		}
		if settings.IgnoreTitles, err = loadSubstringRules(anaIgnoreTitles); err != nil {
			return err
		}
		if settings.IgnoreVariantCombos, err = loadSubstringRules(anaIgnoreVars); err != nil {
			return err
		}

		opt := dataset.Options{SheetName: anaSheetName, SheetIndex: anaSheetIndex}
		if anaDelimiter != "" {
			switch anaDelimiter {
			case ",":
				opt.Delimiter = ','
			case ";":
				opt.Delimiter = ';'
			case "\t", "tab":
				opt.Delimiter = '\t'
			default:
				return fmt.Errorf("unsupported --delimiter: %s", anaDelimiter)
			}
		}

		table, err := dataset.Load(path, opt)
		if err != nil {
			return err
		}
		res, err := mix.Run(table, settings)
		if err != nil {
			return err
		}

		fmt.Printf("✓ Analysis complete: %d orders, %d unique mixes, %s net sales\n",
			res.TotalOrders, len(res.Mixes), export.Money(res.TotalNetSales))

		written := false
		if anaOutputPath != "" {
			if err := export.WriteWorkbook(anaOutputPath, res); err != nil {
				return err
			}
			fmt.Printf("✓ Wrote workbook to %s\n", anaOutputPath)
			written = true
		}
		if anaCSVDir != "" {
			if err := export.WriteCSVDir(anaCSVDir, res); err != nil {
				return err
			}
			fmt.Printf("✓ Wrote %s and %s to %s\n", export.MixCSVName, export.FirstOrderCSVName, anaCSVDir)
			written = true
		}
		if written {
			return nil
		}

		format := anaFormat
		if format == "" {
			format = conf.OutputFormat
		}
		switch strings.ToLower(format) {
		case "csv":
			if err := export.WriteMixCSV(os.Stdout, res.Mixes); err != nil {
				return err
			}
			fmt.Println()
			return export.WriteFirstOrderCSV(os.Stdout, res.FirstOrders)
		case "", "table":
			fmt.Println("\nOrder Product Mix")
			export.RenderMixTable(os.Stdout, res.Mixes)
			fmt.Println("\nFirst Order Mix")
			export.RenderFirstOrderTable(os.Stdout, res.FirstOrders)
			return nil
		default:
			return fmt.Errorf("unsupported --format: %s (use table|csv)", format)
		}
	},
}

func loadSKURules(path string) (map[string]struct{}, error) {
	entries, err := loadRuleFile(path)
	if err != nil {
		return nil, err
	}
	return mix.SKUSet(entries), nil
}

func loadSubstringRules(path string) ([]string, error) {
	entries, err := loadRuleFile(path)
	if err != nil {
		return nil, err
	}
	return mix.LowerAll(entries), nil
}

func loadRuleFile(path string) ([]string, error) {
	if path == "" {
		return nil, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read ignore rules: %w", err)
	}
	return mix.ParseIgnoreList(string(b)), nil
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
	analyzeCmd.Flags().StringVar(&anaIDMode, "id-mode", "", "identifier mode: sku|product-variant|product (default from config)")
	analyzeCmd.Flags().BoolVar(&anaQuantity, "quantity", false, "differentiate identifiers by quantity (e.g. '2x Shirt')")
	analyzeCmd.Flags().StringVar(&anaIgnoreSKUs, "ignore-skus", "", "file with SKUs to ignore, one per line (exact match)")
	analyzeCmd.Flags().StringVar(&anaIgnoreTitles, "ignore-titles", "", "file with product title substrings to ignore")
	analyzeCmd.Flags().StringVar(&anaIgnoreVars, "ignore-variants", "", "file with 'Product (Variant)' substrings to ignore")
	analyzeCmd.Flags().StringVar(&anaDelimiter, "delimiter", "", "CSV delimiter: ',' | ';' | 'tab'")
	analyzeCmd.Flags().StringVar(&anaSheetName, "sheet-name", "", "XLSX: sheet name to analyze")
	analyzeCmd.Flags().IntVar(&anaSheetIndex, "sheet-index", 1, "XLSX: 1-based sheet index (used if --sheet-name not provided)")
	analyzeCmd.Flags().StringVar(&anaFormat, "format", "", "stdout format: table|csv (default from config)")
	analyzeCmd.Flags().StringVarP(&anaOutputPath, "output", "o", "", "write both reports into one .xlsx workbook")
	analyzeCmd.Flags().StringVar(&anaCSVDir, "csv-dir", "", "write both reports as CSV files into this directory")
}
