package cmd

import (
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/systematikdata/ordermix-cli/internal/dataset"
	"github.com/systematikdata/ordermix-cli/internal/mix"
)

var (
	colSheetName  string
	colSheetIndex int
)

var columnsCmd = &cobra.Command{
	Use:   "columns <file>",
	Short: "Show how export headers map onto the canonical order schema",
	Long: `Resolves the file's column headers against the known aliases for each
canonical field and prints the mapping, without running the analysis. Useful
for checking an export before uploading it anywhere.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := dataset.Load(args[0], dataset.Options{SheetName: colSheetName, SheetIndex: colSheetIndex})
		if err != nil {
			return err
		}
		cols := mix.ResolveColumns(t.Headers, mix.DefaultAliases())

		w := table.NewWriter()
		w.SetOutputMirror(os.Stdout)
		w.SetStyle(table.StyleLight)
		w.AppendHeader(table.Row{"canonical field", "source column"})
		for _, f := range mix.Fields {
			src := "—"
			if idx, ok := cols[f]; ok {
				src = t.Headers[idx]
			}
			w.AppendRow(table.Row{string(f), src})
		}
		w.Render()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(columnsCmd)
	columnsCmd.Flags().StringVar(&colSheetName, "sheet-name", "", "XLSX: sheet name to inspect")
	columnsCmd.Flags().IntVar(&colSheetIndex, "sheet-index", 1, "XLSX: 1-based sheet index (used if --sheet-name not provided)")
}
