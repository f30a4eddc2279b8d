package export

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/systematikdata/ordermix-cli/internal/mix"
)

const (
	mixSheet   = "Order Product Mix"
	firstSheet = "First Order Mix"
	aboutSheet = "About"
)

// WriteWorkbook writes both reports into one styled .xlsx workbook. The
// About sheet carries a run id and as-of timestamp; they are informational
// only and sit outside the pipeline's deterministic contract.
func WriteWorkbook(path string, res *mix.Result) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", mixSheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	if _, err := f.NewSheet(firstSheet); err != nil {
		return fmt.Errorf("add sheet: %w", err)
	}
	if _, err := f.NewSheet(aboutSheet); err != nil {
		return fmt.Errorf("add sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#7030A0"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return fmt.Errorf("header style: %w", err)
	}
	percentStyle, err := f.NewStyle(&excelize.Style{NumFmt: 10}) // 0.00%
	if err != nil {
		return fmt.Errorf("percent style: %w", err)
	}
	moneyStyle, err := f.NewStyle(&excelize.Style{NumFmt: 44}) // accounting
	if err != nil {
		return fmt.Errorf("money style: %w", err)
	}

	if err := writeMixSheet(f, res.Mixes, headerStyle, percentStyle, moneyStyle); err != nil {
		return err
	}
	if err := writeFirstOrderSheet(f, res.FirstOrders, headerStyle); err != nil {
		return err
	}
	if err := writeAboutSheet(f, res); err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}

func writeMixSheet(f *excelize.File, rows []mix.MixRow, headerStyle, percentStyle, moneyStyle int) error {
	headers := []string{"product_mix", "orders", "share_of_orders", "net_sales", "share_of_net_sales"}
	if err := writeHeader(f, mixSheet, headers, headerStyle); err != nil {
		return err
	}
	for i, r := range rows {
		vals := []any{r.ProductMix, r.Orders, r.ShareOfOrders, r.NetSales, r.ShareOfNetSales}
		if err := writeRow(f, mixSheet, i+2, vals); err != nil {
			return err
		}
	}
	if len(rows) > 0 {
		last := len(rows) + 1
		if err := f.SetCellStyle(mixSheet, "C2", fmt.Sprintf("C%d", last), percentStyle); err != nil {
			return err
		}
		if err := f.SetCellStyle(mixSheet, "E2", fmt.Sprintf("E%d", last), percentStyle); err != nil {
			return err
		}
		if err := f.SetCellStyle(mixSheet, "D2", fmt.Sprintf("D%d", last), moneyStyle); err != nil {
			return err
		}
	}
	if err := f.SetColWidth(mixSheet, "A", "A", 50); err != nil {
		return err
	}
	return f.SetColWidth(mixSheet, "B", "E", 18)
}

func writeFirstOrderSheet(f *excelize.File, rows []mix.FirstOrderRow, headerStyle int) error {
	headers := []string{"customer_key", "order_id", "date", "product_mix"}
	if err := writeHeader(f, firstSheet, headers, headerStyle); err != nil {
		return err
	}
	for i, r := range rows {
		vals := []any{r.CustomerKey, r.OrderID, Date(r.Date), r.ProductMix}
		if err := writeRow(f, firstSheet, i+2, vals); err != nil {
			return err
		}
	}
	if err := f.SetColWidth(firstSheet, "A", "C", 24); err != nil {
		return err
	}
	return f.SetColWidth(firstSheet, "D", "D", 50)
}

func writeAboutSheet(f *excelize.File, res *mix.Result) error {
	lines := [][2]any{
		{"Report", "Order Product Mix Analysis"},
		{"Generated at", time.Now().UTC().Format(time.RFC3339)},
		{"Run ID", uuid.NewString()},
		{"Unique orders", res.TotalOrders},
		{"Unique mixes", len(res.Mixes)},
		{"Total net sales", res.TotalNetSales},
	}
	for i, kv := range lines {
		if err := writeRow(f, aboutSheet, i+1, []any{kv[0], kv[1]}); err != nil {
			return err
		}
	}
	return f.SetColWidth(aboutSheet, "A", "B", 28)
}

func writeHeader(f *excelize.File, sheet string, headers []string, style int) error {
	if err := writeRow(f, sheet, 1, toAny(headers)); err != nil {
		return err
	}
	end, _ := excelize.CoordinatesToCellName(len(headers), 1)
	return f.SetCellStyle(sheet, "A1", end, style)
}

func writeRow(f *excelize.File, sheet string, row int, vals []any) error {
	for i, v := range vals {
		cell, err := excelize.CoordinatesToCellName(i+1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return fmt.Errorf("set cell %s!%s: %w", sheet, cell, err)
		}
	}
	return nil
}

func toAny(ss []string) []any {
	out := make([]any, len(ss))
	for i, s := range ss {
		out[i] = s
	}
	return out
}
