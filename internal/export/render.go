package export

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/systematikdata/ordermix-cli/internal/mix"
)

// RenderMixTable prints the order product-mix summary as a terminal table.
func RenderMixTable(w io.Writer, rows []mix.MixRow) {
	if len(rows) == 0 {
		_, _ = fmt.Fprintln(w, "(0 rows)")
		return
	}
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"product_mix", "orders", "share_of_orders", "net_sales", "share_of_net_sales"})
	for _, r := range rows {
		t.AppendRow(table.Row{
			r.ProductMix,
			r.Orders,
			Percent(r.ShareOfOrders),
			Money(r.NetSales),
			Percent(r.ShareOfNetSales),
		})
	}
	t.Render()
}

// RenderFirstOrderTable prints the first-order-per-customer summary.
func RenderFirstOrderTable(w io.Writer, rows []mix.FirstOrderRow) {
	if len(rows) == 0 {
		_, _ = fmt.Fprintln(w, "(0 rows)")
		return
	}
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"customer_key", "order_id", "date", "product_mix"})
	for _, r := range rows {
		t.AppendRow(table.Row{r.CustomerKey, r.OrderID, Date(r.Date), r.ProductMix})
	}
	t.Render()
}

// Percent formats a 0-1 fraction for display.
func Percent(v float64) string {
	return fmt.Sprintf("%.2f%%", v*100)
}

// Money formats a dollar amount with thousands separators, using accounting
// parentheses for negatives.
func Money(v float64) string {
	neg := v < 0
	if neg {
		v = -v
	}
	s := fmt.Sprintf("%.2f", v)
	dot := strings.IndexByte(s, '.')
	intPart, frac := s[:dot], s[dot:]
	var b strings.Builder
	for i, d := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(d)
	}
	out := "$" + b.String() + frac
	if neg {
		return "(" + out + ")"
	}
	return out
}

// Date formats a timestamp for display; unknown dates render empty.
func Date(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format("2006-01-02 15:04:05")
}
