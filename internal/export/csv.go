package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/systematikdata/ordermix-cli/internal/mix"
)

// MixCSVName and FirstOrderCSVName are the file names used by WriteCSVDir,
// matching the download names of the original report tool.
const (
	MixCSVName        = "order_product_mix.csv"
	FirstOrderCSVName = "first_order_mix.csv"
)

// WriteMixCSV writes the mix summary with raw numeric values: shares as 0-1
// fractions, net sales as plain floats. Formatting belongs to renderers.
func WriteMixCSV(w io.Writer, rows []mix.MixRow) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"product_mix", "orders", "share_of_orders", "net_sales", "share_of_net_sales"}); err != nil {
		return err
	}
	for _, r := range rows {
		rec := []string{
			r.ProductMix,
			strconv.Itoa(r.Orders),
			formatFloat(r.ShareOfOrders),
			formatFloat(r.NetSales),
			formatFloat(r.ShareOfNetSales),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteFirstOrderCSV writes the first-order summary. Unknown dates are
// empty; known ones are RFC 3339 in UTC.
func WriteFirstOrderCSV(w io.Writer, rows []mix.FirstOrderRow) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"customer_key", "order_id", "date", "product_mix"}); err != nil {
		return err
	}
	for _, r := range rows {
		if err := cw.Write([]string{r.CustomerKey, r.OrderID, csvDate(r.Date), r.ProductMix}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteCSVDir writes both report files into dir.
func WriteCSVDir(dir string, res *mix.Result) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("mkdir output dir: %w", err)
	}
	if err := writeFile(filepath.Join(dir, MixCSVName), func(w io.Writer) error {
		return WriteMixCSV(w, res.Mixes)
	}); err != nil {
		return err
	}
	return writeFile(filepath.Join(dir, FirstOrderCSVName), func(w io.Writer) error {
		return WriteFirstOrderCSV(w, res.FirstOrders)
	})
}

func writeFile(path string, fn func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := fn(f); err != nil {
		_ = f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func csvDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
