package mix

import (
	"errors"
	"fmt"
	"strings"

	"github.com/systematikdata/ordermix-cli/internal/dataset"
)

// ErrMissingOrderColumn aborts a run whose input has no recognizable order
// id column. It is the only fail-fast condition; every per-row parsing
// problem is absorbed with a documented default instead.
var ErrMissingOrderColumn = errors.New("could not detect an order id column")

// Result bundles the two output tables plus the summary figures the
// original report surfaced alongside them.
type Result struct {
	Mixes       []MixRow
	FirstOrders []FirstOrderRow

	TotalOrders   int
	TotalNetSales float64
	// Resolved maps each matched canonical field to the source column name
	// it was read from.
	Resolved map[Field]string
}

// Run executes the full pipeline over one decoded table: header resolution,
// row filtering, identifier derivation and the two-stage aggregation. The
// input table is never mutated. Given identical inputs and settings the
// output is identical.
func Run(t *dataset.Table, s Settings) (*Result, error) {
	cols := ResolveColumns(t.Headers, DefaultAliases())
	if !cols.Has(FieldOrderID) {
		return nil, fmt.Errorf("%w: check your export headers", ErrMissingOrderColumn)
	}

	items := buildItems(t, cols)
	items = FilterRows(items, cols, s)
	orders := AggregateOrders(items, s)

	res := &Result{
		Mixes:       SummarizeMixes(orders),
		FirstOrders: FirstOrders(orders),
		Resolved:    make(map[Field]string, len(cols)),
	}
	for f, idx := range cols {
		res.Resolved[f] = t.Headers[idx]
	}
	for _, r := range res.Mixes {
		res.TotalOrders += r.Orders
		res.TotalNetSales += r.NetSales
	}
	return res, nil
}

func buildItems(t *dataset.Table, cols ColumnMap) []LineItem {
	cell := func(row int, f Field) string {
		idx, ok := cols[f]
		if !ok {
			return ""
		}
		return t.Cell(row, idx)
	}

	items := make([]LineItem, 0, len(t.Rows))
	for i := range t.Rows {
		orderID := strings.TrimSpace(cell(i, FieldOrderID))
		if isMissing(orderID) {
			continue
		}
		it := LineItem{
			Index:           i,
			OrderID:         orderID,
			CustomerID:      cell(i, FieldCustomerID),
			Email:           cell(i, FieldEmail),
			Date:            ParseDate(cell(i, FieldDate)),
			ProductTitle:    cell(i, FieldProductTitle),
			VariantTitle:    cell(i, FieldVariantTitle),
			SKU:             cell(i, FieldSKU),
			FinancialStatus: cell(i, FieldFinancialStatus),
			Canceled:        cell(i, FieldCanceled),
			Quantity:        1,
		}
		if cols.Has(FieldNetSales) {
			it.NetSales = ParseMoney(cell(i, FieldNetSales))
		}
		if cols.Has(FieldQuantity) {
			it.Quantity = ParseQuantity(cell(i, FieldQuantity))
		}
		items = append(items, it)
	}
	return items
}
