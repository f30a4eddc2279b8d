package mix

import (
	"strings"
	"time"
)

// LineItem is one normalized input row. String fields hold the raw cell
// text; parsed fields (Date, NetSales, Quantity) already carry their
// documented defaults. Index preserves original table order, which acts as
// the stable tie-break key throughout the pipeline.
type LineItem struct {
	Index           int
	OrderID         string
	CustomerID      string
	Email           string
	Date            time.Time
	ProductTitle    string
	VariantTitle    string
	SKU             string
	NetSales        float64
	Quantity        int
	FinancialStatus string
	Canceled        string
}

// canceledValues marks a line's order as canceled when the lower-cased cell
// matches one of them.
var canceledValues = map[string]struct{}{
	"true": {}, "yes": {}, "1": {}, "t": {}, "y": {},
}

// FilterRows prunes line items before aggregation. Stages run in a fixed
// order: cancellation, payment status, SKU ignore, title ignore, variant
// combo ignore. A stage is a no-op when its source column was never resolved
// or its rule list is empty. Surviving items are never mutated.
func FilterRows(items []LineItem, cols ColumnMap, s Settings) []LineItem {
	out := items
	if cols.Has(FieldCanceled) {
		out = keep(out, func(it LineItem) bool {
			_, canceled := canceledValues[strings.ToLower(it.Canceled)]
			return !canceled
		})
	}
	if cols.Has(FieldFinancialStatus) && len(s.PaymentStatuses) > 0 {
		allowed := make(map[string]struct{}, len(s.PaymentStatuses))
		for _, st := range s.PaymentStatuses {
			allowed[strings.ToLower(st)] = struct{}{}
		}
		out = keep(out, func(it LineItem) bool {
			_, ok := allowed[strings.ToLower(it.FinancialStatus)]
			return ok
		})
	}
	if cols.Has(FieldSKU) && len(s.IgnoreSKUs) > 0 {
		out = keep(out, func(it LineItem) bool {
			_, ignored := s.IgnoreSKUs[strings.ToUpper(it.SKU)]
			return !ignored
		})
	}
	if cols.Has(FieldProductTitle) && len(s.IgnoreTitles) > 0 {
		out = keep(out, func(it LineItem) bool {
			if it.ProductTitle == "" {
				return true
			}
			title := strings.ToLower(it.ProductTitle)
			for _, sub := range s.IgnoreTitles {
				if strings.Contains(title, sub) {
					return false
				}
			}
			return true
		})
	}
	if cols.Has(FieldProductTitle) && len(s.IgnoreVariantCombos) > 0 {
		out = keep(out, func(it LineItem) bool {
			combo := strings.ToLower(it.ProductTitle + " (" + it.VariantTitle + ")")
			for _, sub := range s.IgnoreVariantCombos {
				if strings.Contains(combo, sub) {
					return false
				}
			}
			return true
		})
	}
	return out
}

func keep(items []LineItem, pred func(LineItem) bool) []LineItem {
	out := make([]LineItem, 0, len(items))
	for _, it := range items {
		if pred(it) {
			out = append(out, it)
		}
	}
	return out
}
