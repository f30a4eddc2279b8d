package mix

import "strings"

// Field is a canonical column in the normalized line-item schema. Every
// supported platform export (Shopify, BigCommerce, WooCommerce, ...) is
// mapped onto this fixed set before any filtering or aggregation runs.
type Field string

const (
	FieldOrderID         Field = "order_id"
	FieldCustomerID      Field = "customer_id"
	FieldEmail           Field = "email"
	FieldDate            Field = "date"
	FieldProductTitle    Field = "product_title"
	FieldVariantTitle    Field = "variant_title"
	FieldSKU             Field = "sku"
	FieldNetSales        Field = "net_sales"
	FieldQuantity        Field = "quantity"
	FieldFinancialStatus Field = "financial_status"
	FieldCanceled        Field = "canceled"
)

// Fields lists all canonical fields in a stable order, used when reporting
// the resolved mapping back to the user.
var Fields = []Field{
	FieldOrderID,
	FieldCustomerID,
	FieldEmail,
	FieldDate,
	FieldProductTitle,
	FieldVariantTitle,
	FieldSKU,
	FieldNetSales,
	FieldQuantity,
	FieldFinancialStatus,
	FieldCanceled,
}

// DefaultAliases returns the accepted source-column names per canonical
// field, in priority order. Earlier entries win when several match.
func DefaultAliases() map[Field][]string {
	return map[Field][]string{
		FieldOrderID:         {"order id", "name", "order", "order number", "order_id"},
		FieldCustomerID:      {"customer id", "customer_id", "customer"},
		FieldEmail:           {"customer email", "email", "customer_email", "billing_email"},
		FieldDate:            {"created at", "created_at", "processed at", "order date", "day", "date", "hour", "time"},
		FieldProductTitle:    {"product title", "lineitem name", "title", "product name", "line_item_name"},
		FieldVariantTitle:    {"product variant title", "variant title", "variant", "lineitem variant", "line_item_variation", "option"},
		FieldSKU:             {"product variant sku", "variant sku", "sku", "lineitem sku", "line_item_sku"},
		FieldNetSales:        {"net sales", "total sales", "total price", "net_total", "net revenue"},
		FieldQuantity:        {"quantity", "lineitem quantity", "qty", "net quantity", "line_item_quantity"},
		FieldFinancialStatus: {"order payment status", "financial status", "payment status", "order_status"},
		FieldCanceled:        {"is canceled order", "cancelled", "canceled", "is_canceled", "is_cancelled"},
	}
}

// ColumnMap records which source column index satisfies each canonical field.
// Fields with no matching column are absent from the map.
type ColumnMap map[Field]int

// Has reports whether a source column was resolved for f.
func (m ColumnMap) Has(f Field) bool {
	_, ok := m[f]
	return ok
}

// ResolveColumns maps source headers onto canonical fields. Each field is
// resolved independently; a single source column may satisfy more than one
// field. Matching runs in strict stages per field: exact, then
// case-insensitive, then normalized. A stage exhausts every alias before the
// next stage is tried, so an exact match on a low-priority alias still beats
// a fuzzy match on a high-priority one.
func ResolveColumns(headers []string, aliases map[Field][]string) ColumnMap {
	out := make(ColumnMap, len(aliases))
	for field, candidates := range aliases {
		if idx, ok := resolveField(headers, candidates); ok {
			out[field] = idx
		}
	}
	return out
}

func resolveField(headers []string, candidates []string) (int, bool) {
	// Stage 1: exact match.
	for _, cand := range candidates {
		for i, h := range headers {
			if h == cand {
				return i, true
			}
		}
	}
	// Stage 2: case-insensitive match.
	for _, cand := range candidates {
		for i, h := range headers {
			if strings.EqualFold(h, cand) {
				return i, true
			}
		}
	}
	// Stage 3: normalized match (underscores and dashes collapse to spaces).
	for _, cand := range candidates {
		nc := normalizeHeader(cand)
		for i, h := range headers {
			if normalizeHeader(h) == nc {
				return i, true
			}
		}
	}
	return 0, false
}

func normalizeHeader(h string) string {
	s := strings.ToLower(h)
	s = strings.ReplaceAll(s, "_", " ")
	s = strings.ReplaceAll(s, "-", " ")
	return strings.TrimSpace(s)
}
