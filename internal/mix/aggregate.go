package mix

import (
	"sort"
	"strings"
	"time"
)

// UnknownCustomer is the customer key used when a line item carries neither
// a customer id nor an email.
const UnknownCustomer = "(unknown)"

// Order is one order after line items are grouped: the deduplicated, sorted
// identifier list, the summed revenue, the customer reference from the first
// line of the group, and the earliest known timestamp (zero if none).
type Order struct {
	OrderID     string
	Identifiers []string
	ProductMix  string
	NetSales    float64
	CustomerKey string
	Date        time.Time
}

type identified struct {
	LineItem
	identifier string
}

// AggregateOrders derives identifiers for the surviving line items and
// groups them by order id, preserving first-seen order. Items with an empty
// identifier are dropped first; orders left without a single identifier are
// dropped too. Duplicate identifiers within an order collapse, so buying the
// same item twice contributes one mix member unless quantities are
// explicitly differentiated.
func AggregateOrders(items []LineItem, s Settings) []Order {
	var rows []identified
	for _, it := range items {
		id := DeriveIdentifier(it.ProductTitle, it.VariantTitle, it.SKU, it.Quantity, s)
		if id == "" {
			continue
		}
		rows = append(rows, identified{LineItem: it, identifier: id})
	}

	index := make(map[string]int, len(rows))
	var orders []Order
	seen := make([]map[string]struct{}, 0, len(rows))
	for _, r := range rows {
		i, ok := index[r.OrderID]
		if !ok {
			i = len(orders)
			index[r.OrderID] = i
			orders = append(orders, Order{
				OrderID:     r.OrderID,
				CustomerKey: customerKey(r.LineItem),
				Date:        r.Date,
			})
			seen = append(seen, make(map[string]struct{}, 4))
		}
		o := &orders[i]
		if _, dup := seen[i][r.identifier]; !dup {
			seen[i][r.identifier] = struct{}{}
			o.Identifiers = append(o.Identifiers, r.identifier)
		}
		o.NetSales += r.NetSales
		if !r.Date.IsZero() && (o.Date.IsZero() || r.Date.Before(o.Date)) {
			o.Date = r.Date
		}
	}

	out := orders[:0]
	for i := range orders {
		o := orders[i]
		sort.Strings(o.Identifiers)
		o.ProductMix = strings.Join(o.Identifiers, " + ")
		if o.ProductMix == "" {
			continue
		}
		out = append(out, o)
	}
	return out
}

func customerKey(it LineItem) string {
	if c := strings.TrimSpace(it.CustomerID); !isMissing(c) {
		return c
	}
	if e := strings.TrimSpace(it.Email); !isMissing(e) {
		return e
	}
	return UnknownCustomer
}

// MixRow is one aggregate product-mix row. Shares are raw 0-1 fractions;
// when a grand total is zero the corresponding share is 0 rather than a
// division error.
type MixRow struct {
	ProductMix      string
	Orders          int
	NetSales        float64
	ShareOfOrders   float64
	ShareOfNetSales float64
}

// SummarizeMixes groups orders by mix signature, computes counts, revenue
// sums and shares of the grand totals, and sorts descending by order count.
// Ties keep first-seen mix order (stable sort over insertion order).
func SummarizeMixes(orders []Order) []MixRow {
	index := make(map[string]int, len(orders))
	var rows []MixRow
	for _, o := range orders {
		i, ok := index[o.ProductMix]
		if !ok {
			i = len(rows)
			index[o.ProductMix] = i
			rows = append(rows, MixRow{ProductMix: o.ProductMix})
		}
		rows[i].Orders++
		rows[i].NetSales += o.NetSales
	}

	var totalOrders int
	var totalNet float64
	for _, r := range rows {
		totalOrders += r.Orders
		totalNet += r.NetSales
	}
	for i := range rows {
		if totalOrders > 0 {
			rows[i].ShareOfOrders = float64(rows[i].Orders) / float64(totalOrders)
		}
		if totalNet != 0 {
			rows[i].ShareOfNetSales = rows[i].NetSales / totalNet
		}
	}

	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Orders > rows[j].Orders })
	return rows
}

// FirstOrderRow is the chronologically first order of one customer.
type FirstOrderRow struct {
	CustomerKey string
	OrderID     string
	Date        time.Time
	ProductMix  string
}

// FirstOrders selects each customer's earliest order. Orders are stably
// sorted ascending by date with unknown dates last, then the first order per
// customer key wins; equal dates fall back to original order.
func FirstOrders(orders []Order) []FirstOrderRow {
	sorted := make([]Order, len(orders))
	copy(sorted, orders)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i].Date, sorted[j].Date
		if a.IsZero() {
			return false
		}
		if b.IsZero() {
			return true
		}
		return a.Before(b)
	})

	taken := make(map[string]struct{}, len(sorted))
	var out []FirstOrderRow
	for _, o := range sorted {
		if _, ok := taken[o.CustomerKey]; ok {
			continue
		}
		taken[o.CustomerKey] = struct{}{}
		out = append(out, FirstOrderRow{
			CustomerKey: o.CustomerKey,
			OrderID:     o.OrderID,
			Date:        o.Date,
			ProductMix:  o.ProductMix,
		})
	}
	return out
}
