package mix

import (
	"errors"
	"reflect"
	"testing"

	"github.com/systematikdata/ordermix-cli/internal/dataset"
)

func orderTable(rows ...[]string) *dataset.Table {
	return &dataset.Table{
		Name: "orders.csv",
		Headers: []string{
			"Order id", "Customer id", "Created at", "Product title",
			"Product variant title", "Product variant sku",
			"Order payment status", "Is canceled order", "Net sales",
		},
		Rows: rows,
	}
}

func TestRunMissingOrderColumn(t *testing.T) {
	table := &dataset.Table{
		Headers: []string{"Product title", "Net sales"},
		Rows:    [][]string{{"Shirt", "10"}},
	}
	_, err := Run(table, DefaultSettings())
	if !errors.Is(err, ErrMissingOrderColumn) {
		t.Fatalf("err = %v, want ErrMissingOrderColumn", err)
	}
}

func TestRunTwoItemsOneOrder(t *testing.T) {
	// Scenario: two paid line items in order 1001 become one alphabetical mix.
	table := orderTable(
		[]string{"1001", "C1", "2024-01-01", "Shirt", "", "", "paid", "", "20.00"},
		[]string{"1001", "C1", "2024-01-01", "Hat", "", "", "paid", "", "10.00"},
	)
	res, err := Run(table, Settings{IDMode: IDModeProduct, PaymentStatuses: []string{"paid", "partially_paid"}})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(res.Mixes) != 1 {
		t.Fatalf("got %d mix rows, want 1", len(res.Mixes))
	}
	m := res.Mixes[0]
	if m.ProductMix != "Hat + Shirt" || m.Orders != 1 {
		t.Errorf("mix = %+v, want Hat + Shirt with 1 order", m)
	}
	if m.NetSales != 30 {
		t.Errorf("NetSales = %v, want 30", m.NetSales)
	}
	if res.TotalOrders != 1 {
		t.Errorf("TotalOrders = %d, want 1", res.TotalOrders)
	}
}

func TestRunCanceledLineDropped(t *testing.T) {
	table := orderTable(
		[]string{"1001", "C1", "2024-01-01", "Shirt", "", "", "paid", "", "20.00"},
		[]string{"1001", "C1", "2024-01-01", "Hat", "", "", "paid", "true", "10.00"},
	)
	res, err := Run(table, Settings{IDMode: IDModeProduct, PaymentStatuses: []string{"paid", "partially_paid"}})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(res.Mixes) != 1 || res.Mixes[0].ProductMix != "Shirt" || res.Mixes[0].Orders != 1 {
		t.Errorf("mixes = %+v, want single Shirt row", res.Mixes)
	}
}

func TestRunFirstOrderPerCustomer(t *testing.T) {
	table := orderTable(
		[]string{"2002", "C1", "2024-02-01", "Hat", "", "", "paid", "", "10.00"},
		[]string{"1001", "C1", "2024-01-01", "Shirt", "", "", "paid", "", "20.00"},
	)
	res, err := Run(table, Settings{IDMode: IDModeProduct, PaymentStatuses: []string{"paid", "partially_paid"}})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(res.FirstOrders) != 1 {
		t.Fatalf("got %d first-order rows, want 1", len(res.FirstOrders))
	}
	fo := res.FirstOrders[0]
	if fo.CustomerKey != "C1" || fo.OrderID != "1001" || fo.ProductMix != "Shirt" {
		t.Errorf("first order = %+v, want the January order 1001", fo)
	}
}

func TestRunMoneyParsing(t *testing.T) {
	// "$1,200.00" and "(50.00)" sum to 1150 within one order.
	table := orderTable(
		[]string{"1001", "C1", "2024-01-01", "Shirt", "", "", "paid", "", "$1,200.00"},
		[]string{"1001", "C1", "2024-01-01", "Hat", "", "", "paid", "", "(50.00)"},
	)
	res, err := Run(table, Settings{IDMode: IDModeProduct, PaymentStatuses: []string{"paid", "partially_paid"}})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.TotalNetSales != 1150 {
		t.Errorf("TotalNetSales = %v, want 1150", res.TotalNetSales)
	}
}

func TestRunZeroSurvivors(t *testing.T) {
	table := orderTable(
		[]string{"1001", "C1", "2024-01-01", "Shirt", "", "", "refunded", "", "20.00"},
	)
	res, err := Run(table, DefaultSettings())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(res.Mixes) != 0 || len(res.FirstOrders) != 0 {
		t.Errorf("expected empty outputs, got %d mixes, %d first orders", len(res.Mixes), len(res.FirstOrders))
	}
	if res.TotalOrders != 0 || res.TotalNetSales != 0 {
		t.Errorf("totals = %d / %v, want zeros", res.TotalOrders, res.TotalNetSales)
	}
}

func TestRunIgnoreRules(t *testing.T) {
	table := orderTable(
		[]string{"1001", "C1", "2024-01-01", "Shirt", "", "SHIRT-01", "paid", "", "20.00"},
		[]string{"1001", "C1", "2024-01-01", "Gift Card", "", "GIFT-01", "paid", "", "50.00"},
	)
	s := Settings{
		IDMode:          IDModeProduct,
		PaymentStatuses: []string{"paid", "partially_paid"},
		IgnoreSKUs:      SKUSet([]string{"gift-01"}),
	}
	res, err := Run(table, s)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(res.Mixes) != 1 || res.Mixes[0].ProductMix != "Shirt" {
		t.Fatalf("mixes = %+v, want only Shirt", res.Mixes)
	}
	if res.Mixes[0].NetSales != 20 {
		t.Errorf("ignored row's revenue leaked into the order: %v", res.Mixes[0].NetSales)
	}
}

func TestRunSKUModeFallsBack(t *testing.T) {
	table := orderTable(
		[]string{"1001", "C1", "2024-01-01", "Shirt", "", "SKU-1", "paid", "", "20.00"},
		[]string{"1001", "C1", "2024-01-01", "Hat", "", "", "paid", "", "10.00"},
	)
	res, err := Run(table, Settings{IDMode: IDModeSKU, PaymentStatuses: []string{"paid"}})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.Mixes[0].ProductMix != "Hat + SKU-1" {
		t.Errorf("ProductMix = %q, want %q", res.Mixes[0].ProductMix, "Hat + SKU-1")
	}
}

func TestRunMissingOptionalColumns(t *testing.T) {
	// Only an order id and a title: everything else takes defaults.
	table := &dataset.Table{
		Headers: []string{"order_id", "lineitem name"},
		Rows: [][]string{
			{"1", "Shirt"},
			{"1", "Hat"},
			{"2", "Shirt"},
		},
	}
	res, err := Run(table, Settings{IDMode: IDModeProduct})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.TotalOrders != 2 {
		t.Fatalf("TotalOrders = %d, want 2", res.TotalOrders)
	}
	if res.TotalNetSales != 0 {
		t.Errorf("TotalNetSales = %v, want 0 with no net_sales column", res.TotalNetSales)
	}
	for _, fo := range res.FirstOrders {
		if fo.CustomerKey != UnknownCustomer {
			t.Errorf("CustomerKey = %q, want %q", fo.CustomerKey, UnknownCustomer)
		}
	}
	// One unknown customer means one first-order row.
	if len(res.FirstOrders) != 1 {
		t.Errorf("got %d first-order rows, want 1", len(res.FirstOrders))
	}
}

func TestRunSkipsRowsWithoutOrderID(t *testing.T) {
	table := orderTable(
		[]string{"", "C1", "2024-01-01", "Shirt", "", "", "paid", "", "20.00"},
		[]string{"1001", "C1", "2024-01-01", "Hat", "", "", "paid", "", "10.00"},
	)
	res, err := Run(table, Settings{IDMode: IDModeProduct, PaymentStatuses: []string{"paid"}})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.TotalOrders != 1 || res.Mixes[0].ProductMix != "Hat" {
		t.Errorf("result = %+v, want only order 1001 (Hat)", res.Mixes)
	}
}

func TestRunIdempotent(t *testing.T) {
	table := orderTable(
		[]string{"1001", "C1", "2024-01-01", "Shirt", "Red", "SKU-1", "paid", "", "$25.00"},
		[]string{"1001", "C1", "2024-01-01", "Hat", "", "SKU-2", "paid", "", "15.00"},
		[]string{"2002", "", "2024-02-01", "Shirt", "Blue", "SKU-3", "partially_paid", "", "30.00"},
		[]string{"3003", "C2", "bad date", "Sock", "", "", "paid", "", "(5.00)"},
	)
	s := Settings{IDMode: IDModeProductVariant, PaymentStatuses: []string{"paid", "partially_paid"}}
	first, err := Run(table, s)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	second, err := Run(table, s)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("two runs over the same input differ:\n%+v\n%+v", first, second)
	}
}
