package dataset

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFixture(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func TestLoadCSV(t *testing.T) {
	path := writeFixture(t, "orders.csv",
		"Order id,Product title,Net sales\n"+
			"1001,Shirt,20.00\n"+
			"1001,Hat,10.00\n"+
			"2002,Sock\n") // ragged row
	tab, err := LoadCSV(path, Options{})
	if err != nil {
		t.Fatalf("LoadCSV: %v", err)
	}
	if tab.Name != "orders.csv" {
		t.Errorf("Name = %q, want orders.csv", tab.Name)
	}
	wantHeaders := []string{"Order id", "Product title", "Net sales"}
	for i, h := range wantHeaders {
		if tab.Headers[i] != h {
			t.Errorf("Headers[%d] = %q, want %q", i, tab.Headers[i], h)
		}
	}
	if len(tab.Rows) != 3 {
		t.Fatalf("got %d rows, want 3", len(tab.Rows))
	}
	if got := tab.Cell(0, 2); got != "20.00" {
		t.Errorf("Cell(0,2) = %q, want 20.00", got)
	}
	// Missing trailing cell reads as empty.
	if got := tab.Cell(2, 2); got != "" {
		t.Errorf("Cell(2,2) = %q, want empty", got)
	}
}

func TestLoadCSVSemicolon(t *testing.T) {
	path := writeFixture(t, "orders.csv", "Order id;Net sales\n1001;20,00\n")
	tab, err := LoadCSV(path, Options{Delimiter: ';'})
	if err != nil {
		t.Fatalf("LoadCSV: %v", err)
	}
	if len(tab.Headers) != 2 || tab.Headers[1] != "Net sales" {
		t.Errorf("Headers = %v, want [Order id, Net sales]", tab.Headers)
	}
}

func TestLoadTSVSniffsTab(t *testing.T) {
	path := writeFixture(t, "orders.tsv", "Order id\tNet sales\n1001\t20.00\n")
	tab, err := Load(path, Options{})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(tab.Headers) != 2 {
		t.Fatalf("Headers = %v, want 2 columns", tab.Headers)
	}
	if got := tab.Cell(0, 1); got != "20.00" {
		t.Errorf("Cell(0,1) = %q, want 20.00", got)
	}
}

func TestLoadCSVEmptyFile(t *testing.T) {
	path := writeFixture(t, "empty.csv", "")
	if _, err := LoadCSV(path, Options{}); err == nil {
		t.Fatal("expected error for empty file, got nil")
	}
}

func TestLoadCSVMissingFile(t *testing.T) {
	if _, err := LoadCSV(filepath.Join(t.TempDir(), "nope.csv"), Options{}); err == nil {
		t.Fatal("expected error for missing file, got nil")
	}
}
