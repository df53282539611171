package table

import (
	"strings"
	"testing"
)

func TestReadCSV_HeaderAndValues(t *testing.T) {
	in := "partner_code,partner_name,order_no\n100,Acme, A-1 \n200,Globex\n"
	tbl, err := ReadCSV(strings.NewReader(in), "test.csv")
	if err != nil {
		t.Fatalf("ReadCSV returned error: %v", err)
	}
	if tbl.Len() != 2 {
		t.Fatalf("expected 2 rows got %d", tbl.Len())
	}
	if got := tbl.Value(0, "order_no"); got != "A-1" {
		t.Errorf("expected trimmed cell %q got %q", "A-1", got)
	}
	// short row reads as empty cell
	if got := tbl.Value(1, "order_no"); got != "" {
		t.Errorf("expected empty cell for short row, got %q", got)
	}
	// unknown column is empty, not a panic
	if got := tbl.Value(0, "nope"); got != "" {
		t.Errorf("expected empty for unknown column, got %q", got)
	}
}

func TestReadCSV_StripsBOM(t *testing.T) {
	in := "\ufeffpartner_name,email\nAcme,a@x.com\n"
	tbl, err := ReadCSV(strings.NewReader(in), "bom.csv")
	if err != nil {
		t.Fatalf("ReadCSV returned error: %v", err)
	}
	if !tbl.HasColumn("partner_name") {
		t.Fatalf("BOM not stripped from first header cell: %v", tbl.Columns())
	}
	if got := tbl.Value(0, "email"); got != "a@x.com" {
		t.Errorf("expected a@x.com got %q", got)
	}
}

func TestReadCSV_Empty(t *testing.T) {
	if _, err := ReadCSV(strings.NewReader(""), "empty.csv"); err == nil {
		t.Fatal("expected error for empty input")
	}
}

func TestLoadCSV_MissingFile(t *testing.T) {
	if _, err := LoadCSV("does-not-exist.csv"); err == nil {
		t.Fatal("expected error for missing file")
	}
}
