package main

import (
	"strings"
	"testing"

	"fortio.org/tablefmt/style"
	"fortio.org/tablefmt/table"
)

func TestParseColumns(t *testing.T) {
	header, err := ParseColumns("{c^:15:}Food, {c^:10:}Count,Plain")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if header.Len() != 3 {
		t.Fatalf("Expected 3 columns, got %d", header.Len())
	}
	if p := header.Cells[0].Policy(); p != style.FixedWidth(15) {
		t.Errorf("Unexpected first policy %+v", p)
	}
	if txt := header.Cells[1].Contents[0].Text; txt != "Count" {
		t.Errorf("Unexpected second text %q", txt)
	}
	if p := header.Cells[2].Policy(); p != style.ContentWidth() {
		t.Errorf("Unstyled column should use content width, got %+v", p)
	}
	tbl, err := table.FromSource(header, table.Values("Fish", "3"), table.WithNoColor())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if w := tbl.Width(); w != 15+10+5+4 {
		t.Errorf("Unexpected table width %d", w)
	}
}

func TestParseColumnsErrors(t *testing.T) {
	for _, columns := range []string{"", "  ", "{c^:15:Food", "{:x:}Food", "[c}Food"} {
		if _, err := ParseColumns(columns); err == nil {
			t.Errorf("Expected error for %q", columns)
		}
	}
}

func TestReadValues(t *testing.T) {
	values, err := ReadValues(strings.NewReader("Fish\r\n3\nPears\n"))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if strings.Join(values, ",") != "Fish,3,Pears" {
		t.Errorf("Unexpected values %q", values)
	}
}

func TestParseColor(t *testing.T) {
	if c, err := ParseColor("C"); err != nil || c != style.BrightCyan {
		t.Errorf("Expected bright cyan, got %v %v", c, err)
	}
	for _, bad := range []string{"", "x", "cc"} {
		if _, err := ParseColor(bad); err == nil {
			t.Errorf("Expected error for %q", bad)
		}
	}
}
