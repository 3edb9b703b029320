package table

import (
	"errors"
	"testing"

	"fortio.org/tablefmt/style"
)

func TestNewCell(t *testing.T) {
	c, err := NewCell("{r<;} {G-b^}", "testing", "this", "extra")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(c.Contents) != 3 {
		t.Fatalf("Expected 3 contents, got %d", len(c.Contents))
	}
	expected := []style.Style{
		{Foreground: style.Red, Wrap: style.Wrap},
		{Foreground: style.BrightGreen, Background: style.Blue, Alignment: style.Center},
		style.Default(),
	}
	for i, s := range expected {
		if c.Contents[i].Style == nil || *c.Contents[i].Style != s {
			t.Errorf("Content %d style %+v, expected %+v", i, c.Contents[i].Style, s)
		}
	}
	if c.Contents[0].Text != "testing" {
		t.Errorf("Unexpected text %q", c.Contents[0].Text)
	}
}

func TestNewCellErrors(t *testing.T) {
	if _, err := NewCell("{r", "x"); err == nil {
		t.Errorf("Expected style error")
	}
	if _, err := NewCell("{r}", "a\nb"); !errors.Is(err, ErrEmbeddedNewline) {
		t.Errorf("Expected ErrEmbeddedNewline, got %v", err)
	}
	if _, err := NewRow("{}", "ok", "not\nok"); !errors.Is(err, ErrEmbeddedNewline) {
		t.Errorf("Expected ErrEmbeddedNewline from row, got %v", err)
	}
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("Expected MustRow to panic")
		}
	}()
	MustRow("{:3}", "x")
}

func TestHeaderRow(t *testing.T) {
	r, err := HeaderRow("{c^:15:}=>Food", "{G-r>} => Count", "Plain")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if r.Len() != 3 {
		t.Fatalf("Expected 3 cells, got %d", r.Len())
	}
	if p := r.Cells[0].Policy(); p != style.FixedWidth(15) {
		t.Errorf("Unexpected policy %+v", p)
	}
	if s := r.Cells[1].Contents[0].Style; s.Alignment != style.Right || s.Background != style.Red {
		t.Errorf("Unexpected second style %+v", s)
	}
	if txt := r.Cells[2].Contents[0].Text; txt != "Plain" {
		t.Errorf("Unexpected text %q", txt)
	}
	if _, err := HeaderRow("{:x:}=>Bad"); err == nil {
		t.Errorf("Expected error for bad width")
	}
}
