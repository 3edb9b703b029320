package table

import (
	"slices"
	"testing"

	"fortio.org/tablefmt/style"
)

func TestCellWidth(t *testing.T) {
	c := MustCell("{} {}", "12345678", "abc")
	tests := []struct {
		policy   style.Width
		expected int
	}{
		{style.FixedWidth(15), 15},
		{style.FixedWidth(2), 2},
		{style.MinimumWidth(5), 8},  // content wins
		{style.MinimumWidth(12), 12}, // minimum wins
		{style.ContentWidth(), 8},
	}
	for _, tt := range tests {
		if got := c.Width(tt.policy); got != tt.expected {
			t.Errorf("Width(%+v) = %d, expected %d", tt.policy, got, tt.expected)
		}
	}
	if w := (Cell{}).Width(style.ContentWidth()); w != 0 {
		t.Errorf("Empty cell content width should be 0, got %d", w)
	}
}

func TestCellPolicy(t *testing.T) {
	if p := MustCell("{c^:15:} {|3|}", "Food", "x").Policy(); p != style.FixedWidth(15) {
		t.Errorf("Policy should come from the first content, got %+v", p)
	}
	if p := NewCellOf(style.MustParse("{:4:}"), Text("x")).Policy(); p != style.ContentWidth() {
		t.Errorf("Unstyled first content should give content width, got %+v", p)
	}
	if p := (Cell{}).Policy(); p != style.ContentWidth() {
		t.Errorf("Empty cell should give content width, got %+v", p)
	}
}

// Heights of stacked contents add up.
func TestCellHeightIsSum(t *testing.T) {
	c := MustCell("{} {;}", "Title", "abcdefghijklmnopqrstu")
	p := style.FixedWidth(10)
	if h := c.Height(p); h != 4 {
		t.Errorf("Expected height 1+3=4, got %d", h)
	}
	// content width is 21, nothing wraps
	if h := c.Height(style.ContentWidth()); h != 2 {
		t.Errorf("Expected height 2 at content width, got %d", h)
	}
	// exact multiple of the width takes no extra line
	c = MustCell("{;}", "abcdefghijklmnopqrst")
	if h := c.Height(p); h != 2 {
		t.Errorf("Expected height 2 for 20 chars at 10, got %d", h)
	}
	if h := (Cell{}).Height(p); h != 0 {
		t.Errorf("Expected height 0 for empty cell, got %d", h)
	}
}

func TestCellLines(t *testing.T) {
	c := MustCell("{^} {;}", "Title", "abcdefghijklmnopqrstu")
	p := style.FixedWidth(10)
	expected := []string{
		"  Title   ",
		"abcdefghij",
		"klmnopqrst",
		"u         ",
	}
	got := slices.Collect(c.Lines(p))
	if !slices.Equal(got, expected) {
		t.Errorf("Got %q, expected %q", got, expected)
	}
	// restartable
	again := slices.Collect(c.Lines(p))
	if !slices.Equal(again, got) {
		t.Errorf("Second iteration differs: %q vs %q", again, got)
	}
	// early stop
	for l := range c.Lines(p) {
		if l != expected[0] {
			t.Errorf("Unexpected first line %q", l)
		}
		break
	}
}

func TestCellBaseStyle(t *testing.T) {
	c := NewCellOf(style.MustParse("{>;}"), Text("abcdef"), Text("xy"))
	got := slices.Collect(c.Lines(style.FixedWidth(4)))
	expected := []string{"abcd", "  ef", "  xy"}
	if !slices.Equal(got, expected) {
		t.Errorf("Got %q, expected %q", got, expected)
	}
	if h := c.Height(style.FixedWidth(4)); h != 3 {
		t.Errorf("Expected height 3, got %d", h)
	}
}
