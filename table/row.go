package table

import (
	"iter"
	"strings"

	"fortio.org/log"
	"fortio.org/tablefmt/style"
)

// Row is a horizontal sequence of cells, the header or one body row.
type Row struct {
	Cells []Cell
}

func NewRowOf(cells ...Cell) Row {
	return Row{Cells: cells}
}

func (r Row) Len() int {
	return len(r.Cells)
}

// policyAt returns the i-th policy, content width for cells past the end.
func policyAt(policies []style.Width, i int) style.Width {
	if i < len(policies) {
		return policies[i]
	}
	log.LogVf("No width policy for column %d (%d policies), using content width", i, len(policies))
	return style.ContentWidth()
}

// Height is the height of the tallest cell, and at least 1 so that a row of
// empty cells still shows.
func (r Row) Height(policies []style.Width) int {
	tallest := 1
	for i, c := range r.Cells {
		tallest = max(tallest, c.Height(policyAt(policies, i)))
	}
	return tallest
}

// Format draws the row lines, each between the left and right border glyphs
// and with a vertical split between cells. Every cell is brought to the row
// height with blank lines.
func (r Row) Format(b Border, policies []style.Width) string {
	height := r.Height(policies)
	type column struct {
		next  func() (string, bool)
		stop  func()
		blank string
	}
	cols := make([]column, len(r.Cells))
	for i, c := range r.Cells {
		p := policyAt(policies, i)
		next, stop := iter.Pull(c.Lines(p))
		cols[i] = column{next: next, stop: stop, blank: strings.Repeat(" ", c.Width(p))}
	}
	defer func() {
		for _, c := range cols {
			c.stop()
		}
	}()
	left, right, split := b.FormatLeft(), b.FormatRight(), b.FormatVerticalSplit()
	var sb strings.Builder
	for range height {
		sb.WriteString(left)
		for i, c := range cols {
			if l, ok := c.next(); ok {
				sb.WriteString(l)
			} else {
				sb.WriteString(c.blank)
			}
			if i < len(cols)-1 {
				sb.WriteString(split)
			}
		}
		sb.WriteString(right)
		sb.WriteByte('\n')
	}
	return sb.String()
}
