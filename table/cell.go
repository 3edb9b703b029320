package table

import (
	"iter"
	"strings"

	"fortio.org/tablefmt/style"
)

// Cell is one grid rectangle holding stacked contents.
type Cell struct {
	Contents []Content
	// Base applies to contents without a style of their own.
	Base style.Style
}

func NewCellOf(base style.Style, contents ...Content) Cell {
	return Cell{Contents: contents, Base: base}
}

// Policy is the width policy of the first content, used for header cells.
func (c Cell) Policy() style.Width {
	if len(c.Contents) == 0 || c.Contents[0].Style == nil {
		return style.ContentWidth()
	}
	return c.Contents[0].Style.Width
}

// ContentWidth is the width of the widest content, ignoring wrap.
func (c Cell) ContentWidth() int {
	largest := 0
	for _, ct := range c.Contents {
		largest = max(largest, ct.Width())
	}
	return largest
}

// Width is the rendered width of the cell under the policy p.
func (c Cell) Width(p style.Width) int {
	return p.Resolve(c.ContentWidth())
}

// Height is the sum of the heights of the contents rendered at Width(p).
func (c Cell) Height(p style.Width) int {
	width := c.Width(p)
	height := 0
	for _, ct := range c.Contents {
		height += ct.Height(c.Base, width)
	}
	return height
}

// Lines yields every formatted line of every content at Width(p), then blank
// lines until Height(p) lines were produced. Each call starts over.
func (c Cell) Lines(p style.Width) iter.Seq[string] {
	width := c.Width(p)
	target := c.Height(p)
	return func(yield func(string) bool) {
		n := 0
		for _, ct := range c.Contents {
			for _, l := range ct.Lines(c.Base, width) {
				if !yield(l) {
					return
				}
				n++
			}
		}
		blank := strings.Repeat(" ", width)
		for ; n < target; n++ {
			if !yield(blank) {
				return
			}
		}
	}
}
