package table

import (
	"strings"

	"fortio.org/tablefmt/style"
	"fortio.org/terminal/ansipixels"
)

// Border holds the glyphs drawn around and between cells. Each glyph is a
// single character wide. Only the glyphs of the outer box, the vertical split
// and the horizontal split (with its ends and crossing) are drawn; the
// others are kept for callers with their own renderers.
type Border struct {
	TopLeft     string
	Top         string
	TopRight    string
	TopSplit    string
	BottomLeft  string
	Bottom      string
	BottomRight string
	BottomSplit string
	Left        string
	LeftSplit   string
	Right       string
	RightSplit  string

	VerticalSplit                  string
	VerticalSplitIntersectLeft     string
	VerticalSplitIntersectRight    string
	VerticalSplitIntersectBoth     string
	HorizontalSplit                string
	HorizontalSplitIntersectTop    string
	HorizontalSplitIntersectBottom string
	HorizontalSplitIntersectBoth   string

	// Color of all glyphs, NoColor to leave them uncolored.
	Color style.Color
}

// ASCIIBorder is the default border: + corners, - horizontal lines running
// uninterrupted across columns and | vertical lines.
func ASCIIBorder() Border {
	return Border{
		TopLeft:     "+",
		Top:         "-",
		TopRight:    "+",
		TopSplit:    "-",
		BottomLeft:  "+",
		Bottom:      "-",
		BottomRight: "+",
		BottomSplit: "-",
		Left:        "|",
		LeftSplit:   "+",
		Right:       "|",
		RightSplit:  "+",

		VerticalSplit:                  "|",
		VerticalSplitIntersectLeft:     "+",
		VerticalSplitIntersectRight:    "+",
		VerticalSplitIntersectBoth:     "+",
		HorizontalSplit:                "-",
		HorizontalSplitIntersectTop:    "-",
		HorizontalSplitIntersectBottom: "-",
		HorizontalSplitIntersectBoth:   "-",
	}
}

// UnicodeBorder uses box drawing characters with proper junctions.
func UnicodeBorder() Border {
	return Border{
		TopLeft:     ansipixels.SquareTopLeft,
		Top:         ansipixels.Horizontal,
		TopRight:    ansipixels.SquareTopRight,
		TopSplit:    ansipixels.TopT,
		BottomLeft:  ansipixels.SquareBottomLeft,
		Bottom:      ansipixels.Horizontal,
		BottomRight: ansipixels.SquareBottomRight,
		BottomSplit: ansipixels.BottomT,
		Left:        ansipixels.Vertical,
		LeftSplit:   ansipixels.LeftT,
		Right:       ansipixels.Vertical,
		RightSplit:  ansipixels.RightT,

		VerticalSplit:                  ansipixels.Vertical,
		VerticalSplitIntersectLeft:     ansipixels.LeftT,
		VerticalSplitIntersectRight:    ansipixels.RightT,
		VerticalSplitIntersectBoth:     ansipixels.MiddleCross,
		HorizontalSplit:                ansipixels.Horizontal,
		HorizontalSplitIntersectTop:    ansipixels.BottomT,
		HorizontalSplitIntersectBottom: ansipixels.TopT,
		HorizontalSplitIntersectBoth:   ansipixels.MiddleCross,
	}
}

func (b Border) paint(s string) string {
	return style.Colorize(s, b.Color, style.NoColor)
}

// line draws left, then fill repeated for each width separated by split, then right.
func (b Border) line(widths []int, left, fill, split, right string) string {
	var sb strings.Builder
	sb.WriteString(left)
	for i, w := range widths {
		sb.WriteString(strings.Repeat(fill, max(w, 0)))
		if i < len(widths)-1 {
			sb.WriteString(split)
		}
	}
	sb.WriteString(right)
	return b.paint(sb.String())
}

// FormatTop is the top border line for columns of the given widths.
func (b Border) FormatTop(widths []int) string {
	return b.line(widths, b.TopLeft, b.Top, b.TopSplit, b.TopRight)
}

func (b Border) FormatBottom(widths []int) string {
	return b.line(widths, b.BottomLeft, b.Bottom, b.BottomSplit, b.BottomRight)
}

// FormatHorizontalSplit is the line drawn between rows.
func (b Border) FormatHorizontalSplit(widths []int) string {
	return b.line(widths, b.LeftSplit, b.HorizontalSplit, b.HorizontalSplitIntersectBoth, b.RightSplit)
}

func (b Border) FormatLeft() string {
	return b.paint(b.Left)
}

func (b Border) FormatRight() string {
	return b.paint(b.Right)
}

func (b Border) FormatVerticalSplit() string {
	return b.paint(b.VerticalSplit)
}
