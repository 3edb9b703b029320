package table

import (
	"strings"

	"fortio.org/tablefmt/style"
	"github.com/mattn/go-runewidth"
)

// substitute is rendered in place of a rune wider than the whole column.
const substitute = '?'

// TextWidth returns the terminal display width of s (1 per narrow rune,
// 2 for wide ones like CJK or most emojis, 0 for combining marks).
func TextWidth(s string) int {
	w := 0
	for _, r := range s {
		w += runewidth.RuneWidth(r)
	}
	return w
}

// Pad returns line padded with spaces to width according to the alignment.
// On odd padding center alignment puts the extra space on the right.
// A line already at (or over) width is returned unchanged.
func Pad(line string, alignment style.Alignment, width int) string {
	delta := width - TextWidth(line)
	if delta <= 0 {
		return line
	}
	switch alignment {
	case style.Left:
		return line + strings.Repeat(" ", delta)
	case style.Center:
		return strings.Repeat(" ", delta/2) + line + strings.Repeat(" ", delta/2+delta%2)
	case style.Right:
		return strings.Repeat(" ", delta) + line
	}
	return line
}

// truncate cuts s to at most width display columns, on rune boundaries.
// A rune wider than the whole width becomes the substitute rune.
func truncate(s string, width int) string {
	if TextWidth(s) <= width {
		return s
	}
	var sb strings.Builder
	w := 0
	for _, r := range s {
		rw := runewidth.RuneWidth(r)
		if rw > width {
			r, rw = substitute, 1
		}
		if w+rw > width {
			break
		}
		sb.WriteRune(r)
		w += rw
	}
	return sb.String()
}

// chunks splits s into consecutive pieces of width display columns (the last
// one holding the remainder). There is always at least one, possibly empty,
// chunk.
func chunks(s string, width int) []string {
	if width <= 0 || s == "" {
		return []string{""}
	}
	var res []string
	var sb strings.Builder
	w := 0
	for _, r := range s {
		rw := runewidth.RuneWidth(r)
		if rw > width {
			r, rw = substitute, 1
		}
		if w+rw > width {
			res = append(res, sb.String())
			sb.Reset()
			w = 0
		}
		sb.WriteRune(r)
		w += rw
	}
	return append(res, sb.String())
}
