// Package style describes how a run of table text is laid out and colored,
// and parses the compact style mini-language (e.g. "{c^;:15:}").
package style

import (
	"strconv"
	"strings"
)

type Alignment int

const (
	Left Alignment = iota
	Center
	Right
)

type WrapMode int

const (
	// Truncate keeps over-width content on a single line, cut at the width.
	Truncate WrapMode = iota
	// Wrap breaks over-width content into as many lines as needed.
	Wrap
)

type WidthKind int

const (
	// Content width is the width of the longest content line.
	Content WidthKind = iota
	// Fixed width is exactly N.
	Fixed
	// Minimum width is at least N, or the content width when larger.
	Minimum
)

// Width is the width policy of a column.
type Width struct {
	Kind WidthKind
	N    int
}

func ContentWidth() Width {
	return Width{Kind: Content}
}

func FixedWidth(n int) Width {
	return Width{Kind: Fixed, N: n}
}

func MinimumWidth(n int) Width {
	return Width{Kind: Minimum, N: n}
}

// Resolve returns the rendered width for content whose widest line is contentWidth.
func (w Width) Resolve(contentWidth int) int {
	switch w.Kind {
	case Fixed:
		return max(w.N, 0)
	case Minimum:
		return max(w.N, contentWidth, 0)
	case Content:
		return contentWidth
	}
	return contentWidth
}

func (w Width) String() string {
	switch w.Kind {
	case Fixed:
		return ":" + strconv.Itoa(w.N) + ":"
	case Minimum:
		return "|" + strconv.Itoa(w.N) + "|"
	case Content:
	}
	return ""
}

// Style is an immutable value; the zero value is the default style:
// left aligned, truncated, no colors and content width.
type Style struct {
	Alignment  Alignment
	Wrap       WrapMode
	Foreground Color
	Background Color
	Width      Width
}

func Default() Style {
	return Style{}
}

// Colorize applies the style colors to an already padded line.
func (s Style) Colorize(line string) string {
	return Colorize(line, s.Foreground, s.Background)
}

var alignmentTokens = map[Alignment]rune{Left: '<', Center: '^', Right: '>'}

// String renders the style back into the mini-language, Parse(s.String()) == s.
func (s Style) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	if s.Foreground != NoColor {
		sb.WriteRune(s.Foreground.Letter())
	}
	if s.Background != NoColor {
		sb.WriteByte('-')
		sb.WriteRune(s.Background.Letter())
	}
	sb.WriteRune(alignmentTokens[s.Alignment])
	if s.Wrap == Wrap {
		sb.WriteByte(';')
	} else {
		sb.WriteByte('.')
	}
	sb.WriteString(s.Width.String())
	sb.WriteByte('}')
	return sb.String()
}
