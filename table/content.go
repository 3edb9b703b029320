package table

import (
	"strings"

	"fortio.org/tablefmt/style"
)

// Content is a single run of text, the smallest styled unit of a table.
// Text never contains a newline: multi-line text is several stacked Contents.
type Content struct {
	Text string
	// Style, when nil, is the base style of the enclosing cell.
	Style *style.Style
}

// Text returns unstyled content.
func Text(text string) Content {
	return Content{Text: text}
}

// Styled returns content carrying its own copy of s.
func Styled(text string, s style.Style) Content {
	return Content{Text: text, Style: &s}
}

// SplitLines turns possibly multi-line text into stacked contents sharing s.
func SplitLines(text string, s *style.Style) []Content {
	lines := strings.Split(text, "\n")
	res := make([]Content, 0, len(lines))
	for _, l := range lines {
		res = append(res, Content{Text: strings.TrimSuffix(l, "\r"), Style: s})
	}
	return res
}

func (c Content) effective(base style.Style) style.Style {
	if c.Style != nil {
		return *c.Style
	}
	return base
}

// Width is the display width of the raw text, ignoring wrapping.
func (c Content) Width() int {
	return TextWidth(c.Text)
}

// Height is the number of lines Lines produces for the same arguments.
func (c Content) Height(base style.Style, width int) int {
	if c.effective(base).Wrap != style.Wrap {
		return 1
	}
	return len(chunks(c.Text, width))
}

// Lines formats the content to exactly width columns: a single truncated line
// or, when wrapping, one line per width sized chunk. Each line is aligned and
// then colored.
func (c Content) Lines(base style.Style, width int) []string {
	s := c.effective(base)
	width = max(width, 0)
	var parts []string
	if s.Wrap == style.Wrap {
		parts = chunks(c.Text, width)
	} else {
		parts = []string{truncate(c.Text, width)}
	}
	for i, p := range parts {
		parts[i] = s.Colorize(Pad(p, s.Alignment, width))
	}
	return parts
}
