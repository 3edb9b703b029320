// Package table lays out styled text into a bordered grid for terminals:
// column widths come from the header row width policies, cell text is
// wrapped or truncated to them, and every row is brought to the height of
// its tallest cell.
package table

import (
	"regexp"
	"strings"

	"fortio.org/log"
	"fortio.org/tablefmt/style"
)

// Table is immutable once built except for Border and NoColor, which are read
// on each Format call.
type Table struct {
	Border Border
	// NoColor strips every color escape sequence from the output.
	NoColor bool

	header     Row
	rowHeaders []Cell
	rows       []Row
}

type Option func(*Table)

// WithRowHeaders adds a leading column with one cell per body row.
func WithRowHeaders(cells ...Cell) Option {
	return func(t *Table) {
		t.rowHeaders = cells
	}
}

func WithBorder(b Border) Option {
	return func(t *Table) {
		t.Border = b
	}
}

func WithNoColor() Option {
	return func(t *Table) {
		t.NoColor = true
	}
}

// New builds a table after checking that every body row has as many cells
// as the header and that there is one row header per body row, if any.
func New(header Row, rows []Row, opts ...Option) (*Table, error) {
	t := &Table{
		Border: ASCIIBorder(),
		header: header,
		rows:   rows,
	}
	for _, o := range opts {
		o(t)
	}
	ncols := header.Len()
	if ncols == 0 {
		return nil, NewShapeErr(-1, 0, 1, "header has no columns")
	}
	for i, r := range rows {
		if r.Len() != ncols {
			return nil, NewShapeErr(i, r.Len(), ncols, "cell count differs from header")
		}
	}
	if len(t.rowHeaders) > 0 && len(t.rowHeaders) != len(rows) {
		return nil, NewShapeErr(-1, len(t.rowHeaders), len(rows), "row headers count differs from body rows")
	}
	log.LogVf("New table with %d columns, %d rows, %d row headers", ncols, len(rows), len(t.rowHeaders))
	return t, nil
}

// Policies returns the width policy of each column, from its header cell.
func (t *Table) Policies() []style.Width {
	res := make([]style.Width, 0, t.header.Len())
	for _, c := range t.header.Cells {
		res = append(res, c.Policy())
	}
	return res
}

func (t *Table) rowHeaderWidth() int {
	w := 0
	for _, c := range t.rowHeaders {
		w = max(w, c.ContentWidth())
	}
	return w
}

// ColumnWidths is the rendered width of each column: the header cell width
// under its own policy, preceded by the row headers column when present.
// Body rows use these widths as is.
func (t *Table) ColumnWidths() []int {
	widths := make([]int, 0, t.header.Len()+1)
	if len(t.rowHeaders) > 0 {
		widths = append(widths, t.rowHeaderWidth())
	}
	for i, p := range t.Policies() {
		widths = append(widths, t.header.Cells[i].Width(p))
	}
	log.LogVf("Column widths %v", widths)
	return widths
}

// Width is the total rendered width including border glyphs.
func (t *Table) Width() int {
	widths := t.ColumnWidths()
	total := len(widths) + 1 // outer borders and splits
	for _, w := range widths {
		total += w
	}
	return total
}

// allRows returns the header and body rows with the row headers column prepended.
func (t *Table) allRows() (Row, []Row) {
	if len(t.rowHeaders) == 0 {
		return t.header, t.rows
	}
	header := NewRowOf(append([]Cell{{}}, t.header.Cells...)...)
	rows := make([]Row, len(t.rows))
	for i, r := range t.rows {
		rows[i] = NewRowOf(append([]Cell{t.rowHeaders[i]}, r.Cells...)...)
	}
	return header, rows
}

// Format renders the table: top border, header row, a horizontal split after
// the header and between body rows, and the bottom border. Every line,
// including the last, ends with a newline.
func (t *Table) Format() string {
	widths := t.ColumnWidths()
	policies := make([]style.Width, len(widths))
	for i, w := range widths {
		policies[i] = style.FixedWidth(w)
	}
	b := t.Border
	header, rows := t.allRows()
	var sb strings.Builder
	sb.WriteString(b.FormatTop(widths))
	sb.WriteByte('\n')
	sb.WriteString(header.Format(b, policies))
	sb.WriteString(b.FormatHorizontalSplit(widths))
	sb.WriteByte('\n')
	for i, r := range rows {
		sb.WriteString(r.Format(b, policies))
		if i < len(rows)-1 {
			sb.WriteString(b.FormatHorizontalSplit(widths))
			sb.WriteByte('\n')
		}
	}
	sb.WriteString(b.FormatBottom(widths))
	sb.WriteByte('\n')
	if t.NoColor {
		return StripColors(sb.String())
	}
	return sb.String()
}

func (t *Table) String() string {
	return t.Format()
}

// Lines is Format split into lines, without the newlines.
func (t *Table) Lines() []string {
	return strings.Split(strings.TrimSuffix(t.Format(), "\n"), "\n")
}

var escapeSequence = regexp.MustCompile(`(\x9B|\x1B\[)[0-?]*[ -/]*[@-~]`)

// StripColors removes ANSI escape sequences from s.
func StripColors(s string) string {
	return escapeSequence.ReplaceAllString(s, "")
}
