package table

import (
	"fmt"
	"iter"

	"fortio.org/log"
	"fortio.org/tablefmt/style"
)

// Source feeds body cells to a table, in reading order.
type Source interface {
	Items() iter.Seq[Cell]
}

type valueSource[T any] struct {
	values []T
	base   style.Style
}

func (v valueSource[T]) Items() iter.Seq[Cell] {
	return func(yield func(Cell) bool) {
		for _, val := range v.values {
			if !yield(NewCellOf(v.base, SplitLines(fmt.Sprint(val), nil)...)) {
				return
			}
		}
	}
}

// Values is a source of one cell per value, formatted with fmt.Sprint and
// using the default style. Multi-line values become stacked contents.
func Values[T any](values ...T) Source {
	return valueSource[T]{values: values}
}

// StyledValues is Values with base as the cells base style.
func StyledValues[T any](base style.Style, values ...T) Source {
	return valueSource[T]{values: values, base: base}
}

type cellSource []Cell

func (c cellSource) Items() iter.Seq[Cell] {
	return func(yield func(Cell) bool) {
		for _, cell := range c {
			if !yield(cell) {
				return
			}
		}
	}
}

// Cells is a source of already built cells.
func Cells(cells ...Cell) Source {
	return cellSource(cells)
}

// RowsFrom fills rows of columns cells left to right from src, starting a new
// row each time one is full. A last partial row is completed with empty cells.
func RowsFrom(src Source, columns int) []Row {
	if columns <= 0 {
		return nil
	}
	var rows []Row
	var cur []Cell
	for c := range src.Items() {
		cur = append(cur, c)
		if len(cur) == columns {
			rows = append(rows, NewRowOf(cur...))
			cur = nil
		}
	}
	if len(cur) > 0 {
		log.LogVf("Last row has %d of %d cells, padding with empty cells", len(cur), columns)
		for len(cur) < columns {
			cur = append(cur, Cell{})
		}
		rows = append(rows, NewRowOf(cur...))
	}
	return rows
}

// FromSource builds a table whose body is src laid out under header.
func FromSource(header Row, src Source, opts ...Option) (*Table, error) {
	return New(header, RowsFrom(src, header.Len()), opts...)
}
