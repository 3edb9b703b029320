package table

import (
	"errors"
	"fmt"
)

// ErrEmbeddedNewline is returned by builders given text with a newline,
// use SplitLines to stack multi-line text instead.
var ErrEmbeddedNewline = errors.New("content text contains a newline")

// ShapeError reports a table whose rows do not line up with its header.
type ShapeError struct {
	Row  int // index of the offending body row, -1 for the table as a whole
	Got  int
	Want int
	Msg  string
}

func (e *ShapeError) Error() string {
	if e.Row < 0 {
		return fmt.Sprintf("invalid table shape: %s (got %d, want %d)", e.Msg, e.Got, e.Want)
	}
	return fmt.Sprintf("invalid table shape: row %d %s (got %d, want %d)", e.Row, e.Msg, e.Got, e.Want)
}

func NewShapeErr(row, got, want int, msg string) error {
	return &ShapeError{Row: row, Got: got, Want: want, Msg: msg}
}
