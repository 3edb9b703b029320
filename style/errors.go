package style

import "fmt"

// ParseError reports a malformed style specification.
type ParseError struct {
	Spec string
	Pos  int // rune offset in Spec
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid style %q at %d: %s", e.Spec, e.Pos, e.Msg)
}

func NewParseErr(spec string, pos int, msg string) error {
	return &ParseError{Spec: spec, Pos: pos, Msg: msg}
}
