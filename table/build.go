package table

import (
	"strings"

	"fortio.org/tablefmt/style"
)

func checkText(text string) error {
	if strings.ContainsRune(text, '\n') {
		return ErrEmbeddedNewline
	}
	return nil
}

// NewCell builds a cell of stacked texts, styled in order by the space
// separated specs, e.g. NewCell("{r<;} {G-b^}", "testing", "this").
// Texts past the last spec get the default style.
func NewCell(specs string, texts ...string) (Cell, error) {
	styles, err := style.ParseList(specs)
	if err != nil {
		return Cell{}, err
	}
	contents := make([]Content, 0, len(texts))
	for i, txt := range texts {
		if err := checkText(txt); err != nil {
			return Cell{}, err
		}
		s := style.Default()
		if i < len(styles) {
			s = styles[i]
		}
		contents = append(contents, Styled(txt, s))
	}
	return NewCellOf(style.Default(), contents...), nil
}

func MustCell(specs string, texts ...string) Cell {
	c, err := NewCell(specs, texts...)
	if err != nil {
		panic(err)
	}
	return c
}

// NewRow builds a row of single content cells all styled by spec.
func NewRow(spec string, texts ...string) (Row, error) {
	r := Row{Cells: make([]Cell, 0, len(texts))}
	for _, txt := range texts {
		c, err := NewCell(spec, txt)
		if err != nil {
			return Row{}, err
		}
		r.Cells = append(r.Cells, c)
	}
	return r, nil
}

func MustRow(spec string, texts ...string) Row {
	r, err := NewRow(spec, texts...)
	if err != nil {
		panic(err)
	}
	return r
}

// HeaderRow builds a row from "spec=>text" pairs, one cell each, e.g.
// HeaderRow("{c^:15:}=>Food", "{c^:10:}=>Count"). Spaces around "=>" are
// ignored and a pair without "=>" is unstyled text.
func HeaderRow(pairs ...string) (Row, error) {
	r := Row{Cells: make([]Cell, 0, len(pairs))}
	for _, p := range pairs {
		spec, txt, found := strings.Cut(p, "=>")
		if !found {
			spec, txt = "", p
		}
		c, err := NewCell(strings.TrimSpace(spec), strings.TrimSpace(txt))
		if err != nil {
			return Row{}, err
		}
		r.Cells = append(r.Cells, c)
	}
	return r, nil
}
