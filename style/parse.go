package style

import (
	"slices"
	"strconv"
	"strings"

	"fortio.org/log"
	"fortio.org/sets"
)

var (
	closingBracket = map[rune]rune{'{': '}', '[': ']', '(': ')'}
	alignments     = map[rune]Alignment{'<': Left, '^': Center, '>': Right}
	wraps          = map[rune]WrapMode{';': Wrap, '.': Truncate}
	// delimiters of a width run, the rune picks the width kind.
	widthDelimiters = sets.New(':', '|')
	widthKinds      = map[rune]func(int) Width{':': FixedWidth, '|': MinimumWidth}
)

// Parse reads a style specification such as "{c^-g:15:}": the text between a
// pair of {}, [] or () brackets is scanned left to right and each token
// overrides what earlier tokens of the same kind set:
//
//	letter   foreground color (w l r g y b m c, upper case for bright)
//	< ^ >    left, center, right alignment
//	; .      wrap, truncate
//	-X       background color X
//	:N:      fixed width N
//	|N|      minimum width N
//
// Unknown runes are ignored. Brackets that do not match, a width run without
// its closing delimiter and a width that is not an unsigned integer are
// reported as a *ParseError.
func Parse(spec string) (Style, error) {
	runes := []rune(spec)
	if len(runes) < 2 {
		return Style{}, NewParseErr(spec, 0, "missing enclosing brackets")
	}
	closer, ok := closingBracket[runes[0]]
	if !ok {
		return Style{}, NewParseErr(spec, 0, "must start with one of {, [ or (")
	}
	if last := runes[len(runes)-1]; last != closer {
		return Style{}, NewParseErr(spec, len(runes)-1, "expected closing "+strconv.QuoteRune(closer)+" got "+strconv.QuoteRune(last))
	}
	tokens := runes[1 : len(runes)-1]
	s := Default()
	for i := 0; i < len(tokens); i++ {
		r := tokens[i]
		pos := i + 1 // position in spec, accounting for the opening bracket
		switch {
		case r == '-':
			if i+1 >= len(tokens) {
				log.Debugf("style %q: trailing - without background color", spec)
				continue
			}
			i++
			if c, ok := ColorFromLetter(tokens[i]); ok {
				s.Background = c
			} else {
				log.Debugf("style %q: ignoring unknown background color %q", spec, tokens[i])
			}
		case widthDelimiters.Has(r):
			end := slices.Index(tokens[i+1:], r)
			if end < 0 {
				return Style{}, NewParseErr(spec, pos, "unterminated width, missing closing "+strconv.QuoteRune(r))
			}
			digits := string(tokens[i+1 : i+1+end])
			n, err := strconv.ParseUint(digits, 10, 31)
			if err != nil {
				return Style{}, NewParseErr(spec, pos+1, "width "+strconv.Quote(digits)+" is not an unsigned integer")
			}
			s.Width = widthKinds[r](int(n))
			i += end + 1
		default:
			if c, ok := ColorFromLetter(r); ok {
				s.Foreground = c
			} else if a, ok := alignments[r]; ok {
				s.Alignment = a
			} else if w, ok := wraps[r]; ok {
				s.Wrap = w
			} else {
				log.Debugf("style %q: ignoring unknown token %q", spec, r)
			}
		}
	}
	log.LogVf("Parsed style %q -> %+v", spec, s)
	return s, nil
}

// MustParse is Parse for literal specifications, it panics on error.
func MustParse(spec string) Style {
	s, err := Parse(spec)
	if err != nil {
		panic(err)
	}
	return s
}

// ParseList parses space separated specifications, e.g. "{r<;} {G-b^}".
func ParseList(specs string) ([]Style, error) {
	fields := strings.Fields(specs)
	res := make([]Style, 0, len(fields))
	for _, f := range fields {
		s, err := Parse(f)
		if err != nil {
			return nil, err
		}
		res = append(res, s)
	}
	return res, nil
}
