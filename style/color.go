package style

import "strconv"

// Color is one of the 16 indexed terminal colors. The zero value means no color.
type Color uint8

const (
	NoColor Color = iota
	Black
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	White
	BrightBlack
	BrightRed
	BrightGreen
	BrightYellow
	BrightBlue
	BrightMagenta
	BrightCyan
	BrightWhite
)

// Reset ends any color started by Foreground or Background.
const Reset = "\x1b[0m"

var colorLetters = map[rune]Color{
	'l': Black,
	'r': Red,
	'g': Green,
	'y': Yellow,
	'b': Blue,
	'm': Magenta,
	'c': Cyan,
	'w': White,
	'L': BrightBlack,
	'R': BrightRed,
	'G': BrightGreen,
	'Y': BrightYellow,
	'B': BrightBlue,
	'M': BrightMagenta,
	'C': BrightCyan,
	'W': BrightWhite,
}

// ColorFromLetter maps a style letter to its color: lower case letters are the
// normal intensity colors and upper case the bright ones.
func ColorFromLetter(r rune) (Color, bool) {
	c, ok := colorLetters[r]
	return c, ok
}

// Letter is the inverse of ColorFromLetter, 0 for NoColor.
func (c Color) Letter() rune {
	for r, v := range colorLetters {
		if v == c {
			return r
		}
	}
	return 0
}

func (c Color) sgr(base int) string {
	var code int
	switch {
	case c >= Black && c <= White:
		code = base + int(c-Black)
	case c >= BrightBlack && c <= BrightWhite:
		code = base + 60 + int(c-BrightBlack)
	default:
		return ""
	}
	return "\x1b[" + strconv.Itoa(code) + "m"
}

// Foreground returns the escape sequence selecting c as text color.
func (c Color) Foreground() string {
	return c.sgr(30)
}

// Background returns the escape sequence selecting c as background color.
func (c Color) Background() string {
	return c.sgr(40)
}

// Colorize wraps s with the foreground color first and then wraps that result
// with the background color, each followed by a reset.
func Colorize(s string, fg, bg Color) string {
	if fg != NoColor {
		s = fg.Foreground() + s + Reset
	}
	if bg != NoColor {
		s = bg.Background() + s + Reset
	}
	return s
}
