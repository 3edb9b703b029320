// tablefmt renders its arguments as a bordered table, filling rows left to
// right under the -columns header.
package main

import (
	"bufio"
	"errors"
	"flag"
	"io"
	"os"
	"strings"

	"fortio.org/cli"
	"fortio.org/log"
	"fortio.org/tablefmt/style"
	"fortio.org/tablefmt/table"
)

var closers = map[byte]byte{'{': '}', '[': ']', '(': ')'}

func main() {
	os.Exit(Main())
}

func Main() int {
	fColumns := flag.String("columns", "",
		"Comma separated column headers, each optionally prefixed by its style, e.g. \"{c^:15:}Food,{c^:10:}Count\"")
	fUnicode := flag.Bool("unicode", false, "Use box drawing characters for the border")
	fNoColor := flag.Bool("nocolor", false, "Strip all colors from the output")
	fStdin := flag.Bool("stdin", false, "Also read values from stdin, one per line")
	fBorderColor := flag.String("border-color", "", "Border color letter (w l r g y b m c, upper case for bright)")
	cli.ArgsHelp = "value..."
	cli.MinArgs = 0
	cli.MaxArgs = -1
	cli.Main()
	header, err := ParseColumns(*fColumns)
	if err != nil {
		return log.FErrf("Invalid -columns %q: %v", *fColumns, err)
	}
	values := flag.Args()
	if *fStdin {
		more, err := ReadValues(os.Stdin)
		if err != nil {
			return log.FErrf("Error reading stdin: %v", err)
		}
		values = append(values, more...)
	}
	border := table.ASCIIBorder()
	if *fUnicode {
		border = table.UnicodeBorder()
	}
	if *fBorderColor != "" {
		c, err := ParseColor(*fBorderColor)
		if err != nil {
			return log.FErrf("Invalid -border-color: %v", err)
		}
		border.Color = c
	}
	tbl, err := table.FromSource(header, table.Values(values...), table.WithBorder(border))
	if err != nil {
		return log.FErrf("Failed to build table: %v", err)
	}
	tbl.NoColor = *fNoColor
	log.LogVf("Rendering %d values in %d columns, width %d", len(values), header.Len(), tbl.Width())
	if _, err = io.WriteString(os.Stdout, tbl.Format()); err != nil {
		return log.FErrf("Error writing table: %v", err)
	}
	return 0
}

// ParseColumns builds the header row from "{style}Text,Text2,..." entries.
func ParseColumns(columns string) (table.Row, error) {
	if strings.TrimSpace(columns) == "" {
		return table.Row{}, errors.New("at least one column is required")
	}
	var header table.Row
	for _, entry := range strings.Split(columns, ",") {
		entry = strings.TrimSpace(entry)
		spec, text := "", entry
		if entry == "" {
			header.Cells = append(header.Cells, table.Cell{})
			continue
		}
		if closer, ok := closers[entry[0]]; ok {
			end := strings.IndexByte(entry, closer)
			if end < 0 {
				// let the style parser describe the problem
				_, err := style.Parse(entry)
				return table.Row{}, err
			}
			spec, text = entry[:end+1], entry[end+1:]
		}
		c, err := table.NewCell(spec, text)
		if err != nil {
			return table.Row{}, err
		}
		header.Cells = append(header.Cells, c)
	}
	return header, nil
}

// ReadValues returns the lines of r, without their line endings.
func ReadValues(r io.Reader) ([]string, error) {
	var values []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		values = append(values, strings.TrimSuffix(scanner.Text(), "\r"))
	}
	return values, scanner.Err()
}

func ParseColor(letter string) (style.Color, error) {
	runes := []rune(letter)
	if len(runes) == 1 {
		if c, ok := style.ColorFromLetter(runes[0]); ok {
			return c, nil
		}
	}
	return style.NoColor, errors.New("expected a single color letter, got " + letter)
}
