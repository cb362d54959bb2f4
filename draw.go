package gridfmt

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/wordwrap"
)

// Option configures rendering.
type Option func(*drawConfig)

type drawConfig struct {
	wrap int
}

// WithWrap word-wraps any cell line wider than n display columns before
// column widths are computed. Existing line breaks inside cells are
// preserved. n <= 0 disables wrapping, which is the default.
func WithWrap(n int) Option {
	return func(c *drawConfig) { c.wrap = n }
}

// cellWidth returns the display width of the cell's longest embedded
// line. An empty cell has width 0.
func cellWidth(cell string) int {
	w := 0
	for _, line := range strings.Split(cell, "\n") {
		if lw := runewidth.StringWidth(line); lw > w {
			w = lw
		}
	}
	return w
}

// columnWidths returns the maximum cell width per column. The widths
// slice grows as wider rows appear, so ragged rows are tolerated even
// though unify should already have equalized them.
func columnWidths(t Table) []int {
	var widths []int
	for _, row := range t {
		for len(widths) < len(row) {
			widths = append(widths, 0)
		}
		for i, cell := range row {
			if w := cellWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}
	return widths
}

// borderLine draws a horizontal rule: '+'-joined runs of fill, one run
// of width+2 per column. Zero columns yield an empty string.
func borderLine(widths []int, fill byte) string {
	if len(widths) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.WriteByte('+')
	for _, w := range widths {
		sb.WriteString(strings.Repeat(string(fill), w+2))
		sb.WriteByte('+')
	}
	return sb.String()
}

// rowLines splits a row's cells at embedded newlines and transposes
// them into visual lines. The row's height is its tallest cell; cells
// shorter than that contribute empty fields to the remaining lines.
func rowLines(row []string) [][]string {
	cells := make([][]string, len(row))
	height := 1
	for i, cell := range row {
		cells[i] = strings.Split(cell, "\n")
		if len(cells[i]) > height {
			height = len(cells[i])
		}
	}
	lines := make([][]string, height)
	for ln := range lines {
		fields := make([]string, len(row))
		for i, cell := range cells {
			if ln < len(cell) {
				fields[i] = cell[ln]
			}
		}
		lines[ln] = fields
	}
	return lines
}

// padCells pads each field to its column width with one space of margin
// on either side. Widths are display widths, so wide runes line up.
func padCells(fields []string, widths []int) []string {
	padded := make([]string, len(fields))
	for i, field := range fields {
		text := strings.TrimSpace(field)
		pad := widths[i] - runewidth.StringWidth(text)
		if pad < 0 {
			pad = 0
		}
		padded[i] = " " + text + strings.Repeat(" ", pad) + " "
	}
	return padded
}

// wrapCell wraps each embedded line of the cell at limit display
// columns, keeping existing line breaks.
func wrapCell(cell string, limit int) string {
	var out []string
	for _, line := range strings.Split(cell, "\n") {
		if runewidth.StringWidth(line) <= limit {
			out = append(out, line)
			continue
		}
		wrapped := wordwrap.String(line, limit)
		out = append(out, strings.Split(wrapped, "\n")...)
	}
	return strings.Join(out, "\n")
}

func wrapTable(t Table, limit int) Table {
	out := make(Table, len(t))
	for ri, row := range t {
		cells := make([]string, len(row))
		for i, cell := range row {
			cells[i] = wrapCell(cell, limit)
		}
		out[ri] = cells
	}
	return out
}

// Draw renders a normalized table as the lines of a bordered grid
// table. The first row is treated as the header: a '='-filled rule is
// drawn above and below it, later rows are separated by '-'-filled
// rules, and the final row has no trailing rule at all. That asymmetric
// framing matches classic rst table tooling and keeps Draw a fixpoint
// of Parse. An empty table draws as no lines.
func Draw(t Table, opts ...Option) []string {
	if len(t) == 0 {
		return nil
	}
	var cfg drawConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.wrap > 0 {
		t = wrapTable(t, cfg.wrap)
	}

	widths := columnWidths(t)
	header := borderLine(widths, '=')
	normal := borderLine(widths, '-')

	output := []string{header}
	for ri, row := range t {
		for _, fields := range rowLines(row) {
			output = append(output, "|"+strings.Join(padCells(fields, widths), "|")+"|")
		}
		switch {
		case ri == 0:
			output = append(output, header)
		case ri < len(t)-1:
			output = append(output, normal)
		}
	}
	return output
}
