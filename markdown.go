package gridfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

// writeMarkdown renders the table as a GitHub-flavored pipe table. The
// first table row becomes the header row. Pipe tables have no
// multi-line cells, so embedded newlines are joined with a single
// space. Column widths have a minimum of 3 to keep the separator row
// well-formed.
func writeMarkdown(w io.Writer, t Table) error {
	if len(t) == 0 {
		return nil
	}
	rows := make([][]string, len(t))
	for i, row := range t {
		cells := make([]string, len(row))
		for j, cell := range row {
			cells[j] = strings.ReplaceAll(cell, "\n", " ")
		}
		rows[i] = cells
	}

	var widths []int
	for _, row := range rows {
		for len(widths) < len(row) {
			widths = append(widths, 0)
		}
		for j, cell := range row {
			if cw := runewidth.StringWidth(cell); cw > widths[j] {
				widths[j] = cw
			}
		}
	}
	for j := range widths {
		if widths[j] < 3 {
			widths[j] = 3
		}
	}

	if err := writeMarkdownRow(w, rows[0], widths); err != nil {
		return err
	}
	sep := make([]string, len(widths))
	for j, width := range widths {
		sep[j] = strings.Repeat("-", width)
	}
	if _, err := fmt.Fprintf(w, "| %s |\n", strings.Join(sep, " | ")); err != nil {
		return err
	}
	for _, row := range rows[1:] {
		if err := writeMarkdownRow(w, row, widths); err != nil {
			return err
		}
	}
	return nil
}

func writeMarkdownRow(w io.Writer, cells []string, widths []int) error {
	padded := make([]string, len(widths))
	for j, width := range widths {
		cell := ""
		if j < len(cells) {
			cell = cells[j]
		}
		pad := width - runewidth.StringWidth(cell)
		if pad < 0 {
			pad = 0
		}
		padded[j] = cell + strings.Repeat(" ", pad)
	}
	_, err := fmt.Fprintf(w, "| %s |\n", strings.Join(padded, " | "))
	return err
}
