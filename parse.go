package gridfmt

import (
	"regexp"
	"strings"
	"unicode"
)

// Table is an ordered sequence of rows, each an ordered sequence of cell
// strings. A cell may contain embedded newlines, one per visual line
// within the cell. After [Parse] every row has the same length and no
// column is blank in every row.
type Table [][]string

var (
	reSeparator = regexp.MustCompile(`^[\t +=-]+$`)
	reOuterPipe = regexp.MustCompile(`^\s*\||\|\s*$`)
	rePipeSplit = regexp.MustCompile(`\s*\|\s*`)
	reGapSplit  = regexp.MustCompile(`\s\s+`)
)

// isSeparator reports whether line consists solely of row-separator
// characters (tab, space, '+', '=', '-') and is non-empty.
func isSeparator(line string) bool {
	return reSeparator.MatchString(line)
}

func hasSeparators(lines []string) bool {
	for _, line := range lines {
		if isSeparator(line) {
			return true
		}
	}
	return false
}

// splitRow splits one raw line into its fields. A line containing a pipe
// is split at pipes after at most one outer border pipe is stripped from
// each end; any other line is split at runs of two or more whitespace
// characters, so single spaces inside a field survive. Every line,
// including an empty one, yields at least one field.
func splitRow(line string) []string {
	if strings.Contains(line, "|") {
		line = reOuterPipe.ReplaceAllString(line, "")
		return rePipeSplit.Split(strings.TrimSpace(line), -1)
	}
	return reGapSplit.Split(strings.TrimRightFunc(line, unicode.IsSpace), -1)
}

// partition groups raw lines into logical rows. Separator lines mark row
// boundaries and are themselves dropped; without any separator in the
// input every line is its own row. Empty partitions, typically produced
// by leading or trailing separators, are discarded.
func partition(lines []string) [][]string {
	if !hasSeparators(lines) {
		parts := make([][]string, len(lines))
		for i, line := range lines {
			parts[i] = []string{line}
		}
		return parts
	}
	var parts [][]string
	var cur []string
	for _, line := range lines {
		if isSeparator(line) {
			if len(cur) > 0 {
				parts = append(parts, cur)
				cur = nil
			}
			continue
		}
		cur = append(cur, line)
	}
	if len(cur) > 0 {
		parts = append(parts, cur)
	}
	return parts
}

// joinColumns merges the lines of one logical row into per-column cells.
// Fields sharing a column index are trimmed and joined with newlines, in
// line order. Blank fields contribute nothing, and lines with fewer
// fields than the widest line simply skip the missing columns.
func joinColumns(part []string) []string {
	var cols [][]string
	for _, line := range part {
		fields := splitRow(line)
		for len(cols) < len(fields) {
			cols = append(cols, nil)
		}
		for i, field := range fields {
			if text := strings.TrimSpace(field); text != "" {
				cols[i] = append(cols[i], text)
			}
		}
	}
	row := make([]string, len(cols))
	for i, lines := range cols {
		row[i] = strings.Join(lines, "\n")
	}
	return row
}

// unify pads every row with empty cells up to the widest row length,
// then removes columns whose cells are blank in every row. Row order and
// the relative order of surviving columns are preserved.
func unify(t Table) Table {
	maxLen := 0
	for _, row := range t {
		if len(row) > maxLen {
			maxLen = len(row)
		}
	}
	blank := make([]bool, maxLen)
	for i := range blank {
		blank[i] = true
	}
	for ri, row := range t {
		for len(row) < maxLen {
			row = append(row, "")
		}
		t[ri] = row
		for i, cell := range row {
			if strings.TrimSpace(cell) != "" {
				blank[i] = false
			}
		}
	}
	out := make(Table, len(t))
	for ri, row := range t {
		cells := make([]string, 0, maxLen)
		for i, cell := range row {
			if !blank[i] {
				cells = append(cells, cell)
			}
		}
		out[ri] = cells
	}
	return out
}

// Parse converts the raw lines of a table region into a normalized
// Table. Irregular input is repaired, not rejected: ragged rows are
// padded and all-blank columns pruned, so any block of text parses to
// some table. Zero lines parse to a nil Table.
func Parse(lines []string) Table {
	parts := partition(lines)
	if len(parts) == 0 {
		return nil
	}
	t := make(Table, len(parts))
	for i, part := range parts {
		t[i] = joinColumns(part)
	}
	return unify(t)
}
