package gridfmt

import "strings"

// Source is a line-addressable text buffer, the only thing the
// reformatter needs from a host editor. Line indices are 0-based.
type Source interface {
	// LineCount returns the number of lines in the buffer.
	LineCount() int
	// Line returns line i. i must be in [0, LineCount).
	Line(i int) string
	// ReplaceLines replaces the inclusive line range [from, to] with
	// the given lines.
	ReplaceLines(from, to int, lines []string) error
}

// Bounds scans outward from the cursor line until a blank line or the
// buffer edge is found in each direction, and returns the inclusive
// [upper, lower] range of the contiguous non-blank block containing the
// cursor. A cursor on a blank line, or outside the buffer, yields
// upper > lower.
func Bounds(src Source, cursor int) (upper, lower int) {
	upper, lower = cursor, cursor
	for upper >= 0 && upper < src.LineCount() && strings.TrimSpace(src.Line(upper)) != "" {
		upper--
	}
	upper++
	for lower >= 0 && lower < src.LineCount() && strings.TrimSpace(src.Line(lower)) != "" {
		lower++
	}
	lower--
	return upper, lower
}

// Reformat locates the table block around the cursor line, parses it,
// and writes the redrawn grid back over the same line range. A cursor
// on a blank line leaves the buffer untouched. The whole operation is
// a single synchronous transformation with no state left behind.
func Reformat(src Source, cursor int, opts ...Option) error {
	upper, lower := Bounds(src, cursor)
	if upper > lower {
		return nil
	}
	lines := make([]string, 0, lower-upper+1)
	for i := upper; i <= lower; i++ {
		lines = append(lines, src.Line(i))
	}
	return src.ReplaceLines(upper, lower, Draw(Parse(lines), opts...))
}

// Buffer is an in-memory [Source] backed by a slice of lines. It is
// what the tests and the CLI use in place of an editor buffer.
type Buffer struct {
	lines []string
}

// NewBuffer creates a buffer from individual lines.
func NewBuffer(lines ...string) *Buffer {
	return &Buffer{lines: append([]string(nil), lines...)}
}

// NewBufferFromString creates a buffer by splitting text at newlines.
// A single trailing newline is not counted as an extra empty line.
func NewBufferFromString(text string) *Buffer {
	return &Buffer{lines: strings.Split(strings.TrimSuffix(text, "\n"), "\n")}
}

// LineCount implements [Source].
func (b *Buffer) LineCount() int { return len(b.lines) }

// Line implements [Source].
func (b *Buffer) Line(i int) string { return b.lines[i] }

// ReplaceLines implements [Source].
func (b *Buffer) ReplaceLines(from, to int, lines []string) error {
	out := make([]string, 0, len(b.lines)-(to-from+1)+len(lines))
	out = append(out, b.lines[:from]...)
	out = append(out, lines...)
	out = append(out, b.lines[to+1:]...)
	b.lines = out
	return nil
}

// Lines returns a copy of the buffer contents.
func (b *Buffer) Lines() []string {
	return append([]string(nil), b.lines...)
}

// String returns the buffer contents with a trailing newline.
func (b *Buffer) String() string {
	if len(b.lines) == 0 {
		return ""
	}
	return strings.Join(b.lines, "\n") + "\n"
}
