// Package gridfmt reformats plain-text tables embedded in
// reStructuredText-like documents into uniformly aligned grid tables.
//
// The package turns loosely formatted input — grid tables drawn with
// '+', '-', '=', and '|', or informal tables whose columns are
// separated by pipes or runs of two or more spaces — into a normalized
// grid with consistent column widths, borders, and separators. The
// central entry points are [Parse], [Draw], and [Reformat].
//
// # Parsing
//
// [Parse] converts the raw lines of a table region into a [Table], an
// ordered sequence of rows of cell strings. Separator lines made only
// of border characters divide multi-line logical rows; a region with no
// separator lines treats each line as its own row. Cells stacked across
// the lines of one logical row are joined with embedded newlines.
// Parsing never fails: ragged rows are padded, columns that are blank
// in every row are pruned, and any block of text parses to some table.
//
// # Rendering
//
// [Draw] renders a Table as bordered grid lines. The first row is the
// header, framed by '='-filled rules above and below; later rows are
// separated by '-'-filled rules, and no rule follows the final row.
// Cells with embedded newlines span multiple visual lines within their
// row. Widths are terminal display widths via go-runewidth, so wide
// runes align. [WithWrap] optionally word-wraps long cell lines before
// widths are computed:
//
//	lines := gridfmt.Draw(gridfmt.Parse(raw), gridfmt.WithWrap(40))
//
// # Editor Integration
//
// A host editor exposes its buffer through the [Source] interface.
// [Bounds] locates the contiguous non-blank block around a cursor line
// and [Reformat] replaces that range with the redrawn table:
//
//	err := gridfmt.Reformat(buf, cursorLine)
//
// [Buffer] is an in-memory Source for tests and CLI use.
//
// # Output Formats
//
// Beyond the grid itself, a parsed table can be exported with [Write]
// or [Marshal] using a [Format]: [Grid], [Markdown], [CSV], [JSON], or
// [YAML]. Use [ParseFormat] to convert a CLI flag string into a Format.
//
// # Errors
//
// Parsing and drawing have no error paths; malformed input degrades to
// a degenerate but well-formed table. [ErrUnsupportedFormat] is the
// only sentinel, returned for unknown format strings.
package gridfmt
