package gridfmt

import (
	"bytes"
	"errors"
	"fmt"
	"io"
)

// ErrUnsupportedFormat is returned for format strings [ParseFormat]
// does not recognize.
var ErrUnsupportedFormat = errors.New("unsupported format")

// Format represents an output format for a parsed table.
type Format string

const (
	Grid     Format = "grid"
	Markdown Format = "markdown"
	CSV      Format = "csv"
	JSON     Format = "json"
	YAML     Format = "yaml"
)

var formats = []Format{Grid, Markdown, CSV, JSON, YAML}

// String returns the format name.
func (f Format) String() string { return string(f) }

// Formats returns all supported format names.
func Formats() []Format {
	out := make([]Format, len(formats))
	copy(out, formats)
	return out
}

// ParseFormat parses a format string.
func ParseFormat(s string) (Format, error) {
	for _, f := range formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// Write renders t to w in the given format. Grid is the bordered
// representation produced by [Draw]; the other formats export the
// parsed table data instead. Options apply to Grid only.
func Write(w io.Writer, f Format, t Table, opts ...Option) error {
	switch f {
	case Grid:
		for _, line := range Draw(t, opts...) {
			if _, err := fmt.Fprintln(w, line); err != nil {
				return err
			}
		}
		return nil
	case Markdown:
		return writeMarkdown(w, t)
	case CSV:
		return writeCSV(w, t)
	case JSON:
		return writeJSON(w, t)
	case YAML:
		return writeYAML(w, t)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
}

// Marshal renders t and returns the bytes.
func Marshal(f Format, t Table, opts ...Option) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, f, t, opts...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
