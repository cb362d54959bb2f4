package gridfmt

import (
	"encoding/csv"
	"io"
)

// writeCSV exports the table rows as CSV records. Cells with embedded
// newlines come out quoted, which round-trips through any compliant
// CSV reader.
func writeCSV(w io.Writer, t Table) error {
	cw := csv.NewWriter(w)
	for _, row := range t {
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
