package gridfmt

import (
	"encoding/json"
	"io"
)

// writeJSON exports the table as a JSON array of row arrays. A nil
// table encodes as an empty array, not null.
func writeJSON(w io.Writer, t Table) error {
	if t == nil {
		t = Table{}
	}
	return json.NewEncoder(w).Encode(t)
}
