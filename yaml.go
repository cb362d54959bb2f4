package gridfmt

import (
	"io"

	"gopkg.in/yaml.v3"
)

// writeYAML exports the table as a YAML sequence of row sequences.
func writeYAML(w io.Writer, t Table) error {
	if t == nil {
		t = Table{}
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(t); err != nil {
		return err
	}
	return enc.Close()
}
