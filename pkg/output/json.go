// pkg/output/json.go

package output

import (
	"encoding/json"
	"io"

	cerr "github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

// JSONTo writes data as indented JSON.
func JSONTo(w io.Writer, data any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	// secrets contain & < > routinely
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(data); err != nil {
		return cerr.Wrap(err, "failed to encode JSON output")
	}
	return nil
}

// YAMLTo writes data as a YAML document.
func YAMLTo(w io.Writer, data any) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(data); err != nil {
		return cerr.Wrap(err, "failed to encode YAML output")
	}
	return cerr.Wrap(encoder.Close(), "failed to flush YAML output")
}
