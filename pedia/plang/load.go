package plang

import (
	"os"
)

// Load reads the export at path and flattens it into an
// identifier-to-raw-display map. Failures keep their cause: a file
// system problem surfaces as ErrSourceUnavailable, and a parse problem
// as ErrSourceMalformed.
func Load(path string) (map[string]string, error) {
	bs, err := os.ReadFile(path)
	if err != nil {
		return nil, ErrSourceUnavailable{Path: path, Reason: err}
	}
	document, err := Decode(bs)
	if err != nil {
		return nil, ErrSourceMalformed{Path: path, Reason: err}
	}
	return ToRecords(*document), nil
}
