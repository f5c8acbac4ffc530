package plang

import (
	"encoding/xml"

	"github.com/pkg/errors"
)

func Decode(bs []byte) (*Document, error) {
	document := Document{}
	err := xml.Unmarshal(bs, &document)
	if err != nil {
		err := errors.Wrap(err, "plang.Decode error")
		return nil, err
	}
	return &document, nil
}

// ToRecords flattens the export into an identifier-to-raw-display map.
// Records without a key carry nothing hashable and are dropped; when an
// identifier repeats, the last occurrence wins.
func ToRecords(document Document) map[string]string {
	records := make(map[string]string, len(document.Things))
	for _, record := range document.Things {
		if record.Key == "" {
			continue
		}
		records[record.Key] = record.Value
	}
	return records
}
