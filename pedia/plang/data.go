package plang

type (
	// Document is the slice of the game's language export that the
	// generator reads. Sections other than Things (Interface, Tooltips,
	// Keys, ...) are skipped by encoding/xml at decode time.
	Document struct {
		Name   string   `xml:"Name"`
		Code   string   `xml:"Code"`
		Things []Record `xml:"Things>RecordThing"`
	}
	// Record is one identifier-to-raw-display-name pair. A RecordThing
	// without a Value child decodes to an empty Value, which is still
	// a legitimate record.
	Record struct {
		Key   string `xml:"Key"`
		Value string `xml:"Value"`
	}
)
