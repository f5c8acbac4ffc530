package ptable

import (
	"stationpedia/pedia/phash"
	"stationpedia/pedia/pname"
)

type (
	// Entry is one fully derived row: an identifier, its canonical
	// display name, and the same checksum in every representation the
	// emitters need.
	Entry struct {
		Identifier   string `json:"identifier"`
		DisplayName  string `json:"display_name"`
		HashUnsigned uint32 `json:"hash_unsigned"`
		HashSigned   int32  `json:"hash_signed"`
		HashHex      string `json:"hash_hex"`
	}
	// Table holds the same entries in both orders the emitters consume,
	// plus collision diagnostics.
	Table struct {
		ByIdentifier []Entry     `json:"by_identifier"`
		ByHash       []Entry     `json:"by_hash"`
		Collisions   []Collision `json:"collisions"`
	}
	// Collision groups the identifiers that share one checksum. Kept is
	// the identifier whose display name survives in hash-keyed output:
	// the last one in identifier order.
	Collision struct {
		HashUnsigned uint32   `json:"hash_unsigned"`
		Identifiers  []string `json:"identifiers"`
		Kept         string   `json:"kept"`
	}
)

func NewEntry(identifier string, rawDisplay string) Entry {
	checksum := phash.Checksum(identifier)
	return Entry{
		Identifier:   identifier,
		DisplayName:  pname.Canonicalize(rawDisplay, identifier),
		HashUnsigned: checksum,
		HashSigned:   int32(checksum),
		HashHex:      phash.HexString(checksum),
	}
}
