package plookup

import (
	"github.com/samber/lo"

	"stationpedia/pedia/ptable"
)

type (
	// Lookup answers the two questions a script tool keeps asking:
	// which hash belongs to an identifier, and which display name
	// belongs to a hash.
	Lookup struct {
		hashByName        map[string]int32
		displayNameByHash map[int32]string
	}
)

// FromEntries builds a Lookup from reference-sheet entries, the form
// tooling that re-reads stationpedia.txt holds them in. When a signed
// hash repeats, the last entry keeps the display slot.
func FromEntries(entries []ptable.Entry) Lookup {
	hashByName := lo.SliceToMap(
		entries,
		func(entry ptable.Entry) (string, int32) {
			return entry.Identifier, entry.HashSigned
		},
	)
	displayNameByHash := lo.SliceToMap(
		entries,
		func(entry ptable.Entry) (int32, string) {
			return entry.HashSigned, entry.DisplayName
		},
	)
	return Lookup{
		hashByName:        hashByName,
		displayNameByHash: displayNameByHash,
	}
}

// FromTable feeds the identifier projection through FromEntries; its
// order makes the last entry per signed hash the kept identifier.
func FromTable(table ptable.Table) Lookup {
	return FromEntries(table.ByIdentifier)
}

func (r Lookup) HashForName(name string) (int32, bool) {
	hash, ok := r.hashByName[name]
	return hash, ok
}

func (r Lookup) DisplayNameForHash(hash int32) (string, bool) {
	displayName, ok := r.displayNameByHash[hash]
	return displayName, ok
}

func (r Lookup) Len() int {
	return len(r.hashByName)
}
