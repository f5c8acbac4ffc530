package ptable

import (
	"github.com/samber/lo"

	"stationpedia/ds"
)

// Build derives every entry from the identifier-to-raw-display records
// and arranges the results into both projections. The input map order
// does not matter: ByIdentifier is ascending by identifier, and ByHash
// is ascending by unsigned checksum with colliding identifiers kept in
// identifier order.
func Build(records map[string]string) Table {
	byIdentifier := lo.Map(
		ds.SortedKeys(records),
		func(identifier string, _ int) Entry {
			return NewEntry(identifier, records[identifier])
		},
	)

	byHash := ds.SortedStableBy(
		byIdentifier,
		func(a Entry, b Entry) bool {
			return a.HashUnsigned < b.HashUnsigned
		},
	)

	return Table{
		ByIdentifier: byIdentifier,
		ByHash:       byHash,
		Collisions:   findCollisions(byIdentifier),
	}
}

func findCollisions(byIdentifier []Entry) []Collision {
	identifiersByHash := map[uint32][]string{}
	for _, entry := range byIdentifier {
		identifiersByHash[entry.HashUnsigned] = append(
			identifiersByHash[entry.HashUnsigned],
			entry.Identifier,
		)
	}

	collisions := make([]Collision, 0)
	for _, hash := range ds.SortedKeys(identifiersByHash) {
		identifiers := identifiersByHash[hash]
		if len(identifiers) < 2 {
			continue
		}
		collisions = append(
			collisions,
			Collision{
				HashUnsigned: hash,
				Identifiers:  identifiers,
				Kept:         identifiers[len(identifiers)-1],
			},
		)
	}
	return collisions
}

// SignedWinners returns one entry per distinct checksum in ascending
// signed order. When identifiers collide, the collision's kept
// identifier fills the slot.
func SignedWinners(table Table) []Entry {
	winners := map[int32]Entry{}
	for _, entry := range table.ByIdentifier {
		winners[entry.HashSigned] = entry
	}
	return lo.Map(
		ds.SortedKeys(winners),
		func(hash int32, _ int) Entry {
			return winners[hash]
		},
	)
}
