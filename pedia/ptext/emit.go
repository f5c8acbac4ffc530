package ptext

import (
	"fmt"
	"strings"

	"github.com/samber/lo"

	"stationpedia/pedia/ptable"
)

// Render produces the reference sheet: one line per identifier in
// ascending identifier order, carrying every representation a reader
// might grep for.
//
//	"StructureVolumePump" -321403609 0xecd7c527 "Volume Pump"
func Render(table ptable.Table) string {
	lines := lo.Map(
		table.ByIdentifier,
		func(entry ptable.Entry, _ int) string {
			return fmt.Sprintf(
				`"%s" %d %s "%s"`,
				entry.Identifier, entry.HashSigned, entry.HashHex, entry.DisplayName,
			)
		},
	)
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}
