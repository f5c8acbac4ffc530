package pcode

import (
	"bytes"
	"fmt"
	"go/format"

	"github.com/pkg/errors"

	"stationpedia/pedia/ptable"
)

const DefaultPackageName = "devicehashes"

// Render produces the compiled lookup source: a self-contained Go
// package holding the name-to-hash and hash-to-display-name maps,
// formatted the way gofmt would write it. NameToHash keeps identifier
// order; HashToDisplayName keeps ascending signed order, with colliding
// checksums resolved to their kept identifier's display name.
func Render(table ptable.Table, packageName string) ([]byte, error) {
	if packageName == "" {
		packageName = DefaultPackageName
	}

	buf := bytes.Buffer{}
	fmt.Fprintf(&buf, "// Code generated by stationpedia. DO NOT EDIT.\n\n")
	fmt.Fprintf(&buf, "package %s\n\n", packageName)

	fmt.Fprintf(&buf, "// NameToHash maps a prefab identifier to its signed CRC-32 checksum.\n")
	fmt.Fprintf(&buf, "var NameToHash = map[string]int32{\n")
	for _, entry := range table.ByIdentifier {
		fmt.Fprintf(&buf, "\t%q: %d,\n", entry.Identifier, entry.HashSigned)
	}
	fmt.Fprintf(&buf, "}\n\n")

	fmt.Fprintf(&buf, "// HashToDisplayName maps a signed checksum back to the canonical display name.\n")
	fmt.Fprintf(&buf, "var HashToDisplayName = map[int32]string{\n")
	for _, entry := range ptable.SignedWinners(table) {
		fmt.Fprintf(&buf, "\t%d: %q,\n", entry.HashSigned, entry.DisplayName)
	}
	fmt.Fprintf(&buf, "}\n")

	source, err := format.Source(buf.Bytes())
	if err != nil {
		err := errors.Wrap(err, "pcode.Render error")
		return nil, err
	}
	return source, nil
}
