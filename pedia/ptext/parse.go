package ptext

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"stationpedia/pedia/ptable"
)

// Parse reads a reference sheet back into entries. It accepts what
// Render produces: blank lines are skipped, and every other line has to
// be a full row, or the failure is reported with its 1-based line
// number.
func Parse(text string) ([]ptable.Entry, error) {
	entries := make([]ptable.Entry, 0)
	for index, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		entry, err := ParseLine(line)
		if err != nil {
			err := errors.Wrapf(err, "ptext.Parse error: line %d", index+1)
			return nil, err
		}
		entries = append(entries, *entry)
	}
	return entries, nil
}

// ParseLine splits one row on its quote positions: the identifier sits
// between the first quote pair, the display name between the second,
// and the signed and hex hashes in between. Byte offsets are safe here
// since `"` never appears inside a multi-byte rune.
func ParseLine(line string) (*ptable.Entry, error) {
	quotePositions := make([]int, 0, 4)
	for index, r := range line {
		if r == '"' {
			quotePositions = append(quotePositions, index)
		}
	}
	if len(quotePositions) < 4 {
		err := fmt.Errorf(`ParseLine error: expected at least 4 quotes; got %d`, len(quotePositions))
		return nil, err
	}

	identifier := line[quotePositions[0]+1 : quotePositions[1]]
	displayName := line[quotePositions[2]+1 : quotePositions[3]]
	middleFields := strings.Fields(line[quotePositions[1]+1 : quotePositions[2]])
	if len(middleFields) < 2 {
		err := fmt.Errorf(`ParseLine error: expected 2 hash fields between the quote pairs; got %d`, len(middleFields))
		return nil, err
	}
	signed, err := strconv.ParseInt(middleFields[0], 10, 32)
	if err != nil {
		err := errors.Wrap(err, "ParseLine error: parse signed hash")
		return nil, err
	}

	entry := ptable.Entry{
		Identifier:   identifier,
		DisplayName:  displayName,
		HashUnsigned: uint32(int32(signed)),
		HashSigned:   int32(signed),
		HashHex:      middleFields[1],
	}
	return &entry, nil
}
