package plookup

import (
	"strings"

	"stationpedia/pedia/phash"
)

// ExtractHashArgument pulls the name out of a HASH(...) call the way
// scripts write them: HASH("name"), HASH('name'), and the bare
// HASH(name) form are all accepted. The boolean reports whether input
// was a HASH call at all.
func ExtractHashArgument(input string) (string, bool) {
	input = strings.TrimSpace(input)
	if !strings.HasPrefix(input, "HASH(") {
		return "", false
	}
	if !strings.HasSuffix(input, ")") {
		return "", false
	}

	content := strings.TrimSpace(input[5 : len(input)-1])
	if len(content) >= 2 {
		first := content[0]
		last := content[len(content)-1]
		if (first == '"' && last == '"') || (first == '\'' && last == '\'') {
			return content[1 : len(content)-1], true
		}
	}
	return content, true
}

// HashCall resolves a full HASH(...) call to its value. The name does
// not have to be a known identifier: the game hashes whatever string
// the script provides.
func HashCall(input string) (int32, bool) {
	name, ok := ExtractHashArgument(input)
	if !ok {
		return 0, false
	}
	return phash.HashString(name), true
}
