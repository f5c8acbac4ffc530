package pname

import (
	"strings"

	"github.com/samber/lo"
)

// localeMarkers holds the localization wrapper prefixes found in the game's
// export, as in "<N:EN:Pipe Analyzer>".
var localeMarkers = []string{
	"<N:EN:",
}

// Canonicalize turns a raw display value into a human-presentable name by
// dropping the locale wrapper markers and the closing markup delimiters and
// trimming whitespace. An empty result falls back to the identifier, so the
// returned name is never empty. Unrecognized markup passes through as-is.
func Canonicalize(rawDisplay string, identifier string) string {
	name := lo.Reduce(
		localeMarkers,
		func(name string, marker string, _ int) string {
			return strings.ReplaceAll(name, marker, "")
		},
		rawDisplay,
	)
	name = strings.ReplaceAll(name, ">", "")
	name = strings.TrimSpace(name)
	if name == "" {
		return identifier
	}
	return name
}
