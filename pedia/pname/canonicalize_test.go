package pname

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalize(t *testing.T) {
	type TestCase struct {
		RawDisplay string
		Identifier string
		Expected   string
	}
	testCases := []TestCase{
		{"<N:EN:Pipe Analyzer>", "DeviceA", "Pipe Analyzer"},
		{"Iron Wall", "StructureWallIron", "Iron Wall"},
		{"  Volume Pump  ", "StructureVolumePump", "Volume Pump"},
		{"", "DeviceB", "DeviceB"},
		{"   ", "DeviceB", "DeviceB"},
		{"<N:EN:>", "DeviceC", "DeviceC"},
		// unrecognized markup is not the canonicalizer's business
		{"[b]Airlock[/b]", "StructureAirlockDoor", "[b]Airlock[/b]"},
	}
	for _, testCase := range testCases {
		assert.Equal(
			t,
			testCase.Expected,
			Canonicalize(testCase.RawDisplay, testCase.Identifier),
		)
	}
}

func TestCanonicalize_NeverEmpty(t *testing.T) {
	rawDisplays := []string{
		"", " ", "\t\n", "<N:EN:>", ">>>", "<N:EN:", "plain", "<N:EN:x>",
	}
	for _, rawDisplay := range rawDisplays {
		name := Canonicalize(rawDisplay, "FallbackIdentifier")
		assert.NotEmpty(t, name)
		assert.False(t, name != "FallbackIdentifier" && strings.TrimSpace(name) == "")
	}
}
