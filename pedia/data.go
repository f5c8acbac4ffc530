package pedia

import (
	"stationpedia/pedia/pcode"
	"stationpedia/pedia/ptable"
)

type (
	// Config names the source export and the two artifacts one run
	// produces. Empty fields fall back to the defaults below.
	Config struct {
		SourcePath  string `yaml:"source_path" json:"source_path"`
		TextPath    string `yaml:"text_path" json:"text_path"`
		CodePath    string `yaml:"code_path" json:"code_path"`
		CodePackage string `yaml:"code_package" json:"code_package"`
	}
	// Summary is what one run reports back.
	Summary struct {
		Identifiers  int                `json:"identifiers"`
		UniqueHashes int                `json:"unique_hashes"`
		Collisions   []ptable.Collision `json:"collisions"`
		TextPath     string             `json:"text_path"`
		CodePath     string             `json:"code_path"`
	}
)

// SteamSourcePath is where a default Steam install on Windows keeps the
// language export, offered as a hint when the source is missing.
const SteamSourcePath = `C:\Program Files (x86)\Steam\steamapps\common\Stationeers\rocketstation_Data\StreamingAssets\Language\english.xml`

func DefaultConfig() Config {
	return Config{
		SourcePath:  "./input/english.xml",
		TextPath:    "./output/stationpedia.txt",
		CodePath:    "./output/devicehashes/devicehashes.go",
		CodePackage: pcode.DefaultPackageName,
	}
}

// WithDefaults fills every empty field from DefaultConfig, so a partial
// config stays usable.
func (r Config) WithDefaults() Config {
	defaults := DefaultConfig()
	if r.SourcePath == "" {
		r.SourcePath = defaults.SourcePath
	}
	if r.TextPath == "" {
		r.TextPath = defaults.TextPath
	}
	if r.CodePath == "" {
		r.CodePath = defaults.CodePath
	}
	if r.CodePackage == "" {
		r.CodePackage = defaults.CodePackage
	}
	return r
}

func NewSummary(table ptable.Table, config Config) Summary {
	return Summary{
		Identifiers:  len(table.ByIdentifier),
		UniqueHashes: len(ptable.SignedWinners(table)),
		Collisions:   table.Collisions,
		TextPath:     config.TextPath,
		CodePath:     config.CodePath,
	}
}
