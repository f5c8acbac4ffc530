package pedia

import (
	"os"
	"path/filepath"

	"stationpedia/ds"
	"stationpedia/pedia/pcode"
	"stationpedia/pedia/plang"
	"stationpedia/pedia/ptable"
	"stationpedia/pedia/ptext"
)

// Generate runs the whole pipeline: load the export, derive the table,
// and write both artifacts. Both artifacts are rendered and staged
// before the first rename, so a failure cannot leave one artifact fresh
// and the other stale.
func Generate(config Config) (*Summary, error) {
	config = config.WithDefaults()

	records, err := plang.Load(config.SourcePath)
	if err != nil {
		return nil, err
	}
	table := ptable.Build(records)

	text := ptext.Render(table)
	code, err := pcode.Render(table, config.CodePackage)
	if err != nil {
		return nil, err
	}

	textTmp, err := stageArtifact(config.TextPath, []byte(text))
	if err != nil {
		return nil, err
	}
	codeTmp, err := stageArtifact(config.CodePath, code)
	if err != nil {
		_ = os.Remove(textTmp)
		return nil, err
	}

	err = commitArtifact(textTmp, config.TextPath)
	if err != nil {
		_ = os.Remove(codeTmp)
		return nil, err
	}
	err = commitArtifact(codeTmp, config.CodePath)
	if err != nil {
		return nil, err
	}

	summary := NewSummary(table, config)
	return &summary, nil
}

func stageArtifact(path string, bs []byte) (string, error) {
	err := os.MkdirAll(filepath.Dir(path), 0755)
	if err != nil {
		return "", ErrDestinationUnwritable{Path: path, Reason: err}
	}
	tmpPath, err := ds.StageFile(path, bs)
	if err != nil {
		return "", ErrDestinationUnwritable{Path: path, Reason: err}
	}
	return tmpPath, nil
}

func commitArtifact(tmpPath string, path string) error {
	err := ds.CommitFile(tmpPath, path)
	if err != nil {
		return ErrDestinationUnwritable{Path: path, Reason: err}
	}
	return nil
}
